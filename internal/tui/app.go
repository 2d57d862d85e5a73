package tui

import (
	"fmt"
	"strings"

	"postplan-cli/internal/model"
	"postplan-cli/internal/mutate"
	"postplan-cli/internal/store"
	"postplan-cli/internal/summary"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type view int

const (
	viewWeek view = iota
	viewDay
)

type mode int

const (
	modeNormal mode = iota
	modeEditContent
	modeAddAccount
	modeConfirm
)

type editTarget struct {
	day       model.Day
	accountID string
	postID    string
}

type appModel struct {
	store store.Store
	db    *store.DB

	width  int
	height int

	view view
	mode mode

	weekList list.Model
	dayList  list.Model

	selectedDay model.Day

	contentInput textinput.Model
	editing      editTarget

	form    accountForm
	confirm confirmState

	statusLine string
}

func newAppModel(s store.Store, db *store.DB) appModel {
	m := appModel{
		store: s,
		db:    db,
		view:  viewWeek,
	}
	m.weekList = newList(nil, "day", "days")
	m.dayList = newList(nil, "post", "posts")
	m.refreshWeek()
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeConfirm:
			return m.updateConfirm(msg)
		case modeEditContent:
			return m.updateEditContent(msg)
		case modeAddAccount:
			return m.updateAddAccount(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc", "backspace":
			if m.view == viewDay {
				m.view = viewWeek
				m.refreshWeek()
				return m, nil
			}
		case "enter":
			if m.view == viewWeek {
				if it, ok := m.weekList.SelectedItem().(dayItem); ok {
					m.selectedDay = it.day
					m.view = viewDay
					m.refreshDay()
					m.resizeLists()
				}
				return m, nil
			}
			return m.startEditContent()
		case "e":
			if m.view == viewDay {
				return m.startEditContent()
			}
		case " ", "x":
			if m.view == viewDay {
				return m.toggleSelected()
			}
		case "a":
			m.mode = modeAddAccount
			m.form = newAccountForm()
			return m, nil
		case "d":
			if m.view == viewDay {
				return m.confirmDeleteAccount()
			}
		case "c":
			if m.view == viewWeek {
				return m.confirmClearContent()
			}
		}
	}

	// Let the active list handle navigation keys.
	var cmd tea.Cmd
	switch m.view {
	case viewWeek:
		m.weekList, cmd = m.weekList.Update(msg)
	case viewDay:
		m.dayList, cmd = m.dayList.Update(msg)
	}
	return m, cmd
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "left", "right":
		if m.confirm.focus == confirmFocusConfirm {
			m.confirm.focus = confirmFocusCancel
		} else {
			m.confirm.focus = confirmFocusConfirm
		}
	case "enter":
		apply := m.confirm.focus == confirmFocusConfirm && m.confirm.apply != nil
		fn := m.confirm.apply
		m.mode = modeNormal
		m.confirm = confirmState{}
		if apply {
			fn(&m)
		}
	case "y":
		fn := m.confirm.apply
		m.mode = modeNormal
		m.confirm = confirmState{}
		if fn != nil {
			fn(&m)
		}
	case "esc", "n", "ctrl+g":
		m.mode = modeNormal
		m.confirm = confirmState{}
	}
	return m, nil
}

func (m appModel) updateEditContent(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		t := m.editing
		res := mutate.SetPostContent(m.db, t.day, t.accountID, t.postID, m.contentInput.Value())
		if res.Changed {
			m.persist("post.set_content", res.Post.ID, res.EventPayload)
		}
		m.mode = modeNormal
		m.refreshDay()
		return m, nil
	case "esc", "ctrl+g":
		m.mode = modeNormal
		return m, nil
	}
	var cmd tea.Cmd
	m.contentInput, cmd = m.contentInput.Update(msg)
	return m, cmd
}

func (m appModel) updateAddAccount(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" || msg.String() == "ctrl+g" {
		m.mode = modeNormal
		return m, nil
	}
	draft, done, cmd := m.form.update(msg)
	if !done {
		return m, cmd
	}
	res := mutate.AddAccount(m.db, func(prefix string) string { return m.store.NextID(m.db, prefix) }, draft)
	m.persist("account.add", res.Account.ID, res.EventPayload)
	m.statusLine = fmt.Sprintf("added %s (%s)", res.Account.Username, res.Account.ID)
	m.mode = modeNormal
	m.refreshWeek()
	if m.view == viewDay {
		m.refreshDay()
	}
	return m, nil
}

func (m *appModel) startEditContent() (tea.Model, tea.Cmd) {
	it, ok := m.dayList.SelectedItem().(postRowItem)
	if !ok {
		return *m, nil
	}
	m.editing = editTarget{day: m.selectedDay, accountID: it.account.ID, postID: it.post.ID}
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 280
	ti.SetValue(it.post.Content)
	ti.CursorEnd()
	ti.Focus()
	m.contentInput = ti
	m.mode = modeEditContent
	return *m, textinput.Blink
}

func (m *appModel) toggleSelected() (tea.Model, tea.Cmd) {
	it, ok := m.dayList.SelectedItem().(postRowItem)
	if !ok {
		return *m, nil
	}
	res := mutate.TogglePost(m.db, m.selectedDay, it.account.ID, it.post.ID)
	if res.Changed {
		m.persist("post.toggle", res.Post.ID, res.EventPayload)
	}
	m.refreshDay()
	return *m, nil
}

func (m *appModel) confirmDeleteAccount() (tea.Model, tea.Cmd) {
	it, ok := m.dayList.SelectedItem().(postRowItem)
	if !ok {
		return *m, nil
	}
	id := it.account.ID
	name := it.account.Username
	m.confirm = confirmState{
		title: "Delete account",
		body:  fmt.Sprintf("Delete %s and its post slots on all seven days? This cannot be undone.", name),
		focus: confirmFocusCancel,
		apply: func(m *appModel) {
			res := mutate.DeleteAccount(m.db, id)
			if res.Changed {
				m.persist("account.delete", id, res.EventPayload)
				m.statusLine = "deleted " + name
			}
			m.refreshWeek()
			m.refreshDay()
		},
	}
	m.mode = modeConfirm
	return *m, nil
}

func (m *appModel) confirmClearContent() (tea.Model, tea.Cmd) {
	m.confirm = confirmState{
		title: "Clear all post content",
		body:  "Blank the content of every post in the week. Completion marks stay.",
		focus: confirmFocusCancel,
		apply: func(m *appModel) {
			res := mutate.ClearAllPostContent(m.db)
			if res.Changed {
				m.persist("schedule.clear_content", "week", res.EventPayload)
				m.statusLine = fmt.Sprintf("cleared %d posts", res.Cleared)
			}
			m.refreshWeek()
		},
	}
	m.mode = modeConfirm
	return *m, nil
}

func (m *appModel) persist(typ, entityID string, payload map[string]any) {
	if err := m.store.Save(m.db); err != nil {
		m.statusLine = "save failed: " + err.Error()
		return
	}
	_ = m.store.AppendEvent(typ, entityID, payload)
}

func (m *appModel) refreshWeek() {
	var items []list.Item
	for _, d := range model.Days {
		items = append(items, dayItem{day: d, stats: summary.StatsForDay(m.db, d)})
	}
	idx := m.weekList.Index()
	m.weekList.SetItems(items)
	if idx >= 0 && idx < len(items) {
		m.weekList.Select(idx)
	}
}

func (m *appModel) refreshDay() {
	curID := ""
	if it, ok := m.dayList.SelectedItem().(postRowItem); ok {
		curID = it.post.ID
	}
	var items []list.Item
	if ds, ok := m.db.FindDay(m.selectedDay); ok {
		for _, ap := range ds.Accounts {
			account, ok := m.db.FindAccount(ap.AccountID)
			if !ok {
				continue
			}
			for n, p := range ap.Posts {
				items = append(items, postRowItem{account: *account, post: p, slot: n + 1})
			}
		}
	}
	m.dayList.SetItems(items)
	for i, it := range items {
		if row, ok := it.(postRowItem); ok && row.post.ID == curID {
			m.dayList.Select(i)
			break
		}
	}
}

func (m *appModel) resizeLists() {
	h := m.height - 6
	if h < 8 {
		h = 8
	}
	w := m.width / 2
	if w < 40 {
		w = 40
	}
	m.weekList.SetSize(w, h)
	m.dayList.SetSize(w, h)
}

func (m appModel) View() string {
	header := lipgloss.NewStyle().Bold(true).
		Render(fmt.Sprintf("postplan  Dir=%s  Accounts=%d", m.store.Dir, len(m.db.Accounts)))

	var body string
	switch m.mode {
	case modeAddAccount:
		body = m.form.view(m.bodyWidth())
	case modeConfirm:
		body = renderConfirm(m.bodyWidth(), m.confirm)
	case modeEditContent:
		body = strings.Join([]string{
			lipgloss.NewStyle().Bold(true).Render("Edit post content"),
			"",
			m.contentInput.View(),
			"",
			styleMuted().Render("enter: save   esc: cancel"),
		}, "\n")
	default:
		switch m.view {
		case viewWeek:
			body = lipgloss.JoinHorizontal(lipgloss.Top, m.weekList.View(), "  ", m.earningsPanel())
		case viewDay:
			body = lipgloss.JoinHorizontal(lipgloss.Top, m.dayList.View(), "  ", m.dayDetailPanel())
		}
	}

	footer := m.footer()
	return strings.Join([]string{header, body, footer}, "\n\n")
}

func (m appModel) bodyWidth() int {
	if m.width < 40 {
		return 40
	}
	return m.width
}

func (m appModel) footer() string {
	var help string
	switch {
	case m.mode != modeNormal:
		help = ""
	case m.view == viewWeek:
		help = "enter: open day  a: add account  c: clear all content  q: quit"
	default:
		help = "space: toggle done  enter/e: edit  d: delete account  a: add account  esc: back  q: quit"
	}
	line := styleMuted().Render(help)
	if m.statusLine != "" {
		line = line + "  " + lipgloss.NewStyle().Foreground(colorDone).Render(m.statusLine)
	}
	return line
}

func (m appModel) earningsPanel() string {
	w := m.width - m.width/2 - 4
	if w < 30 {
		w = 30
	}
	rows, total := summary.EarningsTable(m.db.Accounts)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Monthly earnings"))
	b.WriteString("\n\n")
	if len(rows) == 0 {
		b.WriteString(styleMuted().Render("No accounts yet. Press a to add one."))
	}
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("%-16s %-10s $%.2f\n", r.Username, r.Platform, r.MonthlyEarnings))
	}
	if len(rows) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("Total: $%.2f", total)))
	}
	return lipgloss.NewStyle().Width(w).Render(b.String())
}

func (m appModel) dayDetailPanel() string {
	w := m.width - m.width/2 - 4
	if w < 30 {
		w = 30
	}
	it, ok := m.dayList.SelectedItem().(postRowItem)
	if !ok {
		return lipgloss.NewStyle().Width(w).Render(styleMuted().Render("No posts on " + string(m.selectedDay) + "."))
	}

	done := "not done"
	doneStyle := styleMuted()
	if it.post.Completed {
		done = "done"
		doneStyle = lipgloss.NewStyle().Foreground(colorDone)
	}
	content := strings.TrimSpace(it.post.Content)
	if content == "" {
		content = styleMuted().Render("(empty)")
	}
	hashtags := styleMuted().Render("(none)")
	if len(it.account.Hashtags) > 0 {
		hashtags = strings.Join(it.account.Hashtags, " ")
	}

	lines := []string{
		lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%s · %s · Post %d", m.selectedDay, it.account.Username, it.slot)),
		"",
		styleMuted().Render("Platform  ") + string(it.account.Platform),
		styleMuted().Render("Device    ") + it.account.PhoneDevice,
		styleMuted().Render("Contact   ") + contactLine(it.account),
		styleMuted().Render("Hashtags  ") + hashtags,
		styleMuted().Render("Status    ") + doneStyle.Render(done),
		"",
		content,
	}
	return lipgloss.NewStyle().Width(w).Render(strings.Join(lines, "\n"))
}

func contactLine(a model.Account) string {
	if a.Contact.Email != "" {
		return a.Contact.Name + " <" + a.Contact.Email + ">"
	}
	if a.Contact.Phone != "" {
		return a.Contact.Name + " " + a.Contact.Phone
	}
	return a.Contact.Name
}
