package tui

import (
	"strings"

	"postplan-cli/internal/model"
	"postplan-cli/internal/validate"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Field order mirrors the add-account form: platform first, contact last.
const (
	fieldPlatform = iota
	fieldUsername
	fieldPhoneDevice
	fieldEarnings
	fieldPostsPerDay
	fieldContactName
	fieldContactEmail
	fieldContactPhone
	fieldHashtags
	fieldCount
)

var formLabels = [fieldCount]string{
	"Platform (TikTok|Instagram)",
	"Username",
	"Phone device",
	"Monthly earnings",
	"Posts per day",
	"Contact name",
	"Contact email",
	"Contact phone",
	"Hashtags (space separated)",
}

// Field error keys as produced by internal/validate.
var formErrKeys = [fieldCount]string{
	"platform", "username", "phoneDevice", "monthlyEarnings", "postsPerDay",
	"contactName", "contactEmail", "contactPhone", "",
}

type accountForm struct {
	inputs [fieldCount]textinput.Model
	focus  int
	errs   validate.FieldErrors
}

func newAccountForm() accountForm {
	var f accountForm
	for i := 0; i < fieldCount; i++ {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 120
		f.inputs[i] = ti
	}
	f.inputs[fieldPlatform].Placeholder = string(model.PlatformTikTok)
	f.inputs[fieldPostsPerDay].Placeholder = "1"
	f.inputs[fieldEarnings].Placeholder = "0"
	f.inputs[fieldPlatform].Focus()
	return f
}

func (f *accountForm) setFocus(i int) {
	if i < 0 {
		i = fieldCount - 1
	}
	if i >= fieldCount {
		i = 0
	}
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

// update routes keys into the form. It returns the validated draft and
// done=true when the form was submitted cleanly.
func (f *accountForm) update(msg tea.Msg) (draft model.AccountDraft, done bool, cmd tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			f.setFocus(f.focus + 1)
			return model.AccountDraft{}, false, nil
		case "shift+tab", "up":
			f.setFocus(f.focus - 1)
			return model.AccountDraft{}, false, nil
		case "enter":
			if f.focus < fieldCount-1 {
				f.setFocus(f.focus + 1)
				return model.AccountDraft{}, false, nil
			}
			return f.submit()
		case "ctrl+s":
			return f.submit()
		}
	}
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return model.AccountDraft{}, false, cmd
}

func (f *accountForm) submit() (model.AccountDraft, bool, tea.Cmd) {
	draft, errs := validate.Account(validate.AccountForm{
		Platform:        f.inputs[fieldPlatform].Value(),
		Username:        f.inputs[fieldUsername].Value(),
		PhoneDevice:     f.inputs[fieldPhoneDevice].Value(),
		MonthlyEarnings: f.inputs[fieldEarnings].Value(),
		PostsPerDay:     f.inputs[fieldPostsPerDay].Value(),
		ContactName:     f.inputs[fieldContactName].Value(),
		ContactEmail:    f.inputs[fieldContactEmail].Value(),
		ContactPhone:    f.inputs[fieldContactPhone].Value(),
		Hashtags:        strings.Fields(f.inputs[fieldHashtags].Value()),
	})
	if errs.Any() {
		f.errs = errs
		// Jump to the first broken field so the fix is one keystroke away.
		for i := 0; i < fieldCount; i++ {
			if formErrKeys[i] != "" && errs[formErrKeys[i]] != "" {
				f.setFocus(i)
				break
			}
		}
		return model.AccountDraft{}, false, nil
	}
	f.errs = nil
	return draft, true, nil
}

func (f *accountForm) view(width int) string {
	label := styleMuted()
	errStyle := lipgloss.NewStyle().Foreground(colorDanger)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Add account"))
	b.WriteString("\n\n")
	for i := 0; i < fieldCount; i++ {
		marker := "  "
		if i == f.focus {
			marker = "> "
		}
		b.WriteString(marker + label.Render(formLabels[i]) + "\n")
		b.WriteString("  " + f.inputs[i].View() + "\n")
		if k := formErrKeys[i]; k != "" && f.errs[k] != "" {
			b.WriteString("  " + errStyle.Render(f.errs[k]) + "\n")
		}
	}
	b.WriteString("\n" + styleMuted().Render("tab/enter: next field   ctrl+s: save   esc: cancel"))
	return lipgloss.NewStyle().Width(width).Render(b.String())
}
