package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type confirmFocus int

const (
	confirmFocusConfirm confirmFocus = iota
	confirmFocusCancel
)

type confirmState struct {
	title string
	body  string
	focus confirmFocus
	apply func(*appModel)
}

func renderConfirm(width int, c confirmState) string {
	// No borders: nested bordered components show background artifacts in
	// some terminals.
	btnBase := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
	btnActive := btnBase.
		Foreground(colorSelectedFg).
		Background(colorSelectedBg).
		Bold(true)

	yes := btnBase.Render("Confirm")
	no := btnBase.Render("Cancel")
	if c.focus == confirmFocusConfirm {
		yes = btnActive.Render("Confirm")
	} else {
		no = btnActive.Render("Cancel")
	}

	w := width - 4
	if w < 30 {
		w = 30
	}
	content := strings.Join([]string{
		lipgloss.NewStyle().Bold(true).Render(c.title),
		"",
		lipgloss.NewStyle().Width(w).Render(c.body),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, yes, " ", no),
		"",
		styleMuted().Render("tab: focus   enter: select   esc: cancel"),
	}, "\n")
	return content
}
