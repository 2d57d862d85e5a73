package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeInto(f *accountForm, s string) {
	for _, r := range s {
		f.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestFormFocusWraps(t *testing.T) {
	f := newAccountForm()
	if f.focus != fieldPlatform {
		t.Fatalf("initial focus = %d", f.focus)
	}
	f.update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if f.focus != fieldCount-1 {
		t.Fatalf("shift+tab from first field should wrap to last, got %d", f.focus)
	}
	f.update(tea.KeyMsg{Type: tea.KeyTab})
	if f.focus != fieldPlatform {
		t.Fatalf("tab from last field should wrap to first, got %d", f.focus)
	}
}

func TestFormCleanSubmit(t *testing.T) {
	f := newAccountForm()
	values := [fieldCount]string{
		fieldPlatform:     "Instagram",
		fieldUsername:     "mara",
		fieldPhoneDevice:  "iPhone 15",
		fieldEarnings:     "250.50",
		fieldPostsPerDay:  "3",
		fieldContactName:  "Mara",
		fieldContactEmail: "mara@example.com",
		fieldHashtags:     "travel food",
	}
	for i := 0; i < fieldCount; i++ {
		f.setFocus(i)
		typeInto(&f, values[i])
	}

	draft, done, _ := f.update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if !done {
		t.Fatalf("expected clean submit, errs: %v", f.errs)
	}
	if draft.Username != "mara" || draft.PostsPerDay != 3 || draft.MonthlyEarnings != 250.50 {
		t.Fatalf("draft mismatch: %+v", draft)
	}
	if len(draft.Hashtags) != 2 || draft.Hashtags[0] != "travel" {
		t.Fatalf("hashtags mismatch: %v", draft.Hashtags)
	}
}

func TestFormSubmitJumpsToFirstError(t *testing.T) {
	f := newAccountForm()
	f.setFocus(fieldHashtags)
	_, done, _ := f.update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if done {
		t.Fatalf("empty form must not submit")
	}
	if f.focus != fieldPlatform {
		t.Fatalf("focus should land on first broken field, got %d", f.focus)
	}
}
