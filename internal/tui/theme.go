package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The TUI must stay readable on light and dark terminal backgrounds, so colors
// are lipgloss.AdaptiveColor and "faint" styling only applies on dark
// backgrounds (faint on light terminals often becomes illegible).

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted      lipgloss.TerminalColor = ac("240", "243")
	colorDone       lipgloss.TerminalColor = ac("28", "77")
	colorDanger     lipgloss.TerminalColor = ac("124", "203")
	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg lipgloss.TerminalColor = ac("235", "255")
	colorControlBg  lipgloss.TerminalColor = ac("252", "238")
	colorSurfaceFg  lipgloss.TerminalColor = ac("235", "252")
)

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

// applyColorProfilePreference sets Lip Gloss's color profile for the TUI.
// Only NO_COLOR is honored; otherwise we follow terminal capabilities, with
// env hints (COLORTERM/TERM) trusted over the probe when they claim more.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") {
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}
	lipgloss.SetColorProfile(profile)
}

// applyThemePreference overrides background detection for terminals that
// don't report it reliably. POSTPLAN_TUI_THEME=light|dark wins; otherwise the
// COLORFGBG heuristic ("fg;bg" with bg 0-6 or 8 meaning dark) applies.
func applyThemePreference() {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("POSTPLAN_TUI_THEME"))) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return
	}

	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if len(parts) >= 2 {
			switch strings.TrimSpace(parts[len(parts)-1]) {
			case "0", "1", "2", "3", "4", "5", "6", "8":
				lipgloss.SetHasDarkBackground(true)
			case "7", "9", "10", "11", "12", "13", "14", "15":
				lipgloss.SetHasDarkBackground(false)
			}
		}
	}
}
