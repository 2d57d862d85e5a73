package tui

import (
	"fmt"
	"strings"

	"postplan-cli/internal/model"
	"postplan-cli/internal/summary"

	"github.com/charmbracelet/bubbles/list"
)

type dayItem struct {
	day   model.Day
	stats summary.DayStats
}

func (i dayItem) FilterValue() string { return string(i.day) }
func (i dayItem) Title() string       { return string(i.day) }
func (i dayItem) Description() string {
	if i.stats.Total == 0 {
		return "no posts scheduled"
	}
	return fmt.Sprintf("%d/%d posts done", i.stats.Completed, i.stats.Total)
}

// postRowItem is one post slot of one account on the selected day.
type postRowItem struct {
	account model.Account
	post    model.Post
	// 1-based slot number within the account's day ("Post 2").
	slot int
}

func (i postRowItem) FilterValue() string {
	return i.account.Username + " " + i.post.Content
}

func (i postRowItem) Title() string {
	mark := "[ ]"
	if i.post.Completed {
		mark = "[x]"
	}
	return fmt.Sprintf("%s %s · Post %d", mark, i.account.Username, i.slot)
}

func (i postRowItem) Description() string {
	content := strings.TrimSpace(i.post.Content)
	if content == "" {
		return "(empty)"
	}
	return content
}

func newList(items []list.Item, itemName, itemsName string) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	// We render our own header + footer, so keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName(itemName, itemsName)
	// The bubbles list quits on ESC by default; here ESC means "back/cancel".
	l.KeyMap.Quit.SetKeys("q")
	return l
}
