package mutate

import (
	"strings"

	"postplan-cli/internal/model"
	"postplan-cli/internal/store"
)

type PostResult struct {
	Post         *model.Post
	Changed      bool
	EventPayload map[string]any
}

// SetPostContent replaces the content of the post at (day, accountId, postId).
// An unresolved address leaves the schedule untouched. Callers are
// responsible for saving db and appending the post.set_content event.
func SetPostContent(db *store.DB, day model.Day, accountID, postID, content string) PostResult {
	accountID = strings.TrimSpace(accountID)
	postID = strings.TrimSpace(postID)
	if db == nil || accountID == "" || postID == "" {
		return PostResult{}
	}
	p, ok := db.FindPost(day, accountID, postID)
	if !ok {
		return PostResult{}
	}
	p.Content = content
	return PostResult{
		Post:    p,
		Changed: true,
		EventPayload: map[string]any{
			"day":     string(day),
			"content": content,
		},
	}
}

// TogglePost flips the completion flag at (day, accountId, postId).
// An unresolved address is a silent no-op.
func TogglePost(db *store.DB, day model.Day, accountID, postID string) PostResult {
	accountID = strings.TrimSpace(accountID)
	postID = strings.TrimSpace(postID)
	if db == nil || accountID == "" || postID == "" {
		return PostResult{}
	}
	p, ok := db.FindPost(day, accountID, postID)
	if !ok {
		return PostResult{}
	}
	p.Completed = !p.Completed
	return PostResult{
		Post:    p,
		Changed: true,
		EventPayload: map[string]any{
			"day":       string(day),
			"completed": p.Completed,
		},
	}
}

type ClearContentResult struct {
	Cleared      int
	Changed      bool
	EventPayload map[string]any
}

// ClearAllPostContent blanks the content of every post in every day for every
// account. Completion flags and ids are untouched. Idempotent.
func ClearAllPostContent(db *store.DB) ClearContentResult {
	if db == nil {
		return ClearContentResult{}
	}
	cleared := 0
	for i := range db.Schedule {
		for j := range db.Schedule[i].Accounts {
			posts := db.Schedule[i].Accounts[j].Posts
			for k := range posts {
				if posts[k].Content != "" {
					posts[k].Content = ""
					cleared++
				}
			}
		}
	}
	if cleared == 0 {
		return ClearContentResult{}
	}
	return ClearContentResult{
		Cleared: cleared,
		Changed: true,
		EventPayload: map[string]any{
			"cleared": cleared,
		},
	}
}
