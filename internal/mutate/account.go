package mutate

import (
	"strings"

	"postplan-cli/internal/model"
	"postplan-cli/internal/store"
)

// IDSource mints fresh ids for a prefix (acct, post). Production callers pass
// store.Store.NextID bound to the db; tests inject a deterministic source.
type IDSource func(prefix string) string

type AddAccountResult struct {
	Account      *model.Account
	EventPayload map[string]any
}

// AddAccount appends a new account and fans it out to every day of the week:
// one entry per day, each holding exactly draft.PostsPerDay fresh empty posts.
// Post ids are distinct across all seven days. No field validation happens
// here; that is the form layer's job (internal/validate), enforced before
// this is called. Callers are responsible for saving db and appending the
// account.add event.
func AddAccount(db *store.DB, newID IDSource, draft model.AccountDraft) AddAccountResult {
	if db == nil || newID == nil {
		return AddAccountResult{}
	}

	tags := draft.Hashtags
	if tags == nil {
		tags = []string{}
	}
	account := model.Account{
		ID:              newID("acct"),
		Platform:        draft.Platform,
		Username:        draft.Username,
		PhoneDevice:     draft.PhoneDevice,
		MonthlyEarnings: draft.MonthlyEarnings,
		Contact:         draft.Contact,
		PostsPerDay:     draft.PostsPerDay,
		Hashtags:        tags,
	}
	db.Accounts = append(db.Accounts, account)

	for i := range db.Schedule {
		posts := make([]model.Post, 0, draft.PostsPerDay)
		for n := 0; n < draft.PostsPerDay; n++ {
			posts = append(posts, model.Post{ID: newID("post"), Content: "", Completed: false})
		}
		db.Schedule[i].Accounts = append(db.Schedule[i].Accounts, model.AccountPosts{
			AccountID: account.ID,
			Posts:     posts,
		})
	}

	added, _ := db.FindAccount(account.ID)
	return AddAccountResult{
		Account: added,
		EventPayload: map[string]any{
			"platform":    string(account.Platform),
			"username":    account.Username,
			"postsPerDay": account.PostsPerDay,
		},
	}
}

type DeleteAccountResult struct {
	Changed      bool
	EventPayload map[string]any
}

// DeleteAccount removes the account and its entry from every day of the
// schedule in one state transition. Absent id is a silent no-op.
func DeleteAccount(db *store.DB, accountID string) DeleteAccountResult {
	accountID = strings.TrimSpace(accountID)
	if db == nil || accountID == "" {
		return DeleteAccountResult{}
	}

	changed := false
	kept := db.Accounts[:0]
	for _, a := range db.Accounts {
		if a.ID == accountID {
			changed = true
			continue
		}
		kept = append(kept, a)
	}
	db.Accounts = kept

	for i := range db.Schedule {
		entries := db.Schedule[i].Accounts[:0]
		for _, ap := range db.Schedule[i].Accounts {
			if ap.AccountID == accountID {
				changed = true
				continue
			}
			entries = append(entries, ap)
		}
		db.Schedule[i].Accounts = entries
	}

	if !changed {
		return DeleteAccountResult{}
	}
	return DeleteAccountResult{
		Changed:      true,
		EventPayload: map[string]any{"accountId": accountID},
	}
}

type HashtagsResult struct {
	Account      *model.Account
	Changed      bool
	EventPayload map[string]any
}

// UpdateHashtags replaces the account's hashtag list with exactly the given
// ordered list (full replace, not merge; duplicates allowed). Absent id is a
// silent no-op.
func UpdateHashtags(db *store.DB, accountID string, tags []string) HashtagsResult {
	accountID = strings.TrimSpace(accountID)
	if db == nil || accountID == "" {
		return HashtagsResult{}
	}
	a, ok := db.FindAccount(accountID)
	if !ok {
		return HashtagsResult{}
	}
	next := make([]string, len(tags))
	copy(next, tags)
	a.Hashtags = next
	return HashtagsResult{
		Account: a,
		Changed: true,
		EventPayload: map[string]any{
			"hashtags": next,
		},
	}
}
