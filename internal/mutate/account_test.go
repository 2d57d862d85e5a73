package mutate

import (
	"fmt"
	"reflect"
	"testing"

	"postplan-cli/internal/model"
	"postplan-cli/internal/store"
)

// seqIDs returns a deterministic IDSource: acct-1, post-1, post-2, ...
func seqIDs() IDSource {
	counts := map[string]int{}
	return func(prefix string) string {
		counts[prefix]++
		return fmt.Sprintf("%s-%d", prefix, counts[prefix])
	}
}

func emptyDB() *store.DB {
	return &store.DB{Accounts: []model.Account{}, Schedule: model.NewWeeklySchedule()}
}

func draft(username string, postsPerDay int) model.AccountDraft {
	return model.AccountDraft{
		Platform:        model.PlatformTikTok,
		Username:        username,
		PhoneDevice:     "Pixel 8",
		MonthlyEarnings: 1200,
		PostsPerDay:     postsPerDay,
		Contact:         model.Contact{Name: "Ana", Email: "ana@example.com"},
		Hashtags:        []string{"fitness", "travel"},
	}
}

func TestAddAccountFansOutToAllSevenDays(t *testing.T) {
	db := emptyDB()

	res := AddAccount(db, seqIDs(), draft("a", 2))
	if res.Account == nil {
		t.Fatalf("expected account")
	}
	if len(db.Accounts) != 1 {
		t.Fatalf("expected 1 account, got %d", len(db.Accounts))
	}

	seen := map[string]bool{res.Account.ID: true}
	if len(db.Schedule) != 7 {
		t.Fatalf("expected 7 days, got %d", len(db.Schedule))
	}
	for _, ds := range db.Schedule {
		if len(ds.Accounts) != 1 {
			t.Fatalf("%s: expected 1 entry, got %d", ds.Day, len(ds.Accounts))
		}
		entry := ds.Accounts[0]
		if entry.AccountID != res.Account.ID {
			t.Fatalf("%s: entry references %q, want %q", ds.Day, entry.AccountID, res.Account.ID)
		}
		if len(entry.Posts) != 2 {
			t.Fatalf("%s: expected 2 posts, got %d", ds.Day, len(entry.Posts))
		}
		for _, p := range entry.Posts {
			if p.Content != "" || p.Completed {
				t.Fatalf("%s: new post not empty/incomplete: %+v", ds.Day, p)
			}
			if seen[p.ID] {
				t.Fatalf("duplicate id %q across the week", p.ID)
			}
			seen[p.ID] = true
		}
	}
	// 1 account id + 7*2 post ids, all distinct.
	if len(seen) != 15 {
		t.Fatalf("expected 15 distinct ids, got %d", len(seen))
	}
}

func TestAddAccountKeepsInsertionOrder(t *testing.T) {
	db := emptyDB()
	ids := seqIDs()

	AddAccount(db, ids, draft("first", 1))
	AddAccount(db, ids, draft("second", 1))

	if db.Accounts[0].Username != "first" || db.Accounts[1].Username != "second" {
		t.Fatalf("account order broken: %+v", db.Accounts)
	}
	for _, ds := range db.Schedule {
		if ds.Accounts[0].AccountID != db.Accounts[0].ID || ds.Accounts[1].AccountID != db.Accounts[1].ID {
			t.Fatalf("%s: entry order diverges from roster order", ds.Day)
		}
	}
}

func TestDeleteAccountRemovesFromAllDays(t *testing.T) {
	db := emptyDB()
	ids := seqIDs()

	a := AddAccount(db, ids, draft("a", 2))
	b := AddAccount(db, ids, draft("b", 1))

	res := DeleteAccount(db, a.Account.ID)
	if !res.Changed {
		t.Fatalf("expected changed=true")
	}
	if len(db.Accounts) != 1 || db.Accounts[0].ID != b.Account.ID {
		t.Fatalf("unexpected roster: %+v", db.Accounts)
	}
	for _, ds := range db.Schedule {
		if len(ds.Accounts) != 1 || ds.Accounts[0].AccountID != b.Account.ID {
			t.Fatalf("%s: stale entry after delete: %+v", ds.Day, ds.Accounts)
		}
	}

	// Absent id: silent no-op.
	res2 := DeleteAccount(db, a.Account.ID)
	if res2.Changed {
		t.Fatalf("expected no-op for deleted id")
	}
}

func TestAddDeleteSequencesKeepReferentialIntegrity(t *testing.T) {
	db := emptyDB()
	ids := seqIDs()

	added := []string{}
	for i := 0; i < 4; i++ {
		res := AddAccount(db, ids, draft(fmt.Sprintf("u%d", i), i+1))
		added = append(added, res.Account.ID)
	}
	DeleteAccount(db, added[1])
	DeleteAccount(db, added[3])
	DeleteAccount(db, "acct-nope")

	want := map[string]bool{}
	for _, a := range db.Accounts {
		want[a.ID] = true
	}
	for _, ds := range db.Schedule {
		got := map[string]bool{}
		for _, ap := range ds.Accounts {
			got[ap.AccountID] = true
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("%s: entry set %v != roster set %v", ds.Day, got, want)
		}
	}
}

func TestUpdateHashtagsFullReplace(t *testing.T) {
	db := emptyDB()
	res := AddAccount(db, seqIDs(), draft("a", 1))

	got := UpdateHashtags(db, res.Account.ID, []string{"gym", "gym", "food"})
	if !got.Changed {
		t.Fatalf("expected changed=true")
	}
	// Full replace, order kept, duplicates allowed.
	want := []string{"gym", "gym", "food"}
	if !reflect.DeepEqual(got.Account.Hashtags, want) {
		t.Fatalf("hashtags = %v, want %v", got.Account.Hashtags, want)
	}

	if UpdateHashtags(db, "acct-nope", []string{"x"}).Changed {
		t.Fatalf("expected no-op for unknown account")
	}
	if !reflect.DeepEqual(db.Accounts[0].Hashtags, want) {
		t.Fatalf("no-op mutated state: %v", db.Accounts[0].Hashtags)
	}
}
