package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"postplan-cli/internal/model"
)

func testDB() *DB {
	db := &DB{Accounts: []model.Account{}, Schedule: model.NewWeeklySchedule()}
	db.Accounts = append(db.Accounts, model.Account{
		ID:              "acct-a",
		Platform:        model.PlatformInstagram,
		Username:        "a",
		PhoneDevice:     "iPhone 15",
		MonthlyEarnings: 900.5,
		Contact:         model.Contact{Name: "Ana", Email: "ana@example.com"},
		PostsPerDay:     1,
		Hashtags:        []string{"fitness", "travel"},
	})
	for i := range db.Schedule {
		db.Schedule[i].Accounts = append(db.Schedule[i].Accounts, model.AccountPosts{
			AccountID: "acct-a",
			Posts:     []model.Post{{ID: "post-" + string(db.Schedule[i].Day), Content: "", Completed: false}},
		})
	}
	return db
}

func TestSQLiteSaveLoadRoundTrip(t *testing.T) {
	s := Store{Dir: t.TempDir()}

	db := testDB()
	db.Schedule[0].Accounts[0].Posts[0].Content = "monday reel"
	db.Schedule[0].Accounts[0].Posts[0].Completed = true

	if err := s.Save(db); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if !reflect.DeepEqual(got.Accounts, db.Accounts) {
		t.Fatalf("accounts round trip:\ngot:  %+v\nwant: %+v", got.Accounts, db.Accounts)
	}
	if !reflect.DeepEqual(got.Schedule, db.Schedule) {
		t.Fatalf("schedule round trip:\ngot:  %+v\nwant: %+v", got.Schedule, db.Schedule)
	}
}

func TestLoadEmptyStoreReturnsFreshWeek(t *testing.T) {
	s := Store{Dir: t.TempDir()}

	db, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(db.Accounts) != 0 {
		t.Fatalf("expected no accounts, got %+v", db.Accounts)
	}
	if len(db.Schedule) != 7 {
		t.Fatalf("expected 7 days, got %d", len(db.Schedule))
	}
	for i, d := range model.Days {
		if db.Schedule[i].Day != d {
			t.Fatalf("day %d = %s, want %s", i, db.Schedule[i].Day, d)
		}
	}
}

func TestLoadImportsLegacyDBJSONOnce(t *testing.T) {
	dir := t.TempDir()
	s := Store{Dir: dir}

	legacy := `{
		"accounts": [{"id": "acct-old", "platform": "TikTok", "username": "old", "hashtags": "fitness travel"}],
		"weeklySchedule": [
			{"day": "Monday", "accounts": [{"accountId": "acct-old", "posts": [{"id": "post-old", "content": "", "completed": false}]}]}
		]
	}`
	if err := os.WriteFile(filepath.Join(dir, "db.json"), []byte(legacy), 0o644); err != nil {
		t.Fatalf("write legacy: %v", err)
	}

	db, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(db.Accounts) != 1 || db.Accounts[0].ID != "acct-old" {
		t.Fatalf("legacy accounts not imported: %+v", db.Accounts)
	}
	// The migration already normalized the string form.
	if !reflect.DeepEqual(db.Accounts[0].Hashtags, []string{"fitness", "travel"}) {
		t.Fatalf("hashtags not migrated: %#v", db.Accounts[0].Hashtags)
	}

	// The import happens once: later saves win over the old file.
	db.Accounts[0].Username = "renamed"
	if err := s.Save(db); err != nil {
		t.Fatalf("save: %v", err)
	}
	again, err := s.Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if again.Accounts[0].Username != "renamed" {
		t.Fatalf("legacy import overwrote sqlite state: %+v", again.Accounts[0])
	}
}

func TestAppendAndListEvents(t *testing.T) {
	s := Store{Dir: t.TempDir()}

	if err := s.AppendEvent("account.add", "acct-a", map[string]any{"username": "a"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.AppendEvent("post.toggle", "post-x", map[string]any{"completed": true}); err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := s.ListEvents(0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	types := map[string]bool{}
	for _, e := range events {
		if e.ID == "" {
			t.Fatalf("event without id: %+v", e)
		}
		types[e.Type] = true
	}
	if !types["account.add"] || !types["post.toggle"] {
		t.Fatalf("unexpected types: %v", types)
	}

	limited, err := s.ListEvents(1)
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("expected 1 event with limit, got %d", len(limited))
	}
}
