package store

import (
	"reflect"
	"testing"
)

func TestDecodeAccountsLegacyHashtagString(t *testing.T) {
	b := []byte(`[{
		"id": "acct-1",
		"platform": "TikTok",
		"username": "a",
		"phoneDevice": "Pixel 8",
		"monthlyEarnings": 1200,
		"contact": {"name": "Ana", "email": "ana@example.com"},
		"postsPerDay": 2,
		"hashtags": "fitness travel"
	}]`)

	accounts, err := decodeAccounts(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(accounts) != 1 {
		t.Fatalf("expected 1 account, got %d", len(accounts))
	}
	want := []string{"fitness", "travel"}
	if !reflect.DeepEqual(accounts[0].Hashtags, want) {
		t.Fatalf("hashtags = %v, want %v", accounts[0].Hashtags, want)
	}
}

func TestDecodeAccountsHashtagShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "list form kept as-is", raw: `["a", "a", "b"]`, want: []string{"a", "a", "b"}},
		{name: "empty list", raw: `[]`, want: []string{}},
		{name: "string with extra whitespace", raw: `"  gym   food "`, want: []string{"gym", "food"}},
		{name: "empty string", raw: `""`, want: []string{}},
		{name: "null", raw: `null`, want: []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := []byte(`[{"id": "acct-1", "hashtags": ` + tc.raw + `}]`)
			accounts, err := decodeAccounts(b)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !reflect.DeepEqual(accounts[0].Hashtags, tc.want) {
				t.Fatalf("hashtags = %#v, want %#v", accounts[0].Hashtags, tc.want)
			}
		})
	}
}

func TestDecodeAccountsMissingHashtagsField(t *testing.T) {
	accounts, err := decodeAccounts([]byte(`[{"id": "acct-1", "username": "a"}]`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if accounts[0].Hashtags == nil || len(accounts[0].Hashtags) != 0 {
		t.Fatalf("expected empty non-nil hashtags, got %#v", accounts[0].Hashtags)
	}
}

func TestLoadLegacyDB(t *testing.T) {
	b := []byte(`{
		"accounts": [{"id": "acct-1", "username": "a", "hashtags": "one two"}],
		"weeklySchedule": [
			{"day": "Monday", "accounts": [{"accountId": "acct-1", "posts": [{"id": "post-1", "content": "hi", "completed": true}]}]}
		]
	}`)

	db, err := loadLegacyDB(b)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(db.Accounts) != 1 || db.Accounts[0].Hashtags[0] != "one" {
		t.Fatalf("unexpected accounts: %+v", db.Accounts)
	}
	if len(db.Schedule) != 1 {
		t.Fatalf("schedule read verbatim, got %d days", len(db.Schedule))
	}
	p := db.Schedule[0].Accounts[0].Posts[0]
	if p.ID != "post-1" || p.Content != "hi" || !p.Completed {
		t.Fatalf("unexpected post: %+v", p)
	}
}

func TestLoadLegacyDBEmptySlots(t *testing.T) {
	db, err := loadLegacyDB([]byte(`{}`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(db.Accounts) != 0 {
		t.Fatalf("expected no accounts, got %+v", db.Accounts)
	}
	if len(db.Schedule) != 7 {
		t.Fatalf("expected fresh 7-day week, got %d", len(db.Schedule))
	}
}
