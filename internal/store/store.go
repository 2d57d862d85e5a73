package store

import (
	"context"
	"os"
	"path/filepath"

	"postplan-cli/internal/model"
)

const legacyDBFileName = "db.json"

// DB is the full in-memory state: the account roster and the seven-day
// schedule. Both are persisted as independent slots (see sqlite_state.go).
type DB struct {
	Accounts []model.Account      `json:"accounts"`
	Schedule model.WeeklySchedule `json:"weeklySchedule"`
}

type Store struct {
	Dir string
}

// DiscoverDir walks up from start looking for an existing .postplan dir.
func DiscoverDir(start string) (string, bool) {
	dir := start
	for {
		candidate := filepath.Join(dir, ".postplan")
		if st, err := os.Stat(candidate); err == nil && st.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func DefaultDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if found, ok := DiscoverDir(cwd); ok {
		return found, nil
	}
	return filepath.Join(cwd, ".postplan"), nil
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) legacyDBPath() string {
	return filepath.Join(s.Dir, legacyDBFileName)
}

func (s Store) Load() (*DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	return s.LoadSQLite(context.Background())
}

// Save persists both slots. The accounts and weeklySchedule writes are
// intentionally independent, matching the two-slot store contract.
func (s Store) Save(db *DB) error {
	if err := s.Ensure(); err != nil {
		return err
	}
	return s.SaveSQLite(context.Background(), db)
}

func (db *DB) FindAccount(id string) (*model.Account, bool) {
	for i := range db.Accounts {
		if db.Accounts[i].ID == id {
			return &db.Accounts[i], true
		}
	}
	return nil, false
}

func (db *DB) FindDay(day model.Day) (*model.DaySchedule, bool) {
	for i := range db.Schedule {
		if db.Schedule[i].Day == day {
			return &db.Schedule[i], true
		}
	}
	return nil, false
}

func (db *DB) FindAccountPosts(day model.Day, accountID string) (*model.AccountPosts, bool) {
	ds, ok := db.FindDay(day)
	if !ok {
		return nil, false
	}
	for i := range ds.Accounts {
		if ds.Accounts[i].AccountID == accountID {
			return &ds.Accounts[i], true
		}
	}
	return nil, false
}

// FindPost resolves the unique post at (day, accountId, postId), if any.
func (db *DB) FindPost(day model.Day, accountID, postID string) (*model.Post, bool) {
	ap, ok := db.FindAccountPosts(day, accountID)
	if !ok {
		return nil, false
	}
	for i := range ap.Posts {
		if ap.Posts[i].ID == postID {
			return &ap.Posts[i], true
		}
	}
	return nil, false
}
