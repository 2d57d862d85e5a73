package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"postplan-cli/internal/model"

	_ "modernc.org/sqlite"
)

const (
	slotAccounts = "accounts"
	slotSchedule = "weeklySchedule"
)

func (s Store) sqlitePath() string {
	return filepath.Join(filepath.Clean(s.Dir), "index.sqlite")
}

func (s Store) openSQLite(ctx context.Context) (*sql.DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.sqlitePath())
	if err != nil {
		return nil, err
	}
	// WAL enables one writer + many readers; busy_timeout avoids
	// "database is locked" flakiness when the TUI and CLI overlap.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := migrateSQLiteState(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func migrateSQLiteState(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		// The string-keyed store: one row per slot, values are JSON.
		`CREATE TABLE IF NOT EXISTS slots (
			k TEXT PRIMARY KEY,
			v TEXT NOT NULL,
			updated_at_unixms INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS events (
			event_id TEXT PRIMARY KEY,
			type TEXT NOT NULL,
			entity_id TEXT NOT NULL,
			payload_json TEXT NOT NULL,
			issued_at_unixms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_events_issued ON events(issued_at_unixms);`,
	}
	for _, st := range stmts {
		if _, err := db.ExecContext(ctx, st); err != nil {
			return err
		}
	}
	return nil
}

// LoadSQLite loads state from the store's SQLite db. If both slots are empty
// but a legacy db.json exists, it imports db.json into SQLite once (applying
// the hashtag migration) and then loads from SQLite.
func (s Store) LoadSQLite(ctx context.Context) (*DB, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	hasState, err := slotsHaveAnyRows(ctx, db)
	if err != nil {
		return nil, err
	}
	if !hasState {
		if b, err := os.ReadFile(s.legacyDBPath()); err == nil && len(b) > 0 {
			legacy, err := loadLegacyDB(b)
			if err != nil {
				return nil, err
			}
			if err := s.SaveSQLite(ctx, legacy); err != nil {
				return nil, err
			}
		}
	}

	return loadStateFromSlots(ctx, db)
}

func (s Store) SaveSQLite(ctx context.Context, st *DB) error {
	if st == nil {
		return errors.New("nil db")
	}
	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	// Two independent slot writes, not one combined transaction. Single-user
	// single-device risk accepted: a crash between them can leave the slots
	// briefly inconsistent on next load.
	if err := writeSlot(ctx, db, slotAccounts, st.Accounts); err != nil {
		return err
	}
	return writeSlot(ctx, db, slotSchedule, st.Schedule)
}

func writeSlot(ctx context.Context, db *sql.DB, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx,
		`INSERT OR REPLACE INTO slots(k, v, updated_at_unixms) VALUES(?, ?, ?)`,
		key, string(raw), time.Now().UTC().UnixMilli())
	return err
}

func readSlot(ctx context.Context, db *sql.DB, key string) ([]byte, bool, error) {
	var v string
	err := db.QueryRowContext(ctx, `SELECT v FROM slots WHERE k = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(v), true, nil
}

func slotsHaveAnyRows(ctx context.Context, db *sql.DB) (bool, error) {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(1) FROM slots`).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

func loadStateFromSlots(ctx context.Context, db *sql.DB) (*DB, error) {
	out := &DB{Accounts: []model.Account{}, Schedule: model.NewWeeklySchedule()}

	if b, ok, err := readSlot(ctx, db, slotAccounts); err != nil {
		return nil, err
	} else if ok {
		accounts, err := decodeAccounts(b)
		if err != nil {
			return nil, err
		}
		out.Accounts = accounts
	}

	if b, ok, err := readSlot(ctx, db, slotSchedule); err != nil {
		return nil, err
	} else if ok {
		week, err := decodeWeek(b)
		if err != nil {
			return nil, err
		}
		out.Schedule = week
	}

	return out, nil
}
