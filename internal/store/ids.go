package store

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
)

// newRandomID returns prefix-<suffix> where suffix is base32 (lowercase, no
// padding). 8 chars base32 ~= 40 bits of space, plenty for a single-user roster.
func newRandomID(prefix string, nbytes int) (string, error) {
	b := make([]byte, nbytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	enc := base32.StdEncoding.WithPadding(base32.NoPadding)
	suffix := strings.ToLower(enc.EncodeToString(b))
	return prefix + "-" + suffix, nil
}

// NextID generates a fresh id with the given prefix (acct, post), collision
// checked against every id currently in the db.
func (s Store) NextID(db *DB, prefix string) string {
	for _, nbytes := range []int{5, 8} {
		for i := 0; i < 10; i++ {
			id, err := newRandomID(prefix, nbytes)
			if err != nil {
				continue
			}
			if !idExists(db, id) {
				return id
			}
		}
	}
	// crypto/rand failing repeatedly is not a state we can do much about;
	// produce a deterministic non-colliding id so callers stay total.
	for i := 1; ; i++ {
		id := fmt.Sprintf("%s-%d", prefix, i)
		if !idExists(db, id) {
			return id
		}
	}
}

func idExists(db *DB, id string) bool {
	for _, a := range db.Accounts {
		if a.ID == id {
			return true
		}
	}
	for _, ds := range db.Schedule {
		for _, ap := range ds.Accounts {
			for _, p := range ap.Posts {
				if p.ID == id {
					return true
				}
			}
		}
	}
	return false
}
