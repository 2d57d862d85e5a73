package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event is one append-only audit record of a mutation.
type Event struct {
	ID       string          `json:"id"`
	Type     string          `json:"type"`
	EntityID string          `json:"entityId"`
	IssuedAt time.Time       `json:"issuedAt"`
	Payload  json.RawMessage `json:"payload,omitempty"`
}

// AppendEvent records a mutation in the events table. Callers treat this as
// best-effort: a failed append never fails the mutation itself.
func (s Store) AppendEvent(typ, entityID string, payload any) error {
	ctx := context.Background()
	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	pb, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx,
		`INSERT INTO events(event_id, type, entity_id, payload_json, issued_at_unixms) VALUES(?, ?, ?, ?, ?)`,
		uuid.NewString(), typ, entityID, string(pb), time.Now().UTC().UnixMilli())
	return err
}

// ListEvents returns up to limit events, newest first. limit <= 0 means all.
func (s Store) ListEvents(limit int) ([]Event, error) {
	ctx := context.Background()
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	q := `SELECT event_id, type, entity_id, payload_json, issued_at_unixms FROM events ORDER BY issued_at_unixms DESC, event_id`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Event{}
	for rows.Next() {
		var e Event
		var payload string
		var issuedMs int64
		if err := rows.Scan(&e.ID, &e.Type, &e.EntityID, &payload, &issuedMs); err != nil {
			return nil, err
		}
		e.Payload = json.RawMessage(payload)
		e.IssuedAt = time.UnixMilli(issuedMs).UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}
