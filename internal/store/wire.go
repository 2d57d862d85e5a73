package store

import (
	"encoding/json"
	"strings"

	"postplan-cli/internal/model"
)

// wireAccount defers hashtag decoding: older versions persisted hashtags as a
// single space-delimited string, current versions as a list. Both decode here.
type wireAccount struct {
	ID              string          `json:"id"`
	Platform        model.Platform  `json:"platform"`
	Username        string          `json:"username"`
	PhoneDevice     string          `json:"phoneDevice"`
	MonthlyEarnings float64         `json:"monthlyEarnings"`
	Contact         model.Contact   `json:"contact"`
	PostsPerDay     int             `json:"postsPerDay"`
	Hashtags        json.RawMessage `json:"hashtags"`
}

func decodeAccounts(b []byte) ([]model.Account, error) {
	var wire []wireAccount
	if err := json.Unmarshal(b, &wire); err != nil {
		return nil, err
	}
	out := make([]model.Account, 0, len(wire))
	for _, w := range wire {
		tags, err := decodeHashtags(w.Hashtags)
		if err != nil {
			return nil, err
		}
		out = append(out, model.Account{
			ID:              w.ID,
			Platform:        w.Platform,
			Username:        w.Username,
			PhoneDevice:     w.PhoneDevice,
			MonthlyEarnings: w.MonthlyEarnings,
			Contact:         w.Contact,
			PostsPerDay:     w.PostsPerDay,
			Hashtags:        tags,
		})
	}
	return out, nil
}

// decodeHashtags normalizes the two wire shapes:
// - list form (current): used as-is
// - string form (legacy): split on whitespace, empty tokens dropped
// - missing/null: empty list
func decodeHashtags(raw json.RawMessage) ([]string, error) {
	if isNullOrEmpty(raw) {
		return []string{}, nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		if list == nil {
			list = []string{}
		}
		return list, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	out := []string{}
	for _, tag := range strings.Fields(s) {
		out = append(out, tag)
	}
	return out, nil
}

func decodeWeek(b []byte) (model.WeeklySchedule, error) {
	var week model.WeeklySchedule
	if err := json.Unmarshal(b, &week); err != nil {
		return nil, err
	}
	return week, nil
}

// legacyDB is the old single-file db.json layout, imported once into SQLite.
type legacyDB struct {
	Accounts json.RawMessage `json:"accounts"`
	Schedule json.RawMessage `json:"weeklySchedule"`
}

func loadLegacyDB(b []byte) (*DB, error) {
	var legacy legacyDB
	if err := json.Unmarshal(b, &legacy); err != nil {
		return nil, err
	}
	out := &DB{Accounts: []model.Account{}, Schedule: model.NewWeeklySchedule()}
	if !isNullOrEmpty(legacy.Accounts) {
		accounts, err := decodeAccounts(legacy.Accounts)
		if err != nil {
			return nil, err
		}
		out.Accounts = accounts
	}
	if !isNullOrEmpty(legacy.Schedule) {
		week, err := decodeWeek(legacy.Schedule)
		if err != nil {
			return nil, err
		}
		out.Schedule = week
	}
	return out, nil
}

func isNullOrEmpty(b []byte) bool {
	if len(b) == 0 {
		return true
	}
	s := strings.TrimSpace(string(b))
	return s == "" || s == "null"
}
