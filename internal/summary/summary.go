// Package summary computes read-only derived values for display. Nothing here
// is ever stored.
package summary

import (
	"postplan-cli/internal/model"
	"postplan-cli/internal/store"
)

// TotalMonthlyEarnings sums monthly earnings across all accounts.
func TotalMonthlyEarnings(accounts []model.Account) float64 {
	var total float64
	for _, a := range accounts {
		total += a.MonthlyEarnings
	}
	return total
}

type DayStats struct {
	Day       model.Day `json:"day"`
	Completed int       `json:"completed"`
	Total     int       `json:"total"`
}

// StatsForDay counts completed/total posts across all accounts for one day.
func StatsForDay(db *store.DB, day model.Day) DayStats {
	st := DayStats{Day: day}
	ds, ok := db.FindDay(day)
	if !ok {
		return st
	}
	for _, ap := range ds.Accounts {
		for _, p := range ap.Posts {
			st.Total++
			if p.Completed {
				st.Completed++
			}
		}
	}
	return st
}

// WeekStats returns per-day stats in fixed Monday..Sunday order.
func WeekStats(db *store.DB) []DayStats {
	out := make([]DayStats, 0, len(model.Days))
	for _, d := range model.Days {
		out = append(out, StatsForDay(db, d))
	}
	return out
}

type EarningsRow struct {
	AccountID       string         `json:"accountId"`
	Username        string         `json:"username"`
	Platform        model.Platform `json:"platform"`
	MonthlyEarnings float64        `json:"monthlyEarnings"`
}

// EarningsTable returns the per-account earnings rows plus the total, in
// account insertion order.
func EarningsTable(accounts []model.Account) ([]EarningsRow, float64) {
	rows := make([]EarningsRow, 0, len(accounts))
	for _, a := range accounts {
		rows = append(rows, EarningsRow{
			AccountID:       a.ID,
			Username:        a.Username,
			Platform:        a.Platform,
			MonthlyEarnings: a.MonthlyEarnings,
		})
	}
	return rows, TotalMonthlyEarnings(accounts)
}
