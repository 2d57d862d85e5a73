package summary

import (
	"testing"

	"postplan-cli/internal/model"
	"postplan-cli/internal/store"
)

func TestTotalMonthlyEarnings(t *testing.T) {
	accounts := []model.Account{
		{ID: "acct-1", MonthlyEarnings: 1200},
		{ID: "acct-2", MonthlyEarnings: 350.5},
	}
	if got := TotalMonthlyEarnings(accounts); got != 1550.5 {
		t.Fatalf("total = %v, want 1550.5", got)
	}
	if got := TotalMonthlyEarnings(nil); got != 0 {
		t.Fatalf("empty total = %v, want 0", got)
	}
}

func TestStatsForDay(t *testing.T) {
	db := &store.DB{Schedule: model.NewWeeklySchedule()}
	db.Schedule[0].Accounts = []model.AccountPosts{
		{AccountID: "acct-1", Posts: []model.Post{
			{ID: "p1", Completed: true},
			{ID: "p2"},
		}},
		{AccountID: "acct-2", Posts: []model.Post{
			{ID: "p3", Completed: true},
		}},
	}

	st := StatsForDay(db, model.Monday)
	if st.Completed != 2 || st.Total != 3 {
		t.Fatalf("monday stats = %+v, want 2/3", st)
	}
	if st := StatsForDay(db, model.Sunday); st.Completed != 0 || st.Total != 0 {
		t.Fatalf("sunday stats = %+v, want 0/0", st)
	}
}

func TestWeekStatsOrder(t *testing.T) {
	db := &store.DB{Schedule: model.NewWeeklySchedule()}
	stats := WeekStats(db)
	if len(stats) != 7 {
		t.Fatalf("expected 7 entries, got %d", len(stats))
	}
	for i, d := range model.Days {
		if stats[i].Day != d {
			t.Fatalf("stats[%d].Day = %s, want %s", i, stats[i].Day, d)
		}
	}
}

func TestEarningsTableKeepsRosterOrder(t *testing.T) {
	accounts := []model.Account{
		{ID: "acct-2", Username: "b", Platform: model.PlatformInstagram, MonthlyEarnings: 10},
		{ID: "acct-1", Username: "a", Platform: model.PlatformTikTok, MonthlyEarnings: 20},
	}
	rows, total := EarningsTable(accounts)
	if len(rows) != 2 || rows[0].Username != "b" || rows[1].Username != "a" {
		t.Fatalf("row order broken: %+v", rows)
	}
	if total != 30 {
		t.Fatalf("total = %v, want 30", total)
	}
}
