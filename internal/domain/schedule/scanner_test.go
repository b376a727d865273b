package schedule

import (
	"testing"
	"time"
)

func TestFindDue_FiltersDisabledAndFuture(t *testing.T) {
	now := time.Date(2025, 6, 11, 10, 0, 0, 0, time.UTC)

	due := mkSchedule(CadenceDaily, 0, 0, 9, 0)
	due.ID = "due"
	due.NextScheduled = now.Add(-time.Minute)

	dueExactly := mkSchedule(CadenceDaily, 0, 0, 10, 0)
	dueExactly.ID = "due-exactly"
	dueExactly.NextScheduled = now

	future := mkSchedule(CadenceDaily, 0, 0, 9, 0)
	future.ID = "future"
	future.NextScheduled = now.Add(time.Hour)

	disabled := mkSchedule(CadenceDaily, 0, 0, 9, 0)
	disabled.ID = "disabled"
	disabled.Enabled = false
	disabled.NextScheduled = now.Add(-time.Hour)

	got := FindDue([]*Schedule{due, dueExactly, future, disabled}, now)

	if len(got) != 2 {
		t.Fatalf("FindDue returned %d schedules, want 2", len(got))
	}
	if got[0].ID != "due" || got[1].ID != "due-exactly" {
		t.Errorf("FindDue returned %q, %q; want due, due-exactly", got[0].ID, got[1].ID)
	}
}

func TestFindDue_EmptyInput(t *testing.T) {
	if got := FindDue(nil, time.Now()); len(got) != 0 {
		t.Errorf("FindDue(nil) returned %d schedules, want 0", len(got))
	}
}

func TestAdvance_SetsLastSentAndFutureNext(t *testing.T) {
	now := time.Date(2025, 6, 11, 10, 0, 0, 0, time.UTC)
	s := mkSchedule(CadenceWeekly, 1, 0, 9, 0)
	s.NextScheduled = now.Add(-time.Minute)

	Advance(s, now)

	if s.LastSent == nil || !s.LastSent.Equal(now) {
		t.Errorf("LastSent = %v, want %v", s.LastSent, now)
	}
	if !s.NextScheduled.After(now) {
		t.Errorf("NextScheduled = %v, not after now %v", s.NextScheduled, now)
	}
}

func TestNew_DerivesNextScheduled(t *testing.T) {
	now := time.Date(2025, 6, 11, 10, 0, 0, 0, time.UTC) // Wednesday
	s, err := New("weekly digest", CadenceWeekly, 1, 0, 9, 0, "UTC",
		[]string{"ops@example.com"}, "Weekly Digest", "tpl-1", now)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	want := time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC)
	if !s.NextScheduled.Equal(want) {
		t.Errorf("NextScheduled = %v, want %v", s.NextScheduled, want)
	}
	if !s.Enabled {
		t.Error("new schedule should be enabled")
	}
	if s.ID == "" {
		t.Error("new schedule should have an ID")
	}
}

func TestNew_RejectsBadInput(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name    string
		newFunc func() error
	}{
		{"empty name", func() error {
			_, err := New("", CadenceDaily, 0, 0, 9, 0, "UTC", nil, "", "", now)
			return err
		}},
		{"unknown cadence", func() error {
			_, err := New("x", Cadence("hourly"), 0, 0, 9, 0, "UTC", nil, "", "", now)
			return err
		}},
		{"bad hour", func() error {
			_, err := New("x", CadenceDaily, 0, 0, 24, 0, "UTC", nil, "", "", now)
			return err
		}},
		{"bad day of week", func() error {
			_, err := New("x", CadenceWeekly, 7, 0, 9, 0, "UTC", nil, "", "", now)
			return err
		}},
		{"bad day of month", func() error {
			_, err := New("x", CadenceMonthly, 0, 32, 9, 0, "UTC", nil, "", "", now)
			return err
		}},
	}
	for _, tc := range cases {
		if tc.newFunc() == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}
