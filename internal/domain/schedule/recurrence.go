package schedule

import (
	"fmt"
	"time"
)

// NextFireTime computes the next instant at which the schedule fires,
// strictly after now. Pure: no side effects, no I/O. The schedule's timezone
// label is opaque; arithmetic happens in now's location.
//
// An unrecognized cadence is a programming error the caller must prevent, so
// it panics rather than returning an error.
func NextFireTime(s *Schedule, now time.Time) time.Time {
	candidate := time.Date(now.Year(), now.Month(), now.Day(), s.Hour, s.Minute, 0, 0, now.Location())

	switch s.Cadence {
	case CadenceDaily:
		if !candidate.After(now) {
			candidate = candidate.AddDate(0, 0, 1)
		}
		return candidate

	case CadenceWeekly:
		daysToAdd := s.DayOfWeek - int(candidate.Weekday())
		if daysToAdd < 0 || (daysToAdd == 0 && !candidate.After(now)) {
			daysToAdd += 7
		}
		return candidate.AddDate(0, 0, daysToAdd)

	case CadenceMonthly:
		candidate = monthlyAt(now.Year(), now.Month(), s.DayOfMonth, s.Hour, s.Minute, now.Location())
		if !candidate.After(now) {
			next := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, 0)
			candidate = monthlyAt(next.Year(), next.Month(), s.DayOfMonth, s.Hour, s.Minute, now.Location())
		}
		return candidate

	default:
		panic(fmt.Sprintf("schedule: unknown cadence %q", s.Cadence))
	}
}

// monthlyAt builds the fire instant for a given month, clamping the target
// day to the month's length (day 31 in a 30-day month fires on the 30th).
func monthlyAt(year int, month time.Month, day, hour, minute int, loc *time.Location) time.Time {
	if last := daysIn(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, hour, minute, 0, 0, loc)
}

func daysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
