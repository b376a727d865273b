package schedule

import "time"

// FindDue returns the subset of schedules that are enabled and whose
// next-fire instant has arrived relative to now. Pure: the scanner holds no
// state and performs no I/O; the caller supplies the tick.
func FindDue(schedules []*Schedule, now time.Time) []*Schedule {
	due := make([]*Schedule, 0)
	for _, s := range schedules {
		if s.Enabled && !s.NextScheduled.After(now) {
			due = append(due, s)
		}
	}
	return due
}

// Advance records a completed send at now and re-derives the schedule's
// next-fire instant. Repeated advances yield a strictly increasing sequence
// of NextScheduled instants.
func Advance(s *Schedule, now time.Time) {
	sent := now
	s.LastSent = &sent
	s.NextScheduled = NextFireTime(s, now)
}
