package schedule

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Cadence is the recurrence rule governing a schedule.
type Cadence string

const (
	CadenceDaily   Cadence = "daily"
	CadenceWeekly  Cadence = "weekly"
	CadenceMonthly Cadence = "monthly"
)

// Schedule is a recurring report definition. NextScheduled is derived by the
// core at creation and after every send; it is always strictly in the future
// relative to the instant it was computed and monotonically non-decreasing
// across recomputations.
type Schedule struct {
	ID            string
	Name          string
	Enabled       bool
	Cadence       Cadence
	DayOfWeek     int // 0 (Sunday) - 6, weekly cadence only
	DayOfMonth    int // monthly cadence only
	Hour          int
	Minute        int
	Timezone      string // opaque display label, not interpreted by the core
	Recipients    []string
	Subject       string
	TemplateID    string
	LastSent      *time.Time
	NextScheduled time.Time
}

// New builds a Schedule from externally supplied fields and derives
// NextScheduled from now. Missing required fields are a programming error on
// the caller's side, reported eagerly rather than surfacing later in the
// dispatch path.
func New(name string, cadence Cadence, dayOfWeek, dayOfMonth, hour, minute int, tz string, recipients []string, subject, templateID string, now time.Time) (*Schedule, error) {
	if name == "" {
		return nil, fmt.Errorf("schedule name is required")
	}
	switch cadence {
	case CadenceDaily, CadenceWeekly, CadenceMonthly:
	default:
		return nil, fmt.Errorf("unknown cadence: %q", cadence)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return nil, fmt.Errorf("invalid fire time %02d:%02d", hour, minute)
	}
	if cadence == CadenceWeekly && (dayOfWeek < 0 || dayOfWeek > 6) {
		return nil, fmt.Errorf("invalid day of week: %d", dayOfWeek)
	}
	if cadence == CadenceMonthly && (dayOfMonth < 1 || dayOfMonth > 31) {
		return nil, fmt.Errorf("invalid day of month: %d", dayOfMonth)
	}

	s := &Schedule{
		ID:         uuid.NewString(),
		Name:       name,
		Enabled:    true,
		Cadence:    cadence,
		DayOfWeek:  dayOfWeek,
		DayOfMonth: dayOfMonth,
		Hour:       hour,
		Minute:     minute,
		Timezone:   tz,
		Recipients: recipients,
		Subject:    subject,
		TemplateID: templateID,
	}
	s.NextScheduled = NextFireTime(s, now)
	return s, nil
}
