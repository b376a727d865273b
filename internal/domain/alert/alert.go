package alert

import "time"

// Priority classifies how urgent a detected pattern is. Channel preferences
// filter on it: a channel only fires for priorities present in its set.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Metrics carries the optional market figures attached to an alert.
// A nil Metrics on the Alert means the upstream detector had none.
type Metrics struct {
	PriceChange float64 // percent, signed
	Volatility  float64
	Volume      int64
}

// Alert is a discrete event produced by an upstream pattern detector.
// It is immutable once constructed; the delivery engine never modifies it.
type Alert struct {
	ID         string
	Title      string
	Message    string
	Pattern    string // pattern label, e.g. "Head & Shoulders"
	Priority   Priority
	Confidence float64 // 0-100
	Timestamp  time.Time
	Metrics    *Metrics
}
