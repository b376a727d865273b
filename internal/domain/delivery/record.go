package delivery

import "time"

// Status represents the state of a single delivery attempt.
// Records transition pending -> sent or pending -> failed and are never
// mutated after the terminal status is set.
type Status string

const (
	StatusPending Status = "pending"
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
)

// Record is one per-channel, per-attempt delivery entry.
// Destination holds the masked form only; the raw address never leaves the
// preference store.
type Record struct {
	ID          string
	AlertID     string // back-reference, not ownership
	Channel     Channel
	Destination string // masked for display
	Timestamp   time.Time
	Status      Status
	Error       string // set only when Status == StatusFailed
}

// MarkSent moves the record to its terminal success state.
func (r *Record) MarkSent() {
	r.Status = StatusSent
	r.Error = ""
}

// MarkFailed moves the record to its terminal failure state with the
// captured transport error.
func (r *Record) MarkFailed(errMsg string) {
	r.Status = StatusFailed
	r.Error = errMsg
}
