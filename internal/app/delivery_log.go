package app

import (
	"sync"

	"alert_notification_service/internal/domain/delivery"
)

// MaxLogEntries bounds the delivery log. Appending beyond the bound evicts
// the oldest entries first (FIFO on insertion order).
const MaxLogEntries = 100

// DeliveryLog is the append-only, bounded record of delivery attempts.
// Entries are never mutated once appended; append, read, clear and the FIFO
// eviction are the only operations.
type DeliveryLog struct {
	mu      sync.Mutex
	entries []delivery.Record // insertion order, oldest first
	subs    map[int64]func([]delivery.Record)
	nextSub int64
}

func NewDeliveryLog() *DeliveryLog {
	return &DeliveryLog{subs: make(map[int64]func([]delivery.Record))}
}

// Append inserts a batch of records as a single atomic operation: no other
// call's entries interleave inside the batch, and subscribers are notified
// once per Append, not once per record.
func (l *DeliveryLog) Append(records []delivery.Record) {
	if len(records) == 0 {
		return
	}
	l.mu.Lock()
	l.entries = append(l.entries, records...)
	if excess := len(l.entries) - MaxLogEntries; excess > 0 {
		l.entries = append([]delivery.Record(nil), l.entries[excess:]...)
	}
	snapshot := l.readLocked()
	subs := l.subscriberList()
	l.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

// Read returns a copy of the log, most recent first.
func (l *DeliveryLog) Read() []delivery.Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.readLocked()
}

// Clear empties the log and notifies subscribers with the empty sequence.
func (l *DeliveryLog) Clear() {
	l.mu.Lock()
	l.entries = nil
	subs := l.subscriberList()
	l.mu.Unlock()

	for _, fn := range subs {
		fn([]delivery.Record{})
	}
}

// Subscribe registers an observer invoked with the full ordered sequence
// after every append or clear. The returned function removes the
// subscription.
func (l *DeliveryLog) Subscribe(fn func([]delivery.Record)) (unsubscribe func()) {
	l.mu.Lock()
	id := l.nextSub
	l.nextSub++
	l.subs[id] = fn
	l.mu.Unlock()

	return func() {
		l.mu.Lock()
		delete(l.subs, id)
		l.mu.Unlock()
	}
}

// readLocked copies entries most-recent-first. Caller must hold l.mu.
func (l *DeliveryLog) readLocked() []delivery.Record {
	out := make([]delivery.Record, len(l.entries))
	for i, r := range l.entries {
		out[len(l.entries)-1-i] = r
	}
	return out
}

func (l *DeliveryLog) subscriberList() []func([]delivery.Record) {
	out := make([]func([]delivery.Record), 0, len(l.subs))
	for _, fn := range l.subs {
		out = append(out, fn)
	}
	return out
}
