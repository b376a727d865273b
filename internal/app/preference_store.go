package app

import (
	"log"
	"sync"

	"alert_notification_service/internal/domain/preferences"
)

// PreferenceStore owns the notification preferences for the process
// lifetime. It is the single writer of that state: updates are serialized by
// a mutex and every subscriber notification reflects a consistent
// post-merge snapshot.
type PreferenceStore struct {
	mu      sync.Mutex
	current preferences.NotificationPreferences
	subs    map[int64]func(preferences.NotificationPreferences)
	nextSub int64
	logger  *log.Logger
}

func NewPreferenceStore(initial preferences.NotificationPreferences, logger *log.Logger) *PreferenceStore {
	return &PreferenceStore{
		current: initial.Clone(),
		subs:    make(map[int64]func(preferences.NotificationPreferences)),
		logger:  logger,
	}
}

// Snapshot returns an independent copy of the current preferences.
func (s *PreferenceStore) Snapshot() preferences.NotificationPreferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// Update shallow-merges the patch over the current preferences, channel by
// channel, then synchronously notifies every subscriber with the post-merge
// snapshot. Channels absent from the patch are untouched.
func (s *PreferenceStore) Update(patch preferences.Patch) {
	s.mu.Lock()
	s.current = s.current.Apply(patch)
	snapshot := s.current.Clone()
	subs := s.subscriberList()
	s.mu.Unlock()

	s.logger.Printf("INFO: Notification preferences updated. Notifying %d subscriber(s).", len(subs))
	for _, fn := range subs {
		fn(snapshot.Clone())
	}
}

// Subscribe registers a callback that is invoked once immediately with the
// current snapshot and again after every subsequent update. The returned
// function removes the subscription; other subscribers are unaffected.
func (s *PreferenceStore) Subscribe(fn func(preferences.NotificationPreferences)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	snapshot := s.current.Clone()
	s.mu.Unlock()

	fn(snapshot)

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// subscriberList snapshots the registered callbacks so notification happens
// without holding the lock. Caller must hold s.mu.
func (s *PreferenceStore) subscriberList() []func(preferences.NotificationPreferences) {
	out := make([]func(preferences.NotificationPreferences), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}
