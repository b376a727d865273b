package preferences

import "context"

// Repository persists the preference snapshot. The core treats persistence
// as an external collaborator: it loads one snapshot at startup and saves
// the full snapshot after every merge.
type Repository interface {
	Load(ctx context.Context) (NotificationPreferences, error)
	Save(ctx context.Context, prefs NotificationPreferences) error
}
