package database

import (
	"context"
	"database/sql"
	"fmt"

	"alert_notification_service/internal/domain/alert"
	"alert_notification_service/internal/domain/delivery"
	"alert_notification_service/internal/domain/preferences"

	"github.com/lib/pq"
)

// PostgresPreferenceRepository persists the notification preference snapshot,
// one row per channel. The preference store loads the snapshot at startup
// and saves the full snapshot after every merge.
type PostgresPreferenceRepository struct {
	db *sql.DB
}

func NewPostgresPreferenceRepository(db *sql.DB) *PostgresPreferenceRepository {
	return &PostgresPreferenceRepository{db: db}
}

func (r *PostgresPreferenceRepository) Load(ctx context.Context) (preferences.NotificationPreferences, error) {
	prefs := preferences.Default()

	query := `SELECT channel, enabled, destination, priorities, language FROM notification_preferences`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return prefs, fmt.Errorf("error loading notification preferences: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var channel, destination, language string
		var enabled bool
		var priorities pq.StringArray
		if err := rows.Scan(&channel, &enabled, &destination, &priorities, &language); err != nil {
			return prefs, fmt.Errorf("error scanning preference row: %w", err)
		}

		pref := preferences.ChannelPreference{
			Enabled:     enabled,
			Destination: destination,
			Priorities:  make(map[alert.Priority]bool, len(priorities)),
			Language:    language,
		}
		for _, p := range priorities {
			pref.Priorities[alert.Priority(p)] = true
		}

		switch delivery.Channel(channel) {
		case delivery.ChannelEmail:
			prefs.Email = pref
		case delivery.ChannelSMS:
			prefs.SMS = pref
		case delivery.ChannelWhatsApp:
			prefs.WhatsApp = pref
		case delivery.ChannelTelegram:
			prefs.Telegram = pref
		}
	}
	if err = rows.Err(); err != nil {
		return prefs, fmt.Errorf("error iterating preference rows: %w", err)
	}
	return prefs, nil
}

func (r *PostgresPreferenceRepository) Save(ctx context.Context, prefs preferences.NotificationPreferences) error {
	query := `INSERT INTO notification_preferences (channel, enabled, destination, priorities, language)
	          VALUES ($1, $2, $3, $4, $5)
	          ON CONFLICT (channel) DO UPDATE
	          SET enabled = EXCLUDED.enabled, destination = EXCLUDED.destination,
	              priorities = EXCLUDED.priorities, language = EXCLUDED.language`

	for _, ch := range delivery.AllChannels {
		pref := prefs.Channel(ch)
		priorities := make([]string, 0, len(pref.Priorities))
		for p, ok := range pref.Priorities {
			if ok {
				priorities = append(priorities, string(p))
			}
		}
		if _, err := r.db.ExecContext(ctx, query,
			string(ch), pref.Enabled, pref.Destination, pq.Array(priorities), pref.Language); err != nil {
			return fmt.Errorf("error saving %s preference: %w", ch, err)
		}
	}
	return nil
}
