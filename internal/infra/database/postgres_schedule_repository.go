package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"alert_notification_service/internal/domain/schedule"

	"github.com/lib/pq"
)

// Custom errors
var ErrScheduleNotFound = fmt.Errorf("schedule not found")

type PostgresScheduleRepository struct {
	db *sql.DB
}

func NewPostgresScheduleRepository(db *sql.DB) *PostgresScheduleRepository {
	return &PostgresScheduleRepository{db: db}
}

const scheduleColumns = `id, name, enabled, cadence, day_of_week, day_of_month,
	fire_hour, fire_minute, timezone, recipients, subject, template_id,
	last_sent, next_scheduled`

func (r *PostgresScheduleRepository) Create(ctx context.Context, s *schedule.Schedule) error {
	query := `INSERT INTO report_schedules (id, name, enabled, cadence, day_of_week, day_of_month,
	            fire_hour, fire_minute, timezone, recipients, subject, template_id, last_sent, next_scheduled)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.Name, s.Enabled, string(s.Cadence), s.DayOfWeek, s.DayOfMonth,
		s.Hour, s.Minute, s.Timezone, pq.Array(s.Recipients), s.Subject, s.TemplateID,
		nullableTime(s.LastSent), s.NextScheduled)
	if err != nil {
		return fmt.Errorf("error creating schedule: %w", err)
	}
	return nil
}

func (r *PostgresScheduleRepository) GetByID(ctx context.Context, id string) (*schedule.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM report_schedules WHERE id = $1`
	s, err := scanSchedule(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrScheduleNotFound
		}
		return nil, fmt.Errorf("error getting schedule by ID: %w", err)
	}
	return s, nil
}

func (r *PostgresScheduleRepository) Update(ctx context.Context, s *schedule.Schedule) error {
	query := `UPDATE report_schedules
	          SET name = $1, enabled = $2, cadence = $3, day_of_week = $4, day_of_month = $5,
	              fire_hour = $6, fire_minute = $7, timezone = $8, recipients = $9, subject = $10,
	              template_id = $11, last_sent = $12, next_scheduled = $13
	          WHERE id = $14`

	res, err := r.db.ExecContext(ctx, query,
		s.Name, s.Enabled, string(s.Cadence), s.DayOfWeek, s.DayOfMonth,
		s.Hour, s.Minute, s.Timezone, pq.Array(s.Recipients), s.Subject,
		s.TemplateID, nullableTime(s.LastSent), s.NextScheduled, s.ID)
	if err != nil {
		return fmt.Errorf("error updating schedule: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrScheduleNotFound
	}
	return nil
}

func (r *PostgresScheduleRepository) ListEnabled(ctx context.Context) ([]*schedule.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM report_schedules WHERE enabled = TRUE ORDER BY next_scheduled`
	return r.list(ctx, query)
}

func (r *PostgresScheduleRepository) ListAll(ctx context.Context) ([]*schedule.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM report_schedules ORDER BY name`
	return r.list(ctx, query)
}

func (r *PostgresScheduleRepository) list(ctx context.Context, query string) ([]*schedule.Schedule, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing schedules: %w", err)
	}
	defer rows.Close()

	schedules := make([]*schedule.Schedule, 0)
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning schedule: %w", err)
		}
		schedules = append(schedules, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedules: %w", err)
	}
	return schedules, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSchedule(row rowScanner) (*schedule.Schedule, error) {
	s := &schedule.Schedule{}
	var cadence string
	var lastSent sql.NullTime
	var recipients pq.StringArray
	err := row.Scan(&s.ID, &s.Name, &s.Enabled, &cadence, &s.DayOfWeek, &s.DayOfMonth,
		&s.Hour, &s.Minute, &s.Timezone, &recipients, &s.Subject, &s.TemplateID,
		&lastSent, &s.NextScheduled)
	if err != nil {
		return nil, err
	}
	s.Cadence = schedule.Cadence(cadence)
	s.Recipients = recipients
	if lastSent.Valid {
		t := lastSent.Time
		s.LastSent = &t
	}
	return s, nil
}

func nullableTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
