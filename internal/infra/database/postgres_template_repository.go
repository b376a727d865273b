package database

import (
	"context"
	"database/sql"
	"fmt"

	"alert_notification_service/internal/domain/template"
)

var ErrTemplateNotFound = fmt.Errorf("email template not found")

type PostgresTemplateRepository struct {
	db *sql.DB
}

func NewPostgresTemplateRepository(db *sql.DB) *PostgresTemplateRepository {
	return &PostgresTemplateRepository{db: db}
}

const templateColumns = `id, name, subject, greeting, body_format, include_chart, watermark, brand_color, footer`

func (r *PostgresTemplateRepository) GetByID(ctx context.Context, id string) (*template.EmailTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM email_templates WHERE id = $1`
	t := &template.EmailTemplate{}
	var bodyFormat string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.Name, &t.Subject, &t.Greeting,
		&bodyFormat, &t.IncludeChart, &t.Watermark, &t.BrandColor, &t.Footer)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("error getting template by ID: %w", err)
	}
	t.BodyFormat = template.BodyFormat(bodyFormat)
	return t, nil
}

func (r *PostgresTemplateRepository) ListAll(ctx context.Context) ([]*template.EmailTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM email_templates ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing templates: %w", err)
	}
	defer rows.Close()

	templates := make([]*template.EmailTemplate, 0)
	for rows.Next() {
		t := &template.EmailTemplate{}
		var bodyFormat string
		if err := rows.Scan(&t.ID, &t.Name, &t.Subject, &t.Greeting,
			&bodyFormat, &t.IncludeChart, &t.Watermark, &t.BrandColor, &t.Footer); err != nil {
			return nil, fmt.Errorf("error scanning template: %w", err)
		}
		t.BodyFormat = template.BodyFormat(bodyFormat)
		templates = append(templates, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating templates: %w", err)
	}
	return templates, nil
}
