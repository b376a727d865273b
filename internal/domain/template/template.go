package template

import "context"

// BodyFormat selects how a report body is laid out.
type BodyFormat string

const (
	FormatDetailed BodyFormat = "detailed"
	FormatSummary  BodyFormat = "summary"
)

// EmailTemplate describes the branding and layout of a scheduled report
// email. Templates are edited externally and are immutable inputs to the
// formatter.
type EmailTemplate struct {
	ID           string
	Name         string
	Subject      string
	Greeting     string
	BodyFormat   BodyFormat
	IncludeChart bool
	Watermark    bool
	BrandColor   string
	Footer       string
}

// Repository retrieves templates by identity.
type Repository interface {
	GetByID(ctx context.Context, id string) (*EmailTemplate, error)
	ListAll(ctx context.Context) ([]*EmailTemplate, error)
}
