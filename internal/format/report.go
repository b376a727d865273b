package format

import (
	"fmt"
	"strings"
	"time"

	"alert_notification_service/internal/domain/schedule"
	"alert_notification_service/internal/domain/template"
)

// Report renders the subject and plain-text body of a scheduled report email
// from its template. The schedule's subject line, when set, overrides the
// template's.
func Report(tpl *template.EmailTemplate, s *schedule.Schedule, now time.Time) (subject, body string) {
	subject = s.Subject
	if subject == "" {
		subject = tpl.Subject
	}

	var sb strings.Builder
	if tpl.Greeting != "" {
		sb.WriteString(tpl.Greeting)
		sb.WriteString("\n\n")
	}
	sb.WriteString(fmt.Sprintf("Your %s report \"%s\" for %s is ready.\n", s.Cadence, s.Name, now.Format("January 2, 2006")))
	if tpl.BodyFormat == template.FormatDetailed {
		sb.WriteString("\nThe full breakdown is attached to your dashboard view.\n")
	}
	if tpl.IncludeChart {
		sb.WriteString("Charts are included in the dashboard rendering of this report.\n")
	}
	if tpl.Footer != "" {
		sb.WriteString("\n" + tpl.Footer + "\n")
	}
	return subject, sb.String()
}
