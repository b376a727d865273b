package format

import (
	"fmt"
	"strings"

	"alert_notification_service/internal/domain/alert"
)

// priorityGlyph maps an alert priority to the single glyph used in compact
// bodies.
func priorityGlyph(p alert.Priority) string {
	switch p {
	case alert.PriorityCritical:
		return "🚨"
	case alert.PriorityHigh:
		return "⚠️"
	case alert.PriorityMedium:
		return "📊"
	default:
		return "ℹ️"
	}
}

// SMS renders the single-line compact body for the short-message channel.
func SMS(a *alert.Alert) string {
	parts := []string{fmt.Sprintf("%s %s", priorityGlyph(a.Priority), a.Title)}
	if a.Metrics != nil {
		parts[0] += " " + signedPercent(a.Metrics.PriceChange)
	}
	if a.Pattern != "" {
		parts = append(parts, a.Pattern)
	}
	parts = append(parts, fmt.Sprintf("%.0f%%", a.Confidence))
	return strings.Join(parts, " | ")
}
