package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"alert_notification_service/internal/domain/schedule"
	"alert_notification_service/internal/domain/template"
	"alert_notification_service/internal/domain/transport"
	"alert_notification_service/internal/format"
)

// ReportOutcome records the result of one per-recipient report send. The
// scheduled send path keeps its own outcome list rather than routing through
// the alert delivery log.
type ReportOutcome struct {
	ScheduleID string
	Recipient  string
	Sent       bool
	Error      string
}

// ReportService owns the due-schedule send path: find due schedules, render
// the report from its template, send to every recipient over the mail
// transport, then advance and persist the schedule.
type ReportService struct {
	scheduleRepo schedule.Repository
	templateRepo template.Repository
	mail         transport.Transport
	logger       *log.Logger
}

func NewReportService(
	scheduleRepo schedule.Repository,
	templateRepo template.Repository,
	mail transport.Transport,
	logger *log.Logger,
) *ReportService {
	return &ReportService{
		scheduleRepo: scheduleRepo,
		templateRepo: templateRepo,
		mail:         mail,
		logger:       logger,
	}
}

// ProcessDueSchedules sends every due schedule's report and advances its
// next-fire instant. A failed send still advances the schedule: one attempt
// per occurrence, no automatic retry.
func (s *ReportService) ProcessDueSchedules(ctx context.Context, now time.Time) ([]ReportOutcome, error) {
	schedules, err := s.scheduleRepo.ListEnabled(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list enabled schedules: %w", err)
	}

	due := schedule.FindDue(schedules, now)
	if len(due) == 0 {
		return nil, nil
	}
	s.logger.Printf("INFO: %d schedule(s) due at %s.", len(due), now.Format(time.RFC3339))

	var outcomes []ReportOutcome
	for _, sched := range due {
		outcomes = append(outcomes, s.sendReport(ctx, sched, now)...)

		schedule.Advance(sched, now)
		if err := s.scheduleRepo.Update(ctx, sched); err != nil {
			s.logger.Printf("ERROR: Failed to persist advanced schedule %s: %v", sched.ID, err)
			continue
		}
		s.logger.Printf("INFO: Schedule %s (%s) advanced. Next fire: %s.", sched.ID, sched.Name, sched.NextScheduled.Format(time.RFC3339))
	}
	return outcomes, nil
}

// sendReport renders and sends one schedule's report to all recipients.
// A failure for one recipient never aborts the remaining recipients.
func (s *ReportService) sendReport(ctx context.Context, sched *schedule.Schedule, now time.Time) []ReportOutcome {
	tpl, err := s.templateRepo.GetByID(ctx, sched.TemplateID)
	if err != nil {
		s.logger.Printf("WARN: Template %s for schedule %s unavailable (%v). Falling back to a bare template.", sched.TemplateID, sched.ID, err)
		tpl = &template.EmailTemplate{Subject: sched.Subject}
	}

	subject, body := format.Report(tpl, sched, now)
	meta := transport.Metadata{Subject: subject}

	outcomes := make([]ReportOutcome, 0, len(sched.Recipients))
	for _, rcpt := range sched.Recipients {
		outcome := ReportOutcome{ScheduleID: sched.ID, Recipient: rcpt, Sent: true}
		if err := s.mail.Send(ctx, rcpt, body, meta); err != nil {
			outcome.Sent = false
			outcome.Error = err.Error()
			s.logger.Printf("ERROR: Report %s send to %s failed: %v", sched.Name, rcpt, err)
		} else {
			s.logger.Printf("INFO: Report %s sent to %s.", sched.Name, rcpt)
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}
