package scheduler

import (
	"context"
	"log"
	"time"

	"alert_notification_service/internal/app"

	"github.com/robfig/cron/v3"
)

// ReportScheduler supplies the periodic tick that drives the due-schedule
// scan. The core holds no timer of its own: this is the external calling
// context of the scan/send/advance loop.
type ReportScheduler struct {
	cronEngine   *cron.Cron
	reports      *app.ReportService
	logger       *log.Logger
	cronSpecScan string
}

func NewReportScheduler(
	reports *app.ReportService,
	logger *log.Logger,
	cronSpecScan string, // e.g. "* * * * *" (every minute)
) *ReportScheduler {
	return &ReportScheduler{
		cronEngine:   cron.New(cron.WithLocation(time.Local)), // Use server's local time for cron
		reports:      reports,
		logger:       logger,
		cronSpecScan: cronSpecScan,
	}
}

func (s *ReportScheduler) Start() {
	s.logger.Println("INFO: Starting report scheduler...")

	_, err := s.cronEngine.AddFunc(s.cronSpecScan, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		outcomes, err := s.reports.ProcessDueSchedules(ctx, time.Now())
		if err != nil {
			s.logger.Printf("ERROR: Due-schedule processing failed: %v", err)
			return
		}
		for _, o := range outcomes {
			if !o.Sent {
				s.logger.Printf("WARN: Report for schedule %s to %s failed: %s", o.ScheduleID, o.Recipient, o.Error)
			}
		}
	})
	if err != nil {
		s.logger.Fatalf("FATAL: Could not add due-schedule scan cron job: %v", err)
	}

	s.cronEngine.Start()
	s.logger.Println("INFO: Report scheduler started.")
}

func (s *ReportScheduler) Stop() {
	s.logger.Println("INFO: Stopping report scheduler...")
	ctx := s.cronEngine.Stop() // Waits for any running job to finish.
	<-ctx.Done()
	s.logger.Println("INFO: Report scheduler gracefully stopped.")
}
