package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"alert_notification_service/internal/domain/schedule"
	"alert_notification_service/internal/domain/template"
)

type fakeScheduleRepo struct {
	schedules []*schedule.Schedule
	updated   []*schedule.Schedule
	listErr   error
	updateErr error
}

func (f *fakeScheduleRepo) Create(context.Context, *schedule.Schedule) error { return nil }
func (f *fakeScheduleRepo) GetByID(context.Context, string) (*schedule.Schedule, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeScheduleRepo) Update(_ context.Context, s *schedule.Schedule) error {
	f.updated = append(f.updated, s)
	return f.updateErr
}
func (f *fakeScheduleRepo) ListEnabled(context.Context) ([]*schedule.Schedule, error) {
	return f.schedules, f.listErr
}
func (f *fakeScheduleRepo) ListAll(context.Context) ([]*schedule.Schedule, error) {
	return f.schedules, nil
}

type fakeTemplateRepo struct {
	tpl *template.EmailTemplate
	err error
}

func (f *fakeTemplateRepo) GetByID(context.Context, string) (*template.EmailTemplate, error) {
	return f.tpl, f.err
}
func (f *fakeTemplateRepo) ListAll(context.Context) ([]*template.EmailTemplate, error) {
	return []*template.EmailTemplate{f.tpl}, nil
}

func dueSchedule(recipients ...string) *schedule.Schedule {
	return &schedule.Schedule{
		ID:            "sched-1",
		Name:          "Weekly Digest",
		Enabled:       true,
		Cadence:       schedule.CadenceWeekly,
		DayOfWeek:     1,
		Hour:          9,
		Recipients:    recipients,
		Subject:       "Weekly Market Digest",
		TemplateID:    "tpl-1",
		NextScheduled: time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC),
	}
}

func TestReportService_SendsAndAdvancesDueSchedules(t *testing.T) {
	sched := dueSchedule("a@example.com", "b@example.com")
	repo := &fakeScheduleRepo{schedules: []*schedule.Schedule{sched}}
	tpls := &fakeTemplateRepo{tpl: &template.EmailTemplate{ID: "tpl-1", Subject: "Branded Digest"}}
	mail := &fakeTransport{}
	svc := NewReportService(repo, tpls, mail, testLogger())

	now := time.Date(2025, 6, 16, 9, 0, 30, 0, time.UTC)
	outcomes, err := svc.ProcessDueSchedules(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(outcomes) != 2 {
		t.Fatalf("expected one outcome per recipient, got %d", len(outcomes))
	}
	for _, o := range outcomes {
		if !o.Sent || o.Error != "" {
			t.Errorf("outcome should be a clean send: %+v", o)
		}
	}
	if len(mail.sends) != 2 {
		t.Fatalf("expected 2 mail sends, got %d", len(mail.sends))
	}
	// The schedule's own subject wins over the template's.
	if got := mail.sends[0].meta.Subject; got != "Weekly Market Digest" {
		t.Errorf("got subject %q", got)
	}

	if len(repo.updated) != 1 {
		t.Fatalf("advanced schedule should be persisted once, got %d updates", len(repo.updated))
	}
	if sched.LastSent == nil || !sched.LastSent.Equal(now) {
		t.Errorf("last sent should be stamped with the scan instant: %v", sched.LastSent)
	}
	want := time.Date(2025, 6, 23, 9, 0, 0, 0, time.UTC)
	if !sched.NextScheduled.Equal(want) {
		t.Errorf("next fire should advance a full week: got %v, want %v", sched.NextScheduled, want)
	}
}

func TestReportService_NoDueSchedulesIsQuiet(t *testing.T) {
	sched := dueSchedule("a@example.com")
	sched.NextScheduled = time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)
	repo := &fakeScheduleRepo{schedules: []*schedule.Schedule{sched}}
	mail := &fakeTransport{}
	svc := NewReportService(repo, &fakeTemplateRepo{}, mail, testLogger())

	outcomes, err := svc.ProcessDueSchedules(context.Background(), time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(outcomes) != 0 || len(mail.sends) != 0 || len(repo.updated) != 0 {
		t.Error("nothing should happen when no schedule is due")
	}
}

func TestReportService_FailedSendStillAdvances(t *testing.T) {
	sched := dueSchedule("a@example.com")
	repo := &fakeScheduleRepo{schedules: []*schedule.Schedule{sched}}
	mail := &fakeTransport{err: errors.New("smtp unavailable")}
	svc := NewReportService(repo, &fakeTemplateRepo{tpl: &template.EmailTemplate{}}, mail, testLogger())

	now := time.Date(2025, 6, 16, 9, 5, 0, 0, time.UTC)
	outcomes, err := svc.ProcessDueSchedules(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(outcomes) != 1 || outcomes[0].Sent || outcomes[0].Error != "smtp unavailable" {
		t.Errorf("outcome should carry the send failure: %+v", outcomes)
	}
	if len(repo.updated) != 1 {
		t.Error("a failed send still advances and persists the schedule")
	}
	if !sched.NextScheduled.After(now) {
		t.Errorf("next fire should still move into the future: %v", sched.NextScheduled)
	}
}

func TestReportService_MissingTemplateFallsBack(t *testing.T) {
	sched := dueSchedule("a@example.com")
	repo := &fakeScheduleRepo{schedules: []*schedule.Schedule{sched}}
	mail := &fakeTransport{}
	svc := NewReportService(repo, &fakeTemplateRepo{err: errors.New("no such template")}, mail, testLogger())

	outcomes, err := svc.ProcessDueSchedules(context.Background(), time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(outcomes) != 1 || !outcomes[0].Sent {
		t.Errorf("send should proceed on a bare template: %+v", outcomes)
	}
	if got := mail.sends[0].meta.Subject; got != "Weekly Market Digest" {
		t.Errorf("fallback template should still use the schedule subject, got %q", got)
	}
}

func TestReportService_ListErrorSurfaces(t *testing.T) {
	repo := &fakeScheduleRepo{listErr: errors.New("connection refused")}
	svc := NewReportService(repo, &fakeTemplateRepo{}, &fakeTransport{}, testLogger())

	if _, err := svc.ProcessDueSchedules(context.Background(), time.Now()); err == nil {
		t.Fatal("repository failure should surface as an error")
	}
}
