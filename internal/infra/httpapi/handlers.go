package httpapi

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"alert_notification_service/internal/app"
	"alert_notification_service/internal/domain/alert"
	"alert_notification_service/internal/domain/delivery"
	"alert_notification_service/internal/domain/preferences"
	"alert_notification_service/internal/domain/schedule"

	"github.com/google/uuid"
)

type handlers struct {
	dispatcher *app.Dispatcher
	prefs      *app.PreferenceStore
	deliveries *app.DeliveryLog
	schedules  schedule.Repository
	logger     *log.Logger
}

type alertRequest struct {
	Title      string         `json:"title"`
	Message    string         `json:"message"`
	Pattern    string         `json:"pattern"`
	Priority   string         `json:"priority"`
	Confidence float64        `json:"confidence"`
	Metrics    *alert.Metrics `json:"metrics,omitempty"`
}

// IngestAlert accepts an alert event and fans it out to the eligible
// channels, returning the per-channel delivery records.
func (h *handlers) IngestAlert(w http.ResponseWriter, r *http.Request) {
	var req alertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	priority := alert.Priority(req.Priority)
	switch priority {
	case alert.PriorityCritical, alert.PriorityHigh, alert.PriorityMedium, alert.PriorityLow:
	default:
		writeError(w, http.StatusBadRequest, "priority must be one of critical, high, medium, low")
		return
	}

	a := &alert.Alert{
		ID:         uuid.NewString(),
		Title:      req.Title,
		Message:    req.Message,
		Pattern:    req.Pattern,
		Priority:   priority,
		Confidence: req.Confidence,
		Timestamp:  time.Now(),
		Metrics:    req.Metrics,
	}

	records := h.dispatcher.Deliver(r.Context(), a)
	writeJSON(w, http.StatusOK, map[string]any{
		"alertId":    a.ID,
		"deliveries": records,
	})
}

func (h *handlers) ListDeliveries(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.deliveries.Read())
}

func (h *handlers) ClearDeliveries(w http.ResponseWriter, _ *http.Request) {
	h.deliveries.Clear()
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) GetPreferences(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.prefs.Snapshot())
}

type preferencesRequest struct {
	Email    *channelPatchRequest `json:"email,omitempty"`
	SMS      *channelPatchRequest `json:"sms,omitempty"`
	WhatsApp *channelPatchRequest `json:"whatsapp,omitempty"`
	Telegram *channelPatchRequest `json:"telegram,omitempty"`
}

type channelPatchRequest struct {
	Enabled     *bool    `json:"enabled,omitempty"`
	Destination *string  `json:"destination,omitempty"`
	Priorities  []string `json:"priorities,omitempty"`
	Language    *string  `json:"language,omitempty"`
}

// UpdatePreferences merges a partial preference patch. Enabling a channel
// whose destination is malformed is rejected here, synchronously; the store
// itself never validates.
func (h *handlers) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var req preferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	current := h.prefs.Snapshot()
	checks := []struct {
		channel delivery.Channel
		patch   *channelPatchRequest
		current preferences.ChannelPreference
		valid   func(string) bool
	}{
		{delivery.ChannelEmail, req.Email, current.Email, preferences.ValidEmail},
		{delivery.ChannelSMS, req.SMS, current.SMS, preferences.ValidPhone},
		{delivery.ChannelWhatsApp, req.WhatsApp, current.WhatsApp, preferences.ValidPhone},
		{delivery.ChannelTelegram, req.Telegram, current.Telegram, preferences.ValidHandle},
	}
	for _, c := range checks {
		if c.patch == nil || c.patch.Enabled == nil || !*c.patch.Enabled {
			continue
		}
		dest := c.current.Destination
		if c.patch.Destination != nil {
			dest = *c.patch.Destination
		}
		if !c.valid(dest) {
			writeError(w, http.StatusBadRequest, "invalid destination for channel "+string(c.channel))
			return
		}
	}

	h.prefs.Update(preferences.Patch{
		Email:    toPatch(req.Email),
		SMS:      toPatch(req.SMS),
		WhatsApp: toPatch(req.WhatsApp),
		Telegram: toPatch(req.Telegram),
	})
	writeJSON(w, http.StatusOK, h.prefs.Snapshot())
}

func toPatch(req *channelPatchRequest) *preferences.ChannelPatch {
	if req == nil {
		return nil
	}
	p := &preferences.ChannelPatch{
		Enabled:     req.Enabled,
		Destination: req.Destination,
		Language:    req.Language,
	}
	if req.Priorities != nil {
		p.Priorities = make([]alert.Priority, 0, len(req.Priorities))
		for _, pr := range req.Priorities {
			p.Priorities = append(p.Priorities, alert.Priority(pr))
		}
	}
	return p
}

func (h *handlers) ListSchedules(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.schedules.ListAll(r.Context())
	if err != nil {
		h.logger.Printf("ERROR: Failed to list schedules: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list schedules")
		return
	}
	writeJSON(w, http.StatusOK, schedules)
}

type scheduleRequest struct {
	Name       string   `json:"name"`
	Cadence    string   `json:"cadence"`
	DayOfWeek  int      `json:"dayOfWeek"`
	DayOfMonth int      `json:"dayOfMonth"`
	Hour       int      `json:"hour"`
	Minute     int      `json:"minute"`
	Timezone   string   `json:"timezone"`
	Recipients []string `json:"recipients"`
	Subject    string   `json:"subject"`
	TemplateID string   `json:"templateId"`
}

// CreateSchedule accepts all schedule fields except nextScheduled, which is
// derived here at creation time.
func (h *handlers) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	s, err := schedule.New(req.Name, schedule.Cadence(req.Cadence), req.DayOfWeek, req.DayOfMonth,
		req.Hour, req.Minute, req.Timezone, req.Recipients, req.Subject, req.TemplateID, time.Now())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.schedules.Create(r.Context(), s); err != nil {
		h.logger.Printf("ERROR: Failed to create schedule: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to create schedule")
		return
	}
	writeJSON(w, http.StatusCreated, s)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
