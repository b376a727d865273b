// Package httpapi exposes the alert ingestion and preference surface over
// HTTP. Alerts themselves are produced by external detectors; this is the
// thin protocol skin over the dispatch engine.
package httpapi

import (
	"log"
	"net/http"

	"alert_notification_service/internal/app"
	"alert_notification_service/internal/domain/schedule"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter creates and configures the chi router with all routes.
func NewRouter(
	dispatcher *app.Dispatcher,
	prefs *app.PreferenceStore,
	deliveries *app.DeliveryLog,
	schedules schedule.Repository,
	logger *log.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	h := &handlers{
		dispatcher: dispatcher,
		prefs:      prefs,
		deliveries: deliveries,
		schedules:  schedules,
		logger:     logger,
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/alerts", h.IngestAlert)

		r.Get("/deliveries", h.ListDeliveries)
		r.Delete("/deliveries", h.ClearDeliveries)

		r.Get("/preferences", h.GetPreferences)
		r.Patch("/preferences", h.UpdatePreferences)

		r.Get("/schedules", h.ListSchedules)
		r.Post("/schedules", h.CreateSchedule)
	})

	return r
}
