package app

import (
	"context"
	"log"
	"time"

	"alert_notification_service/internal/domain/alert"
	"alert_notification_service/internal/domain/delivery"
	"alert_notification_service/internal/domain/preferences"
	"alert_notification_service/internal/domain/transport"
	"alert_notification_service/internal/format"

	"github.com/google/uuid"
)

// channelPlan describes one channel's dispatch behavior: the body renderer
// for that channel. One generic loop over this table replaces four
// hand-duplicated send paths.
type channelPlan struct {
	channel delivery.Channel
	body    func(a *alert.Alert, pref preferences.ChannelPreference) string
}

// channelPlans is iterated in fixed order (email, sms, whatsapp, telegram)
// so log ordering is deterministic for a given alert.
var channelPlans = []channelPlan{
	{delivery.ChannelEmail, func(a *alert.Alert, _ preferences.ChannelPreference) string {
		return format.Email(a)
	}},
	{delivery.ChannelSMS, func(a *alert.Alert, _ preferences.ChannelPreference) string {
		return format.SMS(a)
	}},
	{delivery.ChannelWhatsApp, func(a *alert.Alert, p preferences.ChannelPreference) string {
		return format.WhatsApp(a, p.Language)
	}},
	{delivery.ChannelTelegram, func(a *alert.Alert, p preferences.ChannelPreference) string {
		return format.Telegram(a, p.Language)
	}},
}

// Dispatcher fans one alert out to every eligible channel, producing one
// delivery record per attempt.
type Dispatcher struct {
	prefs      *PreferenceStore
	deliveries *DeliveryLog
	transports map[delivery.Channel]transport.Transport
	logger     *log.Logger
}

func NewDispatcher(
	prefs *PreferenceStore,
	deliveries *DeliveryLog,
	transports map[delivery.Channel]transport.Transport,
	logger *log.Logger,
) *Dispatcher {
	return &Dispatcher{
		prefs:      prefs,
		deliveries: deliveries,
		transports: transports,
		logger:     logger,
	}
}

// Deliver dispatches the alert to every channel that is enabled, has a
// non-empty destination, and accepts the alert's priority. Transport
// failures are isolated per channel: a failed channel is recorded as a
// failed entry and never prevents the remaining attempts. Deliver itself
// never returns an error.
//
// The resulting records are appended to the delivery log as one atomic
// batch (subscribers notified once per call), then returned to the caller.
func (d *Dispatcher) Deliver(ctx context.Context, a *alert.Alert) []delivery.Record {
	snapshot := d.prefs.Snapshot()

	records := make([]delivery.Record, 0, len(channelPlans))
	for _, plan := range channelPlans {
		pref := snapshot.Channel(plan.channel)
		if !pref.Enabled || pref.Destination == "" || !pref.Accepts(a.Priority) {
			continue
		}

		rec := delivery.Record{
			ID:          uuid.NewString(),
			AlertID:     a.ID,
			Channel:     plan.channel,
			Destination: delivery.MaskDestination(plan.channel, pref.Destination),
			Timestamp:   time.Now(),
			Status:      delivery.StatusPending,
		}

		body := plan.body(a, pref)
		meta := transport.Metadata{
			AlertID:  a.ID,
			Priority: string(a.Priority),
			Pattern:  a.Pattern,
			Subject:  a.Title,
		}

		tr, ok := d.transports[plan.channel]
		if !ok {
			rec.MarkFailed("no transport configured for channel")
			d.logger.Printf("ERROR: No transport configured for channel %s; alert %s recorded as failed.", plan.channel, a.ID)
		} else if err := tr.Send(ctx, pref.Destination, body, meta); err != nil {
			rec.MarkFailed(err.Error())
			d.logger.Printf("ERROR: Delivery via %s failed for alert %s: %v", plan.channel, a.ID, err)
		} else {
			rec.MarkSent()
			d.logger.Printf("INFO: Delivered alert %s via %s to %s.", a.ID, plan.channel, rec.Destination)
		}
		records = append(records, rec)
	}

	if len(records) > 0 {
		d.deliveries.Append(records)
	}
	return records
}
