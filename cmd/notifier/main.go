package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alert_notification_service/internal/app"
	"alert_notification_service/internal/domain/delivery"
	"alert_notification_service/internal/domain/preferences"
	domainTransport "alert_notification_service/internal/domain/transport"
	"alert_notification_service/internal/infra/config"
	idb "alert_notification_service/internal/infra/database"
	"alert_notification_service/internal/infra/httpapi"
	"alert_notification_service/internal/infra/logger"
	"alert_notification_service/internal/infra/scheduler"
	itransport "alert_notification_service/internal/infra/transport"

	"gopkg.in/telebot.v3"
)

func main() {
	fmt.Println("Alert Notification Service starting...")

	mainLogger := log.New(os.Stdout, "MAIN: ", log.LstdFlags|log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		mainLogger.Fatalf("FATAL: Could not load application configuration: %v", err)
	}
	logger.Init(cfg)

	mainLogger.Printf("INFO: Configuration loaded. LogLevel: %s, Environment: %s", cfg.LogLevel, cfg.Environment)

	// Initialize Database Connection
	db, err := idb.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		mainLogger.Fatalf("FATAL: Could not connect to database: %v", err)
	}
	defer db.Close()
	mainLogger.Println("INFO: Database connection established successfully.")

	// Initialize Repositories
	scheduleRepo := idb.NewPostgresScheduleRepository(db)
	templateRepo := idb.NewPostgresTemplateRepository(db)
	prefRepo := idb.NewPostgresPreferenceRepository(db)
	mainLogger.Println("INFO: Repositories initialized.")

	// Hydrate the Preference Store from persistence; fall back to defaults.
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 10*time.Second)
	initialPrefs, err := prefRepo.Load(startupCtx)
	cancelStartup()
	if err != nil {
		mainLogger.Printf("WARN: Could not load stored preferences, starting from defaults: %v", err)
	}
	prefStore := app.NewPreferenceStore(initialPrefs, log.New(os.Stdout, "PREFS: ", log.LstdFlags))

	// Persist every preference change. The subscription fires immediately
	// with the just-loaded snapshot; skip that first call.
	hydrated := false
	prefStore.Subscribe(func(snapshot preferences.NotificationPreferences) {
		if !hydrated {
			hydrated = true
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := prefRepo.Save(ctx, snapshot); err != nil {
			mainLogger.Printf("ERROR: Failed to persist preference update: %v", err)
		}
	})

	deliveryLog := app.NewDeliveryLog()
	deliveryLog.Subscribe(func(entries []delivery.Record) {
		mainLogger.Printf("INFO: Delivery log updated, now holding %d entrie(s).", len(entries))
	})

	transports := buildTransports(cfg, mainLogger)
	dispatcher := app.NewDispatcher(prefStore, deliveryLog, transports, log.New(os.Stdout, "DISPATCH: ", log.LstdFlags|log.Lshortfile))
	mainLogger.Printf("INFO: Dispatcher initialized with %d transport(s).", len(transports))

	// Scheduled reports ride the mail transport; without one there is
	// nothing to send, so the scanner stays off.
	var reportScheduler *scheduler.ReportScheduler
	if mail, ok := transports[delivery.ChannelEmail]; ok {
		reports := app.NewReportService(scheduleRepo, templateRepo, mail, log.New(os.Stdout, "REPORTS: ", log.LstdFlags|log.Lshortfile))
		reportScheduler = scheduler.NewReportScheduler(reports, log.New(os.Stdout, "SCHEDULER: ", log.LstdFlags|log.Lshortfile), cfg.CronSpecScheduleScan)
		reportScheduler.Start()
	} else {
		mainLogger.Println("WARN: Mail transport not configured. Scheduled reports are disabled.")
	}

	router := httpapi.NewRouter(dispatcher, prefStore, deliveryLog, scheduleRepo, log.New(os.Stdout, "API: ", log.LstdFlags|log.Lshortfile))
	srv := &http.Server{Addr: cfg.HTTPListenAddr, Handler: router}
	go func() {
		mainLogger.Printf("INFO: HTTP API listening on %s", cfg.HTTPListenAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			mainLogger.Fatalf("FATAL: HTTP server failed: %v", err)
		}
	}()

	mainLogger.Println("INFO: Application setup complete.")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	mainLogger.Println("INFO: Shutting down application...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		mainLogger.Printf("ERROR: HTTP server shutdown: %v", err)
	}
	if reportScheduler != nil {
		reportScheduler.Stop()
	}
	mainLogger.Println("INFO: Application shut down gracefully.")
}

// buildTransports assembles the per-channel transport registry from
// configuration. Unconfigured channels simply have no transport; the
// dispatcher records attempts against them as failed.
func buildTransports(cfg *config.AppConfig, mainLogger *log.Logger) map[delivery.Channel]domainTransport.Transport {
	transports := make(map[delivery.Channel]domainTransport.Transport)

	if cfg.SimulateDelivery {
		for _, ch := range delivery.AllChannels {
			transports[ch] = itransport.NewSimulatedTransport(cfg.OpenAIAPIKey, ch)
		}
		mainLogger.Println("INFO: Simulated delivery enabled for all channels.")
		return transports
	}

	if cfg.SMTPHost != "" && cfg.SMTPFrom != "" {
		transports[delivery.ChannelEmail] = itransport.NewSMTPTransport(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	}
	if cfg.SMSGatewayURL != "" {
		transports[delivery.ChannelSMS] = itransport.NewHTTPSMSTransport(cfg.SMSGatewayURL, cfg.SMSAPIKey, cfg.SMSFrom)
	}
	if cfg.WhatsAppAPIURL != "" {
		transports[delivery.ChannelWhatsApp] = itransport.NewWhatsAppTransport(cfg.WhatsAppAPIURL, cfg.WhatsAppToken)
	}
	if cfg.TelegramToken != "" {
		bot, err := telebot.NewBot(telebot.Settings{Token: cfg.TelegramToken})
		if err != nil {
			mainLogger.Printf("ERROR: Could not create Telegram bot, channel unavailable: %v", err)
		} else {
			transports[delivery.ChannelTelegram] = itransport.NewTelebotTransport(bot)
		}
	}
	return transports
}
