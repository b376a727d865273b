package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig holds all configuration for the notification service.
type AppConfig struct {
	DatabaseURL string
	LogLevel    string
	Environment string

	// CronSpecScheduleScan drives the due-schedule scan tick. Defaults to
	// once per minute.
	CronSpecScheduleScan string

	HTTPListenAddr string

	// SMTP (mail channel)
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	// SMS gateway (short-message channel)
	SMSGatewayURL string
	SMSAPIKey     string
	SMSFrom       string

	// WhatsApp provider
	WhatsAppAPIURL string
	WhatsAppToken  string

	// Telegram
	TelegramToken string

	// Simulated delivery: when enabled, every channel's transport is replaced
	// by the text-generation simulator.
	SimulateDelivery bool
	OpenAIAPIKey     string
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	cfg.CronSpecScheduleScan = os.Getenv("CRON_SPEC_SCHEDULE_SCAN")
	if cfg.CronSpecScheduleScan == "" {
		cfg.CronSpecScheduleScan = "* * * * *" // Default: every minute
	}

	cfg.HTTPListenAddr = os.Getenv("HTTP_LISTEN_ADDR")
	if cfg.HTTPListenAddr == "" {
		cfg.HTTPListenAddr = ":8080"
	}

	cfg.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.SMTPUsername = os.Getenv("SMTP_USERNAME")
	cfg.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.SMTPFrom = os.Getenv("SMTP_FROM")
	if portStr := os.Getenv("SMTP_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
		}
		cfg.SMTPPort = port
	} else {
		cfg.SMTPPort = 587
	}

	cfg.SMSGatewayURL = os.Getenv("SMS_GATEWAY_URL")
	cfg.SMSAPIKey = os.Getenv("SMS_API_KEY")
	cfg.SMSFrom = os.Getenv("SMS_FROM")

	cfg.WhatsAppAPIURL = os.Getenv("WHATSAPP_API_URL")
	cfg.WhatsAppToken = os.Getenv("WHATSAPP_TOKEN")

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")

	cfg.SimulateDelivery = strings.EqualFold(os.Getenv("SIMULATE_DELIVERY"), "true")
	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	if cfg.SimulateDelivery && cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("SIMULATE_DELIVERY is enabled but OPENAI_API_KEY is not set")
	}

	return cfg, nil
}
