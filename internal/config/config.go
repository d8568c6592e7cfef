package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"bookline/internal/domain"
)

const (
	defaultHTTPAddr      = ":8080"
	defaultDatabaseURL   = "bookline.db"
	defaultJWTSecret     = "change-me-jwt-secret"
	defaultJWTTTL        = "24h"
	defaultBookingStatus = "confirmed"
	defaultSweepInterval = "1h"
	defaultSweepBatch    = "50"
	defaultSweepWindow   = "24h"
	defaultSMTPPort      = "587"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	DatabaseURL string

	JWTSecret string
	JWTTTL    time.Duration

	// DefaultReservationStatus switches the public booking flow between
	// auto-confirm (confirmed) and manual approval (pending).
	DefaultReservationStatus domain.ReservationStatus

	SweepInterval  time.Duration
	SweepBatchSize int
	SweepWindow    time.Duration

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.HTTPAddr = strings.TrimSpace(getEnv("HTTP_ADDR", defaultHTTPAddr))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	status := domain.ReservationStatus(strings.TrimSpace(getEnv("BOOKING_DEFAULT_STATUS", defaultBookingStatus)))
	if status != domain.ReservationConfirmed && status != domain.ReservationPending {
		return nil, fmt.Errorf("BOOKING_DEFAULT_STATUS must be confirmed or pending, got %q", status)
	}
	cfg.DefaultReservationStatus = status

	cfg.SweepInterval, err = parseDurationEnv("SWEEP_INTERVAL", defaultSweepInterval)
	if err != nil {
		return nil, err
	}
	cfg.SweepWindow, err = parseDurationEnv("SWEEP_WINDOW", defaultSweepWindow)
	if err != nil {
		return nil, err
	}
	cfg.SweepBatchSize, err = parseIntEnv("SWEEP_BATCH_SIZE", defaultSweepBatch)
	if err != nil {
		return nil, err
	}

	cfg.SMTPHost = strings.TrimSpace(os.Getenv("SMTP_HOST"))
	cfg.SMTPPort, err = parseIntEnv("SMTP_PORT", defaultSMTPPort)
	if err != nil {
		return nil, err
	}
	cfg.SMTPUsername = os.Getenv("SMTP_USERNAME")
	cfg.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.FromEmail = strings.TrimSpace(getEnv("FROM_EMAIL", "no-reply@bookline.local"))

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.SweepInterval <= 0 {
		return fmt.Errorf("SWEEP_INTERVAL must be > 0")
	}
	if cfg.SweepWindow <= 0 {
		return fmt.Errorf("SWEEP_WINDOW must be > 0")
	}
	if cfg.SweepBatchSize <= 0 {
		return fmt.Errorf("SWEEP_BATCH_SIZE must be > 0")
	}
	if cfg.AppEnv == "prod" && cfg.JWTSecret == defaultJWTSecret {
		return fmt.Errorf("JWT_SECRET must be set in prod")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(key, def string) (time.Duration, error) {
	raw := getEnv(key, def)
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, raw, err)
	}
	return d, nil
}

func parseIntEnv(key, def string) (int, error) {
	raw := getEnv(key, def)
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q: %w", key, raw, err)
	}
	return n, nil
}
