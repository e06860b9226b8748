// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Timeouts TimeoutConfig
	Provider ProviderConfig
	Payment  PaymentConfig
	Session  SessionConfig
	Database DatabaseConfig
	Poller   PollerConfig
	Logging  LoggingConfig
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
}

// TimeoutConfig holds timeout settings for outbound calls and shutdown.
type TimeoutConfig struct {
	// Reconciliation bounds the authoritative price re-fetch before checkout
	Reconciliation time.Duration `env:"TIMEOUT_RECONCILIATION" envDefault:"10s"`

	// ProviderCall bounds a single HTTP call to the offers provider or payment gateway
	ProviderCall time.Duration `env:"TIMEOUT_PROVIDER_CALL" envDefault:"8s"`

	Shutdown time.Duration `env:"TIMEOUT_SHUTDOWN" envDefault:"10s"`
}

// ProviderConfig holds offers provider settings.
type ProviderConfig struct {
	BaseURL     string `env:"DUFFEL_BASE_URL" envDefault:"https://api.duffel.com"`
	AccessToken string `env:"DUFFEL_ACCESS_TOKEN"`
	APIVersion  string `env:"DUFFEL_API_VERSION" envDefault:"v2"`
	MaxAttempts int    `env:"DUFFEL_MAX_ATTEMPTS" envDefault:"3"`

	// WebhookSecret verifies order webhooks; empty disables /webhooks/orders
	WebhookSecret string `env:"DUFFEL_WEBHOOK_SECRET"`
}

// PaymentConfig holds payment gateway settings.
type PaymentConfig struct {
	BaseURL    string `env:"STRIPE_BASE_URL" envDefault:"https://api.stripe.com"`
	SecretKey  string `env:"STRIPE_SECRET_KEY"`
	SuccessURL string `env:"PAYMENT_SUCCESS_URL" envDefault:"http://localhost:3000/booking/confirmation?session_id={CHECKOUT_SESSION_ID}"`
	CancelURL  string `env:"PAYMENT_CANCEL_URL" envDefault:"http://localhost:3000/booking/checkout"`

	// WebhookSecret verifies checkout webhooks; empty disables /webhooks/payment
	WebhookSecret string `env:"STRIPE_WEBHOOK_SECRET"`
}

// SessionConfig holds booking session persistence settings.
type SessionConfig struct {
	// Store is memory or redis
	Store    string        `env:"SESSION_STORE" envDefault:"memory"`
	RedisURL string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	TTL      time.Duration `env:"SESSION_TTL" envDefault:"2h"`
}

// DatabaseConfig holds the booking status database settings.
// An empty URL selects the in-memory booking store.
type DatabaseConfig struct {
	URL             string        `env:"DATABASE_URL"`
	MaxOpenConns    int           `env:"DATABASE_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns    int           `env:"DATABASE_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DATABASE_CONN_MAX_LIFETIME" envDefault:"30m"`
}

// PollerConfig holds confirmation polling settings.
type PollerConfig struct {
	Interval    time.Duration `env:"POLL_INTERVAL" envDefault:"1s"`
	MaxAttempts int           `env:"POLL_MAX_ATTEMPTS" envDefault:"20"`

	// Multiplier > 1 switches the fixed interval to exponential backoff
	Multiplier float64 `env:"POLL_BACKOFF_MULTIPLIER" envDefault:"1"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	positive := []struct {
		name  string
		value time.Duration
	}{
		{"SERVER_READ_TIMEOUT", cfg.Server.ReadTimeout},
		{"SERVER_WRITE_TIMEOUT", cfg.Server.WriteTimeout},
		{"TIMEOUT_RECONCILIATION", cfg.Timeouts.Reconciliation},
		{"TIMEOUT_PROVIDER_CALL", cfg.Timeouts.ProviderCall},
		{"TIMEOUT_SHUTDOWN", cfg.Timeouts.Shutdown},
		{"SESSION_TTL", cfg.Session.TTL},
		{"POLL_INTERVAL", cfg.Poller.Interval},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%s must be positive", p.name)
		}
	}

	// A single provider call must fit inside the reconciliation budget
	if cfg.Timeouts.ProviderCall > cfg.Timeouts.Reconciliation {
		return fmt.Errorf("TIMEOUT_PROVIDER_CALL (%s) should not exceed TIMEOUT_RECONCILIATION (%s)",
			cfg.Timeouts.ProviderCall, cfg.Timeouts.Reconciliation)
	}

	if cfg.Poller.MaxAttempts < 1 {
		return fmt.Errorf("POLL_MAX_ATTEMPTS must be at least 1, got %d", cfg.Poller.MaxAttempts)
	}
	if cfg.Poller.Multiplier < 1 {
		return fmt.Errorf("POLL_BACKOFF_MULTIPLIER must be >= 1, got %g", cfg.Poller.Multiplier)
	}
	if cfg.Provider.MaxAttempts < 1 {
		return fmt.Errorf("DUFFEL_MAX_ATTEMPTS must be at least 1, got %d", cfg.Provider.MaxAttempts)
	}

	for name, raw := range map[string]string{
		"DUFFEL_BASE_URL": cfg.Provider.BaseURL,
		"STRIPE_BASE_URL": cfg.Payment.BaseURL,
	} {
		if u, err := url.Parse(raw); err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s must be an absolute URL, got %q", name, raw)
		}
	}

	validStores := map[string]bool{"memory": true, "redis": true}
	if !validStores[cfg.Session.Store] {
		return fmt.Errorf("SESSION_STORE must be one of: memory, redis; got %q", cfg.Session.Store)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	if cfg.IsProduction() {
		required := map[string]string{
			"DUFFEL_ACCESS_TOKEN":   cfg.Provider.AccessToken,
			"STRIPE_SECRET_KEY":     cfg.Payment.SecretKey,
			"STRIPE_WEBHOOK_SECRET": cfg.Payment.WebhookSecret,
			"DATABASE_URL":          cfg.Database.URL,
		}
		for name, value := range required {
			if value == "" {
				return fmt.Errorf("%s is required in production", name)
			}
		}
		if cfg.Session.Store != "redis" {
			return fmt.Errorf("SESSION_STORE must be redis in production")
		}
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
