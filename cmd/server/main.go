// Package main is the entry point for the flight booking service.
//
//	@title						Flight Booking API
//	@version					1.0.0
//	@description				Session-scoped flight booking pipeline: offer search, seat and baggage selection, passenger details, price reconciliation, checkout and confirmation.
//
//	@contact.name				API Support
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/travel-booking/flight-booking/docs"

	bookinghttp "github.com/travel-booking/flight-booking/internal/adapter/http"
	"github.com/travel-booking/flight-booking/internal/adapter/http/middleware"
	"github.com/travel-booking/flight-booking/internal/adapter/payment/stripe"
	"github.com/travel-booking/flight-booking/internal/adapter/provider/duffel"
	"github.com/travel-booking/flight-booking/internal/adapter/storage/memory"
	"github.com/travel-booking/flight-booking/internal/adapter/storage/postgres"
	"github.com/travel-booking/flight-booking/internal/config"
	"github.com/travel-booking/flight-booking/internal/domain"
	"github.com/travel-booking/flight-booking/internal/infrastructure/logger"
	"github.com/travel-booking/flight-booking/internal/infrastructure/retry"
	"github.com/travel-booking/flight-booking/internal/infrastructure/timeutil"
	"github.com/travel-booking/flight-booking/internal/session"
	"github.com/travel-booking/flight-booking/internal/usecase"
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "flight-booking",
	})
	logger.SetGlobal(log)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("session_store", cfg.Session.Store).
		Msg("Configuration loaded")

	ctx := context.Background()
	closers := []func() error{}

	store, closeStore, err := newSessionStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create session store")
	}
	if closeStore != nil {
		closers = append(closers, closeStore)
	}

	bookings, closeDB, err := newBookingStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create booking store")
	}
	if closeDB != nil {
		closers = append(closers, closeDB)
	}

	clock := timeutil.NewRealClock()

	provider := duffel.NewAdapter(duffel.Config{
		BaseURL:     cfg.Provider.BaseURL,
		AccessToken: cfg.Provider.AccessToken,
		APIVersion:  cfg.Provider.APIVersion,
		Timeout:     cfg.Timeouts.ProviderCall,
		Retry:       retry.ProviderConfig.WithMaxAttempts(cfg.Provider.MaxAttempts),
	}, log)

	gateway := stripe.NewGateway(stripe.Config{
		BaseURL:    cfg.Payment.BaseURL,
		SecretKey:  cfg.Payment.SecretKey,
		SuccessURL: cfg.Payment.SuccessURL,
		CancelURL:  cfg.Payment.CancelURL,
		Timeout:    cfg.Timeouts.ProviderCall,
	}, log)

	bookingService := usecase.NewBookingService(usecase.Dependencies{
		Sessions: session.NewManager(store),
		Provider: provider,
		Gateway:  gateway,
		Bookings: bookings,
		Clock:    clock,
		Logger:   log,
	}, &usecase.Config{
		ProviderCallTimeout:   cfg.Timeouts.ProviderCall,
		ReconciliationTimeout: cfg.Timeouts.Reconciliation,
		PollPolicy: retry.Policy{
			MaxAttempts: cfg.Poller.MaxAttempts,
			Interval:    cfg.Poller.Interval,
			Multiplier:  cfg.Poller.Multiplier,
		},
	})

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.SetupWithConfig(e, log, middleware.RecoveryConfig{DisablePrintStack: cfg.IsProduction()})

	webhooks := bookinghttp.NewWebhookHandler(bookings,
		webhookSource("stripe", stripe.SignatureHeader, cfg.Payment.WebhookSecret, stripe.ParseWebhook),
		webhookSource("duffel", duffel.SignatureHeader, cfg.Provider.WebhookSecret, duffel.ParseOrderEvent),
		clock, log)
	bookinghttp.RegisterRoutes(e, bookinghttp.NewBookingHandler(bookingService, log), webhooks, log)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, cfg.Timeouts.Shutdown, log, closers)
}

// newSessionStore selects the booking session store. The returned closer may be nil.
func newSessionStore(cfg *config.Config) (session.Store, func() error, error) {
	if cfg.Session.Store != "redis" {
		return session.NewMemoryStore(), nil, nil
	}
	client, err := session.NewRedisClient(cfg.Session.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	return session.NewRedisStore(client, cfg.Session.TTL), client.Close, nil
}

// newBookingStore selects Postgres when DATABASE_URL is set, memory otherwise.
func newBookingStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (domain.BookingStore, func() error, error) {
	if cfg.Database.URL == "" {
		log.Warn().Msg("DATABASE_URL not set, booking status is kept in memory")
		return memory.NewBookingStore(), nil, nil
	}

	db, err := postgres.Connect(ctx, cfg.Database.URL, postgres.PoolConfig{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		return nil, nil, err
	}
	repo := postgres.NewBookingRepository(db)
	if err := repo.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return repo, db.Close, nil
}

type parseFunc func(secret string, payload []byte, signature string, now time.Time) (*domain.BookingRecord, error)

// webhookSource binds a secret to a parser. An empty secret leaves the source unconfigured.
func webhookSource(name, header, secret string, parse parseFunc) bookinghttp.WebhookSource {
	src := bookinghttp.WebhookSource{Name: name, SignatureHeader: header}
	if secret == "" {
		return src
	}
	src.Parse = func(payload []byte, signature string, now time.Time) (*domain.BookingRecord, error) {
		return parse(secret, payload, signature, now)
	}
	return src
}

// gracefulShutdown stops the server on SIGINT or SIGTERM and then closes stores.
func gracefulShutdown(e *echo.Echo, timeout time.Duration, log *logger.Logger, closers []func() error) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}
	for _, closeFn := range closers {
		if err := closeFn(); err != nil {
			log.Error().Err(err).Msg("Error closing store")
		}
	}

	log.Info().Msg("Server stopped")
}
