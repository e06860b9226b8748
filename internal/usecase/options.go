// Package usecase contains the booking pipeline logic: the stage sequencer,
// passenger validation, price reconciliation, checkout submission and
// confirmation polling, orchestrated per session by BookingService.
package usecase

import (
	"time"

	"github.com/travel-booking/flight-booking/internal/infrastructure/retry"
)

// DefaultProviderCallTimeout bounds search, seat-map and baggage calls.
const DefaultProviderCallTimeout = 8 * time.Second

// Config contains configuration options for the booking service.
type Config struct {
	// ProviderCallTimeout bounds each offers provider call outside reconciliation
	ProviderCallTimeout time.Duration

	// ReconciliationTimeout bounds the re-fetch before payment
	ReconciliationTimeout time.Duration

	// PollPolicy is the confirmation polling schedule
	PollPolicy retry.Policy
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		ProviderCallTimeout:   DefaultProviderCallTimeout,
		ReconciliationTimeout: DefaultReconciliationTimeout,
		PollPolicy:            DefaultPollPolicy(),
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c *Config) withDefaults() Config {
	cfg := DefaultConfig()
	if c == nil {
		return cfg
	}
	if c.ProviderCallTimeout > 0 {
		cfg.ProviderCallTimeout = c.ProviderCallTimeout
	}
	if c.ReconciliationTimeout > 0 {
		cfg.ReconciliationTimeout = c.ReconciliationTimeout
	}
	if c.PollPolicy.MaxAttempts > 0 {
		cfg.PollPolicy = c.PollPolicy
	}
	return cfg
}
