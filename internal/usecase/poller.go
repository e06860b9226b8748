package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/travel-booking/flight-booking/internal/domain"
	"github.com/travel-booking/flight-booking/internal/infrastructure/logger"
	"github.com/travel-booking/flight-booking/internal/infrastructure/retry"
	"github.com/travel-booking/flight-booking/internal/infrastructure/timeutil"
)

// Default confirmation polling schedule: 20 checks one second apart.
const (
	DefaultPollInterval    = time.Second
	DefaultPollMaxAttempts = 20
)

// DefaultPollPolicy returns the fixed confirmation polling schedule.
func DefaultPollPolicy() retry.Policy {
	return retry.FixedPolicy(DefaultPollInterval, DefaultPollMaxAttempts)
}

// ConfirmationPoller waits for the webhook-created booking row of a payment session.
type ConfirmationPoller struct {
	lookup domain.BookingLookup
	clock  timeutil.Clock
	policy retry.Policy
	log    *logger.Logger
}

// NewConfirmationPoller creates a ConfirmationPoller. A zero policy uses DefaultPollPolicy.
func NewConfirmationPoller(lookup domain.BookingLookup, clock timeutil.Clock, policy retry.Policy, log *logger.Logger) *ConfirmationPoller {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if policy.MaxAttempts <= 0 {
		policy = DefaultPollPolicy()
	}
	return &ConfirmationPoller{
		lookup: lookup,
		clock:  clock,
		policy: policy,
		log:    logger.OrNop(log).WithComponent("confirmation_poller"),
	}
}

// PollForResult polls until the booking is confirmed, fails, or the payment is reported
// as not taken, or until the policy runs out.
// Running out yields a timeout outcome rather than an error: payment already succeeded
// and the booking status is simply unknown. Lookup errors count as pending attempts.
// Cancelling ctx stops polling and returns ctx.Err().
func (p *ConfirmationPoller) PollForResult(ctx context.Context, paymentSessionID string) (domain.BookingOutcome, error) {
	if paymentSessionID == "" {
		return domain.BookingOutcome{}, domain.WrapInvalidRequest("payment session id is required")
	}

	log := p.log.WithContext("payment_session_id", paymentSessionID)

	res, err := retry.Poll(ctx, p.clock, p.policy, func(ctx context.Context, attempt int) (domain.BookingOutcome, bool, error) {
		record, err := p.lookup.LookupBookingBySessionID(ctx, paymentSessionID)
		if err != nil {
			log.Debug().Int("attempt", attempt).Err(err).Msg("booking lookup failed")
			return domain.BookingOutcome{}, false, err
		}

		switch record.Status {
		case domain.BookingConfirmed:
			return domain.BookingOutcome{
				Status:           domain.OutcomeConfirmed,
				PaymentSessionID: paymentSessionID,
				BookingReference: record.BookingReference,
			}, true, nil
		case domain.BookingFailed:
			reason := record.ErrorMessage
			if reason == "" {
				reason = domain.ErrBookingCreateFailed.Error()
			}
			return domain.BookingOutcome{
				Status:           domain.OutcomeFailed,
				PaymentSessionID: paymentSessionID,
				Reason:           reason,
			}, true, nil
		case domain.BookingPaymentFailed:
			reason := record.ErrorMessage
			if reason == "" {
				reason = domain.ErrPaymentFailed.Error()
			}
			return domain.BookingOutcome{
				Status:           domain.OutcomePaymentFailed,
				PaymentSessionID: paymentSessionID,
				Reason:           reason,
			}, true, nil
		default:
			return domain.BookingOutcome{}, false, nil
		}
	})

	switch {
	case err == nil:
		outcome := res.Value
		outcome.Attempts = res.Attempts
		switch outcome.Status {
		case domain.OutcomeFailed:
			log.Error().Int("attempts", res.Attempts).Str("reason", outcome.Reason).Msg("booking creation failed after payment")
		case domain.OutcomePaymentFailed:
			log.Warn().Int("attempts", res.Attempts).Str("reason", outcome.Reason).Msg("payment not taken")
		default:
			log.Info().Int("attempts", res.Attempts).Str("booking_reference", outcome.BookingReference).Msg("booking confirmed")
		}
		return outcome, nil

	case errors.Is(err, retry.ErrExhausted):
		event := log.Warn().Int("attempts", res.Attempts).Dur("ceiling", p.policy.Ceiling())
		if res.LastErr != nil {
			event = event.AnErr("last_error", res.LastErr)
		}
		event.Msg("booking status still unknown")
		return domain.BookingOutcome{
			Status:           domain.OutcomeTimeout,
			PaymentSessionID: paymentSessionID,
			Reason:           domain.ErrPollTimeout.Error(),
			Attempts:         res.Attempts,
		}, nil

	default:
		return domain.BookingOutcome{}, err
	}
}
