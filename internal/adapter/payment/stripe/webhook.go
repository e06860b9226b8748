package stripe

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/travel-booking/flight-booking/internal/domain"
	"github.com/travel-booking/flight-booking/internal/infrastructure/webhook"
)

// SignatureHeader carries the webhook signature.
const SignatureHeader = "Stripe-Signature"

// ErrIgnoredEvent is returned for event types that do not affect booking status.
var ErrIgnoredEvent = domain.ErrIgnoredEvent

// Checkout event types.
const (
	eventCompleted     = "checkout.session.completed"
	eventAsyncSuccess  = "checkout.session.async_payment_succeeded"
	eventAsyncFailed   = "checkout.session.async_payment_failed"
	eventSessionExpiry = "checkout.session.expired"
)

// ParseWebhook verifies and decodes a checkout event into a booking record.
// A completed payment leaves the booking pending: the order is created afterwards
// and reported through the orders webhook. Failed or expired checkouts took no
// payment and are recorded as payment failures.
func ParseWebhook(secret string, payload []byte, signature string, now time.Time) (*domain.BookingRecord, error) {
	if err := webhook.Verify(secret, payload, signature, now, webhook.DefaultTolerance); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidRequest, err)
	}

	var evt event
	if err := json.Unmarshal(payload, &evt); err != nil {
		return nil, domain.WrapInvalidRequest("malformed event: %v", err)
	}
	obj := evt.Data.Object
	if obj.ID == "" {
		return nil, domain.WrapInvalidRequest("event %s has no checkout session", evt.ID)
	}

	record := &domain.BookingRecord{SessionID: obj.ID, UpdatedAt: now}
	switch evt.Type {
	case eventCompleted, eventAsyncSuccess:
		record.Status = domain.BookingPending
	case eventAsyncFailed:
		record.Status = domain.BookingPaymentFailed
		record.ErrorMessage = "payment failed after checkout"
	case eventSessionExpiry:
		record.Status = domain.BookingPaymentFailed
		record.ErrorMessage = "checkout session expired before payment"
	default:
		return nil, fmt.Errorf("%s: %w", evt.Type, ErrIgnoredEvent)
	}
	return record, nil
}
