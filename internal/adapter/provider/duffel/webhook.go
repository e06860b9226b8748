package duffel

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/travel-booking/flight-booking/internal/domain"
	"github.com/travel-booking/flight-booking/internal/infrastructure/webhook"
)

// SignatureHeader carries the webhook signature.
const SignatureHeader = "X-Duffel-Signature"

// ErrIgnoredEvent is returned for event types that do not affect booking status.
var ErrIgnoredEvent = domain.ErrIgnoredEvent

// PaymentSessionMetadataKey links an order to the checkout that paid for it.
const PaymentSessionMetadataKey = "payment_session_id"

type orderEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID               string            `json:"id"`
			BookingReference string            `json:"booking_reference"`
			Metadata         map[string]string `json:"metadata"`
			Error            *apiError         `json:"error"`
		} `json:"object"`
	} `json:"data"`
}

// ParseOrderEvent verifies and decodes an order webhook into a terminal booking record.
func ParseOrderEvent(secret string, payload []byte, signature string, now time.Time) (*domain.BookingRecord, error) {
	if err := webhook.Verify(secret, payload, signature, now, webhook.DefaultTolerance); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidRequest, err)
	}

	var evt orderEvent
	if err := json.Unmarshal(payload, &evt); err != nil {
		return nil, domain.WrapInvalidRequest("malformed event: %v", err)
	}
	obj := evt.Data.Object
	sessionID := obj.Metadata[PaymentSessionMetadataKey]
	if sessionID == "" {
		return nil, domain.WrapInvalidRequest("event %s carries no %s", evt.ID, PaymentSessionMetadataKey)
	}

	record := &domain.BookingRecord{SessionID: sessionID, UpdatedAt: now}
	switch evt.Type {
	case "order.created":
		if obj.BookingReference == "" {
			return nil, domain.WrapInvalidRequest("order %s has no booking reference", obj.ID)
		}
		record.Status = domain.BookingConfirmed
		record.BookingReference = obj.BookingReference
	case "order.creation_failed":
		record.Status = domain.BookingFailed
		record.ErrorMessage = "order creation failed"
		if obj.Error != nil {
			record.ErrorMessage = firstNonEmpty(obj.Error.Message, obj.Error.Title, record.ErrorMessage)
		}
	default:
		return nil, fmt.Errorf("%s: %w", evt.Type, ErrIgnoredEvent)
	}
	return record, nil
}
