package domain

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for the booking pipeline.
var (
	// ErrInvalidRequest indicates malformed or semantically invalid input.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrSessionNotFound indicates the booking session id is unknown or has expired from the store.
	ErrSessionNotFound = errors.New("booking session not found")

	// ErrSeatConflict indicates the seat is already held by another passenger on the same slice.
	ErrSeatConflict = errors.New("seat already assigned to another passenger")

	// ErrSeatUnavailable indicates the seat is not offered to the passenger on the current seat map.
	ErrSeatUnavailable = errors.New("seat is not available")

	// ErrServiceNotFound indicates an ancillary service id is not part of the offer.
	ErrServiceNotFound = errors.New("service not found on offer")

	// ErrOfferNotFound indicates the provider no longer knows the offer.
	ErrOfferNotFound = errors.New("offer not found")

	// ErrOfferExpired indicates the offer is past its expiry and cannot be booked.
	ErrOfferExpired = errors.New("offer expired")

	// ErrPriceChanged indicates the authoritative price differs from the cached one.
	ErrPriceChanged = errors.New("offer price changed")

	// ErrProviderUnavailable indicates the offers provider could not be reached or failed.
	ErrProviderUnavailable = errors.New("offers provider unavailable")

	// ErrProviderTimeout indicates the offers provider did not answer in time.
	ErrProviderTimeout = errors.New("offers provider timeout")

	// ErrPaymentFailed indicates the payment gateway rejected or failed the checkout.
	ErrPaymentFailed = errors.New("payment failed")

	// ErrBookingCreateFailed indicates payment succeeded but the order was not created.
	ErrBookingCreateFailed = errors.New("booking creation failed after payment")

	// ErrPollTimeout indicates the booking outcome is still unknown after polling.
	ErrPollTimeout = errors.New("booking confirmation timed out")

	// ErrStageIncomplete indicates the current stage gate is not satisfied.
	ErrStageIncomplete = errors.New("stage incomplete")

	// ErrInvalidTransition indicates the requested transition is not allowed from the current stage.
	ErrInvalidTransition = errors.New("invalid stage transition")

	// ErrDecisionRequired indicates a price change awaits an explicit accept or decline.
	ErrDecisionRequired = errors.New("price change requires a decision")

	// ErrTotalMismatch indicates the computed grand total differs from the total shown to the user.
	ErrTotalMismatch = errors.New("grand total does not match verified total")

	// ErrStaleResult indicates a remote result arrived after the session moved on.
	ErrStaleResult = errors.New("result belongs to a replaced stage")

	// ErrIgnoredEvent indicates a webhook event that does not affect booking status.
	ErrIgnoredEvent = errors.New("event type ignored")
)

// ErrorKind is the classified error category the stage sequencer and HTTP layer act on.
type ErrorKind string

// Error kinds.
const (
	KindNone                ErrorKind = ""
	KindValidation          ErrorKind = "validation_error"
	KindSeatConflict        ErrorKind = "seat_conflict"
	KindOfferExpired        ErrorKind = "offer_expired"
	KindPriceChanged        ErrorKind = "price_changed"
	KindProviderUnavailable ErrorKind = "provider_unavailable"
	KindPaymentFailed       ErrorKind = "payment_failed"
	KindBookingCreateFailed ErrorKind = "booking_create_failed"
	KindPollTimeout         ErrorKind = "poll_timeout"
	KindStage               ErrorKind = "stage_incomplete"
	KindNotFound            ErrorKind = "not_found"
	KindStale               ErrorKind = "stale_result"
	KindInternal            ErrorKind = "internal_error"
)

// Classify maps any error to its taxonomy kind.
// Raw transport errors are treated as provider unavailability.
func Classify(err error) ErrorKind {
	var validationErrs *ValidationErrors
	switch {
	case err == nil:
		return KindNone
	case errors.As(err, &validationErrs), errors.Is(err, ErrInvalidRequest):
		return KindValidation
	case errors.Is(err, ErrSeatConflict), errors.Is(err, ErrSeatUnavailable):
		return KindSeatConflict
	case errors.Is(err, ErrOfferExpired), errors.Is(err, ErrOfferNotFound):
		return KindOfferExpired
	case errors.Is(err, ErrPriceChanged), errors.Is(err, ErrDecisionRequired):
		return KindPriceChanged
	case errors.Is(err, ErrBookingCreateFailed):
		return KindBookingCreateFailed
	case errors.Is(err, ErrPaymentFailed):
		return KindPaymentFailed
	case errors.Is(err, ErrPollTimeout):
		return KindPollTimeout
	case errors.Is(err, ErrStageIncomplete), errors.Is(err, ErrInvalidTransition):
		return KindStage
	case errors.Is(err, ErrSessionNotFound), errors.Is(err, ErrServiceNotFound):
		return KindNotFound
	case errors.Is(err, ErrStaleResult):
		return KindStale
	case errors.Is(err, ErrTotalMismatch):
		return KindInternal
	case errors.Is(err, ErrProviderUnavailable), errors.Is(err, ErrProviderTimeout),
		errors.Is(err, context.DeadlineExceeded):
		return KindProviderUnavailable
	}

	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return KindProviderUnavailable
	}
	return KindInternal
}

// ProviderError wraps an error returned by an external collaborator.
type ProviderError struct {
	// Provider identifies the collaborator (offers provider or payment gateway)
	Provider string

	// Err is the underlying error
	Err error

	// Retryable indicates whether the call may succeed if repeated
	Retryable bool
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

// Unwrap returns the underlying error.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a non-retryable ProviderError.
func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err}
}

// NewRetryableProviderError creates a retryable ProviderError.
func NewRetryableProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err, Retryable: true}
}

// NewProviderTimeoutError creates a retryable timeout error for the given provider.
func NewProviderTimeoutError(provider string) *ProviderError {
	return NewRetryableProviderError(provider, ErrProviderTimeout)
}

// NewProviderUnavailableError creates a retryable unavailability error for the given provider.
func NewProviderUnavailableError(provider string) *ProviderError {
	return NewRetryableProviderError(provider, ErrProviderUnavailable)
}

// IsRetryable reports whether err is a retryable ProviderError.
func IsRetryable(err error) bool {
	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return providerErr.Retryable
	}
	return false
}

// StageError reports a refused stage transition.
type StageError struct {
	From   Stage
	To     Stage
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *StageError) Error() string {
	if e.To == "" {
		return fmt.Sprintf("stage %s: %s", e.From, e.Reason)
	}
	return fmt.Sprintf("stage %s -> %s: %s", e.From, e.To, e.Reason)
}

// Unwrap returns ErrStageIncomplete or ErrInvalidTransition.
func (e *StageError) Unwrap() error {
	return e.Err
}

// NewIncompleteStageError reports an unsatisfied advancement gate.
func NewIncompleteStageError(from, to Stage, reason string) *StageError {
	return &StageError{From: from, To: to, Reason: reason, Err: ErrStageIncomplete}
}

// NewInvalidTransitionError reports a transition the state machine does not allow.
func NewInvalidTransitionError(from, to Stage, reason string) *StageError {
	return &StageError{From: from, To: to, Reason: reason, Err: ErrInvalidTransition}
}

// SeatConflictError reports a rejected seat assignment.
type SeatConflictError struct {
	SliceIndex     int
	Designator     string
	HeldByIndex    int
	PassengerIndex int
}

// Error implements the error interface.
func (e *SeatConflictError) Error() string {
	return fmt.Sprintf("seat %s on slice %d is held by passenger %d", e.Designator, e.SliceIndex, e.HeldByIndex)
}

// Unwrap returns ErrSeatConflict.
func (e *SeatConflictError) Unwrap() error {
	return ErrSeatConflict
}

// ValidationError represents a single field-level validation failure.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ValidationErrors is an ordered collection of field errors.
// Order is preserved so callers can focus the first failing field.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Error()
}

// Add appends a field error. A second error for the same field is ignored.
func (v *ValidationErrors) Add(field, message string) {
	for _, e := range v.Errors {
		if e.Field == field {
			return
		}
	}
	v.Errors = append(v.Errors, ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return v != nil && len(v.Errors) > 0
}

// First returns the first recorded error, or nil.
func (v *ValidationErrors) First() *ValidationError {
	if !v.HasErrors() {
		return nil
	}
	return &v.Errors[0]
}

// ToMap converts validation errors to a flat field -> message map.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	if v == nil {
		return result
	}
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// WrapInvalidRequest creates an error wrapping ErrInvalidRequest with a formatted message.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// IsInvalidRequest checks if the error is or wraps ErrInvalidRequest.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsOfferExpired checks if the error means the offer can no longer be booked.
func IsOfferExpired(err error) bool {
	return errors.Is(err, ErrOfferExpired) || errors.Is(err, ErrOfferNotFound)
}

// IsProviderTimeout checks if the error is or wraps ErrProviderTimeout.
func IsProviderTimeout(err error) bool {
	return errors.Is(err, ErrProviderTimeout)
}
