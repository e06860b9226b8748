package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingSubmission is the normalized, finalized payload handed to the payment gateway.
// It is immutable once sent.
type BookingSubmission struct {
	OfferID     string                `json:"offerId"`
	Passengers  []SubmissionPassenger `json:"passengers"`
	Services    []Service             `json:"services"`
	TotalAmount decimal.Decimal       `json:"totalAmount"`
	Currency    string                `json:"currency"`
}

// CheckoutSession is the gateway's answer to a checkout request.
type CheckoutSession struct {
	SessionID   string `json:"sessionId"`
	RedirectURL string `json:"redirectUrl"`
}

// SubmissionResult is what the checkout submitter returns on success.
type SubmissionResult struct {
	Submission BookingSubmission `json:"submission"`
	Session    CheckoutSession   `json:"session"`
}

// ReconciliationStatus is the outcome of a price re-verification.
type ReconciliationStatus string

// Reconciliation statuses.
const (
	// ReconciliationUnchanged means the fresh price is within tolerance of the cached one
	ReconciliationUnchanged ReconciliationStatus = "unchanged"

	// ReconciliationPriceChanged means the user must accept or decline the delta
	ReconciliationPriceChanged ReconciliationStatus = "price_changed"

	// ReconciliationExpired means the offer can no longer be booked
	ReconciliationExpired ReconciliationStatus = "expired"

	// ReconciliationUnverified means the provider could not be reached; the cached price is used
	ReconciliationUnverified ReconciliationStatus = "unverified"
)

// ReconciliationResult is produced once per checkout attempt and never persisted
// beyond the pending decision it describes.
type ReconciliationResult struct {
	Status ReconciliationStatus `json:"status"`

	// Accepted is true when checkout may proceed without asking the user
	Accepted bool `json:"accepted"`

	OldPrice decimal.Decimal `json:"oldPrice"`
	NewPrice decimal.Decimal `json:"newPrice"`
	Currency string          `json:"currency"`

	// FreshOffer is the re-fetched offer; nil for expired and unverified results
	FreshOffer *Offer `json:"freshOffer,omitempty"`
}

// Delta returns NewPrice - OldPrice.
func (r ReconciliationResult) Delta() decimal.Decimal {
	return r.NewPrice.Sub(r.OldPrice)
}

// IsIncrease reports whether the price went up.
func (r ReconciliationResult) IsIncrease() bool {
	return r.Delta().IsPositive()
}

// RequiresDecision reports whether the presentation layer must prompt the user.
func (r ReconciliationResult) RequiresDecision() bool {
	return r.Status == ReconciliationPriceChanged && !r.Accepted
}

// ReconciliationDecision is the user's answer to a price change.
type ReconciliationDecision string

// Decisions.
const (
	DecisionAccept  ReconciliationDecision = "accept"
	DecisionDecline ReconciliationDecision = "decline"
)

// BookingStatus is the state of the booking row written by the payment and order webhooks.
type BookingStatus string

// Booking statuses. BookingFailed means the payment was taken but the order was
// not created; BookingPaymentFailed means no payment was taken.
const (
	BookingPending       BookingStatus = "pending"
	BookingConfirmed     BookingStatus = "confirmed"
	BookingFailed        BookingStatus = "failed"
	BookingPaymentFailed BookingStatus = "payment_failed"
)

// IsTerminal reports whether the status is final.
func (s BookingStatus) IsTerminal() bool {
	switch s {
	case BookingConfirmed, BookingFailed, BookingPaymentFailed:
		return true
	default:
		return false
	}
}

// BookingRecord is the lookup result keyed by payment session id.
type BookingRecord struct {
	SessionID        string        `json:"sessionId" db:"payment_session_id"`
	Status           BookingStatus `json:"status" db:"status"`
	BookingReference string        `json:"bookingReference,omitempty" db:"booking_reference"`
	ErrorMessage     string        `json:"errorMessage,omitempty" db:"error_message"`
	UpdatedAt        time.Time     `json:"updatedAt" db:"updated_at"`
}

// OutcomeStatus is the terminal result of confirmation polling.
type OutcomeStatus string

// Outcome statuses.
const (
	OutcomeConfirmed     OutcomeStatus = "confirmed"
	OutcomeFailed        OutcomeStatus = "failed"
	OutcomePaymentFailed OutcomeStatus = "payment_failed"
	OutcomeTimeout       OutcomeStatus = "timeout"
)

// BookingOutcome is returned by the confirmation poller.
type BookingOutcome struct {
	Status           OutcomeStatus `json:"status"`
	PaymentSessionID string        `json:"paymentSessionId"`
	BookingReference string        `json:"bookingReference,omitempty"`
	Reason           string        `json:"reason,omitempty"`
	Attempts         int           `json:"attempts"`
}

// Message returns the user-facing text for the outcome.
// A timeout is never presented as a failure because the charge already happened.
func (o BookingOutcome) Message() string {
	switch o.Status {
	case OutcomeConfirmed:
		return "Your booking is confirmed."
	case OutcomeFailed:
		return "Your payment was taken but the airline did not create the booking. Please contact support with your payment reference."
	case OutcomePaymentFailed:
		return "Your payment did not go through and you have not been charged. You can retry the payment."
	default:
		return "Your payment succeeded but the booking status is not known yet. Please contact support with your payment reference."
	}
}
