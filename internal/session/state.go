package session

import (
	"github.com/shopspring/decimal"

	"github.com/travel-booking/flight-booking/internal/domain"
)

// Persisted keys. Each holds the JSON form of one entity so a reload resumes cleanly.
const (
	KeySelectedOutbound  = "selected_outbound"
	KeySelectedReturn    = "selected_return"
	KeySelectedSeats     = "selected_seats"
	KeySelectedBaggage   = "selected_baggage"
	KeyPassengerData     = "passenger_data"
	KeyBookingStage      = "booking_stage"
	KeySelectionProgress = "selection_progress"
	KeySearchCriteria    = "search_criteria"
	KeyReconciliation    = "reconciliation"
	KeyCheckout          = "checkout"
)

// keys lists every persisted key in write order.
var keys = []string{
	KeyBookingStage,
	KeySearchCriteria,
	KeySelectedOutbound,
	KeySelectedReturn,
	KeySelectedSeats,
	KeySelectedBaggage,
	KeySelectionProgress,
	KeyPassengerData,
	KeyReconciliation,
	KeyCheckout,
}

// Keys returns the persisted keys in write order.
func Keys() []string {
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

// StageState is the persisted stage marker.
type StageState struct {
	Stage domain.Stage `json:"stage"`

	// Revision increases whenever the stage or the primary offer changes.
	// Remote results captured under an older revision are discarded.
	Revision int64 `json:"revision"`
}

// Progress records the explicit user actions the seat and baggage gates need.
type Progress struct {
	SeatsDecided   bool `json:"seatsDecided"`
	SeatsSkipped   bool `json:"seatsSkipped"`
	BaggageDecided bool `json:"baggageDecided"`
	BaggageSkipped bool `json:"baggageSkipped"`
}

// Reconciliation is the last reconciliation outcome kept while a decision is pending
// and, once settled, the total the user was shown.
type Reconciliation struct {
	Result domain.ReconciliationResult `json:"result"`

	// Decided is true once the user accepted, or no decision was needed
	Decided bool `json:"decided"`

	// VerifiedTotal is the grand total displayed at reconciliation, services included
	VerifiedTotal decimal.Decimal `json:"verifiedTotal"`
}

// Checkout is the handoff record kept after the payment gateway accepted a submission.
type Checkout struct {
	PaymentSessionID string                   `json:"paymentSessionId"`
	RedirectURL      string                   `json:"redirectUrl"`
	Submission       domain.BookingSubmission `json:"submission"`
	Outcome          *domain.BookingOutcome   `json:"outcome,omitempty"`
	FailureReason    string                   `json:"failureReason,omitempty"`
}
