package domain

// Stage is a state of the booking pipeline.
// A stage names what has been completed; the user works on the step after it.
type Stage string

// Linear pipeline stages.
const (
	StageSearch                   Stage = "search"
	StageOfferSelected            Stage = "offer_selected"
	StageSeatsChosenOrSkipped     Stage = "seats_chosen_or_skipped"
	StageBaggageChosenOrSkipped   Stage = "baggage_chosen_or_skipped"
	StagePassengerDetailsComplete Stage = "passenger_details_complete"
	StagePriceReconciled          Stage = "price_reconciled"
	StageSubmitted                Stage = "submitted"
	StageConfirmed                Stage = "confirmed"
)

// Terminal failure stages.
const (
	StageExpired             Stage = "expired"
	StagePaymentFailed       Stage = "payment_failed"
	StageBookingCreateFailed Stage = "booking_create_failed"
)

// pipeline is the linear stage order.
var pipeline = []Stage{
	StageSearch,
	StageOfferSelected,
	StageSeatsChosenOrSkipped,
	StageBaggageChosenOrSkipped,
	StagePassengerDetailsComplete,
	StagePriceReconciled,
	StageSubmitted,
	StageConfirmed,
}

// IsValid checks if the stage is a known value.
func (s Stage) IsValid() bool {
	return s.index() >= 0 || s.IsTerminalFailure()
}

// IsTerminalFailure reports whether the stage is one of the failure states.
func (s Stage) IsTerminalFailure() bool {
	switch s {
	case StageExpired, StagePaymentFailed, StageBookingCreateFailed:
		return true
	default:
		return false
	}
}

// IsPrePayment reports whether no payment has been attempted yet in this stage.
func (s Stage) IsPrePayment() bool {
	i := s.index()
	return i >= 0 && i <= StagePriceReconciled.index()
}

// Next returns the following linear stage, or false at the end of the pipeline
// and for terminal failure stages.
func (s Stage) Next() (Stage, bool) {
	i := s.index()
	if i < 0 || i == len(pipeline)-1 {
		return "", false
	}
	return pipeline[i+1], true
}

// Previous returns the preceding linear stage, or false for Search and terminal stages.
func (s Stage) Previous() (Stage, bool) {
	i := s.index()
	if i <= 0 {
		return "", false
	}
	return pipeline[i-1], true
}

// Before reports whether s comes strictly before other in the linear order.
func (s Stage) Before(other Stage) bool {
	i, j := s.index(), other.index()
	return i >= 0 && j >= 0 && i < j
}

func (s Stage) index() int {
	for i, st := range pipeline {
		if st == s {
			return i
		}
	}
	return -1
}
