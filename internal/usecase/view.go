package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/travel-booking/flight-booking/internal/domain"
	"github.com/travel-booking/flight-booking/internal/session"
)

// BookingView is a session snapshot with the figures a client displays.
type BookingView struct {
	Session    session.Snapshot `json:"session"`
	Totals     *Totals          `json:"totals,omitempty"`
	CanAdvance bool             `json:"canAdvance"`
}

// Totals summarizes the price of the current selections.
type Totals struct {
	Currency      string               `json:"currency"`
	OfferTotal    decimal.Decimal      `json:"offerTotal"`
	ServicesTotal decimal.Decimal      `json:"servicesTotal"`
	GrandTotal    decimal.Decimal      `json:"grandTotal"`
	Services      []domain.Service     `json:"services"`
	Fare          domain.FareBreakdown `json:"fare"`
}

// SeatRequest assigns a seat on the primary offer's seat map.
type SeatRequest struct {
	SliceIndex     int
	PassengerIndex int
	Designator     string
}

// BaggageRequest selects a baggage service for a passenger.
type BaggageRequest struct {
	PassengerID string
	ServiceID   string
}

// ReconcileOutcome is the result of a reconciliation step and where it left the session.
type ReconcileOutcome struct {
	Result domain.ReconciliationResult `json:"result"`

	// RequiresDecision is true while a price change awaits accept or decline
	RequiresDecision bool `json:"requiresDecision"`

	// VerifiedTotal is the grand total at the reconciled price, services included
	VerifiedTotal decimal.Decimal `json:"verifiedTotal"`

	Stage domain.Stage `json:"stage"`
}

func (s *bookingService) view(sess *session.BookingSession) *BookingView {
	snap := sess.Snapshot()
	v := &BookingView{
		Session:    snap,
		CanAdvance: s.sequencer.CanAdvance(snap.Stage, snap),
	}

	offer := snap.PrimaryOffer()
	if offer == nil {
		return v
	}
	services, err := BuildServices(snap, offer)
	if err != nil {
		s.log.Warn().Str("booking_session", snap.ID).Err(err).Msg("cannot total selections")
		return v
	}

	servicesTotal := decimal.Zero
	for _, svc := range services {
		servicesTotal = servicesTotal.Add(svc.Subtotal())
	}
	v.Totals = &Totals{
		Currency:      offer.Currency,
		OfferTotal:    offer.TotalAmount,
		ServicesTotal: servicesTotal,
		GrandTotal:    GrandTotal(offer.TotalAmount, services),
		Services:      services,
		Fare:          offer.FareBreakdown(),
	}
	return v
}
