package http

import (
	"github.com/shopspring/decimal"

	"github.com/travel-booking/flight-booking/internal/domain"
)

// SearchResultsDTO is the response body of an offer search.
type SearchResultsDTO struct {
	Offers       []domain.Offer `json:"offers"`
	TotalResults int            `json:"totalResults"`
}

// PassengerValidationDTO is returned after saving passenger form state.
// Errors block advancement; warnings do not.
type PassengerValidationDTO struct {
	Valid    bool              `json:"valid"`
	Errors   map[string]string `json:"errors,omitempty"`
	Warnings map[string]string `json:"warnings,omitempty"`
}

// CheckoutDTO is the gateway handoff returned by checkout.
type CheckoutDTO struct {
	PaymentSessionID string          `json:"paymentSessionId"`
	RedirectURL      string          `json:"redirectUrl"`
	OfferID          string          `json:"offerId"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	Currency         string          `json:"currency"`
	ServiceCount     int             `json:"serviceCount"`
}

// ConfirmationDTO reports the booking outcome to the client.
type ConfirmationDTO struct {
	Status           domain.OutcomeStatus `json:"status"`
	PaymentSessionID string               `json:"paymentSessionId"`
	BookingReference string               `json:"bookingReference,omitempty"`
	Message          string               `json:"message"`
	Reason           string               `json:"reason,omitempty"`
	Attempts         int                  `json:"attempts"`
}
