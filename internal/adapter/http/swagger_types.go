package http

// Swagger-only envelope and payload shapes. Money is a decimal string on the wire.

// SwaggerErrorEnvelope is a failed response.
// @Description Error envelope
type SwaggerErrorEnvelope struct {
	Success bool               `json:"success" example:"false"`
	Error   SwaggerErrorDetail `json:"error"`
}

// SwaggerErrorDetail describes the failure.
type SwaggerErrorDetail struct {
	Code    string            `json:"code" example:"stage_incomplete"`
	Message string            `json:"message" example:"stage seats_chosen_or_skipped -> baggage_chosen_or_skipped: baggage not decided"`
	Details map[string]string `json:"details,omitempty"`
}

// SwaggerBookingEnvelope wraps a booking view.
type SwaggerBookingEnvelope struct {
	Success bool               `json:"success" example:"true"`
	Data    SwaggerBookingView `json:"data"`
}

// SwaggerBookingView is a session snapshot with totals.
type SwaggerBookingView struct {
	Session    SwaggerSession `json:"session"`
	Totals     *SwaggerTotals `json:"totals,omitempty"`
	CanAdvance bool           `json:"canAdvance" example:"true"`
}

// SwaggerSession is the stored booking state.
type SwaggerSession struct {
	ID       string `json:"id" example:"8c6f0b1e-4f7a-4d7e-9a59-3f1d2c7b9e10"`
	Stage    string `json:"stage" example:"offer_selected"`
	Revision int64  `json:"revision" example:"3"`
}

// SwaggerTotals is the running price of the selections.
type SwaggerTotals struct {
	Currency      string `json:"currency" example:"USD"`
	OfferTotal    string `json:"offerTotal" example:"300"`
	ServicesTotal string `json:"servicesTotal" example:"40.27"`
	GrandTotal    string `json:"grandTotal" example:"340.27"`
}

// SwaggerSearchEnvelope wraps search results.
type SwaggerSearchEnvelope struct {
	Success bool                `json:"success" example:"true"`
	Data    SwaggerSearchResult `json:"data"`
}

// SwaggerSearchResult lists offers.
type SwaggerSearchResult struct {
	Offers       []SwaggerOffer `json:"offers"`
	TotalResults int            `json:"totalResults" example:"12"`
}

// SwaggerOffer is a priced itinerary.
type SwaggerOffer struct {
	ID               string `json:"id" example:"off_0000AEdGRhtp5AUUdJqMxo"`
	TotalAmount      string `json:"totalAmount" example:"300.00"`
	Currency         string `json:"currency" example:"USD"`
	ExpiresAt        string `json:"expiresAt" example:"2026-11-01T10:30:00Z"`
	PassportRequired bool   `json:"passportRequired" example:"true"`
}

// SwaggerSeatMapEnvelope wraps a seat map.
type SwaggerSeatMapEnvelope struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data"`
}

// SwaggerBaggageEnvelope wraps the baggage catalog.
type SwaggerBaggageEnvelope struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data"`
}

// SwaggerValidationEnvelope wraps passenger validation.
type SwaggerValidationEnvelope struct {
	Success bool                   `json:"success" example:"true"`
	Data    PassengerValidationDTO `json:"data"`
}

// SwaggerReconcileEnvelope wraps a reconciliation outcome.
type SwaggerReconcileEnvelope struct {
	Success bool                    `json:"success" example:"true"`
	Data    SwaggerReconcileOutcome `json:"data"`
}

// SwaggerReconcileOutcome reports the re-verified price.
type SwaggerReconcileOutcome struct {
	Status           string `json:"status" example:"price_changed"`
	OldPrice         string `json:"oldPrice" example:"300"`
	NewPrice         string `json:"newPrice" example:"310"`
	RequiresDecision bool   `json:"requiresDecision" example:"true"`
	VerifiedTotal    string `json:"verifiedTotal" example:"310"`
	Stage            string `json:"stage" example:"passenger_details_complete"`
}

// SwaggerCheckoutEnvelope wraps the gateway handoff.
type SwaggerCheckoutEnvelope struct {
	Success bool        `json:"success" example:"true"`
	Data    CheckoutDTO `json:"data"`
}

// SwaggerConfirmationEnvelope wraps the booking outcome.
type SwaggerConfirmationEnvelope struct {
	Success bool            `json:"success" example:"true"`
	Data    ConfirmationDTO `json:"data"`
}
