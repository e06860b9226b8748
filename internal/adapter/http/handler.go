package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/travel-booking/flight-booking/internal/adapter/http/middleware"
	"github.com/travel-booking/flight-booking/internal/adapter/http/response"
	"github.com/travel-booking/flight-booking/internal/domain"
	"github.com/travel-booking/flight-booking/internal/infrastructure/logger"
	"github.com/travel-booking/flight-booking/internal/usecase"
)

// BookingHandler exposes the booking pipeline over HTTP.
type BookingHandler struct {
	useCase usecase.BookingUseCase
	log     *logger.Logger
}

// NewBookingHandler creates a BookingHandler with the given use case.
func NewBookingHandler(uc usecase.BookingUseCase, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		useCase: uc,
		log:     logger.OrNop(log),
	}
}

// CreateSession handles POST /api/v1/bookings
//
// @Summary Start a booking
// @Description Creates an empty booking session in the search stage
// @Tags bookings
// @Produce json
// @Success 201 {object} SwaggerBookingEnvelope
// @Router /api/v1/bookings [post]
func (h *BookingHandler) CreateSession(c echo.Context) error {
	view, err := h.useCase.CreateSession(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}
	return response.Created(c, view)
}

// GetSession handles GET /api/v1/bookings/:id
//
// @Summary Get a booking
// @Description Returns the stage, selections, passengers and running totals
// @Tags bookings
// @Produce json
// @Param id path string true "Booking session id"
// @Success 200 {object} SwaggerBookingEnvelope
// @Failure 404 {object} SwaggerErrorEnvelope
// @Router /api/v1/bookings/{id} [get]
func (h *BookingHandler) GetSession(c echo.Context) error {
	view, err := h.useCase.GetSession(c.Request().Context(), sessionID(c))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, view)
}

// Search handles POST /api/v1/bookings/:id/search
//
// @Summary Search offers
// @Description Searches the offers provider and restarts the booking at the search stage
// @Tags search
// @Accept json
// @Produce json
// @Param id path string true "Booking session id"
// @Param request body SearchRequest true "Search criteria"
// @Success 200 {object} SwaggerSearchEnvelope
// @Failure 400 {object} SwaggerErrorEnvelope
// @Failure 503 {object} SwaggerErrorEnvelope
// @Router /api/v1/bookings/{id}/search [post]
func (h *BookingHandler) Search(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return response.FromError(c, err)
	}

	offers, err := h.useCase.Search(c.Request().Context(), sessionID(c), ToSearchCriteria(&req))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, SearchResultsDTO{Offers: offers, TotalResults: len(offers)})
}

// SelectOffer handles PUT /api/v1/bookings/:id/slices/:slice/offer
//
// @Summary Select an offer
// @Description Selects a search result for a slice; slice 0 carries the bundled price
// @Tags search
// @Accept json
// @Produce json
// @Param id path string true "Booking session id"
// @Param slice path int true "Slice index"
// @Param request body SelectOfferRequest true "Offer"
// @Success 200 {object} SwaggerBookingEnvelope
// @Failure 404 {object} SwaggerErrorEnvelope
// @Failure 409 {object} SwaggerErrorEnvelope
// @Failure 410 {object} SwaggerErrorEnvelope
// @Router /api/v1/bookings/{id}/slices/{slice}/offer [put]
func (h *BookingHandler) SelectOffer(c echo.Context) error {
	slice, err := indexParam(c, "slice")
	if err != nil {
		return response.FromError(c, err)
	}
	var req SelectOfferRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return response.FromError(c, err)
	}

	view, err := h.useCase.SelectOffer(c.Request().Context(), sessionID(c), slice, req.OfferID)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, view)
}

// SeatMap handles GET /api/v1/bookings/:id/seat-map
//
// @Summary Seat map
// @Description Returns the seat map of the primary offer for every slice
// @Tags seats
// @Produce json
// @Param id path string true "Booking session id"
// @Success 200 {object} SwaggerSeatMapEnvelope
// @Failure 409 {object} SwaggerErrorEnvelope
// @Failure 410 {object} SwaggerErrorEnvelope
// @Router /api/v1/bookings/{id}/seat-map [get]
func (h *BookingHandler) SeatMap(c echo.Context) error {
	seatMap, err := h.useCase.SeatMap(c.Request().Context(), sessionID(c))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, seatMap)
}

// SelectSeat handles PUT /api/v1/bookings/:id/seats
//
// @Summary Assign a seat
// @Description Assigns a seat to a passenger on a slice, replacing that passenger's previous seat
// @Tags seats
// @Accept json
// @Produce json
// @Param id path string true "Booking session id"
// @Param request body SelectSeatRequest true "Seat"
// @Success 200 {object} SwaggerBookingEnvelope
// @Failure 400 {object} SwaggerErrorEnvelope
// @Failure 409 {object} SwaggerErrorEnvelope "Seat held by another passenger"
// @Router /api/v1/bookings/{id}/seats [put]
func (h *BookingHandler) SelectSeat(c echo.Context) error {
	var req SelectSeatRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return response.FromError(c, err)
	}

	view, err := h.useCase.SelectSeat(c.Request().Context(), sessionID(c), ToSeatRequest(&req))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, view)
}

// RemoveSeat handles DELETE /api/v1/bookings/:id/seats/:slice/:passenger
//
// @Summary Remove a seat
// @Tags seats
// @Produce json
// @Param id path string true "Booking session id"
// @Param slice path int true "Slice index"
// @Param passenger path int true "Passenger index"
// @Success 200 {object} SwaggerBookingEnvelope
// @Router /api/v1/bookings/{id}/seats/{slice}/{passenger} [delete]
func (h *BookingHandler) RemoveSeat(c echo.Context) error {
	slice, err := indexParam(c, "slice")
	if err != nil {
		return response.FromError(c, err)
	}
	passenger, err := indexParam(c, "passenger")
	if err != nil {
		return response.FromError(c, err)
	}

	view, err := h.useCase.RemoveSeat(c.Request().Context(), sessionID(c), slice, passenger)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, view)
}

// SkipSeats handles POST /api/v1/bookings/:id/seats/skip
//
// @Summary Skip seat selection
// @Description Clears any seats and moves to baggage selection
// @Tags seats
// @Produce json
// @Param id path string true "Booking session id"
// @Success 200 {object} SwaggerBookingEnvelope
// @Router /api/v1/bookings/{id}/seats/skip [post]
func (h *BookingHandler) SkipSeats(c echo.Context) error {
	view, err := h.useCase.SkipSeats(c.Request().Context(), sessionID(c))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, view)
}

// BaggageOptions handles GET /api/v1/bookings/:id/baggage
//
// @Summary Baggage options
// @Description Lists purchasable bags and the included allowance for the primary offer
// @Tags baggage
// @Produce json
// @Param id path string true "Booking session id"
// @Success 200 {object} SwaggerBaggageEnvelope
// @Router /api/v1/bookings/{id}/baggage [get]
func (h *BookingHandler) BaggageOptions(c echo.Context) error {
	catalog, err := h.useCase.BaggageOptions(c.Request().Context(), sessionID(c))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, catalog)
}

// SelectBaggage handles PUT /api/v1/bookings/:id/baggage
//
// @Summary Select a bag
// @Description Selects one extra bag for a passenger, replacing any earlier choice
// @Tags baggage
// @Accept json
// @Produce json
// @Param id path string true "Booking session id"
// @Param request body SelectBaggageRequest true "Bag"
// @Success 200 {object} SwaggerBookingEnvelope
// @Failure 404 {object} SwaggerErrorEnvelope
// @Router /api/v1/bookings/{id}/baggage [put]
func (h *BookingHandler) SelectBaggage(c echo.Context) error {
	var req SelectBaggageRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return response.FromError(c, err)
	}

	view, err := h.useCase.SelectBaggage(c.Request().Context(), sessionID(c), ToBaggageRequest(&req))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, view)
}

// RemoveBaggage handles DELETE /api/v1/bookings/:id/baggage/:passengerId
//
// @Summary Remove a bag
// @Tags baggage
// @Produce json
// @Param id path string true "Booking session id"
// @Param passengerId path string true "Provider passenger id"
// @Success 200 {object} SwaggerBookingEnvelope
// @Router /api/v1/bookings/{id}/baggage/{passengerId} [delete]
func (h *BookingHandler) RemoveBaggage(c echo.Context) error {
	view, err := h.useCase.RemoveBaggage(c.Request().Context(), sessionID(c), c.Param("passengerId"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, view)
}

// SkipBaggage handles POST /api/v1/bookings/:id/baggage/skip
//
// @Summary Skip baggage selection
// @Tags baggage
// @Produce json
// @Param id path string true "Booking session id"
// @Success 200 {object} SwaggerBookingEnvelope
// @Router /api/v1/bookings/{id}/baggage/skip [post]
func (h *BookingHandler) SkipBaggage(c echo.Context) error {
	view, err := h.useCase.SkipBaggage(c.Request().Context(), sessionID(c))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, view)
}

// SavePassengers handles PUT /api/v1/bookings/:id/passengers
//
// @Summary Save passenger details
// @Description Stores the passenger form and returns field errors and warnings. Saving never fails on field errors; advancing does.
// @Tags passengers
// @Accept json
// @Produce json
// @Param id path string true "Booking session id"
// @Param request body SavePassengersRequest true "Passenger form"
// @Success 200 {object} SwaggerValidationEnvelope
// @Failure 400 {object} SwaggerErrorEnvelope
// @Failure 409 {object} SwaggerErrorEnvelope
// @Router /api/v1/bookings/{id}/passengers [put]
func (h *BookingHandler) SavePassengers(c echo.Context) error {
	var req SavePassengersRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return response.FromError(c, err)
	}

	res, err := h.useCase.SavePassengers(c.Request().Context(), sessionID(c), ToPassengerRecords(req.Passengers))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToPassengerValidationDTO(res))
}

// Advance handles POST /api/v1/bookings/:id/advance
//
// @Summary Advance the booking
// @Description Moves to the next stage when the current stage is complete
// @Tags stages
// @Produce json
// @Param id path string true "Booking session id"
// @Success 200 {object} SwaggerBookingEnvelope
// @Failure 400 {object} SwaggerErrorEnvelope "Passenger details invalid"
// @Failure 409 {object} SwaggerErrorEnvelope "Stage incomplete"
// @Router /api/v1/bookings/{id}/advance [post]
func (h *BookingHandler) Advance(c echo.Context) error {
	view, err := h.useCase.Advance(c.Request().Context(), sessionID(c))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, view)
}

// Retreat handles POST /api/v1/bookings/:id/retreat
//
// @Summary Go back one stage
// @Tags stages
// @Produce json
// @Param id path string true "Booking session id"
// @Success 200 {object} SwaggerBookingEnvelope
// @Failure 409 {object} SwaggerErrorEnvelope
// @Router /api/v1/bookings/{id}/retreat [post]
func (h *BookingHandler) Retreat(c echo.Context) error {
	view, err := h.useCase.Retreat(c.Request().Context(), sessionID(c))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, view)
}

// Reconcile handles POST /api/v1/bookings/:id/reconcile
//
// @Summary Re-verify the price
// @Description Re-fetches the primary offer and compares it with the cached price
// @Tags checkout
// @Produce json
// @Param id path string true "Booking session id"
// @Success 200 {object} SwaggerReconcileEnvelope
// @Failure 410 {object} SwaggerErrorEnvelope "Offer expired"
// @Router /api/v1/bookings/{id}/reconcile [post]
func (h *BookingHandler) Reconcile(c echo.Context) error {
	outcome, err := h.useCase.Reconcile(c.Request().Context(), sessionID(c))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, outcome)
}

// DecidePrice handles POST /api/v1/bookings/:id/reconcile/decision
//
// @Summary Accept or decline a price change
// @Tags checkout
// @Accept json
// @Produce json
// @Param id path string true "Booking session id"
// @Param request body PriceDecisionRequest true "Decision"
// @Success 200 {object} SwaggerReconcileEnvelope
// @Failure 409 {object} SwaggerErrorEnvelope
// @Router /api/v1/bookings/{id}/reconcile/decision [post]
func (h *BookingHandler) DecidePrice(c echo.Context) error {
	var req PriceDecisionRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return response.FromError(c, err)
	}

	outcome, err := h.useCase.DecidePrice(c.Request().Context(), sessionID(c), domain.ReconciliationDecision(req.Decision))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, outcome)
}

// Checkout handles POST /api/v1/bookings/:id/checkout
//
// @Summary Submit to payment
// @Description Builds the booking submission and opens a checkout session with the payment gateway
// @Tags checkout
// @Produce json
// @Param id path string true "Booking session id"
// @Success 200 {object} SwaggerCheckoutEnvelope
// @Failure 402 {object} SwaggerErrorEnvelope "Payment failed"
// @Failure 409 {object} SwaggerErrorEnvelope
// @Router /api/v1/bookings/{id}/checkout [post]
func (h *BookingHandler) Checkout(c echo.Context) error {
	co, err := h.useCase.Checkout(c.Request().Context(), sessionID(c))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToCheckoutDTO(co))
}

// RetryPayment handles POST /api/v1/bookings/:id/payment/retry
//
// @Summary Retry after a payment failure
// @Description Returns a failed payment to passenger details so the price is re-verified
// @Tags checkout
// @Produce json
// @Param id path string true "Booking session id"
// @Success 200 {object} SwaggerBookingEnvelope
// @Failure 409 {object} SwaggerErrorEnvelope
// @Router /api/v1/bookings/{id}/payment/retry [post]
func (h *BookingHandler) RetryPayment(c echo.Context) error {
	view, err := h.useCase.RetryPayment(c.Request().Context(), sessionID(c))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, view)
}

// Confirmation handles GET /api/v1/bookings/:id/confirmation
//
// @Summary Booking outcome
// @Description Polls the booking status until it is confirmed or failed. A timeout is answered with 202 and may be retried.
// @Tags checkout
// @Produce json
// @Param id path string true "Booking session id"
// @Success 200 {object} SwaggerConfirmationEnvelope
// @Success 202 {object} SwaggerConfirmationEnvelope "Outcome not known yet"
// @Failure 409 {object} SwaggerErrorEnvelope
// @Router /api/v1/bookings/{id}/confirmation [get]
func (h *BookingHandler) Confirmation(c echo.Context) error {
	outcome, err := h.useCase.Confirmation(c.Request().Context(), sessionID(c))
	if err != nil {
		return h.handleError(c, err)
	}

	dto := ToConfirmationDTO(outcome)
	if outcome.Status == domain.OutcomeTimeout {
		return response.Accepted(c, dto)
	}
	return response.OK(c, dto)
}

// Health handles GET /health
func (h *BookingHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleError logs server-side failures and writes the error envelope.
func (h *BookingHandler) handleError(c echo.Context, err error) error {
	status, code := response.StatusFor(err)
	log := middleware.LoggerFrom(c, h.log)
	switch {
	case status >= http.StatusInternalServerError:
		log.Error().Err(err).Str("code", code).Msg("booking request failed")
	case status == http.StatusGone || status == http.StatusPaymentRequired:
		log.Warn().Err(err).Str("code", code).Msg("booking request rejected")
	}
	return response.FromError(c, err)
}

func sessionID(c echo.Context) string {
	return c.Param(middleware.SessionParam)
}
