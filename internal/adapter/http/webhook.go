package http

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/travel-booking/flight-booking/internal/adapter/http/middleware"
	"github.com/travel-booking/flight-booking/internal/adapter/http/response"
	"github.com/travel-booking/flight-booking/internal/domain"
	"github.com/travel-booking/flight-booking/internal/infrastructure/logger"
	"github.com/travel-booking/flight-booking/internal/infrastructure/timeutil"
)

// maxWebhookBody caps the bytes read from a webhook delivery.
const maxWebhookBody = 1 << 20

// WebhookSource verifies and parses one sender's webhook deliveries.
type WebhookSource struct {
	// Name labels log lines (e.g., "stripe")
	Name string

	// SignatureHeader is the request header carrying the signature
	SignatureHeader string

	// Parse verifies the signature and maps the event to a booking record.
	// It returns domain.ErrIgnoredEvent for events that do not change booking status.
	Parse func(payload []byte, signature string, now time.Time) (*domain.BookingRecord, error)
}

// WebhookHandler records booking status pushed by the payment gateway and the offers provider.
type WebhookHandler struct {
	recorder domain.BookingRecorder
	payment  WebhookSource
	orders   WebhookSource
	clock    timeutil.Clock
	log      *logger.Logger
}

// NewWebhookHandler creates a WebhookHandler.
func NewWebhookHandler(recorder domain.BookingRecorder, payment, orders WebhookSource, clock timeutil.Clock, log *logger.Logger) *WebhookHandler {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &WebhookHandler{
		recorder: recorder,
		payment:  payment,
		orders:   orders,
		clock:    clock,
		log:      logger.OrNop(log).WithComponent("webhook"),
	}
}

// Payment handles POST /webhooks/payment
//
// @Summary Payment gateway webhook
// @Description Records the booking status implied by a checkout event
// @Tags webhooks
// @Accept json
// @Produce json
// @Success 200 {object} response.WebhookReceipt
// @Failure 400 {object} SwaggerErrorEnvelope "Bad signature or payload"
// @Router /webhooks/payment [post]
func (h *WebhookHandler) Payment(c echo.Context) error {
	return h.receive(c, h.payment)
}

// Orders handles POST /webhooks/orders
//
// @Summary Offers provider order webhook
// @Description Confirms or fails the booking linked to a payment session
// @Tags webhooks
// @Accept json
// @Produce json
// @Success 200 {object} response.WebhookReceipt
// @Failure 400 {object} SwaggerErrorEnvelope "Bad signature or payload"
// @Router /webhooks/orders [post]
func (h *WebhookHandler) Orders(c echo.Context) error {
	return h.receive(c, h.orders)
}

func (h *WebhookHandler) receive(c echo.Context, src WebhookSource) error {
	log := middleware.LoggerFrom(c, h.log).WithContext("webhook_source", src.Name)

	if src.Parse == nil {
		return c.JSON(http.StatusNotFound, response.Failure(response.CodeNotFound, "webhook source not configured", nil))
	}

	payload, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBody))
	if err != nil {
		return response.InvalidRequestBody(c)
	}

	record, err := src.Parse(payload, c.Request().Header.Get(src.SignatureHeader), h.clock.Now())
	switch {
	case errors.Is(err, domain.ErrIgnoredEvent):
		log.Debug().Err(err).Msg("webhook event ignored")
		return response.WebhookReceived(c, response.WebhookReceipt{Ignored: true})
	case err != nil:
		log.Warn().Err(err).Msg("webhook rejected")
		return response.BadRequest(c, err.Error())
	}

	if err := h.recorder.RecordBooking(c.Request().Context(), *record); err != nil {
		log.Error().Err(err).Str("payment_session_id", record.SessionID).Msg("cannot record booking status")
		return response.InternalServerError(c)
	}

	log.Info().
		Str("payment_session_id", record.SessionID).
		Str("status", string(record.Status)).
		Str("booking_reference", record.BookingReference).
		Msg("booking status recorded")
	return response.WebhookReceived(c, response.WebhookReceipt{Status: string(record.Status)})
}
