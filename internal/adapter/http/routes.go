package http

import (
	"github.com/labstack/echo/v4"

	"github.com/travel-booking/flight-booking/internal/adapter/http/middleware"
	"github.com/travel-booking/flight-booking/internal/infrastructure/logger"
)

// RegisterRoutes registers the booking API, webhooks and health check.
// Booking routes get a logger scoped to the session in the path.
func RegisterRoutes(e *echo.Echo, h *BookingHandler, wh *WebhookHandler, log *logger.Logger) {
	e.GET("/health", h.Health)

	api := e.Group("/api/v1")
	api.POST("/bookings", h.CreateSession)

	b := api.Group("/bookings/:id", middleware.SessionLogger(log))
	b.GET("", h.GetSession)
	b.POST("/search", h.Search)
	b.PUT("/slices/:slice/offer", h.SelectOffer)

	b.GET("/seat-map", h.SeatMap)
	b.PUT("/seats", h.SelectSeat)
	b.DELETE("/seats/:slice/:passenger", h.RemoveSeat)
	b.POST("/seats/skip", h.SkipSeats)

	b.GET("/baggage", h.BaggageOptions)
	b.PUT("/baggage", h.SelectBaggage)
	b.DELETE("/baggage/:passengerId", h.RemoveBaggage)
	b.POST("/baggage/skip", h.SkipBaggage)

	b.PUT("/passengers", h.SavePassengers)
	b.POST("/advance", h.Advance)
	b.POST("/retreat", h.Retreat)

	b.POST("/reconcile", h.Reconcile)
	b.POST("/reconcile/decision", h.DecidePrice)
	b.POST("/checkout", h.Checkout)
	b.POST("/payment/retry", h.RetryPayment)
	b.GET("/confirmation", h.Confirmation)

	if wh != nil {
		hooks := e.Group("/webhooks", middleware.SessionLogger(log))
		hooks.POST("/payment", wh.Payment)
		hooks.POST("/orders", wh.Orders)
	}
}
