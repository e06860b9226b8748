package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health writes a health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status: "ok",
	})
}

// WebhookReceipt acknowledges a webhook delivery.
type WebhookReceipt struct {
	Received bool   `json:"received"`
	Ignored  bool   `json:"ignored,omitempty"`
	Status   string `json:"status,omitempty"`
}

// WebhookReceived writes a 200 OK acknowledgement for a webhook.
func WebhookReceived(c echo.Context, receipt WebhookReceipt) error {
	receipt.Received = true
	return c.JSON(http.StatusOK, receipt)
}
