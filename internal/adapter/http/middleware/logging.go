package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/travel-booking/flight-booking/internal/infrastructure/logger"
)

// RequestLogger returns middleware that writes one access log line per request.
// Server errors log at error, client errors at warn, everything else at info.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	log = logger.OrNop(log)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				// Let Echo's error handler write the response
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			var event *zerolog.Event
			status := res.Status
			switch {
			case status >= 500:
				event = log.Error()
			case status >= 400:
				event = log.Warn()
			default:
				event = log.Info()
			}

			if id := c.Param(SessionParam); id != "" {
				event = event.Str("booking_session", id)
			}

			event.
				Str("request_id", GetRequestID(c)).
				Str("method", req.Method).
				Str("route", c.Path()).
				Str("path", req.URL.Path).
				Str("query", req.URL.RawQuery).
				Int("status", status).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			return nil
		}
	}
}
