package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/travel-booking/flight-booking/internal/infrastructure/logger"
)

const (
	// SessionParam is the path parameter carrying the booking session id.
	SessionParam = "id"

	loggerKey = "logger"
)

// SessionLogger stores a request-scoped logger tagged with the request id and,
// on booking routes, the booking session id.
func SessionLogger(log *logger.Logger) echo.MiddlewareFunc {
	log = logger.OrNop(log)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			scoped := log
			if reqID := GetRequestID(c); reqID != "" {
				scoped = scoped.WithRequestID(reqID)
			}
			if id := c.Param(SessionParam); id != "" {
				scoped = scoped.WithSession(id)
			}
			c.Set(loggerKey, scoped)
			return next(c)
		}
	}
}

// LoggerFrom returns the request-scoped logger, or fallback when none is set.
func LoggerFrom(c echo.Context, fallback *logger.Logger) *logger.Logger {
	if l, ok := c.Get(loggerKey).(*logger.Logger); ok {
		return l
	}
	return logger.OrNop(fallback)
}
