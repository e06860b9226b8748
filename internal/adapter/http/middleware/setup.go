package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/travel-booking/flight-booking/internal/infrastructure/logger"
)

// Setup registers the global middleware in order:
//  1. RequestID, so every later log line carries it
//  2. RequestLogger, the access log
//  3. Recover, innermost, so a panic still produces a logged 500
//
// Call it before registering routes.
func Setup(e *echo.Echo, log *logger.Logger) {
	SetupWithConfig(e, log, DefaultRecoveryConfig())
}

// SetupWithConfig registers middleware with custom recovery configuration.
func SetupWithConfig(e *echo.Echo, log *logger.Logger, recoveryConfig RecoveryConfig) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(RecoverWithConfig(log, recoveryConfig))
}

// Chain returns the same middleware as a slice for route groups.
func Chain(log *logger.Logger) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		RequestID(),
		RequestLogger(log),
		Recover(log),
	}
}
