package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/travel-booking/flight-booking/internal/adapter/http/response"
	"github.com/travel-booking/flight-booking/internal/infrastructure/logger"
)

// RecoveryConfig controls what the recovery middleware logs.
type RecoveryConfig struct {
	// DisablePrintStack omits the stack trace from the panic log entry
	DisablePrintStack bool
}

// DefaultRecoveryConfig returns the default recovery configuration.
func DefaultRecoveryConfig() RecoveryConfig {
	return RecoveryConfig{}
}

// Recover returns middleware that turns a handler panic into a 500 envelope.
func Recover(log *logger.Logger) echo.MiddlewareFunc {
	return RecoverWithConfig(log, DefaultRecoveryConfig())
}

// RecoverWithConfig returns recovery middleware with custom configuration.
func RecoverWithConfig(log *logger.Logger, config RecoveryConfig) echo.MiddlewareFunc {
	log = logger.OrNop(log)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				var panicMsg string
				if e, ok := r.(error); ok {
					panicMsg = e.Error()
				} else {
					panicMsg = fmt.Sprintf("%v", r)
				}

				event := log.Error().
					Str("request_id", GetRequestID(c)).
					Str("panic", panicMsg)
				if id := c.Param(SessionParam); id != "" {
					event = event.Str("booking_session", id)
				}
				if !config.DisablePrintStack {
					event = event.Str("stack", string(debug.Stack()))
				}
				event.Msg("Panic recovered")

				if !c.Response().Committed {
					err = c.JSON(http.StatusInternalServerError,
						response.Failure(response.CodeInternalError, response.MsgInternalError, nil))
				}
			}()

			return next(c)
		}
	}
}
