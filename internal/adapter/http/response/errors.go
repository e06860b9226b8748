package response

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/travel-booking/flight-booking/internal/domain"
)

// InvalidRequestBody writes a 400 Bad Request response for malformed request bodies.
func InvalidRequestBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, Failure(CodeInvalidRequest, MsgInvalidRequestBody, nil))
}

// BadRequest writes a 400 Bad Request response with the given error message.
func BadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Failure(CodeInvalidRequest, message, nil))
}

// ValidationError writes a 400 Bad Request response with validation error details.
func ValidationError(c echo.Context, details map[string]string) error {
	return c.JSON(http.StatusBadRequest, Failure(CodeValidationError, MsgValidationFailed, details))
}

// InternalServerError writes a 500 Internal Server Error response.
func InternalServerError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, Failure(CodeInternalError, MsgInternalError, nil))
}

// statusByKind maps an error kind to its HTTP status and code.
var statusByKind = map[domain.ErrorKind]struct {
	status int
	code   string
}{
	domain.KindValidation:          {http.StatusBadRequest, CodeValidationError},
	domain.KindSeatConflict:        {http.StatusConflict, CodeSeatConflict},
	domain.KindStage:               {http.StatusConflict, CodeStageIncomplete},
	domain.KindStale:               {http.StatusConflict, CodeStaleResult},
	domain.KindPriceChanged:        {http.StatusConflict, CodePriceChanged},
	domain.KindOfferExpired:        {http.StatusGone, CodeOfferExpired},
	domain.KindPaymentFailed:       {http.StatusPaymentRequired, CodePaymentFailed},
	domain.KindBookingCreateFailed: {http.StatusBadGateway, CodeBookingCreateFailed},
	domain.KindProviderUnavailable: {http.StatusServiceUnavailable, CodeProviderUnavailable},
	domain.KindPollTimeout:         {http.StatusGatewayTimeout, CodeTimeout},
	domain.KindNotFound:            {http.StatusNotFound, CodeNotFound},
}

// StatusFor returns the HTTP status and error code for err.
func StatusFor(err error) (int, string) {
	if errors.Is(err, context.Canceled) {
		return http.StatusGatewayTimeout, CodeTimeout
	}
	if m, ok := statusByKind[domain.Classify(err)]; ok {
		return m.status, m.code
	}
	return http.StatusInternalServerError, CodeInternalError
}

// FromError writes the envelope for a domain error.
// Internal errors never leak their message.
func FromError(c echo.Context, err error) error {
	status, code := StatusFor(err)

	switch {
	case errors.Is(err, context.Canceled):
		return c.JSON(status, Failure(code, MsgRequestCancelled, nil))
	case status == http.StatusInternalServerError:
		return InternalServerError(c)
	case status == http.StatusServiceUnavailable:
		return c.JSON(status, Failure(code, MsgProviderUnavailable, nil))
	}

	return c.JSON(status, Failure(code, err.Error(), details(err)))
}

func details(err error) map[string]string {
	var validationErrs *domain.ValidationErrors
	if errors.As(err, &validationErrs) {
		return validationErrs.ToMap()
	}

	var conflict *domain.SeatConflictError
	if errors.As(err, &conflict) {
		return map[string]string{
			"sliceIndex":     strconv.Itoa(conflict.SliceIndex),
			"seatDesignator": conflict.Designator,
			"heldBy":         strconv.Itoa(conflict.HeldByIndex),
		}
	}

	var stageErr *domain.StageError
	if errors.As(err, &stageErr) {
		out := map[string]string{"stage": string(stageErr.From)}
		if stageErr.To != "" {
			out["target"] = string(stageErr.To)
		}
		return out
	}
	return nil
}
