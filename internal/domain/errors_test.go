package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderError(t *testing.T) {
	tests := []struct {
		name          string
		provider      string
		underlyingErr error
		wantContains  []string
		wantRetryable bool
	}{
		{
			name:          "error message includes provider and underlying error",
			provider:      "duffel",
			underlyingErr: errors.New("connection failed"),
			wantContains:  []string{"duffel", "connection failed"},
			wantRetryable: false,
		},
		{
			name:          "payment gateway error",
			provider:      "stripe",
			underlyingErr: errors.New("card declined"),
			wantContains:  []string{"stripe", "card declined"},
			wantRetryable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewProviderError(tt.provider, tt.underlyingErr)

			for _, want := range tt.wantContains {
				assert.Contains(t, err.Error(), want)
			}
			assert.True(t, errors.Is(err, tt.underlyingErr))
			assert.Equal(t, tt.wantRetryable, err.Retryable)
			assert.False(t, IsRetryable(err))
		})
	}
}

func TestNewRetryableProviderError(t *testing.T) {
	err := NewRetryableProviderError("duffel", errors.New("rate limit exceeded"))

	assert.Contains(t, err.Error(), "duffel")
	assert.True(t, err.Retryable)
	assert.True(t, IsRetryable(err))
	assert.True(t, IsRetryable(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsRetryable(errors.New("plain")))
}

func TestNewProviderTimeoutError(t *testing.T) {
	err := NewProviderTimeoutError("duffel")

	assert.Contains(t, err.Error(), "duffel")
	assert.True(t, errors.Is(err, ErrProviderTimeout))
	assert.True(t, IsProviderTimeout(err))
	assert.True(t, err.Retryable)
}

func TestNewProviderUnavailableError(t *testing.T) {
	err := NewProviderUnavailableError("duffel")

	assert.Contains(t, err.Error(), "duffel")
	assert.True(t, errors.Is(err, ErrProviderUnavailable))
}

func TestClassify(t *testing.T) {
	validation := &ValidationErrors{}
	validation.Add("passengers[0].title", "is required")

	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{name: "nil", err: nil, want: KindNone},
		{name: "validation errors", err: validation, want: KindValidation},
		{name: "invalid request", err: WrapInvalidRequest("bad json"), want: KindValidation},
		{name: "seat conflict", err: &SeatConflictError{SliceIndex: 0, Designator: "12A"}, want: KindSeatConflict},
		{name: "seat unavailable", err: ErrSeatUnavailable, want: KindSeatConflict},
		{name: "offer expired", err: fmt.Errorf("reconcile: %w", ErrOfferExpired), want: KindOfferExpired},
		{name: "offer not found", err: NewProviderError("duffel", ErrOfferNotFound), want: KindOfferExpired},
		{name: "decision required", err: ErrDecisionRequired, want: KindPriceChanged},
		{name: "payment failed", err: NewProviderError("stripe", ErrPaymentFailed), want: KindPaymentFailed},
		{name: "booking create failed", err: ErrBookingCreateFailed, want: KindBookingCreateFailed},
		{name: "poll timeout", err: ErrPollTimeout, want: KindPollTimeout},
		{name: "stage incomplete", err: NewIncompleteStageError(StageOfferSelected, StageSeatsChosenOrSkipped, "no seat action"), want: KindStage},
		{name: "invalid transition", err: NewInvalidTransitionError(StageSubmitted, StageSearch, "locked"), want: KindStage},
		{name: "session not found", err: ErrSessionNotFound, want: KindNotFound},
		{name: "stale result", err: ErrStaleResult, want: KindStale},
		{name: "total mismatch", err: ErrTotalMismatch, want: KindInternal},
		{name: "provider timeout", err: NewProviderTimeoutError("duffel"), want: KindProviderUnavailable},
		{name: "deadline exceeded", err: context.DeadlineExceeded, want: KindProviderUnavailable},
		{name: "raw provider error", err: NewRetryableProviderError("duffel", errors.New("502")), want: KindProviderUnavailable},
		{name: "unknown", err: errors.New("boom"), want: KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestStageError(t *testing.T) {
	err := NewIncompleteStageError(StageBaggageChosenOrSkipped, StagePassengerDetailsComplete, "passenger details invalid")

	assert.True(t, errors.Is(err, ErrStageIncomplete))
	assert.False(t, errors.Is(err, ErrInvalidTransition))
	assert.Equal(t, "stage baggage_chosen_or_skipped -> passenger_details_complete: passenger details invalid", err.Error())

	noTarget := NewInvalidTransitionError(StageConfirmed, "", "pipeline finished")
	assert.Equal(t, "stage confirmed: pipeline finished", noTarget.Error())
	assert.True(t, errors.Is(noTarget, ErrInvalidTransition))
}

func TestSeatConflictError(t *testing.T) {
	err := &SeatConflictError{SliceIndex: 1, Designator: "14C", HeldByIndex: 0, PassengerIndex: 1}

	assert.True(t, errors.Is(err, ErrSeatConflict))
	assert.Contains(t, err.Error(), "14C")
	assert.Contains(t, err.Error(), "slice 1")

	var conflict *SeatConflictError
	require.True(t, errors.As(fmt.Errorf("select seat: %w", err), &conflict))
	assert.Equal(t, 0, conflict.HeldByIndex)
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("origin", "must be a 3-letter code")
	assert.Equal(t, "origin: must be a 3-letter code", err.Error())
	assert.Equal(t, "origin", err.Field)
	assert.Equal(t, "must be a 3-letter code", err.Message)
}

func TestValidationErrors(t *testing.T) {
	t.Run("nil collection has no errors", func(t *testing.T) {
		var v *ValidationErrors
		assert.False(t, v.HasErrors())
		assert.Nil(t, v.First())
		assert.Empty(t, v.ToMap())
	})

	t.Run("keeps insertion order and ignores duplicate fields", func(t *testing.T) {
		v := &ValidationErrors{}
		v.Add("passengers[0].givenName", "is required")
		v.Add("passengers[0].email", "is required")
		v.Add("passengers[0].givenName", "second message")

		require.True(t, v.HasErrors())
		assert.Len(t, v.Errors, 2)
		assert.Equal(t, "passengers[0].givenName", v.First().Field)
		assert.Equal(t, "passengers[0].givenName: is required", v.Error())
		assert.Equal(t, map[string]string{
			"passengers[0].givenName": "is required",
			"passengers[0].email":     "is required",
		}, v.ToMap())
	})

	t.Run("empty collection message", func(t *testing.T) {
		assert.Equal(t, "validation failed", (&ValidationErrors{}).Error())
	})
}

func TestWrapInvalidRequest(t *testing.T) {
	tests := []struct {
		name         string
		format       string
		args         []interface{}
		wantContains string
	}{
		{
			name:         "single argument",
			format:       "field %s is required",
			args:         []interface{}{"origin"},
			wantContains: "field origin is required",
		},
		{
			name:         "multiple arguments",
			format:       "%s must be between %d and %d",
			args:         []interface{}{"passengers", 1, 9},
			wantContains: "passengers must be between 1 and 9",
		},
		{
			name:         "no arguments",
			format:       "invalid request format",
			args:         nil,
			wantContains: "invalid request format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WrapInvalidRequest(tt.format, tt.args...)
			assert.True(t, errors.Is(err, ErrInvalidRequest))
			assert.Contains(t, err.Error(), tt.wantContains)
		})
	}
}

func TestErrorCheckers(t *testing.T) {
	tests := []struct {
		name       string
		checkFunc  func(error) bool
		err        error
		wantResult bool
	}{
		{
			name:       "IsInvalidRequest with wrapped error",
			checkFunc:  IsInvalidRequest,
			err:        WrapInvalidRequest("test"),
			wantResult: true,
		},
		{
			name:       "IsInvalidRequest with different error",
			checkFunc:  IsInvalidRequest,
			err:        ErrOfferExpired,
			wantResult: false,
		},
		{
			name:       "IsOfferExpired with expired",
			checkFunc:  IsOfferExpired,
			err:        ErrOfferExpired,
			wantResult: true,
		},
		{
			name:       "IsOfferExpired with not found",
			checkFunc:  IsOfferExpired,
			err:        NewProviderError("duffel", ErrOfferNotFound),
			wantResult: true,
		},
		{
			name:       "IsOfferExpired with unavailable",
			checkFunc:  IsOfferExpired,
			err:        ErrProviderUnavailable,
			wantResult: false,
		},
		{
			name:       "IsProviderTimeout with different error",
			checkFunc:  IsProviderTimeout,
			err:        ErrInvalidRequest,
			wantResult: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantResult, tt.checkFunc(tt.err))
		})
	}
}
