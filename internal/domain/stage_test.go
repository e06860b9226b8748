package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStage_Next(t *testing.T) {
	tests := []struct {
		stage  Stage
		want   Stage
		wantOK bool
	}{
		{StageSearch, StageOfferSelected, true},
		{StageOfferSelected, StageSeatsChosenOrSkipped, true},
		{StageSeatsChosenOrSkipped, StageBaggageChosenOrSkipped, true},
		{StageBaggageChosenOrSkipped, StagePassengerDetailsComplete, true},
		{StagePassengerDetailsComplete, StagePriceReconciled, true},
		{StagePriceReconciled, StageSubmitted, true},
		{StageSubmitted, StageConfirmed, true},
		{StageConfirmed, "", false},
		{StageExpired, "", false},
		{StagePaymentFailed, "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.stage), func(t *testing.T) {
			got, ok := tt.stage.Next()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStage_Previous(t *testing.T) {
	prev, ok := StageSeatsChosenOrSkipped.Previous()
	assert.True(t, ok)
	assert.Equal(t, StageOfferSelected, prev)

	_, ok = StageSearch.Previous()
	assert.False(t, ok)

	_, ok = StageBookingCreateFailed.Previous()
	assert.False(t, ok)
}

func TestStage_Classification(t *testing.T) {
	tests := []struct {
		stage      Stage
		valid      bool
		terminal   bool
		prePayment bool
	}{
		{StageSearch, true, false, true},
		{StagePassengerDetailsComplete, true, false, true},
		{StagePriceReconciled, true, false, true},
		{StageSubmitted, true, false, false},
		{StageConfirmed, true, false, false},
		{StageExpired, true, true, false},
		{StagePaymentFailed, true, true, false},
		{StageBookingCreateFailed, true, true, false},
		{Stage("unknown"), false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.stage), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.stage.IsValid())
			assert.Equal(t, tt.terminal, tt.stage.IsTerminalFailure())
			assert.Equal(t, tt.prePayment, tt.stage.IsPrePayment())
		})
	}
}

func TestStage_Before(t *testing.T) {
	assert.True(t, StageSearch.Before(StageOfferSelected))
	assert.False(t, StageOfferSelected.Before(StageOfferSelected))
	assert.False(t, StageSubmitted.Before(StageSearch))
	assert.False(t, StageExpired.Before(StageConfirmed))
}
