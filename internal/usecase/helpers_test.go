package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/travel-booking/flight-booking/internal/domain"
	"github.com/travel-booking/flight-booking/internal/infrastructure/timeutil"
	"github.com/travel-booking/flight-booking/internal/session"
)

// testNow is the fixed "today" of every usecase test.
var testNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func newTestClock() *timeutil.MockClock {
	return timeutil.NewMockClock(testNow)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// createTestOffer creates an offer priced in USD that expires two hours after testNow.
func createTestOffer(id, total string, passengers ...domain.OfferPassenger) *domain.Offer {
	if len(passengers) == 0 {
		passengers = []domain.OfferPassenger{{ID: "pas_1", Type: domain.PassengerAdult}}
	}
	return &domain.Offer{
		ID:          id,
		TotalAmount: dec(total),
		Currency:    "USD",
		ExpiresAt:   testNow.Add(2 * time.Hour),
		Passengers:  passengers,
		Slices: []domain.Slice{{
			ID:          "sli_" + id,
			Origin:      "LAX",
			Destination: "JFK",
			DepartingAt: time.Date(2026, 3, 20, 8, 0, 0, 0, time.UTC),
			Segments:    []domain.Segment{{ID: "seg_" + id, FlightNumber: "AA100"}},
		}},
		Owner: domain.AirlineInfo{Code: "AA", Name: "American Airlines"},
	}
}

func adult(id string) domain.OfferPassenger {
	return domain.OfferPassenger{ID: id, Type: domain.PassengerAdult}
}

// validAdult returns a complete record for a primary adult passenger.
func validAdult(id string) domain.PassengerRecord {
	return domain.PassengerRecord{
		ID:         id,
		Type:       domain.PassengerAdult,
		Title:      "mr",
		GivenName:  "Tony",
		FamilyName: "Stark",
		Gender:     "m",
		BornOn:     "1980-07-24",
		Email:      "tony@example.com",
		Phone:      "+1 415 555 2671",
	}
}

func validPassport() domain.IdentityDocument {
	return domain.IdentityDocument{
		Number:         "P1234567",
		IssuingCountry: "US",
		ExpiresOn:      "2030-01-01",
	}
}

func roundTripCriteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		Slices: []domain.SliceRequest{
			{Origin: "LAX", Destination: "JFK", DepartureDate: "2026-03-20"},
			{Origin: "JFK", Destination: "LAX", DepartureDate: "2026-03-27"},
		},
		Passengers: domain.PassengerCounts{Adults: 1},
		CabinClass: "economy",
	}
}

// newSessionAt creates a persisted session forced into stage.
func newSessionAt(t *testing.T, mgr *session.Manager, stage domain.Stage) *session.BookingSession {
	t.Helper()
	ctx := context.Background()
	sess, err := mgr.Create(ctx)
	require.NoError(t, err)
	if stage != domain.StageSearch {
		require.NoError(t, sess.SetStage(ctx, stage))
	}
	return sess
}
