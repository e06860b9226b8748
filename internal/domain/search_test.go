package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCriteria_Validate(t *testing.T) {
	today := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	// Helper to create a valid base criteria
	validCriteria := func() *SearchCriteria {
		return &SearchCriteria{
			Slices: []SliceRequest{
				{Origin: "LAX", Destination: "JFK", DepartureDate: "2026-03-20"},
				{Origin: "JFK", Destination: "LAX", DepartureDate: "2026-03-27"},
			},
			Passengers: PassengerCounts{Adults: 1},
			CabinClass: "economy",
		}
	}

	tests := []struct {
		name      string
		modify    func(*SearchCriteria)
		wantErr   bool
		wantField string
	}{
		{
			name:    "valid round trip passes",
			modify:  func(c *SearchCriteria) {},
			wantErr: false,
		},
		{
			name:    "valid one way passes",
			modify:  func(c *SearchCriteria) { c.Slices = c.Slices[:1] },
			wantErr: false,
		},
		{
			name:    "departure today passes",
			modify:  func(c *SearchCriteria) { c.Slices[0].DepartureDate = "2026-03-10" },
			wantErr: false,
		},
		{
			name:    "lowercase codes are normalized",
			modify:  func(c *SearchCriteria) { c.Slices[0].Origin = "lax" },
			wantErr: false,
		},
		{
			name:      "no slices fails",
			modify:    func(c *SearchCriteria) { c.Slices = nil },
			wantErr:   true,
			wantField: "slices",
		},
		{
			name: "three slices fails",
			modify: func(c *SearchCriteria) {
				c.Slices = append(c.Slices, SliceRequest{Origin: "LAX", Destination: "SFO", DepartureDate: "2026-04-01"})
			},
			wantErr:   true,
			wantField: "slices",
		},
		{
			name:      "invalid origin fails",
			modify:    func(c *SearchCriteria) { c.Slices[0].Origin = "LA1" },
			wantErr:   true,
			wantField: "slices[0].origin",
		},
		{
			name:      "same origin and destination fails",
			modify:    func(c *SearchCriteria) { c.Slices[0].Destination = "LAX" },
			wantErr:   true,
			wantField: "slices[0].destination",
		},
		{
			name:      "bad date format fails",
			modify:    func(c *SearchCriteria) { c.Slices[0].DepartureDate = "03-20-2026" },
			wantErr:   true,
			wantField: "slices[0].departureDate",
		},
		{
			name:      "impossible date fails",
			modify:    func(c *SearchCriteria) { c.Slices[0].DepartureDate = "2026-02-30" },
			wantErr:   true,
			wantField: "slices[0].departureDate",
		},
		{
			name:      "past date fails",
			modify:    func(c *SearchCriteria) { c.Slices[0].DepartureDate = "2026-03-09" },
			wantErr:   true,
			wantField: "slices[0].departureDate",
		},
		{
			name:      "return before outbound fails",
			modify:    func(c *SearchCriteria) { c.Slices[1].DepartureDate = "2026-03-19" },
			wantErr:   true,
			wantField: "slices[1].departureDate",
		},
		{
			name:      "no adults fails",
			modify:    func(c *SearchCriteria) { c.Passengers = PassengerCounts{Children: 1} },
			wantErr:   true,
			wantField: "passengers.adults",
		},
		{
			name:      "more lap infants than adults fails",
			modify:    func(c *SearchCriteria) { c.Passengers = PassengerCounts{Adults: 1, InfantsWithoutSeat: 2} },
			wantErr:   true,
			wantField: "passengers.infantsWithoutSeat",
		},
		{
			name:    "one lap infant per adult passes",
			modify:  func(c *SearchCriteria) { c.Passengers = PassengerCounts{Adults: 2, InfantsWithoutSeat: 2} },
			wantErr: false,
		},
		{
			name:      "more than nine passengers fails",
			modify:    func(c *SearchCriteria) { c.Passengers = PassengerCounts{Adults: 6, Children: 4} },
			wantErr:   true,
			wantField: "passengers",
		},
		{
			name:      "unknown cabin class fails",
			modify:    func(c *SearchCriteria) { c.CabinClass = "luxury" },
			wantErr:   true,
			wantField: "cabinClass",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria := validCriteria()
			tt.modify(criteria)

			err := criteria.Validate(today)

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var validationErrs *ValidationErrors
			require.True(t, errors.As(err, &validationErrs))
			assert.Contains(t, validationErrs.ToMap(), tt.wantField)
			assert.Equal(t, KindValidation, Classify(err))
		})
	}
}

func TestSearchCriteria_NormalizesCodes(t *testing.T) {
	criteria := &SearchCriteria{
		Slices:     []SliceRequest{{Origin: " lax", Destination: "jfk ", DepartureDate: "2026-03-20"}},
		Passengers: PassengerCounts{Adults: 1},
	}

	require.NoError(t, criteria.Validate(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "LAX", criteria.Slices[0].Origin)
	assert.Equal(t, "JFK", criteria.Slices[0].Destination)
}

func TestSearchCriteria_SetDefaults(t *testing.T) {
	criteria := &SearchCriteria{}
	criteria.SetDefaults()
	assert.Equal(t, "economy", criteria.CabinClass)

	criteria = &SearchCriteria{CabinClass: "business"}
	criteria.SetDefaults()
	assert.Equal(t, "business", criteria.CabinClass)
}

func TestPassengerCounts_Total(t *testing.T) {
	counts := PassengerCounts{Adults: 2, Children: 1, InfantsWithSeat: 1, InfantsWithoutSeat: 1}
	assert.Equal(t, 5, counts.Total())
}
