package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-booking/flight-booking/internal/domain"
	"github.com/travel-booking/flight-booking/internal/usecase"
)

func validationFields(t *testing.T, err error) map[string]string {
	t.Helper()
	var errs *domain.ValidationErrors
	require.True(t, errors.As(err, &errs), "expected *domain.ValidationErrors, got %v", err)
	return errs.ToMap()
}

func TestSearchRequest_Validate(t *testing.T) {
	tests := []struct {
		name       string
		req        SearchRequest
		wantFields []string
	}{
		{
			name: "valid one way",
			req:  SearchRequest{Origin: "lhr", Destination: "jfk", DepartureDate: "2026-11-20", Passengers: PassengerCountsDTO{Adults: 1}},
		},
		{
			name:       "missing everything",
			req:        SearchRequest{},
			wantFields: []string{"origin", "destination", "departureDate"},
		},
		{
			name:       "negative counts",
			req:        SearchRequest{Origin: "LHR", Destination: "JFK", DepartureDate: "2026-11-20", Passengers: PassengerCountsDTO{Adults: 1, Children: -1}},
			wantFields: []string{"passengers"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}
			fields := validationFields(t, err)
			for _, f := range tt.wantFields {
				assert.Contains(t, fields, f)
			}
		})
	}
}

func TestSearchRequest_ValidateNormalizes(t *testing.T) {
	req := SearchRequest{Origin: " lhr ", Destination: "jfk", DepartureDate: "2026-11-20", CabinClass: " Business "}

	require.NoError(t, req.Validate())

	assert.Equal(t, "LHR", req.Origin)
	assert.Equal(t, "JFK", req.Destination)
	assert.Equal(t, "business", req.CabinClass)
}

func TestSelectSeatRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		req       SelectSeatRequest
		wantField string
	}{
		{"valid", SelectSeatRequest{SliceIndex: intPtr(0), PassengerIndex: intPtr(0), SeatDesignator: "1A"}, ""},
		{"three digit row", SelectSeatRequest{SliceIndex: intPtr(1), PassengerIndex: intPtr(2), SeatDesignator: "101k"}, ""},
		{"negative slice", SelectSeatRequest{SliceIndex: intPtr(-1), PassengerIndex: intPtr(0), SeatDesignator: "1A"}, "sliceIndex"},
		{"negative passenger", SelectSeatRequest{SliceIndex: intPtr(0), PassengerIndex: intPtr(-2), SeatDesignator: "1A"}, "passengerIndex"},
		{"letter first", SelectSeatRequest{SliceIndex: intPtr(0), PassengerIndex: intPtr(0), SeatDesignator: "A1"}, "seatDesignator"},
		{"empty designator", SelectSeatRequest{SliceIndex: intPtr(0), PassengerIndex: intPtr(0)}, "seatDesignator"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			assert.Contains(t, validationFields(t, err), tt.wantField)
		})
	}
}

func TestSelectBaggageRequest_Validate(t *testing.T) {
	assert.NoError(t, (&SelectBaggageRequest{PassengerID: "pas_1", ServiceID: "ase_1"}).Validate())

	fields := validationFields(t, (&SelectBaggageRequest{}).Validate())
	assert.Contains(t, fields, "passengerId")
	assert.Contains(t, fields, "serviceId")
}

func TestSavePassengersRequest_Validate(t *testing.T) {
	assert.Contains(t, validationFields(t, (&SavePassengersRequest{}).Validate()), "passengers")

	req := SavePassengersRequest{Passengers: []PassengerDTO{{ID: "pas_1"}, {ID: " "}}}
	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "passengers[1].id")
	assert.NotContains(t, fields, "passengers[0].id")
}

func TestPriceDecisionRequest_Validate(t *testing.T) {
	for _, d := range []string{"accept", "Decline", " ACCEPT "} {
		req := PriceDecisionRequest{Decision: d}
		assert.NoError(t, req.Validate(), d)
	}

	req := PriceDecisionRequest{Decision: "later"}
	assert.Contains(t, validationFields(t, req.Validate()), "decision")
}

func TestIndexParam(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.SetParamNames("slice", "passenger")
	c.SetParamValues("1", "-3")

	n, err := indexParam(c, "slice")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = indexParam(c, "passenger")
	assert.Contains(t, validationFields(t, err), "passenger")
}

// =====================================================
// Converter Tests
// =====================================================

func TestToSearchCriteria_OneWayDefaultsCabin(t *testing.T) {
	criteria := ToSearchCriteria(&SearchRequest{
		Origin: "LAX", Destination: "JFK", DepartureDate: "2026-11-20",
		Passengers: PassengerCountsDTO{Adults: 1, Children: 1},
	})

	require.Len(t, criteria.Slices, 1)
	assert.False(t, criteria.IsRoundTrip())
	assert.Equal(t, "economy", criteria.CabinClass)
	assert.Equal(t, 2, criteria.Passengers.Total())
}

func TestToPassengerRecords(t *testing.T) {
	records := ToPassengerRecords([]PassengerDTO{{
		ID:               " pas_1 ",
		Type:             "INFANT_WITHOUT_SEAT",
		GivenName:        "Ada",
		Loyalty:          &LoyaltyDTO{AirlineCode: "BA", AccountNumber: "129"},
		EmergencyContact: &EmergencyContactDTO{Name: "Bob", Phone: "+1 555"},
	}})

	require.Len(t, records, 1)
	r := records[0]
	assert.Equal(t, "pas_1", r.ID)
	assert.Equal(t, domain.PassengerInfantWithoutSeat, r.Type)
	assert.True(t, r.Identity.IsEmpty())
	assert.Equal(t, "BA", r.Loyalty.AirlineCode)
	require.NotNil(t, r.EmergencyContact)
	assert.Equal(t, "Bob", r.EmergencyContact.Name)
}

func TestToPassengerValidationDTO_Valid(t *testing.T) {
	dto := ToPassengerValidationDTO(usecase.ValidationResult{Errors: &domain.ValidationErrors{}})

	assert.True(t, dto.Valid)
	assert.Nil(t, dto.Errors)
	assert.Nil(t, dto.Warnings)
}
