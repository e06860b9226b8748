package mock

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/travel-booking/flight-booking/internal/domain"
)

// FixtureNow is the clock reading the fixtures are built around.
var FixtureNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

// SampleOffer returns a one-slice LAX-JFK offer for a single adult pas_1,
// priced in USD and valid for two hours after FixtureNow.
func SampleOffer(id, total string) domain.Offer {
	departing := time.Date(2026, 3, 20, 8, 0, 0, 0, time.UTC)
	return domain.Offer{
		ID:          id,
		TotalAmount: decimal.RequireFromString(total),
		Currency:    "USD",
		ExpiresAt:   FixtureNow.Add(2 * time.Hour),
		Passengers:  []domain.OfferPassenger{{ID: "pas_1", Type: domain.PassengerAdult}},
		Slices: []domain.Slice{{
			ID:          "sli_" + id,
			Origin:      "LAX",
			Destination: "JFK",
			DepartingAt: departing,
			Duration:    domain.NewDurationInfo(330),
			Segments: []domain.Segment{{
				ID:           "seg_" + id,
				FlightNumber: "AA100",
				Airline:      domain.AirlineInfo{Code: "AA", Name: "American Airlines"},
				Origin:       "LAX",
				Destination:  "JFK",
				DepartingAt:  departing,
				ArrivingAt:   departing.Add(330 * time.Minute),
			}},
		}},
		Owner: domain.AirlineInfo{Code: "AA", Name: "American Airlines"},
	}
}

// SampleSeatMap returns two slices with seats 12A and 12B priced for pas_1.
func SampleSeatMap() *domain.SeatMap {
	slice := func(index int) domain.SliceSeatMap {
		seat := func(designator, serviceID, amount string) domain.SeatInfo {
			return domain.SeatInfo{
				Designator: designator,
				Available:  true,
				Services: []domain.SeatService{{
					ID:          serviceID,
					PassengerID: "pas_1",
					Amount:      decimal.RequireFromString(amount),
					Currency:    "USD",
				}},
			}
		}
		prefix := "ase_s" + string(rune('0'+index))
		return domain.SliceSeatMap{
			SliceIndex: index,
			SegmentID:  "seg_" + string(rune('0'+index)),
			Seats: []domain.SeatInfo{
				seat("12A", prefix+"_12a", "15.00"),
				seat("12B", prefix+"_12b", "12.50"),
			},
		}
	}
	return &domain.SeatMap{Slices: []domain.SliceSeatMap{slice(0), slice(1)}}
}

// SampleCatalog returns one 40.27 USD checked bag for pas_1.
func SampleCatalog() *domain.AncillaryCatalog {
	return &domain.AncillaryCatalog{
		Baggage: []domain.BaggageService{{
			ID:          "bag_1",
			PassengerID: "pas_1",
			Amount:      decimal.RequireFromString("40.27"),
			Currency:    "USD",
			MaxQuantity: 1,
		}},
		IncludedBaggage: []domain.IncludedBaggage{{
			PassengerID: "pas_1",
			SegmentID:   "seg_off_1",
			Type:        "carry_on",
			Quantity:    1,
		}},
	}
}
