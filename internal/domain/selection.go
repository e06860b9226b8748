package domain

import "github.com/shopspring/decimal"

// ServiceType is the kind of paid ancillary.
type ServiceType string

// Service types.
const (
	ServiceSeat    ServiceType = "seat"
	ServiceBaggage ServiceType = "baggage"
)

// SelectedSeat is a seat held by one passenger on one slice.
type SelectedSeat struct {
	Designator string          `json:"seatDesignator"`
	ServiceID  string          `json:"serviceId"`
	Amount     decimal.Decimal `json:"price"`
	Currency   string          `json:"currency"`
}

// SeatAssignments maps slice index -> passenger index -> seat.
// Integer keys round-trip through JSON as decimal strings.
type SeatAssignments map[int]map[int]SelectedSeat

// HolderOf returns the passenger index holding designator on the slice.
func (s SeatAssignments) HolderOf(sliceIndex int, designator string) (int, bool) {
	for passengerIndex, seat := range s[sliceIndex] {
		if seat.Designator == designator {
			return passengerIndex, true
		}
	}
	return 0, false
}

// Count returns the number of assigned seats across all slices.
func (s SeatAssignments) Count() int {
	n := 0
	for _, bySlice := range s {
		n += len(bySlice)
	}
	return n
}

// Clone returns a deep copy.
func (s SeatAssignments) Clone() SeatAssignments {
	out := make(SeatAssignments, len(s))
	for sliceIndex, bySlice := range s {
		inner := make(map[int]SelectedSeat, len(bySlice))
		for passengerIndex, seat := range bySlice {
			inner[passengerIndex] = seat
		}
		out[sliceIndex] = inner
	}
	return out
}

// SelectedBaggageItem is the extra bag chosen for a passenger.
// It applies to every slice of the trip.
type SelectedBaggageItem struct {
	ServiceID   string          `json:"id"`
	Amount      decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
	PassengerID string          `json:"passengerId"`
}

// BaggageSelections maps provider passenger id -> bag. At most one bag per passenger.
type BaggageSelections map[string]SelectedBaggageItem

// Clone returns a copy.
func (b BaggageSelections) Clone() BaggageSelections {
	out := make(BaggageSelections, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Service is a normalized paid ancillary line sent to the payment gateway.
type Service struct {
	ID       string          `json:"id"`
	Type     ServiceType     `json:"type"`
	Amount   decimal.Decimal `json:"amount"`
	Quantity int             `json:"quantity"`
}

// Subtotal returns Amount × Quantity.
func (s Service) Subtotal() decimal.Decimal {
	return s.Amount.Mul(decimal.NewFromInt(int64(s.Quantity)))
}

// SeatMap is the seat layout for every slice of an offer.
type SeatMap struct {
	OfferID string         `json:"offerId"`
	Slices  []SliceSeatMap `json:"slices"`
}

// SliceSeatMap holds the seats offered on one slice.
type SliceSeatMap struct {
	SliceIndex int        `json:"sliceIndex"`
	SegmentID  string     `json:"segmentId"`
	Seats      []SeatInfo `json:"seats"`
}

// SeatInfo is one seat with the per-passenger services that book it.
type SeatInfo struct {
	Designator string        `json:"designator"`
	Available  bool          `json:"available"`
	Services   []SeatService `json:"services"`
}

// SeatService prices a seat for a specific passenger.
type SeatService struct {
	ID          string          `json:"id"`
	PassengerID string          `json:"passengerId"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
}

// FindSeat returns the seat on the slice with the given designator.
func (m *SeatMap) FindSeat(sliceIndex int, designator string) (*SeatInfo, bool) {
	for i := range m.Slices {
		if m.Slices[i].SliceIndex != sliceIndex {
			continue
		}
		for j := range m.Slices[i].Seats {
			if m.Slices[i].Seats[j].Designator == designator {
				return &m.Slices[i].Seats[j], true
			}
		}
	}
	return nil, false
}

// ServiceFor returns the service booking the seat for the passenger id.
func (s *SeatInfo) ServiceFor(passengerID string) (SeatService, bool) {
	for _, svc := range s.Services {
		if svc.PassengerID == passengerID {
			return svc, true
		}
	}
	return SeatService{}, false
}

// AncillaryCatalog lists baggage services available for an offer.
type AncillaryCatalog struct {
	Baggage         []BaggageService  `json:"baggage"`
	IncludedBaggage []IncludedBaggage `json:"includedBaggage"`
}

// BaggageService is a purchasable bag for one passenger.
type BaggageService struct {
	ID          string          `json:"id"`
	PassengerID string          `json:"passengerId"`
	SegmentIDs  []string        `json:"segmentIds"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	MaxQuantity int             `json:"maxQuantity"`
}

// IncludedBaggage is the fare's free allowance for a passenger on a segment.
type IncludedBaggage struct {
	PassengerID string `json:"passengerId"`
	SegmentID   string `json:"segmentId"`
	Type        string `json:"type"`
	Quantity    int    `json:"quantity"`
}

// FindBaggage returns the baggage service with the id.
func (c *AncillaryCatalog) FindBaggage(serviceID string) (BaggageService, bool) {
	for _, b := range c.Baggage {
		if b.ID == serviceID {
			return b, true
		}
	}
	return BaggageService{}, false
}
