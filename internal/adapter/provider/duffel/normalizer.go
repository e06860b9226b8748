package duffel

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/travel-booking/flight-booking/internal/domain"
)

// ProviderName is the unique identifier for the Duffel offers provider.
const ProviderName = "duffel"

// Service types reported by Duffel.
const (
	serviceTypeBaggage = "baggage"
	elementTypeSeat    = "seat"
)

// normalizeOffers converts wire offers to domain offers, dropping any offer that
// cannot be normalized. The second return value lists the rejected offer ids.
func normalizeOffers(offers []wireOffer) ([]domain.Offer, []string) {
	result := make([]domain.Offer, 0, len(offers))
	var rejected []string

	for _, o := range offers {
		normalized, err := normalizeOffer(o)
		if err != nil {
			rejected = append(rejected, o.ID)
			continue
		}
		result = append(result, *normalized)
	}

	return result, rejected
}

// normalizeOffer converts a single Duffel offer to a domain Offer.
func normalizeOffer(o wireOffer) (*domain.Offer, error) {
	if o.ID == "" {
		return nil, fmt.Errorf("offer without id")
	}

	total, ok := firstAmount(o.TotalAmount, o.Price, o.Amount)
	if !ok {
		return nil, fmt.Errorf("offer %s has no price", o.ID)
	}

	currency := strings.ToUpper(firstNonEmpty(o.TotalCurrency, o.Currency))
	if currency == "" {
		return nil, fmt.Errorf("offer %s has no currency", o.ID)
	}

	var expiresAt time.Time
	if o.ExpiresAt != "" {
		t, err := parseDateTime(o.ExpiresAt)
		if err != nil {
			return nil, fmt.Errorf("offer %s expires_at: %w", o.ID, err)
		}
		expiresAt = t
	}

	slices := make([]domain.Slice, 0, len(o.Slices))
	for _, s := range o.Slices {
		slice, err := normalizeSlice(s)
		if err != nil {
			return nil, fmt.Errorf("offer %s: %w", o.ID, err)
		}
		slices = append(slices, slice)
	}

	passengers := make([]domain.OfferPassenger, 0, len(o.Passengers))
	for _, p := range o.Passengers {
		passengers = append(passengers, domain.OfferPassenger{
			ID:   p.ID,
			Type: normalizePassengerType(p.Type),
		})
	}

	offer := &domain.Offer{
		ID:               o.ID,
		Slices:           slices,
		TotalAmount:      total,
		Currency:         currency,
		ExpiresAt:        expiresAt,
		Passengers:       passengers,
		PassportRequired: o.PassengerIdentityDocumentsRequired || isInternational(o.Slices),
		Owner: domain.AirlineInfo{
			Code: o.Owner.IATACode,
			Name: o.Owner.Name,
		},
	}

	// Itemized amounts are only trusted as a pair
	if o.BaseAmount != nil && o.TaxAmount != nil {
		base, tax := *o.BaseAmount, *o.TaxAmount
		offer.BaseAmount = &base
		offer.TaxAmount = &tax
	}

	return offer, nil
}

func normalizeSlice(s wireSlice) (domain.Slice, error) {
	segments := make([]domain.Segment, 0, len(s.Segments))
	for _, seg := range s.Segments {
		departing, err := parseDateTime(seg.DepartingAt)
		if err != nil {
			return domain.Slice{}, fmt.Errorf("segment %s departing_at: %w", seg.ID, err)
		}
		arriving, err := parseDateTime(seg.ArrivingAt)
		if err != nil {
			return domain.Slice{}, fmt.Errorf("segment %s arriving_at: %w", seg.ID, err)
		}

		segments = append(segments, domain.Segment{
			ID:           seg.ID,
			FlightNumber: seg.MarketingCarrier.IATACode + seg.MarketingCarrierFlightNumber,
			Airline: domain.AirlineInfo{
				Code: seg.MarketingCarrier.IATACode,
				Name: seg.MarketingCarrier.Name,
			},
			Origin:      seg.Origin.IATACode,
			Destination: seg.Destination.IATACode,
			DepartingAt: departing,
			ArrivingAt:  arriving,
		})
	}

	slice := domain.Slice{
		ID:          s.ID,
		Origin:      s.Origin.IATACode,
		Destination: s.Destination.IATACode,
		Duration:    domain.NewDurationInfo(parseDurationMinutes(s.Duration)),
		Segments:    segments,
	}
	if len(segments) > 0 {
		slice.DepartingAt = segments[0].DepartingAt
	}

	return slice, nil
}

// normalizeCatalog extracts purchasable and included baggage from an offer
// fetched with its available services.
func normalizeCatalog(o wireOffer) *domain.AncillaryCatalog {
	catalog := &domain.AncillaryCatalog{
		Baggage:         []domain.BaggageService{},
		IncludedBaggage: []domain.IncludedBaggage{},
	}

	currency := strings.ToUpper(firstNonEmpty(o.TotalCurrency, o.Currency))
	for _, svc := range o.AvailableServices {
		if svc.Type != serviceTypeBaggage {
			continue
		}
		amount, ok := firstAmount(svc.TotalAmount, svc.Price, svc.Amount)
		if !ok {
			continue
		}

		maxQuantity := svc.MaximumQuantity
		if maxQuantity < 1 {
			maxQuantity = 1
		}

		catalog.Baggage = append(catalog.Baggage, domain.BaggageService{
			ID:          svc.ID,
			PassengerID: servicePassenger(svc),
			SegmentIDs:  svc.SegmentIDs,
			Amount:      amount,
			Currency:    strings.ToUpper(firstNonEmpty(svc.TotalCurrency, currency)),
			MaxQuantity: maxQuantity,
		})
	}

	for _, s := range o.Slices {
		for _, seg := range s.Segments {
			for _, p := range seg.Passengers {
				for _, b := range p.Baggages {
					if b.Quantity <= 0 {
						continue
					}
					catalog.IncludedBaggage = append(catalog.IncludedBaggage, domain.IncludedBaggage{
						PassengerID: p.PassengerID,
						SegmentID:   seg.ID,
						Type:        b.Type,
						Quantity:    b.Quantity,
					})
				}
			}
		}
	}

	return catalog
}

// normalizeSeatMaps merges per-segment seat maps into one layout per slice.
// Slice indexes follow the order in which slices first appear.
func normalizeSeatMaps(offerID string, maps []wireSeatMap) *domain.SeatMap {
	result := &domain.SeatMap{OfferID: offerID, Slices: []domain.SliceSeatMap{}}
	sliceIndex := make(map[string]int)

	for _, m := range maps {
		idx, ok := sliceIndex[m.SliceID]
		if !ok {
			idx = len(result.Slices)
			sliceIndex[m.SliceID] = idx
			result.Slices = append(result.Slices, domain.SliceSeatMap{
				SliceIndex: idx,
				SegmentID:  m.SegmentID,
				Seats:      []domain.SeatInfo{},
			})
		}

		for _, cabin := range m.Cabins {
			for _, row := range cabin.Rows {
				for _, section := range row.Sections {
					for _, el := range section.Elements {
						if el.Type != elementTypeSeat || el.Designator == "" {
							continue
						}
						result.Slices[idx].Seats = append(result.Slices[idx].Seats, normalizeSeat(el))
					}
				}
			}
		}
	}

	return result
}

func normalizeSeat(el wireElement) domain.SeatInfo {
	services := make([]domain.SeatService, 0, len(el.AvailableServices))
	for _, svc := range el.AvailableServices {
		amount, ok := firstAmount(svc.TotalAmount, svc.Price, svc.Amount)
		if !ok {
			continue
		}
		services = append(services, domain.SeatService{
			ID:          svc.ID,
			PassengerID: servicePassenger(svc),
			Amount:      amount,
			Currency:    strings.ToUpper(svc.TotalCurrency),
		})
	}

	return domain.SeatInfo{
		Designator: el.Designator,
		Available:  len(services) > 0,
		Services:   services,
	}
}

// toOfferRequest maps search criteria to the offer request payload.
func toOfferRequest(criteria domain.SearchCriteria) offerRequestBody {
	body := offerRequestBody{
		Slices:     make([]offerRequestSlice, 0, len(criteria.Slices)),
		Passengers: make([]offerRequestPassenger, 0, criteria.Passengers.Total()),
		CabinClass: criteria.CabinClass,
	}

	for _, s := range criteria.Slices {
		body.Slices = append(body.Slices, offerRequestSlice{
			Origin:        s.Origin,
			Destination:   s.Destination,
			DepartureDate: s.DepartureDate,
		})
	}

	add := func(n int, t domain.PassengerType) {
		for i := 0; i < n; i++ {
			body.Passengers = append(body.Passengers, offerRequestPassenger{Type: string(t)})
		}
	}
	add(criteria.Passengers.Adults, domain.PassengerAdult)
	add(criteria.Passengers.Children, domain.PassengerChild)
	add(criteria.Passengers.InfantsWithSeat, domain.PassengerInfantWithSeat)
	add(criteria.Passengers.InfantsWithoutSeat, domain.PassengerInfantWithoutSeat)

	return body
}

func servicePassenger(svc wireService) string {
	if svc.PassengerID != "" {
		return svc.PassengerID
	}
	// A service shared by several passengers is not bound to one of them
	if len(svc.PassengerIDs) == 1 {
		return svc.PassengerIDs[0]
	}
	return ""
}

func firstAmount(candidates ...*decimal.Decimal) (decimal.Decimal, bool) {
	for _, c := range candidates {
		if c != nil {
			return *c, true
		}
	}
	return decimal.Zero, false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// isInternational reports whether any segment crosses a country border.
func isInternational(slices []wireSlice) bool {
	for _, s := range slices {
		if crossesBorder(s.Origin, s.Destination) {
			return true
		}
		for _, seg := range s.Segments {
			if crossesBorder(seg.Origin, seg.Destination) {
				return true
			}
		}
	}
	return false
}

func crossesBorder(from, to wirePlace) bool {
	return from.IATACountryCode != "" && to.IATACountryCode != "" &&
		!strings.EqualFold(from.IATACountryCode, to.IATACountryCode)
}

func normalizePassengerType(t string) domain.PassengerType {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case "child":
		return domain.PassengerChild
	case "infant_with_seat":
		return domain.PassengerInfantWithSeat
	case "infant_without_seat":
		return domain.PassengerInfantWithoutSeat
	default:
		return domain.PassengerAdult
	}
}

// parseDateTime parses an ISO 8601 datetime string to time.Time.
// Supports formats: "2006-01-02T15:04:05Z07:00" and "2006-01-02T15:04:05"
func parseDateTime(dateTime string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, dateTime)
	if err == nil {
		return t, nil
	}

	// Segment times are local to the airport and carry no offset
	t, err = time.Parse("2006-01-02T15:04:05", dateTime)
	if err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unable to parse datetime %q", dateTime)
}

var isoDurationRegex = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?)?$`)

// parseDurationMinutes converts an ISO 8601 duration such as "P1DT2H30M" to minutes.
// Unparseable values yield zero.
func parseDurationMinutes(d string) int {
	m := isoDurationRegex.FindStringSubmatch(strings.TrimSpace(d))
	if m == nil {
		return 0
	}
	days, _ := strconv.Atoi(m[1])
	hours, _ := strconv.Atoi(m[2])
	minutes, _ := strconv.Atoi(m[3])
	return days*24*60 + hours*60 + minutes
}
