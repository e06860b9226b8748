package duffel

import "github.com/shopspring/decimal"

// envelope wraps every Duffel response body.
type envelope[T any] struct {
	Data T `json:"data"`
}

// errorResponse is returned with every non-2xx status.
type errorResponse struct {
	Errors []apiError `json:"errors"`
}

type apiError struct {
	Code    string `json:"code"`
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// offerRequestBody is the payload of POST /air/offer_requests.
type offerRequestBody struct {
	Slices     []offerRequestSlice     `json:"slices"`
	Passengers []offerRequestPassenger `json:"passengers"`
	CabinClass string                  `json:"cabin_class,omitempty"`
}

type offerRequestSlice struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
}

type offerRequestPassenger struct {
	Type string `json:"type"`
}

// offerRequestQuery is encoded with go-querystring.
type offerRequestQuery struct {
	ReturnOffers    bool `url:"return_offers"`
	SupplierTimeout int  `url:"supplier_timeout,omitempty"`
}

type offerQuery struct {
	ReturnAvailableServices bool `url:"return_available_services"`
}

type seatMapQuery struct {
	OfferID string `url:"offer_id"`
}

type offerRequestResponse struct {
	ID     string      `json:"id"`
	Offers []wireOffer `json:"offers"`
}

// wireOffer is the Duffel offer shape. Older payloads carry the bundled price
// under price or amount instead of total_amount.
type wireOffer struct {
	ID            string           `json:"id"`
	TotalAmount   *decimal.Decimal `json:"total_amount"`
	Price         *decimal.Decimal `json:"price"`
	Amount        *decimal.Decimal `json:"amount"`
	TotalCurrency string           `json:"total_currency"`
	Currency      string           `json:"currency"`
	BaseAmount    *decimal.Decimal `json:"base_amount"`
	TaxAmount     *decimal.Decimal `json:"tax_amount"`
	ExpiresAt     string           `json:"expires_at"`

	PassengerIdentityDocumentsRequired bool `json:"passenger_identity_documents_required"`

	Owner             wireCarrier     `json:"owner"`
	Passengers        []wirePassenger `json:"passengers"`
	Slices            []wireSlice     `json:"slices"`
	AvailableServices []wireService   `json:"available_services"`
}

type wireCarrier struct {
	IATACode string `json:"iata_code"`
	Name     string `json:"name"`
}

type wirePassenger struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

type wirePlace struct {
	IATACode        string `json:"iata_code"`
	IATACountryCode string `json:"iata_country_code"`
	Name            string `json:"name"`
}

type wireSlice struct {
	ID          string        `json:"id"`
	Origin      wirePlace     `json:"origin"`
	Destination wirePlace     `json:"destination"`
	Duration    string        `json:"duration"`
	Segments    []wireSegment `json:"segments"`
}

type wireSegment struct {
	ID                           string                 `json:"id"`
	Origin                       wirePlace              `json:"origin"`
	Destination                  wirePlace              `json:"destination"`
	DepartingAt                  string                 `json:"departing_at"`
	ArrivingAt                   string                 `json:"arriving_at"`
	MarketingCarrier             wireCarrier            `json:"marketing_carrier"`
	MarketingCarrierFlightNumber string                 `json:"marketing_carrier_flight_number"`
	Passengers                   []wireSegmentPassenger `json:"passengers"`
}

type wireSegmentPassenger struct {
	PassengerID string        `json:"passenger_id"`
	Baggages    []wireBaggage `json:"baggages"`
}

type wireBaggage struct {
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
}

// wireService is an ancillary from available_services or a seat element.
type wireService struct {
	ID              string           `json:"id"`
	Type            string           `json:"type"`
	PassengerID     string           `json:"passenger_id"`
	PassengerIDs    []string         `json:"passenger_ids"`
	SegmentIDs      []string         `json:"segment_ids"`
	TotalAmount     *decimal.Decimal `json:"total_amount"`
	Price           *decimal.Decimal `json:"price"`
	Amount          *decimal.Decimal `json:"amount"`
	TotalCurrency   string           `json:"total_currency"`
	MaximumQuantity int              `json:"maximum_quantity"`
}

type wireSeatMap struct {
	ID        string      `json:"id"`
	SliceID   string      `json:"slice_id"`
	SegmentID string      `json:"segment_id"`
	Cabins    []wireCabin `json:"cabins"`
}

type wireCabin struct {
	CabinClass string    `json:"cabin_class"`
	Rows       []wireRow `json:"rows"`
}

type wireRow struct {
	Sections []wireSection `json:"sections"`
}

type wireSection struct {
	Elements []wireElement `json:"elements"`
}

type wireElement struct {
	Type              string        `json:"type"`
	Designator        string        `json:"designator"`
	AvailableServices []wireService `json:"available_services"`
}
