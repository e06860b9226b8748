package stripe

// checkoutForm is the form body of POST /v1/checkout/sessions, encoded with go-querystring.
// Line items are appended separately because Stripe expects indexed brackets.
type checkoutForm struct {
	Mode              string           `url:"mode"`
	SuccessURL        string           `url:"success_url"`
	CancelURL         string           `url:"cancel_url"`
	ClientReferenceID string           `url:"client_reference_id"`
	Metadata          checkoutMetadata `url:"metadata"`
}

type checkoutMetadata struct {
	OfferID        string `url:"offer_id"`
	PassengerCount int    `url:"passenger_count"`
	ServiceIDs     string `url:"service_ids,omitempty"`
	TotalAmount    string `url:"total_amount"`
}

type lineItem struct {
	Quantity  int       `url:"quantity"`
	PriceData priceData `url:"price_data"`
}

type priceData struct {
	Currency    string      `url:"currency"`
	UnitAmount  int64       `url:"unit_amount"`
	ProductData productData `url:"product_data"`
}

type productData struct {
	Name string `url:"name"`
}

type checkoutSessionResponse struct {
	ID            string `json:"id"`
	URL           string `json:"url"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
}

type errorResponse struct {
	Error apiError `json:"error"`
}

type apiError struct {
	Type        string `json:"type"`
	Code        string `json:"code"`
	DeclineCode string `json:"decline_code"`
	Message     string `json:"message"`
}

// event is a Stripe webhook delivery.
type event struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object checkoutSessionObject `json:"object"`
	} `json:"data"`
}

type checkoutSessionObject struct {
	ID            string            `json:"id"`
	PaymentStatus string            `json:"payment_status"`
	Metadata      map[string]string `json:"metadata"`
}
