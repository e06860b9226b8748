package domain

import "context"

//go:generate mockgen -source=provider.go -destination=mock_provider.go -package=domain

// OffersProvider is the third-party flight inventory and pricing source.
// Implementations classify failures into the domain error taxonomy before returning.
type OffersProvider interface {
	// Name returns the provider identifier used in logs and errors.
	Name() string

	// SearchOffers returns priced offers for the criteria.
	SearchOffers(ctx context.Context, criteria SearchCriteria) ([]Offer, error)

	// GetOffer re-fetches an offer by id.
	// It returns ErrOfferNotFound or ErrOfferExpired when the offer can no longer be booked.
	GetOffer(ctx context.Context, offerID string) (*Offer, error)

	// GetSeatMap returns per-slice seat layouts with per-passenger seat services.
	GetSeatMap(ctx context.Context, offerID string) (*SeatMap, error)

	// GetAncillaryServices returns purchasable and included baggage.
	GetAncillaryServices(ctx context.Context, offerID string) (*AncillaryCatalog, error)
}

// PaymentGateway creates hosted checkout sessions.
type PaymentGateway interface {
	// CreateCheckoutSession registers the submission and returns a redirect target.
	CreateCheckoutSession(ctx context.Context, submission BookingSubmission) (*CheckoutSession, error)
}

// BookingLookup reads the booking row a payment webhook creates asynchronously.
type BookingLookup interface {
	// LookupBookingBySessionID returns the record for the payment session.
	// A missing row is reported as a pending record, not an error.
	LookupBookingBySessionID(ctx context.Context, sessionID string) (*BookingRecord, error)
}
