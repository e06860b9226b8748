// Package mock provides configurable test doubles for the booking pipeline.
// Unlike the generated gomock doubles in internal/domain, these keep state
// across calls so a whole booking can run end to end against them.
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/travel-booking/flight-booking/internal/domain"
)

// Provider is an in-memory domain.OffersProvider.
// Offers returned by SearchOffers are also served by GetOffer, at the
// repriced amount when one is set.
type Provider struct {
	mu sync.Mutex

	name    string
	offers  []domain.Offer
	reprice map[string]decimal.Decimal
	gone    map[string]error
	seatMap *domain.SeatMap
	catalog *domain.AncillaryCatalog
	err     error
	delay   time.Duration
	calls   map[string]int
}

// NewProvider creates an empty provider.
func NewProvider(name string) *Provider {
	return &Provider{
		name:    name,
		reprice: make(map[string]decimal.Decimal),
		gone:    make(map[string]error),
		calls:   make(map[string]int),
	}
}

// WithOffers sets the search results.
func (p *Provider) WithOffers(offers ...domain.Offer) *Provider {
	p.offers = offers
	return p
}

// WithSeatMap sets the seat map served for every offer.
func (p *Provider) WithSeatMap(m *domain.SeatMap) *Provider {
	p.seatMap = m
	return p
}

// WithCatalog sets the baggage catalog served for every offer.
func (p *Provider) WithCatalog(c *domain.AncillaryCatalog) *Provider {
	p.catalog = c
	return p
}

// WithError makes every call fail with err.
func (p *Provider) WithError(err error) *Provider {
	p.err = err
	return p
}

// WithDelay makes every call wait d or until the context ends.
func (p *Provider) WithDelay(d time.Duration) *Provider {
	p.delay = d
	return p
}

// Reprice changes the amount GetOffer returns for offerID.
func (p *Provider) Reprice(offerID, total string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reprice[offerID] = decimal.RequireFromString(total)
}

// Expire makes GetOffer report offerID as expired.
func (p *Provider) Expire(offerID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gone[offerID] = domain.ErrOfferExpired
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return p.name
}

// SearchOffers returns copies of the configured offers.
func (p *Provider) SearchOffers(ctx context.Context, _ domain.SearchCriteria) ([]domain.Offer, error) {
	if err := p.enter(ctx, "SearchOffers"); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.Offer, len(p.offers))
	copy(out, p.offers)
	return out, nil
}

// GetOffer re-fetches a configured offer.
func (p *Provider) GetOffer(ctx context.Context, offerID string) (*domain.Offer, error) {
	if err := p.enter(ctx, "GetOffer"); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if err, ok := p.gone[offerID]; ok {
		return nil, fmt.Errorf("offer %s: %w", offerID, err)
	}
	for _, o := range p.offers {
		if o.ID != offerID {
			continue
		}
		if total, ok := p.reprice[offerID]; ok {
			o.TotalAmount = total
		}
		return &o, nil
	}
	return nil, fmt.Errorf("offer %s: %w", offerID, domain.ErrOfferNotFound)
}

// GetSeatMap returns the configured seat map.
func (p *Provider) GetSeatMap(ctx context.Context, offerID string) (*domain.SeatMap, error) {
	if err := p.enter(ctx, "GetSeatMap"); err != nil {
		return nil, err
	}
	if p.seatMap == nil {
		return &domain.SeatMap{OfferID: offerID}, nil
	}
	m := *p.seatMap
	m.OfferID = offerID
	return &m, nil
}

// GetAncillaryServices returns the configured catalog.
func (p *Provider) GetAncillaryServices(ctx context.Context, _ string) (*domain.AncillaryCatalog, error) {
	if err := p.enter(ctx, "GetAncillaryServices"); err != nil {
		return nil, err
	}
	if p.catalog == nil {
		return &domain.AncillaryCatalog{}, nil
	}
	c := *p.catalog
	return &c, nil
}

// CallCount returns how often method was called.
func (p *Provider) CallCount(method string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[method]
}

func (p *Provider) enter(ctx context.Context, method string) error {
	p.mu.Lock()
	p.calls[method]++
	delay, err := p.delay, p.err
	p.mu.Unlock()

	if delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

var _ domain.OffersProvider = (*Provider)(nil)
