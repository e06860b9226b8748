package session

import "github.com/travel-booking/flight-booking/internal/domain"

// Slice indexes of the offer cache.
const (
	SliceOutbound = 0
	SliceReturn   = 1
)

// OfferCache holds the chosen offer for each itinerary slice.
// The outbound offer is the primary offer: its total is the bundled itinerary price.
type OfferCache struct {
	Outbound *domain.Offer `json:"outbound"`
	Return   *domain.Offer `json:"return"`
}

// Get returns the offer chosen for the slice, or nil.
func (c *OfferCache) Get(sliceIndex int) *domain.Offer {
	switch sliceIndex {
	case SliceOutbound:
		return c.Outbound
	case SliceReturn:
		return c.Return
	default:
		return nil
	}
}

// Set stores offer for the slice, replacing any previous choice.
// It reports whether the stored offer id changed.
func (c *OfferCache) Set(sliceIndex int, offer *domain.Offer) (bool, error) {
	if offer == nil {
		return false, domain.WrapInvalidRequest("offer is required")
	}

	var slot **domain.Offer
	switch sliceIndex {
	case SliceOutbound:
		slot = &c.Outbound
	case SliceReturn:
		slot = &c.Return
	default:
		return false, domain.WrapInvalidRequest("slice index %d out of range", sliceIndex)
	}

	changed := *slot == nil || (*slot).ID != offer.ID
	o := *offer
	*slot = &o
	return changed, nil
}

// Primary returns the offer whose total is the bundled itinerary price.
func (c *OfferCache) Primary() *domain.Offer {
	return c.Outbound
}

// Complete reports whether every one of sliceCount slices has a chosen offer.
func (c *OfferCache) Complete(sliceCount int) bool {
	for i := 0; i < sliceCount; i++ {
		if c.Get(i) == nil {
			return false
		}
	}
	return sliceCount > 0
}

// Clear drops every cached offer.
func (c *OfferCache) Clear() {
	c.Outbound = nil
	c.Return = nil
}
