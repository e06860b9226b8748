// Package domain contains the core booking entities and rules.
// These entities are provider-agnostic; adapters map wire shapes to them exactly once at the edge.
package domain

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// PassengerType is the provider passenger category.
type PassengerType string

// Passenger types.
const (
	PassengerAdult             PassengerType = "adult"
	PassengerChild             PassengerType = "child"
	PassengerInfantWithSeat    PassengerType = "infant_with_seat"
	PassengerInfantWithoutSeat PassengerType = "infant_without_seat"
)

// IsInfant reports whether the passenger type is an infant category.
func (p PassengerType) IsInfant() bool {
	return p == PassengerInfantWithSeat || p == PassengerInfantWithoutSeat
}

// Offer is an immutable-at-fetch-time quote from the offers provider.
// Offers are never mutated, only replaced wholesale.
type Offer struct {
	// ID is the opaque provider offer token
	ID string `json:"id"`

	// Slices are the directional legs covered by the offer
	Slices []Slice `json:"slices"`

	// TotalAmount is the authoritative bundled price in Currency
	TotalAmount decimal.Decimal `json:"totalAmount"`

	// Currency is the ISO 4217 currency code
	Currency string `json:"currency"`

	// BaseAmount and TaxAmount are the itemized amounts when the provider supplies them
	BaseAmount *decimal.Decimal `json:"baseAmount,omitempty"`
	TaxAmount  *decimal.Decimal `json:"taxAmount,omitempty"`

	// ExpiresAt is the instant after which the offer can no longer be booked
	ExpiresAt time.Time `json:"expiresAt"`

	// Passengers are the provider-assigned passengers the offer prices
	Passengers []OfferPassenger `json:"passengers"`

	// PassportRequired is true when the route is international
	PassportRequired bool `json:"passportRequired"`

	// Owner is the operating airline of the offer
	Owner AirlineInfo `json:"owner"`
}

// OfferPassenger is a provider-assigned passenger id and type.
type OfferPassenger struct {
	ID   string        `json:"id"`
	Type PassengerType `json:"type"`
}

// Slice is one directional leg of a journey.
type Slice struct {
	ID          string       `json:"id"`
	Origin      string       `json:"origin"`
	Destination string       `json:"destination"`
	DepartingAt time.Time    `json:"departingAt"`
	Duration    DurationInfo `json:"duration"`
	Segments    []Segment    `json:"segments"`
}

// Segment is a single flight within a slice.
type Segment struct {
	ID           string      `json:"id"`
	FlightNumber string      `json:"flightNumber"`
	Airline      AirlineInfo `json:"airline"`
	Origin       string      `json:"origin"`
	Destination  string      `json:"destination"`
	DepartingAt  time.Time   `json:"departingAt"`
	ArrivingAt   time.Time   `json:"arrivingAt"`
}

// AirlineInfo contains information about an airline.
type AirlineInfo struct {
	// Code is the IATA airline code (e.g., "AA")
	Code string `json:"code"`

	// Name is the full airline name
	Name string `json:"name"`
}

// DurationInfo contains a duration and its display form.
type DurationInfo struct {
	// TotalMinutes is the total duration in minutes
	TotalMinutes int `json:"totalMinutes"`

	// Formatted is a human-readable duration string (e.g., "5h 30m")
	Formatted string `json:"formatted"`
}

// IsExpired reports whether the offer is past its expiry at now.
// An offer without an expiry never expires locally.
func (o *Offer) IsExpired(now time.Time) bool {
	if o.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(o.ExpiresAt)
}

// PassengerIndex returns the position of the passenger id in the offer, or -1.
func (o *Offer) PassengerIndex(passengerID string) int {
	for i, p := range o.Passengers {
		if p.ID == passengerID {
			return i
		}
	}
	return -1
}

// SegmentCount returns the total number of segments across slices.
func (o *Offer) SegmentCount() int {
	n := 0
	for _, s := range o.Slices {
		n += len(s.Segments)
	}
	return n
}

// FareBreakdown is a display-only split of an offer total.
type FareBreakdown struct {
	Base      decimal.Decimal `json:"base"`
	Taxes     decimal.Decimal `json:"taxes"`
	Estimated bool            `json:"estimated"`
}

// estimatedBaseShare is the base-fare share used when the provider omits itemized amounts.
var estimatedBaseShare = decimal.NewFromFloat(0.7)

// FareBreakdown returns the itemized base and taxes, estimating a 70/30 split
// when the provider omitted them. It never feeds any total.
func (o *Offer) FareBreakdown() FareBreakdown {
	if o.BaseAmount != nil && o.TaxAmount != nil {
		return FareBreakdown{Base: *o.BaseAmount, Taxes: *o.TaxAmount}
	}
	base := o.TotalAmount.Mul(estimatedBaseShare).Round(2)
	return FareBreakdown{
		Base:      base,
		Taxes:     o.TotalAmount.Sub(base),
		Estimated: true,
	}
}

// NewDurationInfo creates a DurationInfo from total minutes and formats it.
func NewDurationInfo(totalMinutes int) DurationInfo {
	hours := totalMinutes / 60
	mins := totalMinutes % 60

	var formatted string
	switch {
	case hours > 0 && mins > 0:
		formatted = strconv.Itoa(hours) + "h " + strconv.Itoa(mins) + "m"
	case hours > 0:
		formatted = strconv.Itoa(hours) + "h"
	default:
		formatted = strconv.Itoa(mins) + "m"
	}

	return DurationInfo{
		TotalMinutes: totalMinutes,
		Formatted:    formatted,
	}
}
