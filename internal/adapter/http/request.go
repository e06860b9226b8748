// Package http provides the HTTP handler layer for the booking API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/travel-booking/flight-booking/internal/domain"
)

// SearchRequest is the request body for an offer search.
// A returnDate turns the search into a round trip.
type SearchRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "LHR")
	Origin string `json:"origin" example:"LHR"`

	// Destination is the IATA code of the arrival airport (e.g., "JFK")
	Destination string `json:"destination" example:"JFK"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate" example:"2026-11-20"`

	// ReturnDate is the optional inbound date in YYYY-MM-DD format
	ReturnDate string `json:"returnDate,omitempty" example:"2026-11-27"`

	Passengers PassengerCountsDTO `json:"passengers"`

	// CabinClass is economy, premium_economy, business or first (default economy)
	CabinClass string `json:"cabinClass,omitempty" example:"economy"`
}

// PassengerCountsDTO holds the number of travelers per type.
type PassengerCountsDTO struct {
	Adults             int `json:"adults" example:"1"`
	Children           int `json:"children" example:"0"`
	InfantsWithSeat    int `json:"infantsWithSeat" example:"0"`
	InfantsWithoutSeat int `json:"infantsWithoutSeat" example:"0"`
}

// SelectOfferRequest picks an offer from the search results for a slice.
type SelectOfferRequest struct {
	OfferID string `json:"offerId" example:"off_0000AEdGRhtp5AUUdJqMxo"`
}

// SelectSeatRequest assigns a seat to a passenger on a slice.
type SelectSeatRequest struct {
	SliceIndex     *int   `json:"sliceIndex" example:"0"`
	PassengerIndex *int   `json:"passengerIndex" example:"0"`
	SeatDesignator string `json:"seatDesignator" example:"14C"`
}

// SelectBaggageRequest picks one extra bag for a passenger.
type SelectBaggageRequest struct {
	PassengerID string `json:"passengerId" example:"pas_0000AEdGRhtp5AUUdJqMxp"`
	ServiceID   string `json:"serviceId" example:"ase_0000AEdGRhtp5AUUdJqMxq"`
}

// SavePassengersRequest carries the full passenger form state.
type SavePassengersRequest struct {
	Passengers []PassengerDTO `json:"passengers"`
}

// PassengerDTO is one passenger's form state.
type PassengerDTO struct {
	ID               string               `json:"id" example:"pas_0000AEdGRhtp5AUUdJqMxp"`
	Type             string               `json:"type" example:"adult"`
	Title            string               `json:"title" example:"mr"`
	GivenName        string               `json:"givenName" example:"Tony"`
	FamilyName       string               `json:"familyName" example:"Stark"`
	Gender           string               `json:"gender" example:"m"`
	BornOn           string               `json:"bornOn" example:"1980-07-24"`
	Email            string               `json:"email,omitempty" example:"tony@example.com"`
	Phone            string               `json:"phone,omitempty" example:"+442080160509"`
	Passport         *PassportDTO         `json:"passport,omitempty"`
	Loyalty          *LoyaltyDTO          `json:"loyalty,omitempty"`
	EmergencyContact *EmergencyContactDTO `json:"emergencyContact,omitempty"`
	Notes            string               `json:"notes,omitempty"`
}

// PassportDTO is an identity document.
type PassportDTO struct {
	Number         string `json:"number" example:"P1234567"`
	IssuingCountry string `json:"issuingCountry" example:"GB"`
	ExpiresOn      string `json:"expiresOn" example:"2030-01-01"`
}

// LoyaltyDTO is a frequent-flyer account.
type LoyaltyDTO struct {
	AirlineCode   string `json:"airlineCode" example:"BA"`
	AccountNumber string `json:"accountNumber" example:"12901014"`
}

// EmergencyContactDTO is local-only contact data.
type EmergencyContactDTO struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship,omitempty"`
}

// PriceDecisionRequest answers a price change.
type PriceDecisionRequest struct {
	// Decision is accept or decline
	Decision string `json:"decision" example:"accept"`
}

var seatDesignatorPattern = regexp.MustCompile(`^[0-9]{1,3}[A-Z]$`)

// Validate checks the request shape. Date and route rules are applied when the search runs.
func (r *SearchRequest) Validate() error {
	errs := &domain.ValidationErrors{}

	r.Origin = strings.ToUpper(strings.TrimSpace(r.Origin))
	r.Destination = strings.ToUpper(strings.TrimSpace(r.Destination))
	r.CabinClass = strings.ToLower(strings.TrimSpace(r.CabinClass))

	if r.Origin == "" {
		errs.Add("origin", "origin is required")
	}
	if r.Destination == "" {
		errs.Add("destination", "destination is required")
	}
	if strings.TrimSpace(r.DepartureDate) == "" {
		errs.Add("departureDate", "departureDate is required")
	}
	if r.Passengers.Adults < 0 || r.Passengers.Children < 0 ||
		r.Passengers.InfantsWithSeat < 0 || r.Passengers.InfantsWithoutSeat < 0 {
		errs.Add("passengers", "passenger counts cannot be negative")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate checks that an offer id is present.
func (r *SelectOfferRequest) Validate() error {
	if strings.TrimSpace(r.OfferID) == "" {
		return fieldError("offerId", "offerId is required")
	}
	return nil
}

// Validate checks indices and the seat designator format.
func (r *SelectSeatRequest) Validate() error {
	errs := &domain.ValidationErrors{}

	switch {
	case r.SliceIndex == nil:
		errs.Add("sliceIndex", "sliceIndex is required")
	case *r.SliceIndex < 0:
		errs.Add("sliceIndex", "sliceIndex cannot be negative")
	}
	switch {
	case r.PassengerIndex == nil:
		errs.Add("passengerIndex", "passengerIndex is required")
	case *r.PassengerIndex < 0:
		errs.Add("passengerIndex", "passengerIndex cannot be negative")
	}

	r.SeatDesignator = strings.ToUpper(strings.TrimSpace(r.SeatDesignator))
	if !seatDesignatorPattern.MatchString(r.SeatDesignator) {
		errs.Add("seatDesignator", "seatDesignator must be a row number followed by a seat letter (e.g., 14C)")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate checks that both ids are present.
func (r *SelectBaggageRequest) Validate() error {
	errs := &domain.ValidationErrors{}
	if strings.TrimSpace(r.PassengerID) == "" {
		errs.Add("passengerId", "passengerId is required")
	}
	if strings.TrimSpace(r.ServiceID) == "" {
		errs.Add("serviceId", "serviceId is required")
	}
	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate checks that the form carries at least one passenger with a provider id.
// Field-level rules are reported by the passenger validator, not here.
func (r *SavePassengersRequest) Validate() error {
	errs := &domain.ValidationErrors{}
	if len(r.Passengers) == 0 {
		errs.Add("passengers", "at least one passenger is required")
	}
	for i, p := range r.Passengers {
		if strings.TrimSpace(p.ID) == "" {
			errs.Add(fmt.Sprintf("passengers[%d].id", i), "passenger id is required")
		}
	}
	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate checks the decision value.
func (r *PriceDecisionRequest) Validate() error {
	r.Decision = strings.ToLower(strings.TrimSpace(r.Decision))
	switch domain.ReconciliationDecision(r.Decision) {
	case domain.DecisionAccept, domain.DecisionDecline:
		return nil
	}
	return fieldError("decision", "decision must be accept or decline")
}

// indexParam parses a non-negative integer path parameter.
func indexParam(c echo.Context, name string) (int, error) {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil || n < 0 {
		return 0, fieldError(name, name+" must be a non-negative integer")
	}
	return n, nil
}

func fieldError(field, message string) error {
	errs := &domain.ValidationErrors{}
	errs.Add(field, message)
	return errs
}
