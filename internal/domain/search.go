package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// SearchCriteria defines the parameters for an offer search.
type SearchCriteria struct {
	// Slices are the requested legs: one for one-way, two for a return trip
	Slices []SliceRequest `json:"slices"`

	// Passengers holds the passenger counts per type
	Passengers PassengerCounts `json:"passengers"`

	// CabinClass is economy, premium_economy, business or first (default: economy)
	CabinClass string `json:"cabinClass,omitempty"`
}

// SliceRequest is one requested leg.
type SliceRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "LAX")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "JFK")
	Destination string `json:"destination"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`
}

// PassengerCounts holds the number of passengers per type.
type PassengerCounts struct {
	Adults             int `json:"adults"`
	Children           int `json:"children"`
	InfantsWithSeat    int `json:"infantsWithSeat"`
	InfantsWithoutSeat int `json:"infantsWithoutSeat"`
}

// Total returns the total number of passengers.
func (p PassengerCounts) Total() int {
	return p.Adults + p.Children + p.InfantsWithSeat + p.InfantsWithoutSeat
}

// MaxPassengers is the largest party a single search may price.
const MaxPassengers = 9

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// validCabinClasses defines the allowed cabin classes.
var validCabinClasses = map[string]bool{
	"economy":         true,
	"premium_economy": true,
	"business":        true,
	"first":           true,
}

// IsRoundTrip reports whether the search requests an outbound and a return slice.
func (s *SearchCriteria) IsRoundTrip() bool {
	return len(s.Slices) == 2
}

// Validate checks the criteria against today's date.
// All field errors are collected; the result is a *ValidationErrors or nil.
func (s *SearchCriteria) Validate(today time.Time) error {
	errs := &ValidationErrors{}

	if len(s.Slices) == 0 {
		errs.Add("slices", "at least one slice is required")
	}
	if len(s.Slices) > 2 {
		errs.Add("slices", "at most two slices (outbound and return) are supported")
	}

	var previous time.Time
	for i := range s.Slices {
		sl := &s.Slices[i]
		field := fmt.Sprintf("slices[%d]", i)

		sl.Origin = strings.ToUpper(strings.TrimSpace(sl.Origin))
		sl.Destination = strings.ToUpper(strings.TrimSpace(sl.Destination))

		if !airportCodeRegex.MatchString(sl.Origin) {
			errs.Add(field+".origin", "origin must be a valid 3-letter IATA code")
		}
		if !airportCodeRegex.MatchString(sl.Destination) {
			errs.Add(field+".destination", "destination must be a valid 3-letter IATA code")
		}
		if sl.Origin != "" && sl.Origin == sl.Destination {
			errs.Add(field+".destination", "origin and destination must be different")
		}

		if !dateRegex.MatchString(sl.DepartureDate) {
			errs.Add(field+".departureDate", "departureDate must be in YYYY-MM-DD format")
			continue
		}
		date, err := time.Parse("2006-01-02", sl.DepartureDate)
		if err != nil {
			errs.Add(field+".departureDate", "departureDate is not a valid date")
			continue
		}
		todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		if date.Before(todayDate) {
			errs.Add(field+".departureDate", "departureDate cannot be in the past")
		}
		if i > 0 && !previous.IsZero() && date.Before(previous) {
			errs.Add(field+".departureDate", "return date cannot be before the outbound date")
		}
		previous = date
	}

	p := s.Passengers
	if p.Adults < 1 {
		errs.Add("passengers.adults", "at least one adult is required")
	}
	if p.Children < 0 || p.InfantsWithSeat < 0 || p.InfantsWithoutSeat < 0 {
		errs.Add("passengers", "passenger counts cannot be negative")
	}
	if p.Total() > MaxPassengers {
		errs.Add("passengers", fmt.Sprintf("passengers cannot exceed %d", MaxPassengers))
	}
	if p.InfantsWithoutSeat > p.Adults {
		errs.Add("passengers.infantsWithoutSeat", "each lap infant must travel with an adult")
	}

	if s.CabinClass != "" && !validCabinClasses[s.CabinClass] {
		errs.Add("cabinClass", "cabinClass must be one of: economy, premium_economy, business, first")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// SetDefaults applies default values to empty optional fields.
func (s *SearchCriteria) SetDefaults() {
	if s.CabinClass == "" {
		s.CabinClass = "economy"
	}
}
