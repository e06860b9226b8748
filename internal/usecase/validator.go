package usecase

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/travel-booking/flight-booking/internal/domain"
	"github.com/travel-booking/flight-booking/internal/infrastructure/timeutil"
)

// Passenger age and document rules.
const (
	AdultMinAge              = 18
	InfantMaxAge             = 2
	MinPhoneDigits           = 10
	PassportWarningMonths    = 6
	passportFieldsIncomplete = "complete all passport fields"
)

var (
	emailRegex   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex   = regexp.MustCompile(`^\+[1-9]\d+$`)
	countryRegex = regexp.MustCompile(`^[A-Za-z]{2}$`)
	airlineRegex = regexp.MustCompile(`^[A-Za-z0-9]{2}$`)
)

var validTitles = map[string]bool{
	"mr":   true,
	"ms":   true,
	"mrs":  true,
	"miss": true,
	"dr":   true,
}

// ValidationResult is the outcome of passenger validation.
// Errors block advancement; warnings are shown but never block.
type ValidationResult struct {
	Errors   *domain.ValidationErrors `json:"errors"`
	Warnings []domain.ValidationError `json:"warnings"`
}

// Valid reports whether there are no errors.
func (r ValidationResult) Valid() bool {
	return !r.Errors.HasErrors()
}

// Err returns the errors as an error value, or nil when valid.
func (r ValidationResult) Err() error {
	if r.Valid() {
		return nil
	}
	return r.Errors
}

// ErrorMap returns the errors as a flat field -> message map.
func (r ValidationResult) ErrorMap() map[string]string {
	return r.Errors.ToMap()
}

// PassengerValidator checks passenger form state against the offer being booked.
type PassengerValidator struct {
	clock timeutil.Clock
}

// NewPassengerValidator creates a validator. A nil clock uses real time.
func NewPassengerValidator(clock timeutil.Clock) *PassengerValidator {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &PassengerValidator{clock: clock}
}

// Validate checks every passenger the offer prices. Records are matched by provider
// passenger id and errors are keyed by the passenger's position in the offer.
// Without an offer the records are checked in the given order as a domestic trip.
func (v *PassengerValidator) Validate(records []domain.PassengerRecord, offer *domain.Offer) ValidationResult {
	res := ValidationResult{Errors: &domain.ValidationErrors{}}
	today := timeutil.DateOf(v.clock.Now())

	if offer == nil {
		for i, p := range records {
			v.validatePassenger(&res, i, p, false, today)
		}
		return res
	}

	byID := make(map[string]domain.PassengerRecord, len(records))
	for _, p := range records {
		byID[p.ID] = p
	}

	for i, op := range offer.Passengers {
		p, ok := byID[op.ID]
		if !ok {
			res.Errors.Add(fmt.Sprintf("passengers[%d]", i), "passenger details are required")
			continue
		}
		p.Type = op.Type
		v.validatePassenger(&res, i, p, offer.PassportRequired, today)
	}
	return res
}

func (v *PassengerValidator) validatePassenger(res *ValidationResult, i int, p domain.PassengerRecord, passportRequired bool, today time.Time) {
	field := func(name string) string {
		return fmt.Sprintf("passengers[%d].%s", i, name)
	}

	title := strings.ToLower(strings.TrimSpace(p.Title))
	switch {
	case title == "":
		res.Errors.Add(field("title"), "title is required")
	case !validTitles[title]:
		res.Errors.Add(field("title"), "title must be one of mr, ms, mrs, miss, dr")
	}

	if strings.TrimSpace(p.GivenName) == "" {
		res.Errors.Add(field("givenName"), "given name is required")
	}
	if strings.TrimSpace(p.FamilyName) == "" {
		res.Errors.Add(field("familyName"), "family name is required")
	}

	gender := strings.ToLower(strings.TrimSpace(p.Gender))
	switch {
	case gender == "":
		res.Errors.Add(field("gender"), "gender is required")
	case gender != "m" && gender != "f":
		res.Errors.Add(field("gender"), "gender must be m or f")
	}

	v.validateBornOn(res, field("bornOn"), p, today)

	if i == 0 {
		validateContact(res, field, p)
	}

	validateIdentity(res, field, p.Identity, passportRequired, today)

	switch {
	case p.Loyalty.IsEmpty():
	case strings.TrimSpace(p.Loyalty.AirlineCode) == "":
		res.Errors.Add(field("loyalty.airlineCode"), "airline code is required with a membership number")
	case strings.TrimSpace(p.Loyalty.AccountNumber) == "":
		res.Errors.Add(field("loyalty.accountNumber"), "membership number is required with an airline code")
	case !airlineRegex.MatchString(strings.TrimSpace(p.Loyalty.AirlineCode)):
		res.Errors.Add(field("loyalty.airlineCode"), "airline code must be a 2-character IATA code")
	}
}

func (v *PassengerValidator) validateBornOn(res *ValidationResult, key string, p domain.PassengerRecord, today time.Time) {
	raw := strings.TrimSpace(p.BornOn)
	if raw == "" {
		res.Errors.Add(key, "date of birth is required")
		return
	}

	bornOn, err := timeutil.ParseDate(raw)
	if err != nil {
		res.Errors.Add(key, "date of birth must be in YYYY-MM-DD format")
		return
	}
	if !bornOn.Before(today) {
		res.Errors.Add(key, "date of birth must be in the past")
		return
	}

	switch {
	case p.Type == domain.PassengerAdult && !timeutil.IsAtLeastYearsOld(bornOn, today, AdultMinAge):
		res.Errors.Add(key, fmt.Sprintf("adult passengers must be at least %d years old", AdultMinAge))
	case p.Type.IsInfant() && timeutil.IsAtLeastYearsOld(bornOn, today, InfantMaxAge):
		res.Errors.Add(key, fmt.Sprintf("infant passengers must be under %d years old", InfantMaxAge))
	}
}

func validateContact(res *ValidationResult, field func(string) string, p domain.PassengerRecord) {
	email := strings.TrimSpace(p.Email)
	switch {
	case email == "":
		res.Errors.Add(field("email"), "email is required for the primary passenger")
	case !emailRegex.MatchString(email):
		res.Errors.Add(field("email"), "email is not valid")
	}

	phone := domain.NormalizePhone(p.Phone)
	switch {
	case phone == "":
		res.Errors.Add(field("phone"), "phone is required for the primary passenger")
	case !phoneRegex.MatchString(phone):
		res.Errors.Add(field("phone"), "phone must start with + and the country code")
	case len(phone)-1 < MinPhoneDigits:
		res.Errors.Add(field("phone"), fmt.Sprintf("phone must have at least %d digits", MinPhoneDigits))
	}
}

func validateIdentity(res *ValidationResult, field func(string) string, doc domain.IdentityDocument, required bool, today time.Time) {
	if !required && doc.IsEmpty() {
		return
	}

	missing := func(value, key, requiredMsg string) bool {
		if strings.TrimSpace(value) != "" {
			return false
		}
		if required {
			res.Errors.Add(field(key), requiredMsg)
		} else {
			res.Errors.Add(field(key), passportFieldsIncomplete)
		}
		return true
	}

	missing(doc.Number, "identity.number", "passport number is required for international travel")

	if !missing(doc.IssuingCountry, "identity.issuingCountry", "issuing country is required for international travel") &&
		!countryRegex.MatchString(strings.TrimSpace(doc.IssuingCountry)) {
		res.Errors.Add(field("identity.issuingCountry"), "issuing country must be a 2-letter country code")
	}

	if missing(doc.ExpiresOn, "identity.expiresOn", "passport expiry is required for international travel") {
		return
	}

	expiresOn, err := timeutil.ParseDate(strings.TrimSpace(doc.ExpiresOn))
	switch {
	case err != nil:
		res.Errors.Add(field("identity.expiresOn"), "passport expiry must be in YYYY-MM-DD format")
	case !expiresOn.After(today):
		res.Errors.Add(field("identity.expiresOn"), "passport has expired")
	case expiresOn.Before(timeutil.MonthsFrom(today, PassportWarningMonths)):
		res.Warnings = append(res.Warnings, domain.ValidationError{
			Field:   field("identity.expiresOn"),
			Message: fmt.Sprintf("passport expires within %d months; some destinations may refuse entry", PassportWarningMonths),
		})
	}
}
