package http

import (
	"strings"

	"github.com/travel-booking/flight-booking/internal/domain"
	"github.com/travel-booking/flight-booking/internal/session"
	"github.com/travel-booking/flight-booking/internal/usecase"
)

// ToSearchCriteria converts a SearchRequest to domain.SearchCriteria.
// A return date adds the reversed slice.
func ToSearchCriteria(req *SearchRequest) domain.SearchCriteria {
	cabin := req.CabinClass
	if cabin == "" {
		cabin = "economy"
	}

	criteria := domain.SearchCriteria{
		Slices: []domain.SliceRequest{{
			Origin:        req.Origin,
			Destination:   req.Destination,
			DepartureDate: strings.TrimSpace(req.DepartureDate),
		}},
		Passengers: domain.PassengerCounts{
			Adults:             req.Passengers.Adults,
			Children:           req.Passengers.Children,
			InfantsWithSeat:    req.Passengers.InfantsWithSeat,
			InfantsWithoutSeat: req.Passengers.InfantsWithoutSeat,
		},
		CabinClass: cabin,
	}

	if ret := strings.TrimSpace(req.ReturnDate); ret != "" {
		criteria.Slices = append(criteria.Slices, domain.SliceRequest{
			Origin:        req.Destination,
			Destination:   req.Origin,
			DepartureDate: ret,
		})
	}
	return criteria
}

// ToSeatRequest converts a validated SelectSeatRequest.
func ToSeatRequest(req *SelectSeatRequest) usecase.SeatRequest {
	return usecase.SeatRequest{
		SliceIndex:     *req.SliceIndex,
		PassengerIndex: *req.PassengerIndex,
		Designator:     req.SeatDesignator,
	}
}

// ToBaggageRequest converts a validated SelectBaggageRequest.
func ToBaggageRequest(req *SelectBaggageRequest) usecase.BaggageRequest {
	return usecase.BaggageRequest{
		PassengerID: strings.TrimSpace(req.PassengerID),
		ServiceID:   strings.TrimSpace(req.ServiceID),
	}
}

// ToPassengerRecords converts the passenger form to domain records.
func ToPassengerRecords(dtos []PassengerDTO) []domain.PassengerRecord {
	records := make([]domain.PassengerRecord, 0, len(dtos))
	for _, p := range dtos {
		rec := domain.PassengerRecord{
			ID:         strings.TrimSpace(p.ID),
			Type:       domain.PassengerType(strings.ToLower(strings.TrimSpace(p.Type))),
			Title:      p.Title,
			GivenName:  p.GivenName,
			FamilyName: p.FamilyName,
			Gender:     p.Gender,
			BornOn:     p.BornOn,
			Email:      p.Email,
			Phone:      p.Phone,
			Notes:      p.Notes,
		}
		if p.Passport != nil {
			rec.Identity = domain.IdentityDocument{
				Number:         p.Passport.Number,
				IssuingCountry: p.Passport.IssuingCountry,
				ExpiresOn:      p.Passport.ExpiresOn,
			}
		}
		if p.Loyalty != nil {
			rec.Loyalty = domain.LoyaltyAccount{
				AirlineCode:   p.Loyalty.AirlineCode,
				AccountNumber: p.Loyalty.AccountNumber,
			}
		}
		if p.EmergencyContact != nil {
			rec.EmergencyContact = &domain.EmergencyContact{
				Name:         p.EmergencyContact.Name,
				Phone:        p.EmergencyContact.Phone,
				Relationship: p.EmergencyContact.Relationship,
			}
		}
		records = append(records, rec)
	}
	return records
}

// ToPassengerValidationDTO flattens a validation result.
func ToPassengerValidationDTO(res usecase.ValidationResult) PassengerValidationDTO {
	out := PassengerValidationDTO{Valid: res.Valid()}
	if !out.Valid {
		out.Errors = res.ErrorMap()
	}
	if len(res.Warnings) > 0 {
		out.Warnings = make(map[string]string, len(res.Warnings))
		for _, w := range res.Warnings {
			out.Warnings[w.Field] = w.Message
		}
	}
	return out
}

// ToCheckoutDTO converts the stored checkout handoff.
func ToCheckoutDTO(co *session.Checkout) CheckoutDTO {
	return CheckoutDTO{
		PaymentSessionID: co.PaymentSessionID,
		RedirectURL:      co.RedirectURL,
		OfferID:          co.Submission.OfferID,
		TotalAmount:      co.Submission.TotalAmount,
		Currency:         co.Submission.Currency,
		ServiceCount:     len(co.Submission.Services),
	}
}

// ToConfirmationDTO converts a booking outcome with its user-facing message.
func ToConfirmationDTO(o *domain.BookingOutcome) ConfirmationDTO {
	return ConfirmationDTO{
		Status:           o.Status,
		PaymentSessionID: o.PaymentSessionID,
		BookingReference: o.BookingReference,
		Message:          o.Message(),
		Reason:           o.Reason,
		Attempts:         o.Attempts,
	}
}
