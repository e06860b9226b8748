package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/travel-booking/flight-booking/internal/domain"
	"github.com/travel-booking/flight-booking/internal/infrastructure/logger"
	"github.com/travel-booking/flight-booking/internal/session"
)

// CheckoutSubmitter assembles the booking submission and hands it to the payment gateway.
type CheckoutSubmitter struct {
	gateway domain.PaymentGateway
	log     *logger.Logger
}

// NewCheckoutSubmitter creates a CheckoutSubmitter.
func NewCheckoutSubmitter(gateway domain.PaymentGateway, log *logger.Logger) *CheckoutSubmitter {
	return &CheckoutSubmitter{
		gateway: gateway,
		log:     logger.OrNop(log).WithComponent("checkout_submitter"),
	}
}

// GrandTotal returns offerTotal + Σ(amount × quantity), rounded to 2 decimals.
func GrandTotal(offerTotal decimal.Decimal, services []domain.Service) decimal.Decimal {
	total := offerTotal
	for _, svc := range services {
		total = total.Add(svc.Subtotal())
	}
	return total.Round(2)
}

// BuildServices merges seat and baggage selections into one list.
// Seats come first ordered by slice then passenger index, then bags in offer passenger order.
// Every service must be priced in the offer currency.
func BuildServices(snap session.Snapshot, offer *domain.Offer) ([]domain.Service, error) {
	if offer == nil {
		return nil, domain.WrapInvalidRequest("no offer selected")
	}

	services := make([]domain.Service, 0, snap.Seats.Count()+len(snap.Baggage))

	sliceIndexes := make([]int, 0, len(snap.Seats))
	for sliceIndex := range snap.Seats {
		sliceIndexes = append(sliceIndexes, sliceIndex)
	}
	sort.Ints(sliceIndexes)

	for _, sliceIndex := range sliceIndexes {
		bySlice := snap.Seats[sliceIndex]
		passengerIndexes := make([]int, 0, len(bySlice))
		for passengerIndex := range bySlice {
			passengerIndexes = append(passengerIndexes, passengerIndex)
		}
		sort.Ints(passengerIndexes)

		for _, passengerIndex := range passengerIndexes {
			seat := bySlice[passengerIndex]
			if err := checkCurrency(offer, seat.Currency, seat.ServiceID); err != nil {
				return nil, err
			}
			services = append(services, domain.Service{
				ID:       seat.ServiceID,
				Type:     domain.ServiceSeat,
				Amount:   seat.Amount,
				Quantity: 1,
			})
		}
	}

	seen := 0
	for _, p := range offer.Passengers {
		bag, ok := snap.Baggage[p.ID]
		if !ok {
			continue
		}
		seen++
		if err := checkCurrency(offer, bag.Currency, bag.ServiceID); err != nil {
			return nil, err
		}
		services = append(services, domain.Service{
			ID:       bag.ServiceID,
			Type:     domain.ServiceBaggage,
			Amount:   bag.Amount,
			Quantity: 1,
		})
	}
	if seen != len(snap.Baggage) {
		return nil, fmt.Errorf("%w: baggage selected for a passenger not on offer %s", domain.ErrServiceNotFound, offer.ID)
	}

	return services, nil
}

func checkCurrency(offer *domain.Offer, currency, serviceID string) error {
	if currency != "" && currency != offer.Currency {
		return domain.WrapInvalidRequest("service %s is priced in %s but the offer is in %s", serviceID, currency, offer.Currency)
	}
	return nil
}

// BuildSubmission assembles the provider-format payload for the verified offer.
func BuildSubmission(snap session.Snapshot, offer *domain.Offer) (domain.BookingSubmission, error) {
	services, err := BuildServices(snap, offer)
	if err != nil {
		return domain.BookingSubmission{}, err
	}

	byID := make(map[string]domain.PassengerRecord, len(snap.Passengers))
	for _, p := range snap.Passengers {
		byID[p.ID] = p
	}

	passengers := make([]domain.SubmissionPassenger, 0, len(offer.Passengers))
	for i, op := range offer.Passengers {
		record, ok := byID[op.ID]
		if !ok {
			return domain.BookingSubmission{}, domain.WrapInvalidRequest("passenger %d has no details", i)
		}
		record.ID = op.ID
		record.Type = op.Type
		passengers = append(passengers, record.ToSubmission())
	}

	return domain.BookingSubmission{
		OfferID:     offer.ID,
		Passengers:  passengers,
		Services:    services,
		TotalAmount: GrandTotal(offer.TotalAmount, services),
		Currency:    offer.Currency,
	}, nil
}

// Submit builds the submission, checks its total against the one shown to the user,
// and creates a checkout session. A total mismatch fails with domain.ErrTotalMismatch
// before the gateway is called. A gateway that is unavailable or asks to retry later
// yields its error unchanged. Other gateway failures are reported as domain.ErrPaymentFailed.
func (s *CheckoutSubmitter) Submit(ctx context.Context, snap session.Snapshot, verifiedOffer *domain.Offer, displayedTotal decimal.Decimal) (*domain.SubmissionResult, error) {
	submission, err := BuildSubmission(snap, verifiedOffer)
	if err != nil {
		return nil, err
	}

	if !submission.TotalAmount.Equal(displayedTotal.Round(2)) {
		s.log.Error().
			Str("offer_id", submission.OfferID).
			Str("computed_total", submission.TotalAmount.StringFixed(2)).
			Str("displayed_total", displayedTotal.StringFixed(2)).
			Msg("grand total mismatch, refusing to submit")
		return nil, fmt.Errorf("%w: computed %s, displayed %s",
			domain.ErrTotalMismatch, submission.TotalAmount.StringFixed(2), displayedTotal.StringFixed(2))
	}

	checkout, err := s.gateway.CreateCheckoutSession(ctx, submission)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if domain.IsRetryable(err) || errors.Is(err, domain.ErrProviderUnavailable) {
			s.log.Warn().Str("offer_id", submission.OfferID).Err(err).Msg("payment gateway unavailable")
			return nil, err
		}
		s.log.Error().Str("offer_id", submission.OfferID).Err(err).Msg("checkout session creation failed")
		return nil, fmt.Errorf("%w: %w", domain.ErrPaymentFailed, err)
	}

	s.log.Info().
		Str("offer_id", submission.OfferID).
		Str("payment_session_id", checkout.SessionID).
		Str("total", submission.TotalAmount.StringFixed(2)).
		Str("currency", submission.Currency).
		Int("services", len(submission.Services)).
		Msg("checkout session created")

	return &domain.SubmissionResult{Submission: submission, Session: *checkout}, nil
}
