package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/travel-booking/flight-booking/internal/domain"
	"github.com/travel-booking/flight-booking/internal/infrastructure/logger"
	"github.com/travel-booking/flight-booking/internal/infrastructure/timeutil"
)

// DefaultReconciliationTimeout bounds the provider re-fetch.
const DefaultReconciliationTimeout = 10 * time.Second

// PriceTolerance is the currency-minor-unit delta treated as unchanged.
var PriceTolerance = decimal.RequireFromString("0.01")

// PriceReconciler re-verifies the held offer against the offers provider before payment.
type PriceReconciler struct {
	provider domain.OffersProvider
	clock    timeutil.Clock
	timeout  time.Duration
	log      *logger.Logger
}

// NewPriceReconciler creates a PriceReconciler. Non-positive timeouts use the default.
func NewPriceReconciler(provider domain.OffersProvider, clock timeutil.Clock, timeout time.Duration, log *logger.Logger) *PriceReconciler {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if timeout <= 0 {
		timeout = DefaultReconciliationTimeout
	}
	return &PriceReconciler{
		provider: provider,
		clock:    clock,
		timeout:  timeout,
		log:      logger.OrNop(log).WithComponent("price_reconciler"),
	}
}

// Reconcile re-fetches the cached offer and compares its price.
//
// An offer whose cached expiry has passed is expired without asking the provider.
// Provider failures other than expiry produce an unverified result that proceeds with
// the cached price. Only cancellation of ctx itself is returned as an error.
func (r *PriceReconciler) Reconcile(ctx context.Context, cached *domain.Offer) (domain.ReconciliationResult, error) {
	if cached == nil {
		return domain.ReconciliationResult{}, domain.WrapInvalidRequest("no offer selected")
	}

	if cached.IsExpired(r.clock.Now()) {
		r.log.Info().Str("offer_id", cached.ID).Time("expires_at", cached.ExpiresAt).Msg("cached offer expired")
		return expiredResult(cached), nil
	}

	fetchCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	fresh, err := r.provider.GetOffer(fetchCtx, cached.ID)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.ReconciliationResult{}, ctxErr
		}
		if domain.IsOfferExpired(err) {
			r.log.Info().Str("offer_id", cached.ID).Err(err).Msg("provider reports offer expired")
			return expiredResult(cached), nil
		}

		r.log.Warn().
			Str("offer_id", cached.ID).
			Str("error_kind", string(domain.Classify(err))).
			Err(err).
			Msg("price not verified, continuing with cached price")
		return domain.ReconciliationResult{
			Status:   domain.ReconciliationUnverified,
			Accepted: true,
			OldPrice: cached.TotalAmount,
			NewPrice: cached.TotalAmount,
			Currency: cached.Currency,
		}, nil
	}

	if fresh.IsExpired(r.clock.Now()) {
		return expiredResult(cached), nil
	}

	result := domain.ReconciliationResult{
		OldPrice:   cached.TotalAmount,
		NewPrice:   fresh.TotalAmount,
		Currency:   fresh.Currency,
		FreshOffer: fresh,
	}

	if fresh.Currency == cached.Currency && result.Delta().Abs().LessThan(PriceTolerance) {
		result.Status = domain.ReconciliationUnchanged
		result.Accepted = true
		return result, nil
	}

	result.Status = domain.ReconciliationPriceChanged
	r.log.Info().
		Str("offer_id", cached.ID).
		Str("old_price", result.OldPrice.StringFixed(2)).
		Str("new_price", result.NewPrice.StringFixed(2)).
		Str("currency", result.Currency).
		Bool("increase", result.IsIncrease()).
		Msg("offer price changed")
	return result, nil
}

// Decide applies the user's answer to a pending price change.
// Accepting marks the result accepted; declining returns it unchanged.
func (r *PriceReconciler) Decide(result domain.ReconciliationResult, decision domain.ReconciliationDecision) (domain.ReconciliationResult, error) {
	if !result.RequiresDecision() {
		return result, domain.WrapInvalidRequest("no price change is awaiting a decision")
	}

	switch decision {
	case domain.DecisionAccept:
		result.Accepted = true
		r.log.Info().Str("new_price", result.NewPrice.StringFixed(2)).Msg("price change accepted")
	case domain.DecisionDecline:
		r.log.Info().Str("old_price", result.OldPrice.StringFixed(2)).Msg("price change declined")
	default:
		return result, domain.WrapInvalidRequest("decision must be accept or decline")
	}
	return result, nil
}

func expiredResult(cached *domain.Offer) domain.ReconciliationResult {
	return domain.ReconciliationResult{
		Status:   domain.ReconciliationExpired,
		OldPrice: cached.TotalAmount,
		NewPrice: cached.TotalAmount,
		Currency: cached.Currency,
	}
}
