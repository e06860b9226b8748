package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/travel-booking/flight-booking/internal/domain"
	"github.com/travel-booking/flight-booking/internal/infrastructure/logger"
	"github.com/travel-booking/flight-booking/internal/infrastructure/timeutil"
	"github.com/travel-booking/flight-booking/internal/session"
)

// BookingUseCase defines the session-scoped booking pipeline operations.
type BookingUseCase interface {
	CreateSession(ctx context.Context) (*BookingView, error)
	GetSession(ctx context.Context, sessionID string) (*BookingView, error)

	// Search validates the criteria, restarts the session at Search and queries offers.
	Search(ctx context.Context, sessionID string, criteria domain.SearchCriteria) ([]domain.Offer, error)
	SelectOffer(ctx context.Context, sessionID string, sliceIndex int, offerID string) (*BookingView, error)

	SeatMap(ctx context.Context, sessionID string) (*domain.SeatMap, error)
	SelectSeat(ctx context.Context, sessionID string, req SeatRequest) (*BookingView, error)
	RemoveSeat(ctx context.Context, sessionID string, sliceIndex, passengerIndex int) (*BookingView, error)
	SkipSeats(ctx context.Context, sessionID string) (*BookingView, error)

	BaggageOptions(ctx context.Context, sessionID string) (*domain.AncillaryCatalog, error)
	SelectBaggage(ctx context.Context, sessionID string, req BaggageRequest) (*BookingView, error)
	RemoveBaggage(ctx context.Context, sessionID string, passengerID string) (*BookingView, error)
	SkipBaggage(ctx context.Context, sessionID string) (*BookingView, error)

	// SavePassengers stores the form state whatever its validity and returns the validation.
	SavePassengers(ctx context.Context, sessionID string, records []domain.PassengerRecord) (ValidationResult, error)

	Advance(ctx context.Context, sessionID string) (*BookingView, error)
	Retreat(ctx context.Context, sessionID string) (*BookingView, error)

	Reconcile(ctx context.Context, sessionID string) (*ReconcileOutcome, error)
	DecidePrice(ctx context.Context, sessionID string, decision domain.ReconciliationDecision) (*ReconcileOutcome, error)

	Checkout(ctx context.Context, sessionID string) (*session.Checkout, error)
	RetryPayment(ctx context.Context, sessionID string) (*BookingView, error)
	Confirmation(ctx context.Context, sessionID string) (*domain.BookingOutcome, error)
}

// Dependencies are the collaborators of the booking service.
type Dependencies struct {
	Sessions *session.Manager
	Provider domain.OffersProvider
	Gateway  domain.PaymentGateway
	Bookings domain.BookingLookup
	Clock    timeutil.Clock
	Logger   *logger.Logger
}

// bookingService implements BookingUseCase.
// Every remote result is applied to a freshly loaded session and discarded with
// domain.ErrStaleResult when the session revision moved while the call was in flight.
type bookingService struct {
	sessions   *session.Manager
	provider   domain.OffersProvider
	sequencer  *Sequencer
	validator  *PassengerValidator
	reconciler *PriceReconciler
	submitter  *CheckoutSubmitter
	poller     *ConfirmationPoller
	clock      timeutil.Clock
	timeout    time.Duration
	log        *logger.Logger
}

// NewBookingService wires the pipeline components. If config is nil, defaults are used.
func NewBookingService(deps Dependencies, config *Config) BookingUseCase {
	cfg := config.withDefaults()

	clock := deps.Clock
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	log := logger.OrNop(deps.Logger)
	validator := NewPassengerValidator(clock)

	return &bookingService{
		sessions:   deps.Sessions,
		provider:   deps.Provider,
		sequencer:  NewSequencer(validator, clock, log),
		validator:  validator,
		reconciler: NewPriceReconciler(deps.Provider, clock, cfg.ReconciliationTimeout, log),
		submitter:  NewCheckoutSubmitter(deps.Gateway, log),
		poller:     NewConfirmationPoller(deps.Bookings, clock, cfg.PollPolicy, log),
		clock:      clock,
		timeout:    cfg.ProviderCallTimeout,
		log:        log.WithComponent("booking_service"),
	}
}

// withTimeout runs a provider call bounded by d.
func withTimeout[T any](ctx context.Context, d time.Duration, call func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()
	return call(ctx)
}

func (s *bookingService) CreateSession(ctx context.Context) (*BookingView, error) {
	sess, err := s.sessions.Create(ctx)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("booking_session", sess.ID()).Msg("booking session created")
	return s.view(sess), nil
}

func (s *bookingService) GetSession(ctx context.Context, sessionID string) (*BookingView, error) {
	sess, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

func (s *bookingService) Search(ctx context.Context, sessionID string, criteria domain.SearchCriteria) ([]domain.Offer, error) {
	criteria.SetDefaults()
	if err := criteria.Validate(timeutil.DateOf(s.clock.Now())); err != nil {
		return nil, err
	}

	sess, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := CanRestart(sess.Stage()); err != nil {
		return nil, err
	}
	if err := sess.StartSearch(ctx, criteria); err != nil {
		return nil, err
	}
	rev := sess.Revision()

	offers, err := withTimeout(ctx, s.timeout, func(ctx context.Context) ([]domain.Offer, error) {
		return s.provider.SearchOffers(ctx, criteria)
	})
	if err != nil {
		return nil, fmt.Errorf("search offers: %w", err)
	}
	if _, err := s.current(ctx, sessionID, rev); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("booking_session", sessionID).
		Int("slices", len(criteria.Slices)).
		Int("passengers", criteria.Passengers.Total()).
		Int("offers", len(offers)).
		Msg("offers found")
	return offers, nil
}

func (s *bookingService) SelectOffer(ctx context.Context, sessionID string, sliceIndex int, offerID string) (*BookingView, error) {
	if offerID == "" {
		return nil, domain.WrapInvalidRequest("offer id is required")
	}

	sess, err := s.load(ctx, sessionID, "offer selection", domain.StageSearch)
	if err != nil {
		return nil, err
	}
	if sliceIndex < 0 || sliceIndex >= sess.Snapshot().SliceCount() {
		return nil, domain.WrapInvalidRequest("slice index %d out of range", sliceIndex)
	}
	rev := sess.Revision()

	offer, err := withTimeout(ctx, s.timeout, func(ctx context.Context) (*domain.Offer, error) {
		return s.provider.GetOffer(ctx, offerID)
	})
	if err != nil {
		return nil, fmt.Errorf("get offer %s: %w", offerID, err)
	}
	if offer.IsExpired(s.clock.Now()) {
		return nil, fmt.Errorf("offer %s: %w", offerID, domain.ErrOfferExpired)
	}

	sess, err = s.current(ctx, sessionID, rev)
	if err != nil {
		return nil, err
	}
	if err := sess.SetOfferForSlice(ctx, sliceIndex, offer); err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

func (s *bookingService) SeatMap(ctx context.Context, sessionID string) (*domain.SeatMap, error) {
	sess, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	offer, err := primaryOffer(sess)
	if err != nil {
		return nil, err
	}

	seatMap, err := withTimeout(ctx, s.timeout, func(ctx context.Context) (*domain.SeatMap, error) {
		return s.provider.GetSeatMap(ctx, offer.ID)
	})
	if err != nil {
		return nil, s.expireIfGone(ctx, sessionID, fmt.Errorf("seat map: %w", err))
	}
	return seatMap, nil
}

func (s *bookingService) SelectSeat(ctx context.Context, sessionID string, req SeatRequest) (*BookingView, error) {
	if req.Designator == "" {
		return nil, domain.WrapInvalidRequest("seat designator is required")
	}

	sess, err := s.load(ctx, sessionID, "seat selection", domain.StageOfferSelected)
	if err != nil {
		return nil, err
	}
	offer, err := primaryOffer(sess)
	if err != nil {
		return nil, err
	}
	if req.SliceIndex < 0 || req.SliceIndex >= sess.Snapshot().SliceCount() {
		return nil, domain.WrapInvalidRequest("slice index %d out of range", req.SliceIndex)
	}
	if req.PassengerIndex < 0 || req.PassengerIndex >= len(offer.Passengers) {
		return nil, domain.WrapInvalidRequest("passenger index %d out of range", req.PassengerIndex)
	}
	passenger := offer.Passengers[req.PassengerIndex]
	if passenger.Type == domain.PassengerInfantWithoutSeat {
		return nil, domain.WrapInvalidRequest("infants without a seat cannot select seats")
	}
	rev := sess.Revision()

	seatMap, err := withTimeout(ctx, s.timeout, func(ctx context.Context) (*domain.SeatMap, error) {
		return s.provider.GetSeatMap(ctx, offer.ID)
	})
	if err != nil {
		return nil, s.expireIfGone(ctx, sessionID, fmt.Errorf("seat map: %w", err))
	}

	seat, ok := seatMap.FindSeat(req.SliceIndex, req.Designator)
	if !ok || !seat.Available {
		return nil, fmt.Errorf("seat %s: %w", req.Designator, domain.ErrSeatUnavailable)
	}
	svc, ok := seat.ServiceFor(passenger.ID)
	if !ok {
		return nil, fmt.Errorf("seat %s for passenger %s: %w", req.Designator, passenger.ID, domain.ErrSeatUnavailable)
	}

	sess, err = s.current(ctx, sessionID, rev)
	if err != nil {
		return nil, err
	}
	err = sess.SetSeat(ctx, req.SliceIndex, req.PassengerIndex, domain.SelectedSeat{
		Designator: seat.Designator,
		ServiceID:  svc.ID,
		Amount:     svc.Amount,
		Currency:   svc.Currency,
	})
	if err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

func (s *bookingService) RemoveSeat(ctx context.Context, sessionID string, sliceIndex, passengerIndex int) (*BookingView, error) {
	sess, err := s.load(ctx, sessionID, "seat selection", domain.StageOfferSelected)
	if err != nil {
		return nil, err
	}
	if err := sess.RemoveSeat(ctx, sliceIndex, passengerIndex); err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

func (s *bookingService) SkipSeats(ctx context.Context, sessionID string) (*BookingView, error) {
	sess, err := s.load(ctx, sessionID, "seat selection", domain.StageOfferSelected)
	if err != nil {
		return nil, err
	}
	if err := sess.SkipSeats(ctx); err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

func (s *bookingService) BaggageOptions(ctx context.Context, sessionID string) (*domain.AncillaryCatalog, error) {
	sess, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	offer, err := primaryOffer(sess)
	if err != nil {
		return nil, err
	}

	catalog, err := withTimeout(ctx, s.timeout, func(ctx context.Context) (*domain.AncillaryCatalog, error) {
		return s.provider.GetAncillaryServices(ctx, offer.ID)
	})
	if err != nil {
		return nil, s.expireIfGone(ctx, sessionID, fmt.Errorf("baggage options: %w", err))
	}
	return catalog, nil
}

func (s *bookingService) SelectBaggage(ctx context.Context, sessionID string, req BaggageRequest) (*BookingView, error) {
	if req.PassengerID == "" || req.ServiceID == "" {
		return nil, domain.WrapInvalidRequest("passenger id and service id are required")
	}

	sess, err := s.load(ctx, sessionID, "baggage selection", domain.StageSeatsChosenOrSkipped)
	if err != nil {
		return nil, err
	}
	offer, err := primaryOffer(sess)
	if err != nil {
		return nil, err
	}
	if offer.PassengerIndex(req.PassengerID) < 0 {
		return nil, domain.WrapInvalidRequest("passenger %s is not on the offer", req.PassengerID)
	}
	rev := sess.Revision()

	catalog, err := withTimeout(ctx, s.timeout, func(ctx context.Context) (*domain.AncillaryCatalog, error) {
		return s.provider.GetAncillaryServices(ctx, offer.ID)
	})
	if err != nil {
		return nil, s.expireIfGone(ctx, sessionID, fmt.Errorf("baggage options: %w", err))
	}

	bag, ok := catalog.FindBaggage(req.ServiceID)
	if !ok {
		return nil, fmt.Errorf("baggage %s: %w", req.ServiceID, domain.ErrServiceNotFound)
	}
	if bag.PassengerID != "" && bag.PassengerID != req.PassengerID {
		return nil, domain.WrapInvalidRequest("baggage %s belongs to another passenger", req.ServiceID)
	}

	sess, err = s.current(ctx, sessionID, rev)
	if err != nil {
		return nil, err
	}
	err = sess.SetBaggage(ctx, req.PassengerID, domain.SelectedBaggageItem{
		ServiceID: bag.ID,
		Amount:    bag.Amount,
		Currency:  bag.Currency,
	})
	if err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

func (s *bookingService) RemoveBaggage(ctx context.Context, sessionID string, passengerID string) (*BookingView, error) {
	sess, err := s.load(ctx, sessionID, "baggage selection", domain.StageSeatsChosenOrSkipped)
	if err != nil {
		return nil, err
	}
	if err := sess.RemoveBaggage(ctx, passengerID); err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

func (s *bookingService) SkipBaggage(ctx context.Context, sessionID string) (*BookingView, error) {
	sess, err := s.load(ctx, sessionID, "baggage selection", domain.StageSeatsChosenOrSkipped)
	if err != nil {
		return nil, err
	}
	if err := sess.SkipBaggage(ctx); err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

func (s *bookingService) SavePassengers(ctx context.Context, sessionID string, records []domain.PassengerRecord) (ValidationResult, error) {
	sess, err := s.load(ctx, sessionID, "passenger details", domain.StageBaggageChosenOrSkipped)
	if err != nil {
		return ValidationResult{}, err
	}
	if err := sess.SetPassengers(ctx, records); err != nil {
		return ValidationResult{}, err
	}
	return s.validator.Validate(records, sess.Snapshot().PrimaryOffer()), nil
}

func (s *bookingService) Advance(ctx context.Context, sessionID string) (*BookingView, error) {
	sess, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if _, err := s.sequencer.Advance(ctx, sess); err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

func (s *bookingService) Retreat(ctx context.Context, sessionID string) (*BookingView, error) {
	sess, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if _, err := s.sequencer.Retreat(ctx, sess); err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

func (s *bookingService) Reconcile(ctx context.Context, sessionID string) (*ReconcileOutcome, error) {
	sess, err := s.load(ctx, sessionID, "price reconciliation", domain.StagePassengerDetailsComplete)
	if err != nil {
		return nil, err
	}
	snap := sess.Snapshot()
	if err := s.sequencer.Gate(domain.StagePassengerDetailsComplete, snap); err != nil {
		return nil, err
	}
	cached, err := primaryOffer(sess)
	if err != nil {
		return nil, err
	}
	rev := sess.Revision()

	result, err := s.reconciler.Reconcile(ctx, cached)
	if err != nil {
		return nil, err
	}

	sess, err = s.current(ctx, sessionID, rev)
	if err != nil {
		return nil, err
	}

	switch result.Status {
	case domain.ReconciliationExpired:
		if err := s.sequencer.Expire(ctx, sess); err != nil {
			return nil, err
		}
		return &ReconcileOutcome{Result: result, Stage: sess.Stage()}, fmt.Errorf("offer %s: %w", cached.ID, domain.ErrOfferExpired)

	case domain.ReconciliationPriceChanged:
		preview, err := s.totalFor(sess, result.FreshOffer)
		if err != nil {
			return nil, err
		}
		if err := sess.SetReconciliation(ctx, &session.Reconciliation{Result: result, VerifiedTotal: preview}); err != nil {
			return nil, err
		}
		return &ReconcileOutcome{
			Result:           result,
			RequiresDecision: true,
			VerifiedTotal:    preview,
			Stage:            sess.Stage(),
		}, nil

	case domain.ReconciliationUnchanged:
		if err := sess.SetOfferForSlice(ctx, session.SliceOutbound, result.FreshOffer); err != nil {
			return nil, err
		}
		return s.settle(ctx, sess, result, result.FreshOffer)

	default:
		return s.settle(ctx, sess, result, cached)
	}
}

func (s *bookingService) DecidePrice(ctx context.Context, sessionID string, decision domain.ReconciliationDecision) (*ReconcileOutcome, error) {
	sess, err := s.load(ctx, sessionID, "price decision", domain.StagePassengerDetailsComplete)
	if err != nil {
		return nil, err
	}
	pending := sess.Snapshot().Reconciliation
	if pending == nil || pending.Decided {
		return nil, domain.WrapInvalidRequest("no price change is awaiting a decision")
	}

	result, err := s.reconciler.Decide(pending.Result, decision)
	if err != nil {
		return nil, err
	}

	if !result.Accepted {
		if err := sess.SetReconciliation(ctx, nil); err != nil {
			return nil, err
		}
		return &ReconcileOutcome{Result: result, Stage: sess.Stage()}, nil
	}

	fresh := result.FreshOffer
	if fresh == nil {
		return nil, fmt.Errorf("accepted price change carries no offer")
	}
	if fresh.IsExpired(s.clock.Now()) {
		if err := s.sequencer.Expire(ctx, sess); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("offer %s: %w", fresh.ID, domain.ErrOfferExpired)
	}
	if err := sess.SetOfferForSlice(ctx, session.SliceOutbound, fresh); err != nil {
		return nil, err
	}
	return s.settle(ctx, sess, result, fresh)
}

// settle records the verified total for offer and enters PriceReconciled.
func (s *bookingService) settle(ctx context.Context, sess *session.BookingSession, result domain.ReconciliationResult, offer *domain.Offer) (*ReconcileOutcome, error) {
	total, err := s.totalFor(sess, offer)
	if err != nil {
		return nil, err
	}
	if err := s.sequencer.MarkReconciled(ctx, sess, session.Reconciliation{Result: result, VerifiedTotal: total}); err != nil {
		return nil, err
	}
	return &ReconcileOutcome{Result: result, VerifiedTotal: total, Stage: sess.Stage()}, nil
}

func (s *bookingService) totalFor(sess *session.BookingSession, offer *domain.Offer) (decimal.Decimal, error) {
	services, err := BuildServices(sess.Snapshot(), offer)
	if err != nil {
		return decimal.Zero, err
	}
	return GrandTotal(offer.TotalAmount, services), nil
}

func (s *bookingService) Checkout(ctx context.Context, sessionID string) (*session.Checkout, error) {
	sess, err := s.load(ctx, sessionID, "checkout", domain.StagePriceReconciled)
	if err != nil {
		return nil, err
	}
	snap := sess.Snapshot()
	if snap.Reconciliation == nil || !snap.Reconciliation.Decided {
		return nil, domain.NewIncompleteStageError(snap.Stage, domain.StageSubmitted, "price has not been reconciled")
	}
	offer, err := primaryOffer(sess)
	if err != nil {
		return nil, err
	}
	rev := sess.Revision()

	res, err := s.submitter.Submit(ctx, snap, offer, snap.Reconciliation.VerifiedTotal)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentFailed) {
			if markErr := s.sequencer.MarkPaymentFailed(ctx, sess, err.Error()); markErr != nil {
				s.log.Error().Str("booking_session", sessionID).Err(markErr).Msg("cannot record payment failure")
			}
		}
		return nil, err
	}

	sess, err = s.current(ctx, sessionID, rev)
	if err != nil {
		s.log.Warn().
			Str("booking_session", sessionID).
			Str("payment_session_id", res.Session.SessionID).
			Err(err).
			Msg("discarding checkout session")
		return nil, err
	}

	checkout := session.Checkout{
		PaymentSessionID: res.Session.SessionID,
		RedirectURL:      res.Session.RedirectURL,
		Submission:       res.Submission,
	}
	if err := s.sequencer.MarkSubmitted(ctx, sess, checkout); err != nil {
		return nil, err
	}
	return &checkout, nil
}

func (s *bookingService) RetryPayment(ctx context.Context, sessionID string) (*BookingView, error) {
	sess, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.sequencer.RetryPayment(ctx, sess); err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

func (s *bookingService) Confirmation(ctx context.Context, sessionID string) (*domain.BookingOutcome, error) {
	sess, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	snap := sess.Snapshot()

	switch snap.Stage {
	case domain.StageConfirmed, domain.StageBookingCreateFailed:
		if snap.Checkout != nil && snap.Checkout.Outcome != nil {
			return snap.Checkout.Outcome, nil
		}
		return nil, fmt.Errorf("session %s in stage %s has no recorded outcome", sessionID, snap.Stage)
	case domain.StagePaymentFailed:
		if snap.Checkout != nil && snap.Checkout.Outcome != nil {
			return snap.Checkout.Outcome, nil
		}
		outcome := domain.BookingOutcome{Status: domain.OutcomePaymentFailed, Reason: domain.ErrPaymentFailed.Error()}
		if snap.Checkout != nil && snap.Checkout.FailureReason != "" {
			outcome.Reason = snap.Checkout.FailureReason
		}
		return &outcome, nil
	case domain.StageSubmitted:
		if snap.Checkout == nil || snap.Checkout.PaymentSessionID == "" {
			return nil, fmt.Errorf("session %s was submitted without a payment session", sessionID)
		}
	default:
		return nil, domain.NewInvalidTransitionError(snap.Stage, "", "no submitted checkout to confirm")
	}

	paymentSessionID := snap.Checkout.PaymentSessionID
	rev := sess.Revision()

	outcome, err := s.poller.PollForResult(ctx, paymentSessionID)
	if err != nil {
		return nil, err
	}

	sess, err = s.current(ctx, sessionID, rev)
	if err != nil {
		return nil, err
	}

	switch outcome.Status {
	case domain.OutcomeConfirmed:
		err = s.sequencer.MarkConfirmed(ctx, sess, outcome)
	case domain.OutcomeFailed:
		err = s.sequencer.MarkBookingCreateFailed(ctx, sess, outcome)
	case domain.OutcomePaymentFailed:
		err = s.sequencer.MarkPaymentNotTaken(ctx, sess, outcome)
	default:
		checkout := sess.Snapshot().Checkout
		checkout.Outcome = &outcome
		err = sess.SetCheckout(ctx, checkout)
	}
	if err != nil {
		return nil, err
	}
	return &outcome, nil
}

// load restores the session and checks that op is available in its stage.
func (s *bookingService) load(ctx context.Context, sessionID, op string, stage domain.Stage) (*session.BookingSession, error) {
	sess, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Stage() != stage {
		return nil, domain.NewInvalidTransitionError(sess.Stage(), "", op+" is not available at this stage")
	}
	return sess, nil
}

// current reloads the session after a remote call and rejects the result if the
// session moved on while the call was in flight.
func (s *bookingService) current(ctx context.Context, sessionID string, rev int64) (*session.BookingSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sess, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Revision() != rev {
		s.log.Warn().
			Str("booking_session", sessionID).
			Int64("expected_revision", rev).
			Int64("revision", sess.Revision()).
			Msg("stale result discarded")
		return nil, domain.ErrStaleResult
	}
	return sess, nil
}

// expireIfGone moves the session to Expired when err reports the offer gone.
func (s *bookingService) expireIfGone(ctx context.Context, sessionID string, err error) error {
	if !domain.IsOfferExpired(err) || ctx.Err() != nil {
		return err
	}
	sess, loadErr := s.sessions.Load(ctx, sessionID)
	if loadErr != nil {
		return err
	}
	if expErr := s.sequencer.Expire(ctx, sess); expErr != nil {
		s.log.Error().Str("booking_session", sessionID).Err(expErr).Msg("cannot expire session")
	}
	return err
}

func primaryOffer(sess *session.BookingSession) (*domain.Offer, error) {
	offer := sess.Snapshot().PrimaryOffer()
	if offer == nil {
		return nil, domain.NewIncompleteStageError(sess.Stage(), domain.StageOfferSelected, "no offer selected")
	}
	return offer, nil
}
