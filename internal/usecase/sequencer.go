package usecase

import (
	"context"
	"slices"

	"github.com/travel-booking/flight-booking/internal/domain"
	"github.com/travel-booking/flight-booking/internal/infrastructure/logger"
	"github.com/travel-booking/flight-booking/internal/infrastructure/timeutil"
	"github.com/travel-booking/flight-booking/internal/session"
)

// Sequencer enforces the booking stage order and its advancement gates.
//
// Search through BaggageChosenOrSkipped advance on request once their gate holds.
// PassengerDetailsComplete advances only through price reconciliation and
// PriceReconciled only through checkout. Nothing retreats once submitted.
type Sequencer struct {
	validator *PassengerValidator
	clock     timeutil.Clock
	log       *logger.Logger
}

// NewSequencer creates a Sequencer. A nil validator validates with clock.
func NewSequencer(validator *PassengerValidator, clock timeutil.Clock, log *logger.Logger) *Sequencer {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if validator == nil {
		validator = NewPassengerValidator(clock)
	}
	return &Sequencer{
		validator: validator,
		clock:     clock,
		log:       logger.OrNop(log).WithComponent("stage_sequencer"),
	}
}

// Gate checks whether the snapshot satisfies the requirement for entering target.
// Gate failures are stage errors, except passenger details which return the
// validator's *domain.ValidationErrors.
func (s *Sequencer) Gate(target domain.Stage, snap session.Snapshot) error {
	from := snap.Stage

	switch target {
	case domain.StageOfferSelected:
		if !snap.Offers.Complete(snap.SliceCount()) {
			return domain.NewIncompleteStageError(from, target, "every slice needs a selected offer")
		}
	case domain.StageSeatsChosenOrSkipped:
		if !snap.Progress.SeatsDecided {
			return domain.NewIncompleteStageError(from, target, "select a seat or skip seat selection")
		}
	case domain.StageBaggageChosenOrSkipped:
		if !snap.Progress.BaggageDecided {
			return domain.NewIncompleteStageError(from, target, "select baggage or skip baggage selection")
		}
	case domain.StagePassengerDetailsComplete:
		if err := s.validator.Validate(snap.Passengers, snap.PrimaryOffer()).Err(); err != nil {
			return err
		}
	case domain.StagePriceReconciled:
		if snap.Reconciliation == nil || !snap.Reconciliation.Decided {
			return domain.NewIncompleteStageError(from, target, "price has not been reconciled")
		}
	case domain.StageSubmitted:
		if snap.Checkout == nil || snap.Checkout.PaymentSessionID == "" {
			return domain.NewIncompleteStageError(from, target, "checkout has not been submitted")
		}
	}
	return nil
}

// CanAdvance reports whether a manual advance from stage would succeed for the snapshot.
func (s *Sequencer) CanAdvance(stage domain.Stage, snap session.Snapshot) bool {
	next, ok := stage.Next()
	if !ok || !isManualAdvance(stage) {
		return false
	}
	snap.Stage = stage
	return s.Gate(next, snap) == nil
}

func isManualAdvance(stage domain.Stage) bool {
	return stage.Before(domain.StagePassengerDetailsComplete)
}

// Advance moves the session to the next stage once the current gate holds.
// A primary offer found expired on the way is handled as an expiry.
func (s *Sequencer) Advance(ctx context.Context, sess *session.BookingSession) (domain.Stage, error) {
	from := sess.Stage()
	next, ok := from.Next()
	if !ok {
		return from, domain.NewInvalidTransitionError(from, "", "no further stage")
	}

	switch from {
	case domain.StagePassengerDetailsComplete:
		return from, domain.NewInvalidTransitionError(from, next, "price must be reconciled first")
	case domain.StagePriceReconciled:
		return from, domain.NewInvalidTransitionError(from, next, "checkout must be submitted first")
	case domain.StageSubmitted:
		return from, domain.NewInvalidTransitionError(from, next, "waiting for booking confirmation")
	}

	snap := sess.Snapshot()
	if offer := snap.PrimaryOffer(); offer != nil && offer.IsExpired(s.clock.Now()) {
		if err := s.Expire(ctx, sess); err != nil {
			return sess.Stage(), err
		}
		return sess.Stage(), domain.ErrOfferExpired
	}

	if err := s.Gate(next, snap); err != nil {
		return from, err
	}
	if err := s.move(ctx, sess, next); err != nil {
		return from, err
	}
	return next, nil
}

// Retreat moves back one stage without discarding entered data.
// Retreating from Search stays at Search. A pending or settled reconciliation is
// dropped so the price is verified again on the way forward.
func (s *Sequencer) Retreat(ctx context.Context, sess *session.BookingSession) (domain.Stage, error) {
	from := sess.Stage()

	switch {
	case from == domain.StageSearch:
		return from, nil
	case from == domain.StageExpired:
		return from, domain.NewInvalidTransitionError(from, "", "offer expired, start a new search")
	case from == domain.StagePaymentFailed:
		return from, domain.NewInvalidTransitionError(from, "", "retry payment or contact support")
	case !from.IsPrePayment():
		return from, domain.NewInvalidTransitionError(from, "", "booking already submitted")
	}

	prev, _ := from.Previous()
	if sess.Snapshot().Reconciliation != nil {
		if err := sess.SetReconciliation(ctx, nil); err != nil {
			return from, err
		}
	}
	if err := s.move(ctx, sess, prev); err != nil {
		return from, err
	}
	return prev, nil
}

// Expire moves a pre-payment session to Expired and discards the offers and every
// selection tied to them. Already expired sessions are left alone.
func (s *Sequencer) Expire(ctx context.Context, sess *session.BookingSession) error {
	from := sess.Stage()
	if from == domain.StageExpired {
		return nil
	}
	if !from.IsPrePayment() {
		return domain.NewInvalidTransitionError(from, domain.StageExpired, "payment already started")
	}

	if err := sess.ClearSelections(ctx); err != nil {
		return err
	}
	return s.move(ctx, sess, domain.StageExpired)
}

// Restart returns an expired or pre-payment session to Search, discarding its offers.
func (s *Sequencer) Restart(ctx context.Context, sess *session.BookingSession) error {
	if err := CanRestart(sess.Stage()); err != nil {
		return err
	}
	if err := sess.ClearSelections(ctx); err != nil {
		return err
	}
	return s.move(ctx, sess, domain.StageSearch)
}

// CanRestart reports whether a new search may start from stage.
func CanRestart(stage domain.Stage) error {
	if stage == domain.StageExpired || stage.IsPrePayment() {
		return nil
	}
	return domain.NewInvalidTransitionError(stage, domain.StageSearch, "booking already submitted")
}

// MarkReconciled records the settled reconciliation and enters PriceReconciled.
func (s *Sequencer) MarkReconciled(ctx context.Context, sess *session.BookingSession, r session.Reconciliation) error {
	if err := s.expect(sess, domain.StagePriceReconciled, domain.StagePassengerDetailsComplete); err != nil {
		return err
	}
	r.Decided = true
	if err := sess.SetReconciliation(ctx, &r); err != nil {
		return err
	}
	return s.move(ctx, sess, domain.StagePriceReconciled)
}

// MarkSubmitted records the checkout handoff and enters Submitted.
func (s *Sequencer) MarkSubmitted(ctx context.Context, sess *session.BookingSession, c session.Checkout) error {
	if err := s.expect(sess, domain.StageSubmitted, domain.StagePriceReconciled); err != nil {
		return err
	}
	if err := sess.SetCheckout(ctx, &c); err != nil {
		return err
	}
	return s.move(ctx, sess, domain.StageSubmitted)
}

// MarkPaymentFailed records a rejected checkout and enters PaymentFailed.
func (s *Sequencer) MarkPaymentFailed(ctx context.Context, sess *session.BookingSession, reason string) error {
	if err := s.expect(sess, domain.StagePaymentFailed, domain.StagePriceReconciled); err != nil {
		return err
	}
	if err := sess.SetCheckout(ctx, &session.Checkout{FailureReason: reason}); err != nil {
		return err
	}
	return s.move(ctx, sess, domain.StagePaymentFailed)
}

// RetryPayment returns a failed payment to PassengerDetailsComplete. The price must be
// reconciled again before the next checkout.
func (s *Sequencer) RetryPayment(ctx context.Context, sess *session.BookingSession) error {
	if err := s.expect(sess, domain.StagePassengerDetailsComplete, domain.StagePaymentFailed); err != nil {
		return err
	}
	if err := sess.SetReconciliation(ctx, nil); err != nil {
		return err
	}
	if err := sess.SetCheckout(ctx, nil); err != nil {
		return err
	}
	return s.move(ctx, sess, domain.StagePassengerDetailsComplete)
}

// MarkConfirmed records a confirmed booking.
func (s *Sequencer) MarkConfirmed(ctx context.Context, sess *session.BookingSession, outcome domain.BookingOutcome) error {
	return s.finish(ctx, sess, domain.StageConfirmed, outcome)
}

// MarkBookingCreateFailed records a paid booking the provider did not create.
func (s *Sequencer) MarkBookingCreateFailed(ctx context.Context, sess *session.BookingSession, outcome domain.BookingOutcome) error {
	return s.finish(ctx, sess, domain.StageBookingCreateFailed, outcome)
}

// MarkPaymentNotTaken records a submitted checkout whose payment failed or expired
// at the gateway. Nothing was charged, so RetryPayment is available afterwards.
func (s *Sequencer) MarkPaymentNotTaken(ctx context.Context, sess *session.BookingSession, outcome domain.BookingOutcome) error {
	return s.finish(ctx, sess, domain.StagePaymentFailed, outcome)
}

func (s *Sequencer) finish(ctx context.Context, sess *session.BookingSession, to domain.Stage, outcome domain.BookingOutcome) error {
	if err := s.expect(sess, to, domain.StageSubmitted); err != nil {
		return err
	}
	checkout := sess.Snapshot().Checkout
	if checkout == nil {
		checkout = &session.Checkout{PaymentSessionID: outcome.PaymentSessionID}
	}
	checkout.Outcome = &outcome
	if to == domain.StagePaymentFailed {
		checkout.FailureReason = outcome.Reason
	}
	if err := sess.SetCheckout(ctx, checkout); err != nil {
		return err
	}
	return s.move(ctx, sess, to)
}

func (s *Sequencer) expect(sess *session.BookingSession, to domain.Stage, allowed ...domain.Stage) error {
	from := sess.Stage()
	if !slices.Contains(allowed, from) {
		return domain.NewInvalidTransitionError(from, to, "not allowed from the current stage")
	}
	return nil
}

func (s *Sequencer) move(ctx context.Context, sess *session.BookingSession, to domain.Stage) error {
	from := sess.Stage()
	if err := sess.SetStage(ctx, to); err != nil {
		return err
	}

	event := s.log.Info()
	if to.IsTerminalFailure() {
		event = s.log.Warn()
	}
	event.
		Str("booking_session", sess.ID()).
		Str("from", string(from)).
		Str("to", string(to)).
		Int64("revision", sess.Revision()).
		Msg("stage transition")
	return nil
}
