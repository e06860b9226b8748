package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-booking/flight-booking/internal/domain"
	"github.com/travel-booking/flight-booking/internal/infrastructure/timeutil"
	"github.com/travel-booking/flight-booking/internal/session"
)

func setupSequencer() (*Sequencer, *session.Manager, *timeutil.MockClock) {
	clock := newTestClock()
	return NewSequencer(nil, clock, nil), session.NewManager(session.NewMemoryStore()), clock
}

func TestSequencer_AdvanceThroughManualStages(t *testing.T) {
	ctx := context.Background()
	seq, mgr, _ := setupSequencer()
	sess := newSessionAt(t, mgr, domain.StageSearch)

	_, err := seq.Advance(ctx, sess)
	assert.ErrorIs(t, err, domain.ErrStageIncomplete)
	assert.Equal(t, domain.StageSearch, sess.Stage())

	require.NoError(t, sess.SetOfferForSlice(ctx, session.SliceOutbound, createTestOffer("off_1", "300.00")))
	assert.True(t, seq.CanAdvance(sess.Stage(), sess.Snapshot()))
	stage, err := seq.Advance(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, domain.StageOfferSelected, stage)

	_, err = seq.Advance(ctx, sess)
	assert.ErrorIs(t, err, domain.ErrStageIncomplete)
	require.NoError(t, sess.SkipSeats(ctx))
	stage, err = seq.Advance(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, domain.StageSeatsChosenOrSkipped, stage)

	_, err = seq.Advance(ctx, sess)
	assert.ErrorIs(t, err, domain.ErrStageIncomplete)
	require.NoError(t, sess.SetBaggage(ctx, "pas_1", bagItem("bag_1", "pas_1", "40.27")))
	stage, err = seq.Advance(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, domain.StageBaggageChosenOrSkipped, stage)

	_, err = seq.Advance(ctx, sess)
	assert.Equal(t, domain.KindValidation, domain.Classify(err))
	assert.False(t, seq.CanAdvance(sess.Stage(), sess.Snapshot()))

	require.NoError(t, sess.SetPassengers(ctx, []domain.PassengerRecord{validAdult("pas_1")}))
	stage, err = seq.Advance(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, domain.StagePassengerDetailsComplete, stage)

	// Reconciliation is the only way forward from here
	assert.False(t, seq.CanAdvance(sess.Stage(), sess.Snapshot()))
	_, err = seq.Advance(ctx, sess)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, domain.StagePassengerDetailsComplete, sess.Stage())
}

func TestSequencer_RoundTripNeedsBothSlices(t *testing.T) {
	ctx := context.Background()
	seq, mgr, _ := setupSequencer()
	sess := newSessionAt(t, mgr, domain.StageSearch)
	require.NoError(t, sess.StartSearch(ctx, roundTripCriteria()))

	require.NoError(t, sess.SetOfferForSlice(ctx, session.SliceOutbound, createTestOffer("off_1", "300.00")))
	assert.False(t, seq.CanAdvance(domain.StageSearch, sess.Snapshot()))

	require.NoError(t, sess.SetOfferForSlice(ctx, session.SliceReturn, createTestOffer("off_2", "250.00")))
	assert.True(t, seq.CanAdvance(domain.StageSearch, sess.Snapshot()))
}

func TestSequencer_AdvanceWithExpiredOffer(t *testing.T) {
	ctx := context.Background()
	seq, mgr, clock := setupSequencer()
	sess := newSessionAt(t, mgr, domain.StageSearch)
	require.NoError(t, sess.SetOfferForSlice(ctx, session.SliceOutbound, createTestOffer("off_1", "300.00")))
	require.NoError(t, sess.SetSeat(ctx, 0, 0, selectedSeat("12A", "ase_1", "12.35")))

	clock.Advance(3 * time.Hour)
	stage, err := seq.Advance(ctx, sess)

	assert.ErrorIs(t, err, domain.ErrOfferExpired)
	assert.Equal(t, domain.StageExpired, stage)
	snap := sess.Snapshot()
	assert.Nil(t, snap.PrimaryOffer())
	assert.Zero(t, snap.Seats.Count())
}

func TestSequencer_Retreat(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps entered data", func(t *testing.T) {
		seq, mgr, _ := setupSequencer()
		sess := newSessionAt(t, mgr, domain.StagePassengerDetailsComplete)
		require.NoError(t, sess.SetOfferForSlice(ctx, session.SliceOutbound, createTestOffer("off_1", "300.00")))
		require.NoError(t, sess.SetSeat(ctx, 0, 0, selectedSeat("12A", "ase_1", "12.35")))
		require.NoError(t, sess.SetPassengers(ctx, []domain.PassengerRecord{validAdult("pas_1")}))
		before := sess.Snapshot()

		for _, want := range []domain.Stage{
			domain.StageBaggageChosenOrSkipped,
			domain.StageSeatsChosenOrSkipped,
			domain.StageOfferSelected,
			domain.StageSearch,
			domain.StageSearch,
		} {
			stage, err := seq.Retreat(ctx, sess)
			require.NoError(t, err)
			assert.Equal(t, want, stage)
		}

		after := sess.Snapshot()
		assert.Equal(t, before.Offers, after.Offers)
		assert.Equal(t, before.Seats, after.Seats)
		assert.Equal(t, before.Passengers, after.Passengers)
	})

	t.Run("drops the reconciliation", func(t *testing.T) {
		seq, mgr, _ := setupSequencer()
		sess := newSessionAt(t, mgr, domain.StagePriceReconciled)
		require.NoError(t, sess.SetReconciliation(ctx, &session.Reconciliation{Decided: true, VerifiedTotal: dec("300")}))

		stage, err := seq.Retreat(ctx, sess)

		require.NoError(t, err)
		assert.Equal(t, domain.StagePassengerDetailsComplete, stage)
		assert.Nil(t, sess.Snapshot().Reconciliation)
	})

	for _, locked := range []domain.Stage{
		domain.StageSubmitted,
		domain.StageConfirmed,
		domain.StageBookingCreateFailed,
		domain.StagePaymentFailed,
		domain.StageExpired,
	} {
		t.Run("locked at "+string(locked), func(t *testing.T) {
			seq, mgr, _ := setupSequencer()
			sess := newSessionAt(t, mgr, locked)

			stage, err := seq.Retreat(ctx, sess)

			assert.ErrorIs(t, err, domain.ErrInvalidTransition)
			assert.Equal(t, locked, stage)
			assert.Equal(t, locked, sess.Stage())
		})
	}
}

func TestSequencer_ExpireAndRestart(t *testing.T) {
	ctx := context.Background()
	seq, mgr, _ := setupSequencer()
	sess := newSessionAt(t, mgr, domain.StagePassengerDetailsComplete)
	require.NoError(t, sess.SetOfferForSlice(ctx, session.SliceOutbound, createTestOffer("off_1", "300.00")))
	require.NoError(t, sess.SetSeat(ctx, 0, 0, selectedSeat("12A", "ase_1", "12.35")))
	require.NoError(t, sess.SetBaggage(ctx, "pas_1", bagItem("bag_1", "pas_1", "40.27")))
	require.NoError(t, sess.SetPassengers(ctx, []domain.PassengerRecord{validAdult("pas_1")}))

	require.NoError(t, seq.Expire(ctx, sess))

	snap := sess.Snapshot()
	assert.Equal(t, domain.StageExpired, snap.Stage)
	assert.Nil(t, snap.PrimaryOffer())
	assert.Zero(t, snap.Seats.Count())
	assert.Empty(t, snap.Baggage)
	assert.Len(t, snap.Passengers, 1)

	// Idempotent
	rev := sess.Revision()
	require.NoError(t, seq.Expire(ctx, sess))
	assert.Equal(t, rev, sess.Revision())

	_, err := seq.Advance(ctx, sess)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	require.NoError(t, seq.Restart(ctx, sess))
	assert.Equal(t, domain.StageSearch, sess.Stage())

	// Persisted
	loaded, err := mgr.Load(ctx, sess.ID())
	require.NoError(t, err)
	assert.Equal(t, domain.StageSearch, loaded.Stage())
}

func TestSequencer_ExpireAfterPaymentStarted(t *testing.T) {
	seq, mgr, _ := setupSequencer()
	sess := newSessionAt(t, mgr, domain.StageSubmitted)

	err := seq.Expire(context.Background(), sess)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, domain.StageSubmitted, sess.Stage())
	assert.Error(t, seq.Restart(context.Background(), sess))
}

func TestSequencer_PaymentLifecycle(t *testing.T) {
	ctx := context.Background()
	seq, mgr, _ := setupSequencer()
	sess := newSessionAt(t, mgr, domain.StagePassengerDetailsComplete)

	require.NoError(t, seq.MarkReconciled(ctx, sess, session.Reconciliation{VerifiedTotal: dec("300")}))
	assert.Equal(t, domain.StagePriceReconciled, sess.Stage())
	assert.True(t, sess.Snapshot().Reconciliation.Decided)

	require.NoError(t, seq.MarkPaymentFailed(ctx, sess, "card declined"))
	assert.Equal(t, domain.StagePaymentFailed, sess.Stage())
	assert.Equal(t, "card declined", sess.Snapshot().Checkout.FailureReason)

	require.NoError(t, seq.RetryPayment(ctx, sess))
	assert.Equal(t, domain.StagePassengerDetailsComplete, sess.Stage())
	assert.Nil(t, sess.Snapshot().Reconciliation)
	assert.Nil(t, sess.Snapshot().Checkout)

	require.NoError(t, seq.MarkReconciled(ctx, sess, session.Reconciliation{VerifiedTotal: dec("300")}))
	require.NoError(t, seq.MarkSubmitted(ctx, sess, session.Checkout{PaymentSessionID: "cs_1"}))
	assert.Equal(t, domain.StageSubmitted, sess.Stage())

	assert.ErrorIs(t, seq.MarkPaymentFailed(ctx, sess, "late"), domain.ErrInvalidTransition)

	require.NoError(t, seq.MarkConfirmed(ctx, sess, domain.BookingOutcome{Status: domain.OutcomeConfirmed, BookingReference: "RZPNX8"}))
	snap := sess.Snapshot()
	assert.Equal(t, domain.StageConfirmed, snap.Stage)
	assert.Equal(t, "cs_1", snap.Checkout.PaymentSessionID)
	assert.Equal(t, "RZPNX8", snap.Checkout.Outcome.BookingReference)
}

func TestSequencer_BookingCreateFailed(t *testing.T) {
	ctx := context.Background()
	seq, mgr, _ := setupSequencer()
	sess := newSessionAt(t, mgr, domain.StagePriceReconciled)

	err := seq.MarkBookingCreateFailed(ctx, sess, domain.BookingOutcome{Status: domain.OutcomeFailed})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	require.NoError(t, seq.MarkSubmitted(ctx, sess, session.Checkout{PaymentSessionID: "cs_1"}))
	require.NoError(t, seq.MarkBookingCreateFailed(ctx, sess, domain.BookingOutcome{Status: domain.OutcomeFailed, Reason: "schedule change"}))

	snap := sess.Snapshot()
	assert.Equal(t, domain.StageBookingCreateFailed, snap.Stage)
	assert.True(t, snap.Stage.IsTerminalFailure())
	assert.Equal(t, "schedule change", snap.Checkout.Outcome.Reason)
}

func TestSequencer_PaymentNotTakenAfterSubmit(t *testing.T) {
	ctx := context.Background()
	seq, mgr, _ := setupSequencer()
	sess := newSessionAt(t, mgr, domain.StagePriceReconciled)
	outcome := domain.BookingOutcome{
		Status:           domain.OutcomePaymentFailed,
		PaymentSessionID: "cs_1",
		Reason:           "checkout session expired before payment",
	}

	assert.ErrorIs(t, seq.MarkPaymentNotTaken(ctx, sess, outcome), domain.ErrInvalidTransition)

	require.NoError(t, seq.MarkSubmitted(ctx, sess, session.Checkout{PaymentSessionID: "cs_1"}))
	require.NoError(t, seq.MarkPaymentNotTaken(ctx, sess, outcome))

	snap := sess.Snapshot()
	assert.Equal(t, domain.StagePaymentFailed, snap.Stage)
	assert.Equal(t, "cs_1", snap.Checkout.PaymentSessionID)
	assert.Equal(t, "checkout session expired before payment", snap.Checkout.FailureReason)
	assert.Equal(t, domain.OutcomePaymentFailed, snap.Checkout.Outcome.Status)

	require.NoError(t, seq.RetryPayment(ctx, sess))
	assert.Equal(t, domain.StagePassengerDetailsComplete, sess.Stage())
	assert.Nil(t, sess.Snapshot().Checkout)
}

func TestSequencer_RevisionBumpsOnEveryTransition(t *testing.T) {
	ctx := context.Background()
	seq, mgr, _ := setupSequencer()
	sess := newSessionAt(t, mgr, domain.StageSearch)
	require.NoError(t, sess.SetOfferForSlice(ctx, session.SliceOutbound, createTestOffer("off_1", "300.00")))

	rev := sess.Revision()
	_, err := seq.Advance(ctx, sess)
	require.NoError(t, err)
	assert.Greater(t, sess.Revision(), rev)

	rev = sess.Revision()
	_, err = seq.Retreat(ctx, sess)
	require.NoError(t, err)
	assert.Greater(t, sess.Revision(), rev)
}

func TestSequencer_Gate(t *testing.T) {
	seq, _, _ := setupSequencer()
	offer := createTestOffer("off_1", "300.00")

	tests := []struct {
		name    string
		target  domain.Stage
		snap    session.Snapshot
		wantErr error
	}{
		{"offer missing", domain.StageOfferSelected, session.Snapshot{}, domain.ErrStageIncomplete},
		{"offer present", domain.StageOfferSelected, session.Snapshot{Offers: session.OfferCache{Outbound: offer}}, nil},
		{"seats undecided", domain.StageSeatsChosenOrSkipped, session.Snapshot{}, domain.ErrStageIncomplete},
		{"seats skipped", domain.StageSeatsChosenOrSkipped, session.Snapshot{Progress: session.Progress{SeatsDecided: true, SeatsSkipped: true}}, nil},
		{"baggage undecided", domain.StageBaggageChosenOrSkipped, session.Snapshot{}, domain.ErrStageIncomplete},
		{"baggage decided", domain.StageBaggageChosenOrSkipped, session.Snapshot{Progress: session.Progress{BaggageDecided: true}}, nil},
		{"reconciliation pending", domain.StagePriceReconciled, session.Snapshot{Reconciliation: &session.Reconciliation{}}, domain.ErrStageIncomplete},
		{"reconciliation settled", domain.StagePriceReconciled, session.Snapshot{Reconciliation: &session.Reconciliation{Decided: true}}, nil},
		{"not submitted", domain.StageSubmitted, session.Snapshot{}, domain.ErrStageIncomplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := seq.Gate(tt.target, tt.snap)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
