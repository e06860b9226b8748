package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/travel-booking/flight-booking/internal/domain"
)

// Snapshot is an immutable copy of a session's accumulated state.
type Snapshot struct {
	ID             string                   `json:"id"`
	Stage          domain.Stage             `json:"stage"`
	Revision       int64                    `json:"revision"`
	Search         *domain.SearchCriteria   `json:"search,omitempty"`
	Offers         OfferCache               `json:"offers"`
	Seats          domain.SeatAssignments   `json:"seats"`
	Baggage        domain.BaggageSelections `json:"baggage"`
	Passengers     []domain.PassengerRecord `json:"passengers"`
	Progress       Progress                 `json:"progress"`
	Reconciliation *Reconciliation          `json:"reconciliation,omitempty"`
	Checkout       *Checkout                `json:"checkout,omitempty"`
}

// PrimaryOffer returns the offer whose total is the bundled itinerary price.
func (s Snapshot) PrimaryOffer() *domain.Offer {
	return s.Offers.Primary()
}

// SliceCount returns the number of itinerary slices that need an offer.
func (s Snapshot) SliceCount() int {
	if s.Search != nil && len(s.Search.Slices) > 0 {
		return len(s.Search.Slices)
	}
	return 1
}

// BookingSession is the accumulator for one traveler's booking flow.
// Every mutation is written through to the Store before it returns.
type BookingSession struct {
	id    string
	store Store

	stage          StageState
	search         *domain.SearchCriteria
	offers         OfferCache
	seats          domain.SeatAssignments
	baggage        domain.BaggageSelections
	passengers     []domain.PassengerRecord
	progress       Progress
	reconciliation *Reconciliation
	checkout       *Checkout
}

func newBookingSession(id string, store Store) *BookingSession {
	return &BookingSession{
		id:      id,
		store:   store,
		stage:   StageState{Stage: domain.StageSearch},
		seats:   domain.SeatAssignments{},
		baggage: domain.BaggageSelections{},
	}
}

// ID returns the session id.
func (s *BookingSession) ID() string { return s.id }

// Stage returns the current pipeline stage.
func (s *BookingSession) Stage() domain.Stage { return s.stage.Stage }

// Revision returns the current revision.
func (s *BookingSession) Revision() int64 { return s.stage.Revision }

// Snapshot returns a deep copy of the accumulated state.
func (s *BookingSession) Snapshot() Snapshot {
	snap := Snapshot{
		ID:         s.id,
		Stage:      s.stage.Stage,
		Revision:   s.stage.Revision,
		Offers:     s.offers,
		Seats:      s.seats.Clone(),
		Baggage:    s.baggage.Clone(),
		Passengers: append([]domain.PassengerRecord(nil), s.passengers...),
		Progress:   s.progress,
	}
	if s.search != nil {
		search := *s.search
		search.Slices = append([]domain.SliceRequest(nil), s.search.Slices...)
		snap.Search = &search
	}
	if s.reconciliation != nil {
		r := *s.reconciliation
		snap.Reconciliation = &r
	}
	if s.checkout != nil {
		c := *s.checkout
		snap.Checkout = &c
	}
	return snap
}

// StartSearch records new search criteria and discards every selection.
func (s *BookingSession) StartSearch(ctx context.Context, criteria domain.SearchCriteria) error {
	s.search = &criteria
	s.resetSelections()
	s.passengers = nil
	s.stage = StageState{Stage: domain.StageSearch, Revision: s.stage.Revision + 1}
	return s.persist(ctx)
}

// SetOfferForSlice stores the chosen offer for the slice. Re-selecting the same offer id
// replaces the stored copy. A different primary offer discards seat and baggage
// selections because they reference services of the old offer.
func (s *BookingSession) SetOfferForSlice(ctx context.Context, sliceIndex int, offer *domain.Offer) error {
	if s.search != nil && sliceIndex >= len(s.search.Slices) {
		return domain.WrapInvalidRequest("slice index %d out of range for a %d-slice itinerary", sliceIndex, len(s.search.Slices))
	}

	changed, err := s.offers.Set(sliceIndex, offer)
	if err != nil {
		return err
	}
	if changed && sliceIndex == SliceOutbound {
		s.seats = domain.SeatAssignments{}
		s.baggage = domain.BaggageSelections{}
		s.progress = Progress{}
		s.reconciliation = nil
		s.stage.Revision++
	}
	return s.persist(ctx)
}

// SetSeat assigns a seat to a passenger on a slice. It fails with a *domain.SeatConflictError
// when another passenger holds the designator on that slice; state is then unchanged.
func (s *BookingSession) SetSeat(ctx context.Context, sliceIndex, passengerIndex int, seat domain.SelectedSeat) error {
	if seat.Designator == "" {
		return domain.WrapInvalidRequest("seat designator is required")
	}
	if holder, ok := s.seats.HolderOf(sliceIndex, seat.Designator); ok && holder != passengerIndex {
		return &domain.SeatConflictError{
			SliceIndex:     sliceIndex,
			Designator:     seat.Designator,
			HeldByIndex:    holder,
			PassengerIndex: passengerIndex,
		}
	}

	if s.seats[sliceIndex] == nil {
		s.seats[sliceIndex] = map[int]domain.SelectedSeat{}
	}
	s.seats[sliceIndex][passengerIndex] = seat
	s.progress.SeatsDecided = true
	s.progress.SeatsSkipped = false
	return s.persist(ctx)
}

// RemoveSeat drops the passenger's seat on the slice. Removing a missing seat is a no-op.
func (s *BookingSession) RemoveSeat(ctx context.Context, sliceIndex, passengerIndex int) error {
	bySlice := s.seats[sliceIndex]
	if _, ok := bySlice[passengerIndex]; !ok {
		return nil
	}
	delete(bySlice, passengerIndex)
	if len(bySlice) == 0 {
		delete(s.seats, sliceIndex)
	}
	s.progress.SeatsDecided = true
	return s.persist(ctx)
}

// SkipSeats clears every seat as a batch and marks all flights as seat-less.
func (s *BookingSession) SkipSeats(ctx context.Context) error {
	s.seats = domain.SeatAssignments{}
	s.progress.SeatsDecided = true
	s.progress.SeatsSkipped = true
	return s.persist(ctx)
}

// SetBaggage stores the bag for the passenger, overwriting any previous selection.
func (s *BookingSession) SetBaggage(ctx context.Context, passengerID string, item domain.SelectedBaggageItem) error {
	if passengerID == "" {
		return domain.WrapInvalidRequest("passenger id is required")
	}
	item.PassengerID = passengerID
	s.baggage[passengerID] = item
	s.progress.BaggageDecided = true
	s.progress.BaggageSkipped = false
	return s.persist(ctx)
}

// RemoveBaggage drops the passenger's bag. Removing a missing bag is a no-op.
func (s *BookingSession) RemoveBaggage(ctx context.Context, passengerID string) error {
	if _, ok := s.baggage[passengerID]; !ok {
		return nil
	}
	delete(s.baggage, passengerID)
	s.progress.BaggageDecided = true
	return s.persist(ctx)
}

// SkipBaggage clears every bag and marks the trip as bag-less.
func (s *BookingSession) SkipBaggage(ctx context.Context) error {
	s.baggage = domain.BaggageSelections{}
	s.progress.BaggageDecided = true
	s.progress.BaggageSkipped = true
	return s.persist(ctx)
}

// SetPassengers replaces the passenger form state.
func (s *BookingSession) SetPassengers(ctx context.Context, records []domain.PassengerRecord) error {
	s.passengers = append([]domain.PassengerRecord(nil), records...)
	return s.persist(ctx)
}

// SetStage moves the session to stage and bumps the revision.
func (s *BookingSession) SetStage(ctx context.Context, stage domain.Stage) error {
	if !stage.IsValid() {
		return fmt.Errorf("unknown stage %q", stage)
	}
	s.stage = StageState{Stage: stage, Revision: s.stage.Revision + 1}
	return s.persist(ctx)
}

// SetReconciliation records the reconciliation outcome; nil clears it.
func (s *BookingSession) SetReconciliation(ctx context.Context, r *Reconciliation) error {
	s.reconciliation = r
	return s.persist(ctx)
}

// SetCheckout records the checkout handoff; nil clears it.
func (s *BookingSession) SetCheckout(ctx context.Context, c *Checkout) error {
	s.checkout = c
	return s.persist(ctx)
}

// ClearSelections discards the cached offers and every selection tied to them.
// Search criteria and passenger form state are kept.
func (s *BookingSession) ClearSelections(ctx context.Context) error {
	s.resetSelections()
	s.stage.Revision++
	return s.persist(ctx)
}

func (s *BookingSession) resetSelections() {
	s.offers.Clear()
	s.seats = domain.SeatAssignments{}
	s.baggage = domain.BaggageSelections{}
	s.progress = Progress{}
	s.reconciliation = nil
	s.checkout = nil
}

// persist writes the full state under every key.
func (s *BookingSession) persist(ctx context.Context) error {
	values := map[string]any{
		KeyBookingStage:      s.stage,
		KeySearchCriteria:    s.search,
		KeySelectedOutbound:  s.offers.Outbound,
		KeySelectedReturn:    s.offers.Return,
		KeySelectedSeats:     s.seats,
		KeySelectedBaggage:   s.baggage,
		KeySelectionProgress: s.progress,
		KeyPassengerData:     s.passengers,
		KeyReconciliation:    s.reconciliation,
		KeyCheckout:          s.checkout,
	}

	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		data, err := json.Marshal(values[k])
		if err != nil {
			return fmt.Errorf("encode %s: %w", k, err)
		}
		entries = append(entries, Entry{Key: k, Value: data})
	}

	if err := s.store.Save(ctx, s.id, entries); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// restore decodes persisted values into the session.
func (s *BookingSession) restore(values map[string][]byte) error {
	targets := map[string]any{
		KeyBookingStage:      &s.stage,
		KeySearchCriteria:    &s.search,
		KeySelectedOutbound:  &s.offers.Outbound,
		KeySelectedReturn:    &s.offers.Return,
		KeySelectedSeats:     &s.seats,
		KeySelectedBaggage:   &s.baggage,
		KeySelectionProgress: &s.progress,
		KeyPassengerData:     &s.passengers,
		KeyReconciliation:    &s.reconciliation,
		KeyCheckout:          &s.checkout,
	}

	for _, k := range keys {
		data, ok := values[k]
		if !ok {
			continue
		}
		if err := json.Unmarshal(data, targets[k]); err != nil {
			return fmt.Errorf("decode %s: %w", k, err)
		}
	}

	if s.seats == nil {
		s.seats = domain.SeatAssignments{}
	}
	if s.baggage == nil {
		s.baggage = domain.BaggageSelections{}
	}
	if !s.stage.Stage.IsValid() {
		return fmt.Errorf("decode %s: unknown stage %q", KeyBookingStage, s.stage.Stage)
	}
	return nil
}

// Manager creates and loads booking sessions against a Store.
type Manager struct {
	store Store
	newID func() string
}

// NewManager creates a Manager.
func NewManager(store Store) *Manager {
	return &Manager{store: store, newID: uuid.NewString}
}

// Create starts a new session at the Search stage.
func (m *Manager) Create(ctx context.Context) (*BookingSession, error) {
	s := newBookingSession(m.newID(), m.store)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Load restores a session. Unknown ids return domain.ErrSessionNotFound.
func (m *Manager) Load(ctx context.Context, id string) (*BookingSession, error) {
	if id == "" {
		return nil, domain.ErrSessionNotFound
	}

	values, err := m.store.Load(ctx, id, keys)
	if errors.Is(err, ErrNotFound) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	if _, ok := values[KeyBookingStage]; !ok {
		return nil, domain.ErrSessionNotFound
	}

	s := newBookingSession(id, m.store)
	if err := s.restore(values); err != nil {
		return nil, err
	}
	return s, nil
}
