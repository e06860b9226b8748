package http

import (
	"context"

	"github.com/travel-booking/flight-booking/internal/domain"
	"github.com/travel-booking/flight-booking/internal/session"
	"github.com/travel-booking/flight-booking/internal/usecase"
)

// mockUseCase is a configurable BookingUseCase. Unset funcs return an empty view.
type mockUseCase struct {
	createFunc         func(ctx context.Context) (*usecase.BookingView, error)
	getFunc            func(ctx context.Context, id string) (*usecase.BookingView, error)
	searchFunc         func(ctx context.Context, id string, criteria domain.SearchCriteria) ([]domain.Offer, error)
	selectOfferFunc    func(ctx context.Context, id string, slice int, offerID string) (*usecase.BookingView, error)
	seatMapFunc        func(ctx context.Context, id string) (*domain.SeatMap, error)
	selectSeatFunc     func(ctx context.Context, id string, req usecase.SeatRequest) (*usecase.BookingView, error)
	removeSeatFunc     func(ctx context.Context, id string, slice, passenger int) (*usecase.BookingView, error)
	baggageFunc        func(ctx context.Context, id string) (*domain.AncillaryCatalog, error)
	selectBaggageFunc  func(ctx context.Context, id string, req usecase.BaggageRequest) (*usecase.BookingView, error)
	removeBaggageFunc  func(ctx context.Context, id, passengerID string) (*usecase.BookingView, error)
	savePassengersFunc func(ctx context.Context, id string, records []domain.PassengerRecord) (usecase.ValidationResult, error)
	advanceFunc        func(ctx context.Context, id string) (*usecase.BookingView, error)
	reconcileFunc      func(ctx context.Context, id string) (*usecase.ReconcileOutcome, error)
	decideFunc         func(ctx context.Context, id string, d domain.ReconciliationDecision) (*usecase.ReconcileOutcome, error)
	checkoutFunc       func(ctx context.Context, id string) (*session.Checkout, error)
	confirmationFunc   func(ctx context.Context, id string) (*domain.BookingOutcome, error)
	stepErr            error
}

func emptyView(id string, stage domain.Stage) *usecase.BookingView {
	return &usecase.BookingView{Session: session.Snapshot{ID: id, Stage: stage}}
}

func (m *mockUseCase) CreateSession(ctx context.Context) (*usecase.BookingView, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx)
	}
	return emptyView("sess-1", domain.StageSearch), nil
}

func (m *mockUseCase) GetSession(ctx context.Context, id string) (*usecase.BookingView, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return emptyView(id, domain.StageSearch), nil
}

func (m *mockUseCase) Search(ctx context.Context, id string, criteria domain.SearchCriteria) ([]domain.Offer, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, id, criteria)
	}
	return []domain.Offer{}, nil
}

func (m *mockUseCase) SelectOffer(ctx context.Context, id string, slice int, offerID string) (*usecase.BookingView, error) {
	if m.selectOfferFunc != nil {
		return m.selectOfferFunc(ctx, id, slice, offerID)
	}
	return emptyView(id, domain.StageOfferSelected), nil
}

func (m *mockUseCase) SeatMap(ctx context.Context, id string) (*domain.SeatMap, error) {
	if m.seatMapFunc != nil {
		return m.seatMapFunc(ctx, id)
	}
	return &domain.SeatMap{}, nil
}

func (m *mockUseCase) SelectSeat(ctx context.Context, id string, req usecase.SeatRequest) (*usecase.BookingView, error) {
	if m.selectSeatFunc != nil {
		return m.selectSeatFunc(ctx, id, req)
	}
	return emptyView(id, domain.StageOfferSelected), nil
}

func (m *mockUseCase) RemoveSeat(ctx context.Context, id string, slice, passenger int) (*usecase.BookingView, error) {
	if m.removeSeatFunc != nil {
		return m.removeSeatFunc(ctx, id, slice, passenger)
	}
	return emptyView(id, domain.StageOfferSelected), nil
}

func (m *mockUseCase) SkipSeats(_ context.Context, id string) (*usecase.BookingView, error) {
	if m.stepErr != nil {
		return nil, m.stepErr
	}
	return emptyView(id, domain.StageSeatsChosenOrSkipped), nil
}

func (m *mockUseCase) BaggageOptions(ctx context.Context, id string) (*domain.AncillaryCatalog, error) {
	if m.baggageFunc != nil {
		return m.baggageFunc(ctx, id)
	}
	return &domain.AncillaryCatalog{}, nil
}

func (m *mockUseCase) SelectBaggage(ctx context.Context, id string, req usecase.BaggageRequest) (*usecase.BookingView, error) {
	if m.selectBaggageFunc != nil {
		return m.selectBaggageFunc(ctx, id, req)
	}
	return emptyView(id, domain.StageSeatsChosenOrSkipped), nil
}

func (m *mockUseCase) RemoveBaggage(ctx context.Context, id, passengerID string) (*usecase.BookingView, error) {
	if m.removeBaggageFunc != nil {
		return m.removeBaggageFunc(ctx, id, passengerID)
	}
	return emptyView(id, domain.StageSeatsChosenOrSkipped), nil
}

func (m *mockUseCase) SkipBaggage(_ context.Context, id string) (*usecase.BookingView, error) {
	if m.stepErr != nil {
		return nil, m.stepErr
	}
	return emptyView(id, domain.StageBaggageChosenOrSkipped), nil
}

func (m *mockUseCase) SavePassengers(ctx context.Context, id string, records []domain.PassengerRecord) (usecase.ValidationResult, error) {
	if m.savePassengersFunc != nil {
		return m.savePassengersFunc(ctx, id, records)
	}
	return usecase.ValidationResult{Errors: &domain.ValidationErrors{}}, nil
}

func (m *mockUseCase) Advance(ctx context.Context, id string) (*usecase.BookingView, error) {
	if m.advanceFunc != nil {
		return m.advanceFunc(ctx, id)
	}
	return emptyView(id, domain.StageOfferSelected), nil
}

func (m *mockUseCase) Retreat(_ context.Context, id string) (*usecase.BookingView, error) {
	if m.stepErr != nil {
		return nil, m.stepErr
	}
	return emptyView(id, domain.StageSearch), nil
}

func (m *mockUseCase) Reconcile(ctx context.Context, id string) (*usecase.ReconcileOutcome, error) {
	if m.reconcileFunc != nil {
		return m.reconcileFunc(ctx, id)
	}
	return &usecase.ReconcileOutcome{Stage: domain.StagePriceReconciled}, nil
}

func (m *mockUseCase) DecidePrice(ctx context.Context, id string, d domain.ReconciliationDecision) (*usecase.ReconcileOutcome, error) {
	if m.decideFunc != nil {
		return m.decideFunc(ctx, id, d)
	}
	return &usecase.ReconcileOutcome{Stage: domain.StagePriceReconciled}, nil
}

func (m *mockUseCase) Checkout(ctx context.Context, id string) (*session.Checkout, error) {
	if m.checkoutFunc != nil {
		return m.checkoutFunc(ctx, id)
	}
	return &session.Checkout{}, nil
}

func (m *mockUseCase) RetryPayment(_ context.Context, id string) (*usecase.BookingView, error) {
	if m.stepErr != nil {
		return nil, m.stepErr
	}
	return emptyView(id, domain.StagePassengerDetailsComplete), nil
}

func (m *mockUseCase) Confirmation(ctx context.Context, id string) (*domain.BookingOutcome, error) {
	if m.confirmationFunc != nil {
		return m.confirmationFunc(ctx, id)
	}
	return &domain.BookingOutcome{Status: domain.OutcomeConfirmed}, nil
}

var _ usecase.BookingUseCase = (*mockUseCase)(nil)
