package mock

import (
	"context"
	"fmt"
	"sync"

	"github.com/travel-booking/flight-booking/internal/domain"
)

// Gateway is an in-memory domain.PaymentGateway that numbers its checkout sessions.
type Gateway struct {
	mu          sync.Mutex
	err         error
	submissions []domain.BookingSubmission
}

// NewGateway creates a gateway that accepts every submission.
func NewGateway() *Gateway {
	return &Gateway{}
}

// FailWith makes subsequent checkouts fail with err. A nil err restores success.
func (g *Gateway) FailWith(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.err = err
}

// CreateCheckoutSession records the submission and returns cs_test_<n>.
func (g *Gateway) CreateCheckoutSession(ctx context.Context, submission domain.BookingSubmission) (*domain.CheckoutSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return nil, g.err
	}
	g.submissions = append(g.submissions, submission)
	id := fmt.Sprintf("cs_test_%d", len(g.submissions))
	return &domain.CheckoutSession{SessionID: id, RedirectURL: "https://checkout.example.com/pay/" + id}, nil
}

// Submissions returns every accepted submission in order.
func (g *Gateway) Submissions() []domain.BookingSubmission {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]domain.BookingSubmission, len(g.submissions))
	copy(out, g.submissions)
	return out
}

var _ domain.PaymentGateway = (*Gateway)(nil)
