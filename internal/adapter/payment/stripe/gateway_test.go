package stripe

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-booking/flight-booking/internal/domain"
	"github.com/travel-booking/flight-booking/internal/infrastructure/webhook"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testSubmission() domain.BookingSubmission {
	return domain.BookingSubmission{
		OfferID:    "off_1",
		Passengers: []domain.SubmissionPassenger{{ID: "pas_1", Type: domain.PassengerAdult}},
		Services: []domain.Service{
			{ID: "ase_12A", Type: domain.ServiceSeat, Amount: dec("12.35"), Quantity: 1},
			{ID: "bag_1", Type: domain.ServiceBaggage, Amount: dec("40.27"), Quantity: 1},
		},
		TotalAmount: dec("352.62"),
		Currency:    "USD",
	}
}

func newTestGateway(t *testing.T, handler http.HandlerFunc) *Gateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewGateway(Config{
		BaseURL:    server.URL,
		SecretKey:  "sk_test_123",
		SuccessURL: "https://example.com/done?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  "https://example.com/checkout",
		Timeout:    2 * time.Second,
	}, nil)
}

func TestGateway_ImplementsInterface(t *testing.T) {
	var _ domain.PaymentGateway = (*Gateway)(nil)
}

func TestGateway_CreateCheckoutSession(t *testing.T) {
	var form url.Values
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		user, _, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "sk_test_123", user)

		require.NoError(t, r.ParseForm())
		form = r.PostForm

		_, _ = io.WriteString(w, `{"id":"cs_test_1","url":"https://checkout.stripe.com/c/pay/cs_test_1","status":"open","payment_status":"unpaid"}`)
	})

	session, err := gateway.CreateCheckoutSession(context.Background(), testSubmission())

	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", session.SessionID)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_1", session.RedirectURL)

	assert.Equal(t, "payment", form.Get("mode"))
	assert.Equal(t, "https://example.com/done?session_id={CHECKOUT_SESSION_ID}", form.Get("success_url"))
	assert.Equal(t, "off_1", form.Get("client_reference_id"))
	assert.Equal(t, "off_1", form.Get("metadata[offer_id]"))
	assert.Equal(t, "1", form.Get("metadata[passenger_count]"))
	assert.Equal(t, "ase_12A,bag_1", form.Get("metadata[service_ids]"))
	assert.Equal(t, "352.62", form.Get("metadata[total_amount]"))

	// Fare line is the total minus services
	assert.Equal(t, "30000", form.Get("line_items[0][price_data][unit_amount]"))
	assert.Equal(t, "usd", form.Get("line_items[0][price_data][currency]"))
	assert.Equal(t, "Flight off_1", form.Get("line_items[0][price_data][product_data][name]"))
	assert.Equal(t, "1", form.Get("line_items[0][quantity]"))
	assert.Equal(t, "1235", form.Get("line_items[1][price_data][unit_amount]"))
	assert.Equal(t, "Seat ase_12A", form.Get("line_items[1][price_data][product_data][name]"))
	assert.Equal(t, "4027", form.Get("line_items[2][price_data][unit_amount]"))
	assert.Equal(t, "Extra bag bag_1", form.Get("line_items[2][price_data][product_data][name]"))
}

func TestGateway_CreateCheckoutSession_Rejected(t *testing.T) {
	calls := 0
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = io.WriteString(w, `{"error":{"type":"card_error","code":"card_declined","message":"Your card was declined."}}`)
	})

	session, err := gateway.CreateCheckoutSession(context.Background(), testSubmission())

	assert.Nil(t, session)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Your card was declined.")
	var providerErr *domain.ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, "stripe", providerErr.Provider)
	assert.False(t, providerErr.Retryable)
	assert.Equal(t, 1, calls, "checkout creation is never retried")
}

func TestGateway_CreateCheckoutSession_TransientFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"server error", http.StatusInternalServerError},
		{"bad gateway", http.StatusBadGateway},
		{"rate limited", http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, `{"error":{"type":"api_error","message":"Try again later."}}`)
			})

			_, err := gateway.CreateCheckoutSession(context.Background(), testSubmission())

			require.Error(t, err)
			assert.True(t, domain.IsRetryable(err))
			assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
			assert.Equal(t, domain.KindProviderUnavailable, domain.Classify(err))
			assert.Equal(t, 1, calls, "checkout creation is never retried")
		})
	}
}

func TestGateway_CreateCheckoutSession_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()
	gateway := NewGateway(Config{BaseURL: server.URL, SecretKey: "sk_test_123", Timeout: time.Second}, nil)

	_, err := gateway.CreateCheckoutSession(context.Background(), testSubmission())

	require.Error(t, err)
	assert.True(t, domain.IsRetryable(err))
	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
}

func TestGateway_CreateCheckoutSession_IncompleteResponse(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"id":"cs_test_1"}`)
	})

	_, err := gateway.CreateCheckoutSession(context.Background(), testSubmission())

	assert.Error(t, err)
}

func TestBuildForm(t *testing.T) {
	t.Run("zero decimal currency", func(t *testing.T) {
		sub := domain.BookingSubmission{OfferID: "off_jp", TotalAmount: dec("45000"), Currency: "jpy"}

		form, err := buildForm(Config{}, sub)

		require.NoError(t, err)
		assert.Equal(t, "45000", form.Get("line_items[0][price_data][unit_amount]"))
		assert.Equal(t, "jpy", form.Get("line_items[0][price_data][currency]"))
	})

	t.Run("service quantity", func(t *testing.T) {
		sub := domain.BookingSubmission{
			OfferID:     "off_1",
			Services:    []domain.Service{{ID: "bag_1", Type: domain.ServiceBaggage, Amount: dec("20"), Quantity: 2}},
			TotalAmount: dec("140"),
			Currency:    "EUR",
		}

		form, err := buildForm(Config{}, sub)

		require.NoError(t, err)
		assert.Equal(t, "10000", form.Get("line_items[0][price_data][unit_amount]"))
		assert.Equal(t, "2", form.Get("line_items[1][quantity]"))
	})

	t.Run("services above total", func(t *testing.T) {
		sub := domain.BookingSubmission{
			OfferID:     "off_1",
			Services:    []domain.Service{{ID: "bag_1", Amount: dec("50"), Quantity: 1}},
			TotalAmount: dec("10"),
			Currency:    "USD",
		}

		_, err := buildForm(Config{}, sub)

		assert.True(t, domain.IsInvalidRequest(err))
	})

	t.Run("missing currency", func(t *testing.T) {
		_, err := buildForm(Config{}, domain.BookingSubmission{OfferID: "off_1", TotalAmount: dec("10")})

		assert.True(t, domain.IsInvalidRequest(err))
	})
}

func TestParseWebhook(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	sign := func(payload string) string {
		return webhook.Sign("whsec_test", []byte(payload), now)
	}

	tests := []struct {
		name       string
		payload    string
		signature  string
		wantStatus domain.BookingStatus
		wantErr    func(error) bool
	}{
		{
			name:       "completed checkout leaves booking pending",
			payload:    `{"id":"evt_1","type":"checkout.session.completed","data":{"object":{"id":"cs_test_1","payment_status":"paid"}}}`,
			wantStatus: domain.BookingPending,
		},
		{
			name:       "async failure records an unpaid checkout",
			payload:    `{"id":"evt_2","type":"checkout.session.async_payment_failed","data":{"object":{"id":"cs_test_1","payment_status":"unpaid"}}}`,
			wantStatus: domain.BookingPaymentFailed,
		},
		{
			name:       "expired session records an unpaid checkout",
			payload:    `{"id":"evt_3","type":"checkout.session.expired","data":{"object":{"id":"cs_test_1","payment_status":"unpaid"}}}`,
			wantStatus: domain.BookingPaymentFailed,
		},
		{
			name:    "unrelated event",
			payload: `{"id":"evt_4","type":"customer.created","data":{"object":{"id":"cus_1"}}}`,
			wantErr: func(err error) bool { return assert.ErrorIs(t, err, ErrIgnoredEvent) },
		},
		{
			name:      "bad signature",
			payload:   `{"id":"evt_5","type":"checkout.session.completed","data":{"object":{"id":"cs_test_1"}}}`,
			signature: "t=1772359200,v1=00",
			wantErr:   domain.IsInvalidRequest,
		},
		{
			name:    "missing session id",
			payload: `{"id":"evt_6","type":"checkout.session.completed","data":{"object":{}}}`,
			wantErr: domain.IsInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signature := tt.signature
			if signature == "" {
				signature = sign(tt.payload)
			}

			record, err := ParseWebhook("whsec_test", []byte(tt.payload), signature, now)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "cs_test_1", record.SessionID)
			assert.Equal(t, tt.wantStatus, record.Status)
			assert.Equal(t, now, record.UpdatedAt)
		})
	}
}
