// Package integration runs whole bookings through the HTTP API against
// in-memory session and booking stores and stateful provider and gateway doubles.
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	httpAdapter "github.com/travel-booking/flight-booking/internal/adapter/http"
	"github.com/travel-booking/flight-booking/internal/adapter/http/middleware"
	"github.com/travel-booking/flight-booking/internal/adapter/http/response"
	"github.com/travel-booking/flight-booking/internal/adapter/payment/stripe"
	"github.com/travel-booking/flight-booking/internal/adapter/provider/duffel"
	"github.com/travel-booking/flight-booking/internal/adapter/storage/memory"
	"github.com/travel-booking/flight-booking/internal/domain"
	"github.com/travel-booking/flight-booking/internal/infrastructure/logger"
	"github.com/travel-booking/flight-booking/internal/infrastructure/retry"
	"github.com/travel-booking/flight-booking/internal/infrastructure/timeutil"
	"github.com/travel-booking/flight-booking/internal/session"
	"github.com/travel-booking/flight-booking/internal/usecase"
	"github.com/travel-booking/flight-booking/test/mock"
	"github.com/travel-booking/flight-booking/test/testutil"
)

// Webhook secrets shared by the test server and the signing helpers.
const (
	PaymentWebhookSecret = "whsec_integration"
	OrderWebhookSecret   = "duffel_whsec_integration"
)

// TestServer wraps an Echo instance wired like cmd/server with test doubles at the edges.
type TestServer struct {
	Echo     *echo.Echo
	Provider *mock.Provider
	Gateway  *mock.Gateway
	Bookings *memory.BookingStore
	Sessions *session.MemoryStore
	Clock    *timeutil.MockClock
}

// NewTestServer creates a server over provider. Confirmation polling makes
// three attempts one second apart on the mock clock.
func NewTestServer(provider *mock.Provider) *TestServer {
	ts := &TestServer{
		Echo:     echo.New(),
		Provider: provider,
		Gateway:  mock.NewGateway(),
		Bookings: memory.NewBookingStore(),
		Sessions: session.NewMemoryStore(),
		Clock:    timeutil.NewMockClock(mock.FixtureNow),
	}
	ts.Echo.HideBanner = true
	ts.Echo.HidePort = true

	log := logger.Nop()
	svc := usecase.NewBookingService(usecase.Dependencies{
		Sessions: session.NewManager(ts.Sessions),
		Provider: ts.Provider,
		Gateway:  ts.Gateway,
		Bookings: ts.Bookings,
		Clock:    ts.Clock,
		Logger:   log,
	}, &usecase.Config{
		ProviderCallTimeout:   2 * time.Second,
		ReconciliationTimeout: 2 * time.Second,
		PollPolicy:            retry.FixedPolicy(time.Second, 3),
	})

	webhooks := httpAdapter.NewWebhookHandler(ts.Bookings,
		httpAdapter.WebhookSource{
			Name:            "stripe",
			SignatureHeader: stripe.SignatureHeader,
			Parse: func(payload []byte, signature string, now time.Time) (*domain.BookingRecord, error) {
				return stripe.ParseWebhook(PaymentWebhookSecret, payload, signature, now)
			},
		},
		httpAdapter.WebhookSource{
			Name:            "duffel",
			SignatureHeader: duffel.SignatureHeader,
			Parse: func(payload []byte, signature string, now time.Time) (*domain.BookingRecord, error) {
				return duffel.ParseOrderEvent(OrderWebhookSecret, payload, signature, now)
			},
		},
		ts.Clock, log)

	middleware.Setup(ts.Echo, log)
	httpAdapter.RegisterRoutes(ts.Echo, httpAdapter.NewBookingHandler(svc, log), webhooks, log)
	return ts
}

// DefaultProvider serves off_1 at 300.00 and off_2 at 250.00 with the sample seat map and bag.
func DefaultProvider() *mock.Provider {
	return mock.NewProvider("duffel").
		WithOffers(mock.SampleOffer("off_1", "300.00"), mock.SampleOffer("off_2", "250.00")).
		WithSeatMap(mock.SampleSeatMap()).
		WithCatalog(mock.SampleCatalog())
}

// Response is a recorded HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Envelope is the decoded response.Response with a raw payload.
type Envelope struct {
	Success bool                  `json:"success"`
	Data    json.RawMessage       `json:"data"`
	Error   *response.ErrorDetail `json:"error"`
}

// Do sends a JSON request. A nil body sends no content.
func (ts *TestServer) Do(method, path string, body interface{}) Response {
	var raw []byte
	if body != nil {
		raw, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	return ts.serve(req)
}

// Webhook posts payload to /webhooks/<kind> signed with secret at the mock clock's time.
func (ts *TestServer) Webhook(kind, header, secret string, payload []byte) Response {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/"+kind, bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(header, testutil.SignWebhook(secret, payload, ts.Clock.Now()))
	return ts.serve(req)
}

func (ts *TestServer) serve(req *http.Request) Response {
	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, req)
	return Response{Code: rec.Code, Body: rec.Body.Bytes(), Headers: rec.Header()}
}

// Decode parses the envelope and, when out is non-nil, its data.
func (r Response) Decode(t *testing.T, out interface{}) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(r.Body, &env), string(r.Body))
	if out != nil && len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, out), string(env.Data))
	}
	return env
}

// ErrorCode returns the envelope's error code or "".
func (r Response) ErrorCode(t *testing.T) string {
	t.Helper()
	env := r.Decode(t, nil)
	if env.Error == nil {
		return ""
	}
	return env.Error.Code
}

// View is the subset of a booking view the scenarios inspect.
type View struct {
	Session struct {
		ID       string       `json:"id"`
		Stage    domain.Stage `json:"stage"`
		Revision int64        `json:"revision"`
	} `json:"session"`
	Totals *struct {
		Currency      string          `json:"currency"`
		OfferTotal    decimal.Decimal `json:"offerTotal"`
		ServicesTotal decimal.Decimal `json:"servicesTotal"`
		GrandTotal    decimal.Decimal `json:"grandTotal"`
	} `json:"totals"`
	CanAdvance bool `json:"canAdvance"`
}

// Booking drives one session through the API.
type Booking struct {
	t  *testing.T
	ts *TestServer
	ID string
}

// NewBooking creates a session.
func (ts *TestServer) NewBooking(t *testing.T) *Booking {
	t.Helper()
	resp := ts.Do(http.MethodPost, "/api/v1/bookings", nil)
	require.Equal(t, http.StatusCreated, resp.Code, string(resp.Body))
	var v View
	resp.Decode(t, &v)
	require.NotEmpty(t, v.Session.ID)
	return &Booking{t: t, ts: ts, ID: v.Session.ID}
}

func (b *Booking) path(suffix string) string {
	return fmt.Sprintf("/api/v1/bookings/%s%s", b.ID, suffix)
}

// Call sends a request under the booking's path.
func (b *Booking) Call(method, suffix string, body interface{}) Response {
	return b.ts.Do(method, b.path(suffix), body)
}

// MustCall sends a request and requires status.
func (b *Booking) MustCall(status int, method, suffix string, body interface{}) Response {
	b.t.Helper()
	resp := b.Call(method, suffix, body)
	require.Equal(b.t, status, resp.Code, "%s %s: %s", method, suffix, string(resp.Body))
	return resp
}

// View fetches the booking.
func (b *Booking) View() View {
	b.t.Helper()
	var v View
	b.MustCall(http.StatusOK, http.MethodGet, "", nil).Decode(b.t, &v)
	return v
}

// Advance moves to the next stage and requires want.
func (b *Booking) Advance(want domain.Stage) View {
	b.t.Helper()
	var v View
	b.MustCall(http.StatusOK, http.MethodPost, "/advance", nil).Decode(b.t, &v)
	require.Equal(b.t, want, v.Session.Stage)
	return v
}

// RoundTripSearch is a LAX-JFK-LAX search for one adult on the fixture dates.
func RoundTripSearch() map[string]interface{} {
	return map[string]interface{}{
		"origin":        "LAX",
		"destination":   "JFK",
		"departureDate": "2026-03-20",
		"returnDate":    "2026-03-27",
		"passengers":    map[string]int{"adults": 1},
	}
}

// ToSeats searches, selects off_1 outbound and off_2 inbound and advances to seat selection.
func (b *Booking) ToSeats() {
	b.t.Helper()
	b.MustCall(http.StatusOK, http.MethodPost, "/search", RoundTripSearch())
	b.MustCall(http.StatusOK, http.MethodPut, "/slices/0/offer", map[string]string{"offerId": "off_1"})
	b.MustCall(http.StatusOK, http.MethodPut, "/slices/1/offer", map[string]string{"offerId": "off_2"})
	b.Advance(domain.StageOfferSelected)
}

// ToPassengers continues from ToSeats, skipping seats and baggage.
func (b *Booking) ToPassengers() {
	b.t.Helper()
	b.ToSeats()
	b.MustCall(http.StatusOK, http.MethodPost, "/seats/skip", nil)
	b.Advance(domain.StageSeatsChosenOrSkipped)
	b.MustCall(http.StatusOK, http.MethodPost, "/baggage/skip", nil)
	b.Advance(domain.StageBaggageChosenOrSkipped)
}

// FillPassengers saves a valid primary adult and advances past passenger details.
func (b *Booking) FillPassengers() {
	b.t.Helper()
	b.MustCall(http.StatusOK, http.MethodPut, "/passengers", map[string]interface{}{
		"passengers": []map[string]string{PrimaryAdult()},
	})
	b.Advance(domain.StagePassengerDetailsComplete)
}

// PrimaryAdult is a complete passenger form for pas_1.
func PrimaryAdult() map[string]string {
	return map[string]string{
		"id":         "pas_1",
		"type":       "adult",
		"title":      "mr",
		"givenName":  "Tony",
		"familyName": "Stark",
		"gender":     "m",
		"bornOn":     "1980-07-24",
		"email":      "tony@example.com",
		"phone":      "+1 415 555 2671",
	}
}

// Checkout reconciles at an unchanged price and submits, returning the payment session id.
func (b *Booking) Checkout() string {
	b.t.Helper()
	b.MustCall(http.StatusOK, http.MethodPost, "/reconcile", nil)
	var out struct {
		PaymentSessionID string `json:"paymentSessionId"`
	}
	b.MustCall(http.StatusOK, http.MethodPost, "/checkout", nil).Decode(b.t, &out)
	require.NotEmpty(b.t, out.PaymentSessionID)
	return out.PaymentSessionID
}
