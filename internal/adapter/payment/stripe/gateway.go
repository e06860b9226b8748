// Package stripe implements domain.PaymentGateway with Stripe Checkout Sessions
// and parses the checkout webhooks that feed the booking status store.
package stripe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/shopspring/decimal"

	"github.com/travel-booking/flight-booking/internal/domain"
	"github.com/travel-booking/flight-booking/internal/infrastructure/logger"
)

// GatewayName identifies the gateway in errors and logs.
const GatewayName = "stripe"

// Currencies Stripe charges without minor units.
var zeroDecimalCurrencies = map[string]bool{
	"BIF": true, "CLP": true, "DJF": true, "GNF": true, "JPY": true, "KMF": true, "KRW": true, "MGA": true,
	"PYG": true, "RWF": true, "UGX": true, "VND": true, "VUV": true, "XAF": true, "XOF": true, "XPF": true,
}

// Config holds Stripe client settings.
type Config struct {
	BaseURL    string
	SecretKey  string
	SuccessURL string
	CancelURL  string
	Timeout    time.Duration
}

// Gateway creates hosted checkout sessions.
type Gateway struct {
	cfg    Config
	client *http.Client
	log    *logger.Logger
}

// NewGateway creates a Stripe gateway.
func NewGateway(cfg Config, log *logger.Logger) *Gateway {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Gateway{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    logger.OrNop(log).WithComponent("stripe"),
	}
}

// CreateCheckoutSession registers the submission as a one-off payment.
// Checkout creation is not retried; a duplicate session could charge twice.
func (g *Gateway) CreateCheckoutSession(ctx context.Context, submission domain.BookingSubmission) (*domain.CheckoutSession, error) {
	form, err := buildForm(g.cfg, submission)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+"/v1/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.SetBasicAuth(g.cfg.SecretKey, "")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, domain.NewRetryableProviderError(GatewayName, fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewProviderError(GatewayName, fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode >= 300 {
		var body errorResponse
		_ = json.Unmarshal(raw, &body)
		message := body.Error.Message
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		g.log.Warn().
			Int("status", resp.StatusCode).
			Str("type", body.Error.Type).
			Str("code", body.Error.Code).
			Str("offer_id", submission.OfferID).
			Msg("checkout session rejected")
		if isTransientStatus(resp.StatusCode) {
			return nil, domain.NewRetryableProviderError(GatewayName,
				fmt.Errorf("%w: status %d: %s", domain.ErrProviderUnavailable, resp.StatusCode, message))
		}
		return nil, domain.NewProviderError(GatewayName, fmt.Errorf("status %d: %s", resp.StatusCode, message))
	}

	var session checkoutSessionResponse
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, domain.NewProviderError(GatewayName, fmt.Errorf("decode response: %w", err))
	}
	if session.ID == "" || session.URL == "" {
		return nil, domain.NewProviderError(GatewayName, errors.New("checkout session without id or url"))
	}

	g.log.Info().
		Str("payment_session_id", session.ID).
		Str("offer_id", submission.OfferID).
		Str("total", submission.TotalAmount.StringFixed(2)).
		Str("currency", submission.Currency).
		Msg("checkout session created")

	return &domain.CheckoutSession{SessionID: session.ID, RedirectURL: session.URL}, nil
}

// buildForm encodes the submission as line items: the offer fare followed by one
// line per service. The items sum to submission.TotalAmount.
func buildForm(cfg Config, submission domain.BookingSubmission) (url.Values, error) {
	currency := strings.ToUpper(submission.Currency)
	if currency == "" {
		return nil, domain.WrapInvalidRequest("submission currency is required")
	}

	servicesTotal := decimal.Zero
	serviceIDs := make([]string, 0, len(submission.Services))
	for _, svc := range submission.Services {
		servicesTotal = servicesTotal.Add(svc.Subtotal())
		serviceIDs = append(serviceIDs, svc.ID)
	}
	fare := submission.TotalAmount.Sub(servicesTotal)
	if fare.IsNegative() {
		return nil, domain.WrapInvalidRequest("services exceed the submission total")
	}

	form, err := query.Values(checkoutForm{
		Mode:              "payment",
		SuccessURL:        cfg.SuccessURL,
		CancelURL:         cfg.CancelURL,
		ClientReferenceID: submission.OfferID,
		Metadata: checkoutMetadata{
			OfferID:        submission.OfferID,
			PassengerCount: len(submission.Passengers),
			ServiceIDs:     strings.Join(serviceIDs, ","),
			TotalAmount:    submission.TotalAmount.StringFixed(2),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("encode checkout form: %w", err)
	}

	items := []lineItem{{
		Quantity:  1,
		PriceData: newPriceData(currency, fare, "Flight "+submission.OfferID),
	}}
	for _, svc := range submission.Services {
		items = append(items, lineItem{
			Quantity:  svc.Quantity,
			PriceData: newPriceData(currency, svc.Amount, serviceLabel(svc)),
		})
	}

	for i, item := range items {
		v, err := query.Values(item)
		if err != nil {
			return nil, fmt.Errorf("encode line item %d: %w", i, err)
		}
		nest(form, "line_items["+strconv.Itoa(i)+"]", v)
	}

	return form, nil
}

func newPriceData(currency string, amount decimal.Decimal, name string) priceData {
	return priceData{
		Currency:    strings.ToLower(currency),
		UnitAmount:  minorUnits(amount, currency),
		ProductData: productData{Name: name},
	}
}

func serviceLabel(svc domain.Service) string {
	switch svc.Type {
	case domain.ServiceSeat:
		return "Seat " + svc.ID
	case domain.ServiceBaggage:
		return "Extra bag " + svc.ID
	default:
		return string(svc.Type) + " " + svc.ID
	}
}

// minorUnits converts amount to the integer unit Stripe charges in.
func minorUnits(amount decimal.Decimal, currency string) int64 {
	if zeroDecimalCurrencies[currency] {
		return amount.Round(0).IntPart()
	}
	return amount.Shift(2).Round(0).IntPart()
}

// nest copies src into dst with every key moved under prefix,
// so "price_data[currency]" becomes "<prefix>[price_data][currency]".
func nest(dst url.Values, prefix string, src url.Values) {
	for key, values := range src {
		head, tail, _ := strings.Cut(key, "[")
		if tail != "" {
			tail = "[" + tail
		}
		dst[prefix+"["+head+"]"+tail] = values
	}
}

// isTransientStatus reports whether the gateway may accept the same checkout later.
func isTransientStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
