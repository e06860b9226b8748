// Package duffel implements domain.OffersProvider over the Duffel Air API.
// Wire shapes are mapped to domain entities exactly once, in normalizer.go.
package duffel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-querystring/query"

	"github.com/travel-booking/flight-booking/internal/domain"
	"github.com/travel-booking/flight-booking/internal/infrastructure/logger"
	"github.com/travel-booking/flight-booking/internal/infrastructure/retry"
)

// DefaultAPIVersion is sent in the Duffel-Version header.
const DefaultAPIVersion = "v2"

// maxErrorBody caps how much of an error body is read for classification.
const maxErrorBody = 64 << 10

// Error codes that mean the offer can no longer be booked.
var expiredCodes = map[string]bool{
	"offer_no_longer_available": true,
	"offer_expired":             true,
	"offer_request_expired":     true,
}

// Config holds Duffel client settings.
type Config struct {
	BaseURL     string
	AccessToken string
	APIVersion  string

	// Timeout bounds a single HTTP exchange
	Timeout time.Duration

	// Retry drives retries of transient failures; RetryIf is always domain.IsRetryable
	Retry retry.Config
}

// Adapter implements the OffersProvider interface for Duffel.
type Adapter struct {
	baseURL string
	token   string
	version string
	client  *http.Client
	retry   retry.Config
	log     *logger.Logger
}

// NewAdapter creates a Duffel adapter.
func NewAdapter(cfg Config, log *logger.Logger) *Adapter {
	version := cfg.APIVersion
	if version == "" {
		version = DefaultAPIVersion
	}
	retryCfg := cfg.Retry
	if retryCfg.MaxAttempts == 0 {
		retryCfg = retry.ProviderConfig
	}

	return &Adapter{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.AccessToken,
		version: version,
		client:  &http.Client{Timeout: cfg.Timeout},
		retry:   retryCfg.WithRetryIf(domain.IsRetryable),
		log:     logger.OrNop(log).WithComponent("duffel"),
	}
}

// Name returns the provider identifier.
func (a *Adapter) Name() string {
	return ProviderName
}

// SearchOffers creates an offer request and returns its normalized offers.
func (a *Adapter) SearchOffers(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Offer, error) {
	var resp offerRequestResponse
	err := a.call(ctx, http.MethodPost, "/air/offer_requests", offerRequestQuery{ReturnOffers: true},
		envelope[offerRequestBody]{Data: toOfferRequest(criteria)}, &resp)
	if err != nil {
		return nil, err
	}

	offers, rejected := normalizeOffers(resp.Offers)
	if len(rejected) > 0 {
		a.log.Warn().Strs("offer_ids", rejected).Msg("skipping offers that could not be normalized")
	}
	a.log.Debug().Str("offer_request_id", resp.ID).Int("offers", len(offers)).Msg("offer request completed")
	return offers, nil
}

// GetOffer re-fetches a single offer.
func (a *Adapter) GetOffer(ctx context.Context, offerID string) (*domain.Offer, error) {
	wire, err := a.fetchOffer(ctx, offerID, false)
	if err != nil {
		return nil, err
	}

	offer, err := normalizeOffer(*wire)
	if err != nil {
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, err))
	}
	return offer, nil
}

// GetSeatMap returns the seat maps of the offer.
func (a *Adapter) GetSeatMap(ctx context.Context, offerID string) (*domain.SeatMap, error) {
	var maps []wireSeatMap
	if err := a.call(ctx, http.MethodGet, "/air/seat_maps", seatMapQuery{OfferID: offerID}, nil, &maps); err != nil {
		return nil, err
	}
	return normalizeSeatMaps(offerID, maps), nil
}

// GetAncillaryServices returns purchasable and included baggage for the offer.
func (a *Adapter) GetAncillaryServices(ctx context.Context, offerID string) (*domain.AncillaryCatalog, error) {
	wire, err := a.fetchOffer(ctx, offerID, true)
	if err != nil {
		return nil, err
	}
	return normalizeCatalog(*wire), nil
}

func (a *Adapter) fetchOffer(ctx context.Context, offerID string, withServices bool) (*wireOffer, error) {
	if offerID == "" {
		return nil, domain.WrapInvalidRequest("offer id is required")
	}

	var wire wireOffer
	path := "/air/offers/" + url.PathEscape(offerID)
	if err := a.call(ctx, http.MethodGet, path, offerQuery{ReturnAvailableServices: withServices}, nil, &wire); err != nil {
		return nil, err
	}
	return &wire, nil
}

// call performs one logical API call with retries and decodes the data envelope into out.
func (a *Adapter) call(ctx context.Context, method, path string, params, body, out any) error {
	target := a.baseURL + path
	if params != nil {
		v, err := query.Values(params)
		if err != nil {
			return fmt.Errorf("encode query for %s: %w", path, err)
		}
		if encoded := v.Encode(); encoded != "" {
			target += "?" + encoded
		}
	}

	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("encode body for %s: %w", path, err)
		}
	}

	_, err := retry.DoWithResult(ctx, func() (struct{}, error) {
		return struct{}{}, a.do(ctx, method, target, payload, out)
	}, a.retry)
	return err
}

func (a *Adapter) do(ctx context.Context, method, target string, payload []byte, out any) error {
	var reader io.Reader = http.NoBody
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.token)
	req.Header.Set("Duffel-Version", a.version)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := a.client.Do(req)
	if err != nil {
		return classifyTransportError(ctx, err)
	}
	defer resp.Body.Close()

	a.log.Debug().
		Str("method", method).
		Str("url", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("duffel request")

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return classifyStatus(resp.StatusCode, raw)
	}

	env := envelope[json.RawMessage]{}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return domain.NewProviderError(ProviderName, fmt.Errorf("%w: decode response: %w", domain.ErrProviderUnavailable, err))
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return domain.NewProviderError(ProviderName, fmt.Errorf("%w: decode data: %w", domain.ErrProviderUnavailable, err))
	}
	return nil
}

// classifyTransportError maps a failed exchange to the provider taxonomy.
func classifyTransportError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	var netErr interface{ Timeout() bool }
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return domain.NewProviderTimeoutError(ProviderName)
	}
	return domain.NewRetryableProviderError(ProviderName, fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, err))
}

// classifyStatus maps a non-2xx Duffel response to the provider taxonomy.
func classifyStatus(status int, raw []byte) error {
	var body errorResponse
	_ = json.Unmarshal(raw, &body)

	message := http.StatusText(status)
	code := ""
	if len(body.Errors) > 0 {
		code = body.Errors[0].Code
		message = firstNonEmpty(body.Errors[0].Message, body.Errors[0].Title, message)
	}

	switch {
	case expiredCodes[code]:
		return domain.NewProviderError(ProviderName, fmt.Errorf("%w: %s", domain.ErrOfferExpired, message))
	case status == http.StatusNotFound:
		return domain.NewProviderError(ProviderName, fmt.Errorf("%w: %s", domain.ErrOfferNotFound, message))
	case status == http.StatusTooManyRequests || status >= 500:
		return domain.NewRetryableProviderError(ProviderName, fmt.Errorf("%w: status %d: %s", domain.ErrProviderUnavailable, status, message))
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return domain.NewProviderError(ProviderName, fmt.Errorf("%w: %s", domain.ErrInvalidRequest, message))
	default:
		return domain.NewProviderError(ProviderName, fmt.Errorf("%w: status %d: %s", domain.ErrProviderUnavailable, status, message))
	}
}
