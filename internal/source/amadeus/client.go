package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"trip_aggregator/internal/domain"
	"trip_aggregator/internal/token"
)

const SourceID = "amadeus"

// Config holds Amadeus client configuration.
type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	Currency     string // optional currencyCode passed on searches
	MaxOffers    int
	Timeout      time.Duration
}

// Client performs one HTTP call per operation against the Amadeus APIs.
// Failures come back as domain.ErrAuth, domain.ErrUpstream or
// domain.ErrMalformedPayload; the service layer decides what to do with
// them. No retries anywhere: every failure is final for its query.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	clientID     string
	clientSecret string
	currency     string
	maxOffers    int
	logger       *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:      cfg.BaseURL,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		currency:     cfg.Currency,
		maxOffers:    cfg.MaxOffers,
		logger:       logger.With("source", SourceID),
	}
}

// ExchangeToken runs the OAuth client-credentials flow.
func (c *Client) ExchangeToken(ctx context.Context) (token.Token, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/security/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return token.Token{}, fmt.Errorf("%w: create request: %v", domain.ErrAuth, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return token.Token{}, fmt.Errorf("%w: %v", domain.ErrAuth, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return token.Token{}, fmt.Errorf("%w: status %d", domain.ErrAuth, resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return token.Token{}, fmt.Errorf("%w: decode body: %v", domain.ErrAuth, err)
	}
	if tr.AccessToken == "" {
		return token.Token{}, fmt.Errorf("%w: empty access_token", domain.ErrAuth)
	}

	return token.Token{
		Value:      tr.AccessToken,
		ObtainedAt: time.Now(),
		ExpiresIn:  time.Duration(tr.ExpiresIn) * time.Second,
	}, nil
}

// FlightOffers searches flight offers for one query.
func (c *Client) FlightOffers(ctx context.Context, bearer string, q domain.FlightQuery) (*FlightOffersResponse, error) {
	params := url.Values{}
	params.Set("originLocationCode", q.Origin)
	params.Set("destinationLocationCode", q.Destination)
	params.Set("departureDate", q.Date)
	params.Set("adults", strconv.Itoa(q.Adults))
	params.Set("max", strconv.Itoa(c.maxOffers))
	if c.currency != "" {
		params.Set("currencyCode", c.currency)
	}

	var out FlightOffersResponse
	if err := c.get(ctx, bearer, "/v2/shopping/flight-offers", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// HotelsByCity lists hotels for a city code.
func (c *Client) HotelsByCity(ctx context.Context, bearer, cityCode string) (*HotelListResponse, error) {
	params := url.Values{}
	params.Set("cityCode", cityCode)

	var out HotelListResponse
	if err := c.get(ctx, bearer, "/v1/reference-data/locations/hotels/by-city", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// HotelOffers searches offers for a comma-joined set of hotel ids.
func (c *Client) HotelOffers(ctx context.Context, bearer string, hotelIDs []string, q domain.HotelQuery) (*HotelOffersResponse, error) {
	params := url.Values{}
	params.Set("hotelIds", strings.Join(hotelIDs, ","))
	params.Set("checkInDate", q.CheckIn)
	params.Set("checkOutDate", q.CheckOut)
	params.Set("adults", strconv.Itoa(q.Adults))
	if c.currency != "" {
		params.Set("currency", c.currency)
	}

	var out HotelOffersResponse
	if err := c.get(ctx, bearer, "/v3/shopping/hotel-offers", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, bearer, path string, params url.Values, out any) error {
	u := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%w: create request: %v", domain.ErrUpstream, err)
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("request failed", "path", path, "status", resp.StatusCode)
		return fmt.Errorf("%w: status %d", domain.ErrUpstream, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode body: %v", domain.ErrMalformedPayload, err)
	}

	return nil
}
