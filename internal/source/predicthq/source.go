package predicthq

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
	"unicode"

	"trip_aggregator/internal/domain"
)

const (
	SourceID   = "predicthq"
	SourceName = "PredictHQ"
)

// The basic events feed carries no images, so every item gets the same
// placeholder.
const placeholderImageURL = "https://images.unsplash.com/photo-1501281668745-f7f57925c3b4?auto=format&fit=crop&q=80&w=1000"

// Config holds PredictHQ source configuration. The country filter is fixed
// per deployment: fallback results are country-scoped, never city-scoped.
type Config struct {
	BaseURL string
	Token   string
	Country string
	Limit   int
	Timeout time.Duration
}

// Source is the fallback events source, bearer-authenticated and filtered
// by country code.
type Source struct {
	httpClient *http.Client
	baseURL    string
	token      string
	country    string
	limit      int
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Source {
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		country: cfg.Country,
		limit:   cfg.Limit,
		logger:  logger.With("source", SourceID),
	}
}

func (s *Source) ID() string {
	return SourceID
}

func (s *Source) Name() string {
	return SourceName
}

// Events fetches and normalizes events for the configured country. There is
// no city parameter: this source cannot scope results to the searched city.
func (s *Source) Events(ctx context.Context) ([]domain.EventItem, error) {
	params := url.Values{}
	params.Set("country", s.country)
	params.Set("limit", strconv.Itoa(s.limit))

	u := s.baseURL + "/v1/events/?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", domain.ErrUpstream, err)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("events request failed", "country", s.country, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", domain.ErrUpstream, resp.StatusCode)
	}

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("%w: decode body: %v", domain.ErrMalformedPayload, err)
	}

	return s.transform(&apiResp), nil
}

func (s *Source) transform(resp *APIResponse) []domain.EventItem {
	events := make([]domain.EventItem, 0, len(resp.Results))

	for _, e := range resp.Results {
		image := placeholderImageURL

		events = append(events, domain.EventItem{
			Name:     eventName(e),
			Date:     eventDate(e),
			Venue:    s.eventVenue(e),
			ImageURL: &image,
			Link:     "https://www.predicthq.com/events/" + e.ID,
			Category: eventCategory(e),
			Source:   SourceID,
		})
	}

	return events
}

func eventName(e Event) string {
	if e.Title == "" {
		return "Unnamed Event"
	}
	return e.Title
}

// eventDate truncates the ISO start datetime to its date part.
func eventDate(e Event) string {
	if e.Start == "" {
		return "N/A"
	}
	if len(e.Start) > 10 {
		return e.Start[:10]
	}
	return e.Start
}

// eventVenue resolves the first entity name, then a string-valued location
// field, then the country filter itself.
func (s *Source) eventVenue(e Event) string {
	if len(e.Entities) > 0 && e.Entities[0].Name != "" {
		return e.Entities[0].Name
	}
	var loc string
	if err := json.Unmarshal(e.Location, &loc); err == nil && loc != "" {
		return loc
	}
	return s.country
}

func eventCategory(e Event) string {
	if e.Category == "" {
		return "General"
	}
	return capitalize(e.Category)
}

func capitalize(s string) string {
	r := []rune(strings.ToLower(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
