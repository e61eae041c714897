package ticketmaster

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"trip_aggregator/internal/domain"
)

const (
	SourceID   = "ticketmaster"
	SourceName = "Ticketmaster Discovery"
)

// Config holds Ticketmaster source configuration.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Source is the primary events source, queried by city name. The API key
// travels in the query string.
type Source struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Source {
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		logger:  logger.With("source", SourceID),
	}
}

func (s *Source) ID() string {
	return SourceID
}

func (s *Source) Name() string {
	return SourceName
}

// Events fetches and normalizes events for a city.
func (s *Source) Events(ctx context.Context, city string) ([]domain.EventItem, error) {
	params := url.Values{}
	params.Set("city", city)
	params.Set("apikey", s.apiKey)

	u := s.baseURL + "/discovery/v2/events.json?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", domain.ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("events request failed", "city", city, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", domain.ErrUpstream, resp.StatusCode)
	}

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("%w: decode body: %v", domain.ErrMalformedPayload, err)
	}

	return s.transform(&apiResp), nil
}

func (s *Source) transform(resp *APIResponse) []domain.EventItem {
	if resp.Embedded == nil {
		return nil
	}

	events := make([]domain.EventItem, 0, len(resp.Embedded.Events))
	for _, e := range resp.Embedded.Events {
		events = append(events, domain.EventItem{
			Name:     eventName(e),
			Date:     eventDate(e),
			Venue:    eventVenue(e),
			ImageURL: eventImage(e),
			Link:     e.URL,
			Category: eventCategory(e),
			Source:   SourceID,
		})
	}

	return events
}

func eventName(e Event) string {
	if e.Name == "" {
		return "Unnamed Event"
	}
	return e.Name
}

func eventDate(e Event) string {
	if e.Dates != nil && e.Dates.Start != nil && e.Dates.Start.LocalDate != "" {
		return e.Dates.Start.LocalDate
	}
	return "N/A"
}

// eventVenue resolves the venue name, falling back to the venue's city
// name, then a fixed default.
func eventVenue(e Event) string {
	if e.Embedded != nil && len(e.Embedded.Venues) > 0 {
		v := e.Embedded.Venues[0]
		if v.Name != "" {
			return v.Name
		}
		if v.City != nil && v.City.Name != "" {
			return v.City.Name
		}
	}
	return "Unknown Venue"
}

func eventImage(e Event) *string {
	if len(e.Images) > 0 && e.Images[0].URL != "" {
		return &e.Images[0].URL
	}
	return nil
}

func eventCategory(e Event) string {
	if len(e.Classifications) > 0 {
		if seg := e.Classifications[0].Segment; seg != nil && seg.Name != "" {
			return seg.Name
		}
	}
	return "General"
}
