package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"trip_aggregator/internal/domain"
)

// FlightSearcher serves one flight search. An empty result never carries an
// error.
type FlightSearcher interface {
	SearchFlights(ctx context.Context, q domain.FlightQuery) []domain.FlightOffer
}

type HotelSearcher interface {
	SearchHotels(ctx context.Context, q domain.HotelQuery) []domain.HotelOffer
}

type EventFetcher interface {
	FetchEvents(ctx context.Context, q domain.EventQuery) ([]domain.EventItem, error)
}

type Handler struct {
	flights FlightSearcher
	hotels  HotelSearcher
	events  EventFetcher
}

func NewHandler(flights FlightSearcher, hotels HotelSearcher, events EventFetcher) *Handler {
	return &Handler{flights: flights, hotels: hotels, events: events}
}

type flightsResponse struct {
	Offers  []domain.FlightOffer `json:"offers"`
	Count   int                  `json:"count"`
	Message string               `json:"message,omitempty"`
}

type hotelsResponse struct {
	Offers  []domain.HotelOffer `json:"offers"`
	Count   int                 `json:"count"`
	Message string              `json:"message,omitempty"`
}

type eventsResponse struct {
	Events []domain.EventItem `json:"events"`
	Count  int                `json:"count"`
}

func (h *Handler) Flights(w http.ResponseWriter, r *http.Request) {
	meta := requestMeta(r)

	q := domain.FlightQuery{
		Origin:      strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("origin"))),
		Destination: strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("destination"))),
		Date:        r.URL.Query().Get("date"),
	}

	if q.Origin == "" || q.Destination == "" {
		BadRequest(w, "origin and destination are required", meta)
		return
	}
	if err := validateDate(q.Date); err != nil {
		BadRequest(w, "date: "+err.Error(), meta)
		return
	}
	adults, err := parseAdults(r.URL.Query().Get("adults"))
	if err != nil {
		BadRequest(w, "adults: "+err.Error(), meta)
		return
	}
	q.Adults = adults

	offers := h.flights.SearchFlights(r.Context(), q)

	resp := flightsResponse{Offers: offers, Count: len(offers)}
	if resp.Offers == nil {
		resp.Offers = []domain.FlightOffer{}
	}
	if resp.Count == 0 {
		resp.Message = "No flight offers found for these dates."
	}
	WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) Hotels(w http.ResponseWriter, r *http.Request) {
	meta := requestMeta(r)

	q := domain.HotelQuery{
		CityCode: strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("city"))),
		CheckIn:  r.URL.Query().Get("check_in"),
		CheckOut: r.URL.Query().Get("check_out"),
	}

	if q.CityCode == "" {
		BadRequest(w, "city is required", meta)
		return
	}
	if err := validateDate(q.CheckIn); err != nil {
		BadRequest(w, "check_in: "+err.Error(), meta)
		return
	}
	if err := validateDate(q.CheckOut); err != nil {
		BadRequest(w, "check_out: "+err.Error(), meta)
		return
	}
	adults, err := parseAdults(r.URL.Query().Get("adults"))
	if err != nil {
		BadRequest(w, "adults: "+err.Error(), meta)
		return
	}
	q.Adults = adults

	offers := h.hotels.SearchHotels(r.Context(), q)

	resp := hotelsResponse{Offers: offers, Count: len(offers)}
	if resp.Offers == nil {
		resp.Offers = []domain.HotelOffer{}
	}
	if resp.Count == 0 {
		resp.Message = fmt.Sprintf("No hotels found for these dates in %s.", q.CityCode)
	}
	WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	meta := requestMeta(r)

	city := strings.TrimSpace(r.URL.Query().Get("city"))
	if city == "" {
		BadRequest(w, "city is required", meta)
		return
	}

	events, err := h.events.FetchEvents(r.Context(), domain.EventQuery{City: city})
	if err != nil {
		if errors.Is(err, domain.ErrNoEvents) {
			NotFound(w, err.Error(), meta)
			return
		}
		InternalError(w, "events lookup failed", meta)
		return
	}

	WriteJSON(w, http.StatusOK, eventsResponse{Events: events, Count: len(events)})
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func requestMeta(r *http.Request) map[string]string {
	if rid := middleware.GetReqID(r.Context()); rid != "" {
		return map[string]string{"request_id": rid}
	}
	return nil
}

func validateDate(s string) error {
	if s == "" {
		return errors.New("required")
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return errors.New("must be YYYY-MM-DD")
	}
	return nil
}

// parseAdults defaults to 1 when the parameter is absent.
func parseAdults(s string) (int, error) {
	if s == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("must be a number")
	}
	if n < 1 || n > 9 {
		return 0, errors.New("must be between 1 and 9")
	}
	return n, nil
}
