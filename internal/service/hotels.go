package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"trip_aggregator/internal/domain"
	"trip_aggregator/internal/obs"
	"trip_aggregator/internal/source/amadeus"
	"trip_aggregator/internal/token"
)

// maxHotelIDs caps how many hotels from the city listing get an offer
// lookup.
const maxHotelIDs = 10

// HotelService orchestrates one hotel search: token, city listing, offer
// lookup, normalization. Hotels are returned unranked. Failures collapse to
// an empty result the same way flight searches do.
type HotelService struct {
	client    HotelClient
	tokens    *token.Cache
	store     SearchLogStore // optional
	publisher Publisher      // optional
	metrics   *obs.Metrics
	logger    *slog.Logger
}

func NewHotelService(
	client HotelClient,
	store SearchLogStore,
	publisher Publisher,
	metrics *obs.Metrics,
	logger *slog.Logger,
) *HotelService {
	return &HotelService{
		client:    client,
		tokens:    token.NewCache(),
		store:     store,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger.With("search", domain.SearchKindHotels),
	}
}

// SearchHotels returns hotel offers for the query, or an empty list on any
// failure. When the city resolves to zero hotel ids the offers call is not
// attempted.
func (s *HotelService) SearchHotels(ctx context.Context, q domain.HotelQuery) []domain.HotelOffer {
	start := time.Now()
	s.metrics.IncSearch(domain.SearchKindHotels)

	params := fmt.Sprintf("%s|%s..%s|adults=%d", q.CityCode, q.CheckIn, q.CheckOut, q.Adults)

	bearer, err := s.tokens.Bearer(ctx, s.exchange)
	if err != nil {
		s.collapse(ctx, err, params, start)
		return nil
	}

	callStart := time.Now()
	listResp, err := s.client.HotelsByCity(ctx, bearer, q.CityCode)
	s.metrics.ObserveProviderLatency(amadeus.SourceID, time.Since(callStart).Seconds())
	if err != nil {
		s.collapse(ctx, err, params, start)
		return nil
	}

	hotelIDs := topHotelIDs(listResp)
	if len(hotelIDs) == 0 {
		s.metrics.IncProviderRequest(amadeus.SourceID, obs.OutcomeEmpty)
		s.record(ctx, params, 0, start)
		return nil
	}

	callStart = time.Now()
	offersResp, err := s.client.HotelOffers(ctx, bearer, hotelIDs, q)
	s.metrics.ObserveProviderLatency(amadeus.SourceID, time.Since(callStart).Seconds())
	if err != nil {
		s.collapse(ctx, err, params, start)
		return nil
	}

	offers, err := amadeus.NormalizeHotelOffers(offersResp, q)
	if err != nil {
		s.collapse(ctx, err, params, start)
		return nil
	}

	outcome := obs.OutcomeOK
	if len(offers) == 0 {
		outcome = obs.OutcomeEmpty
	}
	s.metrics.IncProviderRequest(amadeus.SourceID, outcome)
	s.record(ctx, params, len(offers), start)

	return offers
}

// topHotelIDs keeps the first maxHotelIDs ids from the city listing.
func topHotelIDs(resp *amadeus.HotelListResponse) []string {
	ids := make([]string, 0, maxHotelIDs)
	for _, entry := range resp.Data {
		if entry.HotelID == "" {
			continue
		}
		ids = append(ids, entry.HotelID)
		if len(ids) == maxHotelIDs {
			break
		}
	}
	return ids
}

func (s *HotelService) exchange(ctx context.Context) (token.Token, error) {
	s.metrics.IncTokenRefresh()
	return s.client.ExchangeToken(ctx)
}

func (s *HotelService) collapse(ctx context.Context, err error, params string, start time.Time) {
	s.logger.Warn("search collapsed to empty result", "params", params, "error", err)
	s.metrics.IncProviderRequest(amadeus.SourceID, outcomeFor(err))
	s.record(ctx, params, 0, start)
}

func (s *HotelService) record(ctx context.Context, params string, count int, start time.Time) {
	recordSearch(ctx, s.store, s.publisher, s.logger, domain.SearchKindHotels, params, count, start)
}
