package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"trip_aggregator/internal/domain"
	"trip_aggregator/internal/obs"
	"trip_aggregator/internal/ranking"
	"trip_aggregator/internal/source/amadeus"
	"trip_aggregator/internal/token"
)

// FlightService orchestrates one flight search end to end: token, provider
// call, normalization, ranking. It owns its token cache. Every internal
// failure collapses to an empty result at this boundary; callers cannot
// tell an auth failure from a search that genuinely matched nothing.
type FlightService struct {
	client    FlightClient
	tokens    *token.Cache
	store     SearchLogStore // optional
	publisher Publisher      // optional
	metrics   *obs.Metrics
	logger    *slog.Logger
}

func NewFlightService(
	client FlightClient,
	store SearchLogStore,
	publisher Publisher,
	metrics *obs.Metrics,
	logger *slog.Logger,
) *FlightService {
	return &FlightService{
		client:    client,
		tokens:    token.NewCache(),
		store:     store,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger.With("search", domain.SearchKindFlights),
	}
}

// SearchFlights returns labeled flight offers for the query, or an empty
// list on any failure.
func (s *FlightService) SearchFlights(ctx context.Context, q domain.FlightQuery) []domain.FlightOffer {
	start := time.Now()
	s.metrics.IncSearch(domain.SearchKindFlights)

	params := fmt.Sprintf("%s-%s|%s|adults=%d", q.Origin, q.Destination, q.Date, q.Adults)

	bearer, err := s.tokens.Bearer(ctx, s.exchange)
	if err != nil {
		s.collapse(ctx, err, params, start)
		return nil
	}

	callStart := time.Now()
	resp, err := s.client.FlightOffers(ctx, bearer, q)
	s.metrics.ObserveProviderLatency(amadeus.SourceID, time.Since(callStart).Seconds())
	if err != nil {
		s.collapse(ctx, err, params, start)
		return nil
	}

	offers, err := amadeus.NormalizeFlightOffers(resp, q)
	if err != nil {
		s.collapse(ctx, err, params, start)
		return nil
	}

	offers = ranking.Label(offers)

	outcome := obs.OutcomeOK
	if len(offers) == 0 {
		outcome = obs.OutcomeEmpty
	}
	s.metrics.IncProviderRequest(amadeus.SourceID, outcome)
	s.record(ctx, domain.SearchKindFlights, params, len(offers), start)

	return offers
}

func (s *FlightService) exchange(ctx context.Context) (token.Token, error) {
	s.metrics.IncTokenRefresh()
	return s.client.ExchangeToken(ctx)
}

// collapse logs and counts the real cause, then lets the caller see only an
// empty result.
func (s *FlightService) collapse(ctx context.Context, err error, params string, start time.Time) {
	s.logger.Warn("search collapsed to empty result", "params", params, "error", err)
	s.metrics.IncProviderRequest(amadeus.SourceID, outcomeFor(err))
	s.record(ctx, domain.SearchKindFlights, params, 0, start)
}

func (s *FlightService) record(ctx context.Context, kind, params string, count int, start time.Time) {
	recordSearch(ctx, s.store, s.publisher, s.logger, kind, params, count, start)
}

func outcomeFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrAuth):
		return obs.OutcomeAuthError
	case errors.Is(err, domain.ErrMalformedPayload):
		return obs.OutcomeParse
	default:
		return obs.OutcomeUpstream
	}
}

// recordSearch writes the audit record and publishes the search event.
// Both sinks are optional and best-effort: a failing sink never affects the
// search result.
func recordSearch(
	ctx context.Context,
	store SearchLogStore,
	publisher Publisher,
	logger *slog.Logger,
	kind, params string,
	count int,
	start time.Time,
) {
	if store == nil && publisher == nil {
		return
	}

	rec := &domain.SearchRecord{
		ID:          uuid.New().String(),
		Kind:        kind,
		Params:      params,
		ResultCount: count,
		Duration:    time.Since(start),
		CreatedAt:   time.Now().UTC(),
	}

	if store != nil {
		if err := store.Insert(ctx, rec); err != nil {
			logger.Warn("failed to store search record", "error", err)
		}
	}
	if publisher != nil {
		if err := publisher.Publish(ctx, rec); err != nil {
			logger.Warn("failed to publish search event", "error", err)
		}
	}
}
