package service

import (
	"context"
	"log/slog"
	"time"

	"trip_aggregator/internal/domain"
	"trip_aggregator/internal/obs"
)

// EventService chains a primary, city-scoped events source with a fallback
// one. The fallback runs only after the primary comes back empty or fails;
// the two cases are not distinguished. Each branch is guarded on its own:
// a failing source counts as an empty branch, never as a surfaced error.
type EventService struct {
	primary   PrimaryEventSource
	fallback  FallbackEventSource
	store     SearchLogStore // optional
	publisher Publisher      // optional
	metrics   *obs.Metrics
	logger    *slog.Logger
}

func NewEventService(
	primary PrimaryEventSource,
	fallback FallbackEventSource,
	store SearchLogStore,
	publisher Publisher,
	metrics *obs.Metrics,
	logger *slog.Logger,
) *EventService {
	return &EventService{
		primary:   primary,
		fallback:  fallback,
		store:     store,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger.With("search", domain.SearchKindEvents),
	}
}

// FetchEvents returns events for a city, falling back to the secondary
// source when the primary yields nothing. When both come back empty the
// returned error carries the user-facing message.
func (s *EventService) FetchEvents(ctx context.Context, q domain.EventQuery) ([]domain.EventItem, error) {
	start := time.Now()
	s.metrics.IncSearch(domain.SearchKindEvents)

	events := s.fetchBranch(ctx, s.primary.ID(), func(ctx context.Context) ([]domain.EventItem, error) {
		return s.primary.Events(ctx, q.City)
	})
	if len(events) > 0 {
		s.record(ctx, q.City, len(events), start)
		return events, nil
	}

	s.logger.Info("primary source empty, trying fallback", "city", q.City, "fallback", s.fallback.ID())

	events = s.fetchBranch(ctx, s.fallback.ID(), func(ctx context.Context) ([]domain.EventItem, error) {
		return s.fallback.Events(ctx)
	})
	if len(events) > 0 {
		s.record(ctx, q.City, len(events), start)
		return events, nil
	}

	s.record(ctx, q.City, 0, start)
	return nil, domain.ErrNoEvents
}

// fetchBranch runs one source and absorbs its failure into an empty list.
func (s *EventService) fetchBranch(ctx context.Context, sourceID string, fetch func(context.Context) ([]domain.EventItem, error)) []domain.EventItem {
	callStart := time.Now()
	events, err := fetch(ctx)
	s.metrics.ObserveProviderLatency(sourceID, time.Since(callStart).Seconds())

	if err != nil {
		s.logger.Warn("events source failed", "source", sourceID, "error", err)
		s.metrics.IncProviderRequest(sourceID, outcomeFor(err))
		return nil
	}

	outcome := obs.OutcomeOK
	if len(events) == 0 {
		outcome = obs.OutcomeEmpty
	}
	s.metrics.IncProviderRequest(sourceID, outcome)
	return events
}

func (s *EventService) record(ctx context.Context, city string, count int, start time.Time) {
	recordSearch(ctx, s.store, s.publisher, s.logger, domain.SearchKindEvents, "city="+city, count, start)
}
