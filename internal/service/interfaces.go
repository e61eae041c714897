package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"trip_aggregator/internal/domain"
	"trip_aggregator/internal/source/amadeus"
	"trip_aggregator/internal/token"
)

// FlightClient is the marketplace API surface the flight service needs.
type FlightClient interface {
	ExchangeToken(ctx context.Context) (token.Token, error)
	FlightOffers(ctx context.Context, bearer string, q domain.FlightQuery) (*amadeus.FlightOffersResponse, error)
}

// HotelClient is the marketplace API surface the hotel service needs.
type HotelClient interface {
	ExchangeToken(ctx context.Context) (token.Token, error)
	HotelsByCity(ctx context.Context, bearer, cityCode string) (*amadeus.HotelListResponse, error)
	HotelOffers(ctx context.Context, bearer string, hotelIDs []string, q domain.HotelQuery) (*amadeus.HotelOffersResponse, error)
}

// PrimaryEventSource is queried by city name.
type PrimaryEventSource interface {
	ID() string
	Events(ctx context.Context, city string) ([]domain.EventItem, error)
}

// FallbackEventSource is queried only after the primary yields nothing; it
// takes no city parameter.
type FallbackEventSource interface {
	ID() string
	Events(ctx context.Context) ([]domain.EventItem, error)
}

// SearchLogStore records completed searches for auditing.
type SearchLogStore interface {
	Insert(ctx context.Context, rec *domain.SearchRecord) error
}

// Publisher emits a message for every completed search.
type Publisher interface {
	Publish(ctx context.Context, rec *domain.SearchRecord) error
	Close() error
}
