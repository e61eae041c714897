//go:build integration

package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"trip_aggregator/internal/domain"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_search_log.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM search_log")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) TestInsertAndReadBack() {
	store := NewSearchLogStore(s.db)

	rec := &domain.SearchRecord{
		ID:          uuid.New().String(),
		Kind:        domain.SearchKindFlights,
		Params:      "DEL-BOM|2024-07-01|adults=2",
		ResultCount: 12,
		Duration:    340 * time.Millisecond,
		CreatedAt:   time.Now().UTC().Truncate(time.Millisecond),
	}

	err := store.Insert(s.ctx, rec)
	s.Require().NoError(err)

	got, err := store.RecentByKind(s.ctx, domain.SearchKindFlights, 10)
	s.Require().NoError(err)
	s.Require().Len(got, 1)

	s.Equal(rec.ID, got[0].ID)
	s.Equal(rec.Params, got[0].Params)
	s.Equal(12, got[0].ResultCount)
	s.Equal(340*time.Millisecond, got[0].Duration)
}

func (s *PostgresIntegrationSuite) TestRecentByKind_FiltersAndLimits() {
	store := NewSearchLogStore(s.db)

	for i := 0; i < 3; i++ {
		err := store.Insert(s.ctx, &domain.SearchRecord{
			ID:        uuid.New().String(),
			Kind:      domain.SearchKindHotels,
			Params:    "PAR|2024-07-01..2024-07-03|adults=2",
			CreatedAt: time.Now().UTC().Add(time.Duration(i) * time.Second),
		})
		s.Require().NoError(err)
	}
	err := store.Insert(s.ctx, &domain.SearchRecord{
		ID:        uuid.New().String(),
		Kind:      domain.SearchKindEvents,
		Params:    "city=Paris",
		CreatedAt: time.Now().UTC(),
	})
	s.Require().NoError(err)

	got, err := store.RecentByKind(s.ctx, domain.SearchKindHotels, 2)
	s.Require().NoError(err)
	s.Len(got, 2)
	for _, rec := range got {
		s.Equal(domain.SearchKindHotels, rec.Kind)
	}
}
