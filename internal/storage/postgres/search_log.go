package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"trip_aggregator/internal/domain"
)

// SearchLogStore persists one row per completed search: parameters and
// outcome counts only, never offers.
type SearchLogStore struct {
	db *sqlx.DB
}

func NewSearchLogStore(db *sqlx.DB) *SearchLogStore {
	return &SearchLogStore{db: db}
}

func (s *SearchLogStore) Insert(ctx context.Context, rec *domain.SearchRecord) error {
	query := `
		INSERT INTO search_log (id, kind, params, result_count, duration_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := s.db.ExecContext(ctx, query,
		rec.ID,
		rec.Kind,
		rec.Params,
		rec.ResultCount,
		rec.Duration.Milliseconds(),
		rec.CreatedAt,
	)
	return err
}

// RecentByKind returns the newest records for one search kind.
func (s *SearchLogStore) RecentByKind(ctx context.Context, kind string, limit int) ([]domain.SearchRecord, error) {
	query := `
		SELECT id, kind, params, result_count, duration_ms, created_at
		FROM search_log
		WHERE kind = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, kind, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.SearchRecord
	for rows.Next() {
		var rec domain.SearchRecord
		var durationMs int64
		if err := rows.Scan(&rec.ID, &rec.Kind, &rec.Params, &rec.ResultCount, &durationMs, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.Duration = time.Duration(durationMs) * time.Millisecond
		records = append(records, rec)
	}

	return records, rows.Err()
}
