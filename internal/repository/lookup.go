package repository

import (
	"context"
	"database/sql"
	"fmt"
	"kicker-tracker/internal/db"
	"kicker-tracker/internal/domain"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

type LookupRepository struct {
	queries *db.Queries
	logger  zerolog.Logger
}

func NewLookupRepository(sqlDB *sql.DB, logger zerolog.Logger) *LookupRepository {
	return &LookupRepository{
		queries: db.New(sqlDB),
		logger:  logger,
	}
}

func (r *LookupRepository) Record(ctx context.Context, lookup domain.Lookup) error {
	id := lookup.ID
	if id == "" {
		var err error
		id, err = gonanoid.New()
		if err != nil {
			return fmt.Errorf("failed to generate nanoid: %w", err)
		}
	}

	createdAt := lookup.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	err := r.queries.InsertLookup(ctx, db.InsertLookupParams{
		ID:          id,
		DraftID:     lookup.DraftID,
		KickerCount: int64(lookup.KickerCount),
		LeagueSize:  int64(lookup.LeagueSize),
		CreatedAt:   createdAt.UTC(),
	})
	if err != nil {
		r.logger.Error().Err(err).Str("draft_id", lookup.DraftID).Msg("failed to insert lookup")
		return fmt.Errorf("failed to insert lookup: %w", err)
	}

	r.logger.Debug().Str("id", id).Str("draft_id", lookup.DraftID).Msg("lookup recorded")
	return nil
}

// Recent returns the newest lookup of each draft id, newest first.
func (r *LookupRepository) Recent(ctx context.Context, limit int) ([]domain.Lookup, error) {
	rows, err := r.queries.ListRecentLookups(ctx, int64(limit))
	if err != nil {
		return nil, err
	}

	result := make([]domain.Lookup, len(rows))
	for i, row := range rows {
		result[i] = domain.Lookup{
			ID:          row.ID,
			DraftID:     row.DraftID,
			KickerCount: int(row.KickerCount),
			LeagueSize:  int(row.LeagueSize),
			CreatedAt:   row.CreatedAt,
		}
	}
	return result, nil
}
