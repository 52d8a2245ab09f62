package db

import (
	"context"
	"time"
)

type Lookup struct {
	ID          string
	DraftID     string
	KickerCount int64
	LeagueSize  int64
	CreatedAt   time.Time
}

const insertLookup = `
INSERT INTO lookups (id, draft_id, kicker_count, league_size, created_at)
VALUES (?, ?, ?, ?, ?)
`

type InsertLookupParams struct {
	ID          string
	DraftID     string
	KickerCount int64
	LeagueSize  int64
	CreatedAt   time.Time
}

func (q *Queries) InsertLookup(ctx context.Context, arg InsertLookupParams) error {
	_, err := q.db.ExecContext(ctx, insertLookup,
		arg.ID,
		arg.DraftID,
		arg.KickerCount,
		arg.LeagueSize,
		arg.CreatedAt,
	)
	return err
}

// Latest row per draft id, newest first.
const listRecentLookups = `
SELECT l.id, l.draft_id, l.kicker_count, l.league_size, l.created_at
FROM lookups l
WHERE l.id = (
    SELECT l2.id FROM lookups l2
    WHERE l2.draft_id = l.draft_id
    ORDER BY l2.created_at DESC, l2.id DESC
    LIMIT 1
)
ORDER BY l.created_at DESC, l.id DESC
LIMIT ?
`

func (q *Queries) ListRecentLookups(ctx context.Context, limit int64) ([]Lookup, error) {
	rows, err := q.db.QueryContext(ctx, listRecentLookups, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Lookup
	for rows.Next() {
		var i Lookup
		if err := rows.Scan(
			&i.ID,
			&i.DraftID,
			&i.KickerCount,
			&i.LeagueSize,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
