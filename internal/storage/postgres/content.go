package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"content_syncer/internal/domain"
)

type ContentStore struct {
	db *sqlx.DB
}

func NewContentStore(db *sqlx.DB) *ContentStore {
	return &ContentStore{db: db}
}

// Upsert inserts or updates a content item keyed by (source_id,
// external_id). Re-ingesting the same external id never duplicates a
// row; an older payload never overwrites a newer one.
func (s *ContentStore) Upsert(ctx context.Context, item *domain.ContentItem) (int64, error) {
	exec := GetExecutor(ctx, s.db)

	query := `
		INSERT INTO content_items (
			source_id, external_id, title, description, media_url,
			thumbnail_url, duration, published_at, last_modified
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
		ON CONFLICT (source_id, external_id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			media_url = EXCLUDED.media_url,
			thumbnail_url = EXCLUDED.thumbnail_url,
			duration = EXCLUDED.duration,
			last_modified = EXCLUDED.last_modified,
			updated_at = NOW()
		WHERE content_items.last_modified <= EXCLUDED.last_modified
		RETURNING id`

	var id int64
	err := exec.QueryRowxContext(ctx, query,
		item.SourceID,
		item.ExternalID,
		item.Title,
		item.Description,
		item.MediaURL,
		item.ThumbnailURL,
		item.Duration,
		item.PublishedAt,
		item.LastModified,
	).Scan(&id)

	if err == sql.ErrNoRows {
		// Row exists with a newer last_modified; the update was a no-op.
		err = exec.QueryRowxContext(ctx,
			"SELECT id FROM content_items WHERE source_id = $1 AND external_id = $2",
			item.SourceID, item.ExternalID,
		).Scan(&id)
	}

	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetExistingByExternalIDs returns last_modified for the given external
// ids that already exist locally, keyed by external id.
func (s *ContentStore) GetExistingByExternalIDs(ctx context.Context, sourceID int64, ids []string) (map[string]time.Time, error) {
	if len(ids) == 0 {
		return make(map[string]time.Time), nil
	}

	query := `SELECT external_id, last_modified FROM content_items WHERE source_id = $1 AND external_id = ANY($2)`

	rows, err := s.db.QueryContext(ctx, query, sourceID, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]time.Time)
	for rows.Next() {
		var extID string
		var lastMod time.Time
		if err := rows.Scan(&extID, &lastMod); err != nil {
			return nil, err
		}
		result[extID] = lastMod
	}

	return result, rows.Err()
}

// CountBySource returns the number of locally stored items for a source.
func (s *ContentStore) CountBySource(ctx context.Context, sourceID int64) (int64, error) {
	var count int64
	err := s.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM content_items WHERE source_id = $1", sourceID)
	return count, err
}
