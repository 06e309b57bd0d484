package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"content_syncer/internal/domain"
)

type ContentStatsStore struct {
	db *sqlx.DB
}

func NewContentStatsStore(db *sqlx.DB) *ContentStatsStore {
	return &ContentStatsStore{db: db}
}

// Upsert writes the derived per-item statistics row, one per content
// item.
func (s *ContentStatsStore) Upsert(ctx context.Context, stats *domain.ContentStats) error {
	exec := GetExecutor(ctx, s.db)

	_, err := exec.ExecContext(ctx, `
		INSERT INTO content_stats (content_id, view_count, like_count, comment_count, collected_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (content_id) DO UPDATE SET
			view_count = EXCLUDED.view_count,
			like_count = EXCLUDED.like_count,
			comment_count = EXCLUDED.comment_count,
			collected_at = EXCLUDED.collected_at`,
		stats.ContentID,
		stats.ViewCount,
		stats.LikeCount,
		stats.CommentCount,
		stats.CollectedAt,
	)
	return err
}

// GetByContentID returns the statistics row for an item, if collected.
func (s *ContentStatsStore) GetByContentID(ctx context.Context, contentID int64) (*domain.ContentStats, error) {
	var stats domain.ContentStats
	err := s.db.GetContext(ctx, &stats,
		`SELECT content_id, view_count, like_count, comment_count, collected_at
		 FROM content_stats WHERE content_id = $1`,
		contentID,
	)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
