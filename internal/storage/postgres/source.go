package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"content_syncer/internal/domain"
)

type SourceStore struct {
	db *sqlx.DB
}

func NewSourceStore(db *sqlx.DB) *SourceStore {
	return &SourceStore{db: db}
}

func (s *SourceStore) GetByID(ctx context.Context, id int64) (*domain.Source, error) {
	var src domain.Source
	err := s.db.GetContext(ctx, &src,
		`SELECT id, external_id, provider, name, active, created_at FROM sources WHERE id = $1`,
		id,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrSourceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &src, nil
}

func (s *SourceStore) ListActive(ctx context.Context) ([]domain.Source, error) {
	var sources []domain.Source
	err := s.db.SelectContext(ctx, &sources,
		`SELECT id, external_id, provider, name, active, created_at FROM sources WHERE active ORDER BY id`,
	)
	return sources, err
}
