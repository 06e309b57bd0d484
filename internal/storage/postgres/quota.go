package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"content_syncer/internal/domain"
)

type QuotaStore struct {
	db *sqlx.DB
}

func NewQuotaStore(db *sqlx.DB) *QuotaStore {
	return &QuotaStore{db: db}
}

// Insert appends one ledger entry. The ledger is append-only; budget
// positions are always computed by aggregation.
func (s *QuotaStore) Insert(ctx context.Context, rec *domain.QuotaUsageRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO quota_usage (provider, operation, units_consumed, window_start, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		rec.Provider,
		rec.Operation,
		rec.UnitsConsumed,
		rec.WindowStart,
		rec.CreatedAt,
	)
	return err
}

// SumSince returns the units consumed by a provider since the given
// instant.
func (s *QuotaStore) SumSince(ctx context.Context, provider string, since time.Time) (int64, error) {
	var consumed int64
	err := s.db.GetContext(ctx, &consumed, `
		SELECT COALESCE(SUM(units_consumed), 0)
		FROM quota_usage
		WHERE provider = $1 AND created_at >= $2`,
		provider, since,
	)
	return consumed, err
}

// DeleteBefore prunes ledger rows older than the retention horizon and
// returns the number removed.
func (s *QuotaStore) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM quota_usage WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
