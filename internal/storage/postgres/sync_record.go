package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"content_syncer/internal/domain"
)

type SyncRecordStore struct {
	db *sqlx.DB
}

func NewSyncRecordStore(db *sqlx.DB) *SyncRecordStore {
	return &SyncRecordStore{db: db}
}

type syncRecordRow struct {
	ID                      int64           `db:"id"`
	SourceID                int64           `db:"source_id"`
	Status                  string          `db:"status"`
	Cursor                  sql.NullString  `db:"cursor"`
	LastSyncedAt            sql.NullTime    `db:"last_synced_at"`
	SyncStartedAt           sql.NullTime    `db:"sync_started_at"`
	SyncCompletedAt         sql.NullTime    `db:"sync_completed_at"`
	TotalCount              sql.NullInt64   `db:"total_count"`
	SyncedCount             int64           `db:"synced_count"`
	FailedCount             int64           `db:"failed_count"`
	ConsecutiveFailureCount int             `db:"consecutive_failure_count"`
	LastError               sql.NullString  `db:"last_error"`
	InitialSyncCompleted    bool            `db:"initial_sync_completed"`
	FullSyncMode            bool            `db:"full_sync_mode"`
	ResyncRequested         bool            `db:"resync_requested"`
	FullSyncSynced          sql.NullInt64   `db:"full_sync_synced"`
	FullSyncRemaining       sql.NullInt64   `db:"full_sync_remaining"`
	FullSyncPercent         sql.NullFloat64 `db:"full_sync_percent"`
}

const syncRecordColumns = `
	id, source_id, status, cursor, last_synced_at, sync_started_at,
	sync_completed_at, total_count, synced_count, failed_count,
	consecutive_failure_count, last_error, initial_sync_completed,
	full_sync_mode, resync_requested,
	full_sync_synced, full_sync_remaining, full_sync_percent`

func (r syncRecordRow) toDomain() domain.SyncRecord {
	rec := domain.SyncRecord{
		ID:                      r.ID,
		SourceID:                r.SourceID,
		Status:                  domain.SyncStatus(r.Status),
		SyncedCount:             r.SyncedCount,
		FailedCount:             r.FailedCount,
		ConsecutiveFailureCount: r.ConsecutiveFailureCount,
		InitialSyncCompleted:    r.InitialSyncCompleted,
		FullSyncMode:            r.FullSyncMode,
		ResyncRequested:         r.ResyncRequested,
	}
	if r.Cursor.Valid {
		rec.Cursor = &r.Cursor.String
	}
	if r.LastSyncedAt.Valid {
		t := r.LastSyncedAt.Time
		rec.LastSyncedAt = &t
	}
	if r.SyncStartedAt.Valid {
		t := r.SyncStartedAt.Time
		rec.SyncStartedAt = &t
	}
	if r.SyncCompletedAt.Valid {
		t := r.SyncCompletedAt.Time
		rec.SyncCompletedAt = &t
	}
	if r.TotalCount.Valid {
		n := r.TotalCount.Int64
		rec.TotalCount = &n
	}
	if r.LastError.Valid {
		rec.LastError = &r.LastError.String
	}
	if r.FullSyncSynced.Valid {
		rec.FullSyncProgress = &domain.FullSyncProgress{
			SyncedCount:     r.FullSyncSynced.Int64,
			RemainingCount:  r.FullSyncRemaining.Int64,
			ProgressPercent: r.FullSyncPercent.Float64,
		}
	}
	return rec
}

// GetOrCreate returns the sync record for a source, lazily inserting a
// never-synced row on first use.
func (s *SyncRecordStore) GetOrCreate(ctx context.Context, sourceID int64) (*domain.SyncRecord, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sync_records (source_id, status)
		VALUES ($1, $2)
		ON CONFLICT (source_id) DO NOTHING`,
		sourceID, string(domain.SyncStatusNeverSynced),
	)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, sourceID)
}

func (s *SyncRecordStore) Get(ctx context.Context, sourceID int64) (*domain.SyncRecord, error) {
	var row syncRecordRow
	err := s.db.GetContext(ctx, &row,
		`SELECT `+syncRecordColumns+` FROM sync_records WHERE source_id = $1`,
		sourceID,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrSourceNotFound
	}
	if err != nil {
		return nil, err
	}
	rec := row.toDomain()
	return &rec, nil
}

// TryStart persists a started record behind an atomic conditional
// update. The status guard in the WHERE clause makes two concurrent
// triggers for the same source serialize: the loser gets
// ErrSyncInProgress instead of clobbering the winner's run.
func (s *SyncRecordStore) TryStart(ctx context.Context, rec domain.SyncRecord) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE sync_records SET
			status = $2,
			sync_started_at = $3,
			sync_completed_at = NULL,
			synced_count = 0,
			failed_count = 0,
			total_count = $4,
			cursor = $5,
			full_sync_mode = $6,
			resync_requested = FALSE,
			full_sync_synced = $7,
			full_sync_remaining = $8,
			full_sync_percent = $9
		WHERE source_id = $1 AND status <> $10`,
		rec.SourceID,
		string(domain.SyncStatusInProgress),
		rec.SyncStartedAt,
		nullInt64(rec.TotalCount),
		rec.Cursor,
		rec.FullSyncMode,
		progressSynced(rec.FullSyncProgress),
		progressRemaining(rec.FullSyncProgress),
		progressPercent(rec.FullSyncProgress),
		string(domain.SyncStatusInProgress),
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrSyncInProgress
	}
	return nil
}

// TryResume re-claims a paused in-progress run by advancing
// sync_started_at behind the same conditional-update discipline as
// TryStart. The expected timestamp in the WHERE clause makes two
// concurrent resume calls serialize: the loser gets ErrSyncInProgress
// instead of driving a second page loop for the source.
func (s *SyncRecordStore) TryResume(ctx context.Context, sourceID int64, expectedStartedAt *time.Time, now time.Time) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE sync_records SET sync_started_at = $3
		WHERE source_id = $1
		  AND status = $4
		  AND sync_started_at IS NOT DISTINCT FROM $2`,
		sourceID,
		expectedStartedAt,
		now,
		string(domain.SyncStatusInProgress),
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrSyncInProgress
	}
	return nil
}

// SaveProgress accumulates per-page counters with in-database
// increments and persists the continuation cursor, so a crash loses at
// most the in-flight page.
func (s *SyncRecordStore) SaveProgress(ctx context.Context, sourceID int64, syncedDelta, failedDelta int64, cursor *string, progress *domain.FullSyncProgress) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE sync_records SET
			synced_count = synced_count + $2,
			failed_count = failed_count + $3,
			cursor = COALESCE($4, cursor),
			full_sync_synced = COALESCE($5, full_sync_synced),
			full_sync_remaining = COALESCE($6, full_sync_remaining),
			full_sync_percent = COALESCE($7, full_sync_percent)
		WHERE source_id = $1`,
		sourceID,
		syncedDelta,
		failedDelta,
		cursor,
		progressSynced(progress),
		progressRemaining(progress),
		progressPercent(progress),
	)
	return err
}

// Save persists a fully transitioned record (complete, fail, resume
// bookkeeping). Counters are written as absolute values; at most one
// run is active per source, so no concurrent writer exists.
func (s *SyncRecordStore) Save(ctx context.Context, rec domain.SyncRecord) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE sync_records SET
			status = $2,
			cursor = $3,
			last_synced_at = $4,
			sync_started_at = $5,
			sync_completed_at = $6,
			total_count = $7,
			synced_count = $8,
			failed_count = $9,
			consecutive_failure_count = $10,
			last_error = $11,
			initial_sync_completed = $12,
			full_sync_mode = $13,
			resync_requested = $14,
			full_sync_synced = $15,
			full_sync_remaining = $16,
			full_sync_percent = $17
		WHERE source_id = $1`,
		rec.SourceID,
		string(rec.Status),
		rec.Cursor,
		rec.LastSyncedAt,
		rec.SyncStartedAt,
		rec.SyncCompletedAt,
		nullInt64(rec.TotalCount),
		rec.SyncedCount,
		rec.FailedCount,
		rec.ConsecutiveFailureCount,
		rec.LastError,
		rec.InitialSyncCompleted,
		rec.FullSyncMode,
		rec.ResyncRequested,
		progressSynced(rec.FullSyncProgress),
		progressRemaining(rec.FullSyncProgress),
		progressPercent(rec.FullSyncProgress),
	)
	return err
}

// MarkResyncRequested flags a source for the next scheduled
// enumeration even if it is quarantined by consecutive failures.
func (s *SyncRecordStore) MarkResyncRequested(ctx context.Context, sourceID int64) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE sync_records SET resync_requested = TRUE WHERE source_id = $1`,
		sourceID,
	)
	return err
}

// ListEligibleSources enumerates active sources due for a scheduled
// sync: never synced, stale past the freshness threshold, or
// explicitly requested. Sources quarantined by consecutive failures
// are skipped unless requested.
func (s *SyncRecordStore) ListEligibleSources(ctx context.Context, now time.Time, freshness time.Duration, maxConsecutiveFailures int) ([]domain.Source, error) {
	staleBefore := now.Add(-freshness)

	var sources []domain.Source
	err := s.db.SelectContext(ctx, &sources, `
		SELECT s.id, s.external_id, s.provider, s.name, s.active, s.created_at
		FROM sources s
		LEFT JOIN sync_records r ON r.source_id = s.id
		WHERE s.active
		  AND (r.id IS NULL OR (
			r.status <> $1
			AND (r.resync_requested OR r.consecutive_failure_count < $2)
			AND (r.resync_requested
				OR r.last_synced_at IS NULL
				OR r.last_synced_at <= $3)))
		ORDER BY s.id`,
		string(domain.SyncStatusInProgress),
		maxConsecutiveFailures,
		staleBefore,
	)
	return sources, err
}

// ListStuck returns in-progress records whose run started at or before
// the given instant.
func (s *SyncRecordStore) ListStuck(ctx context.Context, startedBefore time.Time) ([]domain.SyncRecord, error) {
	var rows []syncRecordRow
	err := s.db.SelectContext(ctx, &rows,
		`SELECT `+syncRecordColumns+` FROM sync_records WHERE status = $1 AND sync_started_at <= $2`,
		string(domain.SyncStatusInProgress),
		startedBefore,
	)
	if err != nil {
		return nil, err
	}
	recs := make([]domain.SyncRecord, 0, len(rows))
	for _, row := range rows {
		recs = append(recs, row.toDomain())
	}
	return recs, nil
}

// List returns every sync record, for the aggregate stats surface.
func (s *SyncRecordStore) List(ctx context.Context) ([]domain.SyncRecord, error) {
	var rows []syncRecordRow
	err := s.db.SelectContext(ctx, &rows,
		`SELECT `+syncRecordColumns+` FROM sync_records ORDER BY source_id`,
	)
	if err != nil {
		return nil, err
	}
	recs := make([]domain.SyncRecord, 0, len(rows))
	for _, row := range rows {
		recs = append(recs, row.toDomain())
	}
	return recs, nil
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func progressSynced(p *domain.FullSyncProgress) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: p.SyncedCount, Valid: true}
}

func progressRemaining(p *domain.FullSyncProgress) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: p.RemainingCount, Valid: true}
}

func progressPercent(p *domain.FullSyncProgress) sql.NullFloat64 {
	if p == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: p.ProgressPercent, Valid: true}
}
