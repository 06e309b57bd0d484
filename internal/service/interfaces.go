package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"content_syncer/internal/domain"
)

// PageFetcher is the paginated platform API contract. One call fetches
// one page; exactly one of Cursor or Since is set on the request.
type PageFetcher interface {
	Provider() string
	FetchPage(ctx context.Context, externalID string, req domain.PageRequest) (*domain.PageResult, error)
	FetchSourceMeta(ctx context.Context, externalID string) (*domain.SourceMeta, error)
}

type ContentStore interface {
	Upsert(ctx context.Context, item *domain.ContentItem) (int64, error)
	GetExistingByExternalIDs(ctx context.Context, sourceID int64, ids []string) (map[string]time.Time, error)
}

type ContentStatsStore interface {
	Upsert(ctx context.Context, stats *domain.ContentStats) error
}

type SyncRecordStore interface {
	GetOrCreate(ctx context.Context, sourceID int64) (*domain.SyncRecord, error)
	Get(ctx context.Context, sourceID int64) (*domain.SyncRecord, error)
	TryStart(ctx context.Context, rec domain.SyncRecord) error
	TryResume(ctx context.Context, sourceID int64, expectedStartedAt *time.Time, now time.Time) error
	SaveProgress(ctx context.Context, sourceID int64, syncedDelta, failedDelta int64, cursor *string, progress *domain.FullSyncProgress) error
	Save(ctx context.Context, rec domain.SyncRecord) error
	MarkResyncRequested(ctx context.Context, sourceID int64) error
	ListEligibleSources(ctx context.Context, now time.Time, freshness time.Duration, maxConsecutiveFailures int) ([]domain.Source, error)
	ListStuck(ctx context.Context, startedBefore time.Time) ([]domain.SyncRecord, error)
	List(ctx context.Context) ([]domain.SyncRecord, error)
}

type SourceStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Source, error)
}

// QuotaGate is the budget view the orchestrator consults before every
// billed call.
type QuotaGate interface {
	Wait(ctx context.Context) error
	RecordUsage(ctx context.Context, operation string, units int64) error
	AllowCycle(ctx context.Context) (bool, error)
	AllowContinue(ctx context.Context) (bool, error)
	GetUsageSummary(ctx context.Context) (*domain.QuotaSummary, error)
}

// Ingestor persists one fetched page of items.
type Ingestor interface {
	IngestBatch(ctx context.Context, sourceID int64, items []domain.ContentItem) (ingested, failed int, err error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, item *domain.ContentItem, isNew bool) error
	Close() error
}
