package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"content_syncer/internal/domain"
)

// OrchestratorConfig holds the sync policy knobs.
type OrchestratorConfig struct {
	PageSize               int
	Freshness              time.Duration
	StuckTimeout           time.Duration
	MaxConsecutiveFailures int
	FetchQuotaUnits        int64
	MetaQuotaUnits         int64
}

// Orchestrator drives per-source synchronization: it selects the sync
// mode, walks pages, enforces quota gates, isolates per-source
// failures and keeps the durable sync record current after every page.
type Orchestrator struct {
	fetcher  PageFetcher
	sources  SourceStore
	records  SyncRecordStore
	ingestor Ingestor
	quota    QuotaGate
	logger   *slog.Logger
	cfg      OrchestratorConfig
	now      func() time.Time
}

func NewOrchestrator(
	fetcher PageFetcher,
	sources SourceStore,
	records SyncRecordStore,
	ingestor Ingestor,
	quota QuotaGate,
	logger *slog.Logger,
	cfg OrchestratorConfig,
) *Orchestrator {
	return &Orchestrator{
		fetcher:  fetcher,
		sources:  sources,
		records:  records,
		ingestor: ingestor,
		quota:    quota,
		logger:   logger.With("provider", fetcher.Provider()),
		cfg:      cfg,
		now:      time.Now,
	}
}

// RunCycle is one scheduled pass: gate on the hard quota threshold,
// enumerate eligible sources and sync each inside its own error
// boundary so one source never stops its siblings.
func (o *Orchestrator) RunCycle(ctx context.Context) {
	allowed, err := o.quota.AllowCycle(ctx)
	if err != nil {
		o.logger.Error("failed to check quota for cycle", "error", err)
		return
	}
	if !allowed {
		return
	}

	sources, err := o.records.ListEligibleSources(ctx, o.now(), o.cfg.Freshness, o.cfg.MaxConsecutiveFailures)
	if err != nil {
		o.logger.Error("failed to enumerate eligible sources", "error", err)
		return
	}

	o.logger.Info("starting sync cycle", "eligible_sources", len(sources))

	for _, src := range sources {
		if ctx.Err() != nil {
			return
		}
		o.syncOne(ctx, src)
	}
}

func (o *Orchestrator) syncOne(ctx context.Context, src domain.Source) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("panic during source sync", "source_id", src.ID, "panic", r)
		}
	}()

	_, err := o.SyncSource(ctx, src)
	switch {
	case errors.Is(err, domain.ErrSyncInProgress):
		o.logger.Info("sync already in progress, skipping", "source_id", src.ID)
	case err != nil:
		o.logger.Error("source sync failed", "source_id", src.ID, "error", err)
	}
}

// SyncSource runs one sync for a source: cursor-based full crawl until
// the initial sync completes, incremental from lastSyncedAt after.
// Returns ErrSyncInProgress if another run holds the record.
func (o *Orchestrator) SyncSource(ctx context.Context, src domain.Source) (*domain.SyncRunStats, error) {
	logger := o.logger.With("source_id", src.ID, "run_id", uuid.NewString())

	rec, err := o.records.GetOrCreate(ctx, src.ID)
	if err != nil {
		return nil, fmt.Errorf("load sync record: %w", err)
	}

	started, err := rec.Start(o.now(), nil)
	if err != nil {
		return nil, err
	}
	// The conditional update is what actually serializes concurrent
	// triggers; the in-memory check above only catches stale reads.
	if err := o.records.TryStart(ctx, started); err != nil {
		return nil, err
	}

	mode := started.Mode()
	logger.Info("starting sync",
		"mode", mode,
		"resuming_cursor", started.Cursor != nil,
	)

	return o.runPageLoop(ctx, logger, src, started, mode)
}

// StartManualSync runs an on-demand sync for one source. The request
// flag is set first so a quota-blocked attempt is picked up by the
// next scheduled cycle, quarantine or not.
func (o *Orchestrator) StartManualSync(ctx context.Context, sourceID int64) (*domain.SyncRunStats, error) {
	src, err := o.sources.GetByID(ctx, sourceID)
	if err != nil {
		return nil, err
	}

	if _, err := o.records.GetOrCreate(ctx, sourceID); err != nil {
		return nil, fmt.Errorf("load sync record: %w", err)
	}
	if err := o.records.MarkResyncRequested(ctx, sourceID); err != nil {
		return nil, fmt.Errorf("mark resync requested: %w", err)
	}

	allowed, err := o.quota.AllowCycle(ctx)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domain.ErrQuotaExhausted
	}

	return o.SyncSource(ctx, *src)
}

// TriggerFullResync plans a recrawl from the channel metadata count,
// resets counters and walks the whole history from the beginning,
// persisting observable progress after every page.
func (o *Orchestrator) TriggerFullResync(ctx context.Context, sourceID int64) (*domain.SyncRunStats, error) {
	src, err := o.sources.GetByID(ctx, sourceID)
	if err != nil {
		return nil, err
	}

	allowed, err := o.quota.AllowCycle(ctx)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domain.ErrQuotaExhausted
	}

	if err := o.quota.Wait(ctx); err != nil {
		return nil, err
	}
	meta, err := o.fetcher.FetchSourceMeta(ctx, src.ExternalID)
	if recErr := o.quota.RecordUsage(ctx, "channel.meta", o.cfg.MetaQuotaUnits); recErr != nil {
		o.logger.Warn("failed to record quota usage", "error", recErr)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch source metadata: %w", err)
	}

	rec, err := o.records.GetOrCreate(ctx, sourceID)
	if err != nil {
		return nil, fmt.Errorf("load sync record: %w", err)
	}

	planned := rec.BeginFullResync(meta.TotalItems)
	started, err := planned.Start(o.now(), planned.TotalCount)
	if err != nil {
		return nil, err
	}
	if err := o.records.TryStart(ctx, started); err != nil {
		return nil, err
	}

	logger := o.logger.With("source_id", src.ID, "run_id", uuid.NewString())
	logger.Info("starting full resync", "expected_total", meta.TotalItems)

	return o.runPageLoop(ctx, logger, *src, started, domain.SyncModeFull)
}

// ResumeInitialSync continues a run paused by the soft quota gate (or
// interrupted by a crash whose record is still in progress) from the
// persisted cursor, without resetting counters.
func (o *Orchestrator) ResumeInitialSync(ctx context.Context, sourceID int64) (*domain.SyncRunStats, error) {
	src, err := o.sources.GetByID(ctx, sourceID)
	if err != nil {
		return nil, err
	}

	rec, err := o.records.Get(ctx, sourceID)
	if err != nil {
		return nil, err
	}
	if rec.Status != domain.SyncStatusInProgress {
		return nil, fmt.Errorf("source %d has no paused sync to resume (status %s)", sourceID, rec.Status)
	}

	// The conditional update is the claim; the status check above is
	// only a stale read. Two concurrent resume calls serialize here,
	// the same way TryStart serializes concurrent triggers.
	now := o.now()
	if err := o.records.TryResume(ctx, sourceID, rec.SyncStartedAt, now); err != nil {
		return nil, err
	}
	resumed := *rec
	resumed.SyncStartedAt = &now

	logger := o.logger.With("source_id", src.ID, "run_id", uuid.NewString())
	logger.Info("resuming sync",
		"resuming_cursor", resumed.Cursor != nil,
		"synced_so_far", resumed.SyncedCount,
	)

	return o.runPageLoop(ctx, logger, *src, resumed, domain.SyncModeFull)
}

// GetSyncStatus returns the sync record for a source.
func (o *Orchestrator) GetSyncStatus(ctx context.Context, sourceID int64) (*domain.SyncRecord, error) {
	if _, err := o.sources.GetByID(ctx, sourceID); err != nil {
		return nil, err
	}
	return o.records.GetOrCreate(ctx, sourceID)
}

// ListSyncStats returns every source's sync record for the aggregate
// stats surface.
func (o *Orchestrator) ListSyncStats(ctx context.Context) ([]domain.SyncRecord, error) {
	return o.records.List(ctx)
}

// SweepStuck auto-fails records stuck in progress beyond the timeout
// so a crashed run cannot block future attempts forever.
func (o *Orchestrator) SweepStuck(ctx context.Context) {
	cutoff := o.now().Add(-o.cfg.StuckTimeout)

	stuck, err := o.records.ListStuck(ctx, cutoff)
	if err != nil {
		o.logger.Error("failed to scan for stuck syncs", "error", err)
		return
	}

	for _, rec := range stuck {
		failed := rec.Fail(o.now(), fmt.Sprintf("sync stuck in progress for over %s, auto-failed", o.cfg.StuckTimeout))
		if err := o.records.Save(ctx, failed); err != nil {
			o.logger.Error("failed to auto-fail stuck sync", "source_id", rec.SourceID, "error", err)
			continue
		}
		o.logger.Warn("auto-failed stuck sync",
			"source_id", rec.SourceID,
			"started_at", rec.SyncStartedAt,
		)
	}
}

// runPageLoop is the page-at-a-time driving loop. Progress commits
// after every page, so a crash loses at most the in-flight page.
func (o *Orchestrator) runPageLoop(
	ctx context.Context,
	logger *slog.Logger,
	src domain.Source,
	rec domain.SyncRecord,
	mode domain.SyncMode,
) (*domain.SyncRunStats, error) {
	startTime := o.now()
	stats := &domain.SyncRunStats{SourceID: src.ID, Mode: mode}

	cursor := rec.Cursor
	var since *time.Time
	if mode == domain.SyncModeIncremental {
		since = rec.LastSyncedAt
	}

	for {
		if err := o.quota.Wait(ctx); err != nil {
			return stats, o.failSync(ctx, logger, src.ID, err)
		}

		req := domain.PageRequest{PageSize: o.cfg.PageSize}
		if cursor != nil {
			req.Cursor = cursor
		} else if since != nil {
			req.Since = since
		}

		page, err := o.fetcher.FetchPage(ctx, src.ExternalID, req)
		// The call is billed whether or not it succeeded, so the
		// ledger entry lands before the error is handled.
		if recErr := o.quota.RecordUsage(ctx, "content.list", o.cfg.FetchQuotaUnits); recErr != nil {
			logger.Warn("failed to record quota usage", "error", recErr)
		}
		if err != nil {
			return stats, o.failSync(ctx, logger, src.ID, fmt.Errorf("fetch page: %w", err))
		}

		ingested, failed, err := o.ingestor.IngestBatch(ctx, src.ID, page.Items)
		if err != nil {
			return stats, o.failSync(ctx, logger, src.ID, fmt.Errorf("ingest page: %w", err))
		}

		stats.Pages++
		stats.Ingested += ingested
		stats.Failed += failed

		rec = rec.WithProgress(int64(ingested), int64(failed), page.NextCursor)
		if err := o.records.SaveProgress(ctx, src.ID, int64(ingested), int64(failed), page.NextCursor, rec.FullSyncProgress); err != nil {
			return stats, o.failSync(ctx, logger, src.ID, fmt.Errorf("save progress: %w", err))
		}

		quotaOK := true
		if page.NextCursor != nil {
			quotaOK, err = o.quota.AllowContinue(ctx)
			if err != nil {
				return stats, o.failSync(ctx, logger, src.ID, fmt.Errorf("check quota: %w", err))
			}
		}

		switch nextPageDecision(page.NextCursor != nil, quotaOK) {
		case pagePause:
			// Committed progress stands; the record stays in progress
			// with the cursor persisted for a later resume.
			stats.Paused = true
			stats.Duration = o.now().Sub(startTime)
			logger.Info("pausing sync at quota soft threshold",
				"pages", stats.Pages,
				"ingested", stats.Ingested,
			)
			return stats, nil
		case pageComplete:
			completed := rec.Complete(o.now())
			if err := o.records.Save(ctx, completed); err != nil {
				return stats, o.failSync(ctx, logger, src.ID, fmt.Errorf("complete sync: %w", err))
			}
			stats.Duration = o.now().Sub(startTime)
			logger.Info("sync completed",
				"mode", mode,
				"pages", stats.Pages,
				"ingested", stats.Ingested,
				"failed", stats.Failed,
				"duration", stats.Duration,
			)
			return stats, nil
		case pageContinue:
			cursor = page.NextCursor
		}
	}
}

// failSync persists the failed transition with whatever progress has
// already been committed; the next scheduled cycle retries.
func (o *Orchestrator) failSync(ctx context.Context, logger *slog.Logger, sourceID int64, cause error) error {
	// A shutdown or deadline is not a source failure: the record stays
	// in progress with its committed cursor so the run can resume, and
	// the consecutive failure count is untouched. The sweep reclaims
	// the run if nothing resumes it.
	if errors.Is(cause, context.Canceled) || errors.Is(cause, context.DeadlineExceeded) {
		logger.Info("sync interrupted, leaving run resumable", "error", cause)
		return cause
	}

	cur, err := o.records.Get(ctx, sourceID)
	if err != nil {
		logger.Error("failed to load sync record for failure", "error", err)
		return cause
	}

	failed := cur.Fail(o.now(), cause.Error())
	if err := o.records.Save(ctx, failed); err != nil {
		logger.Error("failed to persist sync failure", "error", err)
	}

	logger.Error("sync failed",
		"error", cause,
		"synced_count", failed.SyncedCount,
		"failed_count", failed.FailedCount,
		"consecutive_failures", failed.ConsecutiveFailureCount,
	)
	return cause
}

type pageDecision int

const (
	pageComplete pageDecision = iota
	pageContinue
	pagePause
)

// nextPageDecision is the single continue-vs-pause guard for the page
// loop: crawl on while pages remain and the soft quota gate allows it.
func nextPageDecision(hasNext, quotaOK bool) pageDecision {
	switch {
	case !hasNext:
		return pageComplete
	case quotaOK:
		return pageContinue
	default:
		return pagePause
	}
}
