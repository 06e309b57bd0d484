package domain

import (
	"errors"
	"time"
)

// SyncStatus is the lifecycle state of a source's sync record.
type SyncStatus string

const (
	SyncStatusNeverSynced SyncStatus = "never_synced"
	SyncStatusInProgress  SyncStatus = "in_progress"
	SyncStatusCompleted   SyncStatus = "completed"
	SyncStatusFailed      SyncStatus = "failed"
)

// SyncMode selects how pages are requested from the platform.
type SyncMode string

const (
	// SyncModeFull crawls from the beginning using cursor pagination.
	SyncModeFull SyncMode = "full"
	// SyncModeIncremental fetches only items modified since the last
	// successful sync.
	SyncModeIncremental SyncMode = "incremental"
)

var (
	// ErrSyncInProgress is returned when a sync is started for a source
	// that already has one running. Callers treat it as a no-op.
	ErrSyncInProgress = errors.New("sync already in progress")

	// ErrSourceNotFound is returned for lookups of unknown sources.
	ErrSourceNotFound = errors.New("source not found")

	// ErrQuotaExhausted is returned when the hard quota threshold has
	// been reached for a provider.
	ErrQuotaExhausted = errors.New("quota exhausted")
)

// FullSyncProgress is observable progress of a manual full recrawl,
// persisted after every page.
type FullSyncProgress struct {
	SyncedCount     int64   `json:"synced_count"`
	RemainingCount  int64   `json:"remaining_count"`
	ProgressPercent float64 `json:"progress_percent"`
}

// SyncRecord is the durable per-source progress record. All mutation
// goes through the transition methods below; stores persist the
// results.
type SyncRecord struct {
	ID                      int64
	SourceID                int64
	Status                  SyncStatus
	Cursor                  *string
	LastSyncedAt            *time.Time
	SyncStartedAt           *time.Time
	SyncCompletedAt         *time.Time
	TotalCount              *int64
	SyncedCount             int64
	FailedCount             int64
	ConsecutiveFailureCount int
	LastError               *string
	InitialSyncCompleted    bool
	FullSyncMode            bool
	ResyncRequested         bool
	FullSyncProgress        *FullSyncProgress
}

// NewSyncRecord returns the lazily-created initial record for a source.
func NewSyncRecord(sourceID int64) SyncRecord {
	return SyncRecord{
		SourceID: sourceID,
		Status:   SyncStatusNeverSynced,
	}
}

// Mode returns the sync mode the next run should use. Incremental is
// only valid once an initial full crawl has completed.
func (r SyncRecord) Mode() SyncMode {
	if r.InitialSyncCompleted && !r.FullSyncMode {
		return SyncModeIncremental
	}
	return SyncModeFull
}

// Start transitions the record to in-progress, resetting per-run
// counters. Returns ErrSyncInProgress if a run is already active.
func (r SyncRecord) Start(now time.Time, expectedTotal *int64) (SyncRecord, error) {
	if r.Status == SyncStatusInProgress {
		return r, ErrSyncInProgress
	}

	r.Status = SyncStatusInProgress
	r.SyncStartedAt = &now
	r.SyncCompletedAt = nil
	r.SyncedCount = 0
	r.FailedCount = 0
	r.ResyncRequested = false
	if expectedTotal != nil {
		r.TotalCount = expectedTotal
	}
	return r, nil
}

// WithProgress accumulates per-page counters and advances the cursor.
// A nil cursor leaves the persisted cursor unchanged.
func (r SyncRecord) WithProgress(syncedDelta, failedDelta int64, cursor *string) SyncRecord {
	r.SyncedCount += syncedDelta
	r.FailedCount += failedDelta
	if cursor != nil {
		r.Cursor = cursor
	}
	if r.FullSyncMode && r.TotalCount != nil {
		p := ComputeFullSyncProgress(r.SyncedCount, *r.TotalCount)
		r.FullSyncProgress = &p
	}
	return r
}

// Complete transitions the record to completed. The cursor is cleared
// so the next full crawl starts from the beginning.
func (r SyncRecord) Complete(now time.Time) SyncRecord {
	r.Status = SyncStatusCompleted
	r.LastSyncedAt = &now
	r.SyncCompletedAt = &now
	r.LastError = nil
	r.Cursor = nil
	r.ConsecutiveFailureCount = 0
	r.InitialSyncCompleted = true
	r.FullSyncMode = false
	r.FullSyncProgress = nil
	return r
}

// Fail transitions the record to failed, keeping partial counters and
// the last committed cursor so the next attempt can resume.
func (r SyncRecord) Fail(now time.Time, errMsg string) SyncRecord {
	r.Status = SyncStatusFailed
	r.SyncCompletedAt = &now
	r.LastError = &errMsg
	r.ConsecutiveFailureCount++
	return r
}

// BeginFullResync marks the record for a manual full recrawl with a
// freshly planned total count.
func (r SyncRecord) BeginFullResync(expectedTotal int64) SyncRecord {
	r.FullSyncMode = true
	r.TotalCount = &expectedTotal
	r.Cursor = nil
	p := ComputeFullSyncProgress(0, expectedTotal)
	r.FullSyncProgress = &p
	return r
}

// ComputeFullSyncProgress derives observable recrawl progress from the
// synced count and the planned total.
func ComputeFullSyncProgress(synced, total int64) FullSyncProgress {
	remaining := total - synced
	if remaining < 0 {
		remaining = 0
	}
	percent := 100.0
	if total > 0 {
		percent = float64(synced) / float64(total) * 100
		if percent > 100 {
			percent = 100
		}
	}
	return FullSyncProgress{
		SyncedCount:     synced,
		RemainingCount:  remaining,
		ProgressPercent: percent,
	}
}

// Stale reports whether the record is due for a scheduled sync at the
// given freshness threshold.
func (r SyncRecord) Stale(now time.Time, freshness time.Duration) bool {
	if r.LastSyncedAt == nil {
		return true
	}
	return now.Sub(*r.LastSyncedAt) >= freshness
}

// StuckSince reports whether an in-progress run has exceeded the sync
// timeout and should be auto-failed by the sweep.
func (r SyncRecord) StuckSince(now time.Time, timeout time.Duration) bool {
	if r.Status != SyncStatusInProgress || r.SyncStartedAt == nil {
		return false
	}
	return now.Sub(*r.SyncStartedAt) > timeout
}
