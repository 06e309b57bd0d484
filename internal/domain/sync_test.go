package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncRecord_Start(t *testing.T) {
	now := time.Now()
	rec := NewSyncRecord(7)

	started, err := rec.Start(now, nil)
	require.NoError(t, err)
	assert.Equal(t, SyncStatusInProgress, started.Status)
	require.NotNil(t, started.SyncStartedAt)
	assert.Equal(t, now, *started.SyncStartedAt)
	assert.Zero(t, started.SyncedCount)
	assert.Zero(t, started.FailedCount)
}

func TestSyncRecord_Start_AlreadyInProgress(t *testing.T) {
	now := time.Now()
	rec, err := NewSyncRecord(7).Start(now, nil)
	require.NoError(t, err)

	_, err = rec.Start(now.Add(time.Minute), nil)
	assert.ErrorIs(t, err, ErrSyncInProgress)
}

func TestSyncRecord_Start_ResetsCounters(t *testing.T) {
	now := time.Now()
	rec := NewSyncRecord(7)
	rec.SyncedCount = 40
	rec.FailedCount = 2
	rec.Status = SyncStatusFailed

	total := int64(120)
	started, err := rec.Start(now, &total)
	require.NoError(t, err)
	assert.Zero(t, started.SyncedCount)
	assert.Zero(t, started.FailedCount)
	require.NotNil(t, started.TotalCount)
	assert.Equal(t, int64(120), *started.TotalCount)
}

func TestSyncRecord_WithProgress(t *testing.T) {
	rec := NewSyncRecord(7)
	cursor := "page-2"

	rec = rec.WithProgress(49, 1, &cursor)
	rec = rec.WithProgress(50, 0, nil)

	assert.Equal(t, int64(99), rec.SyncedCount)
	assert.Equal(t, int64(1), rec.FailedCount)
	require.NotNil(t, rec.Cursor)
	assert.Equal(t, "page-2", *rec.Cursor)
}

func TestSyncRecord_WithProgress_FullSyncProgress(t *testing.T) {
	rec := NewSyncRecord(7).BeginFullResync(200)

	rec = rec.WithProgress(50, 0, nil)

	require.NotNil(t, rec.FullSyncProgress)
	assert.Equal(t, int64(50), rec.FullSyncProgress.SyncedCount)
	assert.Equal(t, int64(150), rec.FullSyncProgress.RemainingCount)
	assert.InDelta(t, 25.0, rec.FullSyncProgress.ProgressPercent, 0.01)
}

func TestSyncRecord_Complete(t *testing.T) {
	now := time.Now()
	rec, err := NewSyncRecord(7).Start(now, nil)
	require.NoError(t, err)
	rec.ConsecutiveFailureCount = 3
	lastErr := "boom"
	rec.LastError = &lastErr
	rec.FullSyncMode = true

	done := rec.Complete(now.Add(time.Minute))

	assert.Equal(t, SyncStatusCompleted, done.Status)
	assert.True(t, done.InitialSyncCompleted)
	assert.False(t, done.FullSyncMode)
	assert.Nil(t, done.LastError)
	assert.Nil(t, done.Cursor)
	assert.Zero(t, done.ConsecutiveFailureCount)
	require.NotNil(t, done.LastSyncedAt)
}

func TestSyncRecord_Fail_KeepsPartialProgress(t *testing.T) {
	now := time.Now()
	rec, err := NewSyncRecord(7).Start(now, nil)
	require.NoError(t, err)
	cursor := "page-1"
	rec = rec.WithProgress(50, 0, &cursor)

	failed := rec.Fail(now.Add(time.Minute), "fetch page 2: connection reset")

	assert.Equal(t, SyncStatusFailed, failed.Status)
	assert.Equal(t, int64(50), failed.SyncedCount)
	require.NotNil(t, failed.Cursor)
	assert.Equal(t, "page-1", *failed.Cursor)
	require.NotNil(t, failed.LastError)
	assert.Equal(t, 1, failed.ConsecutiveFailureCount)
	assert.False(t, failed.InitialSyncCompleted)
}

func TestSyncRecord_Mode(t *testing.T) {
	rec := NewSyncRecord(7)
	assert.Equal(t, SyncModeFull, rec.Mode())

	rec.InitialSyncCompleted = true
	assert.Equal(t, SyncModeIncremental, rec.Mode())

	rec.FullSyncMode = true
	assert.Equal(t, SyncModeFull, rec.Mode())
}

func TestComputeFullSyncProgress(t *testing.T) {
	p := ComputeFullSyncProgress(120, 120)
	assert.Equal(t, int64(0), p.RemainingCount)
	assert.Equal(t, 100.0, p.ProgressPercent)

	p = ComputeFullSyncProgress(0, 0)
	assert.Equal(t, 100.0, p.ProgressPercent)

	// Metadata count is approximate; synced may overshoot it.
	p = ComputeFullSyncProgress(130, 120)
	assert.Equal(t, int64(0), p.RemainingCount)
	assert.Equal(t, 100.0, p.ProgressPercent)
}

func TestSyncRecord_Stale(t *testing.T) {
	now := time.Now()
	rec := NewSyncRecord(7)
	assert.True(t, rec.Stale(now, time.Hour))

	recent := now.Add(-30 * time.Minute)
	rec.LastSyncedAt = &recent
	assert.False(t, rec.Stale(now, time.Hour))

	old := now.Add(-2 * time.Hour)
	rec.LastSyncedAt = &old
	assert.True(t, rec.Stale(now, time.Hour))
}

func TestSyncRecord_StuckSince(t *testing.T) {
	now := time.Now()
	started := now.Add(-3 * time.Hour)

	rec := NewSyncRecord(7)
	rec.Status = SyncStatusInProgress
	rec.SyncStartedAt = &started
	assert.True(t, rec.StuckSince(now, 2*time.Hour))

	rec.Status = SyncStatusCompleted
	assert.False(t, rec.StuckSince(now, 2*time.Hour))

	recent := now.Add(-time.Hour)
	rec.Status = SyncStatusInProgress
	rec.SyncStartedAt = &recent
	assert.False(t, rec.StuckSince(now, 2*time.Hour))
}
