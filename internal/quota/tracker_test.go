package quota

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content_syncer/internal/domain"
)

type fakeStore struct {
	records []domain.QuotaUsageRecord
	deleted []time.Time
}

func (f *fakeStore) Insert(_ context.Context, rec *domain.QuotaUsageRecord) error {
	f.records = append(f.records, *rec)
	return nil
}

func (f *fakeStore) SumSince(_ context.Context, provider string, since time.Time) (int64, error) {
	var sum int64
	for _, rec := range f.records {
		if rec.Provider == provider && !rec.CreatedAt.Before(since) {
			sum += rec.UnitsConsumed
		}
	}
	return sum, nil
}

func (f *fakeStore) DeleteBefore(_ context.Context, cutoff time.Time) (int64, error) {
	f.deleted = append(f.deleted, cutoff)
	var kept []domain.QuotaUsageRecord
	var removed int64
	for _, rec := range f.records {
		if rec.CreatedAt.Before(cutoff) {
			removed++
		} else {
			kept = append(kept, rec)
		}
	}
	f.records = kept
	return removed, nil
}

func newTestTracker(store Store, limit int64) *Tracker {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewTracker(store, Config{
		Provider:      "creatorhub",
		WindowLimit:   limit,
		Window:        24 * time.Hour,
		SoftThreshold: 0.90,
		HardThreshold: 0.95,
		Retention:     72 * time.Hour,
		RatePerSecond: 1000,
		RateBurst:     1000,
	}, logger)
}

func TestTracker_GetUsageSummary(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{}
	tracker := newTestTracker(store, 100)

	require.NoError(t, tracker.RecordUsage(ctx, "content.list", 30))
	require.NoError(t, tracker.RecordUsage(ctx, "content.list", 20))

	summary, err := tracker.GetUsageSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(50), summary.Consumed)
	assert.Equal(t, int64(50), summary.Remaining)
	assert.InDelta(t, 50.0, summary.UsagePercentage, 0.01)
}

func TestTracker_UsageOutsideWindowIgnored(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{}
	tracker := newTestTracker(store, 100)

	old := domain.QuotaUsageRecord{
		Provider:      "creatorhub",
		Operation:     "content.list",
		UnitsConsumed: 80,
		CreatedAt:     time.Now().Add(-25 * time.Hour),
	}
	store.records = append(store.records, old)
	require.NoError(t, tracker.RecordUsage(ctx, "content.list", 10))

	summary, err := tracker.GetUsageSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(10), summary.Consumed)
}

func TestTracker_Gates(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{}
	tracker := newTestTracker(store, 100)

	require.NoError(t, tracker.RecordUsage(ctx, "content.list", 89))

	cont, err := tracker.AllowContinue(ctx)
	require.NoError(t, err)
	assert.True(t, cont)

	cycle, err := tracker.AllowCycle(ctx)
	require.NoError(t, err)
	assert.True(t, cycle)

	// 92% crosses the soft threshold but not the hard one.
	require.NoError(t, tracker.RecordUsage(ctx, "content.list", 3))

	cont, err = tracker.AllowContinue(ctx)
	require.NoError(t, err)
	assert.False(t, cont)

	cycle, err = tracker.AllowCycle(ctx)
	require.NoError(t, err)
	assert.True(t, cycle)

	// 96% crosses the hard threshold too.
	require.NoError(t, tracker.RecordUsage(ctx, "content.list", 4))

	cycle, err = tracker.AllowCycle(ctx)
	require.NoError(t, err)
	assert.False(t, cycle)
}

func TestTracker_CleanupExpired(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{}
	tracker := newTestTracker(store, 100)

	store.records = append(store.records, domain.QuotaUsageRecord{
		Provider:      "creatorhub",
		UnitsConsumed: 5,
		CreatedAt:     time.Now().Add(-80 * time.Hour),
	})
	require.NoError(t, tracker.RecordUsage(ctx, "content.list", 5))

	require.NoError(t, tracker.CleanupExpired(ctx))
	assert.Len(t, store.records, 1)
}
