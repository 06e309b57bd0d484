// Package quota tracks billed platform API usage against a rolling
// per-provider budget window and gates sync work on it.
package quota

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"content_syncer/internal/domain"
)

// Store is the persistence the tracker needs: an append-only ledger
// with window aggregation and pruning.
type Store interface {
	Insert(ctx context.Context, rec *domain.QuotaUsageRecord) error
	SumSince(ctx context.Context, provider string, since time.Time) (int64, error)
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Config holds the budget policy for one provider.
type Config struct {
	Provider      string
	WindowLimit   int64
	Window        time.Duration // rolling window, e.g. 24h
	SoftThreshold float64       // pause bulk continuation at this usage fraction
	HardThreshold float64       // skip whole cycles at this usage fraction
	Retention     time.Duration
	RatePerSecond float64
	RateBurst     int
}

// Tracker is the quota budget ledger for a single provider. Usage is
// computed over a rolling window ending now, so budget frees up
// continuously rather than at a calendar boundary.
type Tracker struct {
	store   Store
	cfg     Config
	limiter *rate.Limiter
	logger  *slog.Logger
	now     func() time.Time
}

func NewTracker(store Store, cfg Config, logger *slog.Logger) *Tracker {
	return &Tracker{
		store:   store,
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.RateBurst),
		logger:  logger.With("provider", cfg.Provider),
		now:     time.Now,
	}
}

// Wait paces a billed call against the provider's per-second
// allowance. Budget gating is separate; this only smooths bursts.
func (t *Tracker) Wait(ctx context.Context) error {
	return t.limiter.Wait(ctx)
}

// RecordUsage appends a ledger entry for one billed call.
func (t *Tracker) RecordUsage(ctx context.Context, operation string, units int64) error {
	now := t.now()
	rec := &domain.QuotaUsageRecord{
		Provider:      t.cfg.Provider,
		Operation:     operation,
		UnitsConsumed: units,
		WindowStart:   now.Add(-t.cfg.Window),
		CreatedAt:     now,
	}
	if err := t.store.Insert(ctx, rec); err != nil {
		return err
	}
	t.logger.Debug("recorded quota usage", "operation", operation, "units", units)
	return nil
}

// GetUsageSummary aggregates the ledger over the current window.
func (t *Tracker) GetUsageSummary(ctx context.Context) (*domain.QuotaSummary, error) {
	since := t.now().Add(-t.cfg.Window)
	consumed, err := t.store.SumSince(ctx, t.cfg.Provider, since)
	if err != nil {
		return nil, err
	}

	remaining := t.cfg.WindowLimit - consumed
	if remaining < 0 {
		remaining = 0
	}
	percentage := 0.0
	if t.cfg.WindowLimit > 0 {
		percentage = float64(consumed) / float64(t.cfg.WindowLimit) * 100
	}

	return &domain.QuotaSummary{
		Provider:        t.cfg.Provider,
		Consumed:        consumed,
		Limit:           t.cfg.WindowLimit,
		Remaining:       remaining,
		UsagePercentage: percentage,
	}, nil
}

// AllowCycle reports whether a scheduled cycle may run at all. False
// means the hard threshold has been reached and the whole cycle is
// skipped for this provider.
func (t *Tracker) AllowCycle(ctx context.Context) (bool, error) {
	summary, err := t.GetUsageSummary(ctx)
	if err != nil {
		return false, err
	}
	allowed := summary.UsagePercentage < t.cfg.HardThreshold*100
	if !allowed {
		t.logger.Warn("hard quota threshold reached, skipping cycle",
			"consumed", summary.Consumed,
			"limit", summary.Limit,
			"usage_percentage", summary.UsagePercentage,
		)
	}
	return allowed, nil
}

// AllowContinue reports whether bulk pagination may fetch another
// page. False means the soft threshold has been crossed; committed
// progress stands and the run pauses.
func (t *Tracker) AllowContinue(ctx context.Context) (bool, error) {
	summary, err := t.GetUsageSummary(ctx)
	if err != nil {
		return false, err
	}
	return summary.UsagePercentage < t.cfg.SoftThreshold*100, nil
}

// CleanupExpired prunes ledger rows past the retention horizon.
func (t *Tracker) CleanupExpired(ctx context.Context) error {
	cutoff := t.now().Add(-t.cfg.Retention)
	deleted, err := t.store.DeleteBefore(ctx, cutoff)
	if err != nil {
		return err
	}
	if deleted > 0 {
		t.logger.Info("pruned quota ledger", "deleted", deleted, "cutoff", cutoff)
	}
	return nil
}
