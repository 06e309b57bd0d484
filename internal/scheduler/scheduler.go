package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// Runner is the orchestrator surface the scheduler drives.
type Runner interface {
	RunCycle(ctx context.Context)
	SweepStuck(ctx context.Context)
}

// QuotaJanitor prunes expired quota usage records.
type QuotaJanitor interface {
	CleanupExpired(ctx context.Context) error
}

// Ticker abstracts time.Ticker so tests can drive ticks directly.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock produces tickers. The real implementation wraps the time
// package; tests inject a fake.
type Clock interface {
	NewTicker(d time.Duration) Ticker
}

type realTicker struct {
	t *time.Ticker
}

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

type realClock struct{}

func (realClock) NewTicker(d time.Duration) Ticker {
	return realTicker{t: time.NewTicker(d)}
}

// RealClock returns the wall-clock backed Clock.
func RealClock() Clock {
	return realClock{}
}

// Config holds the three cadences the scheduler runs.
type Config struct {
	CycleInterval   time.Duration // scheduled sync passes
	SweepInterval   time.Duration // stuck-run sweeps
	CleanupInterval time.Duration // quota record pruning
	CycleTimeout    time.Duration // per-pass deadline, 0 for none
}

type Scheduler struct {
	runner  Runner
	janitor QuotaJanitor
	clock   Clock
	cfg     Config
	logger  *slog.Logger
}

func NewScheduler(runner Runner, janitor QuotaJanitor, clock Clock, cfg Config, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		runner:  runner,
		janitor: janitor,
		clock:   clock,
		cfg:     cfg,
		logger:  logger,
	}
}

// Start runs one immediate cycle, then loops on the three cadences
// until the context is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started",
		"cycle_interval", s.cfg.CycleInterval,
		"sweep_interval", s.cfg.SweepInterval,
		"cleanup_interval", s.cfg.CleanupInterval,
	)

	s.runCycle(ctx)

	cycle := s.clock.NewTicker(s.cfg.CycleInterval)
	defer cycle.Stop()
	sweep := s.clock.NewTicker(s.cfg.SweepInterval)
	defer sweep.Stop()
	cleanup := s.clock.NewTicker(s.cfg.CleanupInterval)
	defer cleanup.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-cycle.C():
			s.runCycle(ctx)
		case <-sweep.C():
			s.runner.SweepStuck(ctx)
		case <-cleanup.C():
			s.runCleanup(ctx)
		}
	}
}

func (s *Scheduler) runCycle(ctx context.Context) {
	if s.cfg.CycleTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.CycleTimeout)
		defer cancel()
	}
	s.runner.RunCycle(ctx)
}

func (s *Scheduler) runCleanup(ctx context.Context) {
	if err := s.janitor.CleanupExpired(ctx); err != nil {
		s.logger.Error("quota cleanup failed", "error", err)
	}
}
