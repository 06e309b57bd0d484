package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeTicker struct {
	ch chan time.Time
}

func (f *fakeTicker) C() <-chan time.Time { return f.ch }
func (f *fakeTicker) Stop()               {}

// fakeClock hands out one fake ticker per NewTicker call, in order, so
// the test can drive each cadence independently.
type fakeClock struct {
	mu      sync.Mutex
	tickers []*fakeTicker
}

func (f *fakeClock) NewTicker(time.Duration) Ticker {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := &fakeTicker{ch: make(chan time.Time, 1)}
	f.tickers = append(f.tickers, t)
	return t
}

func (f *fakeClock) tick(t *testing.T, i int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		f.mu.Lock()
		if i < len(f.tickers) {
			tk := f.tickers[i]
			f.mu.Unlock()
			tk.ch <- time.Now()
			return
		}
		f.mu.Unlock()
		if time.Now().After(deadline) {
			t.Fatalf("ticker %d was never created", i)
		}
		time.Sleep(time.Millisecond)
	}
}

type recordingRunner struct {
	cycles chan struct{}
	sweeps chan struct{}
}

func (r *recordingRunner) RunCycle(context.Context)   { r.cycles <- struct{}{} }
func (r *recordingRunner) SweepStuck(context.Context) { r.sweeps <- struct{}{} }

type recordingJanitor struct {
	calls chan struct{}
	err   error
}

func (j *recordingJanitor) CleanupExpired(context.Context) error {
	j.calls <- struct{}{}
	return j.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func awaitSignal(t *testing.T, ch chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func TestScheduler_RunsImmediateCycleThenCadences(t *testing.T) {
	clock := &fakeClock{}
	runner := &recordingRunner{cycles: make(chan struct{}, 8), sweeps: make(chan struct{}, 8)}
	janitor := &recordingJanitor{calls: make(chan struct{}, 8)}

	cfg := Config{
		CycleInterval:   time.Hour,
		SweepInterval:   10 * time.Minute,
		CleanupInterval: 24 * time.Hour,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- NewScheduler(runner, janitor, clock, cfg, testLogger()).Start(ctx)
	}()

	// Immediate cycle on startup, before any tick.
	awaitSignal(t, runner.cycles, "startup cycle")

	// Tickers are created in cycle, sweep, cleanup order.
	clock.tick(t, 0)
	awaitSignal(t, runner.cycles, "ticked cycle")

	clock.tick(t, 1)
	awaitSignal(t, runner.sweeps, "sweep")

	clock.tick(t, 2)
	awaitSignal(t, janitor.calls, "cleanup")

	// No cross-talk: nothing extra fired.
	require.Empty(t, runner.cycles)
	require.Empty(t, runner.sweeps)
	require.Empty(t, janitor.calls)

	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop on cancel")
	}
}

func TestScheduler_CleanupErrorDoesNotStopLoop(t *testing.T) {
	clock := &fakeClock{}
	runner := &recordingRunner{cycles: make(chan struct{}, 8), sweeps: make(chan struct{}, 8)}
	janitor := &recordingJanitor{calls: make(chan struct{}, 8), err: errors.New("db down")}

	cfg := Config{
		CycleInterval:   time.Hour,
		SweepInterval:   time.Hour,
		CleanupInterval: time.Hour,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- NewScheduler(runner, janitor, clock, cfg, testLogger()).Start(ctx)
	}()

	awaitSignal(t, runner.cycles, "startup cycle")

	clock.tick(t, 2)
	awaitSignal(t, janitor.calls, "failing cleanup")

	// The loop is still alive after the cleanup error.
	clock.tick(t, 1)
	awaitSignal(t, runner.sweeps, "sweep after failed cleanup")

	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop on cancel")
	}
}
