package cleanup

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePruner struct {
	mu      sync.Mutex
	cutoffs []time.Time
	removed int
	err     error
}

func (f *fakePruner) DeleteOlderThan(_ context.Context, cutoff time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cutoffs = append(f.cutoffs, cutoff)
	return f.removed, f.err
}

func (f *fakePruner) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cutoffs)
}

func TestSweep(t *testing.T) {
	t.Run("cutoff is retention days in the past", func(t *testing.T) {
		pruner := &fakePruner{removed: 3}
		svc := NewService(Config{RetentionDays: 30, Interval: time.Hour}, pruner)

		svc.Sweep(context.Background())

		require.Equal(t, 1, pruner.calls())
		want := time.Now().AddDate(0, 0, -30)
		assert.WithinDuration(t, want, pruner.cutoffs[0], time.Minute)
	})

	t.Run("pruner errors do not propagate", func(t *testing.T) {
		pruner := &fakePruner{err: errors.New("db down")}
		svc := NewService(Config{RetentionDays: 7, Interval: time.Hour}, pruner)

		svc.Sweep(context.Background())
		assert.Equal(t, 1, pruner.calls())
	})
}

func TestStartStop(t *testing.T) {
	t.Run("start sweeps immediately and on each tick", func(t *testing.T) {
		pruner := &fakePruner{}
		svc := NewService(Config{RetentionDays: 1, Interval: 20 * time.Millisecond}, pruner)

		svc.Start(context.Background())
		defer svc.Stop()

		assert.Eventually(t, func() bool { return pruner.calls() >= 2 },
			time.Second, 10*time.Millisecond)
	})

	t.Run("disabled retention never starts the loop", func(t *testing.T) {
		pruner := &fakePruner{}
		svc := NewService(Config{RetentionDays: 0, Interval: time.Millisecond}, pruner)

		svc.Start(context.Background())
		svc.Stop()

		time.Sleep(20 * time.Millisecond)
		assert.Zero(t, pruner.calls())
	})
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := LoadConfigFromEnv()
		assert.Zero(t, cfg.RetentionDays)
		assert.Equal(t, time.Hour, cfg.Interval)
	})

	t.Run("reads overrides", func(t *testing.T) {
		t.Setenv("RETENTION_DAYS", "45")
		t.Setenv("CLEANUP_INTERVAL", "30m")
		cfg := LoadConfigFromEnv()
		assert.Equal(t, 45, cfg.RetentionDays)
		assert.Equal(t, 30*time.Minute, cfg.Interval)
	})

	t.Run("ignores invalid values", func(t *testing.T) {
		t.Setenv("RETENTION_DAYS", "-1")
		t.Setenv("CLEANUP_INTERVAL", "soon")
		cfg := LoadConfigFromEnv()
		assert.Zero(t, cfg.RetentionDays)
		assert.Equal(t, time.Hour, cfg.Interval)
	})
}
