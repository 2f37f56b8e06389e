package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MrSnakeDoc/klub/internal/logger"
	"github.com/MrSnakeDoc/klub/internal/portal"
	"github.com/MrSnakeDoc/klub/internal/seed"
	"github.com/MrSnakeDoc/klub/internal/store"
	"github.com/MrSnakeDoc/klub/internal/store/memory"
)

type countingSeeder struct {
	calls atomic.Int32
	err   error
}

func (c *countingSeeder) Seed(context.Context, bool) (seed.Result, error) {
	c.calls.Add(1)
	return seed.Result{}, c.err
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestSeedKeeper_StartSeedsImmediately(t *testing.T) {
	b := memory.New(0)
	svc := portal.New(b, seed.Defaults(time.Now()))

	sk := NewSeedKeeper(svc, logger.Nop(), time.Hour, make(chan struct{}))
	if err := sk.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer sk.Stop()

	if b.Len() != len(store.Keys()) {
		t.Errorf("Expected %d collections after start, got %d", len(store.Keys()), b.Len())
	}
}

func TestSeedKeeper_StartFailsWhenSeedFails(t *testing.T) {
	seeder := &countingSeeder{err: errors.New("boom")}

	sk := NewSeedKeeper(seeder, logger.Nop(), time.Hour, make(chan struct{}))
	if err := sk.Start(context.Background()); err == nil {
		t.Fatal("Start should fail when the initial seed fails")
	}
}

func TestSeedKeeper_ManualTrigger(t *testing.T) {
	b := memory.New(0)
	svc := portal.New(b, seed.Defaults(time.Now()))
	trigger := make(chan struct{}, 1)

	sk := NewSeedKeeper(svc, logger.Nop(), 0, trigger)
	if err := sk.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer sk.Stop()

	// simulate eviction of one collection
	if err := b.Delete(context.Background(), store.KeyBanner); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	trigger <- struct{}{}

	waitFor(t, func() bool {
		_, err := b.Get(context.Background(), store.KeyBanner)
		return err == nil
	})
}

func TestSeedKeeper_Ticker(t *testing.T) {
	seeder := &countingSeeder{}

	sk := NewSeedKeeper(seeder, logger.Nop(), 10*time.Millisecond, make(chan struct{}))
	if err := sk.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	waitFor(t, func() bool { return seeder.calls.Load() >= 3 })

	sk.Stop()
	sk.Stop() // idempotent
}

func TestSeedKeeper_StopsWithContext(t *testing.T) {
	seeder := &countingSeeder{}
	ctx, cancel := context.WithCancel(context.Background())

	sk := NewSeedKeeper(seeder, logger.Nop(), 5*time.Millisecond, make(chan struct{}))
	if err := sk.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	cancel()

	time.Sleep(30 * time.Millisecond)
	settled := seeder.calls.Load()
	time.Sleep(30 * time.Millisecond)
	if seeder.calls.Load() != settled {
		t.Errorf("keeper kept running after context cancel")
	}
}
