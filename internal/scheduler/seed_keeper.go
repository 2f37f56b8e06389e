package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MrSnakeDoc/klub/internal/logger"
	"github.com/MrSnakeDoc/klub/internal/seed"
)

// Seeder writes seed data for collections that are missing.
type Seeder interface {
	Seed(ctx context.Context, reset bool) (seed.Result, error)
}

// SeedKeeper seeds the store at startup and re-seeds collections that went
// missing since (eviction, manual deletion), on a ticker or on demand.
type SeedKeeper struct {
	seeder        Seeder
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	stopOnce      sync.Once
	manualTrigger chan struct{}
}

// NewSeedKeeper creates a keeper. A send on manualTrigger runs Reconcile.
func NewSeedKeeper(
	seeder Seeder,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *SeedKeeper {
	return &SeedKeeper{
		seeder:        seeder,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start seeds once, then keeps reconciling in the background until ctx ends
// or Stop is called.
func (sk *SeedKeeper) Start(ctx context.Context) error {
	if err := sk.Reconcile(ctx); err != nil {
		return fmt.Errorf("initial seed failed: %w", err)
	}

	// A zero interval disables the ticker; manual triggers still work.
	var ticker *time.Ticker
	if sk.interval > 0 {
		ticker = time.NewTicker(sk.interval)
	}
	go sk.loop(ctx, ticker)
	return nil
}

func (sk *SeedKeeper) loop(ctx context.Context, ticker *time.Ticker) {
	var tick <-chan time.Time
	if ticker != nil {
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-tick:
			if err := sk.Reconcile(ctx); err != nil {
				sk.logger.Error("failed to reseed collections",
					logger.Error(err))
			}
		case <-sk.manualTrigger:
			sk.logger.Info("manual reseed triggered")
			if err := sk.Reconcile(ctx); err != nil {
				sk.logger.Error("failed to reseed collections",
					logger.Error(err))
			}
		case <-sk.stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Stop stops the background loop. Safe to call more than once.
func (sk *SeedKeeper) Stop() {
	sk.stopOnce.Do(func() { close(sk.stopCh) })
}

// Reconcile writes every missing collection.
func (sk *SeedKeeper) Reconcile(ctx context.Context) error {
	res, err := sk.seeder.Seed(ctx, false)
	if err != nil {
		return err
	}

	if len(res.Written) > 0 {
		sk.logger.Info("reseeded missing collections",
			logger.Int("count", len(res.Written)))
	} else {
		sk.logger.Debug("all collections present",
			logger.Int("count", len(res.Kept)))
	}
	return nil
}
