package scheduler

import (
	"context"
	"time"

	"auction-house/internal/notifier"
	"auction-house/internal/repository"
	"auction-house/utils"
)

// Config controls the sweep intervals and the payment grace window
type Config struct {
	// CloseInterval is the worst-case delay between an auction's end time
	// and its finalization.
	CloseInterval time.Duration
	// FallbackInterval bounds how late an expired order is cancelled.
	FallbackInterval time.Duration
	// GraceWindow is how long a winner has to pay before the order is
	// forfeited to the next bidder.
	GraceWindow time.Duration
}

// DefaultConfig mirrors the production defaults: minute sweeps, 48h to pay
func DefaultConfig() Config {
	return Config{
		CloseInterval:    time.Minute,
		FallbackInterval: time.Minute,
		GraceWindow:      48 * time.Hour,
	}
}

// Scheduler runs the two periodic sweeps: auction close and order payment
// fallback. It holds no state between ticks; every decision is recomputed
// from the ledger, so restarts lose nothing beyond the current tick.
type Scheduler struct {
	repo   repository.LedgerStore
	events notifier.Notifier
	cfg    Config
	now    func() time.Time
}

// New creates a scheduler over the given ledger and notifier
func New(repo repository.LedgerStore, events notifier.Notifier, cfg Config) *Scheduler {
	return &Scheduler{
		repo:   repo,
		events: events,
		cfg:    cfg,
		now:    time.Now,
	}
}

// Start launches both sweep loops. They stop when the context is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	go s.loop(ctx, s.cfg.CloseInterval, "close", s.SweepExpiredAuctions)
	go s.loop(ctx, s.cfg.FallbackInterval, "fallback", s.SweepExpiredOrders)
	utils.Info("scheduler started", map[string]any{
		"close_interval":    s.cfg.CloseInterval.String(),
		"fallback_interval": s.cfg.FallbackInterval.String(),
		"grace_window":      s.cfg.GraceWindow.String(),
	})
}

func (s *Scheduler) loop(ctx context.Context, interval time.Duration, name string, sweep func() error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := sweep(); err != nil {
				utils.Error("scheduler sweep failed", map[string]any{
					"sweep": name,
					"error": err.Error(),
				})
			}
		}
	}
}
