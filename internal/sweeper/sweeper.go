package sweeper

import (
	"context"
	"log/slog"
	"time"

	"github.com/Fid-Wiz/timecapsule/internal/contextutil"
)

// CapsuleUnlocker is the slice of the capsule store the sweeper needs.
type CapsuleUnlocker interface {
	UnlockDue(ctx context.Context, now time.Time) (int64, error)
}

// Sweeper periodically advances due capsules from locked to unlocked. It is
// polling-based on purpose: the staleness window between a capsule's due time
// and its visibility change is bounded by the interval. Sweeps are idempotent
// and need no coordination; the guarded update in the store carries all the
// concurrency safety.
type Sweeper struct {
	capsules CapsuleUnlocker
	interval time.Duration
	logger   *slog.Logger
}

// New creates a new Sweeper.
func New(capsules CapsuleUnlocker, interval time.Duration) *Sweeper {
	return &Sweeper{
		capsules: capsules,
		interval: interval,
		logger:   slog.Default(),
	}
}

// SweepOnce advances every capsule due at the given instant and returns the
// number of capsules this invocation actually transitioned.
func (s *Sweeper) SweepOnce(ctx context.Context, now time.Time) (int64, error) {
	logger := contextutil.LoggerFromContext(ctx)

	unlocked, err := s.capsules.UnlockDue(ctx, now)
	if err != nil {
		logger.ErrorContext(ctx, "sweep failed", "error", err)
		return 0, err
	}

	if unlocked > 0 {
		logger.InfoContext(ctx, "sweep unlocked capsules", "count", unlocked)
	} else {
		logger.DebugContext(ctx, "sweep found no due capsules")
	}
	return unlocked, nil
}

// Run sweeps on the configured interval until the context is canceled.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("unlock sweeper started", "interval", s.interval.String())
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("unlock sweeper stopped")
			return
		case now := <-ticker.C:
			if _, err := s.SweepOnce(ctx, now); err != nil {
				s.logger.Error("scheduled sweep failed", "error", err)
			}
		}
	}
}
