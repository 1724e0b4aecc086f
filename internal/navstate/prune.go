package navstate

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// PruneInterval is how often RunPruner sweeps expired sessions by default.
const PruneInterval = time.Hour

// RunPruner deletes sessions idle for longer than ttl once immediately and
// then every interval until ctx is done.
func RunPruner(ctx context.Context, store Store, ttl, interval time.Duration, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if interval <= 0 {
		interval = PruneInterval
	}
	sweep := func() {
		n, err := store.Prune(ctx, time.Now().Add(-ttl))
		if err != nil {
			if ctx.Err() == nil {
				logger.Warn("prune sessions failed", zap.Error(err))
			}
			return
		}
		if n > 0 {
			logger.Info("pruned expired sessions", zap.Int64("count", n))
		}
	}

	sweep()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sweep()
		}
	}
}
