package sync

import (
	"context"
	"time"
)

// sleep suspends the pipeline for d, waking early when the context is
// cancelled. No-op for non-positive durations.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
