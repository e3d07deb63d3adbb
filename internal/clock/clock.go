// Package clock provides context-aware sleeping and backoff jitter.
package clock

import (
	"context"
	"math/rand/v2"
	"time"
)

// SleepWithContext waits for the duration or returns early with the context
// error once the context is done. A non-positive duration only checks the
// context.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
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

// JitterBetween returns a uniformly random duration in [lo, hi). It returns
// lo when the interval is empty.
func JitterBetween(lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + rand.N(hi-lo)
}
