package discovery

import (
	"context"
	"time"
)

// withRetry runs fn with bounded attempts and exponential backoff, giving up
// early when the context is cancelled.
func withRetry(ctx context.Context, attempts int, baseDelay time.Duration, fn func(context.Context) error) error {
	var err error
	delay := baseDelay
	for i := 0; i < attempts; i++ {
		if err = fn(ctx); err == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return err
}
