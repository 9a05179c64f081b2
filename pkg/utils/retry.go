package utils

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Retry runs op up to attempts times, doubling the delay between attempts.
// The store client gives no timeout guarantee of its own, so every call
// through here should carry a context with a deadline. Returns the last
// error once the attempts are exhausted.
func Retry(ctx context.Context, logger *zap.Logger, attempts int, initialDelay time.Duration, op func() error) error {
	if attempts < 1 {
		attempts = 1
	}

	var err error
	delay := initialDelay

	for attempt := 1; attempt <= attempts; attempt++ {
		if err = op(); err == nil {
			return nil
		}

		if attempt == attempts {
			break
		}

		logger.Warn("Store operation failed, retrying",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", attempts),
			zap.Duration("delay", delay),
			zap.Error(err))

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return fmt.Errorf("retry aborted: %w", ctx.Err())
		}

		delay *= 2
	}

	return fmt.Errorf("store unavailable after %d attempts: %w", attempts, err)
}
