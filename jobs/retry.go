package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"crm-assistant/errors"
)

const (
	DefaultMaxAttempts = 3
	DefaultBaseDelay   = 500 * time.Millisecond
)

// Retry runs fn until it succeeds or maxAttempts is exhausted. The delay
// doubles after each failed attempt (base, 2x base, 4x base, ...). The
// context aborts the backoff wait early.
func Retry(ctx context.Context, log *slog.Logger, name string, maxAttempts int, baseDelay time.Duration, fn func(ctx context.Context) error) error {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if attempt == maxAttempts {
			break
		}

		delay := baseDelay << (attempt - 1)
		log.Warn("Attempt failed, backing off",
			"name", name,
			"attempt", attempt,
			"delay", delay,
			"error", lastErr,
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return fmt.Errorf("%w: %s after %d attempts: %w", errors.ErrRetriesExhausted, name, maxAttempts, lastErr)
}
