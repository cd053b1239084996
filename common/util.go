package common

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
)

// WaitForValue repeatedly calls the given function until it returns a non-nil value or an error.
// A nil value with a nil error means "not yet": the call is repeated on the next tick.
// Returns context.DeadlineExceeded if nothing arrives within the timeout.
func WaitForValue[T any](
	ctx context.Context,
	clock clockwork.Clock,
	timeout,
	tick time.Duration,
	f func(ctx context.Context) (*T, error),
) (*T, error) {
	deadline := clock.After(timeout)

	ticker := clock.NewTicker(tick)
	defer ticker.Stop()

	for {
		res, err := f(ctx)
		if err != nil {
			return res, err
		}
		if res != nil {
			return res, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-deadline:
			return nil, context.DeadlineExceeded
		case <-ticker.Chan():
		}
	}
}
