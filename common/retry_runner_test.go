package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestRetryRunner(t *testing.T) {
	t.Parallel()

	errTransient := errors.New("transient")
	errFatal := errors.New("fatal")

	newRunner := func(maxRetries uint32) RetryRunner {
		return NewRetryRunner(
			RetryConfig{
				ShouldRetry: ComposeRetryPolicies(LimitRetries(maxRetries), DoNotRetryIf(errFatal)),
				NextDelay:   DelayExponential(time.Millisecond, 5*time.Millisecond),
			},
			clockwork.NewRealClock(),
			zerolog.Nop(),
		)
	}

	t.Run("SucceedsAfterTransientErrors", func(t *testing.T) {
		t.Parallel()

		runner := newRunner(5)
		attempts := 0
		err := runner.Do(t.Context(), func(context.Context) error {
			attempts++
			if attempts < 3 {
				return errTransient
			}
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, 3, attempts)
	})

	t.Run("GivesUpAfterLimit", func(t *testing.T) {
		t.Parallel()

		runner := newRunner(3)
		attempts := 0
		err := runner.Do(t.Context(), func(context.Context) error {
			attempts++
			return errTransient
		})
		require.ErrorIs(t, err, errTransient)
		require.Equal(t, 3, attempts)
	})

	t.Run("NonRetryable", func(t *testing.T) {
		t.Parallel()

		runner := newRunner(5)
		attempts := 0
		err := runner.Do(t.Context(), func(context.Context) error {
			attempts++
			return errFatal
		})
		require.ErrorIs(t, err, errFatal)
		require.Equal(t, 1, attempts)
	})
}

func TestDelayExponential(t *testing.T) {
	t.Parallel()

	next := DelayExponential(100*time.Millisecond, time.Second)
	require.Equal(t, 100*time.Millisecond, next(1))
	require.Equal(t, 200*time.Millisecond, next(2))
	require.Equal(t, 400*time.Millisecond, next(3))
	require.Equal(t, 800*time.Millisecond, next(4))
	require.Equal(t, time.Second, next(5))
	require.Equal(t, time.Second, next(50))
}
