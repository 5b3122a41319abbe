package retry

import (
	"context"
	"ecare-automation/internal/pkg/exceptions"
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func recordSleeps(t *testing.T) *[]time.Duration {
	t.Helper()
	var waits []time.Duration
	original := sleep
	sleep = func(ctx context.Context, d time.Duration) error {
		waits = append(waits, d)
		return ctx.Err()
	}
	t.Cleanup(func() { sleep = original })
	return &waits
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

var _ net.Error = timeoutErr{}

func TestDo(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Succeeds First Attempt", func(t *testing.T) {
		waits := recordSleeps(t)
		calls := 0
		result, err := Do(context.Background(), logger, DefaultPolicy(), func(ctx context.Context) (string, error) {
			calls++
			return "ok", nil
		})

		require.NoError(t, err)
		assert.Equal(t, "ok", result)
		assert.Equal(t, 1, calls)
		assert.Empty(t, *waits)
	})

	t.Run("Retries Server Errors With Backoff", func(t *testing.T) {
		waits := recordSleeps(t)
		calls := 0
		result, err := Do(context.Background(), logger, DefaultPolicy(), func(ctx context.Context) (int, error) {
			calls++
			if calls < 3 {
				return 0, exceptions.NewAPIError(503, "GET", "/provider", "unavailable", nil)
			}
			return 42, nil
		})

		require.NoError(t, err)
		assert.Equal(t, 42, result)
		assert.Equal(t, 3, calls)
		assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, *waits)
	})

	t.Run("Returns Last Error When Exhausted", func(t *testing.T) {
		recordSleeps(t)
		calls := 0
		err := Execute(context.Background(), logger, DefaultPolicy(), func(ctx context.Context) error {
			calls++
			return exceptions.NewAPIError(500, "POST", "/patient", fmt.Sprintf("boom %d", calls), nil)
		})

		require.Error(t, err)
		assert.Equal(t, 3, calls)
		assert.Equal(t, "HTTP 500: boom 3", err.Error())
	})

	t.Run("Stops On Client Error", func(t *testing.T) {
		waits := recordSleeps(t)
		calls := 0
		err := Execute(context.Background(), logger, DefaultPolicy(), func(ctx context.Context) error {
			calls++
			return exceptions.NewAPIError(400, "POST", "/patient", "bad request", nil)
		})

		require.Error(t, err)
		assert.Equal(t, 1, calls)
		assert.Empty(t, *waits)
	})

	t.Run("Zero Attempts Runs Once", func(t *testing.T) {
		recordSleeps(t)
		calls := 0
		err := Execute(context.Background(), logger, Policy{MaxAttempts: 0}, func(ctx context.Context) error {
			calls++
			return syscall.ECONNRESET
		})

		require.ErrorIs(t, err, syscall.ECONNRESET)
		assert.Equal(t, 1, calls)
	})

	t.Run("Context Cancelled While Waiting", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		original := sleep
		sleep = func(ctx context.Context, d time.Duration) error {
			cancel()
			return ctx.Err()
		}
		t.Cleanup(func() { sleep = original })

		lastErr := exceptions.NewAPIError(502, "GET", "/provider", "bad gateway", nil)
		calls := 0
		err := Execute(ctx, logger, DefaultPolicy(), func(ctx context.Context) error {
			calls++
			return lastErr
		})

		assert.Equal(t, 1, calls)
		assert.ErrorIs(t, err, context.Canceled)
		var apiErr *exceptions.APIError
		assert.True(t, errors.As(err, &apiErr))
	})
}

func TestDefaultShouldRetry(t *testing.T) {
	t.Run("Retryable", func(t *testing.T) {
		assert.True(t, DefaultShouldRetry(fmt.Errorf("read: %w", syscall.ECONNRESET)))
		assert.True(t, DefaultShouldRetry(syscall.ETIMEDOUT))
		assert.True(t, DefaultShouldRetry(timeoutErr{}))
		assert.True(t, DefaultShouldRetry(exceptions.NewAPIError(429, "GET", "/", "", nil)))
		assert.True(t, DefaultShouldRetry(exceptions.ErrSendHTTPRequest(exceptions.NewAPIError(504, "GET", "/", "", nil))))
	})

	t.Run("Not Retryable", func(t *testing.T) {
		assert.False(t, DefaultShouldRetry(nil))
		assert.False(t, DefaultShouldRetry(errors.New("validation failed")))
		assert.False(t, DefaultShouldRetry(exceptions.NewAPIError(404, "GET", "/", "", nil)))
		assert.False(t, DefaultShouldRetry(exceptions.NewAPIError(600, "GET", "/", "", nil)))
		assert.False(t, DefaultShouldRetry(exceptions.NewAPIError(999, "GET", "/", "", nil)))
	})
}

func TestBackoffDelay(t *testing.T) {
	policy := Policy{Delay: 100 * time.Millisecond, BackoffMultiplier: 3}
	assert.Equal(t, 100*time.Millisecond, BackoffDelay(policy, 1))
	assert.Equal(t, 300*time.Millisecond, BackoffDelay(policy, 2))
	assert.Equal(t, 900*time.Millisecond, BackoffDelay(policy, 3))

	assert.Equal(t, 200*time.Millisecond, BackoffDelay(Policy{Delay: 100 * time.Millisecond}, 2), "unset multiplier defaults to 2")
	assert.Equal(t, time.Duration(0), BackoffDelay(Policy{Delay: -time.Second}, 2))
}
