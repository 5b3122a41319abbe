package retry

import (
	"context"
	"ecare-automation/internal/pkg/constvars"
	"errors"
	"fmt"
	"math"
	"net"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultMaxAttempts       = 3
	DefaultDelay             = time.Second
	DefaultBackoffMultiplier = 2.0
)

// Policy bounds how an operation is retried. The zero value makes a single
// attempt.
type Policy struct {
	MaxAttempts       int
	Delay             time.Duration
	BackoffMultiplier float64
	ShouldRetry       func(err error) bool
}

func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:       DefaultMaxAttempts,
		Delay:             DefaultDelay,
		BackoffMultiplier: DefaultBackoffMultiplier,
		ShouldRetry:       DefaultShouldRetry,
	}
}

// statusClassifier is implemented by errors that carry an HTTP status.
type statusClassifier interface {
	IsServerError() bool
	IsRateLimited() bool
}

// DefaultShouldRetry retries connection resets, timeouts, 5xx and 429 responses.
func DefaultShouldRetry(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.ETIMEDOUT) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var classified statusClassifier
	if errors.As(err, &classified) {
		return classified.IsServerError() || classified.IsRateLimited()
	}
	return false
}

// BackoffDelay is the wait before the retry that follows the given failed
// attempt (1-based).
func BackoffDelay(policy Policy, attempt int) time.Duration {
	policy = policy.normalized()
	if attempt < 1 {
		attempt = 1
	}
	return time.Duration(float64(policy.Delay) * math.Pow(policy.BackoffMultiplier, float64(attempt-1)))
}

func (p Policy) normalized() Policy {
	if p.MaxAttempts < 1 {
		p.MaxAttempts = 1
	}
	if p.Delay < 0 {
		p.Delay = 0
	}
	if p.BackoffMultiplier <= 0 {
		p.BackoffMultiplier = DefaultBackoffMultiplier
	}
	if p.ShouldRetry == nil {
		p.ShouldRetry = DefaultShouldRetry
	}
	return p
}

var sleep = func(ctx context.Context, d time.Duration) error {
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

func Execute(ctx context.Context, log *zap.Logger, policy Policy, op func(ctx context.Context) error) error {
	_, err := Do(ctx, log, policy, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	})
	return err
}

// Do runs op until it succeeds, the policy gives up, or ctx is done. The
// returned error is the last one op produced.
func Do[T any](ctx context.Context, log *zap.Logger, policy Policy, op func(ctx context.Context) (T, error)) (T, error) {
	if log == nil {
		log = zap.NewNop()
	}
	policy = policy.normalized()
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var (
		result  T
		lastErr error
	)
	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		result, lastErr = op(ctx)
		if lastErr == nil {
			return result, nil
		}

		if attempt == policy.MaxAttempts {
			break
		}

		if !policy.ShouldRetry(lastErr) {
			log.Warn("Non-retryable error encountered",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int(constvars.LoggingAttemptKey, attempt),
				zap.Error(lastErr),
			)
			return result, lastErr
		}

		delay := BackoffDelay(policy, attempt)
		log.Warn(fmt.Sprintf("Attempt %d failed, retrying in %dms", attempt, delay.Milliseconds()),
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingAttemptKey, attempt),
			zap.Int(constvars.LoggingMaxAttemptsKey, policy.MaxAttempts),
			zap.Duration(constvars.LoggingDelayKey, delay),
			zap.Error(lastErr),
		)

		if err := sleep(ctx, delay); err != nil {
			return result, errors.Join(err, lastErr)
		}
	}

	log.Error(fmt.Sprintf("Operation failed after %d attempts", policy.MaxAttempts),
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingMaxAttemptsKey, policy.MaxAttempts),
		zap.Error(lastErr),
	)
	return result, lastErr
}
