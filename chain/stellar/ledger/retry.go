package ledger

import (
	"context"
	"time"

	"github.com/avast/retry-go/v4"
)

// RetryConfig defines how adapters retry idempotent reads (account lookup and simulation).
// Submission is never retried.
type RetryConfig struct {
	// Attempts is the total number of attempts, including the first one. Values below 1 are
	// treated as 1.
	Attempts uint
	// Delay is the fixed delay between attempts.
	Delay time.Duration
}

// DefaultRetryConfig is used when an adapter is constructed without WithRetry.
var DefaultRetryConfig = RetryConfig{
	Attempts: 3,
	Delay:    500 * time.Millisecond,
}

// RetryOpts returns the retry options for the configuration bound to ctx.
func (c RetryConfig) RetryOpts(ctx context.Context, onRetry retry.OnRetryFunc) []retry.Option {
	attempts := c.Attempts
	if attempts == 0 {
		attempts = 1
	}

	opts := []retry.Option{
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(c.Delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	}
	if onRetry != nil {
		opts = append(opts, retry.OnRetry(onRetry))
	}

	return opts
}
