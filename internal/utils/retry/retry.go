// Package retry implements the bounded exponential backoff used around the
// two unreliable external calls (user existence check, event publish).
package retry

import (
	"context"
	"time"
)

// Policy describes a bounded exponential backoff: MaxAttempts tries in total,
// sleeping InitialDelay before the second attempt and multiplying the delay
// by Multiplier after each failure.
type Policy struct {
	MaxAttempts  int
	InitialDelay time.Duration
	Multiplier   float64
}

// DefaultPolicy is the retry budget applied to both external dependencies:
// 3 attempts, 1s initial delay, doubling.
var DefaultPolicy = Policy{
	MaxAttempts:  3,
	InitialDelay: time.Second,
	Multiplier:   2,
}

// Do runs fn until it succeeds, the attempt budget is exhausted, or the
// context is cancelled. It returns the last error observed.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	delay := p.InitialDelay
	var lastErr error

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if attempt == p.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay = time.Duration(float64(delay) * p.Multiplier)
	}

	return lastErr
}
