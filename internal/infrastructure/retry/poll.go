package retry

import (
	"context"
	"errors"
	"time"

	"github.com/travel-booking/flight-booking/internal/infrastructure/timeutil"
)

// ErrExhausted is returned by Poll when every attempt ran without reaching a terminal state.
var ErrExhausted = errors.New("poll attempts exhausted")

// Policy describes a polling schedule.
type Policy struct {
	// MaxAttempts is the number of checks performed before giving up.
	MaxAttempts int

	// Interval is the wait before the second check.
	Interval time.Duration

	// Multiplier grows the interval after each wait. Values <= 1 mean a fixed interval.
	Multiplier float64

	// MaxInterval caps a growing interval. Zero means uncapped.
	MaxInterval time.Duration
}

// FixedPolicy returns a policy checking attempts times, interval apart.
func FixedPolicy(interval time.Duration, attempts int) Policy {
	return Policy{MaxAttempts: attempts, Interval: interval}
}

// Ceiling returns the total time spent waiting when every attempt is used.
func (p Policy) Ceiling() time.Duration {
	var total time.Duration
	for i := 1; i < p.MaxAttempts; i++ {
		total += p.wait(i)
	}
	return total
}

// wait returns the delay after the given 1-based attempt.
func (p Policy) wait(attempt int) time.Duration {
	d := p.Interval
	if p.Multiplier > 1 {
		for i := 1; i < attempt; i++ {
			d = time.Duration(float64(d) * p.Multiplier)
			if p.MaxInterval > 0 && d >= p.MaxInterval {
				return p.MaxInterval
			}
		}
	}
	return d
}

// CheckFunc performs one poll attempt. done reports a terminal value.
// A non-nil error marks the attempt as failed but does not stop polling.
type CheckFunc[T any] func(ctx context.Context, attempt int) (value T, done bool, err error)

// PollResult describes how polling ended.
type PollResult[T any] struct {
	Value    T
	Done     bool
	Attempts int

	// LastErr is the error of the most recent failed attempt, if any
	LastErr error
}

// Poll runs check until it reports done, the policy is exhausted, or ctx is cancelled.
// Exhaustion returns ErrExhausted; cancellation returns ctx.Err(). Both carry the partial result.
func Poll[T any](ctx context.Context, clock timeutil.Clock, policy Policy, check CheckFunc[T]) (PollResult[T], error) {
	if policy.MaxAttempts <= 0 {
		policy.MaxAttempts = 1
	}
	clock = clockOrReal(clock)

	var res PollResult[T]
	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		value, done, err := check(ctx, attempt)
		res.Attempts = attempt
		if err != nil {
			res.LastErr = err
		} else if done {
			res.Value = value
			res.Done = true
			return res, nil
		}

		if attempt == policy.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return res, ctx.Err()
		case <-clock.After(policy.wait(attempt)):
		}
	}

	return res, ErrExhausted
}
