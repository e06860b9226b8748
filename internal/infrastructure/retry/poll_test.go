package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-booking/flight-booking/internal/infrastructure/timeutil"
)

func newTestClock() *timeutil.MockClock {
	return timeutil.NewMockClock(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))
}

func TestPoll_StopsOnTerminalValue(t *testing.T) {
	clock := newTestClock()

	res, err := Poll(context.Background(), clock, FixedPolicy(time.Second, 20),
		func(_ context.Context, attempt int) (string, bool, error) {
			if attempt < 3 {
				return "", false, nil
			}
			return "confirmed", true, nil
		})

	require.NoError(t, err)
	assert.True(t, res.Done)
	assert.Equal(t, "confirmed", res.Value)
	assert.Equal(t, 3, res.Attempts)
	assert.Len(t, clock.Sleeps(), 2)
}

func TestPoll_ExhaustsAfterMaxAttempts(t *testing.T) {
	clock := newTestClock()
	start := clock.Now()
	calls := 0

	res, err := Poll(context.Background(), clock, FixedPolicy(time.Second, 20),
		func(_ context.Context, _ int) (int, bool, error) {
			calls++
			return 0, false, nil
		})

	assert.ErrorIs(t, err, ErrExhausted)
	assert.False(t, res.Done)
	assert.Equal(t, 20, res.Attempts)
	assert.Equal(t, 20, calls)
	// No wait after the final attempt
	assert.Len(t, clock.Sleeps(), 19)
	assert.Equal(t, 19*time.Second, clock.Now().Sub(start))
}

func TestPoll_ErrorsCountAsAttempts(t *testing.T) {
	errLookup := errors.New("connection refused")

	res, err := Poll(context.Background(), newTestClock(), FixedPolicy(time.Second, 4),
		func(_ context.Context, attempt int) (string, bool, error) {
			if attempt%2 == 1 {
				return "", false, errLookup
			}
			return "", false, nil
		})

	assert.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, 4, res.Attempts)
	assert.ErrorIs(t, res.LastErr, errLookup)
}

func TestPoll_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	res, err := Poll(ctx, newTestClock(), FixedPolicy(time.Second, 20),
		func(_ context.Context, attempt int) (string, bool, error) {
			if attempt == 2 {
				cancel()
			}
			return "", false, nil
		})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, res.Attempts)
}

func TestPoll_ZeroAttemptsRunsOnce(t *testing.T) {
	calls := 0
	_, err := Poll(context.Background(), newTestClock(), Policy{},
		func(_ context.Context, _ int) (bool, bool, error) {
			calls++
			return false, false, nil
		})

	assert.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, 1, calls)
}

func TestPolicy_Waits(t *testing.T) {
	tests := []struct {
		name   string
		policy Policy
		want   []time.Duration
	}{
		{
			name:   "fixed interval",
			policy: FixedPolicy(time.Second, 4),
			want:   []time.Duration{time.Second, time.Second, time.Second},
		},
		{
			name:   "exponential backoff",
			policy: Policy{MaxAttempts: 4, Interval: time.Second, Multiplier: 2},
			want:   []time.Duration{time.Second, 2 * time.Second, 4 * time.Second},
		},
		{
			name:   "capped backoff",
			policy: Policy{MaxAttempts: 5, Interval: time.Second, Multiplier: 3, MaxInterval: 5 * time.Second},
			want:   []time.Duration{time.Second, 3 * time.Second, 5 * time.Second, 5 * time.Second},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := newTestClock()
			_, _ = Poll(context.Background(), clock, tt.policy,
				func(_ context.Context, _ int) (int, bool, error) { return 0, false, nil })

			assert.Equal(t, tt.want, clock.Sleeps())

			var total time.Duration
			for _, d := range tt.want {
				total += d
			}
			assert.Equal(t, total, tt.policy.Ceiling())
		})
	}
}
