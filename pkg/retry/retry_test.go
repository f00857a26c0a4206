package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTransient = errors.New("transient")

func isTransient(err error) bool {
	return errors.Is(err, errTransient)
}

func TestExponentialPolicy(t *testing.T) {
	policy := ExponentialPolicy(3, time.Second, 5*time.Second)

	tests := []struct {
		retry     int
		wantDelay time.Duration
		wantOK    bool
	}{
		{retry: 0, wantDelay: 0, wantOK: false},
		{retry: 1, wantDelay: time.Second, wantOK: true},
		{retry: 2, wantDelay: 2 * time.Second, wantOK: true},
		{retry: 3, wantDelay: 4 * time.Second, wantOK: true},
		{retry: 4, wantDelay: 0, wantOK: false},
	}

	for _, tt := range tests {
		delay, ok := policy(tt.retry)
		assert.Equal(t, tt.wantOK, ok, "retry %d", tt.retry)
		assert.Equal(t, tt.wantDelay, delay, "retry %d", tt.retry)
	}
}

func TestExponentialPolicy_CapsAtMax(t *testing.T) {
	policy := ExponentialPolicy(10, time.Second, 5*time.Second)

	delay, ok := policy(4)
	require.True(t, ok)
	assert.Equal(t, 5*time.Second, delay)

	delay, ok = policy(10)
	require.True(t, ok)
	assert.Equal(t, 5*time.Second, delay)
}

func TestDo_SuccessOnFirstAttempt(t *testing.T) {
	calls := 0
	val, retries, err := Do(context.Background(), ExponentialPolicy(3, time.Millisecond, time.Millisecond), isTransient,
		func(_ context.Context) (string, error) {
			calls++
			return "ok", nil
		})

	require.NoError(t, err)
	assert.Equal(t, "ok", val)
	assert.Equal(t, 0, retries)
	assert.Equal(t, 1, calls)
}

func TestDo_SuccessAfterRetries(t *testing.T) {
	calls := 0
	val, retries, err := Do(context.Background(), ExponentialPolicy(3, time.Millisecond, 2*time.Millisecond), isTransient,
		func(_ context.Context) (int, error) {
			calls++
			if calls < 3 {
				return 0, errTransient
			}
			return 42, nil
		})

	require.NoError(t, err)
	assert.Equal(t, 42, val)
	assert.Equal(t, 2, retries)
}

func TestDo_GivesUpWhenPolicyAborts(t *testing.T) {
	calls := 0
	_, retries, err := Do(context.Background(), ExponentialPolicy(3, time.Millisecond, 2*time.Millisecond), isTransient,
		func(_ context.Context) (int, error) {
			calls++
			return 0, errTransient
		})

	require.ErrorIs(t, err, errTransient)
	assert.Equal(t, 3, retries)
	assert.Equal(t, 4, calls)
}

func TestDo_NonRetryableErrorStopsImmediately(t *testing.T) {
	permanent := errors.New("bad request")
	calls := 0
	_, retries, err := Do(context.Background(), ExponentialPolicy(3, time.Millisecond, time.Millisecond), isTransient,
		func(_ context.Context) (int, error) {
			calls++
			return 0, permanent
		})

	require.ErrorIs(t, err, permanent)
	assert.Equal(t, 0, retries)
	assert.Equal(t, 1, calls)
}

func TestDo_ContextCancelledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	_, _, err := Do(ctx, ExponentialPolicy(5, time.Hour, time.Hour), isTransient,
		func(_ context.Context) (int, error) {
			calls++
			cancel()
			return 0, errTransient
		})

	require.ErrorIs(t, err, errTransient)
	assert.Equal(t, 1, calls)
}
