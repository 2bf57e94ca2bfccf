package connection

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackoff(t *testing.T) {
	t.Run("DefaultSequence", func(t *testing.T) {
		b := NewBackoff()

		expected := []time.Duration{
			1 * time.Second,
			2 * time.Second,
			4 * time.Second,
			8 * time.Second,
			16 * time.Second,
			32 * time.Second,
			60 * time.Second,
			60 * time.Second, // Should stay at max
		}

		for i, exp := range expected {
			base := b.Current()
			_ = b.Next()

			if base != exp {
				t.Errorf("Attempt %d: base = %v, want %v", i, base, exp)
			}
		}
	})

	t.Run("Jitter", func(t *testing.T) {
		b := NewBackoff()

		upper := time.Duration(float64(time.Second) * (1 + JitterFactor))
		for i := 0; i < 10; i++ {
			s := b.Peek()
			if s < time.Second || s > upper {
				t.Errorf("Sample %d: %v out of expected range [1s, %v]", i, s, upper)
			}
		}
	})

	t.Run("JitterBounds", func(t *testing.T) {
		b := NewBackoff()

		b.random = func() float64 { return 0 }
		assert.Equal(t, time.Second, b.Peek())

		b.random = func() float64 { return 0.5 }
		assert.Equal(t, 1125*time.Millisecond, b.Peek())
	})

	t.Run("Reset", func(t *testing.T) {
		b := NewBackoff()

		for i := 0; i < 5; i++ {
			b.Next()
		}
		if b.Current() <= InitialBackoff {
			t.Error("Backoff should have increased")
		}

		b.Reset()

		if b.Current() != InitialBackoff {
			t.Errorf("Current() = %v after reset, want %v", b.Current(), InitialBackoff)
		}
		if b.Attempts() != 0 {
			t.Errorf("Attempts() = %d after reset, want 0", b.Attempts())
		}
	})

	t.Run("Attempts", func(t *testing.T) {
		b := NewBackoff()

		for i := 1; i <= 5; i++ {
			b.Next()
			if b.Attempts() != i {
				t.Errorf("After %d calls, Attempts() = %d", i, b.Attempts())
			}
		}
	})

	t.Run("CustomConfig", func(t *testing.T) {
		b := NewBackoffWithConfig(BackoffConfig{
			Initial:    100 * time.Millisecond,
			Max:        500 * time.Millisecond,
			Multiplier: 2.0,
			Jitter:     0,
		})

		expected := []time.Duration{
			100 * time.Millisecond,
			200 * time.Millisecond,
			400 * time.Millisecond,
			500 * time.Millisecond,
			500 * time.Millisecond,
		}
		for i, exp := range expected {
			if got := b.Next(); got != exp {
				t.Errorf("Attempt %d: got %v, want %v", i, got, exp)
			}
		}
	})

	t.Run("ZeroConfigUsesDefaults", func(t *testing.T) {
		b := NewBackoffWithConfig(BackoffConfig{})
		assert.Equal(t, InitialBackoff, b.Current())
		assert.Equal(t, MaxBackoff, b.max)
		assert.Equal(t, BackoffMultiplier, b.multiplier)
	})

	t.Run("MaxBelowInitial", func(t *testing.T) {
		b := NewBackoffWithConfig(BackoffConfig{Initial: 2 * time.Second, Max: time.Second, Jitter: 0})
		b.Next()
		assert.Equal(t, 2*time.Second, b.Current())
	})

	t.Run("WaitCancelled", func(t *testing.T) {
		b := NewBackoff()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		start := time.Now()
		err := b.Wait(ctx)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Less(t, time.Since(start), 500*time.Millisecond)
	})

	t.Run("WaitElapses", func(t *testing.T) {
		b := NewBackoffWithConfig(BackoffConfig{Initial: time.Millisecond, Max: time.Millisecond})
		require.NoError(t, b.Wait(context.Background()))
		assert.Equal(t, 1, b.Attempts())
	})
}

func fastBackoff() *Backoff {
	return NewBackoffWithConfig(BackoffConfig{
		Initial: time.Millisecond,
		Max:     4 * time.Millisecond,
	})
}

func TestRunner(t *testing.T) {
	t.Run("PermanentErrorStops", func(t *testing.T) {
		cause := errors.New("invalid password")
		r := NewRunner(fastBackoff())

		var calls int
		err := r.Run(context.Background(), func(ctx context.Context, established func()) error {
			calls++
			return Permanent(cause)
		})

		assert.Same(t, cause, err)
		assert.Equal(t, 1, calls)
		assert.Equal(t, StateStopped, r.State())
	})

	t.Run("RetriesUntilPermanent", func(t *testing.T) {
		r := NewRunner(fastBackoff())

		var retries []int
		r.OnRetry(func(attempt int, delay time.Duration, err error) {
			retries = append(retries, attempt)
		})

		var calls int
		err := r.Run(context.Background(), func(ctx context.Context, established func()) error {
			calls++
			if calls < 4 {
				return errors.New("connection refused")
			}
			return Permanent(errors.New("done"))
		})

		require.EqualError(t, err, "done")
		assert.Equal(t, 4, calls)
		assert.Equal(t, []int{1, 2, 3}, retries)
		assert.Equal(t, 3, r.Attempts())
	})

	t.Run("EstablishedResetsBackoff", func(t *testing.T) {
		r := NewRunner(fastBackoff())

		var delays []time.Duration
		r.OnRetry(func(attempt int, delay time.Duration, err error) {
			delays = append(delays, delay)
		})

		var calls int
		err := r.Run(context.Background(), func(ctx context.Context, established func()) error {
			calls++
			switch calls {
			case 1, 2:
				return errors.New("refused")
			case 3:
				established()
				return nil
			}
			return Permanent(errors.New("stop"))
		})

		require.Error(t, err)
		assert.Equal(t, []time.Duration{
			time.Millisecond,
			2 * time.Millisecond,
			time.Millisecond,
		}, delays)
	})

	t.Run("ContextCancel", func(t *testing.T) {
		r := NewRunner(NewBackoff())
		ctx, cancel := context.WithCancel(context.Background())

		var calls atomic.Int32
		done := make(chan error, 1)
		go func() {
			done <- r.Run(ctx, func(ctx context.Context, established func()) error {
				calls.Add(1)
				return errors.New("refused")
			})
		}()

		require.Eventually(t, func() bool {
			return r.State() == StateReconnecting
		}, time.Second, time.Millisecond)
		cancel()

		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(time.Second):
			t.Fatal("Run did not return after cancel")
		}
		assert.Equal(t, int32(1), calls.Load())
		assert.EqualError(t, r.LastError(), "refused")
	})

	t.Run("ContextCancelDuringAttempt", func(t *testing.T) {
		r := NewRunner(fastBackoff())
		ctx, cancel := context.WithCancel(context.Background())

		err := r.Run(ctx, func(ctx context.Context, established func()) error {
			established()
			cancel()
			<-ctx.Done()
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("StateTransitions", func(t *testing.T) {
		r := NewRunner(fastBackoff())

		var mu sync.Mutex
		var transitions []State
		r.OnStateChange(func(old, new State) {
			mu.Lock()
			transitions = append(transitions, new)
			mu.Unlock()
		})

		var calls int
		_ = r.Run(context.Background(), func(ctx context.Context, established func()) error {
			calls++
			if calls == 1 {
				established()
				return nil
			}
			return Permanent(errors.New("stop"))
		})

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, []State{
			StateConnecting,
			StateConnected,
			StateReconnecting,
			StateConnecting,
			StateStopped,
		}, transitions)
	})

	t.Run("AlreadyStarted", func(t *testing.T) {
		r := NewRunner(fastBackoff())
		_ = r.Run(context.Background(), func(ctx context.Context, established func()) error {
			return Permanent(errors.New("stop"))
		})

		err := r.Run(context.Background(), func(ctx context.Context, established func()) error {
			return nil
		})
		assert.ErrorIs(t, err, ErrAlreadyStarted)
	})
}

func TestPermanent(t *testing.T) {
	assert.NoError(t, Permanent(nil))

	cause := errors.New("bad key")
	err := Permanent(cause)
	assert.True(t, IsPermanent(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "bad key", err.Error())

	assert.False(t, IsPermanent(cause))
	assert.True(t, IsPermanent(errors.Join(errors.New("ctx"), err)))
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateIdle, "IDLE"},
		{StateConnecting, "CONNECTING"},
		{StateConnected, "CONNECTED"},
		{StateReconnecting, "RECONNECTING"},
		{StateStopped, "STOPPED"},
		{State(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
