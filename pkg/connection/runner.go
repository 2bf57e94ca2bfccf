package connection

import (
	"context"
	"errors"
	"sync"
	"time"
)

// State represents the state of a Runner.
type State uint8

const (
	// StateIdle indicates Run has not been called.
	StateIdle State = iota

	// StateConnecting indicates an attempt is in progress but has not
	// reported that it is established.
	StateConnecting

	// StateConnected indicates the current attempt is established.
	StateConnected

	// StateReconnecting indicates the runner is waiting out a backoff delay.
	StateReconnecting

	// StateStopped indicates Run has returned.
	StateStopped
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateConnecting:
		return "CONNECTING"
	case StateConnected:
		return "CONNECTED"
	case StateReconnecting:
		return "RECONNECTING"
	case StateStopped:
		return "STOPPED"
	default:
		return "UNKNOWN"
	}
}

// ErrAlreadyStarted is returned when Run is called twice on the same Runner.
var ErrAlreadyStarted = errors.New("runner already started")

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent marks err as not worth retrying. A nil err stays nil.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// IsPermanent reports whether err, or anything it wraps, was marked
// with Permanent.
func IsPermanent(err error) bool {
	var p *permanentError
	return errors.As(err, &p)
}

// AttemptFunc performs one connection attempt and blocks for as long as
// the resulting session lives. It calls established once the session is
// up, which resets the backoff.
type AttemptFunc func(ctx context.Context, established func()) error

// Runner repeats an AttemptFunc with exponential backoff until the
// context ends or an attempt fails permanently.
type Runner struct {
	mu sync.Mutex

	state   State
	backoff *Backoff
	lastErr error

	onStateChange func(oldState, newState State)
	onRetry       func(attempt int, delay time.Duration, err error)
}

// NewRunner creates a runner pacing attempts with b. A nil b uses the
// default backoff.
func NewRunner(b *Backoff) *Runner {
	if b == nil {
		b = NewBackoff()
	}
	return &Runner{backoff: b}
}

// State returns the current runner state.
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// LastError returns the error of the most recent attempt.
func (r *Runner) LastError() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastErr
}

// Attempts returns the number of retries since the last established session.
func (r *Runner) Attempts() int {
	return r.backoff.Attempts()
}

// OnStateChange sets a callback for state changes. Must be set before Run.
func (r *Runner) OnStateChange(fn func(oldState, newState State)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onStateChange = fn
}

// OnRetry sets a callback invoked before each backoff wait with the retry
// number, the base delay about to be waited (before jitter) and the error
// that ended the previous attempt. Must be set before Run.
func (r *Runner) OnRetry(fn func(attempt int, delay time.Duration, err error)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onRetry = fn
}

// Run calls fn until ctx ends or fn returns a permanent error. It returns
// ctx.Err() on cancellation and the unwrapped cause of a permanent
// failure otherwise.
func (r *Runner) Run(ctx context.Context, fn AttemptFunc) error {
	r.mu.Lock()
	if r.state != StateIdle {
		r.mu.Unlock()
		return ErrAlreadyStarted
	}
	r.mu.Unlock()

	defer r.setState(StateStopped)

	established := func() {
		r.backoff.Reset()
		r.setState(StateConnected)
	}

	for {
		r.setState(StateConnecting)
		err := fn(ctx, established)

		r.mu.Lock()
		r.lastErr = err
		onRetry := r.onRetry
		r.mu.Unlock()

		if ctx.Err() != nil {
			return ctx.Err()
		}
		var p *permanentError
		if errors.As(err, &p) {
			return p.err
		}

		r.setState(StateReconnecting)
		if onRetry != nil {
			onRetry(r.backoff.Attempts()+1, r.backoff.Current(), err)
		}
		if werr := r.backoff.Wait(ctx); werr != nil {
			return werr
		}
	}
}

func (r *Runner) setState(s State) {
	r.mu.Lock()
	old := r.state
	if old == s {
		r.mu.Unlock()
		return
	}
	r.state = s
	fn := r.onStateChange
	r.mu.Unlock()

	if fn != nil {
		fn(old, s)
	}
}
