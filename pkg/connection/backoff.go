package connection

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"
)

// Reconnect delays start at InitialBackoff and grow by BackoffMultiplier
// per failed attempt up to MaxBackoff. Each delay is stretched by up to
// JitterFactor of itself so a fleet of devices does not retry in step.
const (
	InitialBackoff    = time.Second
	MaxBackoff        = time.Minute
	BackoffMultiplier = 2.0
	JitterFactor      = 0.25
)

// BackoffConfig tunes a Backoff. Zero delays and multiplier take the
// package defaults; zero jitter disables jitter.
type BackoffConfig struct {
	Initial    time.Duration `yaml:"initial,omitempty"`
	Max        time.Duration `yaml:"max,omitempty"`
	Multiplier float64       `yaml:"multiplier,omitempty"`
	Jitter     float64       `yaml:"jitter,omitempty"`
}

// DefaultBackoffConfig returns the package defaults.
func DefaultBackoffConfig() BackoffConfig {
	return BackoffConfig{
		Initial:    InitialBackoff,
		Max:        MaxBackoff,
		Multiplier: BackoffMultiplier,
		Jitter:     JitterFactor,
	}
}

// normalized fills unset fields and clamps the rest into range.
func (c BackoffConfig) normalized() BackoffConfig {
	if c.Initial <= 0 {
		c.Initial = InitialBackoff
	}
	if c.Max <= 0 {
		c.Max = MaxBackoff
	}
	c.Max = max(c.Max, c.Initial)
	if c.Multiplier <= 1 {
		c.Multiplier = BackoffMultiplier
	}
	c.Jitter = max(c.Jitter, 0)
	return c
}

// Backoff yields growing delays between reconnect attempts. It is safe
// for concurrent use.
type Backoff struct {
	mu sync.Mutex

	// base is the un-jittered delay the next call to Next will use.
	base     time.Duration
	attempts int

	initial    time.Duration
	max        time.Duration
	multiplier float64
	jitter     float64

	// random returns a value in [0, 1).
	random func() float64
}

// NewBackoff returns a Backoff with the default parameters.
func NewBackoff() *Backoff {
	return NewBackoffWithConfig(DefaultBackoffConfig())
}

// NewBackoffWithConfig returns a Backoff tuned by cfg.
func NewBackoffWithConfig(cfg BackoffConfig) *Backoff {
	cfg = cfg.normalized()
	return &Backoff{
		base:       cfg.Initial,
		initial:    cfg.Initial,
		max:        cfg.Max,
		multiplier: cfg.Multiplier,
		jitter:     cfg.Jitter,
		random:     rand.Float64,
	}
}

// Next returns the jittered delay for this attempt and grows the base.
func (b *Backoff) Next() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()

	d := b.jittered(b.base)
	b.attempts++
	b.base = min(time.Duration(float64(b.base)*b.multiplier), b.max)
	return d
}

// Peek is Next without advancing.
func (b *Backoff) Peek() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.jittered(b.base)
}

// Wait blocks for the next delay, or until ctx ends.
func (b *Backoff) Wait(ctx context.Context) error {
	t := time.NewTimer(b.Next())
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Reset returns to the initial delay. Runners call it once a session
// is up again.
func (b *Backoff) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.base = b.initial
	b.attempts = 0
}

// Attempts counts calls to Next since the last Reset.
func (b *Backoff) Attempts() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.attempts
}

// Current is the un-jittered delay Next would use.
func (b *Backoff) Current() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.base
}

func (b *Backoff) jittered(d time.Duration) time.Duration {
	if b.jitter == 0 {
		return d
	}
	return d + time.Duration(float64(d)*b.jitter*b.random())
}
