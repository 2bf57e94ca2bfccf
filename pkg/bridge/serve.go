package bridge

import (
	"context"
	"errors"
	"time"

	"github.com/igloo-home/esphome-go/pkg/connection"
	"github.com/igloo-home/esphome-go/pkg/device"
)

// serveDevice runs one device until its session ends or, with Reconnect,
// until ctx ends or the device cannot be reached for good.
func (b *Bridge) serveDevice(ctx context.Context, e *entry, s *device.Session) {
	logger := b.logger.With("device_id", e.id, "address", e.params.Address)

	if !b.cfg.Reconnect {
		err := b.attempt(ctx, e, s, func() {})
		switch {
		case err == nil, errors.Is(err, context.Canceled):
			logger.Info("device session ended")
		default:
			logger.Warn("device session failed", "error", err)
		}
		return
	}

	runner := connection.NewRunner(connection.NewBackoffWithConfig(b.cfg.Backoff))
	runner.OnRetry(func(attempt int, delay time.Duration, err error) {
		logger.Info("reconnecting", "attempt", attempt, "delay", delay, "error", err)
	})
	runner.OnStateChange(func(from, to connection.State) {
		logger.Debug("connection state", "from", from.String(), "to", to.String())
	})
	err := runner.Run(ctx, func(ctx context.Context, established func()) error {
		err := b.attempt(ctx, e, s, established)
		s = nil
		return err
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Warn("device given up", "error", err)
		return
	}
	logger.Info("device session ended")
}

// attempt connects s (or a fresh session when s is nil) and serves it.
// Failures that a retry cannot fix are marked permanent.
func (b *Bridge) attempt(ctx context.Context, e *entry, s *device.Session, established func()) error {
	if s == nil {
		var err error
		s, err = b.newSession(e.id, e.params)
		if err != nil {
			return connection.Permanent(err)
		}
	}
	if !s.Connected() {
		if err := b.connect(ctx, s); err != nil {
			if errors.Is(err, device.ErrInvalidPassword) || errors.Is(err, device.ErrIncompatibleAPI) {
				return connection.Permanent(err)
			}
			return err
		}
	}

	b.mu.Lock()
	e.session = s
	b.mu.Unlock()
	established()

	return s.Serve(ctx, e.commands, b.events)
}
