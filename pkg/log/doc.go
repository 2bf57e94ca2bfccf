// Package log provides structured protocol capture for device sessions.
//
// This package defines the Logger interface and Event types for capturing
// protocol-level events at multiple layers (transport, wire, session).
// It is separate from operational logging (slog): protocol capture provides
// a complete machine-readable event trace for debugging and analysis.
//
// # Basic Usage
//
// Sessions take a Logger in device.Config.ProtocolLogger:
//
//	// For development: log to console via slog
//	cfg.ProtocolLogger = log.NewSlogAdapter(slog.Default())
//
//	// For production: write to binary file
//	cfg.ProtocolLogger, _ = log.NewFileLogger("/var/log/esphome/bridge.elog")
//
//	// Both: use MultiLogger
//	cfg.ProtocolLogger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # Event Types
//
// Events are captured at multiple layers:
//   - Transport: frame bytes (FrameEvent) and Noise handshake steps (HandshakeEvent)
//   - Wire: typed messages (MessageEvent)
//   - Session: state changes (StateChangeEvent)
//
// Control messages (ping/disconnect/time) and errors have dedicated event types.
//
// # File Format
//
// Capture files are a stream of CBOR-encoded events with the .elog
// extension. The esphome-log tool views and summarizes them.
package log
