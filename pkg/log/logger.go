package log

// Logger receives protocol capture events. Pass nil or NoopLogger to
// disable capture.
type Logger interface {
	// Log records a protocol event. Implementations must be safe for
	// concurrent use and must not block for long: sessions call Log from
	// their I/O paths.
	Log(event Event)
}

// NoopLogger discards all events. It is usable as a zero value.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

// OrNoop returns l, or NoopLogger when l is nil.
func OrNoop(l Logger) Logger {
	if l == nil {
		return NoopLogger{}
	}
	return l
}

// Compile-time interface satisfaction check.
var _ Logger = NoopLogger{}
