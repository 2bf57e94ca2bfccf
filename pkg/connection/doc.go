// Package connection paces the re-establishment of device sessions.
//
// The session core never retries on its own: a session that fails to
// connect, or whose run loop ends, is reported once and left
// disconnected. Callers that want a device to come back use a Runner,
// which repeats an attempt with exponential backoff:
//
//  1. Initial delay: 1 second
//  2. Exponential increase: 2s, 4s, 8s, 16s, 32s
//  3. Maximum delay: 60 seconds
//  4. Reset to 1s once an attempt reports it is established
//
// # Jitter
//
// Devices restarted together (power loss, a router reboot) would
// otherwise reconnect in lockstep:
//
//	actual_delay = base_delay + random(0, base_delay * 0.25)
//
// # Permanent failures
//
// Errors that retrying cannot fix (a wrong password, a malformed
// encryption key, an incompatible API version) are wrapped with
// Permanent and end the Runner immediately.
package connection
