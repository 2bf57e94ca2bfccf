// Package transport carries typed protocol messages between the bridge and
// a device over TCP.
//
// Two variants implement Transport:
//
//   - PlainTransport frames each message as a zero preamble followed by
//     varint length, varint type and the raw body.
//   - NoiseTransport runs a Noise_NNpsk0_25519_ChaChaPoly_SHA256 handshake
//     and then carries every message as one encrypted Noise transport
//     message inside a [0x01, len_hi, len_lo] frame.
//
// New selects the variant from the presence of a pre-shared key. The choice
// is fixed for the lifetime of the Transport.
//
// # Concurrency
//
// Send and Receive may run concurrently with each other: reads and writes
// hold separate locks. Concurrent calls to Send (or to Receive) are
// serialized. Disconnect may be called from any goroutine; it closes the
// socket first so that a blocked Receive returns promptly.
//
// # Protocol capture
//
// When Config.ProtocolLogger is set, every frame and every handshake step is
// reported as a pkg/log Event tagged with a per-connection UUID.
package transport
