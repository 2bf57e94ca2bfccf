// Package device drives one connection to a device over the native API.
//
// A Session owns a transport and walks it through the protocol lifecycle:
//
//  1. Connect: open the transport, exchange Hello (API version check) and
//     Connect (password), then fetch DeviceInfo.
//  2. DiscoverEntities: list the device's entities and register each one,
//     assigning the next sequential entity index.
//  3. SubscribeStates: ask the device to stream state changes.
//  4. Run: serve hub writes and device messages until the device asks to
//     disconnect, the connection is lost, or the context is cancelled.
//
// The session keeps the device's 32-bit entity keys to itself. The hub only
// ever sees entity indices, which are assigned in discovery order and never
// reused within a session.
//
// # Concurrency
//
// Run is the only writer to the hub event channel for its session and the
// only reader of the transport while it runs. A helper goroutine blocks on
// the socket and hands complete messages to the loop, which selects between
// them, hub writes and keep-alive ticks, processing one at a time.
package device
