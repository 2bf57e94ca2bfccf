// Package bridge supervises device sessions on behalf of the hub.
//
// A single supervisor goroutine owns the table mapping hub device IDs to
// per-device command channels. It reads hub commands and:
//
//   - routes WriteAttributes to the addressed device, logging and dropping
//     writes for devices it does not know;
//   - handles AddDevice by connecting a provisional session (device ID 0),
//     announcing its name with DeviceIdentityDiscovered and parking it;
//   - handles DeviceCreated by assigning the hub's ID to the parked session
//     of that name, persisting its parameters and starting it.
//
// Each started device runs in its own goroutine and shares the outbound
// event channel. When a device goroutine exits its table entry is removed.
// With Reconnect enabled, a device goroutine instead re-creates its session
// after each exit, pacing attempts with exponential backoff, and gives up
// only on authentication or API version failures.
package bridge
