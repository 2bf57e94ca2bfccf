// Package hub defines the contract between device sessions and the
// entity-component hub they publish into.
//
// The hub knows nothing about device keys or protocol messages. A device
// is a persistent numeric ID assigned by the hub, an entity is a small
// sequential index within that device, and everything the bridge knows
// about an entity travels as a list of typed Attributes.
//
// Sessions emit Events (entity registration, attribute writes, newly
// discovered device identities) and receive Commands (attribute writes
// addressed by entity index, device provisioning).
package hub
