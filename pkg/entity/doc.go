// Package entity translates between per-capability protocol messages and
// generic hub attributes.
//
// Each entity type has a Translator: Describe turns a list-entities
// response into the entity's static attributes, State turns a state
// response into attribute updates, and Command builds the outbound command
// request from attributes written by the hub. Translators are stateless;
// the device session resolves the entity type from its own key registry
// and only ever talks to this interface.
//
// New entity types are supported by registering another Translator, never
// by extending a switch in the session.
package entity
