// Package wire defines the message types of the device protocol.
//
// Message bodies are protocol buffers. Each message travels in a frame that
// carries its numeric MessageType; the identifiers are fixed by the device
// protocol definition and are generated into message_type_gen.go from
// docs/api/messages.yaml.
//
// # Message Types
//
// Messages fall into three groups:
//   - Connection lifecycle: Hello, Connect, Disconnect, Ping, DeviceInfo, GetTime
//   - Entity discovery: ListEntities request, one ListEntities<Kind>Response
//     per entity, and a terminal ListEntitiesDoneResponse
//   - Entity state and commands: <Kind>StateResponse, <Kind>CommandRequest
//
// # Entity Types
//
// EntityType is derived from the ListEntities<Kind>Response messages. The
// generated tables map list responses, state responses and command requests
// to their entity type.
//
// # Encoding
//
// Messages are encoded with proto3 semantics: zero values are omitted and
// unknown fields are skipped when decoding.
package wire

//go:generate go run ../../cmd/esphome-msggen -schema ../../docs/api/messages.yaml -output .
