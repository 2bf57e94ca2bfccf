// Package mqtt carries the hub contract over an MQTT broker.
//
// A Link publishes bridge events as JSON and turns messages on its command
// topics into hub commands, so any MQTT-capable hub can drive the bridge.
// Attributes travel in their text form (see hub.ParseAttribute).
//
// Topic layout, under a configurable prefix (default "esphome"):
//
//	<prefix>/status                              online | offline (retained, last will)
//	<prefix>/discovered                          {"name": "..."}
//	<prefix>/device/<id>/entity/<index>/config   {"name": "..."} (retained)
//	<prefix>/device/<id>/entity/<index>/state    {"attributes": ["switch=true"]} (retained)
//	<prefix>/device/<id>/entity/<index>/set      {"attributes": ["switch=true"]} (subscribed)
//	<prefix>/add                                 {"address": "...", "noise_psk": "...", ...} (subscribed)
//	<prefix>/created                             {"name": "...", "device_id": 12} (subscribed)
package mqtt
