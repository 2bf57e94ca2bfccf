// Package config loads and saves the bridge configuration file.
//
// The file is YAML. It maps persistent hub device IDs to connection
// parameters and carries bridge-wide settings:
//
//	bridge:
//	  event_capacity: 100
//	  command_capacity: 50
//	  protocol_log: /var/log/esphome-bridge/capture.elog
//	  device_log_level: info
//	  reconnect:
//	    enabled: true
//	    initial: 1s
//	    max: 1m
//	  keep_alive:
//	    ping_interval: 30s
//	devices:
//	  17:
//	    address: 10.0.0.5
//	    noise_psk: AAECAwQFBgcICQoLDA0ODxAREhMUFRYXGBkaGxwdHh8=
//	  18:
//	    address: porch.local:6053
//	    password: secret
//
// A missing file is an empty configuration. Saves are atomic: the file is
// written to a temporary sibling and renamed into place.
package config
