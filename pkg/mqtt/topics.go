package mqtt

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultTopicPrefix roots every topic when Config.TopicPrefix is empty.
const DefaultTopicPrefix = "esphome"

// Status payloads.
const (
	StatusOnline  = "online"
	StatusOffline = "offline"
)

// Topics builds topic names under one prefix.
type Topics struct {
	Prefix string
}

// Status is the retained bridge availability topic.
func (t Topics) Status() string {
	return t.Prefix + "/status"
}

// Discovered carries names of devices awaiting an ID.
func (t Topics) Discovered() string {
	return t.Prefix + "/discovered"
}

// EntityConfig carries the static description of one entity.
func (t Topics) EntityConfig(deviceID uint64, index int) string {
	return fmt.Sprintf("%s/device/%d/entity/%d/config", t.Prefix, deviceID, index)
}

// EntityState carries the latest attributes of one entity.
func (t Topics) EntityState(deviceID uint64, index int) string {
	return fmt.Sprintf("%s/device/%d/entity/%d/state", t.Prefix, deviceID, index)
}

// EntitySet is the command topic of one entity.
func (t Topics) EntitySet(deviceID uint64, index int) string {
	return fmt.Sprintf("%s/device/%d/entity/%d/set", t.Prefix, deviceID, index)
}

// AllEntitySets matches the command topic of every entity.
func (t Topics) AllEntitySets() string {
	return t.Prefix + "/device/+/entity/+/set"
}

// Add is the topic for connecting new devices.
func (t Topics) Add() string {
	return t.Prefix + "/add"
}

// Created is the topic for assigning IDs to discovered devices.
func (t Topics) Created() string {
	return t.Prefix + "/created"
}

// ParseEntitySet extracts the device ID and entity index from an entity
// command topic.
func (t Topics) ParseEntitySet(topic string) (uint64, int, error) {
	rest, ok := strings.CutPrefix(topic, t.Prefix+"/")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTopic, topic)
	}
	parts := strings.Split(rest, "/")
	if len(parts) != 5 || parts[0] != "device" || parts[2] != "entity" || parts[4] != "set" {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTopic, topic)
	}
	id, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: device id %q", ErrInvalidTopic, parts[1])
	}
	index, err := strconv.Atoi(parts[3])
	if err != nil || index < 0 {
		return 0, 0, fmt.Errorf("%w: entity index %q", ErrInvalidTopic, parts[3])
	}
	return id, index, nil
}
