package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// RawMessage is one schema entry.
type RawMessage struct {
	Name string `yaml:"name"`
	ID   uint16 `yaml:"id"`
}

// Schema is the parsed message schema, sorted by id.
type Schema struct {
	Messages []RawMessage `yaml:"messages"`
}

// Entity describes one discoverable capability kind and the messages that
// belong to it.
type Entity struct {
	Name         string
	ListResponse string
	State        string // empty if the kind has no state response
	Command      string // empty if the kind accepts no commands
}

const (
	listPrefix = "ListEntities"
	listSuffix = "Response"
)

// LoadSchema reads and validates a schema file.
func LoadSchema(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSchema(data)
}

// ParseSchema parses and validates schema YAML.
func ParseSchema(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if len(s.Messages) == 0 {
		return nil, fmt.Errorf("schema has no messages")
	}

	names := make(map[string]bool, len(s.Messages))
	ids := make(map[uint16]string, len(s.Messages))
	for _, m := range s.Messages {
		if m.Name == "" {
			return nil, fmt.Errorf("message with id %d has no name", m.ID)
		}
		if m.ID == 0 {
			return nil, fmt.Errorf("message %s: id must be non-zero", m.Name)
		}
		if names[m.Name] {
			return nil, fmt.Errorf("duplicate message name %s", m.Name)
		}
		if other, ok := ids[m.ID]; ok {
			return nil, fmt.Errorf("messages %s and %s share id %d", other, m.Name, m.ID)
		}
		names[m.Name] = true
		ids[m.ID] = m.Name
	}

	sort.Slice(s.Messages, func(i, j int) bool { return s.Messages[i].ID < s.Messages[j].ID })
	return &s, nil
}

// Entities derives the entity kinds from the ListEntities<Kind>Response
// messages, in id order. The Done and Services responses are not entities.
func (s *Schema) Entities() []Entity {
	names := make(map[string]bool, len(s.Messages))
	for _, m := range s.Messages {
		names[m.Name] = true
	}

	var out []Entity
	for _, m := range s.Messages {
		if !strings.HasPrefix(m.Name, listPrefix) || !strings.HasSuffix(m.Name, listSuffix) {
			continue
		}
		if m.Name == "ListEntitiesDoneResponse" || m.Name == "ListEntitiesServicesResponse" {
			continue
		}
		kind := m.Name[len(listPrefix) : len(m.Name)-len(listSuffix)]
		if kind == "" {
			continue
		}

		e := Entity{Name: kind, ListResponse: m.Name}
		if names[kind+"StateResponse"] {
			e.State = kind + "StateResponse"
		}
		if names[kind+"CommandRequest"] {
			e.Command = kind + "CommandRequest"
		}
		out = append(out, e)
	}
	return out
}
