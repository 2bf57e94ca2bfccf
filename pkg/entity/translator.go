package entity

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/igloo-home/esphome-go/pkg/hub"
	"github.com/igloo-home/esphome-go/pkg/wire"
)

// ErrNoCommand is returned by Translator.Command for read-only entity types.
var ErrNoCommand = errors.New("entity type accepts no commands")

// ErrNoState is returned by Translator.State for entity types without
// state updates.
var ErrNoState = errors.New("entity type has no state")

// Description is what discovery learns about one entity.
type Description struct {
	Header     wire.EntityHeader
	Attributes []hub.Attribute
}

// Update is a decoded state response.
type Update struct {
	Key        uint32
	Attributes []hub.Attribute

	// Missing is set when the device reports the entity has no state yet.
	Missing bool
}

// Translator converts one entity type's messages.
type Translator interface {
	// EntityType returns the entity type handled.
	EntityType() wire.EntityType

	// Describe decodes the list-entities response payload.
	Describe(payload []byte) (Description, error)

	// State decodes the state response payload.
	State(payload []byte) (Update, error)

	// Command builds the command request for the entity with the given key.
	// Attributes the entity type cannot apply are returned in ignored.
	Command(key uint32, attrs []hub.Attribute) (msg wire.Message, ignored []hub.Attribute, err error)
}

// Registry maps entity types to translators. It is safe for concurrent use.
type Registry struct {
	mu          sync.RWMutex
	translators map[wire.EntityType]Translator
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{translators: make(map[wire.EntityType]Translator)}
}

// Register adds t, replacing any translator for the same entity type.
func (r *Registry) Register(t Translator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.translators[t.EntityType()] = t
}

// Lookup returns the translator for et.
func (r *Registry) Lookup(et wire.EntityType) (Translator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.translators[et]
	return t, ok
}

// Types returns the registered entity types in ascending order.
func (r *Registry) Types() []wire.EntityType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]wire.EntityType, 0, len(r.translators))
	for et := range r.translators {
		types = append(types, et)
	}
	slices.Sort(types)
	return types
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// DefaultRegistry returns the shared registry of all built-in translators.
func DefaultRegistry() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
		for _, t := range builtins() {
			defaultRegistry.Register(t)
		}
	})
	return defaultRegistry
}

// Compile-time interface satisfaction check.
var (
	_ Translator = BinarySensor{}
	_ Translator = Sensor{}
	_ Translator = TextSensor{}
	_ Translator = Switch{}
	_ Translator = Button{}
	_ Translator = Light{}
	_ Translator = Number{}
	_ Translator = Select{}
	_ Translator = Lock{}
	_ Translator = Cover{}
	_ Translator = Fan{}
	_ Translator = Climate{}
	_ Translator = Valve{}
	_ Translator = Siren{}
	_ Translator = MediaPlayer{}
	_ Translator = AlarmControlPanel{}
	_ Translator = Text{}
	_ Translator = Date{}
	_ Translator = Time{}
	_ Translator = DateTime{}
	_ Translator = FirmwareUpdate{}
	_ Translator = Event{}
	_ Translator = Camera{}
)

func builtins() []Translator {
	return []Translator{
		BinarySensor{},
		Sensor{},
		TextSensor{},
		Switch{},
		Button{},
		Light{},
		Number{},
		Select{},
		Lock{},
		Cover{},
		Fan{},
		Climate{},
		Valve{},
		Siren{},
		MediaPlayer{},
		AlarmControlPanel{},
		Text{},
		Date{},
		Time{},
		DateTime{},
		FirmwareUpdate{},
		Event{},
		Camera{},
	}
}

func decode(payload []byte, m wire.Message) error {
	if err := wire.Unmarshal(payload, m); err != nil {
		return fmt.Errorf("decode %s: %w", m.MessageType(), err)
	}
	return nil
}
