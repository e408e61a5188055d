package presets

import (
	"errors"
	"fmt"

	"github.com/samdwyer/daedalus/internal/world"
)

// Registry holds loaded preset definitions and provides lookup utilities.
type Registry struct {
	presets map[string]*PresetDef
	all     []PresetDef
}

// NewRegistry creates a registry from loaded preset definitions.
func NewRegistry(presets []PresetDef) *Registry {
	registry := &Registry{
		presets: make(map[string]*PresetDef),
		all:     presets,
	}
	for i := range presets {
		registry.presets[presets[i].ID] = &presets[i]
	}
	return registry
}

// LoadRegistry loads and creates a registry from the embedded presets.json.
func LoadRegistry() (*Registry, error) {
	presets, err := LoadPresets()
	if err != nil {
		return nil, err
	}
	if len(presets) == 0 {
		return nil, errors.New("no presets loaded from presets.json")
	}
	return NewRegistry(presets), nil
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the preset definition with the given ID, or nil if not found.
func (r *Registry) GetByID(id string) *PresetDef {
	return r.presets[id]
}

// Config returns the generation options of the named preset. An empty ID
// selects DefaultID.
func (r *Registry) Config(id string) (world.Config, error) {
	if id == "" {
		id = DefaultID
	}
	preset := r.GetByID(id)
	if preset == nil {
		return world.Config{}, fmt.Errorf("%w: %q", ErrUnknownPreset, id)
	}
	return preset.Config()
}

// All returns all preset definitions.
func (r *Registry) All() []PresetDef {
	return r.all
}

// Count returns the number of presets in the registry.
func (r *Registry) Count() int {
	return len(r.all)
}
