// Package config loads generation profiles: a YAML file naming a preset,
// an optional seed, and per-option overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/daedalus/internal/presets"
	"github.com/samdwyer/daedalus/internal/world"
)

// Overrides replaces individual preset options. Nil fields keep the preset value.
type Overrides struct {
	Width          *int     `yaml:"width,omitempty"`
	Height         *int     `yaml:"height,omitempty"`
	RoomMinWidth   *int     `yaml:"room_min_width,omitempty"`
	RoomMinHeight  *int     `yaml:"room_min_height,omitempty"`
	RoomMaxWidth   *int     `yaml:"room_max_width,omitempty"`
	RoomMaxHeight  *int     `yaml:"room_max_height,omitempty"`
	MarginH        *int     `yaml:"margin_h,omitempty"`
	MarginV        *int     `yaml:"margin_v,omitempty"`
	CorridorWidth  *int     `yaml:"corridor_width,omitempty"`
	CorridorHeight *int     `yaml:"corridor_height,omitempty"`
	Iterations     *int     `yaml:"iterations,omitempty"`
	Errantness     *float64 `yaml:"errantness,omitempty"`
	PruneLength    *int     `yaml:"prune_length,omitempty"`
	Shape          *string  `yaml:"shape,omitempty"`
	Isolation      *string  `yaml:"isolation,omitempty"`
	WallDepth      *int     `yaml:"wall_depth,omitempty"`
}

// Profile models a profile file.
type Profile struct {
	Preset    string    `yaml:"preset"`
	Seed      *int64    `yaml:"seed,omitempty"`
	Overrides Overrides `yaml:"overrides"`
}

// Load reads a profile from path.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a profile. Unknown keys are rejected and an empty document
// selects the default preset.
func Parse(data []byte) (Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Profile{}, fmt.Errorf("config: parse: %w", err)
	}
	if p.Preset == "" {
		p.Preset = presets.DefaultID
	}
	return p, nil
}

// Resolve looks up the profile's preset and applies the overrides on top.
func (p Profile) Resolve(registry *presets.Registry) (world.Config, error) {
	cfg, err := registry.Config(p.Preset)
	if err != nil {
		return world.Config{}, fmt.Errorf("config: %w", err)
	}
	if err := p.Overrides.Apply(&cfg); err != nil {
		return world.Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return world.Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Apply writes every set override into cfg.
func (o Overrides) Apply(cfg *world.Config) error {
	setInt(&cfg.Width, o.Width)
	setInt(&cfg.Height, o.Height)
	setInt(&cfg.RoomMinWidth, o.RoomMinWidth)
	setInt(&cfg.RoomMinHeight, o.RoomMinHeight)
	setInt(&cfg.RoomMaxWidth, o.RoomMaxWidth)
	setInt(&cfg.RoomMaxHeight, o.RoomMaxHeight)
	setInt(&cfg.MarginH, o.MarginH)
	setInt(&cfg.MarginV, o.MarginV)
	setInt(&cfg.CorridorWidth, o.CorridorWidth)
	setInt(&cfg.CorridorHeight, o.CorridorHeight)
	setInt(&cfg.Iterations, o.Iterations)
	setInt(&cfg.PruneLength, o.PruneLength)
	setInt(&cfg.WallDepth, o.WallDepth)
	if o.Errantness != nil {
		cfg.Errantness = *o.Errantness
	}
	if o.Shape != nil {
		shape, err := world.ParseShape(*o.Shape)
		if err != nil {
			return err
		}
		cfg.Shape = shape
	}
	if o.Isolation != nil {
		policy, err := world.ParseIsolationPolicy(*o.Isolation)
		if err != nil {
			return err
		}
		cfg.Isolation = policy
	}
	return nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
