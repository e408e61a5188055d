package presets

import (
	"errors"
	"fmt"

	"github.com/samdwyer/daedalus/internal/world"
)

// DefaultID is the preset used when none is named.
const DefaultID = "default"

// ErrUnknownPreset is returned when a preset ID is not in the registry.
var ErrUnknownPreset = errors.New("presets: unknown preset")

// PresetDef defines a named set of generation options loaded from JSON.
type PresetDef struct {
	ID             string  `json:"id"`             // Unique identifier (e.g., "caverns")
	Name           string  `json:"name"`           // Display name
	Description    string  `json:"description"`    // One-line summary for -help output
	Width          int     `json:"width"`          // Map columns
	Height         int     `json:"height"`         // Map rows
	RoomMinWidth   int     `json:"roomMinWidth"`   // Smallest room width
	RoomMinHeight  int     `json:"roomMinHeight"`  // Smallest room height
	RoomMaxWidth   int     `json:"roomMaxWidth"`   // Largest room width
	RoomMaxHeight  int     `json:"roomMaxHeight"`  // Largest room height
	MarginH        int     `json:"marginH"`        // Rock kept left and right
	MarginV        int     `json:"marginV"`        // Rock kept above and below
	CorridorWidth  int     `json:"corridorWidth"`  // Corridor footprint width
	CorridorHeight int     `json:"corridorHeight"` // Corridor footprint height
	Iterations     int     `json:"iterations"`     // Room placement attempts
	Errantness     float64 `json:"errantness"`     // Chance of a fresh heading per step
	PruneLength    int     `json:"pruneLength"`    // Dead ends shallower than this are removed
	Shape          string  `json:"shape"`          // "square" or "circle"
	Isolation      string  `json:"isolation"`      // "keep" or "merge"
	WallDepth      int     `json:"wallDepth"`      // 0 disables walls
}

// Config converts the preset to generation options.
func (p *PresetDef) Config() (world.Config, error) {
	shape, err := world.ParseShape(p.Shape)
	if err != nil {
		return world.Config{}, fmt.Errorf("preset %s: %w", p.ID, err)
	}
	isolation, err := world.ParseIsolationPolicy(p.Isolation)
	if err != nil {
		return world.Config{}, fmt.Errorf("preset %s: %w", p.ID, err)
	}

	cfg := world.Config{
		Width:          p.Width,
		Height:         p.Height,
		RoomMinWidth:   p.RoomMinWidth,
		RoomMinHeight:  p.RoomMinHeight,
		RoomMaxWidth:   p.RoomMaxWidth,
		RoomMaxHeight:  p.RoomMaxHeight,
		MarginH:        p.MarginH,
		MarginV:        p.MarginV,
		CorridorWidth:  p.CorridorWidth,
		CorridorHeight: p.CorridorHeight,
		Iterations:     p.Iterations,
		Errantness:     p.Errantness,
		PruneLength:    p.PruneLength,
		Shape:          shape,
		Isolation:      isolation,
		WallDepth:      p.WallDepth,
	}
	if err := cfg.Validate(); err != nil {
		return world.Config{}, fmt.Errorf("preset %s: %w", p.ID, err)
	}
	return cfg, nil
}

// PresetsFile represents the structure of presets.json.
type PresetsFile struct {
	Presets []PresetDef `json:"presets"`
}

// LoadPresets loads preset definitions from the embedded presets.json file.
func LoadPresets() ([]PresetDef, error) {
	file, err := Load[PresetsFile]("presets.json")
	if err != nil {
		return nil, err
	}
	return file.Presets, nil
}
