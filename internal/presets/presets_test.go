package presets

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/daedalus/internal/grid"
	"github.com/samdwyer/daedalus/internal/world"
)

func TestLoadPresets(t *testing.T) {
	presets, err := LoadPresets()
	if err != nil {
		t.Fatalf("Failed to load presets: %v", err)
	}

	if len(presets) != 4 {
		t.Errorf("Expected 4 presets, got %d", len(presets))
	}

	// Verify expected presets exist
	expectedIDs := map[string]bool{"default": false, "caverns": false, "halls": false, "labyrinth": false}
	for _, p := range presets {
		if _, ok := expectedIDs[p.ID]; ok {
			expectedIDs[p.ID] = true
		}
	}

	for id, found := range expectedIDs {
		if !found {
			t.Errorf("Expected preset %q not found", id)
		}
	}
}

func TestEveryPresetIsValid(t *testing.T) {
	registry := MustLoadRegistry()
	for _, p := range registry.All() {
		if _, err := p.Config(); err != nil {
			t.Errorf("preset %q: %v", p.ID, err)
		}
	}
}

func TestDefaultPresetMatchesDefaultConfig(t *testing.T) {
	registry := MustLoadRegistry()

	cfg, err := registry.Config("")
	if err != nil {
		t.Fatalf("Config(\"\") error: %v", err)
	}
	if cfg != world.DefaultConfig() {
		t.Errorf("default preset = %+v, want %+v", cfg, world.DefaultConfig())
	}
}

func TestRegistry(t *testing.T) {
	registry, err := LoadRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 4 {
		t.Errorf("Expected 4 presets, got %d", registry.Count())
	}

	caverns := registry.GetByID("caverns")
	if caverns == nil {
		t.Fatal("Caverns not found by ID")
	}
	if caverns.Name != "Caverns" {
		t.Errorf("Expected name 'Caverns', got %q", caverns.Name)
	}

	cfg, err := registry.Config("caverns")
	if err != nil {
		t.Fatalf("Config(caverns) error: %v", err)
	}
	if cfg.Shape != world.ShapeCircle || cfg.Isolation != world.IsolationMerge {
		t.Errorf("caverns shape/isolation = %v/%v, want circle/merge", cfg.Shape, cfg.Isolation)
	}

	if registry.GetByID("missing") != nil {
		t.Error("GetByID(missing) should be nil")
	}
	if _, err := registry.Config("missing"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("Config(missing) error = %v, want ErrUnknownPreset", err)
	}
}

func TestPresetConfigRejectsBadNames(t *testing.T) {
	def := PresetDef{ID: "bad", Shape: "hexagon"}
	if _, err := def.Config(); !errors.Is(err, world.ErrInvalidConfig) {
		t.Errorf("Config() error = %v, want ErrInvalidConfig", err)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#0000FF", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestPalette(t *testing.T) {
	p := MustLoadPalette()

	if got := Hex(p.Kind(grid.KindConnection)); got != "#4FBF4F" {
		t.Errorf("connection color = %s, want #4FBF4F", got)
	}
	if p.Section(0) != p.Section(10) {
		t.Error("section colors should wrap around")
	}
	if p.Section(0) == p.Section(1) {
		t.Error("neighboring section ids should differ")
	}
	if p.Kind(grid.Kind(99)) != tcell.ColorDefault {
		t.Error("unknown kind should use the default color")
	}
}

func TestNewPaletteReportsBadColors(t *testing.T) {
	_, err := NewPalette(PaletteDef{ID: "broken", Wall: "#12", Sections: []string{"#000000"}})
	if err == nil {
		t.Fatal("expected error for malformed colors")
	}
	if _, err := NewPalette(PaletteDef{ID: "empty"}); err == nil {
		t.Error("expected error for missing section colors")
	}
}
