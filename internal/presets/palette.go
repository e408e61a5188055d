package presets

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/daedalus/internal/grid"
)

// PaletteDef defines the render colors loaded from JSON, as hex strings.
type PaletteDef struct {
	ID         string   `json:"id"`
	Rock       string   `json:"rock"`
	SolidRock  string   `json:"solidRock"`
	Wall       string   `json:"wall"`
	Perimeter  string   `json:"perimeter"`
	Room       string   `json:"room"`
	Corridor   string   `json:"corridor"`
	Connection string   `json:"connection"`
	Removed    string   `json:"removed"`
	Sections   []string `json:"sections"` // Cycled by section id
}

// Palette holds parsed render colors.
type Palette struct {
	def      PaletteDef
	kinds    map[grid.Kind]tcell.Color
	sections []tcell.Color
}

// NewPalette parses every color of def.
func NewPalette(def PaletteDef) (*Palette, error) {
	if len(def.Sections) == 0 {
		return nil, fmt.Errorf("palette %s: no section colors", def.ID)
	}

	p := &Palette{def: def, kinds: make(map[grid.Kind]tcell.Color)}
	var errs []error
	for kind, hex := range map[grid.Kind]string{
		grid.KindRock:       def.Rock,
		grid.KindSolidRock:  def.SolidRock,
		grid.KindWall:       def.Wall,
		grid.KindPerimeter:  def.Perimeter,
		grid.KindRoom:       def.Room,
		grid.KindCorridor:   def.Corridor,
		grid.KindConnection: def.Connection,
		grid.KindRemoved:    def.Removed,
	} {
		color, err := ParseHexColor(hex)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", kind, err))
			continue
		}
		p.kinds[kind] = color
	}
	for i, hex := range def.Sections {
		color, err := ParseHexColor(hex)
		if err != nil {
			errs = append(errs, fmt.Errorf("section %d: %w", i, err))
			continue
		}
		p.sections = append(p.sections, color)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("palette %s: %w", def.ID, err)
	}
	return p, nil
}

// LoadPalette loads the embedded palette.json.
func LoadPalette() (*Palette, error) {
	def, err := Load[PaletteDef]("palette.json")
	if err != nil {
		return nil, err
	}
	return NewPalette(def)
}

// MustLoadPalette loads the embedded palette, panicking on error.
func MustLoadPalette() *Palette {
	p, err := LoadPalette()
	if err != nil {
		panic(err)
	}
	return p
}

// Kind returns the color of a cell kind.
func (p *Palette) Kind(k grid.Kind) tcell.Color {
	if c, ok := p.kinds[k]; ok {
		return c
	}
	return tcell.ColorDefault
}

// Section returns the color of a section id. Ids beyond the list wrap around.
func (p *Palette) Section(id int) tcell.Color {
	if id < 0 {
		id = -id
	}
	return p.sections[id%len(p.sections)]
}
