// Package render draws generated maps as plain text, styled terminal text
// or PNG images.
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/daedalus/internal/grid"
	"github.com/samdwyer/daedalus/internal/presets"
	"github.com/samdwyer/daedalus/internal/world"
)

// Glyph returns the text character of a cell.
func Glyph(c grid.Cell) rune {
	switch c.Kind {
	case grid.KindRoom:
		return '.'
	case grid.KindCorridor:
		return ','
	case grid.KindConnection:
		return '+'
	case grid.KindWall:
		return '#'
	default:
		return ' '
	}
}

// CellColor returns the color a cell is drawn with. Room and corridor cells
// take the color of their current section id when bySection is set.
func CellColor(m *world.Map, p *presets.Palette, c grid.Cell, bySection bool) tcell.Color {
	if bySection {
		if id, ok := m.SectionID(c); ok {
			return p.Section(id)
		}
	}
	return p.Kind(c.Kind)
}
