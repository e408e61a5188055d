package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/daedalus/internal/grid"
	"github.com/samdwyer/daedalus/internal/presets"
	"github.com/samdwyer/daedalus/internal/render"
	"github.com/samdwyer/daedalus/internal/world"
)

// View is the part of the map on screen and how it is colored.
type View struct {
	OffsetX, OffsetY int  // Map cell drawn at the top-left corner
	BySection        bool // Color rooms and corridors by section id
}

// Renderer handles drawing maps to the screen.
type Renderer struct {
	screen  *Screen
	palette *presets.Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette *presets.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws the visible part of the map, leaving the last row for the status line.
func (r *Renderer) Render(m *world.Map, view View, status string) {
	r.screen.Clear()

	width, height := r.screen.Size()
	for sy := 0; sy < height-1; sy++ {
		for sx := 0; sx < width; sx++ {
			x, y := sx+view.OffsetX, sy+view.OffsetY
			if x >= m.Width() || y >= m.Height() {
				continue
			}
			cell := m.GetCell(x, y)
			r.screen.SetContent(sx, sy, render.Glyph(cell), r.cellStyle(m, cell, view.BySection))
		}
	}

	r.RenderMessage(status, height-1)
	r.screen.Show()
}

// cellStyle returns the style a cell is drawn with.
func (r *Renderer) cellStyle(m *world.Map, cell grid.Cell, bySection bool) tcell.Style {
	style := tcell.StyleDefault.Foreground(render.CellColor(m, r.palette, cell, bySection))
	if cell.IsConnection() {
		style = style.Bold(true)
	}
	return style
}

// RenderMessage displays a message on the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.screen.SetString(0, y, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}
