package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/daedalus/internal/presets"
	"github.com/samdwyer/daedalus/internal/world"
)

// Styled draws the map like ASCII with every room and corridor colored by
// its section id, connections and walls by their palette color. Runs of the
// same color share one escape sequence.
func Styled(m *world.Map, p *presets.Palette) string {
	styles := make(map[tcell.Color]lipgloss.Style)
	styleFor := func(c tcell.Color) lipgloss.Style {
		s, ok := styles[c]
		if !ok {
			s = lipgloss.NewStyle().Foreground(lipgloss.Color(presets.Hex(c)))
			styles[c] = s
		}
		return s
	}

	var b, run strings.Builder
	for y := 0; y < m.Height(); y++ {
		var current tcell.Color
		plain := true
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if plain {
				b.WriteString(run.String())
			} else {
				b.WriteString(styleFor(current).Render(run.String()))
			}
			run.Reset()
		}

		for x := 0; x < m.Width(); x++ {
			cell := m.GetCell(x, y)
			glyph := Glyph(cell)
			isPlain := glyph == ' '
			color := CellColor(m, p, cell, true)
			if isPlain != plain || (!isPlain && color != current) {
				flush()
				plain, current = isPlain, color
			}
			run.WriteRune(glyph)
		}
		flush()
		b.WriteByte('\n')
	}
	return b.String()
}
