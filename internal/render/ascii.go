package render

import (
	"strings"

	"github.com/samdwyer/daedalus/internal/world"
)

// ASCII draws the map one row per line.
func ASCII(m *world.Map) string {
	var b strings.Builder
	b.Grow((m.Width() + 1) * m.Height())
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			b.WriteRune(Glyph(m.GetCell(x, y)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
