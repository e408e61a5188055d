package grid

import (
	"fmt"
	"strings"
)

// Grid is a row-major width x height array of cells.
//
// Reads never fail: any coordinate outside [0,width) x [0,height) yields
// SolidRock. Writes outside the grid are programmer errors and panic.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// New creates a grid filled with the given cell.
func New(width, height int, fill Cell) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("grid: invalid size %dx%d", width, height))
	}
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = fill
	}
	return &Grid{width: width, height: height, cells: cells}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether the coordinate lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the cell at the given position, or SolidRock outside the grid.
func (g *Grid) Get(x, y int) Cell {
	if !g.InBounds(x, y) {
		return SolidRock
	}
	return g.cells[y*g.width+x]
}

// Set writes a cell. It panics if the position lies outside the grid.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("grid: set (%d,%d) outside %dx%d", x, y, g.width, g.height))
	}
	g.cells[y*g.width+x] = c
}

// GetRect copies a sub-region into a new grid. Cells outside the source read as SolidRock.
func (g *Grid) GetRect(r Rect) *Grid {
	w, h := max(r.Width, 0), max(r.Height, 0)
	out := &Grid{width: w, height: h, cells: make([]Cell, w*h)}
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			out.cells[y*r.Width+x] = g.Get(r.X+x, r.Y+y)
		}
	}
	return out
}

// SetRect fills a sub-region with a cell. Every position must be in bounds.
func (g *Grid) SetRect(r Rect, c Cell) {
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			g.Set(x, y, c)
		}
	}
}

// RectIs reports whether any cell in the rectangle satisfies pred, stopping at the first match.
func (g *Grid) RectIs(r Rect, pred func(Cell) bool) bool {
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			if pred(g.Get(x, y)) {
				return true
			}
		}
	}
	return false
}

// RectAll reports whether every cell in the rectangle satisfies pred.
func (g *Grid) RectAll(r Rect, pred func(Cell) bool) bool {
	return !g.RectIs(r, func(c Cell) bool { return !pred(c) })
}

// RectBorderIs reports whether any cell on the rectangle's perimeter satisfies pred.
func (g *Grid) RectBorderIs(r Rect, pred func(Cell) bool) bool {
	if r.Empty() {
		return false
	}
	right := r.X + r.Width - 1
	bottom := r.Y + r.Height - 1
	for x := r.X; x <= right; x++ {
		if pred(g.Get(x, r.Y)) || pred(g.Get(x, bottom)) {
			return true
		}
	}
	for y := r.Y + 1; y < bottom; y++ {
		if pred(g.Get(r.X, y)) || pred(g.Get(right, y)) {
			return true
		}
	}
	return false
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c Cell, x, y int)) {
	for i, c := range g.cells {
		fn(c, i%g.width, i/g.width)
	}
}

// Count returns how many cells satisfy pred.
func (g *Grid) Count(pred func(Cell) bool) int {
	n := 0
	for _, c := range g.cells {
		if pred(c) {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String prints the grid one row per line using each cell's rune.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.width; x++ {
			b.WriteRune(g.Get(x, y).Rune())
		}
	}
	return b.String()
}
