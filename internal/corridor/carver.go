// Package corridor carves corridor strands into the free rock between rooms
// and records the carve order of every strand as a tree.
package corridor

import (
	"math/rand"

	"github.com/samdwyer/daedalus/internal/grid"
)

// Allocator hands out a fresh corridor, and with it a fresh section, for
// every strand the carver starts.
type Allocator interface {
	NewCorridor() int
}

// Options controls the carving walk.
type Options struct {
	Width, Height int     // Corridor footprint
	Errantness    float64 // Chance of abandoning the current heading at each step
	MarginH       int     // Rock kept between a corridor and anything else, horizontally
	MarginV       int     // and vertically
}

// Carver fills free rock with corridor strands using a randomized
// recursive-backtracking walk.
type Carver struct {
	opts Options
	rng  *rand.Rand
}

// NewCarver creates a carver drawing randomness from rng.
func NewCarver(opts Options, rng *rand.Rand) *Carver {
	return &Carver{opts: opts, rng: rng}
}

// Carve starts strands until no origin is left on the grid, returning one
// tree per strand in carve order.
func (c *Carver) Carve(g *grid.Grid, alloc Allocator) []*Tree {
	var trees []*Tree
	for {
		x, y, ok := c.findOrigin(g)
		if !ok {
			return trees
		}
		tree := NewTree(alloc.NewCorridor())
		heading := grid.Directions[c.rng.Intn(4)]
		c.extend(g, tree, NoNode, x, y, heading)
		trees = append(trees, tree)
	}
}

// findOrigin scans the grid row-major from a random wrap-around offset for
// the first footprint with free margins all around.
func (c *Carver) findOrigin(g *grid.Grid) (int, int, bool) {
	total := g.Width() * g.Height()
	offset := c.rng.Intn(total)
	for i := 0; i < total; i++ {
		idx := (offset + i) % total
		x, y := idx%g.Width(), idx/g.Width()
		footprint := grid.Rect{X: x, Y: y, Width: c.opts.Width, Height: c.opts.Height}
		if c.vacant(g, footprint, c.opts.MarginH, c.opts.MarginV, c.opts.MarginH, c.opts.MarginV) {
			return x, y, true
		}
	}
	return 0, 0, false
}

// extend carves the footprint at (x, y) and tries up to three directions from it.
func (c *Carver) extend(g *grid.Grid, tree *Tree, parent NodeID, x, y int, heading grid.Direction) {
	if c.rng.Float64() < c.opts.Errantness {
		heading = grid.Directions[c.rng.Intn(4)]
	}

	g.SetRect(grid.Rect{X: x, Y: y, Width: c.opts.Width, Height: c.opts.Height}, grid.CorridorCell(tree.Corridor()))
	node := tree.Add(parent, x, y)

	pool := []grid.Direction{grid.North, grid.East, grid.South, grid.West}
	for attempt := 0; attempt < 3; attempt++ {
		if c.canStep(g, x, y, heading) {
			dx, dy := heading.Delta()
			c.extend(g, tree, node, x+dx, y+dy, heading)
		}
		pool = without(pool, heading)
		if len(pool) == 1 {
			heading = pool[0]
		} else {
			heading = pool[c.rng.Intn(len(pool))]
		}
	}
}

// canStep checks the one-cell strip a step in direction d would add to the
// footprint at (x, y), with margins on every side except the one facing back.
func (c *Carver) canStep(g *grid.Grid, x, y int, d grid.Direction) bool {
	w, h := c.opts.Width, c.opts.Height
	mh, mv := c.opts.MarginH, c.opts.MarginV
	switch d {
	case grid.North:
		return c.vacant(g, grid.Rect{X: x, Y: y - 1, Width: w, Height: 1}, mh, mv, mh, 0)
	case grid.East:
		return c.vacant(g, grid.Rect{X: x + w, Y: y, Width: 1, Height: h}, 0, mv, mh, mv)
	case grid.South:
		return c.vacant(g, grid.Rect{X: x, Y: y + h, Width: w, Height: 1}, mh, 0, mh, mv)
	default:
		return c.vacant(g, grid.Rect{X: x - 1, Y: y, Width: 1, Height: h}, mh, mv, 0, mv)
	}
}

// vacant reports whether r is in-bounds rock and r grown by the given
// margins (left, top, right, bottom) holds nothing but rock.
func (c *Carver) vacant(g *grid.Grid, r grid.Rect, left, top, right, bottom int) bool {
	if !g.RectAll(r, grid.Cell.IsRock) {
		return false
	}
	margin := grid.Rect{
		X:      r.X - left,
		Y:      r.Y - top,
		Width:  r.Width + left + right,
		Height: r.Height + top + bottom,
	}
	return g.RectAll(margin, grid.Cell.IsVacant)
}

func without(pool []grid.Direction, d grid.Direction) []grid.Direction {
	out := pool[:0]
	for _, p := range pool {
		if p != d {
			out = append(out, p)
		}
	}
	return out
}
