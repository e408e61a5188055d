package section

import (
	"math"

	"github.com/samdwyer/daedalus/internal/corridor"
	"github.com/samdwyer/daedalus/internal/grid"
)

// Root is the slot, and the id, every reachable section ends up labeled with.
const Root = 0

// Layout is the view of a map the merger works on.
type Layout interface {
	Grid() *grid.Grid
	Sections() *Table
	// SectionOf resolves a room or corridor cell to its section slot.
	SectionOf(c grid.Cell) (slot int, ok bool)
	// RoomBounds returns the rectangle of the room at the given index.
	RoomBounds(room int) grid.Rect
	Trees() []*corridor.Tree
}

// Options are the map dimensions the merger needs.
type Options struct {
	MarginH, MarginV              int
	CorridorWidth, CorridorHeight int
	PruneLength                   int // Dead ends shorter than this are removed
}

// Gap is a strip of rock found between two sections.
type Gap struct {
	Rect           grid.Rect
	A, B           int            // Slots on either side; A is west or north
	ScoreA, ScoreB float64        // Doorway score seen from each side
	Direction      grid.Direction // Travel from A to B
}

// Merger discovers gaps between sections, opens a spanning subset of them
// and prunes the dead ends left behind.
type Merger struct {
	layout Layout
	opts   Options
	gaps   []Gap
}

// NewMerger creates a merger for the given layout.
func NewMerger(layout Layout, opts Options) *Merger {
	return &Merger{layout: layout, opts: opts}
}

// Gaps returns every gap found by Discover.
func (m *Merger) Gaps() []Gap {
	return m.gaps
}

// Discover scans every rock cell for gaps exactly one margin wide between
// two different sections and records a mutual connection on both sides.
// It returns the number of gaps found.
func (m *Merger) Discover() int {
	cw, ch := m.opts.CorridorWidth, m.opts.CorridorHeight
	mh, mv := m.opts.MarginH, m.opts.MarginV
	before := len(m.gaps)

	m.layout.Grid().Each(func(c grid.Cell, x, y int) {
		if !c.IsRock() {
			return
		}
		m.tryGap(
			grid.Rect{X: x, Y: y, Width: mh, Height: ch},
			grid.Rect{X: x - cw, Y: y, Width: cw, Height: ch},
			grid.Rect{X: x + mh, Y: y, Width: cw, Height: ch},
			grid.East,
		)
		m.tryGap(
			grid.Rect{X: x, Y: y, Width: cw, Height: mv},
			grid.Rect{X: x, Y: y - ch, Width: cw, Height: ch},
			grid.Rect{X: x, Y: y + mv, Width: cw, Height: ch},
			grid.South,
		)
	})
	return len(m.gaps) - before
}

func (m *Merger) tryGap(gap, before, after grid.Rect, d grid.Direction) {
	g := m.layout.Grid()
	if !g.RectAll(gap, grid.Cell.IsRock) {
		return
	}
	a, ok := m.owner(before)
	if !ok {
		return
	}
	b, ok := m.owner(after)
	if !ok || a == b {
		return
	}

	scoreA := m.score(before, gap, d)
	scoreB := m.score(after, gap, d)
	score := math.Min(scoreA, scoreB)

	sections := m.layout.Sections()
	sections.Get(a).AddConnection(gap.X, gap.Y, b, score, d)
	sections.Get(b).AddConnection(gap.X, gap.Y, a, score, d.Opposite())
	m.gaps = append(m.gaps, Gap{Rect: gap, A: a, B: b, ScoreA: scoreA, ScoreB: scoreB, Direction: d})
}

// owner returns the section owning every cell of r, if there is exactly one.
func (m *Merger) owner(r grid.Rect) (int, bool) {
	slot := -1
	mixed := m.layout.Grid().RectIs(r, func(c grid.Cell) bool {
		s, ok := m.layout.SectionOf(c)
		if !ok {
			return true
		}
		if slot == -1 {
			slot = s
		}
		return s != slot
	})
	return slot, !mixed && slot != -1
}

// score rates one side of a gap. Corridors always score 1; rooms fall off
// linearly as the gap moves away from the middle of the wall it opens.
func (m *Merger) score(side, gap grid.Rect, d grid.Direction) float64 {
	c := m.layout.Grid().Get(side.X, side.Y)
	switch {
	case c.IsCorridor():
		return 1
	case c.IsRoom():
		room := m.layout.RoomBounds(c.Index)
		var gapCenter, roomCenter, extent float64
		if d.Horizontal() {
			gapCenter = float64(gap.Y) + float64(m.opts.CorridorHeight)/2
			roomCenter = float64(room.Y) + float64(room.Height)/2
			extent = float64(room.Height)
		} else {
			gapCenter = float64(gap.X) + float64(m.opts.CorridorWidth)/2
			roomCenter = float64(room.X) + float64(room.Width)/2
			extent = float64(room.Width)
		}
		return math.Max(0, 1-math.Abs(gapCenter-roomCenter)/(extent/2))
	default:
		return 0
	}
}

// Connect relabels every section reachable from Root through recorded
// connections, opening the best connection towards each newly reached
// section. Sections never reached keep their own id. Running it again over
// the same connections yields the same labels. It returns the number of
// gaps opened.
func (m *Merger) Connect() int {
	sections := m.layout.Sections()
	if sections.Len() == 0 {
		return 0
	}
	sections.ResetLabels()
	return m.propagate(Root, Root)
}

// ConnectIslands joins the sections Connect could not reach among
// themselves: every section still carrying its own id seeds a propagation,
// in slot order, labeling its island with its slot. It returns the number of
// gaps opened.
func (m *Merger) ConnectIslands() int {
	sections := m.layout.Sections()
	opened := 0
	for slot := 0; slot < sections.Len(); slot++ {
		if slot == Root || sections.Get(slot).ID() != slot {
			continue
		}
		opened += m.propagate(slot, slot)
	}
	return opened
}

func (m *Merger) propagate(slot, label int) int {
	sections := m.layout.Sections()
	opened := 0
	for _, c := range sections.Get(slot).Best() {
		neighbor := sections.Get(c.Neighbor)
		if neighbor.ID() == label {
			continue
		}
		m.open(c)
		neighbor.SetID(label)
		opened += 1 + m.propagate(c.Neighbor, label)
	}
	return opened
}

// GapRect returns the rectangle a connection opens.
func (m *Merger) GapRect(c Connection) grid.Rect {
	if c.Direction.Horizontal() {
		return grid.Rect{X: c.X, Y: c.Y, Width: m.opts.MarginH, Height: m.opts.CorridorHeight}
	}
	return grid.Rect{X: c.X, Y: c.Y, Width: m.opts.CorridorWidth, Height: m.opts.MarginV}
}

func (m *Merger) open(c Connection) {
	m.layout.Grid().SetRect(m.GapRect(c), grid.Connection)
}

// Prune walks every corridor tree and takes back dead ends that are shorter
// than the prune length and touch no opened connection. It returns the
// number of carve steps removed.
func (m *Merger) Prune() int {
	removed := 0
	for _, t := range m.layout.Trees() {
		if root := t.Root(); root != corridor.NoNode {
			removed += m.pruneFrom(t, root, 0)
		}
	}
	return removed
}

// pruneFrom works bottom-up so that a chain whose leaf is removed is
// re-evaluated as a new leaf on the way back to the last branch point.
// Branch points themselves are kept even when every arm is taken back.
func (m *Merger) pruneFrom(t *corridor.Tree, id corridor.NodeID, depth int) int {
	children := t.Children(id)
	branch := len(children) > 1
	next := depth + 1
	if branch {
		next = 0
	}
	removed := 0
	for _, c := range children {
		removed += m.pruneFrom(t, c, next)
	}

	if id == t.Root() || branch || t.ChildCount(id) > 0 {
		return removed
	}
	if depth >= m.opts.PruneLength || m.bordersConnection(t, id) {
		return removed
	}
	m.retract(t, id)
	t.Detach(id)
	return removed + 1
}

func (m *Merger) footprint(t *corridor.Tree, id corridor.NodeID) grid.Rect {
	x, y := t.Position(id)
	return grid.Rect{X: x, Y: y, Width: m.opts.CorridorWidth, Height: m.opts.CorridorHeight}
}

func (m *Merger) bordersConnection(t *corridor.Tree, id corridor.NodeID) bool {
	return m.layout.Grid().RectBorderIs(m.footprint(t, id).Expand(1, 1), grid.Cell.IsConnection)
}

// retract removes the strip of the node's footprint facing away from its
// parent, which is exactly what the carve step added.
func (m *Merger) retract(t *corridor.Tree, id corridor.NodeID) {
	parent, _ := t.Parent(id)
	px, py := t.Position(parent)
	r := m.footprint(t, id)

	strip := r
	switch {
	case px > r.X:
		strip.Width = 1
	case px < r.X:
		strip.X, strip.Width = r.X+r.Width-1, 1
	case py > r.Y:
		strip.Height = 1
	case py < r.Y:
		strip.Y, strip.Height = r.Y+r.Height-1, 1
	}
	m.layout.Grid().SetRect(strip, grid.Removed)
}
