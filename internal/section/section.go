// Package section groups rooms and corridor strands into connectivity
// sections and merges them by opening the gaps between them.
package section

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/daedalus/internal/grid"
)

// Connection is a candidate opening from a section to a neighbor.
type Connection struct {
	X, Y      int            // Top-left corner of the gap
	Neighbor  int            // Slot of the section on the other side
	Score     float64        // In [0,1]; higher is a better looking doorway
	Direction grid.Direction // Direction of travel from the owning section
}

// Section is one connectivity class: a room or a corridor strand, possibly
// relabeled to the id of the section it was merged into.
type Section struct {
	id          int
	connections []Connection
}

// NewSection creates a section with the given id and no connections.
func NewSection(id int) *Section {
	return &Section{id: id}
}

// ID returns the section's current label.
func (s *Section) ID() int { return s.id }

// SetID relabels the section.
func (s *Section) SetID(id int) { s.id = id }

// Equal reports whether two sections carry the same label.
func (s *Section) Equal(other *Section) bool {
	return s.id == other.id
}

// AddConnection records a candidate opening. Duplicates are kept.
func (s *Section) AddConnection(x, y, neighbor int, score float64, d grid.Direction) {
	s.connections = append(s.connections, Connection{X: x, Y: y, Neighbor: neighbor, Score: score, Direction: d})
}

// Connections returns every recorded candidate in recording order.
func (s *Section) Connections() []Connection {
	return s.connections
}

// Best keeps the highest scoring candidate per (neighbor, direction) pair and
// sorts the survivors by descending score. Ties keep recording order.
func (s *Section) Best() []Connection {
	type key struct {
		neighbor  int
		direction grid.Direction
	}
	index := make(map[key]int)
	var best []Connection
	for _, c := range s.connections {
		k := key{c.Neighbor, c.Direction}
		if i, ok := index[k]; ok {
			if c.Score > best[i].Score {
				best[i] = c
			}
			continue
		}
		index[k] = len(best)
		best = append(best, c)
	}
	sort.SliceStable(best, func(i, j int) bool { return best[i].Score > best[j].Score })
	return best
}

// Table stores sections by slot. A slot never changes once handed out, so
// rooms and corridors refer to their section by slot while the section's id
// is free to be relabeled.
type Table struct {
	sections []*Section
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{}
}

// New allocates a section whose id equals its slot.
func (t *Table) New() int {
	slot := len(t.sections)
	t.sections = append(t.sections, NewSection(slot))
	return slot
}

// Get returns the section in the given slot. It panics on an unknown slot.
func (t *Table) Get(slot int) *Section {
	if slot < 0 || slot >= len(t.sections) {
		panic(fmt.Sprintf("section: slot %d out of range [0,%d)", slot, len(t.sections)))
	}
	return t.sections[slot]
}

// Len returns the number of slots.
func (t *Table) Len() int { return len(t.sections) }

// All returns every section in slot order.
func (t *Table) All() []*Section { return t.sections }

// ResetLabels gives every section its slot back as id.
func (t *Table) ResetLabels() {
	for slot, s := range t.sections {
		s.SetID(slot)
	}
}

// Labels returns the current id of every slot.
func (t *Table) Labels() []int {
	out := make([]int, len(t.sections))
	for slot, s := range t.sections {
		out[slot] = s.ID()
	}
	return out
}

// Isolated returns the slots whose id differs from connected, in slot order.
func (t *Table) Isolated(connected int) []int {
	var out []int
	for slot, s := range t.sections {
		if s.ID() != connected {
			out = append(out, slot)
		}
	}
	return out
}

// Groups returns the number of distinct ids in use.
func (t *Table) Groups() int {
	ids := mapset.New[int]()
	for _, s := range t.sections {
		ids.Put(s.ID())
	}
	return ids.Size()
}
