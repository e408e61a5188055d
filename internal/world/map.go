// Package world generates dungeon maps: rooms placed by rejection sampling,
// corridors carved through the rock left over, and sections merged into a
// connected layout.
package world

import (
	"github.com/google/uuid"

	"github.com/samdwyer/daedalus/internal/corridor"
	"github.com/samdwyer/daedalus/internal/grid"
	"github.com/samdwyer/daedalus/internal/section"
)

// Map is a generated map. It owns the grid, the rooms and corridors drawn on
// it, their sections, and the carve tree of every corridor strand.
type Map struct {
	id        string
	grid      *grid.Grid
	rooms     []Room
	corridors []Corridor
	sections  *section.Table
	trees     []*corridor.Tree
}

func newMap(width, height int) *Map {
	return &Map{
		id:       uuid.NewString(),
		grid:     grid.New(width, height, grid.Rock),
		sections: section.NewTable(),
	}
}

// ID returns the unique identifier of this generation run.
func (m *Map) ID() string { return m.id }

// Width returns the number of columns.
func (m *Map) Width() int { return m.grid.Width() }

// Height returns the number of rows.
func (m *Map) Height() int { return m.grid.Height() }

// Grid returns the cell grid.
func (m *Map) Grid() *grid.Grid { return m.grid }

// Each calls fn for every cell in row-major order.
func (m *Map) Each(fn func(c grid.Cell, x, y int)) {
	m.grid.Each(fn)
}

// GetCell returns the cell at the given position, or SolidRock outside the map.
func (m *Map) GetCell(x, y int) grid.Cell {
	return m.grid.Get(x, y)
}

// IsWalkable returns true if the given position can be walked on.
func (m *Map) IsWalkable(x, y int) bool {
	return m.grid.Get(x, y).IsWalkable()
}

// Rooms returns every placed room in placement order.
func (m *Map) Rooms() []Room { return m.rooms }

// Room returns the room at index.
func (m *Map) Room(i int) Room { return m.rooms[i] }

// RoomIndexAt returns the index of the room containing the position, or -1 if not in a room.
func (m *Map) RoomIndexAt(x, y int) int {
	if c := m.grid.Get(x, y); c.IsRoom() {
		return c.Index
	}
	return -1
}

// Corridors returns every carved strand in carve order.
func (m *Map) Corridors() []Corridor { return m.corridors }

// Corridor returns the corridor at index.
func (m *Map) Corridor(i int) Corridor { return m.corridors[i] }

// Trees returns the carve tree of every corridor, indexed like Corridors.
func (m *Map) Trees() []*corridor.Tree { return m.trees }

// Sections returns the section table.
func (m *Map) Sections() *section.Table { return m.sections }

// Section returns the section in the given slot.
func (m *Map) Section(slot int) *section.Section { return m.sections.Get(slot) }

// SectionOf resolves a room or corridor cell to the slot of its section.
func (m *Map) SectionOf(c grid.Cell) (int, bool) {
	switch c.Kind {
	case grid.KindRoom:
		return m.rooms[c.Index].SectionID, true
	case grid.KindCorridor:
		return m.corridors[c.Index].SectionID, true
	default:
		return 0, false
	}
}

// SectionID returns the current section label of a room or corridor cell.
func (m *Map) SectionID(c grid.Cell) (int, bool) {
	slot, ok := m.SectionOf(c)
	if !ok {
		return 0, false
	}
	return m.sections.Get(slot).ID(), true
}

// RoomBounds returns the rectangle of the room at index.
func (m *Map) RoomBounds(i int) grid.Rect {
	return m.rooms[i].Bounds()
}

// Connections returns every candidate opening recorded for the section in slot.
func (m *Map) Connections(slot int) []section.Connection {
	return m.sections.Get(slot).Connections()
}

// Isolated returns the slots of the sections that were not merged into the root section.
func (m *Map) Isolated() []int {
	return m.sections.Isolated(section.Root)
}

// NewCorridor allocates a corridor and its section, returning the corridor index.
func (m *Map) NewCorridor() int {
	m.corridors = append(m.corridors, Corridor{SectionID: m.sections.New()})
	return len(m.corridors) - 1
}

// addRoom allocates a section for the room and stamps its cells.
func (m *Map) addRoom(r Room) int {
	r.SectionID = m.sections.New()
	m.rooms = append(m.rooms, r)
	idx := len(m.rooms) - 1
	m.grid.SetRect(r.Bounds(), grid.RoomCell(idx))
	return idx
}
