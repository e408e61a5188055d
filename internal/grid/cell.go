// Package grid provides the cell model and the bounds-safe grid the map generator draws on.
package grid

import "fmt"

// Kind identifies what occupies a cell.
type Kind uint8

const (
	// KindRock is uncarved rock, the fill of a fresh map.
	KindRock Kind = iota
	// KindSolidRock is unbreakable rock, returned for every read outside the grid.
	KindSolidRock
	// KindWall is rock bordering a walkable cell.
	KindWall
	// KindRoom is a room cell; Index holds the room index.
	KindRoom
	// KindCorridor is a corridor cell; Index holds the corridor index.
	KindCorridor
	// KindPerimeter is rock near a wall; Index holds the distance to the wall.
	KindPerimeter
	// KindConnection is an opened gap between two sections.
	KindConnection
	// KindRemoved is a corridor cell taken back by pruning.
	KindRemoved
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindRock:
		return "rock"
	case KindSolidRock:
		return "solid-rock"
	case KindWall:
		return "wall"
	case KindRoom:
		return "room"
	case KindCorridor:
		return "corridor"
	case KindPerimeter:
		return "perimeter"
	case KindConnection:
		return "connection"
	case KindRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Cell is a single grid cell. Index is only meaningful for rooms, corridors and perimeters.
type Cell struct {
	Kind  Kind
	Index int
}

var (
	// Rock is an uncarved cell.
	Rock = Cell{Kind: KindRock}
	// SolidRock is the sentinel returned for out-of-range reads.
	SolidRock = Cell{Kind: KindSolidRock}
	// Wall is a wall cell.
	Wall = Cell{Kind: KindWall}
	// Connection is an opened gap cell.
	Connection = Cell{Kind: KindConnection}
	// Removed is a pruned corridor cell.
	Removed = Cell{Kind: KindRemoved}
)

// RoomCell returns a cell belonging to the room at index.
func RoomCell(index int) Cell {
	return Cell{Kind: KindRoom, Index: index}
}

// CorridorCell returns a cell belonging to the corridor at index.
func CorridorCell(index int) Cell {
	return Cell{Kind: KindCorridor, Index: index}
}

// PerimeterCell returns a perimeter cell at the given distance from the nearest wall.
func PerimeterCell(distance int) Cell {
	return Cell{Kind: KindPerimeter, Index: distance}
}

// IsRock reports whether the cell is plain, breakable rock.
func (c Cell) IsRock() bool { return c.Kind == KindRock }

// IsRoom reports whether the cell belongs to a room.
func (c Cell) IsRoom() bool { return c.Kind == KindRoom }

// IsCorridor reports whether the cell belongs to a corridor.
func (c Cell) IsCorridor() bool { return c.Kind == KindCorridor }

// IsConnection reports whether the cell is an opened gap.
func (c Cell) IsConnection() bool { return c.Kind == KindConnection }

// IsVacant reports whether nothing has been built on the cell. Out-of-range
// sentinel cells count as vacant so margins may hang over the map edge.
func (c Cell) IsVacant() bool {
	return c.Kind == KindRock || c.Kind == KindSolidRock
}

// IsWalkable returns true if the cell can be walked on.
func (c Cell) IsWalkable() bool {
	switch c.Kind {
	case KindRoom, KindCorridor, KindConnection:
		return true
	default:
		return false
	}
}

// Rune returns the cell's display character.
func (c Cell) Rune() rune {
	switch c.Kind {
	case KindRoom:
		return 'R'
	case KindCorridor:
		return 'C'
	case KindWall:
		return 'W'
	case KindConnection:
		return '+'
	default:
		return ' '
	}
}

func (c Cell) String() string {
	switch c.Kind {
	case KindRoom, KindCorridor, KindPerimeter:
		return fmt.Sprintf("%s(%d)", c.Kind, c.Index)
	default:
		return c.Kind.String()
	}
}
