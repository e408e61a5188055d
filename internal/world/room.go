package world

import "github.com/samdwyer/daedalus/internal/grid"

// Room represents a rectangular room on the map.
type Room struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions of the room
	SectionID     int // Slot of the room's section
}

// Center returns the center coordinates of the room.
func (r Room) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains returns true if the given point is inside the room.
func (r Room) Contains(x, y int) bool {
	return r.Bounds().Contains(x, y)
}

// Intersects returns true if this room overlaps with another room.
func (r Room) Intersects(other Room) bool {
	return r.Bounds().Intersects(other.Bounds())
}

// Bounds returns the room's rectangle.
func (r Room) Bounds() grid.Rect {
	return grid.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// Crowds returns true if the two rooms, each grown by the margins, overlap.
func (r Room) Crowds(other Room, marginH, marginV int) bool {
	return r.Bounds().Expand(marginH, marginV).Intersects(other.Bounds().Expand(marginH, marginV))
}

// Corridor is one carved strand. Its cells are the grid cells tagged with its index.
type Corridor struct {
	SectionID int // Slot of the strand's section
}
