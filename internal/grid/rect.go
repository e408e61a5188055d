package grid

// Rect is an axis-aligned rectangle of cells. X and Y may be negative.
type Rect struct {
	X, Y          int // Top-left corner position
	Width, Height int
}

// Contains returns true if the given point is inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersects returns true if the two rectangles share at least one cell.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Expand grows the rectangle by h cells left and right and v cells above and below.
func (r Rect) Expand(h, v int) Rect {
	return Rect{X: r.X - h, Y: r.Y - v, Width: r.Width + 2*h, Height: r.Height + 2*v}
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}
