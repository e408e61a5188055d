package world

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is wrapped by every configuration error.
var ErrInvalidConfig = errors.New("world: invalid configuration")

// Shape is the region rooms are placed in.
type Shape int

const (
	// ShapeSquare places rooms anywhere on the map.
	ShapeSquare Shape = iota
	// ShapeCircle places rooms inside the ellipse inscribed in the map.
	ShapeCircle
)

// String returns a human-readable shape name.
func (s Shape) String() string {
	switch s {
	case ShapeSquare:
		return "square"
	case ShapeCircle:
		return "circle"
	default:
		return "unknown"
	}
}

// ParseShape converts a shape name to a Shape.
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "square":
		return ShapeSquare, nil
	case "circle":
		return ShapeCircle, nil
	default:
		return ShapeSquare, fmt.Errorf("%w: unknown shape %q", ErrInvalidConfig, name)
	}
}

// IsolationPolicy decides what happens to sections the root cannot reach.
type IsolationPolicy int

const (
	// IsolationKeep leaves unreached sections under their own id.
	IsolationKeep IsolationPolicy = iota
	// IsolationMerge connects unreached sections among themselves, one island at a time.
	IsolationMerge
)

// String returns a human-readable policy name.
func (p IsolationPolicy) String() string {
	switch p {
	case IsolationKeep:
		return "keep"
	case IsolationMerge:
		return "merge"
	default:
		return "unknown"
	}
}

// ParseIsolationPolicy converts a policy name to an IsolationPolicy.
func ParseIsolationPolicy(name string) (IsolationPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "keep":
		return IsolationKeep, nil
	case "merge":
		return IsolationMerge, nil
	default:
		return IsolationKeep, fmt.Errorf("%w: unknown isolation policy %q", ErrInvalidConfig, name)
	}
}

// Config holds every generation option.
type Config struct {
	Width, Height int

	// Room dimensions are drawn uniformly from [min, max].
	RoomMinWidth, RoomMinHeight int
	RoomMaxWidth, RoomMaxHeight int

	// Rock kept between rooms and corridors. Gaps of exactly this width become doorways.
	MarginH, MarginV int

	CorridorWidth, CorridorHeight int

	// Iterations is the number of room placement attempts.
	Iterations int

	// Errantness is the chance, per carve step, of leaving the current heading.
	Errantness float64

	// PruneLength is the depth below which dead ends are taken back.
	PruneLength int

	Shape     Shape
	Isolation IsolationPolicy

	// WallDepth is how far from walkable cells walls and perimeter are marked. 0 disables.
	WallDepth int
}

// DefaultConfig returns the options used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Width:          64,
		Height:         64,
		RoomMinWidth:   4,
		RoomMinHeight:  4,
		RoomMaxWidth:   8,
		RoomMaxHeight:  8,
		MarginH:        2,
		MarginV:        2,
		CorridorWidth:  2,
		CorridorHeight: 2,
		Iterations:     64,
		Errantness:     0.5,
		PruneLength:    6,
		Shape:          ShapeSquare,
		Isolation:      IsolationKeep,
		WallDepth:      1,
	}
}

// Validate checks the options, returning an error wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Width > 0 && c.Height > 0, "size must be positive, got %dx%d", c.Width, c.Height)
	check(c.RoomMinWidth > 0 && c.RoomMinHeight > 0,
		"minimum room size must be positive, got %dx%d", c.RoomMinWidth, c.RoomMinHeight)
	check(c.RoomMaxWidth >= c.RoomMinWidth && c.RoomMaxHeight >= c.RoomMinHeight,
		"maximum room size %dx%d below minimum %dx%d", c.RoomMaxWidth, c.RoomMaxHeight, c.RoomMinWidth, c.RoomMinHeight)
	check(c.RoomMaxWidth <= c.Width && c.RoomMaxHeight <= c.Height,
		"maximum room size %dx%d does not fit the map %dx%d", c.RoomMaxWidth, c.RoomMaxHeight, c.Width, c.Height)
	check(c.MarginH > 0 && c.MarginV > 0, "margins must be positive, got (%d, %d)", c.MarginH, c.MarginV)
	check(c.CorridorWidth > 0 && c.CorridorHeight > 0,
		"corridor size must be positive, got %dx%d", c.CorridorWidth, c.CorridorHeight)
	check(c.Iterations >= 0, "iterations must not be negative, got %d", c.Iterations)
	check(c.Errantness >= 0 && c.Errantness <= 1, "errantness must be within [0,1], got %v", c.Errantness)
	check(c.PruneLength >= 0, "prune length must not be negative, got %d", c.PruneLength)
	check(c.WallDepth >= 0, "wall depth must not be negative, got %d", c.WallDepth)
	check(c.Shape == ShapeSquare || c.Shape == ShapeCircle, "unknown shape %d", c.Shape)
	check(c.Isolation == IsolationKeep || c.Isolation == IsolationMerge, "unknown isolation policy %d", c.Isolation)

	return errors.Join(errs...)
}
