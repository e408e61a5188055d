package world

import (
	"math"
	"math/rand"
)

// placeRooms tries cfg.Iterations random rooms and keeps every one whose
// margin-expanded rectangle stays clear of every placed room's.
func (g *Generator) placeRooms(m *Map) {
	cfg := g.cfg
	for i := 0; i < cfg.Iterations; i++ {
		w := between(g.rng, cfg.RoomMinWidth, cfg.RoomMaxWidth)
		h := between(g.rng, cfg.RoomMinHeight, cfg.RoomMaxHeight)
		x, y := g.roomPosition(w, h)

		candidate := Room{X: x, Y: y, Width: w, Height: h}
		if crowded(m.rooms, candidate, cfg.MarginH, cfg.MarginV) {
			continue
		}
		m.addRoom(candidate)
	}
}

// roomPosition picks the top-left corner of a w x h room inside the placement shape.
func (g *Generator) roomPosition(w, h int) (int, int) {
	spanX := g.cfg.Width - w
	spanY := g.cfg.Height - h

	switch g.cfg.Shape {
	case ShapeCircle:
		angle := g.rng.Float64() * 2 * math.Pi
		rx := g.rng.Float64() * float64(spanX) / 2
		ry := g.rng.Float64() * float64(spanY) / 2
		x := int(math.Floor(float64(spanX)/2 + rx*math.Cos(angle)))
		y := int(math.Floor(float64(spanY)/2 + ry*math.Sin(angle)))
		return clamp(x, 0, spanX), clamp(y, 0, spanY)
	default:
		return g.rng.Intn(spanX + 1), g.rng.Intn(spanY + 1)
	}
}

func crowded(rooms []Room, candidate Room, marginH, marginV int) bool {
	for _, r := range rooms {
		if candidate.Crowds(r, marginH, marginV) {
			return true
		}
	}
	return false
}

// between returns a uniform integer in [lo, hi].
func between(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
