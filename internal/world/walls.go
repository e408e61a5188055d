package world

import (
	"github.com/zyedidia/generic/queue"

	"github.com/samdwyer/daedalus/internal/grid"
)

// placeWalls marks rock around walkable cells: rock touching a walkable cell,
// diagonals included, becomes a wall, and rock further out up to depth steps
// becomes perimeter tagged with its distance to the nearest wall. It returns
// the number of walls placed.
func placeWalls(g *grid.Grid, depth int) int {
	w, h := g.Width(), g.Height()
	dist := make([]int, w*h)
	frontier := queue.New[int]()
	for i := range dist {
		dist[i] = -1
	}
	g.Each(func(c grid.Cell, x, y int) {
		if c.IsWalkable() {
			dist[y*w+x] = 0
			frontier.Enqueue(y*w + x)
		}
	})

	for !frontier.Empty() {
		i := frontier.Dequeue()
		if dist[i] >= depth {
			continue
		}
		x, y := i%w, i/w
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				nx, ny := x+dx, y+dy
				if !g.InBounds(nx, ny) || !g.Get(nx, ny).IsRock() {
					continue
				}
				j := ny*w + nx
				if dist[j] == -1 {
					dist[j] = dist[i] + 1
					frontier.Enqueue(j)
				}
			}
		}
	}

	walls := 0
	for i, d := range dist {
		switch {
		case d == 1:
			g.Set(i%w, i/w, grid.Wall)
			walls++
		case d > 1:
			g.Set(i%w, i/w, grid.PerimeterCell(d-1))
		}
	}
	return walls
}
