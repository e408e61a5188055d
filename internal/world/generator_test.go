package world

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/daedalus/internal/corridor"
	"github.com/samdwyer/daedalus/internal/grid"
	"github.com/samdwyer/daedalus/internal/section"
)

func generate(t *testing.T, seed int64, configure func(*Generator)) *Map {
	t.Helper()
	g := NewGenerator().Seed(seed)
	if configure != nil {
		configure(g)
	}
	return g.Generate(context.Background())
}

func TestGenerateReproducibility(t *testing.T) {
	// Same seed, same map
	m1 := generate(t, 12345, nil)
	m2 := generate(t, 12345, nil)

	require.Equal(t, m1.Rooms(), m2.Rooms())
	require.Equal(t, len(m1.Corridors()), len(m2.Corridors()))
	assert.Equal(t, m1.Sections().Labels(), m2.Sections().Labels())
	assert.True(t, m1.Grid().Equal(m2.Grid()), "grids differ:\n%s\n---\n%s", m1.Grid(), m2.Grid())
	assert.NotEqual(t, m1.ID(), m2.ID(), "every run gets its own generation id")
}

func TestGenerateDifferentSeeds(t *testing.T) {
	m1 := generate(t, 12345, nil)
	m2 := generate(t, 54321, nil)

	// Very unlikely to be identical by chance
	if m1.Grid().Equal(m2.Grid()) {
		t.Error("Maps with different seeds should not be identical")
	}
}

func TestRoomsStayInsideMapAndKeepMargins(t *testing.T) {
	for _, shape := range []Shape{ShapeSquare, ShapeCircle} {
		for seed := int64(0); seed < 50; seed++ {
			t.Run(fmt.Sprintf("%s/seed%d", shape, seed), func(t *testing.T) {
				m := generate(t, seed, func(g *Generator) { g.Shape(shape) })
				cfg := DefaultConfig()
				require.NotEmpty(t, m.Rooms())

				for i, r := range m.Rooms() {
					assert.GreaterOrEqual(t, r.X, 0, "room %d", i)
					assert.GreaterOrEqual(t, r.Y, 0, "room %d", i)
					assert.LessOrEqual(t, r.X+r.Width, m.Width(), "room %d", i)
					assert.LessOrEqual(t, r.Y+r.Height, m.Height(), "room %d", i)
					assert.True(t, r.Width >= cfg.RoomMinWidth && r.Width <= cfg.RoomMaxWidth, "room %d width %d", i, r.Width)
					assert.True(t, r.Height >= cfg.RoomMinHeight && r.Height <= cfg.RoomMaxHeight, "room %d height %d", i, r.Height)

					grown := r.Bounds().Expand(cfg.MarginH, cfg.MarginV)
					for j := i + 1; j < len(m.Rooms()); j++ {
						other := m.Room(j).Bounds().Expand(cfg.MarginH, cfg.MarginV)
						assert.False(t, grown.Intersects(other),
							"rooms %d %+v and %d %+v overlap once grown by the margins", i, r, j, m.Room(j))
					}
				}
			})
		}
	}
}

func TestRoomCellsMatchRooms(t *testing.T) {
	m := generate(t, 99, func(g *Generator) { g.Walls(0) })

	for i, r := range m.Rooms() {
		for y := r.Y; y < r.Y+r.Height; y++ {
			for x := r.X; x < r.X+r.Width; x++ {
				require.Equal(t, grid.RoomCell(i), m.GetCell(x, y))
				require.Equal(t, i, m.RoomIndexAt(x, y))
			}
		}
	}
	assert.Equal(t, -1, m.RoomIndexAt(-1, -1))
}

func TestEveryCellResolvesToASection(t *testing.T) {
	m := generate(t, 2024, nil)

	m.Each(func(c grid.Cell, x, y int) {
		slot, ok := m.SectionOf(c)
		if c.IsRoom() || c.IsCorridor() {
			require.True(t, ok, "cell (%d,%d) %v has no section", x, y, c)
			require.Less(t, slot, m.Sections().Len())
			id, _ := m.SectionID(c)
			assert.Equal(t, m.Section(slot).ID(), id)
		} else {
			assert.False(t, ok, "cell (%d,%d) %v should have no section", x, y, c)
		}
	})
	assert.Equal(t, len(m.Rooms())+len(m.Corridors()), m.Sections().Len())
}

func TestConnectionsAreMutualAndScored(t *testing.T) {
	m := generate(t, 31337, nil)

	total := 0
	for slot := 0; slot < m.Sections().Len(); slot++ {
		for _, c := range m.Connections(slot) {
			total++
			assert.NotEqual(t, slot, c.Neighbor)
			assert.True(t, c.Score >= 0 && c.Score <= 1, "score %v out of range", c.Score)

			mutual := false
			for _, back := range m.Connections(c.Neighbor) {
				if back.Neighbor == slot && back.X == c.X && back.Y == c.Y {
					mutual = mutual || back.Direction == c.Direction.Opposite()
				}
			}
			assert.True(t, mutual, "connection %+v from slot %d has no mirror", c, slot)
		}
	}
	assert.Positive(t, total, "a default map should have doorway candidates")
}

func TestKeepPolicyLabelsRootOrSelf(t *testing.T) {
	m := generate(t, 4242, func(g *Generator) { g.Isolation(IsolationKeep) })

	require.Positive(t, m.Sections().Len())
	assert.Equal(t, section.Root, m.Section(section.Root).ID())
	for slot, id := range m.Sections().Labels() {
		assert.True(t, id == section.Root || id == slot, "slot %d labeled %d", slot, id)
	}
	for _, slot := range m.Isolated() {
		assert.Equal(t, slot, m.Section(slot).ID())
	}
}

func TestMergePolicyLabelsIslandsBySmallestSlot(t *testing.T) {
	keep := generate(t, 4242, func(g *Generator) { g.Isolation(IsolationKeep) })
	merge := generate(t, 4242, func(g *Generator) { g.Isolation(IsolationMerge) })

	for slot, id := range merge.Sections().Labels() {
		assert.LessOrEqual(t, id, slot, "slot %d labeled %d", slot, id)
	}
	// Islands only ever add doorways
	openings := func(m *Map) int { return m.Grid().Count(grid.Cell.IsConnection) }
	assert.GreaterOrEqual(t, openings(merge), openings(keep))
	assert.Equal(t, len(keep.Isolated()), len(merge.Isolated()))
}

func TestCorridorTreesMatchGridAfterPrune(t *testing.T) {
	m := generate(t, 8080, nil)
	cfg := DefaultConfig()

	require.Equal(t, len(m.Corridors()), len(m.Trees()))
	for i, tree := range m.Trees() {
		require.Equal(t, i, tree.Corridor())
		live := 0
		tree.Walk(func(id corridor.NodeID, depth int) bool {
			live++
			if parent, ok := tree.Parent(id); ok {
				assert.Contains(t, tree.Children(parent), id)
			} else {
				assert.Equal(t, tree.Root(), id)
			}
			x, y := tree.Position(id)
			for dy := 0; dy < cfg.CorridorHeight; dy++ {
				for dx := 0; dx < cfg.CorridorWidth; dx++ {
					assert.Equal(t, grid.CorridorCell(i), m.GetCell(x+dx, y+dy),
						"corridor %d node at (%d,%d)", i, x, y)
				}
			}
			return true
		})
		assert.Equal(t, tree.Len(), live)
	}
}

func TestZeroIterationsCarvesOnly(t *testing.T) {
	m := generate(t, 5, func(g *Generator) { g.Size(24, 16).Iterations(0) })

	assert.Empty(t, m.Rooms())
	assert.NotEmpty(t, m.Corridors())
	assert.Equal(t, len(m.Corridors()), m.Sections().Len())
}

func TestWallsSurroundWalkableCells(t *testing.T) {
	m := generate(t, 77, func(g *Generator) { g.Walls(1) })

	m.Each(func(c grid.Cell, x, y int) {
		nearWalkable := false
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if (dx != 0 || dy != 0) && m.IsWalkable(x+dx, y+dy) {
					nearWalkable = true
				}
			}
		}
		switch c.Kind {
		case grid.KindRock:
			assert.False(t, nearWalkable, "rock at (%d,%d) touches a walkable cell", x, y)
		case grid.KindWall:
			assert.True(t, nearWalkable, "wall at (%d,%d) touches nothing walkable", x, y)
		}
	})
}

func TestWallDepthZeroLeavesRock(t *testing.T) {
	m := generate(t, 77, func(g *Generator) { g.Walls(0) })

	assert.Zero(t, m.Grid().Count(func(c grid.Cell) bool { return c.Kind == grid.KindWall }))
	assert.Zero(t, m.Grid().Count(func(c grid.Cell) bool { return c.Kind == grid.KindPerimeter }))
}

func TestBuilderRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		set  func(*Generator)
	}{
		{"zero size", func(g *Generator) { g.Size(0, 10) }},
		{"zero room size", func(g *Generator) { g.RoomSize(0, 3, 5, 5) }},
		{"max below min", func(g *Generator) { g.RoomSize(5, 5, 4, 6) }},
		{"zero margin", func(g *Generator) { g.Margins(0, 2) }},
		{"zero corridor", func(g *Generator) { g.CorridorSize(2, 0) }},
		{"negative iterations", func(g *Generator) { g.Iterations(-1) }},
		{"errantness above one", func(g *Generator) { g.CorridorErrantness(1.5) }},
		{"negative errantness", func(g *Generator) { g.CorridorErrantness(-0.1) }},
		{"negative prune length", func(g *Generator) { g.PruneLength(-1) }},
		{"negative wall depth", func(g *Generator) { g.Walls(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r, "expected panic")
				err, ok := r.(error)
				require.True(t, ok, "panic value %v is not an error", r)
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}()
			tt.set(NewGenerator())
		})
	}
}

func TestGeneratePanicsWhenRoomsCannotFit(t *testing.T) {
	g := NewGenerator().Size(6, 6).RoomSize(4, 4, 8, 8)
	assert.Panics(t, func() { g.Generate(context.Background()) })
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"no iterations", func(c *Config) { c.Iterations = 0 }, true},
		{"full errantness", func(c *Config) { c.Errantness = 1 }, true},
		{"zero width", func(c *Config) { c.Width = 0 }, false},
		{"room larger than map", func(c *Config) { c.RoomMaxWidth = 100 }, false},
		{"zero vertical margin", func(c *Config) { c.MarginV = 0 }, false},
		{"unknown shape", func(c *Config) { c.Shape = Shape(9) }, false},
		{"unknown policy", func(c *Config) { c.Isolation = IsolationPolicy(9) }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

func TestNewGeneratorFromConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 40
	g, err := NewGeneratorFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, 40, g.Config().Width)

	cfg.CorridorWidth = 0
	_, err = NewGeneratorFromConfig(cfg)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestParseNames(t *testing.T) {
	shape, err := ParseShape("Circle")
	require.NoError(t, err)
	assert.Equal(t, ShapeCircle, shape)

	policy, err := ParseIsolationPolicy(" merge ")
	require.NoError(t, err)
	assert.Equal(t, IsolationMerge, policy)

	_, err = ParseShape("hexagon")
	assert.ErrorIs(t, err, ErrInvalidConfig)
	_, err = ParseIsolationPolicy("drop")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
