package world

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/daedalus/internal/corridor"
	"github.com/samdwyer/daedalus/internal/section"
	"github.com/samdwyer/daedalus/internal/telemetry"
)

// Generator builds maps. Setters may be chained and panic on values that
// can never produce a map; Generate is the only terminal call.
type Generator struct {
	cfg    Config
	rng    *rand.Rand
	logger *log.Logger
}

// NewGenerator creates a generator with the default options and a time-seeded generator.
func NewGenerator() *Generator {
	return &Generator{
		cfg:    DefaultConfig(),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: log.New(io.Discard, "", 0),
	}
}

// NewGeneratorFromConfig creates a generator from options loaded elsewhere,
// returning an error instead of panicking when they are invalid.
func NewGeneratorFromConfig(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := NewGenerator()
	g.cfg = cfg
	return g, nil
}

// Config returns the current options.
func (g *Generator) Config() Config { return g.cfg }

// Size sets the map dimensions.
func (g *Generator) Size(width, height int) *Generator {
	mustf(width > 0 && height > 0, "size must be positive, got %dx%d", width, height)
	g.cfg.Width, g.cfg.Height = width, height
	return g
}

// RoomSize sets the smallest and largest room dimensions.
func (g *Generator) RoomSize(minWidth, minHeight, maxWidth, maxHeight int) *Generator {
	mustf(minWidth > 0 && minHeight > 0, "minimum room size must be positive, got %dx%d", minWidth, minHeight)
	mustf(maxWidth >= minWidth && maxHeight >= minHeight,
		"maximum room size %dx%d below minimum %dx%d", maxWidth, maxHeight, minWidth, minHeight)
	g.cfg.RoomMinWidth, g.cfg.RoomMinHeight = minWidth, minHeight
	g.cfg.RoomMaxWidth, g.cfg.RoomMaxHeight = maxWidth, maxHeight
	return g
}

// Margins sets the rock kept between rooms and corridors.
func (g *Generator) Margins(horizontal, vertical int) *Generator {
	mustf(horizontal > 0 && vertical > 0, "margins must be positive, got (%d, %d)", horizontal, vertical)
	g.cfg.MarginH, g.cfg.MarginV = horizontal, vertical
	return g
}

// CorridorSize sets the corridor footprint.
func (g *Generator) CorridorSize(width, height int) *Generator {
	mustf(width > 0 && height > 0, "corridor size must be positive, got %dx%d", width, height)
	g.cfg.CorridorWidth, g.cfg.CorridorHeight = width, height
	return g
}

// Iterations sets the number of room placement attempts.
func (g *Generator) Iterations(count int) *Generator {
	mustf(count >= 0, "iterations must not be negative, got %d", count)
	g.cfg.Iterations = count
	return g
}

// CorridorErrantness sets the chance of a carve step picking a fresh heading.
func (g *Generator) CorridorErrantness(probability float64) *Generator {
	mustf(probability >= 0 && probability <= 1, "errantness must be within [0,1], got %v", probability)
	g.cfg.Errantness = probability
	return g
}

// PruneLength sets the depth below which dead ends are taken back.
func (g *Generator) PruneLength(threshold int) *Generator {
	mustf(threshold >= 0, "prune length must not be negative, got %d", threshold)
	g.cfg.PruneLength = threshold
	return g
}

// Shape sets the region rooms are placed in.
func (g *Generator) Shape(s Shape) *Generator {
	g.cfg.Shape = s
	return g
}

// Isolation sets the policy for sections the root cannot reach.
func (g *Generator) Isolation(p IsolationPolicy) *Generator {
	g.cfg.Isolation = p
	return g
}

// Walls sets how far from walkable cells walls and perimeter are marked.
func (g *Generator) Walls(depth int) *Generator {
	mustf(depth >= 0, "wall depth must not be negative, got %d", depth)
	g.cfg.WallDepth = depth
	return g
}

// Seed replaces the random generator with one seeded for reproducible maps.
func (g *Generator) Seed(seed int64) *Generator {
	g.rng = rand.New(rand.NewSource(seed))
	return g
}

// Rand replaces the random generator.
func (g *Generator) Rand(rng *rand.Rand) *Generator {
	g.rng = rng
	return g
}

// Logger sets where generation summaries are written.
func (g *Generator) Logger(l *log.Logger) *Generator {
	g.logger = l
	return g
}

// Generate places rooms, carves corridors, merges sections and marks walls.
// It panics if the options are inconsistent.
func (g *Generator) Generate(ctx context.Context) *Map {
	if err := g.cfg.Validate(); err != nil {
		panic(err)
	}

	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "map.generate")
	defer span.End()

	startTime := time.Now()
	cfg := g.cfg
	m := newMap(cfg.Width, cfg.Height)

	g.phase(ctx, "map.place_rooms", func() []attribute.KeyValue {
		g.placeRooms(m)
		return []attribute.KeyValue{attribute.Int("map.room_count", len(m.rooms))}
	})

	g.phase(ctx, "map.carve", func() []attribute.KeyValue {
		carver := corridor.NewCarver(corridor.Options{
			Width:      cfg.CorridorWidth,
			Height:     cfg.CorridorHeight,
			Errantness: cfg.Errantness,
			MarginH:    cfg.MarginH,
			MarginV:    cfg.MarginV,
		}, g.rng)
		m.trees = carver.Carve(m.grid, m)
		return []attribute.KeyValue{attribute.Int("map.corridor_count", len(m.corridors))}
	})

	merger := section.NewMerger(m, section.Options{
		MarginH:        cfg.MarginH,
		MarginV:        cfg.MarginV,
		CorridorWidth:  cfg.CorridorWidth,
		CorridorHeight: cfg.CorridorHeight,
		PruneLength:    cfg.PruneLength,
	})

	var gaps, opened, islands, pruned, walls int
	g.phase(ctx, "map.discover", func() []attribute.KeyValue {
		gaps = merger.Discover()
		return []attribute.KeyValue{attribute.Int("map.gap_count", gaps)}
	})

	g.phase(ctx, "map.connect", func() []attribute.KeyValue {
		opened = merger.Connect()
		if cfg.Isolation == IsolationMerge {
			islands = merger.ConnectIslands()
		}
		return []attribute.KeyValue{
			attribute.Int("map.opened_count", opened),
			attribute.Int("map.island_opened_count", islands),
			attribute.String("map.isolation", cfg.Isolation.String()),
		}
	})

	g.phase(ctx, "map.prune", func() []attribute.KeyValue {
		pruned = merger.Prune()
		return []attribute.KeyValue{attribute.Int("map.pruned_count", pruned)}
	})

	if cfg.WallDepth > 0 {
		g.phase(ctx, "map.walls", func() []attribute.KeyValue {
			walls = placeWalls(m.grid, cfg.WallDepth)
			return []attribute.KeyValue{attribute.Int("map.wall_count", walls)}
		})
	}

	isolated := m.Isolated()
	span.SetAttributes(
		attribute.String("map.generation_id", m.id),
		attribute.Int("map.width", cfg.Width),
		attribute.Int("map.height", cfg.Height),
		attribute.Int("map.room_count", len(m.rooms)),
		attribute.Int("map.corridor_count", len(m.corridors)),
		attribute.Int("map.section_count", m.sections.Len()),
		attribute.Int("map.isolated_count", len(isolated)),
		attribute.Int64("map.generation_ms", time.Since(startTime).Milliseconds()),
	)

	g.logger.Printf("map %s: %dx%d rooms=%d corridors=%d sections=%d gaps=%d opened=%d pruned=%d",
		m.id, cfg.Width, cfg.Height, len(m.rooms), len(m.corridors), m.sections.Len(), gaps, opened+islands, pruned)
	if len(isolated) > 0 {
		g.logger.Printf("map %s: %d sections not reachable from the root (policy %s, %d groups): %v",
			m.id, len(isolated), cfg.Isolation, m.sections.Groups(), isolated)
	}

	return m
}

// phase runs fn inside a child span and records the attributes it returns.
func (g *Generator) phase(ctx context.Context, name string, fn func() []attribute.KeyValue) {
	_, span := telemetry.Tracer("world").Start(ctx, name)
	defer span.End()
	span.SetAttributes(fn()...)
}

func mustf(ok bool, format string, args ...any) {
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...)))
	}
}
