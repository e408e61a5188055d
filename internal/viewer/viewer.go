// Package viewer provides the interactive map browser.
package viewer

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/daedalus/internal/presets"
	"github.com/samdwyer/daedalus/internal/telemetry"
	"github.com/samdwyer/daedalus/internal/ui"
	"github.com/samdwyer/daedalus/internal/world"
)

// Config holds viewer options.
type Config struct {
	// Map options for every generated map.
	Map world.Config
	// Seed of the first map; n moves to the next seed.
	Seed int64
	// Palette used for drawing. Nil loads the embedded palette.
	Palette *presets.Palette
}

// Viewer holds the browsing state.
type Viewer struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	cfg      Config
	seed     int64
	current  *world.Map
	view     ui.View
	running  bool
}

// New creates a viewer on the terminal.
func New(cfg Config) (*Viewer, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen, cfg)
}

// NewWithScreen creates a viewer drawing on an existing screen.
func NewWithScreen(screen *ui.Screen, cfg Config) (*Viewer, error) {
	if err := cfg.Map.Validate(); err != nil {
		return nil, err
	}
	if cfg.Palette == nil {
		palette, err := presets.LoadPalette()
		if err != nil {
			return nil, err
		}
		cfg.Palette = palette
	}
	return &Viewer{
		screen:   screen,
		renderer: ui.NewRenderer(screen, cfg.Palette),
		cfg:      cfg,
		seed:     cfg.Seed,
		view:     ui.View{BySection: true},
		running:  true,
	}, nil
}

// Run executes the main loop until the user quits or ctx is done.
func (v *Viewer) Run(ctx context.Context) error {
	v.generate(ctx)

	for v.running && ctx.Err() == nil {
		v.renderer.Render(v.current, v.view, v.status())
		v.handleInput(ctx)
	}

	v.screen.Close()
	return nil
}

// Map returns the map on screen.
func (v *Viewer) Map() *world.Map { return v.current }

// Seed returns the seed of the map on screen.
func (v *Viewer) Seed() int64 { return v.seed }

// generate builds the map for the current seed and resets the scroll position.
func (v *Viewer) generate(ctx context.Context) {
	ctx, span := telemetry.Tracer("viewer").Start(ctx, "viewer.generate")
	defer span.End()

	g, err := world.NewGeneratorFromConfig(v.cfg.Map)
	if err != nil {
		// Options were validated in NewWithScreen.
		panic(err)
	}
	v.current = g.Seed(v.seed).Generate(ctx)
	v.view.OffsetX, v.view.OffsetY = 0, 0

	span.SetAttributes(
		attribute.Int64("viewer.seed", v.seed),
		attribute.String("map.generation_id", v.current.ID()),
	)
}

func (v *Viewer) status() string {
	coloring := "kind"
	if v.view.BySection {
		coloring = "section"
	}
	return fmt.Sprintf("seed %d  sections %d  groups %d  isolated %d  color:%s  [arrows] scroll [n]ext [s]ections [q]uit",
		v.seed, v.current.Sections().Len(), v.current.Sections().Groups(), len(v.current.Isolated()), coloring)
}

// handleInput processes a single input event.
func (v *Viewer) handleInput(ctx context.Context) {
	ev := v.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		v.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		v.screen.Sync()
	case nil:
		// Screen finalized.
		v.running = false
	}
}

// handleKeyEvent processes keyboard input.
func (v *Viewer) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false

	case tcell.KeyUp:
		v.scroll(0, -1)
	case tcell.KeyDown:
		v.scroll(0, 1)
	case tcell.KeyLeft:
		v.scroll(-1, 0)
	case tcell.KeyRight:
		v.scroll(1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			v.running = false
		case 'n', 'N':
			v.seed++
			v.generate(ctx)
		case 's', 'S':
			v.view.BySection = !v.view.BySection
		}
	}
}

// scroll moves the view, keeping at least one map cell on screen.
func (v *Viewer) scroll(dx, dy int) {
	v.view.OffsetX = max(0, min(v.view.OffsetX+dx, v.current.Width()-1))
	v.view.OffsetY = max(0, min(v.view.OffsetY+dy, v.current.Height()-1))
}
