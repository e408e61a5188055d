// Package main is the entry point for daedalus.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/samdwyer/daedalus/internal/config"
	"github.com/samdwyer/daedalus/internal/presets"
	"github.com/samdwyer/daedalus/internal/render"
	"github.com/samdwyer/daedalus/internal/telemetry"
	"github.com/samdwyer/daedalus/internal/viewer"
	"github.com/samdwyer/daedalus/internal/world"
)

type options struct {
	preset  string
	profile string
	seed    int64
	seedSet bool
	format  string
	out     string
	scale   int
	view    bool
	list    bool
	verbose bool
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("daedalus", flag.ContinueOnError)
	fs.StringVar(&opts.preset, "preset", "", "named preset (see -list)")
	fs.StringVar(&opts.profile, "profile", "", "YAML profile file")
	fs.Int64Var(&opts.seed, "seed", 0, "random seed (default: profile seed or current time)")
	fs.StringVar(&opts.format, "format", "ascii", "output format: ascii, styled or png")
	fs.StringVar(&opts.out, "out", "", "output file (default: stdout)")
	fs.IntVar(&opts.scale, "scale", 4, "pixels per cell for png output")
	fs.BoolVar(&opts.view, "view", false, "browse maps in the terminal")
	fs.BoolVar(&opts.list, "list", false, "list presets and exit")
	fs.BoolVar(&opts.verbose, "v", false, "log generation summaries to stderr")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			opts.seedSet = true
		}
	})
	return opts, nil
}

func main() {
	// Load .env file for local development
	// This makes DAEDALUS_HONEYCOMB_API_KEY available
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	switch {
	case errors.Is(err, telemetry.ErrDisabled):
		// Spans go to the no-op provider.
	case err != nil:
		log.Printf("Warning: telemetry setup failed: %v", err)
	default:
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	if err := run(ctx, opts, os.Stdout); err != nil {
		log.Printf("daedalus: %v", err)
		// Deferred shutdown would be skipped by os.Exit.
		if shutdown != nil {
			_ = shutdown(ctx)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, stdout io.Writer) error {
	registry, err := presets.LoadRegistry()
	if err != nil {
		return err
	}

	if opts.list {
		for _, p := range registry.All() {
			fmt.Fprintf(stdout, "%-10s %s\n", p.ID, p.Description)
		}
		return nil
	}

	cfg, seed, err := resolve(opts, registry)
	if err != nil {
		return err
	}

	if opts.view {
		v, err := viewer.New(viewer.Config{Map: cfg, Seed: seed})
		if err != nil {
			return fmt.Errorf("failed to initialize viewer: %w", err)
		}
		return v.Run(ctx)
	}

	g, err := world.NewGeneratorFromConfig(cfg)
	if err != nil {
		return err
	}
	logger := log.New(io.Discard, "", 0)
	if opts.verbose {
		logger = log.New(os.Stderr, "daedalus: ", log.LstdFlags)
		logger.Printf("seed %d", seed)
	}
	m := g.Seed(seed).Logger(logger).Generate(ctx)

	if opts.out == "" {
		return write(stdout, m, opts)
	}
	return writeFile(opts.out, m, opts)
}

// writeFile writes the map to path, reporting a failed close since that is
// where buffered output may first fail.
func writeFile(path string, m *world.Map, opts options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f, m, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// resolve merges the profile, preset and seed flags into generation options.
// An explicit -preset replaces the profile's preset; an explicit -seed
// replaces the profile's seed.
func resolve(opts options, registry *presets.Registry) (world.Config, int64, error) {
	profile := config.Profile{Preset: presets.DefaultID}
	if opts.profile != "" {
		p, err := config.Load(opts.profile)
		if err != nil {
			return world.Config{}, 0, err
		}
		profile = p
	}
	if opts.preset != "" {
		profile.Preset = opts.preset
	}

	cfg, err := profile.Resolve(registry)
	if err != nil {
		return world.Config{}, 0, err
	}

	seed := time.Now().UnixNano()
	switch {
	case opts.seedSet:
		seed = opts.seed
	case profile.Seed != nil:
		seed = *profile.Seed
	}
	return cfg, seed, nil
}

func write(w io.Writer, m *world.Map, opts options) error {
	switch opts.format {
	case "ascii":
		_, err := io.WriteString(w, render.ASCII(m))
		return err
	case "styled":
		palette, err := presets.LoadPalette()
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, render.Styled(m, palette))
		return err
	case "png":
		palette, err := presets.LoadPalette()
		if err != nil {
			return err
		}
		return render.PNG(w, m, palette, opts.scale)
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}
}
