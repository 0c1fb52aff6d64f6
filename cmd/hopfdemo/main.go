// Command hopfdemo renders Hopf fibers to a PNG image.
//
// Usage:
//
//	hopfdemo [-config hopf.ini] [-output out.png] [-preset twin] [-count 32] [-v]
//
// Flags override the values read from the configuration file.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/hopf"
	"github.com/gogpu/hopf/internal/config"
	"github.com/gogpu/hopf/render"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "hopfdemo:", err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("hopfdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "INI configuration file")
		output     = fs.String("output", "", "output file (overrides config)")
		preset     = fs.String("preset", "", "fiber preset: none, equator, twin, latitude")
		count      = fs.Int("count", 0, "points per preset circle")
		width      = fs.Int("width", 0, "image width")
		height     = fs.Int("height", 0, "image height")
		verbose    = fs.Bool("v", false, "log debug output")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	hopf.SetLogger(log)
	defer hopf.SetLogger(nil)

	cfg, err := loadConfig(*configPath, func(f *config.File) {
		if *output != "" {
			f.Render.Output = *output
		}
		if *preset != "" {
			f.Fibers.Preset = *preset
		}
		if *count > 0 {
			f.Fibers.Count = *count
		}
		if *width > 0 {
			f.Render.Width = *width
		}
		if *height > 0 {
			f.Render.Height = *height
		}
	})
	if err != nil {
		return err
	}

	state := buildState(cfg, log)

	bg, err := cfg.Render.BackgroundColor()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	r := render.New(
		render.WithSize(cfg.Render.Width, cfg.Render.Height),
		render.WithCamera(render.Camera{Yaw: cfg.Render.Yaw, Pitch: cfg.Render.Pitch, Zoom: cfg.Render.Zoom}),
		render.WithBackground(bg),
		render.WithLineWidth(cfg.Render.LineWidth),
		render.WithInset(cfg.Render.Inset),
		render.WithLabel(cfg.Render.Label),
	)
	if err := r.SavePNG(cfg.Render.Output, state); err != nil {
		return err
	}

	log.Info("saved", "output", cfg.Render.Output,
		"width", cfg.Render.Width, "height", cfg.Render.Height,
		"fibers", state.Len())
	return nil
}

// loadConfig reads path, or the defaults when path is empty, applies the
// flag overrides and validates the result.
func loadConfig(path string, override func(*config.File)) (config.File, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Read(path); err != nil {
			return config.File{}, err
		}
	}
	override(&cfg)
	if err := cfg.CheckInit(); err != nil {
		return config.File{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// buildState commits every configured base point. Base points whose fiber
// has no ring are reported and skipped. With Fibers.Preview the last point
// stays selected instead.
func buildState(cfg config.File, log *slog.Logger) hopf.VisualizationState {
	points := cfg.Points()
	state := hopf.NewVisualizationState(
		hopf.WithDivisions(cfg.Fibers.Divisions),
		hopf.WithMobile(cfg.Fibers.Mobile),
	)

	var preview []hopf.Point
	if cfg.Fibers.Preview && len(points) > 0 {
		points, preview = points[:len(points)-1], points[len(points)-1:]
	}

	for _, res := range hopf.FitAll(points, cfg.Fibers.Workers) {
		next, err := state.CommitFit(res)
		if err != nil {
			log.Warn("skipping fiber", "point", res.Point, "err", err)
			continue
		}
		state = next
	}

	if len(preview) > 0 {
		state = state.Select(preview[0])
	}
	return state
}
