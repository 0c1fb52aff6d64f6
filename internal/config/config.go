// Package config reads the INI-style configuration of the hopfdemo command.
//
// A configuration file has a [Render] section, a [Fibers] section and any
// number of named [Point "name"] sections:
//
//	[Render]
//	Width = 1024
//	Height = 1024
//	Output = hopf.png
//	Yaw = 35
//	Pitch = 20
//
//	[Fibers]
//	Preset = twin
//	Count = 32
//
//	[Point "north"]
//	X = 0
//	Y = 0.8
//	Z = 0.6
//
// Unset variables keep the values of Default.
package config

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/gogpu/gg"
	"github.com/gogpu/hopf"
)

// Presets understood by FibersConfig.Preset.
const (
	PresetNone     = "none"
	PresetEquator  = "equator"
	PresetTwin     = "twin"
	PresetLatitude = "latitude"
)

// twinLatitude is the height of the second circle of the twin preset.
var twinLatitude = -math.Sqrt(3) / 2

// twinSkip is the first index of the twin preset when Skip is left at its
// default, leaving a gap in both tori.
const twinSkip = 10

// RenderConfig describes the output image.
type RenderConfig struct {
	Width, Height int
	Output        string

	Yaw, Pitch, Zoom float64
	LineWidth        float64
	Background       string

	Inset bool
	Label bool
}

// FibersConfig describes which fibers are committed.
type FibersConfig struct {
	Preset   string
	Count    int
	// Skip is the first index used on each preset circle. -1 selects the
	// preset's own default: 10 for twin, 0 otherwise.
	Skip     int
	Latitude float64

	Divisions int
	Workers   int

	// Preview leaves the last base point selected but uncommitted, so it is
	// drawn as a live preview curve.
	Preview bool
	Mobile  bool
}

// PointConfig is an explicit base point. It need not be normalized.
type PointConfig struct {
	X, Y, Z float64

	Name string
}

// File is a complete configuration.
type File struct {
	Render RenderConfig
	Fibers FibersConfig
	Point  map[string]*PointConfig
}

// Default returns the configuration used when no file is given.
func Default() File {
	return File{
		Render: RenderConfig{
			Width:      800,
			Height:     800,
			Output:     "hopf.png",
			Yaw:        35,
			Pitch:      20,
			Zoom:       180,
			LineWidth:  2,
			Background: "#101418",
			Inset:      true,
			Label:      true,
		},
		Fibers: FibersConfig{
			Preset:    PresetEquator,
			Count:     32,
			Skip:      -1,
			Divisions: hopf.DefaultDivisions,
		},
	}
}

// Read parses the file at path on top of Default and validates it.
func Read(path string) (File, error) {
	f := Default()
	if err := gcfg.ReadFileInto(&f, path); err != nil {
		return File{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := f.CheckInit(); err != nil {
		return File{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return f, nil
}

// Parse is Read for configuration text.
func Parse(text string) (File, error) {
	f := Default()
	if err := gcfg.ReadStringInto(&f, text); err != nil {
		return File{}, fmt.Errorf("config: %w", err)
	}
	if err := f.CheckInit(); err != nil {
		return File{}, fmt.Errorf("config: %w", err)
	}
	return f, nil
}

// CheckInit validates every section and fills in derived fields.
func (f *File) CheckInit() error {
	if err := f.Render.CheckInit(); err != nil {
		return err
	}
	if err := f.Fibers.CheckInit(); err != nil {
		return err
	}
	for name, p := range f.Point {
		if err := p.CheckInit(name); err != nil {
			return err
		}
	}
	return nil
}

// CheckInit validates the [Render] section.
func (r *RenderConfig) CheckInit() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("Render size must be positive, but is %dx%d", r.Width, r.Height)
	}
	if r.Output == "" {
		return fmt.Errorf("Render needs an Output file")
	}
	if r.Zoom <= 0 {
		return fmt.Errorf("Render Zoom must be positive, but is %g", r.Zoom)
	}
	if r.LineWidth <= 0 {
		return fmt.Errorf("Render LineWidth must be positive, but is %g", r.LineWidth)
	}
	if _, err := r.BackgroundColor(); err != nil {
		return err
	}
	return nil
}

// BackgroundColor parses Background as a hex color.
func (r *RenderConfig) BackgroundColor() (gg.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(r.Background), "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("Render Background '%s' is not a hex color", r.Background)
	}
	for _, c := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return gg.RGBA{}, fmt.Errorf("Render Background '%s' is not a hex color", r.Background)
		}
	}
	return gg.Hex(hex), nil
}

// CheckInit validates the [Fibers] section and normalizes the preset name.
func (fc *FibersConfig) CheckInit() error {
	tmp := fc.Preset
	fc.Preset = strings.ToLower(strings.TrimSpace(fc.Preset))
	switch fc.Preset {
	case "":
		fc.Preset = PresetNone
	case PresetNone, PresetEquator, PresetTwin, PresetLatitude:
	default:
		return fmt.Errorf(
			"Fibers Preset must be one of [%s | %s | %s | %s]. '%s' is not recognized",
			PresetNone, PresetEquator, PresetTwin, PresetLatitude, tmp,
		)
	}

	if fc.Preset != PresetNone && fc.Count <= 0 {
		return fmt.Errorf("Fibers Count must be positive for preset '%s', but is %d", fc.Preset, fc.Count)
	}
	if fc.Skip < -1 {
		return fmt.Errorf("Fibers Skip must be -1 or non-negative, but is %d", fc.Skip)
	}
	if fc.Latitude < -1 || fc.Latitude > 1 {
		return fmt.Errorf("Fibers Latitude must be in range [-1, 1], but is %g", fc.Latitude)
	}
	if fc.Divisions <= 0 {
		return fmt.Errorf("Fibers Divisions must be positive, but is %d", fc.Divisions)
	}
	if fc.Workers < 0 {
		return fmt.Errorf("Fibers Workers must be non-negative, but is %d", fc.Workers)
	}
	return nil
}

// CheckInit validates a [Point "name"] section.
func (p *PointConfig) CheckInit(name string) error {
	if _, err := hopf.NewPoint(p.X, p.Y, p.Z); err != nil {
		return fmt.Errorf("Point '%s': %w", name, err)
	}
	p.Name = name
	return nil
}

// Start returns the first index used on each preset circle, resolving a
// Skip of -1 to the preset default.
func (fc *FibersConfig) Start() int {
	if fc.Skip >= 0 {
		return fc.Skip
	}
	if fc.Preset == PresetTwin {
		return twinSkip
	}
	return 0
}

// PresetPoints returns the base points of the configured preset.
func (fc *FibersConfig) PresetPoints() []hopf.Point {
	from := fc.Start()
	switch fc.Preset {
	case PresetEquator:
		return hopf.Latitude(0, fc.Count, from)
	case PresetLatitude:
		return hopf.Latitude(fc.Latitude, fc.Count, from)
	case PresetTwin:
		return hopf.Interleave(
			hopf.Latitude(0, fc.Count, from),
			hopf.Latitude(twinLatitude, fc.Count, from),
		)
	}
	return nil
}

// Points returns the preset points followed by the explicit points in name
// order. Call CheckInit first.
func (f *File) Points() []hopf.Point {
	points := f.Fibers.PresetPoints()

	names := make([]string, 0, len(f.Point))
	for name := range f.Point {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		pc := f.Point[name]
		p, err := hopf.NewPoint(pc.X, pc.Y, pc.Z)
		if err != nil {
			continue
		}
		points = append(points, p)
	}
	return points
}
