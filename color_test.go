package hopf

import (
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func TestMapColor_Bounds(t *testing.T) {
	for _, p := range sphereGrid(15, 24) {
		c := MapColor(p)
		if c.H < 0 || c.H >= 1 {
			t.Errorf("MapColor(%v).H = %v, want in [0, 1)", p, c.H)
		}
		if c.L < 0.35-1e-12 || c.L > 0.65+1e-12 {
			t.Errorf("MapColor(%v).L = %v, want in [0.35, 0.65]", p, c.L)
		}
		if c.S != FiberSaturation {
			t.Errorf("MapColor(%v).S = %v, want %v", p, c.S, FiberSaturation)
		}
	}
}

func TestMapColor_Known(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		h, l float64
	}{
		{"+x", MustPoint(1, 0, 0), 0.75, 0.5},
		{"-x", MustPoint(-1, 0, 0), 0.25, 0.5},
		{"+z", MustPoint(0, 0, 1), 0.5, 0.5},
		{"north pole", MustPoint(0, 1, 0), 0.8, 0.65},
		{"south pole", MustPoint(0, -1, 0), 0.2, 0.35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := MapColor(tt.p)
			if math.Abs(c.H-tt.h) > 1e-12 || math.Abs(c.L-tt.l) > 1e-12 {
				t.Errorf("MapColor(%v) = %+v, want H=%v L=%v", tt.p, c, tt.h, tt.l)
			}
		})
	}
}

func TestMapColor_HueContrast(t *testing.T) {
	a := MapColor(MustPoint(1, 0, 0))
	b := MapColor(MustPoint(-1, 0, 0))
	if a.H == b.H {
		t.Errorf("(1,0,0) and (-1,0,0) share hue %v", a.H)
	}
	if a.RGBA() == b.RGBA() {
		t.Errorf("(1,0,0) and (-1,0,0) share color %v", a.RGBA())
	}
}

func TestHSL_RGBA(t *testing.T) {
	tests := []struct {
		name string
		c    HSL
		want gg.RGBA
	}{
		{"red", HSL{H: 0, S: 1, L: 0.5}, gg.RGB(1, 0, 0)},
		{"green", HSL{H: 1.0 / 3, S: 1, L: 0.5}, gg.RGB(0, 1, 0)},
		{"blue", HSL{H: 2.0 / 3, S: 1, L: 0.5}, gg.RGB(0, 0, 1)},
		{"grey", HSL{H: 0.4, S: 0, L: 0.25}, gg.RGB(0.25, 0.25, 0.25)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.RGBA()
			if math.Abs(got.R-tt.want.R) > 1e-9 || math.Abs(got.G-tt.want.G) > 1e-9 ||
				math.Abs(got.B-tt.want.B) > 1e-9 || got.A != 1 {
				t.Errorf("%+v.RGBA() = %+v, want %+v", tt.c, got, tt.want)
			}
		})
	}
}

func TestHSL_Color(t *testing.T) {
	c := HSL{H: 0, S: 1, L: 0.5}.Color()
	want := color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	if c != want {
		t.Errorf("Color() = %v, want %v", c, want)
	}
}

func TestFrac(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{0, 0},
		{0.25, 0.25},
		{1, 0},
		{1.75, 0.75},
		{-0.25, 0.75},
		{-1e-18, 0},
	}

	for _, tt := range tests {
		if got := frac(tt.x); math.Abs(got-tt.want) > 1e-12 || got >= 1 {
			t.Errorf("frac(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}
