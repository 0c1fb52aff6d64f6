package hopf

import (
	"image/color"
	"math"

	"github.com/gogpu/gg"
)

// Fiber color constants. Lightness spans [0.35, 0.65] as y spans [-1, 1].
const (
	FiberSaturation   = 0.7
	lightnessBase     = 0.5
	lightnessPerY     = 0.15
	hueLightnessTurns = 2
)

// HSL is a color in hue, saturation, lightness form.
// H is in turns [0, 1); S and L are in [0, 1].
type HSL struct {
	H, S, L float64
}

// MapColor returns the display color of the fiber over p.
//
// Lightness follows height on the sphere and hue follows the azimuth
// atan2(x, z), shifted by twice the lightness so neighbouring latitudes do
// not share a hue. The mapping is continuous except across the azimuth's
// branch cut at x = 0, z < 0. At the poles the azimuth is 0.
func MapColor(p Point) HSL {
	v := p.Vec()
	l := lightnessPerY*v.Y + lightnessBase
	h := azimuth(v.X, v.Z)/(2*math.Pi) + 0.5 + hueLightnessTurns*l
	return HSL{H: frac(h), S: FiberSaturation, L: l}
}

// RGBA converts the color to gg's RGBA using the standard HSL model.
func (c HSL) RGBA() gg.RGBA {
	return gg.HSL(c.H*360, c.S, c.L)
}

// Color converts the color to the standard color.Color interface.
func (c HSL) Color() color.Color {
	return c.RGBA().Color()
}

// frac wraps x into [0, 1).
func frac(x float64) float64 {
	f := x - math.Floor(x)
	if f >= 1 {
		return 0
	}
	return f
}
