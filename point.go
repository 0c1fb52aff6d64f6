package hopf

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidPoint is returned by NewPoint for vectors that cannot be
// normalized onto the sphere.
var ErrInvalidPoint = errors.New("hopf: point must be a finite non-zero vector")

// DefaultPoint is the base point used when none is given: (1, 0, 0).
var DefaultPoint = Point{v: Vec3{X: 1}}

// Point is a base point on the unit sphere S².
//
// Points are immutable and always unit length. NewPoint renormalizes its
// input, so every operation in this package sees the same normalized value
// regardless of how the caller produced the coordinates. The zero Point
// behaves as DefaultPoint.
type Point struct {
	v Vec3
}

// NewPoint returns the point of S² in the direction of (x, y, z).
// Returns ErrInvalidPoint for the zero vector or non-finite components.
func NewPoint(x, y, z float64) (Point, error) {
	return PointFromVec(Vec3{X: x, Y: y, Z: z})
}

// PointFromVec returns the point of S² in the direction of v.
func PointFromVec(v Vec3) (Point, error) {
	if !v.IsFinite() {
		return Point{}, fmt.Errorf("%w: got %v", ErrInvalidPoint, v)
	}
	n := v.Normalize()
	if n.IsZero() {
		return Point{}, fmt.Errorf("%w: got %v", ErrInvalidPoint, v)
	}
	// Rounding after normalization can leave |y| a hair above 1.
	n.Y = math.Max(-1, math.Min(1, n.Y))
	return Point{v: n}, nil
}

// MustPoint is like NewPoint but panics on invalid input.
// Intended for constants and tests.
func MustPoint(x, y, z float64) Point {
	p, err := NewPoint(x, y, z)
	if err != nil {
		panic(err)
	}
	return p
}

// Vec returns the point as a vector.
func (p Point) Vec() Vec3 {
	if p.v.IsZero() {
		return DefaultPoint.v
	}
	return p.v
}

// X returns the x coordinate.
func (p Point) X() float64 { return p.Vec().X }

// Y returns the y coordinate. The fibration's poles lie on the y axis.
func (p Point) Y() float64 { return p.Vec().Y }

// Z returns the z coordinate.
func (p Point) Z() float64 { return p.Vec().Z }

// Alpha returns sqrt((1+y)/2), the magnitude of the first complex
// coordinate of every point in the fiber over p.
func (p Point) Alpha() float64 {
	return math.Sqrt((1 + p.Y()) / 2)
}

// Beta returns sqrt((1-y)/2). Alpha² + Beta² = 1.
func (p Point) Beta() float64 {
	return math.Sqrt((1 - p.Y()) / 2)
}

// AngleSum returns atan2(-x, z), the phase offset of the fiber.
// At the poles, where x = z = 0, it is defined as exactly 0.
func (p Point) AngleSum() float64 {
	v := p.Vec()
	return azimuth(-v.X, v.Z)
}

// String implements fmt.Stringer.
func (p Point) String() string {
	v := p.Vec()
	return fmt.Sprintf("(%.4g, %.4g, %.4g)", v.X, v.Y, v.Z)
}

// azimuth is math.Atan2 with atan2(±0, ±0) pinned to +0, so that signed
// zeros at the poles cannot flip the result to ±π.
func azimuth(y, x float64) float64 {
	if y == 0 && x == 0 {
		return 0
	}
	return math.Atan2(y, x)
}
