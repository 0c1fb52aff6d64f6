package hopf

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// DegenerateEpsilon is how close 1∓alpha may come to zero before the closed
// form ring is considered singular.
const DegenerateEpsilon = 1e-6

// Ring tessellation bounds and density (segments per unit of radius).
const (
	MinRingSegments     = 16
	MaxRingSegments     = 256
	ringSegmentsPerUnit = 64
)

// ErrDegenerateFiber is matched by every *DegenerateFiberError.
var ErrDegenerateFiber = errors.New("hopf: degenerate fiber")

// DegenerateFiberError reports a base point too close to a pole for the
// fiber to be represented as a finite ring.
type DegenerateFiberError struct {
	Point Point
	Alpha float64
}

func (e *DegenerateFiberError) Error() string {
	return fmt.Sprintf("hopf: degenerate fiber over %v (alpha=%.9g): base point is within %g of a pole",
		e.Point, e.Alpha, DegenerateEpsilon)
}

// Is makes errors.Is(err, ErrDegenerateFiber) succeed.
func (e *DegenerateFiberError) Is(target error) bool {
	return target == ErrDegenerateFiber
}

// Ring is the analytic form of a projected fiber: an exact circle plus a
// tessellation hint for instanced rendering.
//
// A ring primitive is modelled around ReferenceAxis at the origin; rotating
// it by Orientation and translating by Center places it on the fiber.
type Ring struct {
	Center      Vec3
	Radius      float64
	Normal      Vec3
	Orientation quat.Number
	Segments    int
}

// At returns the point of the ring at angle t, measured in the ring's own
// frame.
func (r Ring) At(t float64) Vec3 {
	sin, cos := math.Sincos(t)
	local := Vec3{X: r.Radius * cos, Y: r.Radius * sin}
	return r.Center.Add(Rotate(r.Orientation, local))
}

// Points tessellates the ring into a closed polyline of n+1 vertices.
// A non-positive n uses r.Segments.
func (r Ring) Points(n int) Polyline {
	if n < 1 {
		n = r.Segments
	}
	if n < 1 {
		n = MinRingSegments
	}
	pl := make(Polyline, n+1)
	for i := range n {
		pl[i] = r.At(2 * math.Pi * float64(i) / float64(n))
	}
	pl[n] = pl[0]
	return pl
}

// FitRing computes the exact circle traced by the projected fiber over p.
//
// Three parameter values pin the circle down: theta = 90° and theta = -90°
// give the points where the projection denominator 1∓alpha is extremal,
// which are diametrically opposite, and theta = 0 gives a third point that
// fixes the plane. No iteration is involved.
//
// FitRing returns a *DegenerateFiberError when p is within DegenerateEpsilon
// of a pole, where the ring's radius is unbounded.
func FitRing(p Point) (Ring, error) {
	alpha, beta := p.Alpha(), p.Beta()
	if math.Abs(1-alpha) < DegenerateEpsilon || math.Abs(1+alpha) < DegenerateEpsilon {
		Logger().Debug("hopf: degenerate ring", "point", p.String(), "alpha", alpha)
		return Ring{}, &DegenerateFiberError{Point: p, Alpha: alpha}
	}

	sinA, cosA := math.Sincos(p.AngleSum())

	left := Vec3{X: -beta * sinA, Z: beta * cosA}.Mul(projectionScale / (1 - alpha))
	right := Vec3{X: beta * sinA, Z: -beta * cosA}.Mul(projectionScale / (1 + alpha))
	other := Vec3{X: -beta * cosA, Y: alpha, Z: -beta * sinA}.Mul(projectionScale)

	center := left.Lerp(right, 0.5)
	toRight := right.Sub(center)
	toOther := other.Sub(center)

	radius := toRight.Length()
	normal := toOther.Cross(toRight).Normalize()
	if !(radius > 0) || math.IsInf(radius, 0) || normal.IsZero() || !center.IsFinite() {
		return Ring{}, &DegenerateFiberError{Point: p, Alpha: alpha}
	}

	return Ring{
		Center:      center,
		Radius:      radius,
		Normal:      normal,
		Orientation: ShortestArc(ReferenceAxis, normal),
		Segments:    ringSegments(radius),
	}, nil
}

// ringSegments picks a segment count that keeps chord error roughly constant
// across ring sizes, capped for cost.
func ringSegments(radius float64) int {
	n := math.Ceil(radius * ringSegmentsPerUnit)
	if n < MinRingSegments {
		return MinRingSegments
	}
	if n > MaxRingSegments {
		return MaxRingSegments
	}
	return int(n)
}
