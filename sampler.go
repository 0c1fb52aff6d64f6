package hopf

import "math"

// DefaultDivisions is the number of segments used to sample a fiber when the
// caller does not ask for a specific count.
const DefaultDivisions = 256

// projectionScale scales the stereographic projection so fibers over the
// equator have unit-order size.
const projectionScale = 0.5

// SampleConfig enumerates the inputs of the fiber sampler.
//
// The zero value is usable: a zero Point is DefaultPoint and a non-positive
// Divisions is DefaultDivisions.
type SampleConfig struct {
	Point     Point
	Divisions int
}

// DefaultSampleConfig returns the configuration of the initial preview:
// the fiber over (1, 0, 0) with 256 segments.
func DefaultSampleConfig() SampleConfig {
	return SampleConfig{Point: DefaultPoint, Divisions: DefaultDivisions}
}

// Sample samples the fiber described by the configuration.
func (c SampleConfig) Sample() Polyline {
	return Sample(c.Point, c.Divisions)
}

// Polyline is an ordered closed sequence of vertices. The first and last
// vertices are identical.
type Polyline []Vec3

// Flat returns the vertices as consecutive x, y, z triples.
func (pl Polyline) Flat() []float64 {
	out := make([]float64, 0, 3*len(pl))
	for _, v := range pl {
		out = append(out, v.X, v.Y, v.Z)
	}
	return out
}

// Float32 returns the vertices as consecutive x, y, z triples in single
// precision, the layout of a GPU position attribute.
func (pl Polyline) Float32() []float32 {
	out := make([]float32, 0, 3*len(pl))
	for _, v := range pl {
		out = append(out, float32(v.X), float32(v.Y), float32(v.Z))
	}
	return out
}

// Closed reports whether the first and last vertices coincide within eps.
func (pl Polyline) Closed(eps float64) bool {
	if len(pl) == 0 {
		return false
	}
	return pl[0].Approx(pl[len(pl)-1], eps)
}

// Sample discretizes the fiber over p as a closed polyline of divisions+1
// vertices, stereographically projected into R³.
//
// Vertex i is the fiber evaluated at theta = 2π·i/divisions. Vertices near
// the projection pole (alpha·sin(theta) → 1) have very large magnitude; that
// is the geometry of the projection, not an error.
func Sample(p Point, divisions int) Polyline {
	if divisions < 1 {
		divisions = DefaultDivisions
	}

	alpha, beta := p.Alpha(), p.Beta()
	angleSum := p.AngleSum()

	pl := make(Polyline, divisions+1)
	for i := range divisions {
		theta := 2 * math.Pi * float64(i) / float64(divisions)
		pl[i] = fiberVertex(alpha, beta, angleSum, theta)
	}
	// theta = 2π is theta = 0; copying keeps the curve exactly closed.
	pl[divisions] = pl[0]
	return pl
}

// SampleFiber is Sample flattened to 3·(divisions+1) scalars.
func SampleFiber(p Point, divisions int) []float64 {
	return Sample(p, divisions).Flat()
}

// fiberVertex evaluates the projected fiber at parameter theta.
func fiberVertex(alpha, beta, angleSum, theta float64) Vec3 {
	sinT, cosT := math.Sincos(theta)
	sinP, cosP := math.Sincos(angleSum - theta)

	proj := projectionScale / (1 - alpha*sinT)
	return Vec3{
		X: -beta * cosP * proj,
		Y: alpha * cosT * proj,
		Z: -beta * sinP * proj,
	}
}
