package hopf

import (
	"errors"
	"math"
	"testing"
)

func TestNewPoint_Normalizes(t *testing.T) {
	tests := []struct {
		name    string
		x, y, z float64
		expect  Vec3
	}{
		{"unit x", 1, 0, 0, V3(1, 0, 0)},
		{"scaled x", 5, 0, 0, V3(1, 0, 0)},
		{"south pole", 0, -3, 0, V3(0, -1, 0)},
		{"diagonal", 1, 1, 1, V3(1, 1, 1).Mul(1 / math.Sqrt(3))},
		{"tiny", 0, 0, 1e-100, V3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPoint(tt.x, tt.y, tt.z)
			if err != nil {
				t.Fatalf("NewPoint() error = %v", err)
			}
			if !p.Vec().Approx(tt.expect, 1e-12) {
				t.Errorf("NewPoint(%v, %v, %v) = %v, want %v", tt.x, tt.y, tt.z, p.Vec(), tt.expect)
			}
			if l := p.Vec().Length(); math.Abs(l-1) > 1e-12 {
				t.Errorf("|p| = %v, want 1", l)
			}
		})
	}
}

func TestNewPoint_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		x, y, z float64
	}{
		{"zero", 0, 0, 0},
		{"nan", math.NaN(), 0, 1},
		{"inf", 0, math.Inf(1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPoint(tt.x, tt.y, tt.z)
			if !errors.Is(err, ErrInvalidPoint) {
				t.Errorf("NewPoint(%v, %v, %v) error = %v, want ErrInvalidPoint", tt.x, tt.y, tt.z, err)
			}
		})
	}
}

func TestMustPoint_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustPoint(0, 0, 0) should panic")
		}
	}()
	MustPoint(0, 0, 0)
}

func TestPoint_ZeroValueIsDefault(t *testing.T) {
	var p Point
	if p.Vec() != DefaultPoint.Vec() {
		t.Errorf("zero Point = %v, want %v", p.Vec(), DefaultPoint.Vec())
	}
	if p.X() != 1 || p.Y() != 0 || p.Z() != 0 {
		t.Errorf("zero Point coordinates = (%v, %v, %v), want (1, 0, 0)", p.X(), p.Y(), p.Z())
	}
}

func TestPoint_AlphaBeta(t *testing.T) {
	for _, p := range sphereGrid(9, 17) {
		a, b := p.Alpha(), p.Beta()
		if a < 0 || b < 0 {
			t.Errorf("%v: alpha=%v beta=%v, want non-negative", p, a, b)
		}
		if s := a*a + b*b; math.Abs(s-1) > 1e-12 {
			t.Errorf("%v: alpha²+beta² = %v, want 1", p, s)
		}
	}

	p := MustPoint(1, 0, 0)
	if math.Abs(p.Alpha()-1/math.Sqrt2) > 1e-12 || math.Abs(p.Beta()-1/math.Sqrt2) > 1e-12 {
		t.Errorf("(1,0,0): alpha=%v beta=%v, want 1/√2", p.Alpha(), p.Beta())
	}
}

func TestPoint_AngleSumAtPoles(t *testing.T) {
	for _, y := range []float64{1, -1} {
		p := MustPoint(0, y, 0)
		a := p.AngleSum()
		if a != 0 || math.Signbit(a) {
			t.Errorf("AngleSum at (0, %v, 0) = %v, want +0", y, a)
		}
	}

	// atan2(-0, -0) would be -π without the pole convention.
	p := MustPoint(math.Copysign(0, -1), -1, math.Copysign(0, -1))
	if a := p.AngleSum(); a != 0 {
		t.Errorf("AngleSum with signed zeros = %v, want 0", a)
	}
}

func TestPoint_AngleSum(t *testing.T) {
	tests := []struct {
		name   string
		p      Point
		expect float64
	}{
		{"+z", MustPoint(0, 0, 1), 0},
		{"+x", MustPoint(1, 0, 0), -math.Pi / 2},
		{"-x", MustPoint(-1, 0, 0), math.Pi / 2},
		{"-z", MustPoint(0, 0, -1), math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.AngleSum()
			if d := math.Remainder(got-tt.expect, 2*math.Pi); math.Abs(d) > 1e-12 {
				t.Errorf("AngleSum() = %v, want %v", got, tt.expect)
			}
		})
	}
}

// sphereGrid returns points spread over S² on a latitude/longitude grid,
// poles included.
func sphereGrid(lat, lon int) []Point {
	var points []Point
	for i := range lat {
		y := -1 + 2*float64(i)/float64(lat-1)
		r := math.Sqrt(math.Max(0, 1-y*y))
		for j := range lon {
			sin, cos := math.Sincos(2 * math.Pi * float64(j) / float64(lon))
			if r == 0 {
				points = append(points, MustPoint(0, y, 0))
				break
			}
			points = append(points, MustPoint(r*cos, y, r*sin))
		}
	}
	return points
}
