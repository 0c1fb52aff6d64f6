package hopf

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// antiParallelEpsilon is the dot-product margin above -1 below which two
// unit vectors are treated as opposite.
const antiParallelEpsilon = 1e-6

// ReferenceAxis is the axis a ring primitive is modelled around before it is
// oriented: rings are built in the XY plane with normal +Z.
var ReferenceAxis = Vec3{Z: 1}

// IdentityRotation is the quaternion that leaves every vector unchanged.
var IdentityRotation = quat.Number{Real: 1}

// ShortestArc returns the unit quaternion that rotates direction from onto
// direction to along the shortest great-circle arc. Neither argument needs
// to be normalized; a zero argument yields IdentityRotation.
//
// For d = from·to the quaternion is normalize(1 + d, from × to). When the
// vectors are opposite that expression vanishes, so the rotation is taken as
// a half turn about any axis orthogonal to from.
func ShortestArc(from, to Vec3) quat.Number {
	u, v := from.Normalize(), to.Normalize()
	if u.IsZero() || v.IsZero() {
		return IdentityRotation
	}

	d := u.Dot(v)
	if d < -1+antiParallelEpsilon {
		axis := Vec3{X: 1}.Cross(u)
		if axis.LengthSq() < 1e-12 {
			axis = Vec3{Y: 1}.Cross(u)
		}
		axis = axis.Normalize()
		return quat.Number{Imag: axis.X, Jmag: axis.Y, Kmag: axis.Z}
	}

	c := u.Cross(v)
	q := quat.Number{Real: 1 + d, Imag: c.X, Jmag: c.Y, Kmag: c.Z}
	return quat.Scale(1/quat.Abs(q), q)
}

// Rotate applies the rotation q to v as q·v·q*. q is normalized first, so
// any non-zero quaternion is accepted.
func Rotate(q quat.Number, v Vec3) Vec3 {
	n := quat.Abs(q)
	if n == 0 || math.IsNaN(n) {
		return v
	}
	q = quat.Scale(1/n, q)
	p := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	r := quat.Mul(quat.Mul(q, p), quat.Conj(q))
	return Vec3{X: r.Imag, Y: r.Jmag, Z: r.Kmag}
}
