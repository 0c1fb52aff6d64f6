package hopf

import "math"

// Latitude returns base points evenly spaced around the circle of height y
// on the sphere: point i is (r·cos θ, y, r·sin θ) with r = sqrt(1-y²) and
// θ = 2π·i/n, for i in [from, n). y is clamped to [-1, 1].
//
// The fibers over one latitude circle sweep out a torus, the classic picture
// of the fibration.
func Latitude(y float64, n, from int) []Point {
	if n <= 0 {
		return nil
	}
	from = max(from, 0)
	y = math.Max(-1, math.Min(1, y))
	r := math.Sqrt(1 - y*y)

	points := make([]Point, 0, max(n-from, 0))
	for i := from; i < n; i++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		p, err := NewPoint(r*cos, y, r*sin)
		if err != nil {
			// Only reachable for r = 0 and y = 0, which cannot both hold.
			continue
		}
		points = append(points, p)
	}
	return points
}

// Interleave merges point sets round-robin: a[0], b[0], a[1], b[1], ...
// Remaining points of longer sets follow in order.
func Interleave(sets ...[]Point) []Point {
	total, longest := 0, 0
	for _, s := range sets {
		total += len(s)
		longest = max(longest, len(s))
	}
	out := make([]Point, 0, total)
	for i := range longest {
		for _, s := range sets {
			if i < len(s) {
				out = append(out, s[i])
			}
		}
	}
	return out
}
