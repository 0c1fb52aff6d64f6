// Package hopf computes the geometry of the Hopf fibration for display.
//
// # Overview
//
// The Hopf map sends each point of the 3-sphere S³ to a point of the
// 2-sphere S². The preimage of a base point on S² is a great circle of S³,
// its fiber. Stereographic projection carries S³ minus one point into R³,
// where each fiber becomes a circle (or, for the fiber through the
// projection point, a line).
//
// hopf turns a base point into the three things a renderer needs:
//
//   - [Sample]: the fiber as a closed polyline, for a live preview curve
//   - [FitRing]: the exact circle the fiber traces (center, radius, normal
//     and orientation), for an instanced ring primitive
//   - [MapColor]: a deterministic color, so neighbouring fibers are distinct
//
// # Quick Start
//
//	p, err := hopf.NewPoint(0.6, 0.3, 0.74)
//	if err != nil {
//	    return err
//	}
//
//	curve := hopf.Sample(p, hopf.DefaultDivisions) // 257 vertices
//	color := hopf.MapColor(p).RGBA()
//
//	ring, err := hopf.FitRing(p)
//	if errors.Is(err, hopf.ErrDegenerateFiber) {
//	    // p is at the north pole; its fiber is a line
//	}
//
// # Coordinate System
//
// The poles of S² lie on the y axis. The north pole (0, 1, 0) is the
// degenerate base point whose fiber passes through the projection point;
// FitRing refuses it. The south pole (0, -1, 0) maps to the circle of radius
// 0.5 in the XZ plane.
//
// Ring primitives are modelled in the XY plane around [ReferenceAxis] (+Z)
// and placed by rotating with Ring.Orientation, then translating to
// Ring.Center.
//
// # State
//
// The core operations are pure and safe for concurrent use. The selection
// and committed fibers of an interactive view live in [VisualizationState],
// a value owned by the caller.
package hopf
