// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"math"

	"gonum.org/v1/gonum/num/quat"

	"github.com/gogpu/hopf"
)

// Camera is a fixed orthographic view of the projected space.
//
// The scene is turned by Yaw degrees about +Y, then by Pitch degrees about
// +X, and viewed along -Z with +Y up. Zoom is the number of pixels per
// scene unit.
type Camera struct {
	Yaw, Pitch float64
	Zoom       float64
}

// DefaultCamera returns a three-quarter view that shows the nested tori of
// the fibration without the rings collapsing to lines.
func DefaultCamera() Camera {
	return Camera{Yaw: 35, Pitch: 20, Zoom: 180}
}

// Rotation returns the view rotation as a unit quaternion.
func (c Camera) Rotation() quat.Number {
	ys, yc := math.Sincos(c.Yaw * math.Pi / 360)
	ps, pc := math.Sincos(c.Pitch * math.Pi / 360)
	yaw := quat.Number{Real: yc, Jmag: ys}
	pitch := quat.Number{Real: pc, Imag: ps}
	return quat.Mul(pitch, yaw)
}

// projector maps scene coordinates to pixels for one frame.
type projector struct {
	rot    quat.Number
	zoom   float64
	cx, cy float64
}

func (c Camera) projector(width, height int) projector {
	zoom := c.Zoom
	if zoom <= 0 {
		zoom = DefaultCamera().Zoom
	}
	return projector{
		rot:  c.Rotation(),
		zoom: zoom,
		cx:   float64(width) / 2,
		cy:   float64(height) / 2,
	}
}

// project returns the pixel position of v and its depth toward the viewer.
// Larger depth is closer.
func (p projector) project(v hopf.Vec3) (x, y, depth float64) {
	r := hopf.Rotate(p.rot, v)
	return p.cx + r.X*p.zoom, p.cy - r.Y*p.zoom, r.Z
}
