// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/hopf"
)

// Inset layout, as fractions of the shorter image side.
const (
	insetFraction   = 0.28
	insetMargin     = 0.02
	insetOversample = 2
	insetAxisLen    = 0.5
	insetSphere     = 0.9
	insetPointSize  = 0.025
)

var (
	insetSphereColor = gg.RGBA2(0x44/255.0, 0x44/255.0, 0x44/255.0, 0.6)
	insetAxisColor   = gg.Hex("#888888")
)

// drawInset renders S² with its axes and base points at oversampled
// resolution and scales it into the lower-left corner of dst.
func (r *Renderer) drawInset(dst *image.RGBA, s hopf.VisualizationState) error {
	side := min(r.opts.width, r.opts.height)
	size := int(float64(side) * insetFraction)
	if size < 16 {
		return nil
	}
	margin := int(float64(side) * insetMargin)

	src, err := r.renderInset(size*insetOversample, s)
	if err != nil {
		return fmt.Errorf("render: inset: %w", err)
	}

	dr := image.Rect(margin, r.opts.height-margin-size, margin+size, r.opts.height-margin)
	xdraw.CatmullRom.Scale(dst, dr, src, src.Bounds(), xdraw.Over, nil)
	return nil
}

// renderInset draws the unit sphere seen through the main camera, so the
// inset turns with the scene. Points on the far hemisphere are faded.
func (r *Renderer) renderInset(size int, s hopf.VisualizationState) (_ image.Image, err error) {
	cam := r.opts.camera
	cam.Zoom = float64(size) / 2 * insetSphere
	proj := cam.projector(size, size)

	dc := gg.NewContext(size, size)
	defer closeContext(dc, &err)

	dc.SetColor(insetSphereColor.Color())
	dc.DrawCircle(proj.cx, proj.cy, cam.Zoom)
	if err := dc.Fill(); err != nil {
		return nil, err
	}

	dc.SetColor(insetAxisColor.Color())
	dc.SetLineWidth(float64(size) / 160)
	for _, axis := range []hopf.Vec3{{X: insetAxisLen}, {Y: insetAxisLen}, {Z: insetAxisLen}} {
		x, y, _ := proj.project(axis)
		dc.DrawLine(proj.cx, proj.cy, x, y)
		if err := dc.Stroke(); err != nil {
			return nil, err
		}
	}

	radius := float64(size) * insetPointSize
	for _, f := range s.Committed() {
		if err := drawBasePoint(dc, proj, f.Base, f.Color, radius); err != nil {
			return nil, err
		}
	}
	if p, ok := s.Selected(); ok && s.PreviewVisible() {
		if err := drawBasePoint(dc, proj, p, hopf.MapColor(p), radius*1.4); err != nil {
			return nil, err
		}
	}

	return dc.Image(), nil
}

func drawBasePoint(dc *gg.Context, proj projector, p hopf.Point, c hopf.HSL, radius float64) error {
	x, y, depth := proj.project(p.Vec())
	col := c.RGBA()
	if depth < 0 {
		col.A = 0.35
	}
	dc.SetColor(col.Color())
	dc.DrawCircle(x, y, radius)
	return dc.Fill()
}
