// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"slices"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/hopf"
)

const labelSize = 14

// Renderer draws VisualizationState values to images.
//
// A Renderer is safe for concurrent use; each Render call uses its own
// drawing contexts.
type Renderer struct {
	opts options

	fontOnce sync.Once
	font     *text.FontSource
	fontErr  error
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{opts: o}
}

// Size returns the output image size.
func (r *Renderer) Size() (width, height int) {
	return r.opts.width, r.opts.height
}

// Render draws the state: committed rings back to front, then the preview
// fiber if it is visible, then the label and inset.
func (r *Renderer) Render(s hopf.VisualizationState) (img *image.RGBA, err error) {
	w, h := r.opts.width, r.opts.height
	proj := r.opts.camera.projector(w, h)

	dc := gg.NewContext(w, h)
	defer closeContext(dc, &err)
	dc.ClearWithColor(r.opts.background)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	fibers := s.Committed()
	slices.SortStableFunc(fibers, func(a, b hopf.CommittedFiber) int {
		_, _, da := proj.project(a.Ring.Center)
		_, _, db := proj.project(b.Ring.Center)
		switch {
		case da < db:
			return -1
		case da > db:
			return 1
		}
		return 0
	})

	dc.SetLineWidth(r.opts.lineWidth)
	for _, f := range fibers {
		dc.SetColor(f.Color.Color())
		if err := r.strokePolyline(dc, proj, f.Ring.Points(f.Ring.Segments)); err != nil {
			return nil, fmt.Errorf("render: ring over %v: %w", f.Base, err)
		}
	}

	if s.PreviewVisible() {
		pl, c := s.Preview()
		dc.SetLineWidth(r.opts.lineWidth / 2)
		dc.SetColor(c.Color())
		if err := r.strokePolyline(dc, proj, pl); err != nil {
			return nil, fmt.Errorf("render: preview: %w", err)
		}
	}

	if r.opts.label {
		if err := r.drawLabel(dc, s); err != nil {
			// A missing label is cosmetic; keep the frame.
			hopf.Logger().Warn("render: label skipped", "err", err)
		}
	}

	img = image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(img, img.Bounds(), dc.Image(), image.Point{}, xdraw.Src)

	if r.opts.inset {
		if err := r.drawInset(img, s); err != nil {
			return nil, err
		}
	}

	hopf.Logger().Debug("render: frame",
		"width", w, "height", h,
		"rings", len(fibers),
		"preview", s.PreviewVisible())
	return img, nil
}

// EncodePNG renders the state and writes it to w as PNG.
func (r *Renderer) EncodePNG(w io.Writer, s hopf.VisualizationState) error {
	img, err := r.Render(s)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// SavePNG renders the state to a PNG file.
func (r *Renderer) SavePNG(path string, s hopf.VisualizationState) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("render: %w", cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := r.EncodePNG(bw, s); err != nil {
		return err
	}
	return bw.Flush()
}

// closeContext releases dc and reports its error through errp unless an
// earlier error is already set.
func closeContext(dc *gg.Context, errp *error) {
	if err := dc.Close(); err != nil && *errp == nil {
		*errp = fmt.Errorf("render: close context: %w", err)
	}
}

// strokePolyline strokes pl as one path. Vertices that are not finite or
// lie beyond the cull radius split the path, so a fiber passing through the
// projection pole is drawn as its visible arcs.
func (r *Renderer) strokePolyline(dc *gg.Context, proj projector, pl hopf.Polyline) error {
	limit := r.opts.cullRadius * r.opts.cullRadius
	pen := false
	segments := 0
	for _, v := range pl {
		if !v.IsFinite() || v.LengthSq() > limit {
			pen = false
			continue
		}
		x, y, _ := proj.project(v)
		if pen {
			dc.LineTo(x, y)
			segments++
		} else {
			dc.MoveTo(x, y)
			pen = true
		}
	}
	if segments == 0 {
		dc.ClearPath()
		return nil
	}
	return dc.Stroke()
}

func (r *Renderer) drawLabel(dc *gg.Context, s hopf.VisualizationState) error {
	r.fontOnce.Do(func() {
		r.font, r.fontErr = text.NewFontSource(goregular.TTF)
	})
	if r.fontErr != nil {
		return r.fontErr
	}

	label := fmt.Sprintf("%d fibers", s.Len())
	if p, ok := s.Selected(); ok {
		label += "  selected " + p.String()
	}
	dc.SetFont(r.font.Face(labelSize))
	dc.SetRGB(0.85, 0.85, 0.85)
	dc.DrawString(label, 12, 12+labelSize)
	return nil
}
