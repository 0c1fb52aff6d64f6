// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/gg"

// Option configures a Renderer during creation.
//
// Example:
//
//	r := render.New(
//	    render.WithSize(1600, 1200),
//	    render.WithCamera(render.Camera{Yaw: 60, Pitch: 10, Zoom: 240}),
//	    render.WithInset(false),
//	)
type Option func(*options)

type options struct {
	width, height int
	camera        Camera
	background    gg.RGBA
	lineWidth     float64
	inset         bool
	label         bool
	cullRadius    float64
}

func defaultOptions() options {
	return options{
		width:      800,
		height:     800,
		camera:     DefaultCamera(),
		background: gg.Hex("#101418"),
		lineWidth:  2,
		inset:      true,
		label:      true,
		cullRadius: 50,
	}
}

// WithSize sets the output image size in pixels. Non-positive sizes are
// ignored.
func WithSize(width, height int) Option {
	return func(o *options) {
		if width > 0 && height > 0 {
			o.width, o.height = width, height
		}
	}
}

// WithCamera sets the view.
func WithCamera(c Camera) Option {
	return func(o *options) {
		o.camera = c
	}
}

// WithBackground sets the clear color.
func WithBackground(c gg.RGBA) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithLineWidth sets the stroke width of committed rings in pixels. The
// preview curve is drawn at half this width.
func WithLineWidth(w float64) Option {
	return func(o *options) {
		if w > 0 {
			o.lineWidth = w
		}
	}
}

// WithInset enables or disables the S² inset in the lower-left corner.
func WithInset(enabled bool) Option {
	return func(o *options) {
		o.inset = enabled
	}
}

// WithLabel enables or disables the fiber count label.
func WithLabel(enabled bool) Option {
	return func(o *options) {
		o.label = enabled
	}
}

// WithCullRadius sets the scene distance beyond which polyline vertices are
// dropped. Fibers near the north pole run off to infinity; their far
// vertices only produce long straight strokes across the frame.
func WithCullRadius(r float64) Option {
	return func(o *options) {
		if r > 0 {
			o.cullRadius = r
		}
	}
}
