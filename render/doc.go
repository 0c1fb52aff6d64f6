// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render draws a Hopf fibration view to an image with gg's software
// rasterizer.
//
// A frame shows the committed fibers as rings, the live preview fiber of
// the selected point, and an inset with the base points on S². Rendering is
// headless: there is no window, camera input or animation, only a fixed
// orthographic Camera.
//
// # Usage
//
//	s := hopf.NewVisualizationState()
//	for _, p := range hopf.Latitude(0, 32, 0) {
//	    s, _ = s.Select(p).Commit()
//	}
//
//	r := render.New(render.WithSize(1024, 1024))
//	if err := r.SavePNG("hopf.png", s); err != nil {
//	    log.Fatal(err)
//	}
package render
