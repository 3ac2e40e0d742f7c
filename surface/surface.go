// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

// Surface is the drawing-surface contract the renderer targets: a resizable
// 2D pixel region owned by the host environment (a window, a browser canvas,
// or an in-memory stand-in for tests).
//
// The renderer claims a fixed logical viewport of 1280x960 units at a 4:3
// aspect ratio regardless of the surface's pixel size; it observes resize
// notifications to refit that viewport.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// OnResize registers fn to be called with the new pixel size on every
	// resize. fn is also invoked synchronously once with the current size,
	// so the observer starts from a fitted viewport.
	OnResize(fn func(width, height int))
}
