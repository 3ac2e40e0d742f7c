// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

// Logical viewport dimensions. World coordinates map onto this fixed 4:3
// region regardless of the surface's pixel size.
const (
	LogicalWidth  = 1280
	LogicalHeight = 960
)

// Viewport is a pixel rectangle within a surface.
type Viewport struct {
	X, Y          int
	Width, Height int
}

// FitViewport returns the largest region of a w-by-h surface that preserves
// the fixed LogicalWidth:LogicalHeight (4:3) aspect ratio, centered on the
// leftover axis. Degenerate surface sizes yield an empty viewport.
func FitViewport(w, h int) Viewport {
	if w <= 0 || h <= 0 {
		return Viewport{}
	}
	// Compare w/h against 4/3 without division.
	if w*LogicalHeight >= h*LogicalWidth {
		// Wider than 4:3: full height, pillarboxed.
		fitW := h * LogicalWidth / LogicalHeight
		return Viewport{X: (w - fitW) / 2, Y: 0, Width: fitW, Height: h}
	}
	// Taller than 4:3: full width, letterboxed.
	fitH := w * LogicalHeight / LogicalWidth
	return Viewport{X: 0, Y: (h - fitH) / 2, Width: w, Height: fitH}
}
