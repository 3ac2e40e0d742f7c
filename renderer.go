package sprite

// Renderer is the drawing contract consumed by Sprite and the frame Loop.
// The GPU implementation lives in the render package; tests substitute a
// recording fake.
//
// Per-frame ordering is the caller's responsibility: Clear strictly precedes
// the frame's Draw calls, which strictly precede Flush. All three are issued
// from a single goroutine.
type Renderer interface {
	// Clear starts a fresh frame from the clear color and clear depth.
	Clear()

	// Draw records one quad submission. Every call draws the same shared
	// unit quad; sprites are differentiated purely through the scale,
	// rotation and translation matrices and the color vector, applied in
	// exactly that argument order.
	Draw(scale, rotation, translation Mat4, color Vec4)

	// Flush submits the recorded frame to the GPU queue.
	Flush() error
}
