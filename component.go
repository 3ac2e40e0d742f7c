package sprite

// Component is the minimal contract every registered object satisfies: an
// advisory enabled flag with explicit toggles. The registry never consults
// the flag; consumers that care (the frame Loop does) check it themselves.
// All further behavior lives on the concrete type and is reached through a
// typed registry query.
type Component interface {
	// Enabled reports whether the component is active.
	Enabled() bool

	// Enable marks the component active.
	Enable()

	// Disable marks the component inactive.
	Disable()
}

// Drawable is a Component that can submit itself to a Renderer. The frame
// Loop queries the registry for Drawables and draws the enabled ones in
// insertion order, once per tick.
type Drawable interface {
	Component

	// Draw submits the component's current state to the renderer.
	Draw(r Renderer)
}
