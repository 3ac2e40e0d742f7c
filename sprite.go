package sprite

// Sprite is a drawable game entity: a flat-colored quad with a spatial
// transform. Created once at scene setup and mutated in place by game logic
// across frames; position, rotation, scale and color are each independently
// settable.
//
// Sprite is not safe for concurrent use. Once a Loop is drawing it, mutate
// it only from the loop's WithUpdate callback.
type Sprite struct {
	enabled bool

	px, py, pz float32 // world position
	rx, ry, rz float32 // rotation per axis, radians
	sx, sy     float32 // scale
	color      Vec4
}

// SpriteOption configures a Sprite during creation.
type SpriteOption func(*Sprite)

// WithPosition sets the initial world position. Default [0, 0, 0].
func WithPosition(x, y, z float32) SpriteOption {
	return func(s *Sprite) { s.px, s.py, s.pz = x, y, z }
}

// WithRotation sets the initial per-axis rotation in radians. Default [0, 0, 0].
func WithRotation(x, y, z float32) SpriteOption {
	return func(s *Sprite) { s.rx, s.ry, s.rz = x, y, z }
}

// WithScale sets the initial scale. Default [1, 1].
func WithScale(x, y float32) SpriteOption {
	return func(s *Sprite) { s.sx, s.sy = x, y }
}

// WithColor sets the initial color. Default transparent black.
func WithColor(c Vec4) SpriteOption {
	return func(s *Sprite) { s.color = c }
}

// NewSprite creates a sprite with position [0,0,0], rotation [0,0,0],
// scale [1,1], color [0,0,0,0], enabled.
func NewSprite(opts ...SpriteOption) *Sprite {
	s := &Sprite{enabled: true, sx: 1, sy: 1}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Enabled reports whether the sprite participates in the frame.
func (s *Sprite) Enabled() bool { return s.enabled }

// Enable marks the sprite active.
func (s *Sprite) Enable() { s.enabled = true }

// Disable marks the sprite inactive. The frame Loop skips disabled sprites;
// the registry still returns them.
func (s *Sprite) Disable() { s.enabled = false }

// Position returns the world position.
func (s *Sprite) Position() (x, y, z float32) { return s.px, s.py, s.pz }

// SetPosition sets the world position. Takes visual effect on the next Draw.
func (s *Sprite) SetPosition(x, y, z float32) { s.px, s.py, s.pz = x, y, z }

// Rotation returns the per-axis rotation in radians.
func (s *Sprite) Rotation() (x, y, z float32) { return s.rx, s.ry, s.rz }

// SetRotation sets the per-axis rotation in radians.
func (s *Sprite) SetRotation(x, y, z float32) { s.rx, s.ry, s.rz = x, y, z }

// Scale returns the scale.
func (s *Sprite) Scale() (x, y float32) { return s.sx, s.sy }

// SetScale sets the scale.
func (s *Sprite) SetScale(x, y float32) { s.sx, s.sy = x, y }

// Color returns the color.
func (s *Sprite) Color() Vec4 { return s.color }

// SetColor sets the color.
func (s *Sprite) SetColor(c Vec4) { s.color = c }

// Draw recomputes the three transform matrices from the current field values
// and forwards them with the color, in the order (scale, rotation,
// translation, color), to the renderer. Nothing is cached: edits since the
// previous frame take effect here.
func (s *Sprite) Draw(r Renderer) {
	r.Draw(
		Scaling(s.sx, s.sy, 1),
		RotationXYZ(s.rx, s.ry, s.rz),
		Translation(s.px, s.py, s.pz),
		s.color,
	)
}
