package sprite

import "fmt"

// Vec4 is a 4-component float32 vector. Depending on context it holds a
// homogeneous coordinate (X, Y, Z, W) or an RGBA color (R, G, B, A mapped to
// X, Y, Z, W in that order).
//
// Vec4 is a value type: assignment copies all four components.
type Vec4 struct {
	X, Y, Z, W float32
}

// NewVec4 builds a Vec4 from at least four values. Values beyond the fourth
// are ignored. Fewer than four values is an error.
func NewVec4(vals ...float32) (Vec4, error) {
	if len(vals) < 4 {
		return Vec4{}, fmt.Errorf("sprite: Vec4 needs 4 components, got %d", len(vals))
	}
	return Vec4{X: vals[0], Y: vals[1], Z: vals[2], W: vals[3]}, nil
}

// At returns the i-th component (0..3).
func (v Vec4) At(i int) (float32, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	case 3:
		return v.W, nil
	}
	return 0, fmt.Errorf("sprite: Vec4 index %d out of range", i)
}

// SetAt sets the i-th component (0..3).
func (v *Vec4) SetAt(i int, val float32) error {
	switch i {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	case 2:
		v.Z = val
	case 3:
		v.W = val
	default:
		return fmt.Errorf("sprite: Vec4 index %d out of range", i)
	}
	return nil
}

// Mul returns the component-wise product of v and o.
func (v Vec4) Mul(o Vec4) Vec4 {
	return Vec4{X: v.X * o.X, Y: v.Y * o.Y, Z: v.Z * o.Z, W: v.W * o.W}
}

// Dot returns the 4-term dot product of v and o.
func (v Vec4) Dot(o Vec4) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

// RGBA builds a color vector from red, green, blue and alpha in [0, 1].
func RGBA(r, g, b, a float32) Vec4 {
	return Vec4{X: r, Y: g, Z: b, W: a}
}
