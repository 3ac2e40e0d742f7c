package sprite

import (
	"fmt"
	"math"
)

// Mat4 is a 4x4 float32 matrix. Storage is column-major (the row index varies
// fastest in the linear layout), matching the order GPU uniform blocks expect,
// so the raw components upload without a transpose. At and SetAt always
// address the mathematical row i, column j regardless of storage order.
//
// Mat4 is a value type: assignment copies all sixteen components.
type Mat4 struct {
	m [16]float32
}

// NewMat4 builds a Mat4 from at least sixteen values read in storage
// (column-major) order. Values beyond the sixteenth are ignored. Fewer than
// sixteen values is an error.
func NewMat4(vals ...float32) (Mat4, error) {
	if len(vals) < 16 {
		return Mat4{}, fmt.Errorf("sprite: Mat4 needs 16 components, got %d", len(vals))
	}
	var r Mat4
	copy(r.m[:], vals[:16])
	return r, nil
}

// At returns the component at mathematical row i, column j (0..3 each).
func (a Mat4) At(i, j int) (float32, error) {
	if i < 0 || i > 3 || j < 0 || j > 3 {
		return 0, fmt.Errorf("sprite: Mat4 index (%d,%d) out of range", i, j)
	}
	return a.m[j*4+i], nil
}

// SetAt sets the component at mathematical row i, column j (0..3 each).
func (a *Mat4) SetAt(i, j int, val float32) error {
	if i < 0 || i > 3 || j < 0 || j > 3 {
		return fmt.Errorf("sprite: Mat4 index (%d,%d) out of range", i, j)
	}
	a.m[j*4+i] = val
	return nil
}

// Floats returns the sixteen components in storage (column-major) order.
func (a Mat4) Floats() [16]float32 {
	return a.m
}

// Mul returns the matrix product a×b. Neither operand is modified.
func (a Mat4) Mul(b Mat4) Mat4 {
	var r Mat4
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a.m[k*4+i] * b.m[j*4+k]
			}
			r.m[j*4+i] = sum
		}
	}
	return r
}

// Identity returns the 4x4 identity matrix.
func Identity() Mat4 {
	var r Mat4
	r.m[0] = 1
	r.m[5] = 1
	r.m[10] = 1
	r.m[15] = 1
	return r
}

// Scaling returns a diagonal scale transform.
func Scaling(x, y, z float32) Mat4 {
	var r Mat4
	r.m[0] = x
	r.m[5] = y
	r.m[10] = z
	r.m[15] = 1
	return r
}

// RotationX returns a right-handed rotation about the X axis by r radians.
func RotationX(r float32) Mat4 {
	sin, cos := sincos(r)
	m := Identity()
	m.m[5] = cos
	m.m[6] = sin
	m.m[9] = -sin
	m.m[10] = cos
	return m
}

// RotationY returns a right-handed rotation about the Y axis by r radians.
func RotationY(r float32) Mat4 {
	sin, cos := sincos(r)
	m := Identity()
	m.m[0] = cos
	m.m[2] = -sin
	m.m[8] = sin
	m.m[10] = cos
	return m
}

// RotationZ returns a right-handed rotation about the Z axis by r radians.
func RotationZ(r float32) Mat4 {
	sin, cos := sincos(r)
	m := Identity()
	m.m[0] = cos
	m.m[1] = sin
	m.m[4] = -sin
	m.m[5] = cos
	return m
}

// RotationXYZ returns the composed object rotation Rx·(Ry·Rz).
// The nesting order is fixed; the axes do not commute.
func RotationXYZ(rx, ry, rz float32) Mat4 {
	return RotationX(rx).Mul(RotationY(ry).Mul(RotationZ(rz)))
}

// Translation returns the identity with a translation in column 3.
func Translation(x, y, z float32) Mat4 {
	m := Identity()
	m.m[12] = x
	m.m[13] = y
	m.m[14] = z
	return m
}

// Ortho returns a parallel projection mapping X from [left, right] and Y from
// [bottom, top] to [-1, 1], and Z from [near, far] to [0, 1] (the WebGPU clip
// cube; near maps to depth 0). near > far puts positive Z toward the viewer.
func Ortho(left, right, bottom, top, near, far float32) Mat4 {
	var r Mat4
	r.m[0] = 2 / (right - left)
	r.m[5] = 2 / (top - bottom)
	r.m[10] = 1 / (far - near)
	r.m[12] = -(right + left) / (right - left)
	r.m[13] = -(top + bottom) / (top - bottom)
	r.m[14] = -near / (far - near)
	r.m[15] = 1
	return r
}

func sincos(r float32) (sin, cos float32) {
	s, c := math.Sincos(float64(r))
	return float32(s), float32(c)
}
