package sprite

import (
	"math"
	"testing"
)

const matEps = 1e-5

func matNear(a, b Mat4) bool {
	fa, fb := a.Floats(), b.Floats()
	for i := range fa {
		if math.Abs(float64(fa[i]-fb[i])) > matEps {
			return false
		}
	}
	return true
}

func TestNewMat4(t *testing.T) {
	vals := make([]float32, 16)
	for i := range vals {
		vals[i] = float32(i)
	}
	m, err := NewMat4(vals...)
	if err != nil {
		t.Fatalf("NewMat4 failed: %v", err)
	}
	if m.Floats() != [16]float32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15} {
		t.Errorf("NewMat4 = %v", m.Floats())
	}

	// Extra values are ignored.
	m, err = NewMat4(append(vals, 99, 98)...)
	if err != nil {
		t.Fatalf("NewMat4 with extras failed: %v", err)
	}
	if m.Floats()[15] != 15 {
		t.Errorf("NewMat4 with extras kept extras: %v", m.Floats())
	}
}

func TestNewMat4TooFewValues(t *testing.T) {
	for _, n := range []int{0, 4, 15} {
		vals := make([]float32, n)
		if _, err := NewMat4(vals...); err == nil {
			t.Errorf("NewMat4 with %d values: expected error", n)
		}
	}
}

func TestMat4AtSetAt(t *testing.T) {
	var m Mat4
	if err := m.SetAt(1, 3, 42); err != nil {
		t.Fatalf("SetAt failed: %v", err)
	}
	got, err := m.At(1, 3)
	if err != nil {
		t.Fatalf("At failed: %v", err)
	}
	if got != 42 {
		t.Errorf("At(1,3) = %v, want 42", got)
	}
	// Row 1, column 3 lives at linear index 3*4+1 in column-major storage.
	if m.Floats()[13] != 42 {
		t.Errorf("storage[13] = %v, want 42", m.Floats()[13])
	}

	for _, ij := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		if _, err := m.At(ij[0], ij[1]); err == nil {
			t.Errorf("At(%d,%d): expected error", ij[0], ij[1])
		}
		if err := m.SetAt(ij[0], ij[1], 0); err == nil {
			t.Errorf("SetAt(%d,%d): expected error", ij[0], ij[1])
		}
	}
}

func TestIdentityIsMulNeutral(t *testing.T) {
	m := Translation(3, 4, 5).Mul(RotationZ(1.2).Mul(Scaling(2, 3, 4)))
	if !matNear(m.Mul(Identity()), m) {
		t.Error("m * I != m")
	}
	if !matNear(Identity().Mul(m), m) {
		t.Error("I * m != m")
	}
}

func TestZeroRotationsAreIdentity(t *testing.T) {
	for name, m := range map[string]Mat4{
		"RotationX":   RotationX(0),
		"RotationY":   RotationY(0),
		"RotationZ":   RotationZ(0),
		"RotationXYZ": RotationXYZ(0, 0, 0),
	} {
		if !matNear(m, Identity()) {
			t.Errorf("%s(0) != identity: %v", name, m.Floats())
		}
	}
}

func TestRotationZQuarterTurn(t *testing.T) {
	// A quarter turn about Z sends +X to +Y (right-handed).
	m := RotationZ(math.Pi / 2)
	f := m.Floats()
	// Column 0 is the image of the X basis vector.
	if math.Abs(float64(f[0])) > matEps || math.Abs(float64(f[1]-1)) > matEps {
		t.Errorf("RotationZ(pi/2) column 0 = (%v, %v), want (0, 1)", f[0], f[1])
	}
}

func TestRotationXYZOrder(t *testing.T) {
	rx, ry, rz := float32(0.3), float32(0.7), float32(1.1)
	want := RotationX(rx).Mul(RotationY(ry).Mul(RotationZ(rz)))
	if !matNear(RotationXYZ(rx, ry, rz), want) {
		t.Error("RotationXYZ does not compose as Rx*(Ry*Rz)")
	}
}

func TestMulNotCommutative(t *testing.T) {
	a := Translation(1, 0, 0)
	b := Scaling(2, 2, 2)
	if matNear(a.Mul(b), b.Mul(a)) {
		t.Error("expected translation and scale to not commute")
	}
}

func TestMulLeavesOperandsUntouched(t *testing.T) {
	a := Translation(1, 2, 3)
	b := Scaling(4, 5, 6)
	aBefore, bBefore := a.Floats(), b.Floats()
	_ = a.Mul(b)
	if a.Floats() != aBefore || b.Floats() != bBefore {
		t.Error("Mul mutated an operand")
	}
}

func TestTranslation(t *testing.T) {
	m := Translation(7, 8, 9)
	f := m.Floats()
	if f[12] != 7 || f[13] != 8 || f[14] != 9 {
		t.Errorf("translation column = (%v, %v, %v)", f[12], f[13], f[14])
	}
}

func TestOrthoCameraCorners(t *testing.T) {
	// The fixed sprite camera: X [-640,640], Y [-480,480], Z [50,-50]
	// (near at +50, toward the viewer).
	proj := Ortho(-640, 640, -480, 480, 50, -50)

	apply := func(m Mat4, x, y, z float32) (float32, float32, float32) {
		f := m.Floats()
		ox := f[0]*x + f[4]*y + f[8]*z + f[12]
		oy := f[1]*x + f[5]*y + f[9]*z + f[13]
		oz := f[2]*x + f[6]*y + f[10]*z + f[14]
		return ox, oy, oz
	}

	tests := []struct {
		name       string
		x, y, z    float32
		cx, cy, cz float32
	}{
		{"center", 0, 0, 0, 0, 0, 0.5},
		{"right edge", 640, 0, 0, 1, 0, 0.5},
		{"left edge", -640, 0, 0, -1, 0, 0.5},
		{"top edge", 0, 480, 0, 0, 1, 0.5},
		{"near plane", 0, 0, 50, 0, 0, 0},
		{"far plane", 0, 0, -50, 0, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cx, cy, cz := apply(proj, tt.x, tt.y, tt.z)
			if math.Abs(float64(cx-tt.cx)) > matEps ||
				math.Abs(float64(cy-tt.cy)) > matEps ||
				math.Abs(float64(cz-tt.cz)) > matEps {
				t.Errorf("project(%v, %v, %v) = (%v, %v, %v), want (%v, %v, %v)",
					tt.x, tt.y, tt.z, cx, cy, cz, tt.cx, tt.cy, tt.cz)
			}
		})
	}
}
