package gpu

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/sprite"
)

// uniformBlockSize is the byte size of the shader's uniform block: four
// mat4x4<f32> followed by one vec4<f32>.
const uniformBlockSize = 4*64 + 16

// uniformNames lists the uniform block members in declaration order. The
// std140-compatible layout gives each matrix 64 bytes and the trailing
// color vector 16.
var uniformNames = [...]string{"uniScl", "uniRot", "uniTrs", "uniProj", "uniCol"}

// resolveUniformOffsets maps each expected uniform name to its byte offset
// in the block. Every name must appear in the shader source, and the first
// occurrences must follow uniformNames order: the offsets are assigned from
// that order, so a reordered struct member would silently shift every
// offset after it. The first missing or out-of-order name fails,
// identifying the uniform.
func resolveUniformOffsets(source string) (map[string]int, error) {
	offsets := make(map[string]int, len(uniformNames))
	off := 0
	prev := -1
	for _, name := range uniformNames {
		idx := strings.Index(source, name)
		if idx < 0 {
			return nil, fmt.Errorf("gpu: uniform %q not found in shader", name)
		}
		if idx <= prev {
			return nil, fmt.Errorf("gpu: uniform %q declared out of order in shader", name)
		}
		prev = idx
		offsets[name] = off
		if name == "uniCol" {
			off += 16
		} else {
			off += 64
		}
	}
	return offsets, nil
}

// writeMat4 serializes m little-endian at dst[off:]. Column-major storage
// matches the shader's mat4x4<f32> layout, so no transpose.
func writeMat4(dst []byte, off int, m sprite.Mat4) {
	f := m.Floats()
	for i := range f {
		binary.LittleEndian.PutUint32(dst[off+i*4:], math.Float32bits(f[i]))
	}
}

// writeVec4 serializes v little-endian at dst[off:].
func writeVec4(dst []byte, off int, v sprite.Vec4) {
	binary.LittleEndian.PutUint32(dst[off+0:], math.Float32bits(v.X))
	binary.LittleEndian.PutUint32(dst[off+4:], math.Float32bits(v.Y))
	binary.LittleEndian.PutUint32(dst[off+8:], math.Float32bits(v.Z))
	binary.LittleEndian.PutUint32(dst[off+12:], math.Float32bits(v.W))
}

// newUniformTemplate builds the construction-time uniform block: identity
// transforms, the fixed projection (written once here, never re-packed),
// and opaque white as the default color. Every Draw copies this template
// and overwrites only its own regions.
func newUniformTemplate(offsets map[string]int, proj sprite.Mat4) []byte {
	block := make([]byte, uniformBlockSize)
	id := sprite.Identity()
	writeMat4(block, offsets["uniScl"], id)
	writeMat4(block, offsets["uniRot"], id)
	writeMat4(block, offsets["uniTrs"], id)
	writeMat4(block, offsets["uniProj"], proj)
	writeVec4(block, offsets["uniCol"], sprite.RGBA(1, 1, 1, 1))
	return block
}
