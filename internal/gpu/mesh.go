package gpu

import (
	"encoding/binary"
	"math"
)

// Unit quad mesh, shared by every draw call. 4 vertices of 6 float32 each
// (homogeneous position + auxiliary 2D coordinate, interleaved), 6 indices
// forming 2 triangles. Uploaded once at construction and never rebuilt.
const (
	quadVertexStride = 24 // 6 x float32
	quadVertexCount  = 4
	quadIndexCount   = 6
)

// quadVertices lists the unit quad corners, half an edge from the origin so
// the scale matrix sets the sprite's full world size. The auxiliary
// coordinate spans [0,1]x[0,1]; the fragment stage ignores it in this
// version.
var quadVertices = [quadVertexCount][6]float32{
	{-0.5, -0.5, 0, 1, 0, 0},
	{0.5, -0.5, 0, 1, 1, 0},
	{-0.5, 0.5, 0, 1, 0, 1},
	{0.5, 0.5, 0, 1, 1, 1},
}

// quadIndices describes the two triangles covering the quad.
var quadIndices = [quadIndexCount]uint16{0, 1, 2, 2, 1, 3}

// quadVertexData serializes the vertex array for upload.
func quadVertexData() []byte {
	buf := make([]byte, quadVertexCount*quadVertexStride)
	off := 0
	for _, v := range quadVertices {
		for _, f := range v {
			binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(f))
			off += 4
		}
	}
	return buf
}

// quadIndexData serializes the index array for upload.
func quadIndexData() []byte {
	buf := make([]byte, quadIndexCount*2)
	for i, idx := range quadIndices {
		binary.LittleEndian.PutUint16(buf[i*2:], idx)
	}
	return buf
}
