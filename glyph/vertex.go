package glyph

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/gogpu/glyphlayout"
	"golang.org/x/image/math/f32"
)

// VertexSize is the byte stride of a glyph quad vertex.
const VertexSize = 24

// texCoordsOffset is the byte offset of Vertex.TexCoords.
const texCoordsOffset = 16

// Vertex is a single glyph quad vertex as read by the vertex stage.
// Matches the VertexInput struct in the glyph shader (see ShaderSource).
// Size: 24 bytes, tightly packed, no padding.
type Vertex struct {
	Position  f32.Vec4 // offset  0: homogeneous position x, y, z, w (16 bytes)
	TexCoords f32.Vec2 // offset 16: normalized glyph atlas u, v (8 bytes)
}

// Size returns the size of the Vertex struct in bytes.
func (v *Vertex) Size() int {
	return int(unsafe.Sizeof(*v))
}

// Marshal serializes the vertex into a 24-byte buffer suitable for GPU upload.
func (v *Vertex) Marshal() []byte {
	buf := make([]byte, VertexSize)
	v.put(buf)
	return buf
}

// AppendBinary appends the 24-byte encoding of v to b.
func (v *Vertex) AppendBinary(b []byte) ([]byte, error) {
	n := len(b)
	b = append(b, make([]byte, VertexSize)...)
	v.put(b[n:])
	return b, nil
}

// UnmarshalBinary decodes a vertex from the first 24 bytes of data, reading
// each field at its documented offset.
func (v *Vertex) UnmarshalBinary(data []byte) error {
	if len(data) < VertexSize {
		return glyphlayout.ShortBufferError("glyph.Vertex", len(data), VertexSize)
	}
	for i := range v.Position {
		v.Position[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	for i := range v.TexCoords {
		v.TexCoords[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[texCoordsOffset+i*4:]))
	}
	return nil
}

// put writes v into buf, which must hold at least VertexSize bytes.
func (v *Vertex) put(buf []byte) {
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(v.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(v.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(v.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(v.Position[3]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(v.TexCoords[0]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(v.TexCoords[1]))
}

// VertexContract returns the layout the glyph vertex stage expects.
func VertexContract() glyphlayout.Layout {
	return glyphlayout.Layout{
		Name: "glyph.Vertex",
		Size: VertexSize,
		Fields: []glyphlayout.Field{
			{Name: "Position", Offset: 0, Size: 16},
			{Name: "TexCoords", Offset: texCoordsOffset, Size: 8},
		},
	}
}
