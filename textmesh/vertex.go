package textmesh

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"

	"github.com/gogpu/glyphlayout"
	"golang.org/x/image/math/f32"
)

// VertexSize is the byte stride of a text mesh vertex.
const VertexSize = 24

const texCoordsOffset = 16

// Vertex is a single text mesh vertex. Matches VertexInput in the text mesh
// shader (see ShaderSource).
// Size: 24 bytes, tightly packed, no padding.
type Vertex struct {
	Position  f32.Vec4 // offset  0: homogeneous position (16 bytes)
	TexCoords f32.Vec2 // offset 16: atlas u, v (8 bytes)
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

// UnmarshalBinary decodes a vertex from the first 24 bytes of data.
func (v *Vertex) UnmarshalBinary(data []byte) error {
	if len(data) < VertexSize {
		return glyphlayout.ShortBufferError("textmesh.Vertex", len(data), VertexSize)
	}
	v.Position = f32.Vec4{
		math.Float32frombits(binary.LittleEndian.Uint32(data[0:4])),
		math.Float32frombits(binary.LittleEndian.Uint32(data[4:8])),
		math.Float32frombits(binary.LittleEndian.Uint32(data[8:12])),
		math.Float32frombits(binary.LittleEndian.Uint32(data[12:16])),
	}
	v.TexCoords = f32.Vec2{
		math.Float32frombits(binary.LittleEndian.Uint32(data[16:20])),
		math.Float32frombits(binary.LittleEndian.Uint32(data[20:24])),
	}
	return nil
}

func (v *Vertex) put(buf []byte) {
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(v.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(v.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(v.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(v.Position[3]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(v.TexCoords[0]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(v.TexCoords[1]))
}

// EncodeVertices serializes a mesh into one contiguous vertex buffer.
// Returns nil for an empty mesh.
func EncodeVertices(vertices []Vertex) []byte {
	if len(vertices) == 0 {
		return nil
	}
	data := make([]byte, 0, len(vertices)*VertexSize)
	for i := range vertices {
		data, _ = vertices[i].AppendBinary(data)
	}
	return data
}

// DecodeVertices reads a contiguous vertex buffer back into a mesh.
func DecodeVertices(data []byte) ([]Vertex, error) {
	if len(data)%VertexSize != 0 {
		return nil, fmt.Errorf("%w: text mesh vertex buffer of %d bytes, stride %d",
			glyphlayout.ErrBufferLength, len(data), VertexSize)
	}
	vertices := make([]Vertex, len(data)/VertexSize)
	for i := range vertices {
		if err := vertices[i].UnmarshalBinary(data[i*VertexSize:]); err != nil {
			return nil, err
		}
	}
	return vertices, nil
}

// VertexContract returns the layout the text mesh vertex stage expects.
func VertexContract() glyphlayout.Layout {
	return glyphlayout.Layout{
		Name: "textmesh.Vertex",
		Size: VertexSize,
		Fields: []glyphlayout.Field{
			{Name: "Position", Offset: 0, Size: 16},
			{Name: "TexCoords", Offset: texCoordsOffset, Size: 8},
		},
	}
}

// Compile-time layout checks; see glyph for the idiom.
func _() {
	var x [1]struct{}
	_ = x[unsafe.Sizeof(Vertex{})-VertexSize]
	_ = x[VertexSize-unsafe.Sizeof(Vertex{})]
	_ = x[unsafe.Offsetof(Vertex{}.TexCoords)-texCoordsOffset]
	_ = x[texCoordsOffset-unsafe.Offsetof(Vertex{}.TexCoords)]
}
