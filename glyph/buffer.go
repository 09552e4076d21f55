package glyph

import (
	"fmt"

	"github.com/gogpu/glyphlayout"
)

// EncodeVertices serializes vertices into one contiguous buffer with a
// stride of VertexSize bytes, ready for a single vertex buffer upload.
// Returns nil for an empty slice.
func EncodeVertices(vertices []Vertex) []byte {
	if len(vertices) == 0 {
		return nil
	}
	data := make([]byte, len(vertices)*VertexSize)
	for i := range vertices {
		vertices[i].put(data[i*VertexSize:])
	}
	return data
}

// DecodeVertices reads a contiguous vertex buffer back into vertices.
// The length of data must be a multiple of VertexSize.
func DecodeVertices(data []byte) ([]Vertex, error) {
	if len(data)%VertexSize != 0 {
		return nil, fmt.Errorf("%w: glyph vertex buffer of %d bytes, stride %d",
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
