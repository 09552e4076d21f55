package textmesh

import (
	"encoding/binary"
	"fmt"

	"github.com/gogpu/glyphlayout"
	"github.com/gogpu/gputypes"
)

// IndexFormat is the element format of a text mesh index buffer. Meshes are
// drawn indexed with 16-bit indices, which caps a mesh at 65536 vertices.
const IndexFormat = gputypes.IndexFormatUint16

// IndexSize is the byte size of one index.
const IndexSize = 2

// EncodeIndices serializes indices into a little-endian uint16 buffer.
// Returns nil for an empty slice. The result is not padded; upload pads it.
func EncodeIndices(indices []uint16) []byte {
	if len(indices) == 0 {
		return nil
	}
	data := make([]byte, len(indices)*IndexSize)
	for i, idx := range indices {
		binary.LittleEndian.PutUint16(data[i*IndexSize:], idx)
	}
	return data
}

// DecodeIndices reads a uint16 index buffer back into indices. The length
// of data must be a multiple of IndexSize.
func DecodeIndices(data []byte) ([]uint16, error) {
	if len(data)%IndexSize != 0 {
		return nil, fmt.Errorf("%w: text mesh index buffer of %d bytes, stride %d",
			glyphlayout.ErrBufferLength, len(data), IndexSize)
	}
	indices := make([]uint16, len(data)/IndexSize)
	for i := range indices {
		indices[i] = binary.LittleEndian.Uint16(data[i*IndexSize:])
	}
	return indices, nil
}
