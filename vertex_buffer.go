package glyphlayout

import (
	"fmt"
	"sort"

	"github.com/gogpu/gputypes"
)

// FormatSize returns the byte width of a float vertex format. The second
// result is false for formats no record in this module uses.
func FormatSize(format gputypes.VertexFormat) (uint64, bool) {
	switch format {
	case gputypes.VertexFormatFloat32:
		return 4, true
	case gputypes.VertexFormatFloat32x2:
		return 8, true
	case gputypes.VertexFormatFloat32x3:
		return 12, true
	case gputypes.VertexFormatFloat32x4:
		return 16, true
	default:
		return 0, false
	}
}

// VerifyVertexBuffer checks that a vertex buffer description agrees with a
// record layout. The attribute at shader location i must describe field i:
// same offset, and a format exactly as wide as the field. The array stride
// must equal the record size.
//
// A nil result means a pipeline built from vb reads the record's bytes the
// way the record was written.
func VerifyVertexBuffer(vb gputypes.VertexBufferLayout, l Layout) error {
	var problems []string

	if uint64(vb.ArrayStride) != uint64(l.Size) {
		problems = append(problems, fmt.Sprintf("stride %d, record size %d", vb.ArrayStride, l.Size))
	}
	if len(vb.Attributes) != len(l.Fields) {
		problems = append(problems, fmt.Sprintf("%d attributes, %d fields", len(vb.Attributes), len(l.Fields)))
	}

	attrs := make([]gputypes.VertexAttribute, len(vb.Attributes))
	copy(attrs, vb.Attributes)
	sort.Slice(attrs, func(i, j int) bool { return attrs[i].ShaderLocation < attrs[j].ShaderLocation })

	for i, a := range attrs {
		if int(a.ShaderLocation) != i {
			problems = append(problems, fmt.Sprintf("shader locations not contiguous at %d", a.ShaderLocation))
			continue
		}
		if i >= len(l.Fields) {
			break
		}
		f := l.Fields[i]
		if uint64(a.Offset) != uint64(f.Offset) {
			problems = append(problems, fmt.Sprintf("location %d (%s) at offset %d, field at %d", i, f.Name, a.Offset, f.Offset))
		}
		size, ok := FormatSize(a.Format)
		if !ok {
			problems = append(problems, fmt.Sprintf("location %d (%s) has unsupported format %v", i, f.Name, a.Format))
			continue
		}
		if size != uint64(f.Size) {
			problems = append(problems, fmt.Sprintf("location %d (%s) reads %d bytes, field is %d", i, f.Name, size, f.Size))
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return &MismatchError{Layout: l.Name, Problems: problems}
}
