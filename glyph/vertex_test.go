package glyph

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"
	"unsafe"

	"github.com/gogpu/glyphlayout"
	"golang.org/x/image/math/f32"
)

// readF32 decodes the little-endian float32 at off.
func readF32(buf []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
}

func TestVertexLayout(t *testing.T) {
	if got := unsafe.Sizeof(Vertex{}); got != 24 {
		t.Errorf("sizeof(Vertex) = %d, want 24", got)
	}
	if got := unsafe.Offsetof(Vertex{}.Position); got != 0 {
		t.Errorf("offsetof(Position) = %d, want 0", got)
	}
	if got := unsafe.Offsetof(Vertex{}.TexCoords); got != 16 {
		t.Errorf("offsetof(TexCoords) = %d, want 16", got)
	}

	var v Vertex
	if v.Size() != VertexSize {
		t.Errorf("Size() = %d, want %d", v.Size(), VertexSize)
	}

	layout := glyphlayout.LayoutOf(Vertex{})
	if err := layout.Verify(VertexContract()); err != nil {
		t.Errorf("Verify: %v", err)
	}
	if !layout.Packed() {
		t.Errorf("Vertex layout has padding: %+v", layout)
	}
}

func TestVertexMarshalTexCoords(t *testing.T) {
	v := Vertex{
		Position:  f32.Vec4{0, 0, 0, 1},
		TexCoords: f32.Vec2{0.5, 0.5},
	}

	buf := v.Marshal()
	if len(buf) != VertexSize {
		t.Fatalf("Marshal() returned %d bytes, want %d", len(buf), VertexSize)
	}
	if u, w := readF32(buf, 16), readF32(buf, 20); u != 0.5 || w != 0.5 {
		t.Errorf("bytes 16..23 = (%v, %v), want (0.5, 0.5)", u, w)
	}
	if w := readF32(buf, 12); w != 1 {
		t.Errorf("position.w = %v, want 1", w)
	}
}

func TestVertexRoundTrip(t *testing.T) {
	nan := math.Float32frombits(0x7fc00123)
	negZero := math.Float32frombits(0x80000000)

	tests := []struct {
		name string
		v    Vertex
	}{
		{"zero", Vertex{}},
		{"quad corner", Vertex{Position: f32.Vec4{12.5, -3, 0, 1}, TexCoords: f32.Vec2{0.125, 0.875}}},
		{"extremes", Vertex{
			Position:  f32.Vec4{math.MaxFloat32, -math.MaxFloat32, math.SmallestNonzeroFloat32, float32(math.Inf(1))},
			TexCoords: f32.Vec2{float32(math.Inf(-1)), 1},
		}},
		{"nan payload and negative zero", Vertex{Position: f32.Vec4{nan, negZero, 0, 1}, TexCoords: f32.Vec2{negZero, nan}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := tt.v.Marshal()

			// Field by field at the documented offsets.
			for i := range 4 {
				if got, want := binary.LittleEndian.Uint32(buf[i*4:]), math.Float32bits(tt.v.Position[i]); got != want {
					t.Errorf("position[%d] bits = %#x, want %#x", i, got, want)
				}
			}
			for i := range 2 {
				if got, want := binary.LittleEndian.Uint32(buf[16+i*4:]), math.Float32bits(tt.v.TexCoords[i]); got != want {
					t.Errorf("texCoords[%d] bits = %#x, want %#x", i, got, want)
				}
			}

			var back Vertex
			if err := back.UnmarshalBinary(buf); err != nil {
				t.Fatalf("UnmarshalBinary: %v", err)
			}
			if !sameVertexBits(back, tt.v) {
				t.Errorf("round trip = %v, want %v", back, tt.v)
			}
		})
	}
}

func TestVertexAppendBinary(t *testing.T) {
	v := Vertex{Position: f32.Vec4{1, 2, 3, 4}, TexCoords: f32.Vec2{5, 6}}
	prefix := []byte{0xAA, 0xBB}

	out, err := v.AppendBinary(prefix)
	if err != nil {
		t.Fatalf("AppendBinary: %v", err)
	}
	if len(out) != len(prefix)+VertexSize {
		t.Fatalf("len = %d, want %d", len(out), len(prefix)+VertexSize)
	}
	if out[0] != 0xAA || out[1] != 0xBB {
		t.Error("prefix overwritten")
	}
	if got := readF32(out, 2+16); got != 5 {
		t.Errorf("texCoords.u = %v, want 5", got)
	}
}

func TestVertexUnmarshalShort(t *testing.T) {
	var v Vertex
	err := v.UnmarshalBinary(make([]byte, VertexSize-1))
	if !errors.Is(err, glyphlayout.ErrShortBuffer) {
		t.Errorf("UnmarshalBinary(short) error = %v, want ErrShortBuffer", err)
	}
}

func sameVertexBits(a, b Vertex) bool {
	for i := range a.Position {
		if math.Float32bits(a.Position[i]) != math.Float32bits(b.Position[i]) {
			return false
		}
	}
	for i := range a.TexCoords {
		if math.Float32bits(a.TexCoords[i]) != math.Float32bits(b.TexCoords[i]) {
			return false
		}
	}
	return true
}
