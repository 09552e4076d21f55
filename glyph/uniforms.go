package glyph

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/gogpu/glyphlayout"
	"golang.org/x/image/math/f32"
)

// UniformsSize is the byte size of the per-draw uniform block.
const UniformsSize = 144

// Byte offsets of the Uniforms fields. Every field starts on a 16-byte
// boundary as WGSL requires for mat4x4<f32> and vec4<f32> in uniform space.
const (
	modelMatrixOffset          = 0
	viewProjectionMatrixOffset = 64
	foregroundColorOffset      = 128
)

// Uniforms is the per-draw constant block shared by the vertex and fragment
// stages. Matches the Uniforms struct in the glyph shader (see ShaderSource).
// Size: 144 bytes, no padding.
type Uniforms struct {
	ModelMatrix          glyphlayout.Mat4 // offset   0: glyph-local to world, column-major (64 bytes)
	ViewProjectionMatrix glyphlayout.Mat4 // offset  64: combined view and projection, column-major (64 bytes)
	ForegroundColor      f32.Vec4         // offset 128: text fill color r, g, b, a (16 bytes)
}

// NewScreenUniforms returns the uniforms for drawing text in pixel
// coordinates on a width x height target: identity model matrix, an
// orthographic projection with (0, 0) at the top-left corner and depth in
// [0, 1], and the given fill color.
//
// A width or height below 1 (a minimized drawable) is treated as 1 so the
// projection stays finite.
func NewScreenUniforms(width, height int, color f32.Vec4) Uniforms {
	width = max(width, 1)
	height = max(height, 1)
	return Uniforms{
		ModelMatrix:          glyphlayout.Identity(),
		ViewProjectionMatrix: glyphlayout.Ortho(0, float32(width), float32(height), 0, 0, 1),
		ForegroundColor:      color,
	}
}

// Size returns the size of the Uniforms struct in bytes.
func (u *Uniforms) Size() int {
	return int(unsafe.Sizeof(*u))
}

// Marshal serializes the uniforms into a 144-byte buffer suitable for GPU upload.
func (u *Uniforms) Marshal() []byte {
	buf := make([]byte, UniformsSize)
	u.put(buf)
	return buf
}

// AppendBinary appends the 144-byte encoding of u to b.
func (u *Uniforms) AppendBinary(b []byte) ([]byte, error) {
	n := len(b)
	b = append(b, make([]byte, UniformsSize)...)
	u.put(b[n:])
	return b, nil
}

// UnmarshalBinary decodes uniforms from the first 144 bytes of data.
func (u *Uniforms) UnmarshalBinary(data []byte) error {
	if len(data) < UniformsSize {
		return glyphlayout.ShortBufferError("glyph.Uniforms", len(data), UniformsSize)
	}
	for i := range 16 {
		u.ModelMatrix[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[modelMatrixOffset+i*4:]))
	}
	for i := range 16 {
		u.ViewProjectionMatrix[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[viewProjectionMatrixOffset+i*4:]))
	}
	for i := range 4 {
		u.ForegroundColor[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[foregroundColorOffset+i*4:]))
	}
	return nil
}

func (u *Uniforms) put(buf []byte) {
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[modelMatrixOffset+i*4:], math.Float32bits(u.ModelMatrix[i]))
	}
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[viewProjectionMatrixOffset+i*4:], math.Float32bits(u.ViewProjectionMatrix[i]))
	}
	for i := range 4 {
		binary.LittleEndian.PutUint32(buf[foregroundColorOffset+i*4:], math.Float32bits(u.ForegroundColor[i]))
	}
}

// UniformsContract returns the layout the glyph shader declares for its
// uniform block.
func UniformsContract() glyphlayout.Layout {
	return glyphlayout.Layout{
		Name: "glyph.Uniforms",
		Size: UniformsSize,
		Fields: []glyphlayout.Field{
			{Name: "ModelMatrix", Offset: modelMatrixOffset, Size: 64},
			{Name: "ViewProjectionMatrix", Offset: viewProjectionMatrixOffset, Size: 64},
			{Name: "ForegroundColor", Offset: foregroundColorOffset, Size: 16},
		},
	}
}
