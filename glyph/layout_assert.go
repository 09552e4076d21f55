package glyph

import "unsafe"

// Compile-time layout checks. An index other than zero into a one-element
// array fails to build, as does a negative (overflowing) constant, so each
// line pins one size or offset exactly.
func _() {
	var x [1]struct{}
	_ = x[unsafe.Sizeof(Vertex{})-VertexSize]
	_ = x[VertexSize-unsafe.Sizeof(Vertex{})]
	_ = x[unsafe.Offsetof(Vertex{}.Position)]
	_ = x[unsafe.Offsetof(Vertex{}.TexCoords)-texCoordsOffset]
	_ = x[texCoordsOffset-unsafe.Offsetof(Vertex{}.TexCoords)]

	_ = x[unsafe.Sizeof(Uniforms{})-UniformsSize]
	_ = x[UniformsSize-unsafe.Sizeof(Uniforms{})]
	_ = x[unsafe.Offsetof(Uniforms{}.ModelMatrix)-modelMatrixOffset]
	_ = x[unsafe.Offsetof(Uniforms{}.ViewProjectionMatrix)-viewProjectionMatrixOffset]
	_ = x[viewProjectionMatrixOffset-unsafe.Offsetof(Uniforms{}.ViewProjectionMatrix)]
	_ = x[unsafe.Offsetof(Uniforms{}.ForegroundColor)-foregroundColorOffset]
	_ = x[foregroundColorOffset-unsafe.Offsetof(Uniforms{}.ForegroundColor)]
}
