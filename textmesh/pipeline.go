package textmesh

import (
	_ "embed"

	"github.com/gogpu/glyphlayout/internal/shader"
	"github.com/gogpu/gputypes"
)

//go:embed shaders/text_mesh.wgsl
var textMeshShaderSource string

// Entry points of the text mesh shader.
const (
	VertexEntryPoint   = "vs_mesh"
	FragmentEntryPoint = "fs_mesh"
)

// ShaderSource returns the WGSL source declaring the text mesh VertexInput.
// The uniform block it declares is the glyph path's (glyph.Uniforms).
func ShaderSource() string {
	return textMeshShaderSource
}

// CompileShader compiles ShaderSource to SPIR-V.
func CompileShader() ([]uint32, error) {
	return shader.CompileSPIRV("text_mesh", textMeshShaderSource)
}

// VertexBufferLayout returns the vertex buffer layout for text meshes.
//
//	location 0: position   (vec4<f32>) offset  0
//	location 1: tex_coords (vec2<f32>) offset 16
func VertexBufferLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: VertexSize,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 0},               // position
			{Format: gputypes.VertexFormatFloat32x2, Offset: texCoordsOffset, ShaderLocation: 1}, // tex_coords
		},
	}
}
