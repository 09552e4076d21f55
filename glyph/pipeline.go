package glyph

import (
	_ "embed"

	"github.com/gogpu/glyphlayout/internal/shader"
	"github.com/gogpu/gputypes"
)

// Embedded glyph quad shader source.
//
//go:embed shaders/glyph.wgsl
var glyphShaderSource string

// Shader entry points and bind group slots declared by ShaderSource.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"

	// UniformsBinding is the binding of the Uniforms block in group 0,
	// visible to both stages.
	UniformsBinding = 0

	// AtlasBinding is the binding of the glyph atlas texture in group 0.
	AtlasBinding = 1

	// SamplerBinding is the binding of the atlas sampler in group 0.
	SamplerBinding = 2
)

// Shader locations of the Vertex attributes.
const (
	PositionLocation  = 0
	TexCoordsLocation = 1
)

// ShaderSource returns the WGSL source declaring VertexInput and Uniforms
// with the same layouts as Vertex and Uniforms.
func ShaderSource() string {
	return glyphShaderSource
}

// CompileShader compiles ShaderSource to SPIR-V.
func CompileShader() ([]uint32, error) {
	return shader.CompileSPIRV("glyph", glyphShaderSource)
}

// VertexBufferLayout returns the vertex buffer layout for glyph quads.
// Matches VertexInput in the glyph shader:
//
//	location 0: position   (vec4<f32>) offset  0
//	location 1: tex_coords (vec2<f32>) offset 16
func VertexBufferLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: VertexSize,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{
				Format:         gputypes.VertexFormatFloat32x4,
				Offset:         0,
				ShaderLocation: PositionLocation,
			},
			{
				Format:         gputypes.VertexFormatFloat32x2,
				Offset:         texCoordsOffset,
				ShaderLocation: TexCoordsLocation,
			},
		},
	}
}
