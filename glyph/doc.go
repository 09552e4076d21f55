// Package glyph defines the GPU records of the glyph quad path: the
// per-vertex attribute record [Vertex] and the per-draw constant block
// [Uniforms].
//
// Both are inert value types. A glyph mesh builder produces []Vertex,
// [EncodeVertices] writes them into one contiguous buffer, and that buffer is
// uploaded once and never rewritten in place. A fresh [Uniforms] is built for
// every draw (or frame), typically with [NewScreenUniforms].
//
// The byte layout is the contract with the shader in [ShaderSource]:
//
//	Vertex   (stride 24)     Uniforms (size 144)
//	  0 position  vec4<f32>    0 model_matrix            mat4x4<f32>
//	 16 tex_coords vec2<f32>  64 view_projection_matrix  mat4x4<f32>
//	                         128 foreground_color        vec4<f32>
//
// All values are little-endian IEEE-754 binary32.
//
// The text mesh path has its own vertex record in package textmesh. The two
// have the same shape today but are separate contracts; neither may be
// rewritten in terms of the other.
package glyph
