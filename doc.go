// Package glyphlayout defines the binary layout contract shared by a CPU-side
// text renderer and the GPU shader stage that draws its glyphs.
//
// # Overview
//
// Three records cross the CPU/GPU boundary:
//
//   - [github.com/gogpu/glyphlayout/glyph.Vertex]: per-vertex attributes of a glyph quad
//   - [github.com/gogpu/glyphlayout/glyph.Uniforms]: per-draw transform and color constants
//   - [github.com/gogpu/glyphlayout/textmesh.Vertex]: per-vertex attributes of the text mesh path
//
// The shader stage binds these records positionally, by byte offset, so their
// size and field offsets are the whole contract:
//
//	record            field                 offset  size
//	glyph.Vertex      Position              0       16
//	                  TexCoords             16      8     (stride 24)
//	glyph.Uniforms    ModelMatrix           0       64
//	                  ViewProjectionMatrix  64      64
//	                  ForegroundColor       128     16    (size 144)
//	textmesh.Vertex   Position              0       16
//	                  TexCoords             16      8     (stride 24)
//
// Any change to field order, width or packing is a breaking change for the
// consuming shaders.
//
// # Verification
//
// Layouts are pinned twice. Each record package carries constant assertions on
// unsafe.Sizeof and unsafe.Offsetof, so an edit that moves a field fails to
// compile. At test time [LayoutOf] reflects the real Go layout and
// [Layout.Verify] compares it against the declared contract; [VerifyVertexBuffer]
// does the same for the gputypes vertex buffer descriptions handed to pipeline
// builders.
//
// # Matrices
//
// [Mat4] is column-major, matching WGSL mat4x4<f32> and Metal float4x4.
// [Ortho] builds the screen-space projection used by the glyph path, with depth
// mapped to [0, 1].
//
// # Logging
//
// By default the module produces no log output. Call [SetLogger] to route
// diagnostics from the upload package to a *slog.Logger.
package glyphlayout
