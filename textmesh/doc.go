// Package textmesh defines the per-vertex record of the text mesh path: a
// prebuilt mesh of glyph geometry drawn with the glyph uniform block and
// atlas.
//
// [Vertex] has the same shape as glyph.Vertex today, but it is a separate,
// independently versioned contract. It is declared here on its own, not as
// an alias or embedding, so the mesh path can change its attributes without
// touching the glyph quad path. Go will not assign one to the other without
// an explicit conversion, and that conversion stops compiling as soon as the
// shapes diverge.
//
// Layout (stride 24, little-endian binary32):
//
//	 0 position   vec4<f32>
//	16 tex_coords vec2<f32>
//
// Meshes are drawn indexed with [IndexFormat] (uint16); [EncodeIndices]
// produces the index buffer bytes.
package textmesh
