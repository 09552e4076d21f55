// Package upload copies encoded glyph records verbatim into GPU-visible
// buffers through the wgpu HAL.
//
// The package does not own buffers beyond creating and destroying them on
// request. Data is padded with zeros to a 4-byte boundary on creation, and
// writes are bounds-checked against the size each buffer was created with.
// Avoiding a Write into a buffer the GPU is still reading is the
// caller's job.
//
//	up, err := upload.New(device, queue, upload.DefaultConfig())
//	...
//	vertBuf, err := up.Vertices("glyph_vertices", glyph.EncodeVertices(verts))
//	meshBuf, err := up.Vertices("text_mesh_vertices", textmesh.EncodeVertices(mesh))
//	idxBuf, err := up.Indices("text_mesh_indices", textmesh.EncodeIndices(indices))
//	uniforms := glyph.NewScreenUniforms(w, h, red)
//	uniformBuf, err := up.Uniforms("glyph_uniforms", &uniforms)
//	...
//	// next frame
//	uniforms = glyph.NewScreenUniforms(w, h, blue)
//	err = up.Write(uniformBuf, 0, &uniforms)
package upload
