package glyphlayout

import "golang.org/x/image/math/f32"

// Mat4 is a 4x4 float32 matrix stored column-major: element m[c*4+r] is
// column c, row r. Each group of four consecutive floats is one column,
// which is the storage order of WGSL mat4x4<f32> and Metal float4x4.
//
// A Mat4 occupies 64 bytes with every column on a 16-byte boundary
// relative to the start of the matrix.
type Mat4 [16]float32

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Ortho returns an orthographic projection mapping the box
// [left, right] x [bottom, top] x [near, far] onto clip space with x and y in
// [-1, 1] and depth in [0, 1].
//
// Screen-space text uses Ortho(0, width, height, 0, 0, 1) so that pixel (0, 0)
// is the top-left corner.
//
// left must differ from right, bottom from top, and near from far; a
// degenerate box yields infinite scale factors.
func Ortho(left, right, bottom, top, near, far float32) Mat4 {
	sx := 1 / (right - left)
	sy := 1 / (top - bottom)
	sz := 1 / (far - near)
	return Mat4{
		2 * sx, 0, 0, 0,
		0, 2 * sy, 0, 0,
		0, 0, sz, 0,
		-(right + left) * sx, -(top + bottom) * sy, -near * sz, 1,
	}
}

// Translate returns a translation matrix.
func Translate(x, y, z float32) Mat4 {
	m := Identity()
	m[12], m[13], m[14] = x, y, z
	return m
}

// Scale returns a scaling matrix.
func Scale(x, y, z float32) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// Col returns column i.
func (m Mat4) Col(i int) f32.Vec4 {
	return f32.Vec4{m[i*4], m[i*4+1], m[i*4+2], m[i*4+3]}
}

// At returns the element at row r, column c.
func (m Mat4) At(r, c int) float32 {
	return m[c*4+r]
}

// Mul returns m * n. Applied to a vector, n acts first.
func (m Mat4) Mul(n Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+r] * n[c*4+k]
			}
			out[c*4+r] = sum
		}
	}
	return out
}

// Transform returns m * v.
func (m Mat4) Transform(v f32.Vec4) f32.Vec4 {
	var out f32.Vec4
	for r := 0; r < 4; r++ {
		out[r] = m[r]*v[0] + m[4+r]*v[1] + m[8+r]*v[2] + m[12+r]*v[3]
	}
	return out
}

// Transpose returns the transpose of m. Useful when a collaborator produces
// row-major data.
func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[r*4+c] = m[c*4+r]
		}
	}
	return out
}
