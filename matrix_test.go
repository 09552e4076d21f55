package glyphlayout

import (
	"math"
	"testing"
	"unsafe"

	"golang.org/x/image/math/f32"
)

func vecNear(a, b f32.Vec4, eps float64) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > eps {
			return false
		}
	}
	return true
}

func TestMat4Size(t *testing.T) {
	if got := unsafe.Sizeof(Mat4{}); got != 64 {
		t.Errorf("sizeof(Mat4) = %d, want 64", got)
	}
}

func TestIdentity(t *testing.T) {
	m := Identity()
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			want := float32(0)
			if r == c {
				want = 1
			}
			if got := m.At(r, c); got != want {
				t.Errorf("At(%d, %d) = %v, want %v", r, c, got, want)
			}
		}
	}

	v := f32.Vec4{3, -4, 5, 1}
	if got := m.Transform(v); got != v {
		t.Errorf("Identity().Transform(%v) = %v", v, got)
	}
}

func TestColumnMajorStorage(t *testing.T) {
	m := Translate(7, 8, 9)

	// Translation lives in the fourth column, i.e. the last four floats.
	if got := m.Col(3); got != (f32.Vec4{7, 8, 9, 1}) {
		t.Errorf("Col(3) = %v, want (7, 8, 9, 1)", got)
	}
	if m[12] != 7 || m[13] != 8 || m[14] != 9 {
		t.Errorf("translation stored at %v, want indices 12..14", m)
	}
	if m.At(0, 3) != 7 {
		t.Errorf("At(0, 3) = %v, want 7", m.At(0, 3))
	}

	got := m.Transform(f32.Vec4{1, 1, 1, 1})
	if got != (f32.Vec4{8, 9, 10, 1}) {
		t.Errorf("Transform = %v, want (8, 9, 10, 1)", got)
	}
}

func TestOrtho(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		in   f32.Vec4
		want f32.Vec4
	}{
		{"screen top-left", Ortho(0, 640, 480, 0, 0, 1), f32.Vec4{0, 0, 0, 1}, f32.Vec4{-1, 1, 0, 1}},
		{"screen bottom-right", Ortho(0, 640, 480, 0, 0, 1), f32.Vec4{640, 480, 0, 1}, f32.Vec4{1, -1, 0, 1}},
		{"screen far plane", Ortho(0, 640, 480, 0, 0, 1), f32.Vec4{320, 240, 1, 1}, f32.Vec4{0, 0, 1, 1}},
		{"symmetric", Ortho(-2, 2, -1, 1, 1, 3), f32.Vec4{2, 1, 1, 1}, f32.Vec4{1, 1, 0, 1}},
		{"symmetric far", Ortho(-2, 2, -1, 1, 1, 3), f32.Vec4{-2, -1, 3, 1}, f32.Vec4{-1, -1, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Transform(tt.in); !vecNear(got, tt.want, 1e-6) {
				t.Errorf("Transform(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMul(t *testing.T) {
	s := Scale(2, 3, 4)
	tr := Translate(1, 1, 1)

	if got := Identity().Mul(s); got != s {
		t.Errorf("I*S = %v, want %v", got, s)
	}

	// Translate after scale: (1,1,1) -> (2,3,4) -> (3,4,5).
	v := f32.Vec4{1, 1, 1, 1}
	if got := tr.Mul(s).Transform(v); got != (f32.Vec4{3, 4, 5, 1}) {
		t.Errorf("(T*S)v = %v, want (3, 4, 5, 1)", got)
	}
	// Scale after translate: (1,1,1) -> (2,2,2) -> (4,6,8).
	if got := s.Mul(tr).Transform(v); got != (f32.Vec4{4, 6, 8, 1}) {
		t.Errorf("(S*T)v = %v, want (4, 6, 8, 1)", got)
	}
}

func TestTranspose(t *testing.T) {
	m := Translate(1, 2, 3)
	tm := m.Transpose()
	if tm[3] != 1 || tm[7] != 2 || tm[11] != 3 {
		t.Errorf("Transpose = %v, want translation in the last row", tm)
	}
	if tm.Transpose() != m {
		t.Error("Transpose is not an involution")
	}
}
