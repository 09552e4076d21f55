package glyphlayout

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for glyphlayout and the record packages.
var (
	// ErrLayoutMismatch is returned when a record's memory layout differs
	// from the layout the shader stage expects.
	ErrLayoutMismatch = errors.New("glyphlayout: layout mismatch")

	// ErrShortBuffer is returned when decoding from a slice smaller than
	// the record size.
	ErrShortBuffer = errors.New("glyphlayout: buffer too short")

	// ErrBufferLength is returned when a contiguous vertex buffer is not a
	// whole multiple of the vertex stride.
	ErrBufferLength = errors.New("glyphlayout: buffer length is not a multiple of the stride")
)

// MismatchError lists every difference found by Layout.Verify or
// VerifyVertexBuffer. It matches ErrLayoutMismatch with errors.Is.
type MismatchError struct {
	// Layout is the name of the record that was checked.
	Layout string

	// Problems holds one human-readable entry per difference.
	Problems []string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%v: %s: %s", ErrLayoutMismatch, e.Layout, strings.Join(e.Problems, "; "))
}

// Is reports whether target is ErrLayoutMismatch.
func (e *MismatchError) Is(target error) bool {
	return target == ErrLayoutMismatch
}

// ShortBufferError builds an ErrShortBuffer error carrying the sizes involved.
func ShortBufferError(record string, got, want int) error {
	return fmt.Errorf("%w: %s needs %d bytes, got %d", ErrShortBuffer, record, want, got)
}
