// Package shader compiles the canonical WGSL declarations shipped with the
// record packages.
package shader

import (
	"errors"
	"fmt"

	"github.com/gogpu/naga"
)

// ErrEmptySource is returned when the WGSL source is empty.
var ErrEmptySource = errors.New("shader: WGSL source is empty")

// CompileSPIRV compiles WGSL source to SPIR-V words. A successful compile
// proves the struct declarations the layouts are checked against are valid
// WGSL, with members naga accepts at the declared types.
func CompileSPIRV(label, wgsl string) ([]uint32, error) {
	if wgsl == "" {
		return nil, fmt.Errorf("%s: %w", label, ErrEmptySource)
	}

	spirvBytes, err := naga.Compile(wgsl)
	if err != nil {
		return nil, fmt.Errorf("compile %s shader: %w", label, err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("compile %s shader: SPIR-V length %d is not word aligned", label, len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}
