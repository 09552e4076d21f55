package glyphlayout_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/gogpu/glyphlayout"
	"github.com/gogpu/glyphlayout/glyph"
	"github.com/gogpu/glyphlayout/textmesh"
)

// TestRecordContracts checks every GPU record against its declared layout.
func TestRecordContracts(t *testing.T) {
	tests := []struct {
		name   string
		record any
		want   glyphlayout.Layout
	}{
		{"glyph.Vertex", glyph.Vertex{}, glyph.VertexContract()},
		{"glyph.Uniforms", glyph.Uniforms{}, glyph.UniformsContract()},
		{"textmesh.Vertex", textmesh.Vertex{}, textmesh.VertexContract()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := glyphlayout.LayoutOf(tt.record)
			if err := got.Verify(tt.want); err != nil {
				t.Error(err)
			}
			if !got.Packed() {
				t.Errorf("%s has padding", tt.name)
			}
		})
	}
}

// TestVertexTypesAreDistinct guards against the two vertex records being
// collapsed into one type through an alias or embedding.
func TestVertexTypesAreDistinct(t *testing.T) {
	glyphType := reflect.TypeOf(glyph.Vertex{})
	meshType := reflect.TypeOf(textmesh.Vertex{})

	if glyphType == meshType {
		t.Fatal("glyph.Vertex and textmesh.Vertex are the same type")
	}
	if glyphType.PkgPath() == meshType.PkgPath() {
		t.Errorf("both vertex types declared in %s", glyphType.PkgPath())
	}
	if glyphType.AssignableTo(meshType) || meshType.AssignableTo(glyphType) {
		t.Error("vertex types are assignable to each other")
	}

	var glyphVertex any = glyph.Vertex{}
	if _, ok := glyphVertex.(textmesh.Vertex); ok {
		t.Error("glyph.Vertex satisfies a textmesh.Vertex type assertion")
	}

	for _, typ := range []reflect.Type{glyphType, meshType} {
		for i := 0; i < typ.NumField(); i++ {
			if typ.Field(i).Anonymous {
				t.Errorf("%s embeds %s", typ, typ.Field(i).Type)
			}
		}
	}
}

// TestShadersShareUniformBlock checks that both shader paths declare the
// uniform block that glyph.Uniforms encodes.
func TestShadersShareUniformBlock(t *testing.T) {
	glyphBlock := uniformBlock(t, glyph.ShaderSource())
	meshBlock := uniformBlock(t, textmesh.ShaderSource())
	if glyphBlock != meshBlock {
		t.Errorf("uniform blocks differ:\nglyph:\n%s\ntextmesh:\n%s", glyphBlock, meshBlock)
	}
}

func uniformBlock(t *testing.T, source string) string {
	t.Helper()
	start := strings.Index(source, "struct Uniforms {")
	if start < 0 {
		t.Fatal("shader does not declare struct Uniforms")
	}
	end := strings.Index(source[start:], "}")
	if end < 0 {
		t.Fatal("unterminated struct Uniforms")
	}
	return source[start : start+end+1]
}
