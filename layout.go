package glyphlayout

import (
	"fmt"
	"reflect"
)

// Field describes one field of a GPU-visible record.
type Field struct {
	Name   string
	Offset uintptr
	Size   uintptr
}

// End returns the offset one past the last byte of the field.
func (f Field) End() uintptr { return f.Offset + f.Size }

// Layout describes the memory layout of a GPU-visible record: its total size,
// alignment and fields in declaration order.
//
// Record packages declare their contract as a Layout literal; LayoutOf
// reflects the layout the Go compiler actually produced. The two are compared
// with Verify.
type Layout struct {
	Name   string
	Size   uintptr
	Align  uintptr
	Fields []Field
}

// LayoutOf returns the memory layout of the struct held in v (or pointed to
// by v). It panics if v is not a struct or a pointer to one.
func LayoutOf(v any) Layout {
	t := reflect.TypeOf(v)
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("glyphlayout: LayoutOf(%T): not a struct", v))
	}

	l := Layout{
		Name:   t.String(),
		Size:   t.Size(),
		Align:  uintptr(t.Align()),
		Fields: make([]Field, t.NumField()),
	}
	for i := range l.Fields {
		sf := t.Field(i)
		l.Fields[i] = Field{
			Name:   sf.Name,
			Offset: sf.Offset,
			Size:   sf.Type.Size(),
		}
	}
	return l
}

// FieldAt returns the field with the given name.
func (l Layout) FieldAt(name string) (Field, bool) {
	for _, f := range l.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Packed reports whether the record has no interior or trailing padding:
// every field starts where the previous one ends and the last field ends at
// Size.
func (l Layout) Packed() bool {
	var next uintptr
	for _, f := range l.Fields {
		if f.Offset != next {
			return false
		}
		next = f.End()
	}
	return next == l.Size
}

// Verify compares l, usually obtained from LayoutOf, against the declared
// layout want. It returns nil when total size, field count, and every
// field's name, offset and size agree, and a *MismatchError listing each
// difference otherwise.
//
// Alignment is only compared when want.Align is non-zero.
func (l Layout) Verify(want Layout) error {
	var problems []string

	if l.Size != want.Size {
		problems = append(problems, fmt.Sprintf("size %d, want %d", l.Size, want.Size))
	}
	if want.Align != 0 && l.Align != want.Align {
		problems = append(problems, fmt.Sprintf("align %d, want %d", l.Align, want.Align))
	}
	if len(l.Fields) != len(want.Fields) {
		problems = append(problems, fmt.Sprintf("%d fields, want %d", len(l.Fields), len(want.Fields)))
	}

	n := min(len(l.Fields), len(want.Fields))
	for i := 0; i < n; i++ {
		got, exp := l.Fields[i], want.Fields[i]
		if got.Name != exp.Name {
			problems = append(problems, fmt.Sprintf("field %d is %s, want %s", i, got.Name, exp.Name))
		}
		if got.Offset != exp.Offset {
			problems = append(problems, fmt.Sprintf("%s at offset %d, want %d", exp.Name, got.Offset, exp.Offset))
		}
		if got.Size != exp.Size {
			problems = append(problems, fmt.Sprintf("%s is %d bytes, want %d", exp.Name, got.Size, exp.Size))
		}
	}

	if len(problems) == 0 {
		return nil
	}
	name := want.Name
	if name == "" {
		name = l.Name
	}
	return &MismatchError{Layout: name, Problems: problems}
}
