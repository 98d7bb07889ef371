package editvalue

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
)

// ErrKindMismatch is returned when a Value is written through a Ref of a different kind.
var ErrKindMismatch = errors.New("value kind mismatch")

// ErrNilRef is returned when reading or writing through an empty Ref.
var ErrNilRef = errors.New("nil value reference")

// Ref is a non-owning handle to a live field of a known Kind. It does not
// keep the owning component alive in any meaningful sense: callers must check
// that the owner still exists before writing through it.
type Ref struct {
	kind Kind
	ptr  any
}

// Of builds a Ref to the field p points at.
func Of[T Field](p *T) Ref {
	if p == nil {
		return Ref{}
	}
	return Ref{kind: KindOf[T](), ptr: p}
}

// RefOf builds a Ref from an untyped pointer, as produced by reflection.
// It reports false if ptr is not a non-nil pointer to one of the kinds.
func RefOf(ptr any) (Ref, bool) {
	switch p := ptr.(type) {
	case *uint8:
		return Of(p), p != nil
	case *uint16:
		return Of(p), p != nil
	case *uint32:
		return Of(p), p != nil
	case *uint64:
		return Of(p), p != nil
	case *int8:
		return Of(p), p != nil
	case *int16:
		return Of(p), p != nil
	case *int32:
		return Of(p), p != nil
	case *int64:
		return Of(p), p != nil
	case *float32:
		return Of(p), p != nil
	case *float64:
		return Of(p), p != nil
	case *string:
		return Of(p), p != nil
	case *bool:
		return Of(p), p != nil
	case *rl.Vector2:
		return Of(p), p != nil
	case *rl.Vector3:
		return Of(p), p != nil
	case *rl.Vector4:
		return Of(p), p != nil
	}
	return Ref{}, false
}

func (r Ref) Kind() Kind {
	return r.kind
}

func (r Ref) Valid() bool {
	return r.kind != Invalid && r.ptr != nil
}

// Same reports whether both refs point at the same field.
func (r Ref) Same(o Ref) bool {
	return r.kind == o.kind && r.ptr == o.ptr
}

// Read snapshots the current content of the field.
func (r Ref) Read() Value {
	switch p := r.ptr.(type) {
	case *uint8:
		return ValueOf(*p)
	case *uint16:
		return ValueOf(*p)
	case *uint32:
		return ValueOf(*p)
	case *uint64:
		return ValueOf(*p)
	case *int8:
		return ValueOf(*p)
	case *int16:
		return ValueOf(*p)
	case *int32:
		return ValueOf(*p)
	case *int64:
		return ValueOf(*p)
	case *float32:
		return ValueOf(*p)
	case *float64:
		return ValueOf(*p)
	case *string:
		return ValueOf(*p)
	case *bool:
		return ValueOf(*p)
	case *rl.Vector2:
		return ValueOf(*p)
	case *rl.Vector3:
		return ValueOf(*p)
	case *rl.Vector4:
		return ValueOf(*p)
	}
	return Value{}
}

// Write stores v into the field. The kinds must match exactly; nothing is
// converted or truncated.
func (r Ref) Write(v Value) error {
	if !r.Valid() {
		return ErrNilRef
	}
	if v.kind != r.kind {
		return errors.Wrapf(ErrKindMismatch, "write %s into %s field", v.kind, r.kind)
	}
	switch p := r.ptr.(type) {
	case *uint8:
		*p = v.raw.(uint8)
	case *uint16:
		*p = v.raw.(uint16)
	case *uint32:
		*p = v.raw.(uint32)
	case *uint64:
		*p = v.raw.(uint64)
	case *int8:
		*p = v.raw.(int8)
	case *int16:
		*p = v.raw.(int16)
	case *int32:
		*p = v.raw.(int32)
	case *int64:
		*p = v.raw.(int64)
	case *float32:
		*p = v.raw.(float32)
	case *float64:
		*p = v.raw.(float64)
	case *string:
		*p = v.raw.(string)
	case *bool:
		*p = v.raw.(bool)
	case *rl.Vector2:
		*p = v.raw.(rl.Vector2)
	case *rl.Vector3:
		*p = v.raw.(rl.Vector3)
	case *rl.Vector4:
		*p = v.raw.(rl.Vector4)
	}
	return nil
}
