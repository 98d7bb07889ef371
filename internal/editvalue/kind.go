// Package editvalue provides kind-tagged snapshots of, and non-owning
// references to, the editable fields of live engine objects.
//
// The set of kinds is closed: every field the inspector can edit is one of
// the Kind constants below. Read, Write and Equal switch over that set
// exhaustively instead of dispatching through an open interface.
package editvalue

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

type Kind uint8

const (
	Invalid Kind = iota
	U8
	U16
	U32
	U64
	I8
	I16
	I32
	I64
	F32
	F64
	String
	Bool
	Vec2
	Vec3
	Vec4
)

var kindNames = [...]string{
	Invalid: "invalid",
	U8:      "u8",
	U16:     "u16",
	U32:     "u32",
	U64:     "u64",
	I8:      "i8",
	I16:     "i16",
	I32:     "i32",
	I64:     "i64",
	F32:     "f32",
	F64:     "f64",
	String:  "string",
	Bool:    "bool",
	Vec2:    "vec2",
	Vec3:    "vec3",
	Vec4:    "vec4",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// IsVector reports whether the kind is one of the float vector kinds.
func (k Kind) IsVector() bool {
	return k == Vec2 || k == Vec3 || k == Vec4
}

// Field is the constraint of Go types that map onto a Kind.
type Field interface {
	uint8 | uint16 | uint32 | uint64 |
		int8 | int16 | int32 | int64 |
		float32 | float64 | string | bool |
		rl.Vector2 | rl.Vector3 | rl.Vector4
}

// KindOf returns the kind that T maps onto.
func KindOf[T Field]() Kind {
	var zero T
	return kindOfValue(zero)
}

func kindOfValue(v any) Kind {
	switch v.(type) {
	case uint8:
		return U8
	case uint16:
		return U16
	case uint32:
		return U32
	case uint64:
		return U64
	case int8:
		return I8
	case int16:
		return I16
	case int32:
		return I32
	case int64:
		return I64
	case float32:
		return F32
	case float64:
		return F64
	case string:
		return String
	case bool:
		return Bool
	case rl.Vector2:
		return Vec2
	case rl.Vector3:
		return Vec3
	case rl.Vector4:
		return Vec4
	}
	return Invalid
}
