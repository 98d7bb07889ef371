package editvalue

import (
	"fmt"
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Value is a by-value snapshot of a field, tagged with its Kind.
// The zero Value has kind Invalid.
type Value struct {
	kind Kind
	raw  any
}

// ValueOf snapshots v.
func ValueOf[T Field](v T) Value {
	return Value{kind: kindOfValue(v), raw: v}
}

// As returns the payload of v if it holds a T.
func As[T Field](v Value) (T, bool) {
	t, ok := v.raw.(T)
	return t, ok
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsValid() bool {
	return v.kind != Invalid
}

// Equal compares kind and payload. Vectors compare component-wise, scalars and
// strings exactly, so NaN never equals itself.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case Invalid:
		return true
	case Vec2:
		a, b := v.raw.(rl.Vector2), o.raw.(rl.Vector2)
		return a.X == b.X && a.Y == b.Y
	case Vec3:
		a, b := v.raw.(rl.Vector3), o.raw.(rl.Vector3)
		return a.X == b.X && a.Y == b.Y && a.Z == b.Z
	case Vec4:
		a, b := v.raw.(rl.Vector4), o.raw.(rl.Vector4)
		return a.X == b.X && a.Y == b.Y && a.Z == b.Z && a.W == b.W
	default:
		return v.raw == o.raw
	}
}

func (v Value) String() string {
	switch x := v.raw.(type) {
	case float32:
		return formatFloat(x)
	case float64:
		return strconv.FormatFloat(x, 'f', 3, 64)
	case string:
		return strconv.Quote(x)
	case rl.Vector2:
		return fmt.Sprintf("(%s, %s)", formatFloat(x.X), formatFloat(x.Y))
	case rl.Vector3:
		return fmt.Sprintf("(%s, %s, %s)", formatFloat(x.X), formatFloat(x.Y), formatFloat(x.Z))
	case rl.Vector4:
		return fmt.Sprintf("(%s, %s, %s, %s)", formatFloat(x.X), formatFloat(x.Y), formatFloat(x.Z), formatFloat(x.W))
	case nil:
		return "<invalid>"
	default:
		return fmt.Sprint(x)
	}
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', 3, 32)
}
