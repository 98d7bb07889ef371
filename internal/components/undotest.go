package components

import (
	"mirgo/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// UndoTest carries one field of every editable kind so each kind can be
// exercised through the inspector and history.
type UndoTest struct {
	engine.BaseComponent

	U8  uint8
	U16 uint16
	U32 uint32
	U64 uint64

	I8  int8
	I16 int16
	I32 int32
	I64 int64

	Float  float32
	Double float64
	String string
	Bool   bool

	Vec2 rl.Vector2
	Vec3 rl.Vector3
	Vec4 rl.Vector4
}

func NewUndoTest() *UndoTest {
	return &UndoTest{
		U8: 0, U16: 1, U32: 2, U64: 3,
		I8: 4, I16: 5, I32: 6, I64: 7,
		Float:  8,
		Double: 9,
		String: "10",
		Bool:   true,
		Vec2:   rl.Vector2{X: 12, Y: 12},
		Vec3:   rl.Vector3{X: 13, Y: 13, Z: 13},
		Vec4:   rl.Vector4{X: 14, Y: 14, Z: 14, W: 14},
	}
}

func (u *UndoTest) TypeName() string {
	return "UndoTest"
}
