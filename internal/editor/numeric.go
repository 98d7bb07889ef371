package editor

import (
	"math"
	"strconv"
	"strings"

	"mirgo/internal/editvalue"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
)

// componentCount is how many number widgets a field of kind k needs.
func componentCount(k editvalue.Kind) int {
	switch k {
	case editvalue.Vec2:
		return 2
	case editvalue.Vec3:
		return 3
	case editvalue.Vec4:
		return 4
	case editvalue.String, editvalue.Bool, editvalue.Invalid:
		return 0
	}
	return 1
}

func isFloatKind(k editvalue.Kind) bool {
	return k == editvalue.F32 || k == editvalue.F64 || k.IsVector()
}

// formatNumberAt renders component i of v. Integers are exact; floats use prec decimals.
func formatNumberAt(v editvalue.Value, i int, prec int) string {
	switch v.Kind() {
	case editvalue.U8:
		x, _ := editvalue.As[uint8](v)
		return strconv.FormatUint(uint64(x), 10)
	case editvalue.U16:
		x, _ := editvalue.As[uint16](v)
		return strconv.FormatUint(uint64(x), 10)
	case editvalue.U32:
		x, _ := editvalue.As[uint32](v)
		return strconv.FormatUint(uint64(x), 10)
	case editvalue.U64:
		x, _ := editvalue.As[uint64](v)
		return strconv.FormatUint(x, 10)
	case editvalue.I8:
		x, _ := editvalue.As[int8](v)
		return strconv.FormatInt(int64(x), 10)
	case editvalue.I16:
		x, _ := editvalue.As[int16](v)
		return strconv.FormatInt(int64(x), 10)
	case editvalue.I32:
		x, _ := editvalue.As[int32](v)
		return strconv.FormatInt(int64(x), 10)
	case editvalue.I64:
		x, _ := editvalue.As[int64](v)
		return strconv.FormatInt(x, 10)
	}
	if f, ok := floatAt(v, i); ok {
		return strconv.FormatFloat(f, 'f', prec, 64)
	}
	return ""
}

// parseNumberAt returns v with component i set from typed text. Integer kinds
// parse as integers so 64-bit values survive exactly; out of range input
// saturates and a decimal is rounded.
func parseNumberAt(v editvalue.Value, i int, text string) (editvalue.Value, bool) {
	text = strings.TrimSpace(text)
	k := v.Kind()
	if isFloatKind(k) {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return v, false
		}
		return setFloatAt(v, i, f), true
	}

	switch k {
	case editvalue.U8, editvalue.U16, editvalue.U32, editvalue.U64:
		if strings.HasPrefix(text, "-") {
			if _, err := strconv.ParseFloat(text, 64); err != nil {
				return v, false
			}
			return zeroOf(k), true
		}
		u, err := strconv.ParseUint(text, 10, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return parseDecimal(k, text)
		}
		return unsignedValue(k, u), true
	case editvalue.I8, editvalue.I16, editvalue.I32, editvalue.I64:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return parseDecimal(k, text)
		}
		return signedValue(k, n), true
	}
	return v, false
}

// parseDecimal handles text like "2.5" typed into an integer field.
func parseDecimal(k editvalue.Kind, text string) (editvalue.Value, bool) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) {
		return zeroOf(k), false
	}
	return offsetNumberAt(zeroOf(k), 0, f), true
}

// offsetNumberAt returns v with delta added to component i. Integer kinds add
// the rounded delta in integer space and saturate at their range.
func offsetNumberAt(v editvalue.Value, i int, delta float64) editvalue.Value {
	switch v.Kind() {
	case editvalue.U8:
		x, _ := editvalue.As[uint8](v)
		return editvalue.ValueOf(uint8(offsetUint(uint64(x), delta, math.MaxUint8)))
	case editvalue.U16:
		x, _ := editvalue.As[uint16](v)
		return editvalue.ValueOf(uint16(offsetUint(uint64(x), delta, math.MaxUint16)))
	case editvalue.U32:
		x, _ := editvalue.As[uint32](v)
		return editvalue.ValueOf(uint32(offsetUint(uint64(x), delta, math.MaxUint32)))
	case editvalue.U64:
		x, _ := editvalue.As[uint64](v)
		return editvalue.ValueOf(offsetUint(x, delta, math.MaxUint64))
	case editvalue.I8:
		x, _ := editvalue.As[int8](v)
		return editvalue.ValueOf(int8(offsetInt(int64(x), delta, math.MinInt8, math.MaxInt8)))
	case editvalue.I16:
		x, _ := editvalue.As[int16](v)
		return editvalue.ValueOf(int16(offsetInt(int64(x), delta, math.MinInt16, math.MaxInt16)))
	case editvalue.I32:
		x, _ := editvalue.As[int32](v)
		return editvalue.ValueOf(int32(offsetInt(int64(x), delta, math.MinInt32, math.MaxInt32)))
	case editvalue.I64:
		x, _ := editvalue.As[int64](v)
		return editvalue.ValueOf(offsetInt(x, delta, math.MinInt64, math.MaxInt64))
	}
	if f, ok := floatAt(v, i); ok {
		return setFloatAt(v, i, f+delta)
	}
	return v
}

func offsetUint(x uint64, delta float64, hi uint64) uint64 {
	step := math.Round(delta)
	switch {
	case math.IsNaN(step) || step == 0:
		return x
	case step >= 1<<63:
		return hi
	case step <= -(1 << 63):
		return 0
	case step > 0:
		s := uint64(step)
		if s > hi || x > hi-s {
			return hi
		}
		return x + s
	}
	s := uint64(-step)
	if x < s {
		return 0
	}
	return x - s
}

func offsetInt(x int64, delta float64, lo, hi int64) int64 {
	step := math.Round(delta)
	switch {
	case math.IsNaN(step) || step == 0:
		return x
	case step >= 1<<62:
		return hi
	case step <= -(1 << 62):
		return lo
	}
	s := int64(step)
	if s > 0 && x > hi-s {
		return hi
	}
	if s < 0 && x < lo-s {
		return lo
	}
	return x + s
}

func unsignedValue(k editvalue.Kind, u uint64) editvalue.Value {
	switch k {
	case editvalue.U8:
		return editvalue.ValueOf(uint8(min(u, math.MaxUint8)))
	case editvalue.U16:
		return editvalue.ValueOf(uint16(min(u, math.MaxUint16)))
	case editvalue.U32:
		return editvalue.ValueOf(uint32(min(u, math.MaxUint32)))
	}
	return editvalue.ValueOf(u)
}

func signedValue(k editvalue.Kind, n int64) editvalue.Value {
	switch k {
	case editvalue.I8:
		return editvalue.ValueOf(int8(max(math.MinInt8, min(n, math.MaxInt8))))
	case editvalue.I16:
		return editvalue.ValueOf(int16(max(math.MinInt16, min(n, math.MaxInt16))))
	case editvalue.I32:
		return editvalue.ValueOf(int32(max(math.MinInt32, min(n, math.MaxInt32))))
	}
	return editvalue.ValueOf(n)
}

func zeroOf(k editvalue.Kind) editvalue.Value {
	switch k {
	case editvalue.U8:
		return editvalue.ValueOf(uint8(0))
	case editvalue.U16:
		return editvalue.ValueOf(uint16(0))
	case editvalue.U32:
		return editvalue.ValueOf(uint32(0))
	case editvalue.U64:
		return editvalue.ValueOf(uint64(0))
	case editvalue.I8:
		return editvalue.ValueOf(int8(0))
	case editvalue.I16:
		return editvalue.ValueOf(int16(0))
	case editvalue.I32:
		return editvalue.ValueOf(int32(0))
	case editvalue.I64:
		return editvalue.ValueOf(int64(0))
	}
	return editvalue.Value{}
}

// floatAt returns component i of a float or vector value.
func floatAt(v editvalue.Value, i int) (float64, bool) {
	switch v.Kind() {
	case editvalue.F32:
		x, _ := editvalue.As[float32](v)
		return float64(x), i == 0
	case editvalue.F64:
		x, _ := editvalue.As[float64](v)
		return x, i == 0
	case editvalue.Vec2:
		x, _ := editvalue.As[rl.Vector2](v)
		return vecComponent([]float32{x.X, x.Y}, i)
	case editvalue.Vec3:
		x, _ := editvalue.As[rl.Vector3](v)
		return vecComponent([]float32{x.X, x.Y, x.Z}, i)
	case editvalue.Vec4:
		x, _ := editvalue.As[rl.Vector4](v)
		return vecComponent([]float32{x.X, x.Y, x.Z, x.W}, i)
	}
	return 0, false
}

func vecComponent(c []float32, i int) (float64, bool) {
	if i < 0 || i >= len(c) {
		return 0, false
	}
	return float64(c[i]), true
}

func setFloatAt(v editvalue.Value, i int, f float64) editvalue.Value {
	switch v.Kind() {
	case editvalue.F32:
		return editvalue.ValueOf(float32(f))
	case editvalue.F64:
		return editvalue.ValueOf(f)
	case editvalue.Vec2:
		x, _ := editvalue.As[rl.Vector2](v)
		setComponent([]*float32{&x.X, &x.Y}, i, f)
		return editvalue.ValueOf(x)
	case editvalue.Vec3:
		x, _ := editvalue.As[rl.Vector3](v)
		setComponent([]*float32{&x.X, &x.Y, &x.Z}, i, f)
		return editvalue.ValueOf(x)
	case editvalue.Vec4:
		x, _ := editvalue.As[rl.Vector4](v)
		setComponent([]*float32{&x.X, &x.Y, &x.Z, &x.W}, i, f)
		return editvalue.ValueOf(x)
	}
	return v
}

func setComponent(c []*float32, i int, f float64) {
	if i >= 0 && i < len(c) {
		*c[i] = float32(f)
	}
}
