package editor

import (
	"strings"

	"mirgo/internal/editvalue"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// fieldEvent reports which edit boundary a widget crossed this frame.
type fieldEvent int

const (
	fieldIdle fieldEvent = iota
	fieldBegan
	fieldEnded
	fieldCanceled
)

// fieldState is the per-editor state of the number and text widgets. Only one
// widget can be dragged or typed into at a time.
type fieldState struct {
	activeInputID  string          // widget in text entry mode
	inputTextValue string          // text being typed
	dragging       bool            // drag-scrub in progress
	dragID         string          // widget being scrubbed
	dragStartX     float32         // mouse X at press
	dragStartValue editvalue.Value // value at press
}

// owns reports whether the widget id, or one of its components, is being
// dragged or typed into.
func (f *fieldState) owns(id string) bool {
	match := func(w string) bool {
		return w != "" && (w == id || strings.HasPrefix(w, id+"."))
	}
	return match(f.activeInputID) || (f.dragging && match(f.dragID))
}

// drawNumberField draws component i of v with drag-to-scrub and click-to-type.
// Pressing starts an edit; releasing after a drag or confirming typed text
// ends it. A click without drag switches to text entry and keeps the edit open.
func (e *Editor) drawNumberField(x, y, w, h int32, id string, v editvalue.Value, i int) (editvalue.Value, fieldEvent) {
	bounds := rect(x, y, w, h)
	hovered := mouseIn(bounds)
	mousePos := rl.GetMousePosition()
	f := &e.fields

	editMode := f.activeInputID == id
	isDragging := f.dragging && f.dragID == id
	event := fieldIdle

	bgColor := colorBgElement
	if editMode {
		bgColor = colorBgActive
	} else if hovered || isDragging {
		bgColor = colorBgHover
	}
	rl.DrawRectangleRounded(bounds, 0.2, 4, bgColor)
	if editMode {
		rl.DrawRectangleRoundedLinesEx(bounds, 0.2, 4, 1, colorAccent)
	}

	if !editMode {
		if hovered && !f.dragging && f.activeInputID == "" && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			f.dragging = true
			f.dragID = id
			f.dragStartX = mousePos.X
			f.dragStartValue = v
			return v, fieldBegan
		}

		if isDragging {
			deltaX := mousePos.X - f.dragStartX
			if rl.IsMouseButtonDown(rl.MouseLeftButton) {
				// 100 pixels = 1.0 for floats, 10 pixels = 1 for integers, shift for fine control
				sensitivity := 0.01
				if !isFloatKind(v.Kind()) {
					sensitivity = 0.1
				}
				if rl.IsKeyDown(rl.KeyLeftShift) {
					sensitivity /= 10
				}
				v = offsetNumberAt(f.dragStartValue, i, float64(deltaX)*sensitivity)
			} else {
				f.dragging = false
				f.dragID = ""
				if deltaX > -2 && deltaX < 2 {
					v = f.dragStartValue
					f.activeInputID = id
					f.inputTextValue = formatNumberAt(v, i, 3)
				} else {
					event = fieldEnded
				}
			}
		}
	}

	if editMode {
		drawText(f.inputTextValue+"_", x+6, y+5, 15, colorTextPrimary)

		for {
			key := rl.GetCharPressed()
			if key == 0 {
				break
			}
			ch := rune(key)
			if (ch >= '0' && ch <= '9') || ch == '-' || ch == '.' {
				f.inputTextValue += string(ch)
			}
		}
		if rl.IsKeyPressed(rl.KeyBackspace) && len(f.inputTextValue) > 0 {
			f.inputTextValue = f.inputTextValue[:len(f.inputTextValue)-1]
		}

		clickedOutside := rl.IsMouseButtonPressed(rl.MouseLeftButton) && !hovered
		switch {
		case rl.IsKeyPressed(rl.KeyEscape):
			f.activeInputID = ""
			f.inputTextValue = ""
			event = fieldCanceled
		case rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) || rl.IsKeyPressed(rl.KeyTab) || clickedOutside:
			if parsed, ok := parseNumberAt(v, i, f.inputTextValue); ok {
				v = parsed
			}
			f.activeInputID = ""
			f.inputTextValue = ""
			event = fieldEnded
		}
	} else {
		drawText(formatNumberAt(v, i, 2), x+6, y+5, 15, colorTextSecondary)
	}

	return v, event
}

// drawTextField draws a click-to-type string field. The edit begins on click
// and ends on Enter or click outside; Escape cancels it.
func (e *Editor) drawTextField(x, y, w, h int32, id string, value string) (string, fieldEvent) {
	bounds := rect(x, y, w, h)
	hovered := mouseIn(bounds)
	f := &e.fields
	editMode := f.activeInputID == id
	event := fieldIdle

	bgColor := colorBgElement
	if editMode {
		bgColor = colorBgActive
	} else if hovered {
		bgColor = colorBgHover
	}
	rl.DrawRectangleRounded(bounds, 0.2, 4, bgColor)

	if !editMode {
		if hovered && !f.dragging && f.activeInputID == "" && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			f.activeInputID = id
			f.inputTextValue = value
			event = fieldBegan
		}
		drawText(value, x+6, y+5, 15, colorTextSecondary)
		return value, event
	}

	rl.DrawRectangleRoundedLinesEx(bounds, 0.2, 4, 1, colorAccent)
	for {
		key := rl.GetCharPressed()
		if key == 0 {
			break
		}
		if key >= 32 && key < 127 {
			f.inputTextValue += string(rune(key))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(f.inputTextValue) > 0 {
		f.inputTextValue = f.inputTextValue[:len(f.inputTextValue)-1]
	}
	value = f.inputTextValue
	drawText(value+"_", x+6, y+5, 15, colorTextPrimary)

	clickedOutside := rl.IsMouseButtonPressed(rl.MouseLeftButton) && !hovered
	switch {
	case rl.IsKeyPressed(rl.KeyEscape):
		f.activeInputID = ""
		f.inputTextValue = ""
		event = fieldCanceled
	case rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) || clickedOutside:
		f.activeInputID = ""
		f.inputTextValue = ""
		event = fieldEnded
	}
	return value, event
}
