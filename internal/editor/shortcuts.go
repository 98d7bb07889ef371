package editor

import rl "github.com/gen2brain/raylib-go/raylib"

// Input is the slice of keyboard polling the editor needs. RaylibInput reads
// the real keyboard; tests substitute their own.
type Input interface {
	IsKeyDown(key int32) bool
	IsKeyPressed(key int32) bool
}

type RaylibInput struct{}

func (RaylibInput) IsKeyDown(key int32) bool    { return rl.IsKeyDown(key) }
func (RaylibInput) IsKeyPressed(key int32) bool { return rl.IsKeyPressed(key) }

type Shortcut int

const (
	ShortcutNone Shortcut = iota
	ShortcutUndo
	ShortcutRedo
)

// HandleShortcuts maps Ctrl+Z to undo and Ctrl+Shift+Z (or Ctrl+Y) to redo.
// Cmd works in place of Ctrl. Nothing fires while a field edit is being
// captured, so a half-finished drag is never interleaved with history moves.
func (c *Context) HandleShortcuts(in Input) Shortcut {
	if !c.Config.Shortcuts.Enabled || c.Session.IsCapturing() {
		return ShortcutNone
	}
	ctrl := in.IsKeyDown(rl.KeyLeftControl) || in.IsKeyDown(rl.KeyRightControl) ||
		in.IsKeyDown(rl.KeyLeftSuper) || in.IsKeyDown(rl.KeyRightSuper)
	if !ctrl {
		return ShortcutNone
	}
	shift := in.IsKeyDown(rl.KeyLeftShift) || in.IsKeyDown(rl.KeyRightShift)

	switch {
	case in.IsKeyPressed(rl.KeyZ) && !shift:
		c.Undo()
		return ShortcutUndo
	case in.IsKeyPressed(rl.KeyZ) && shift:
		c.Redo()
		return ShortcutRedo
	case c.Config.Shortcuts.RedoWithY && in.IsKeyPressed(rl.KeyY):
		c.Redo()
		return ShortcutRedo
	}
	return ShortcutNone
}
