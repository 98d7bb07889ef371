package editor

import (
	"bytes"
	"testing"

	"mirgo/internal/components"
	"mirgo/internal/editvalue"
	"mirgo/internal/engine"
)

type fakeInput struct {
	down    map[int32]bool
	pressed map[int32]bool
}

func keys(held []int32, pressed ...int32) fakeInput {
	in := fakeInput{down: map[int32]bool{}, pressed: map[int32]bool{}}
	for _, k := range held {
		in.down[k] = true
	}
	for _, k := range pressed {
		in.down[k] = true
		in.pressed[k] = true
	}
	return in
}

func (f fakeInput) IsKeyDown(key int32) bool    { return f.down[key] }
func (f fakeInput) IsKeyPressed(key int32) bool { return f.pressed[key] }

type testEditor struct {
	ctx   *Context
	crate *engine.GameObject
	undo  *components.UndoTest
	logs  *bytes.Buffer
}

func newTestEditor(t *testing.T) *testEditor {
	t.Helper()
	scene := engine.NewScene("Test")
	crate := engine.NewGameObject("Crate")
	undo := components.NewUndoTest()
	crate.AddComponent(undo)
	scene.AddGameObject(crate)

	logs := &bytes.Buffer{}
	return &testEditor{
		ctx:   NewContext(scene, DefaultConfig(), logs),
		crate: crate,
		undo:  undo,
		logs:  logs,
	}
}

// field finds a labeled field in the inspector sections of obj.
func field(t *testing.T, obj *engine.GameObject, title, label string) (Section, editvalue.NamedRef) {
	t.Helper()
	for _, s := range Inspect(obj) {
		if s.Title != title {
			continue
		}
		for _, f := range s.Fields {
			if f.Label == label {
				return s, f
			}
		}
	}
	t.Fatalf("No field %s.%s", title, label)
	return Section{}, editvalue.NamedRef{}
}
