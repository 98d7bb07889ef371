package history

import (
	"bytes"
	"log"
	"testing"

	"mirgo/internal/editvalue"
	"mirgo/internal/engine"
)

// gauge is a component with one field of a few kinds that records edit notifications.
type gauge struct {
	engine.BaseComponent
	X       int32
	Y       string
	Z       float32
	applied []string
}

func (p *gauge) OnEditApplied(label string) {
	p.applied = append(p.applied, label)
}

type fixture struct {
	scene   *engine.Scene
	obj     *engine.GameObject
	comp    *gauge
	stack   *Stack
	session *Session
	metrics *Metrics
	logs    *bytes.Buffer
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	scene := engine.NewScene("Test")
	obj := engine.NewGameObject("Crate")
	comp := &gauge{X: 1, Y: "a"}
	obj.AddComponent(comp)
	scene.AddGameObject(obj)

	logs := &bytes.Buffer{}
	metrics := NewMetrics(nil)
	opts = append([]Option{WithLogger(log.New(logs, "History: ", 0)), WithMetrics(metrics)}, opts...)
	stack := NewStack(scene, opts...)

	return &fixture{
		scene:   scene,
		obj:     obj,
		comp:    comp,
		stack:   stack,
		session: NewSession(stack),
		metrics: metrics,
		logs:    logs,
	}
}

func (f *fixture) owner() engine.ComponentRef {
	return engine.RefTo(f.obj, f.comp)
}

// edit runs one begin/mutate/end interaction on ref and returns the recorded action.
func (f *fixture) edit(t *testing.T, ref editvalue.Ref, label string, mutate func()) *Action {
	t.Helper()
	f.session.BeginEdit(ref, label, "Gauge", f.owner())
	mutate()
	a, err := f.session.EndEdit()
	if err != nil {
		t.Fatalf("EndEdit failed: %v", err)
	}
	return a
}
