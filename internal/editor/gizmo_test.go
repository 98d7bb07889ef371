package editor

import (
	"math"
	"testing"

	"mirgo/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestGizmoMoveRecordsPosition(t *testing.T) {
	e := newTestEditor(t)
	if !e.ctx.BeginGizmoDrag(e.crate, GizmoMove) {
		t.Fatal("Expected the drag to start")
	}

	e.ctx.DragGizmo(GizmoMove, 0, 2)
	if e.crate.Transform.Position.X != 2 {
		t.Errorf("Expected X 2, got %v", e.crate.Transform.Position.X)
	}
	// Each frame is relative to the drag start
	e.ctx.DragGizmo(GizmoMove, 0, 3)
	if e.crate.Transform.Position.X != 3 {
		t.Errorf("Expected X 3, got %v", e.crate.Transform.Position.X)
	}

	a := e.ctx.EndGizmoDrag()
	if a == nil {
		t.Fatal("Expected an action")
	}
	if a.Label != "Position" || a.ComponentLabel != "Transform" {
		t.Errorf("Expected Transform Position, got %s %s", a.ComponentLabel, a.Label)
	}
	if !a.Owner.IsTransform() {
		t.Error("Gizmo edits should own the Transform")
	}
	if e.ctx.History.Len() != 1 {
		t.Errorf("Expected 1 entry, got %d", e.ctx.History.Len())
	}

	e.ctx.Undo()
	if e.crate.Transform.Position.X != 0 {
		t.Errorf("Expected undo to restore X 0, got %v", e.crate.Transform.Position.X)
	}
	e.ctx.Redo()
	if e.crate.Transform.Position.X != 3 {
		t.Errorf("Expected redo to restore X 3, got %v", e.crate.Transform.Position.X)
	}
}

func TestGizmoRotateAndScale(t *testing.T) {
	e := newTestEditor(t)

	e.ctx.BeginGizmoDrag(e.crate, GizmoRotate)
	e.ctx.DragGizmo(GizmoRotate, 1, 2)
	e.ctx.EndGizmoDrag()
	if e.crate.Transform.Rotation.Y != 90 {
		t.Errorf("Expected 45 degrees per unit, got %v", e.crate.Transform.Rotation.Y)
	}

	e.ctx.BeginGizmoDrag(e.crate, GizmoScale)
	e.ctx.DragGizmo(GizmoScale, 2, 1)
	if e.crate.Transform.Scale.Z != 1.5 {
		t.Errorf("Expected scale 1.5, got %v", e.crate.Transform.Scale.Z)
	}
	e.ctx.DragGizmo(GizmoScale, 2, -10)
	if !near(e.crate.Transform.Scale.Z, gizmoMinScale) {
		t.Errorf("Expected scale clamped to %v, got %v", gizmoMinScale, e.crate.Transform.Scale.Z)
	}
	e.ctx.EndGizmoDrag()

	if e.ctx.History.Len() != 2 {
		t.Fatalf("Expected 2 entries, got %d", e.ctx.History.Len())
	}
	e.ctx.Undo()
	if e.crate.Transform.Scale.Z != 1 {
		t.Errorf("Expected scale 1 after undo, got %v", e.crate.Transform.Scale.Z)
	}
	e.ctx.Undo()
	if e.crate.Transform.Rotation.Y != 0 {
		t.Errorf("Expected rotation 0 after undo, got %v", e.crate.Transform.Rotation.Y)
	}
}

func TestGizmoIgnoresOtherCaptures(t *testing.T) {
	e := newTestEditor(t)
	e.ctx.BeginGizmoDrag(e.crate, GizmoMove)
	e.ctx.DragGizmo(GizmoRotate, 0, 1)
	e.ctx.DragGizmo(GizmoMove, 7, 1)
	if e.crate.Transform.Rotation.X != 0 || e.crate.Transform.Position.X != 0 {
		t.Error("Mismatched mode or axis should not write")
	}
	if e.ctx.EndGizmoDrag() != nil {
		t.Error("An unchanged drag should record nothing")
	}

	section, f := field(t, e.crate, "UndoTest", "Vec3")
	e.ctx.BeginFieldEdit(section, f)
	e.ctx.DragGizmo(GizmoMove, 0, 1)
	if e.crate.Transform.Position.X != 0 {
		t.Error("Gizmo should not write while a component field is captured")
	}

	if e.ctx.BeginGizmoDrag(nil, GizmoMove) {
		t.Error("Nothing to drag without an object")
	}
}

func TestGizmoMoveInParentSpace(t *testing.T) {
	e := newTestEditor(t)
	parent := engine.NewGameObject("Parent")
	parent.Transform.Rotation = rl.Vector3{Y: 90}
	parent.Transform.Scale = rl.Vector3{X: 2, Y: 2, Z: 2}
	e.ctx.Scene.AddGameObject(parent)
	parent.AddChild(e.crate)

	e.ctx.BeginGizmoDrag(e.crate, GizmoMove)
	e.ctx.DragGizmo(GizmoMove, 0, 1)
	e.ctx.EndGizmoDrag()

	p := e.crate.Transform.Position
	if !near(p.X, 0) || !near(p.Y, 0) || !near(p.Z, 0.5) {
		t.Errorf("Expected local (0, 0, 0.5), got %v", p)
	}
	if w := e.crate.WorldPosition(); !near(w.X, 1) || !near(w.Z, 0) {
		t.Errorf("Expected world X 1, got %v", w)
	}
}

func TestPickGizmoAxis(t *testing.T) {
	center := rl.Vector3{}
	down := rl.Vector3{X: 0, Y: 0, Z: -1}

	ray := rl.Ray{Position: rl.Vector3{X: 1, Y: 0.05, Z: 5}, Direction: down}
	if got := pickGizmoAxis(GizmoMove, center, ray); got != 0 {
		t.Errorf("Expected X axis, got %d", got)
	}
	ray = rl.Ray{Position: rl.Vector3{X: 0.05, Y: 1, Z: 5}, Direction: down}
	if got := pickGizmoAxis(GizmoScale, center, ray); got != 1 {
		t.Errorf("Expected Y axis, got %d", got)
	}
	ray = rl.Ray{Position: rl.Vector3{X: 5, Y: 5, Z: 5}, Direction: down}
	if got := pickGizmoAxis(GizmoMove, center, ray); got != -1 {
		t.Errorf("Expected a miss, got %d", got)
	}

	// Looking down Z hits the Z ring, which lies in the XY plane
	ray = rl.Ray{Position: rl.Vector3{X: gizmoLength * 0.8, Y: 0, Z: 5}, Direction: down}
	if got := pickGizmoAxis(GizmoRotate, center, ray); got != 2 {
		t.Errorf("Expected Z ring, got %d", got)
	}
}

func TestGizmoDragDelta(t *testing.T) {
	eye := rl.Vector3{X: 0, Y: 0, Z: 10}
	down := rl.Vector3{X: 0, Y: 0, Z: -1}
	d := startGizmoDrag(0, rl.Vector3{}, rl.Ray{Position: rl.Vector3{X: 0.5, Z: 10}, Direction: down}, eye)
	if !d.active || d.axis != 0 {
		t.Fatalf("Expected an active X drag, got %+v", d)
	}

	delta, ok := d.delta(rl.Ray{Position: rl.Vector3{X: 2, Z: 10}, Direction: down})
	if !ok || !near(delta, 1.5) {
		t.Errorf("Expected delta 1.5, got %v (%v)", delta, ok)
	}

	if _, ok := d.delta(rl.Ray{Position: rl.Vector3{X: 2, Z: 10}, Direction: rl.Vector3{X: 1}}); ok {
		t.Error("A ray parallel to the drag plane should not move the gizmo")
	}
}

func TestGizmoModeString(t *testing.T) {
	if GizmoRotate.String() != "Rotate" {
		t.Errorf("Expected Rotate, got %s", GizmoRotate.String())
	}
	if GizmoMode(9).String() != "Unknown" {
		t.Errorf("Expected Unknown, got %s", GizmoMode(9).String())
	}
	if GizmoScale.field() != "Scale" {
		t.Errorf("Expected Scale field, got %s", GizmoScale.field())
	}
}
