package history

import (
	"strings"
	"testing"

	"mirgo/internal/editvalue"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestSessionNoopEditIsDiscarded(t *testing.T) {
	f := newFixture(t)
	f.session.BeginEdit(editvalue.Of(&f.comp.X), "X", "Gauge", f.owner())
	f.comp.X = 5
	f.comp.X = 1 // dragged back to where it started

	a, err := f.session.EndEdit()
	if err != nil || a != nil {
		t.Fatalf("Expected (nil, nil) for a no-op edit, got (%v, %v)", a, err)
	}
	if f.stack.Len() != 0 {
		t.Errorf("No-op edit must not grow history, got %d entries", f.stack.Len())
	}
	if f.session.State() != StateIdle {
		t.Errorf("Expected state %s, got %s", StateIdle, f.session.State())
	}
}

func TestSessionEndWithoutBegin(t *testing.T) {
	f := newFixture(t)
	if _, err := f.session.EndEdit(); !errors.Is(err, ErrNotCapturing) {
		t.Errorf("Expected ErrNotCapturing, got %v", err)
	}
}

func TestSessionRecordsChange(t *testing.T) {
	f := newFixture(t)
	f.session.BeginEdit(editvalue.Of(&f.comp.Y), "Y", "Gauge", f.owner())
	if !f.session.IsCapturing() {
		t.Fatal("Session should be capturing after BeginEdit")
	}
	f.comp.Y = "b"

	a, err := f.session.EndEdit()
	if err != nil || a == nil {
		t.Fatalf("Expected recorded action, got (%v, %v)", a, err)
	}
	if v, _ := editvalue.As[string](a.Before); v != "a" {
		t.Errorf("Expected before 'a', got '%s'", v)
	}
	if v, _ := editvalue.As[string](a.After); v != "b" {
		t.Errorf("Expected after 'b', got '%s'", v)
	}
	if a.ComponentLabel != "Gauge" || a.Owner != f.owner() {
		t.Error("Action should carry the labels and owner given to BeginEdit")
	}
	if got := testutil.ToFloat64(f.metrics.Records); got != 1 {
		t.Errorf("Expected 1 record, got %f", got)
	}

	// A second commit path for the same gesture finds nothing to end
	if _, err := f.session.EndEdit(); !errors.Is(err, ErrNotCapturing) {
		t.Errorf("Expected ErrNotCapturing on double end, got %v", err)
	}
	if f.stack.Len() != 1 {
		t.Errorf("Expected 1 entry, got %d", f.stack.Len())
	}
}

func TestSessionIsPendingCommit(t *testing.T) {
	f := newFixture(t)
	if f.session.IsPendingCommit() {
		t.Error("Idle session has nothing pending")
	}

	f.session.BeginEdit(editvalue.Of(&f.comp.Z), "Z", "Gauge", f.owner())
	if f.session.IsPendingCommit() {
		t.Error("Unchanged capture should not be pending")
	}
	f.comp.Z = 1
	if !f.session.IsPendingCommit() {
		t.Error("Changed capture should be pending")
	}
	f.session.EndEdit()
	if f.session.IsPendingCommit() {
		t.Error("Committed capture should no longer be pending")
	}
}

func TestSessionReentrantBeginReplacesCapture(t *testing.T) {
	f := newFixture(t)
	f.session.BeginEdit(editvalue.Of(&f.comp.X), "X", "Gauge", f.owner())
	f.comp.X = 2
	f.session.BeginEdit(editvalue.Of(&f.comp.Y), "Y", "Gauge", f.owner())
	f.comp.Y = "c"

	a, err := f.session.EndEdit()
	if err != nil || a == nil {
		t.Fatalf("Expected recorded action, got (%v, %v)", a, err)
	}
	if a.Label != "Y" {
		t.Errorf("Second begin should win, got label '%s'", a.Label)
	}
	if f.stack.Len() != 1 {
		t.Errorf("The replaced capture is lost, expected 1 entry, got %d", f.stack.Len())
	}
	if !strings.Contains(f.logs.String(), "replaces pending edit") {
		t.Errorf("Expected replaced capture in log, got %q", f.logs.String())
	}
}

func TestSessionReentrantBeginSameField(t *testing.T) {
	f := newFixture(t)
	ref := editvalue.Of(&f.comp.X)
	f.session.BeginEdit(ref, "X", "Gauge", f.owner())
	f.comp.X = 2
	// A nested widget re-begins on the same field mid-drag
	f.session.BeginEdit(ref, "X", "Gauge", f.owner())
	f.comp.X = 3

	a, _ := f.session.EndEdit()
	if a == nil {
		t.Fatal("Expected recorded action")
	}
	f.stack.Undo()
	if f.comp.X != 2 {
		t.Errorf("Undo restores the value at the second begin, expected 2, got %d", f.comp.X)
	}
}

func TestSessionAbandon(t *testing.T) {
	f := newFixture(t)
	f.session.BeginEdit(editvalue.Of(&f.comp.X), "X", "Gauge", f.owner())
	f.comp.X = 4
	f.session.Abandon()

	if f.session.IsCapturing() || f.session.Pending() != nil {
		t.Error("Abandon should return the session to idle")
	}
	if f.stack.Len() != 0 {
		t.Errorf("Abandoned edit must not be recorded, got %d entries", f.stack.Len())
	}

	// Abandon when idle is harmless
	f.session.Abandon()
	if _, err := f.session.EndEdit(); !errors.Is(err, ErrNotCapturing) {
		t.Errorf("Expected ErrNotCapturing, got %v", err)
	}
}

func TestSessionOwnerDestroyedMidEdit(t *testing.T) {
	f := newFixture(t)
	f.session.BeginEdit(editvalue.Of(&f.comp.X), "X", "Gauge", f.owner())
	f.comp.X = 8
	f.scene.Destroy(f.obj)

	a, err := f.session.EndEdit()
	if err != nil || a != nil {
		t.Fatalf("Expected (nil, nil), got (%v, %v)", a, err)
	}
	if f.stack.Len() != 0 {
		t.Errorf("Edit of destroyed owner must not be recorded, got %d entries", f.stack.Len())
	}
}
