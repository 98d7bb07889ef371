// Package history records inspector edits and replays them for undo/redo.
//
// An Action holds before/after snapshots of one field plus a weak handle to
// the object that owns it. A Stack keeps actions in commit order with a head
// offset separating applied from undone entries, and a Session turns a
// begin/end pair of UI callbacks into at most one recorded Action.
package history

import (
	"fmt"
	"time"

	"mirgo/internal/editvalue"
	"mirgo/internal/engine"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrDanglingOwner means the object or component an action edits no longer exists.
	ErrDanglingOwner = errors.New("owner no longer exists")
	// ErrIndexOutOfRange is returned by JumpTo for positions outside [0, Len()].
	ErrIndexOutOfRange = errors.New("history index out of range")
	// ErrNotCapturing is returned by EndEdit when no edit is in progress.
	ErrNotCapturing = errors.New("no edit in progress")
)

// Resolver looks up weak owner handles in the live scene. *engine.Scene implements it.
type Resolver interface {
	ResolveComponent(ref engine.ComponentRef) (*engine.GameObject, engine.Component, bool)
}

// Action is one recorded field change.
type Action struct {
	ID             uuid.UUID
	Ref            editvalue.Ref
	Label          string
	ComponentLabel string
	Owner          engine.ComponentRef
	Before         editvalue.Value
	After          editvalue.Value
	Committed      bool
	RecordedAt     time.Time

	// Inert is set once the owner was found dangling; the action is skipped from then on.
	Inert bool
}

func newAction(ref editvalue.Ref, label, componentLabel string, owner engine.ComponentRef, before editvalue.Value) *Action {
	return &Action{
		ID:             uuid.New(),
		Ref:            ref,
		Label:          label,
		ComponentLabel: componentLabel,
		Owner:          owner,
		Before:         before,
	}
}

// ApplyBefore writes the before snapshot back into the live field.
func (a *Action) ApplyBefore(r Resolver) error {
	return a.apply(r, a.Before)
}

// ApplyAfter writes the after snapshot into the live field.
func (a *Action) ApplyAfter(r Resolver) error {
	return a.apply(r, a.After)
}

func (a *Action) apply(r Resolver, v editvalue.Value) error {
	if a.Inert {
		return errors.Wrapf(ErrDanglingOwner, "%s %s", a.ComponentLabel, a.Label)
	}
	obj, comp, ok := r.ResolveComponent(a.Owner)
	if !ok {
		a.Inert = true
		return errors.Wrapf(ErrDanglingOwner, "%s %s", a.ComponentLabel, a.Label)
	}
	if err := a.Ref.Write(v); err != nil {
		return errors.Wrapf(err, "%s %s", a.ComponentLabel, a.Label)
	}

	// Derived state of the owner has to follow the raw write
	obj.MarkTransformDirty()
	if l, ok := comp.(engine.EditListener); ok {
		l.OnEditApplied(a.Label)
	}
	return nil
}

func (a *Action) String() string {
	name := a.Label
	if a.ComponentLabel != "" {
		name = a.ComponentLabel + " " + a.Label
	}
	return fmt.Sprintf("%s: %s -> %s", name, a.Before, a.After)
}
