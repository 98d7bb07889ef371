package history

import (
	"context"

	"mirgo/internal/editvalue"
	"mirgo/internal/engine"

	"github.com/looplab/fsm"
	"github.com/pkg/errors"
)

const (
	StateIdle      = "idle"
	StateCapturing = "capturing"

	eventBegin   = "begin"
	eventEnd     = "end"
	eventAbandon = "abandon"
)

// Session turns the begin/end callbacks of one widget interaction into at
// most one history entry.
type Session struct {
	stack   *Stack
	machine *fsm.FSM
	pending *Action
}

func NewSession(stack *Stack) *Session {
	return &Session{
		stack: stack,
		machine: fsm.NewFSM(
			StateIdle,
			fsm.Events{
				// begin while capturing replaces the capture
				{Name: eventBegin, Src: []string{StateIdle, StateCapturing}, Dst: StateCapturing},
				{Name: eventEnd, Src: []string{StateCapturing}, Dst: StateIdle},
				{Name: eventAbandon, Src: []string{StateCapturing}, Dst: StateIdle},
			},
			fsm.Callbacks{},
		),
	}
}

func (s *Session) State() string {
	return s.machine.Current()
}

func (s *Session) IsCapturing() bool {
	return s.machine.Is(StateCapturing)
}

// BeginEdit snapshots the field behind ref as the "before" value.
// Calling it again before EndEdit silently replaces the previous capture.
func (s *Session) BeginEdit(ref editvalue.Ref, label, componentLabel string, owner engine.ComponentRef) {
	if s.pending != nil {
		s.stack.logger.Printf("begin %q replaces pending edit of %q", label, s.pending.Label)
	}
	s.fire(eventBegin)
	s.pending = newAction(ref, label, componentLabel, owner, ref.Read())
}

// EndEdit snapshots the "after" value and records the action if the field
// actually changed. A no-op interaction returns (nil, nil) and leaves history
// untouched, as does an edit whose owner was destroyed while it was captured.
func (s *Session) EndEdit() (*Action, error) {
	if !s.IsCapturing() {
		return nil, ErrNotCapturing
	}
	a := s.pending
	s.pending = nil
	s.fire(eventEnd)

	a.After = a.Ref.Read()
	if a.Before.Equal(a.After) {
		return nil, nil
	}
	if _, _, ok := s.stack.resolver.ResolveComponent(a.Owner); !ok {
		s.stack.logger.Printf("dropped edit of %s %s: owner destroyed mid-edit", a.ComponentLabel, a.Label)
		return nil, nil
	}
	s.stack.Record(a)
	return a, nil
}

// Abandon drops the capture without recording anything.
func (s *Session) Abandon() {
	if !s.IsCapturing() {
		return
	}
	s.pending = nil
	s.fire(eventAbandon)
}

// IsPendingCommit reports whether the captured field currently differs from
// its before snapshot.
func (s *Session) IsPendingCommit() bool {
	if !s.IsCapturing() || s.pending == nil {
		return false
	}
	return !s.pending.Before.Equal(s.pending.Ref.Read())
}

// Pending returns the capture in progress, or nil.
func (s *Session) Pending() *Action {
	return s.pending
}

func (s *Session) fire(event string) {
	err := s.machine.Event(context.Background(), event)
	var same fsm.NoTransitionError
	if err != nil && !errors.As(err, &same) {
		s.stack.logger.Printf("session %s: %v", event, err)
	}
}
