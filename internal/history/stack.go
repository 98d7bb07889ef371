package history

import (
	"io"
	"log"
	"slices"
	"time"

	"mirgo/internal/engine"

	"github.com/pkg/errors"
)

type ChangeKind int

const (
	ChangeRecorded ChangeKind = iota
	ChangeUndone
	ChangeRedone
	ChangeJumped
	ChangeCleared
)

// Change is passed to Stack.Changed listeners after the stack moved.
type Change struct {
	Kind       ChangeKind
	HeadOffset int
	Len        int
}

// Stack is a linear undo history. Entries are oldest first; head counts
// entries from the newest end that are currently undone, so head == 0 is the
// newest state and head == Len() the oldest.
type Stack struct {
	entries  []*Action
	head     int
	limit    int
	resolver Resolver
	logger   *log.Logger
	metrics  *Metrics

	// Changed fires after every record, undo, redo, jump and clear.
	Changed engine.EventWithArg[Change]
}

type Option func(*Stack)

// WithLimit caps the number of entries; the oldest are dropped first. 0 means unlimited.
func WithLimit(n int) Option {
	return func(s *Stack) {
		if n > 0 {
			s.limit = n
		}
	}
}

// WithLogger sets where skipped undo/redo steps are reported.
func WithLogger(l *log.Logger) Option {
	return func(s *Stack) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithMetrics(m *Metrics) Option {
	return func(s *Stack) {
		if m != nil {
			s.metrics = m
		}
	}
}

func NewStack(resolver Resolver, opts ...Option) *Stack {
	s := &Stack{
		resolver: resolver,
		logger:   log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = NewMetrics(nil)
	}
	return s
}

func (s *Stack) Len() int {
	return len(s.entries)
}

func (s *Stack) HeadOffset() int {
	return s.head
}

// AppliedCount is the number of entries currently applied, i.e. the index
// JumpTo would need to stay where it is.
func (s *Stack) AppliedCount() int {
	return len(s.entries) - s.head
}

// Entries returns a copy of the entries, oldest first.
func (s *Stack) Entries() []*Action {
	return slices.Clone(s.entries)
}

func (s *Stack) CanUndo() bool {
	return s.head < len(s.entries)
}

func (s *Stack) CanRedo() bool {
	return s.head > 0
}

// Record appends a committed action. Any undone entries are discarded first,
// so there is never more than one redo branch.
func (s *Stack) Record(a *Action) {
	if a == nil {
		return
	}
	if s.head > 0 {
		keep := len(s.entries) - s.head
		clear(s.entries[keep:])
		s.entries = s.entries[:keep]
		s.metrics.Discarded.Add(float64(s.head))
		s.head = 0
	}

	a.Committed = true
	if a.RecordedAt.IsZero() {
		a.RecordedAt = time.Now()
	}
	s.entries = append(s.entries, a)
	s.metrics.Records.Inc()

	if s.limit > 0 && len(s.entries) > s.limit {
		over := len(s.entries) - s.limit
		n := copy(s.entries, s.entries[over:])
		clear(s.entries[n:])
		s.entries = s.entries[:n]
		s.metrics.Discarded.Add(float64(over))
	}
	s.notify(ChangeRecorded)
}

// Undo reverts the newest applied entry. It reports false when there is nothing to undo.
func (s *Stack) Undo() bool {
	if !s.CanUndo() {
		return false
	}
	s.stepBack()
	s.notify(ChangeUndone)
	return true
}

// Redo re-applies the oldest undone entry. It reports false when there is nothing to redo.
func (s *Stack) Redo() bool {
	if !s.CanRedo() {
		return false
	}
	s.stepForward()
	s.notify(ChangeRedone)
	return true
}

// JumpTo moves the head so that exactly index entries are applied, stepping
// through every entry in between one at a time.
func (s *Stack) JumpTo(index int) error {
	if index < 0 || index > len(s.entries) {
		return errors.Wrapf(ErrIndexOutOfRange, "jump to %d of %d", index, len(s.entries))
	}
	target := len(s.entries) - index
	if target == s.head {
		return nil
	}
	for s.head < target {
		s.stepBack()
	}
	for s.head > target {
		s.stepForward()
	}
	s.notify(ChangeJumped)
	return nil
}

// Newest re-applies every undone entry.
func (s *Stack) Newest() {
	_ = s.JumpTo(len(s.entries))
}

// Clear drops all entries without touching live values.
func (s *Stack) Clear() {
	s.metrics.Discarded.Add(float64(len(s.entries)))
	clear(s.entries)
	s.entries = s.entries[:0]
	s.head = 0
	s.notify(ChangeCleared)
}

// stepBack and stepForward always move the head, even when the write had to be
// skipped, so one destroyed target never blocks the rest of the history.
func (s *Stack) stepBack() {
	idx := len(s.entries) - s.head - 1
	s.report(s.entries[idx].ApplyBefore(s.resolver))
	s.head++
	s.metrics.Undos.Inc()
}

func (s *Stack) stepForward() {
	idx := len(s.entries) - s.head
	s.report(s.entries[idx].ApplyAfter(s.resolver))
	s.head--
	s.metrics.Redos.Inc()
}

func (s *Stack) report(err error) {
	if err == nil {
		return
	}
	reason := reasonWriteFailed
	if errors.Is(err, ErrDanglingOwner) {
		reason = reasonDanglingOwner
	}
	s.metrics.Skipped.WithLabelValues(reason).Inc()
	s.logger.Printf("skipped: %v", err)
}

func (s *Stack) notify(kind ChangeKind) {
	s.metrics.Entries.Set(float64(len(s.entries)))
	s.Changed.Invoke(Change{Kind: kind, HeadOffset: s.head, Len: len(s.entries)})
}
