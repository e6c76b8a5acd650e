// Package scanner feeds characters one at a time into a trie and reports the
// first registered word completed by them, recovering from dead ends so that
// overlapping words ("twone") are not lost.
package scanner

import (
	"fmt"

	"github.com/khalid-nowaf/trebuchet/pkg/trie"
)

// State is the shape of the scanner between two characters.
type State int

const (
	// Idle: nothing buffered, the next character starts from the root.
	Idle State = iota
	// Pending: a word prefix is in progress.
	Pending
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Pending:
		return "Pending"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Scanner is a cursor over a single trie. It is not safe for concurrent use,
// but any number of scanners can share the same trie.
type Scanner[T any] struct {
	trie     *trie.Trie[T]
	frontier []trie.NodeID // empty exactly when Idle
	pending  []rune        // characters consumed since the last Idle state
}

// New returns an Idle scanner over t.
func New[T any](t *trie.Trie[T]) *Scanner[T] {
	if t == nil {
		panic("[BUG] scanner.New: trie must not be nil")
	}
	return &Scanner[T]{
		trie:     t,
		frontier: make([]trie.NodeID, 0, 1),
		pending:  make([]rune, 0, t.MaxWordLen()),
	}
}

// Reset drops any match in progress.
func (s *Scanner[T]) Reset() {
	s.frontier = s.frontier[:0]
	s.pending = s.pending[:0]
}

// State reports whether a word prefix is in progress.
func (s *Scanner[T]) State() State {
	if len(s.frontier) == 0 {
		return Idle
	}
	return Pending
}

// Pending returns the buffered characters of the match in progress.
func (s *Scanner[T]) Pending() string {
	return string(s.pending)
}

// Frontier returns a copy of the nodes reached by the buffered characters.
func (s *Scanner[T]) Frontier() []trie.NodeID {
	return append([]trie.NodeID(nil), s.frontier...)
}

// Advance consumes c and returns the value of the word it completes, if any.
//
// When c completes a word from any frontier node the value is returned right
// away and the scanner goes back to Idle, even if c also extends another path.
// When c extends at least one path the scanner stays Pending. When c dead-ends
// a match in progress, the buffered characters after the first one, c
// included, are replayed from the root and the first value they produce is
// returned.
func (s *Scanner[T]) Advance(c rune) (T, bool) {
	var zero T

	if len(s.frontier) == 0 {
		s.frontier = append(s.frontier, s.trie.Root())
	}

	next := make([]trie.NodeID, 0, len(s.frontier))
	for _, id := range s.frontier {
		step := s.trie.StepFrom(id, c)
		switch step.Outcome {
		case trie.Complete:
			s.Reset()
			return step.Value, true
		case trie.Partial:
			next = append(next, step.Node)
		}
	}

	if len(next) > 0 {
		s.frontier = next
		s.pending = append(s.pending, c)
		return zero, false
	}

	if len(s.pending) == 0 {
		s.Reset()
		return zero, false
	}

	// the first buffered character started the dead end, replaying it from
	// the root would take the same path again.
	replay := append(append(make([]rune, 0, len(s.pending)), s.pending[1:]...), c)
	s.Reset()
	for _, r := range replay {
		if v, ok := s.Advance(r); ok {
			return v, true
		}
	}
	return zero, false
}

// Flush resolves a match left in progress at the end of the input. The
// buffered characters after the first one are replayed from the root until a
// word completes or nothing is left.
func (s *Scanner[T]) Flush() (T, bool) {
	for len(s.pending) > 0 {
		replay := append([]rune(nil), s.pending[1:]...)
		s.Reset()
		for _, r := range replay {
			if v, ok := s.Advance(r); ok {
				return v, true
			}
		}
	}
	var zero T
	return zero, false
}

// Scan advances every character of text, flushes, and returns the first
// completed value. The scanner is reset before and after the scan.
func (s *Scanner[T]) Scan(text string) (T, bool) {
	s.Reset()
	defer s.Reset()
	for _, c := range text {
		if v, ok := s.Advance(c); ok {
			return v, true
		}
	}
	return s.Flush()
}
