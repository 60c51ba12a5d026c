// Package teststubs holds shared test doubles for package tests.
package teststubs

import (
	"fmt"
	"sync"

	"virtualtd-service/internal/names"
	"virtualtd-service/internal/snapshots"
)

// SeqSupplier is a deterministic names.Supplier producing numbered names.
// With Collide > 0 every fresh name is served that many extra times in a
// row, so uniqueness retry loops have duplicates to reject.
type SeqSupplier struct {
	Collide int

	counts  map[names.Scope]int
	repeats int
	last    string
}

// Next returns scope-styled names: "League 1", "Team 2 FC", "Player 3".
func (s *SeqSupplier) Next(scope names.Scope) string {
	if s.repeats > 0 {
		s.repeats--
		return s.last
	}

	if s.counts == nil {
		s.counts = make(map[names.Scope]int)
	}
	s.counts[scope]++
	n := s.counts[scope]
	switch scope {
	case names.ScopeLeague:
		s.last = fmt.Sprintf("League %d", n)
	case names.ScopeTeam:
		s.last = fmt.Sprintf("Team %d FC", n)
	default:
		s.last = fmt.Sprintf("Player %d", n)
	}
	s.repeats = s.Collide
	return s.last
}

// ConstantSupplier always returns the same name, forcing uniqueness
// retries to exhaust.
type ConstantSupplier struct {
	Name string
}

func (s ConstantSupplier) Next(scope names.Scope) string {
	_ = scope
	return s.Name
}

// StubSaver records every state handed to SaveState.
type StubSaver struct {
	mu     sync.Mutex
	States []snapshots.State
	Err    error
}

func (s *StubSaver) SaveState(state snapshots.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.States = append(s.States, state)
	return nil
}

// Saved returns a copy of the recorded states.
func (s *StubSaver) Saved() []snapshots.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]snapshots.State, len(s.States))
	copy(out, s.States)
	return out
}
