package automaton

import "github.com/nkall/canonlr/internal/util"

// Machine wraps a Graph with a mutable "current frontier" — the set of
// states reachable from Start by the input consumed so far — so that Step
// and Match can simulate the NFA without backtracking.
type Machine struct {
	Graph    *Graph
	frontier map[*State]bool
}

// NewMachine returns a Machine for g, with its frontier initialized to the
// ε-closure of g's start state.
func NewMachine(g *Graph) *Machine {
	m := &Machine{Graph: g}
	m.Reset()
	return m
}

// Reset returns the frontier to the ε-closure of the start state.
func (m *Machine) Reset() {
	m.frontier = m.epsilonClosure(map[*State]bool{m.Graph.Start: true})
}

// Frontier returns the current frontier set, for inspection or DOT
// highlighting. The returned map must not be mutated.
func (m *Machine) Frontier() map[*State]bool {
	return m.frontier
}

// Accepting reports whether the current frontier contains the accept state.
func (m *Machine) Accepting() bool {
	return m.frontier[m.Graph.Accept]
}

// epsilonClosure returns the set of states reachable from any state in from
// using zero or more ε-moves. Uses a worklist rather than recursion, so a
// long chain of ε-transitions (e.g. from a deeply nested Star) can't blow
// the call stack.
func (m *Machine) epsilonClosure(from map[*State]bool) map[*State]bool {
	closure := map[*State]bool{}
	var pending util.Stack[*State]
	for s := range from {
		pending.Push(s)
	}

	for !pending.Empty() {
		s := pending.Pop()
		if closure[s] {
			continue
		}
		closure[s] = true

		for _, p := range m.Graph.PathsFrom(s) {
			if p.Label == Epsilon && !closure[p.End] {
				pending.Push(p.End)
			}
		}
	}

	return closure
}

// Step advances the frontier by consuming one input letter. It returns
// false (leaving the frontier unchanged) if no state in the current
// frontier has a transition on letter — the NoTransition case, which
// surfaces here as a plain failure return rather than a distinct error
// type.
func (m *Machine) Step(letter string) bool {
	next := map[*State]bool{}
	for s := range m.frontier {
		for _, p := range m.Graph.PathsFrom(s) {
			if p.Label == letter {
				next[p.End] = true
			}
		}
	}
	if len(next) == 0 {
		return false
	}
	m.frontier = m.epsilonClosure(next)
	return true
}

// Match resets m, consumes every letter of s in order, and reports whether
// the resulting frontier contains the accept state. The frontier is reset
// to the ε-closure of the start state before returning, regardless of
// outcome, so a Machine is always ready for the next call to Match.
func Match(m *Machine, s string) bool {
	m.Reset()
	defer m.Reset()

	for _, r := range s {
		if !m.Step(string(r)) {
			return false
		}
	}
	return m.Accepting()
}
