package automaton

// Graph is an NFA: a set of states and labeled transitions between them,
// with exactly one designated start state and exactly one designated accept
// state. Every Thompson constructor in thompson.go preserves this
// single-start/single-accept invariant, which is what lets Cat, Or, and Star
// compose graphs without needing to track sets of accepting states.
type Graph struct {
	states []*State
	paths  []*Path
	Start  *State
	Accept *State
}

// NewGraph returns an empty graph with no states.
func NewGraph() *Graph {
	return &Graph{}
}

// NewState allocates a fresh state belonging to g and returns it.
func (g *Graph) NewState() *State {
	s := &State{}
	g.states = append(g.states, s)
	return s
}

// AddPath adds a transition from -> to on label to the graph. Both from and
// to must already belong to g (or to a graph g was merged from).
func (g *Graph) AddPath(from, to *State, label string) {
	g.paths = append(g.paths, &Path{Begin: from, End: to, Label: label})
}

// States returns every state in the graph, in the order they were created.
func (g *Graph) States() []*State {
	out := make([]*State, len(g.states))
	copy(out, g.states)
	return out
}

// Paths returns every transition in the graph.
func (g *Graph) Paths() []*Path {
	out := make([]*Path, len(g.paths))
	copy(out, g.paths)
	return out
}

// PathsFrom returns every transition whose Begin is s.
func (g *Graph) PathsFrom(s *State) []*Path {
	var out []*Path
	for _, p := range g.paths {
		if p.Begin == s {
			out = append(out, p)
		}
	}
	return out
}

// merge absorbs other's states and paths into g. It does not touch g's Start
// or Accept; callers wire those up themselves according to the
// constructor's semantics.
func (g *Graph) merge(other *Graph) {
	g.states = append(g.states, other.states...)
	g.paths = append(g.paths, other.paths...)
}

// mergeRewiring absorbs other's states and paths into g, except that other's
// into state is dropped entirely and every path endpoint equal to it is
// redirected to onto instead. This is how Cat collapses a former start state
// into the preceding graph's accept state without allocating anything new.
func (g *Graph) mergeRewiring(other *Graph, into, onto *State) {
	for _, s := range other.states {
		if s == into {
			continue
		}
		g.states = append(g.states, s)
	}
	for _, p := range other.paths {
		if p.Begin == into {
			p.Begin = onto
		}
		if p.End == into {
			p.End = onto
		}
		g.paths = append(g.paths, p)
	}
}

// NumberStates assigns each state a display Num via breadth-first traversal
// from Start, so the start state is always numbered 1.
func (g *Graph) NumberStates() {
	if g.Start == nil {
		return
	}

	seen := map[*State]bool{}
	order := []*State{g.Start}
	seen[g.Start] = true

	for i := 0; i < len(order); i++ {
		cur := order[i]
		for _, p := range g.PathsFrom(cur) {
			if !seen[p.End] {
				seen[p.End] = true
				order = append(order, p.End)
			}
		}
	}

	// states unreachable from Start (shouldn't occur for graphs built solely
	// from the Thompson constructors, but numbered anyway for completeness)
	for _, s := range g.states {
		if !seen[s] {
			seen[s] = true
			order = append(order, s)
		}
	}

	for i, s := range order {
		s.Num = i + 1
	}
}
