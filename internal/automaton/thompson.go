package automaton

// Basis builds the basis NFA for a single symbol: two states, one
// transition from the first to the second labeled symbol.
func Basis(symbol string) *Graph {
	g := NewGraph()
	start := g.NewState()
	accept := g.NewState()
	g.AddPath(start, accept, symbol)
	g.Start = start
	g.Accept = accept
	return g
}

// Cat builds the concatenation of left and right: right's start state is
// collapsed into left's accept state, so every path that used to begin at
// right.Start now begins at left.Accept instead. No new state or edge is
// allocated; the result accepts where right accepts.
func Cat(left, right *Graph) *Graph {
	g := NewGraph()
	g.merge(left)
	g.mergeRewiring(right, right.Start, left.Accept)
	g.Start = left.Start
	g.Accept = right.Accept
	return g
}

// Or builds the alternation of left and right: a new start state with
// ε-moves to both left.Start and right.Start, and a new accept state reached
// by ε-moves from both left.Accept and right.Accept.
func Or(left, right *Graph) *Graph {
	g := NewGraph()
	g.merge(left)
	g.merge(right)

	start := g.NewState()
	accept := g.NewState()

	g.AddPath(start, left.Start, Epsilon)
	g.AddPath(start, right.Start, Epsilon)
	g.AddPath(left.Accept, accept, Epsilon)
	g.AddPath(right.Accept, accept, Epsilon)

	g.Start = start
	g.Accept = accept
	return g
}

// Star builds the Kleene closure of expr: a new start/accept pair bypassing
// expr entirely (so the empty string is accepted), an ε-move into expr, and
// an ε-move from expr's accept back to expr's start for repetition, as well
// as one out to the new accept state.
func Star(expr *Graph) *Graph {
	g := NewGraph()
	g.merge(expr)

	start := g.NewState()
	accept := g.NewState()

	g.AddPath(start, expr.Start, Epsilon)
	g.AddPath(start, accept, Epsilon)
	g.AddPath(expr.Accept, expr.Start, Epsilon)
	g.AddPath(expr.Accept, accept, Epsilon)

	g.Start = start
	g.Accept = accept
	return g
}
