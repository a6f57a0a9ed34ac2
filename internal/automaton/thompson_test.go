package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Basis_MatchesSingleSymbol(t *testing.T) {
	g := Basis("a")
	g.NumberStates()
	m := NewMachine(g)

	assert.True(t, Match(m, "a"))
	assert.False(t, Match(m, "b"))
	assert.False(t, Match(m, ""))
	assert.False(t, Match(m, "aa"))
}

func Test_Cat_MatchesConcatenation(t *testing.T) {
	g := Cat(Basis("a"), Basis("b"))
	g.NumberStates()
	m := NewMachine(g)

	assert.True(t, Match(m, "ab"))
	assert.False(t, Match(m, "a"))
	assert.False(t, Match(m, "ba"))
}

func Test_Or_MatchesEitherBranch(t *testing.T) {
	g := Or(Basis("a"), Basis("b"))
	g.NumberStates()
	m := NewMachine(g)

	assert.True(t, Match(m, "a"))
	assert.True(t, Match(m, "b"))
	assert.False(t, Match(m, "c"))
	assert.False(t, Match(m, "ab"))
}

func Test_Star_MatchesZeroOrMoreRepetitions(t *testing.T) {
	g := Star(Basis("a"))
	g.NumberStates()
	m := NewMachine(g)

	assert.True(t, Match(m, ""))
	assert.True(t, Match(m, "a"))
	assert.True(t, Match(m, "aaaa"))
	assert.False(t, Match(m, "aaab"))
}

func Test_Match_ResetsFrontierRegardlessOfOutcome(t *testing.T) {
	g := Cat(Basis("a"), Basis("b"))
	m := NewMachine(g)

	assert.False(t, Match(m, "nope"))
	// frontier must be back at the epsilon-closure of start, so a fresh
	// match attempt works correctly afterward.
	assert.True(t, Match(m, "ab"))
}

func Test_NumberStates_StartIsOne(t *testing.T) {
	g := Cat(Basis("a"), Basis("b"))
	g.NumberStates()

	assert.Equal(t, 1, g.Start.Num)
}

func Test_Cat_ReusesAcceptAsNextStart(t *testing.T) {
	left := Basis("a")
	right := Basis("b")
	g := Cat(left, right)

	// right.Start is collapsed into left.Accept rather than linked to it by
	// a new edge, so the graph carries only 3 states (the 4 the two bases
	// brought in, minus the one dropped), and the path that used to leave
	// right.Start now leaves left.Accept.
	assert.Equal(t, 3, len(g.States()))

	var fromAccept []*Path
	for _, p := range g.Paths() {
		if p.Begin == left.Accept {
			fromAccept = append(fromAccept, p)
		}
	}
	assert.Len(t, fromAccept, 1)
	assert.Equal(t, "b", fromAccept[0].Label)
	assert.Same(t, right.Accept, fromAccept[0].End)
}
