package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func exprGrammar() Grammar {
	g := New()
	g.AddTerm("+")
	g.AddTerm("id")
	g.AddRule("E", Production{"E", "+", "T"})
	g.AddRule("E", Production{"T"})
	g.AddRule("T", Production{"id"})
	return g
}

func Test_Grammar_StartSymbol(t *testing.T) {
	g := exprGrammar()
	assert.Equal(t, "E", g.StartSymbol())
}

func Test_Grammar_IsTerminal(t *testing.T) {
	g := exprGrammar()

	assert.True(t, g.IsTerminal("+"))
	assert.True(t, g.IsTerminal("id"))
	assert.True(t, g.IsTerminal(EndOfInput))
	assert.False(t, g.IsTerminal("E"))
}

func Test_Grammar_Augmented(t *testing.T) {
	g := exprGrammar()
	aug := g.Augmented()

	assert.Equal(t, "E'", aug.StartSymbol())
	rule := aug.Rule("E'")
	assert.Len(t, rule.Productions, 1)
	assert.Equal(t, Production{"E"}, rule.Productions[0])

	// original grammar is untouched
	assert.Equal(t, "E", g.StartSymbol())
}

func Test_Grammar_Validate_UndefinedSymbol(t *testing.T) {
	g := New()
	g.AddTerm("id")
	g.AddRule("E", Production{"id", "bogus"})

	err := g.Validate()
	assert.Error(t, err)
}

func Test_Grammar_Validate_OK(t *testing.T) {
	g := exprGrammar()
	assert.NoError(t, g.Validate())
}

func Test_FirstOfSequenceWithLookahead_SingleTerminal(t *testing.T) {
	g := exprGrammar()
	first := FirstOfSequenceWithLookahead(g, []string{"id"}, EndOfInput)
	assert.Equal(t, map[string]bool{"id": true}, first)
}

func Test_FirstOfSequenceWithLookahead_EmptyFallsBackToLookahead(t *testing.T) {
	g := exprGrammar()
	first := FirstOfSequenceWithLookahead(g, nil, EndOfInput)
	assert.Equal(t, map[string]bool{EndOfInput: true}, first)
}

func Test_FirstOfSequenceWithLookahead_NonTerminal(t *testing.T) {
	g := exprGrammar()
	first := FirstOfSequenceWithLookahead(g, []string{"T"}, "+")
	assert.Equal(t, map[string]bool{"id": true}, first)
}
