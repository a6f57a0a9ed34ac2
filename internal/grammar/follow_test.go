package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_NewFollowTable_StartSymbolIncludesEndOfInput(t *testing.T) {
	g := exprGrammar()
	ft := NewFollowTable(g)

	assert.Equal(t, map[string]bool{EndOfInput: true, "+": true}, ft.Of("E"))
}

func Test_NewFollowTable_PropagatesThroughTrailingNonTerminal(t *testing.T) {
	g := exprGrammar()
	ft := NewFollowTable(g)

	// T is always the last symbol of its productions (E -> E + T, E -> T),
	// so FOLLOW(T) must equal FOLLOW(E).
	assert.Equal(t, ft.Of("E"), ft.Of("T"))
}

func Test_NewFollowTable_IncludesFirstOfWhatFollows(t *testing.T) {
	g := exprGrammar()
	ft := NewFollowTable(g)

	assert.True(t, ft.Of("E")["+"])
}
