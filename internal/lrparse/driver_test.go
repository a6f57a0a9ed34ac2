package lrparse

import (
	"strconv"
	"testing"

	"github.com/nkall/canonlr/internal/grammar"
	"github.com/nkall/canonlr/internal/lr"
	"github.com/stretchr/testify/assert"
)

// sumGrammar builds E -> E + T | T, T -> id, with a semantic table that sums
// the integer value of each "id" lexeme, to exercise both shift-leaf values
// and reduce actions end-to-end.
func sumGrammar(t *testing.T) (*lr.Table, map[string]func([]int) int) {
	g := grammar.New()
	g.AddTerm("+")
	g.AddTerm("id")
	g.AddRule("E", grammar.Production{"E", "+", "T"})
	g.AddRule("E", grammar.Production{"T"})
	g.AddRule("T", grammar.Production{"id"})

	table, err := lr.Build(g)
	assert.NoError(t, err)

	actions := map[string]func([]int) int{
		ProdKey("E", grammar.Production{"E", "+", "T"}): func(v []int) int { return v[0] + v[2] },
		ProdKey("E", grammar.Production{"T"}):            func(v []int) int { return v[0] },
		ProdKey("T", grammar.Production{"id"}):           func(v []int) int { return v[0] },
	}

	return table, actions
}

func Test_Driver_Parse_Accepts(t *testing.T) {
	table, actions := sumGrammar(t)

	driver := NewDriver(table, actions, func(tok Token) int {
		n, _ := strconv.Atoi(tok.Lexeme)
		return n
	})

	result, err := driver.Parse([]Token{
		{Terminal: "id", Lexeme: "2"},
		{Terminal: "+", Lexeme: "+"},
		{Terminal: "id", Lexeme: "3"},
		{Terminal: "+", Lexeme: "+"},
		{Terminal: "id", Lexeme: "4"},
	})

	assert.NoError(t, err)
	assert.Equal(t, 9, result)
}

func Test_Driver_Parse_RejectsMalformedInput(t *testing.T) {
	table, actions := sumGrammar(t)

	driver := NewDriver(table, actions, func(tok Token) int {
		n, _ := strconv.Atoi(tok.Lexeme)
		return n
	})

	_, err := driver.Parse([]Token{
		{Terminal: "+", Lexeme: "+"},
		{Terminal: "id", Lexeme: "3"},
	})

	assert.Error(t, err)
}
