// Package lrparse implements the stack-driven LR(1) parser: given an
// lr.Table and a stream of tokens, it runs Algorithm 4.44 ("LR-parsing
// algorithm") from the Dragon Book, invoking caller-supplied semantic
// actions on each reduce so the driver can double as a syntax-directed
// translator.
package lrparse

import (
	"github.com/nkall/canonlr/internal/grammar"
	"github.com/nkall/canonlr/internal/lr"
	"github.com/nkall/canonlr/internal/util"
)

// Token is a single lexical token fed to the driver: a terminal symbol name
// and the matched lexeme.
type Token struct {
	Terminal string
	Lexeme   string
}

// ProdKey returns the semantic-action table key for a production. Both
// Driver's Actions map and lr.Table's reduce cells use this same
// "NonTerminal -> body" textual form, so a key computed here always matches
// the NonTerminal/Production pair in a lr.Action of type ActionReduce.
func ProdKey(nonTerminal string, body grammar.Production) string {
	return nonTerminal + " -> " + body.String()
}

// Driver runs the shift/reduce/goto/accept loop against a table, threading a
// value stack of type V through shifts (via Leaf) and reduces (via Actions):
// a table of typed functions indexed by production, rather than building and
// evaluating a formatted expression string at each reduce.
type Driver[V any] struct {
	table *lr.Table

	// Actions maps a ProdKey to the function computing that production's
	// synthesized value from its popped right-hand-side values, in body
	// order.
	Actions map[string]func(popped []V) V

	// Leaf computes the initial value pushed for a shifted token. If nil,
	// the zero value of V is pushed for every shift.
	Leaf func(Token) V
}

// NewDriver returns a Driver ready to Parse token streams against table.
func NewDriver[V any](table *lr.Table, actions map[string]func([]V) V, leaf func(Token) V) *Driver[V] {
	return &Driver[V]{table: table, Actions: actions, Leaf: leaf}
}

// Parse runs tokens (which must not already include a trailing end-of-input
// token) through the shift/reduce driver and returns the synthesized value
// of the start symbol on acceptance.
func (d *Driver[V]) Parse(tokens []Token) (V, error) {
	var zero V

	stream := make([]Token, 0, len(tokens)+1)
	stream = append(stream, tokens...)
	stream = append(stream, Token{Terminal: grammar.EndOfInput})
	pos := 0

	var stateStack util.Stack[int]
	stateStack.Push(d.table.Initial())
	var valueStack util.Stack[V]

	for {
		state := stateStack.Peek()
		lookahead := stream[pos]
		act := d.table.Action(state, lookahead.Terminal)

		switch act.Type {
		case lr.ActionShift:
			stateStack.Push(act.State)
			leafVal := zero
			if d.Leaf != nil {
				leafVal = d.Leaf(lookahead)
			}
			valueStack.Push(leafVal)
			pos++

		case lr.ActionReduce:
			body := act.Production
			popped := valueStack.PopN(len(body))
			for i := 0; i < len(body); i++ {
				stateStack.Pop()
			}

			var result V
			if fn, ok := d.Actions[ProdKey(act.NonTerminal, body)]; ok {
				result = fn(popped)
			}
			valueStack.Push(result)

			top := stateStack.Peek()
			next, ok := d.table.Goto(top, act.NonTerminal)
			if !ok {
				return zero, NewParseError(lookahead.Terminal, top)
			}
			stateStack.Push(next)
			// deliberately does not advance pos: the reduced lookahead is
			// re-examined against the post-goto state on the next
			// iteration, per Algorithm 4.44 step (b).

		case lr.ActionAccept:
			return valueStack.Peek(), nil

		default:
			return zero, NewParseError(lookahead.Terminal, state)
		}
	}
}
