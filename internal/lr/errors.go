package lr

import "fmt"

// grammarConflict is returned when two different, non-equal actions would
// need to occupy the same ACTION table cell — the grammar given is not
// LR(1).
type grammarConflict struct {
	state         int
	symbol        string
	first, second Action
}

func (e *grammarConflict) Error() string {
	return fmt.Sprintf("grammar is not LR(1): found both %s and %s actions for input %q in state %d",
		e.first.String(), e.second.String(), e.symbol, e.state)
}

// NewGrammarConflict returns an error describing a conflicting pair of
// actions computed for the same ACTION table cell.
func NewGrammarConflict(state int, symbol string, first, second Action) error {
	return &grammarConflict{state: state, symbol: symbol, first: first, second: second}
}

// Conflict carries the same fields as the unexported grammarConflict type
// for callers that want to inspect a returned error with errors.As.
type Conflict interface {
	error
	State() int
	Symbol() string
	Actions() (Action, Action)
}

func (e *grammarConflict) State() int               { return e.state }
func (e *grammarConflict) Symbol() string            { return e.symbol }
func (e *grammarConflict) Actions() (Action, Action) { return e.first, e.second }

var _ Conflict = (*grammarConflict)(nil)
