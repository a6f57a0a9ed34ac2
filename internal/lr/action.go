package lr

import (
	"fmt"

	"github.com/nkall/canonlr/internal/grammar"
)

// ActionType is the kind of action an ACTION table cell holds.
type ActionType int

const (
	ActionError ActionType = iota
	ActionShift
	ActionReduce
	ActionAccept
)

// Action is a single ACTION table cell.
type Action struct {
	Type ActionType

	// State is the state to shift to. Only meaningful when Type is
	// ActionShift.
	State int

	// NonTerminal and Production give the rule to reduce by (A -> Production).
	// Only meaningful when Type is ActionReduce.
	NonTerminal string
	Production  grammar.Production
}

// Equal reports whether two actions are the same action.
func (a Action) Equal(o Action) bool {
	if a.Type != o.Type {
		return false
	}
	switch a.Type {
	case ActionShift:
		return a.State == o.State
	case ActionReduce:
		if a.NonTerminal != o.NonTerminal || len(a.Production) != len(o.Production) {
			return false
		}
		for i := range a.Production {
			if a.Production[i] != o.Production[i] {
				return false
			}
		}
		return true
	default:
		return true
	}
}

func (a Action) String() string {
	switch a.Type {
	case ActionShift:
		return fmt.Sprintf("shift %d", a.State)
	case ActionReduce:
		return fmt.Sprintf("reduce %s -> %s", a.NonTerminal, a.Production.String())
	case ActionAccept:
		return "accept"
	default:
		return "error"
	}
}
