package regex

import (
	"github.com/nkall/canonlr/internal/automaton"
	"github.com/nkall/canonlr/internal/grammar"
	"github.com/nkall/canonlr/internal/lrparse"
)

// semanticActions returns the production-indexed table of NFA-building
// closures driving the regex grammar's reductions: each entry is a typed
// function from the popped right-hand-side values to the synthesized
// left-hand-side value.
//
// Terminal symbols that are not "a" never carry a meaningful value — their
// shift pushes the zero value (nil *automaton.Graph) — so actions that
// reduce a production containing them index around those positions rather
// than reading them.
func semanticActions() map[string]func([]*automaton.Graph) *automaton.Graph {
	actions := map[string]func([]*automaton.Graph) *automaton.Graph{}

	actions[lrparse.ProdKey("R", grammar.Production{"S"})] = func(v []*automaton.Graph) *automaton.Graph {
		return v[0]
	}

	actions[lrparse.ProdKey("S", grammar.Production{"S", "|", "D"})] = func(v []*automaton.Graph) *automaton.Graph {
		return automaton.Or(v[0], v[2])
	}

	actions[lrparse.ProdKey("S", grammar.Production{"S", "D"})] = func(v []*automaton.Graph) *automaton.Graph {
		return automaton.Cat(v[0], v[1])
	}

	actions[lrparse.ProdKey("S", grammar.Production{"D"})] = func(v []*automaton.Graph) *automaton.Graph {
		return v[0]
	}

	actions[lrparse.ProdKey("D", grammar.Production{"K", "*"})] = func(v []*automaton.Graph) *automaton.Graph {
		return automaton.Star(v[0])
	}

	actions[lrparse.ProdKey("D", grammar.Production{"K"})] = func(v []*automaton.Graph) *automaton.Graph {
		return v[0]
	}

	actions[lrparse.ProdKey("K", grammar.Production{"(", "S", ")"})] = func(v []*automaton.Graph) *automaton.Graph {
		return v[1]
	}

	actions[lrparse.ProdKey("K", grammar.Production{"a"})] = func(v []*automaton.Graph) *automaton.Graph {
		return v[0]
	}

	return actions
}
