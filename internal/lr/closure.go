package lr

import (
	"strings"

	"github.com/nkall/canonlr/internal/grammar"
	"github.com/nkall/canonlr/internal/util"
)

// itemSet is a set of LR(1) items keyed by their canonical string form.
type itemSet map[string]grammar.LR1Item

// closure computes the closure of items under g: repeatedly adding, for
// every item [A -> α.Xβ, a] where X is a non-terminal, the items
// [X -> .γ, b] for each production X -> γ and each b in FIRST(βa), until no
// new items are produced.
func closure(g grammar.Grammar, ft grammar.FirstTable, items itemSet) itemSet {
	result := make(itemSet, len(items))
	var worklist util.Stack[grammar.LR1Item]

	for k, v := range items {
		result[k] = v
		worklist.Push(v)
	}

	for !worklist.Empty() {
		item := worklist.Pop()

		if len(item.Right) == 0 {
			continue
		}
		X := item.Right[0]
		if !g.IsNonTerminal(X) {
			continue
		}
		beta := item.Right[1:]

		lookaheads := ft.OfSequenceWithLookahead(beta, item.Lookahead)

		rule := g.Rule(X)
		for _, prod := range rule.Productions {
			for a := range lookaheads {
				newItem := grammar.LR1Item{
					LR0Item: grammar.LR0Item{
						NonTerminal: X,
						Right:       append([]string{}, prod...),
					},
					Lookahead: a,
				}
				key := newItem.String()
				if _, exists := result[key]; !exists {
					result[key] = newItem
					worklist.Push(newItem)
				}
			}
		}
	}

	return result
}

// gotoSet returns the item set reachable from items by shifting symbol, or
// nil if no item in items expects symbol next.
func gotoSet(g grammar.Grammar, ft grammar.FirstTable, items itemSet, symbol string) itemSet {
	moved := itemSet{}
	for _, item := range items {
		if len(item.Right) > 0 && item.Right[0] == symbol {
			adv := item.Advance()
			moved[adv.String()] = adv
		}
	}
	if len(moved) == 0 {
		return nil
	}
	return closure(g, ft, moved)
}

// canonicalKey returns a representation of items suitable for use as a map
// key that is independent of map iteration order, so that two structurally
// identical item sets always compare equal regardless of how they were
// built up.
func canonicalKey(items itemSet) string {
	keys := util.OrderedKeys(items)
	return strings.Join(keys, "\x00")
}
