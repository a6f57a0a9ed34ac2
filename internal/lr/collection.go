package lr

import (
	"github.com/nkall/canonlr/internal/grammar"
)

// Collection is the canonical collection of sets of LR(1) items for some
// grammar, along with the GOTO transitions between them. Sets[i] is item set
// I_i; Goto[i][X] is the label j such that GOTO(I_i, X) = I_j, if defined.
type Collection struct {
	Sets  []itemSet
	Goto  []map[string]int
	Start int
}

// findLabel looks up the already-interned label for an item set's canonical
// key.
//
// This always uses the two-value map form. A one-value lookup
// ("if labels[key] != 0") would conflate "not yet interned" with "interned
// as state 0" — state 0 is a perfectly ordinary state (it is, in fact, the
// start state here), so that shortcut would silently treat it as the
// not-found case and intern a duplicate.
func findLabel(labels map[string]int, key string) (int, bool) {
	label, ok := labels[key]
	return label, ok
}

// buildCanonicalCollection constructs the canonical collection of sets of
// LR(1) items for the augmented form of g, by worklist closure/GOTO
// starting from the item [S' -> .S, $]. Item sets are de-duplicated by an
// explicit label table keyed by canonicalKey, since a set of item sets has
// no native hashable representation in Go.
func buildCanonicalCollection(aug grammar.Grammar, origStart string) *Collection {
	ft := grammar.NewFirstTable(aug)

	startItem := grammar.LR1Item{
		LR0Item: grammar.LR0Item{
			NonTerminal: aug.StartSymbol(),
			Right:       []string{origStart},
		},
		Lookahead: grammar.EndOfInput,
	}
	startSet := closure(aug, ft, itemSet{startItem.String(): startItem})

	col := &Collection{Start: 0}
	labels := map[string]int{}

	col.Sets = append(col.Sets, startSet)
	col.Goto = append(col.Goto, map[string]int{})
	labels[canonicalKey(startSet)] = 0

	var worklist []int
	worklist = append(worklist, 0)

	symbols := aug.AllSymbols()

	for len(worklist) > 0 {
		i := worklist[0]
		worklist = worklist[1:]

		iSet := col.Sets[i]
		for _, sym := range symbols {
			moved := gotoSet(aug, ft, iSet, sym)
			if len(moved) == 0 {
				continue
			}

			key := canonicalKey(moved)
			label, ok := findLabel(labels, key)
			if !ok {
				label = len(col.Sets)
				labels[key] = label
				col.Sets = append(col.Sets, moved)
				col.Goto = append(col.Goto, map[string]int{})
				worklist = append(worklist, label)
			}
			col.Goto[i][sym] = label
		}
	}

	return col
}
