package lr

import (
	"fmt"
	"sort"

	"github.com/dekarrin/rosed"
	"github.com/nkall/canonlr/internal/grammar"
)

// Table is a canonical-LR(1) ACTION/GOTO parse table, generated over some
// grammar.
type Table struct {
	aug       grammar.Grammar
	origStart string
	terms     []string
	nonTerms  []string
	col       *Collection
	action    map[int]map[string]Action
	goTo      map[int]map[string]int
}

// Build constructs the canonical LR(1) ACTION/GOTO table for g.
//
// This is the Go rendering of Algorithm 4.56, "Construction of canonical-LR
// parsing tables," from the Dragon Book. The canonical LR(1) collection is
// built directly by item-set closure and GOTO (see buildCanonicalCollection)
// rather than via an LR(0)-item NFA run through subset construction, since
// this package only ever needs canonical LR(1).
func Build(g grammar.Grammar) (*Table, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	aug := g.Augmented()
	col := buildCanonicalCollection(aug, g.StartSymbol())

	t := &Table{
		aug:       aug,
		origStart: g.StartSymbol(),
		terms:     g.Terminals(),
		nonTerms:  g.NonTerminals(),
		col:       col,
		action:    map[int]map[string]Action{},
		goTo:      map[int]map[string]int{},
	}

	for i, items := range col.Sets {
		t.action[i] = map[string]Action{}
		t.goTo[i] = map[string]int{}

		for sym, j := range col.Goto[i] {
			if aug.IsNonTerminal(sym) {
				t.goTo[i][sym] = j
			}
		}

		// step 2 of algorithm 4.56: derive ACTION entries from each item in
		// this state's closure.
		for _, item := range items {
			A := item.NonTerminal
			alpha := item.Left
			beta := item.Right
			b := item.Lookahead

			if len(beta) > 0 && aug.IsTerminal(beta[0]) {
				a := beta[0]
				if j, ok := col.Goto[i][a]; ok {
					if err := t.setAction(i, a, Action{Type: ActionShift, State: j}); err != nil {
						return nil, err
					}
				}
			}

			if len(beta) == 0 && A != aug.StartSymbol() {
				act := Action{Type: ActionReduce, NonTerminal: A, Production: grammar.Production(alpha)}
				if err := t.setAction(i, b, act); err != nil {
					return nil, err
				}
			}

			if b == grammar.EndOfInput && A == aug.StartSymbol() &&
				len(alpha) == 1 && alpha[0] == t.origStart && len(beta) == 0 {
				if err := t.setAction(i, grammar.EndOfInput, Action{Type: ActionAccept}); err != nil {
					return nil, err
				}
			}
		}
	}

	return t, nil
}

func (t *Table) setAction(state int, sym string, act Action) error {
	row := t.action[state]
	if existing, ok := row[sym]; ok {
		if !existing.Equal(act) {
			return NewGrammarConflict(state, sym, existing, act)
		}
		return nil
	}
	row[sym] = act
	return nil
}

// Action returns the ACTION table cell for (state, terminal). A cell with no
// entry is returned as the zero-value ActionError action.
func (t *Table) Action(state int, terminal string) Action {
	row, ok := t.action[state]
	if !ok {
		return Action{Type: ActionError}
	}
	act, ok := row[terminal]
	if !ok {
		return Action{Type: ActionError}
	}
	return act
}

// Goto returns the GOTO table cell for (state, nonTerminal) and whether it
// is defined.
func (t *Table) Goto(state int, nonTerminal string) (int, bool) {
	row, ok := t.goTo[state]
	if !ok {
		return 0, false
	}
	j, ok := row[nonTerminal]
	return j, ok
}

// Initial returns the label of the starting state.
func (t *Table) Initial() int {
	return t.col.Start
}

// NumStates returns the number of states in the table.
func (t *Table) NumStates() int {
	return len(t.col.Sets)
}

// String renders the ACTION and GOTO columns as a single formatted table,
// one row per state.
func (t *Table) String() string {
	allTerms := make([]string, len(t.terms))
	copy(allTerms, t.terms)
	allTerms = append(allTerms, grammar.EndOfInput)

	states := make([]int, t.NumStates())
	for i := range states {
		states[i] = i
	}
	sort.Ints(states)

	data := [][]string{}

	headers := []string{"S", "|"}
	for _, term := range allTerms {
		headers = append(headers, fmt.Sprintf("A:%s", term))
	}
	headers = append(headers, "|")
	for _, nt := range t.nonTerms {
		headers = append(headers, fmt.Sprintf("G:%s", nt))
	}
	data = append(data, headers)

	for _, i := range states {
		row := []string{fmt.Sprintf("%d", i), "|"}

		for _, term := range allTerms {
			act := t.Action(i, term)
			cell := ""
			switch act.Type {
			case ActionAccept:
				cell = "acc"
			case ActionReduce:
				cell = fmt.Sprintf("r%s -> %s", act.NonTerminal, act.Production.String())
			case ActionShift:
				cell = fmt.Sprintf("s%d", act.State)
			case ActionError:
				// leave blank
			}
			row = append(row, cell)
		}

		row = append(row, "|")

		for _, nt := range t.nonTerms {
			cell := ""
			if j, ok := t.Goto(i, nt); ok {
				cell = fmt.Sprintf("%d", j)
			}
			row = append(row, cell)
		}

		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}
