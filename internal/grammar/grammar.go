// Package grammar provides a minimal context-free grammar model — symbols,
// productions, and LR(1) items — shared by the table-building and regex
// front-end packages.
package grammar

import (
	"fmt"
	"strings"

	"github.com/nkall/canonlr/internal/util"
)

// Epsilon is the sentinel empty production body; a Production with zero
// length is the empty string.
var Epsilon = Production(nil)

// EndOfInput is the distinguished end-of-input terminal, used as the
// lookahead for the augmented grammar's start item and appended to FIRST
// sets computed at the end of a right-hand side.
const EndOfInput = "$"

// Production is the right-hand side of a rule: an ordered list of symbols.
// A nil or empty Production represents the epsilon production.
type Production []string

func (p Production) String() string {
	if len(p) == 0 {
		return "ε"
	}
	return strings.Join(p, " ")
}

// Rule collects every production for a single non-terminal.
type Rule struct {
	NonTerminal string
	Productions []Production
}

// Grammar is an ordered, mutable context-free grammar: a start symbol, a set
// of terminals, and a set of rules, one per non-terminal.
type Grammar struct {
	rules      map[string]Rule
	ruleOrder  []string
	terminals  map[string]bool
	termOrder  []string
	start      string
}

// New returns an empty Grammar ready to have terminals and rules added to it.
func New() Grammar {
	return Grammar{
		rules:     map[string]Rule{},
		terminals: map[string]bool{},
	}
}

// AddTerm registers term as a terminal symbol of the grammar. Adding the same
// terminal twice has no additional effect.
func (g *Grammar) AddTerm(term string) {
	if g.terminals == nil {
		g.terminals = map[string]bool{}
	}
	if g.terminals[term] {
		return
	}
	g.terminals[term] = true
	g.termOrder = append(g.termOrder, term)
}

// AddRule adds a production to the rule for nonTerminal, creating the rule
// (and setting the start symbol, if this is the first rule added) if it does
// not already exist. The first non-terminal ever added via AddRule becomes
// the grammar's start symbol.
func (g *Grammar) AddRule(nonTerminal string, p Production) {
	if g.rules == nil {
		g.rules = map[string]Rule{}
	}

	r, ok := g.rules[nonTerminal]
	if !ok {
		r = Rule{NonTerminal: nonTerminal}
		g.ruleOrder = append(g.ruleOrder, nonTerminal)
		if g.start == "" {
			g.start = nonTerminal
		}
	}
	r.Productions = append(r.Productions, p)
	g.rules[nonTerminal] = r
}

// Rule returns the rule for the given non-terminal. The zero Rule is
// returned if none exists.
func (g Grammar) Rule(nonTerminal string) Rule {
	return g.rules[nonTerminal]
}

// StartSymbol returns the grammar's start non-terminal.
func (g Grammar) StartSymbol() string {
	return g.start
}

// IsTerminal returns whether sym is a registered terminal of the grammar.
// The distinguished end-of-input marker "$" is always considered a
// terminal.
func (g Grammar) IsTerminal(sym string) bool {
	if sym == EndOfInput {
		return true
	}
	return g.terminals[sym]
}

// IsNonTerminal returns whether sym has a rule defined for it.
func (g Grammar) IsNonTerminal(sym string) bool {
	_, ok := g.rules[sym]
	return ok
}

// Terminals returns the terminals of the grammar in the order they were
// added, not including the end-of-input marker.
func (g Grammar) Terminals() []string {
	out := make([]string, len(g.termOrder))
	copy(out, g.termOrder)
	return out
}

// NonTerminals returns the non-terminals of the grammar in the order their
// first rule was added.
func (g Grammar) NonTerminals() []string {
	out := make([]string, len(g.ruleOrder))
	copy(out, g.ruleOrder)
	return out
}

// ProducesEpsilon returns whether nonTerminal has a production that is
// exactly the empty string.
func (g Grammar) ProducesEpsilon(nonTerminal string) bool {
	r, ok := g.rules[nonTerminal]
	if !ok {
		return false
	}
	for _, p := range r.Productions {
		if len(p) == 0 {
			return true
		}
	}
	return false
}

// Augmented returns a new Grammar identical to g but with a fresh start
// symbol S' and a single production S' -> S prepended, where S is g's
// original start symbol. The returned grammar's StartSymbol is the new S'.
func (g Grammar) Augmented() Grammar {
	newStart := g.start + "'"
	for g.IsNonTerminal(newStart) || g.IsTerminal(newStart) {
		newStart += "'"
	}

	aug := New()
	aug.AddRule(newStart, Production{g.start})
	for _, nt := range g.ruleOrder {
		r := g.rules[nt]
		for _, p := range r.Productions {
			aug.AddRule(nt, p)
		}
	}
	for _, t := range g.termOrder {
		aug.AddTerm(t)
	}
	return aug
}

// Validate checks the grammar for basic well-formedness: a start symbol is
// set, every production symbol is a known terminal or non-terminal, and no
// symbol is declared as both.
func (g Grammar) Validate() error {
	if g.start == "" {
		return fmt.Errorf("grammar has no start symbol")
	}
	for nt := range g.rules {
		if g.terminals[nt] {
			return fmt.Errorf("symbol %q is declared as both a terminal and a non-terminal", nt)
		}
	}
	var undefined []string
	seen := map[string]bool{}
	for _, nt := range g.ruleOrder {
		for _, p := range g.rules[nt].Productions {
			for _, sym := range p {
				if !g.IsTerminal(sym) && !g.IsNonTerminal(sym) && !seen[sym] {
					seen[sym] = true
					undefined = append(undefined, fmt.Sprintf("%q", sym))
				}
			}
		}
	}
	if len(undefined) > 0 {
		return fmt.Errorf("grammar uses undefined symbol(s) %s", util.MakeTextList(undefined))
	}
	return nil
}

// AllSymbols returns every terminal and non-terminal in the grammar, in the
// order terminals-then-non-terminals were added, plus the end-of-input
// marker.
func (g Grammar) AllSymbols() []string {
	all := make([]string, 0, len(g.termOrder)+len(g.ruleOrder)+1)
	all = append(all, g.termOrder...)
	all = append(all, g.ruleOrder...)
	all = append(all, EndOfInput)
	return all
}
