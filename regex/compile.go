package regex

import (
	"github.com/nkall/canonlr/internal/automaton"
	"github.com/nkall/canonlr/internal/lr"
	"github.com/nkall/canonlr/internal/lrparse"
)

var (
	theGrammar = buildGrammar()
	theTable   *lr.Table
)

func init() {
	var err error
	theTable, err = lr.Build(theGrammar)
	if err != nil {
		// the regex grammar is fixed and known LR(1); a failure here means
		// the grammar or the table builder has a bug, not bad user input.
		panic("regex: built-in grammar failed to build an LR(1) table: " + err.Error())
	}
}

// Compile parses pattern as a regular expression and constructs the NFA
// recognizing the language it describes, ready to be matched against with
// Match.
func Compile(pattern string) (*automaton.Machine, error) {
	lexemes, err := Lex(pattern)
	if err != nil {
		return nil, err
	}

	tokens := make([]lrparse.Token, len(lexemes))
	for i, lx := range lexemes {
		tokens[i] = lrparse.Token{Terminal: lx.Terminal, Lexeme: lx.Value}
	}

	driver := lrparse.NewDriver(theTable, semanticActions(), func(tok lrparse.Token) *automaton.Graph {
		if tok.Terminal == "a" {
			return automaton.Basis(tok.Lexeme)
		}
		return nil
	})

	graph, err := driver.Parse(tokens)
	if err != nil {
		return nil, err
	}

	graph.NumberStates()
	return automaton.NewMachine(graph), nil
}

// Match reports whether s is recognized by m, resetting m's frontier before
// returning regardless of the outcome.
func Match(m *automaton.Machine, s string) bool {
	return automaton.Match(m, s)
}
