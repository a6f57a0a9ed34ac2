package demo

import (
	"strings"

	"github.com/nkall/canonlr/internal/grammar"
	"github.com/nkall/canonlr/internal/lr"
	"github.com/nkall/canonlr/internal/lrparse"
)

var (
	theGrammar = BuildGrammar()
	theTable   *lr.Table
)

func init() {
	var err error
	theTable, err = lr.Build(theGrammar)
	if err != nil {
		panic("demo: built-in grammar failed to build an LR(1) table: " + err.Error())
	}
}

func semanticActions() map[string]func([]string) string {
	actions := map[string]func([]string) string{}

	actions[lrparse.ProdKey("start", grammar.Production{"stmt"})] = func(v []string) string {
		return v[0]
	}

	actions[lrparse.ProdKey("stmt", grammar.Production{"if", "(", "C", ")", "S1", "else", "S2"})] = func(v []string) string {
		return strings.Join([]string{"if", "(", v[2], ")", v[4], "else", v[6]}, " ")
	}

	return actions
}

// Parse runs a token stream (as produced by Tokenize) through the if/else
// grammar's canonical LR(1) table, returning a flattened textual rendering
// of the accepted statement, or a *lrparse error wrapping the offending
// token and state on failure (see spec scenario: a stream missing its
// trailing "else S2" fails at "$").
func Parse(tokens []lrparse.Token) (string, error) {
	driver := lrparse.NewDriver(theTable, semanticActions(), func(tok lrparse.Token) string {
		return tok.Lexeme
	})
	return driver.Parse(tokens)
}
