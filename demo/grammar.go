// Package demo exercises the grammar/lr/lrparse core end-to-end with a
// small if/else demonstration language. It is an external collaborator,
// not part of the parser-generator or regex core: a worked example of
// building a grammar, a table, and a tokenizer for it.
package demo

import "github.com/nkall/canonlr/internal/grammar"

// BuildGrammar returns the grammar for the single-statement demonstration
// language:
//
//	start -> stmt
//	stmt  -> if ( C ) S1 else S2
func BuildGrammar() grammar.Grammar {
	g := grammar.New()

	for _, t := range []string{"if", "(", ")", "C", "S1", "else", "S2"} {
		g.AddTerm(t)
	}

	g.AddRule("start", grammar.Production{"stmt"})
	g.AddRule("stmt", grammar.Production{"if", "(", "C", ")", "S1", "else", "S2"})

	return g
}
