package regex

import "github.com/nkall/canonlr/internal/grammar"

// buildGrammar returns the fixed 8-production regex grammar:
//
//	R -> S
//	S -> S | D
//	S -> S D
//	S -> D
//	D -> K *
//	D -> K
//	K -> ( S )
//	K -> a
func buildGrammar() grammar.Grammar {
	g := grammar.New()

	for _, t := range []string{"(", ")", "|", "*", "a"} {
		g.AddTerm(t)
	}

	g.AddRule("R", grammar.Production{"S"})
	g.AddRule("S", grammar.Production{"S", "|", "D"})
	g.AddRule("S", grammar.Production{"S", "D"})
	g.AddRule("S", grammar.Production{"D"})
	g.AddRule("D", grammar.Production{"K", "*"})
	g.AddRule("D", grammar.Production{"K"})
	g.AddRule("K", grammar.Production{"(", "S", ")"})
	g.AddRule("K", grammar.Production{"a"})

	return g
}
