package demo

import (
	"fmt"

	"github.com/nkall/canonlr/internal/automaton"
	"github.com/nkall/canonlr/internal/lrparse"
	"github.com/nkall/canonlr/regex"
)

type tokenSpec struct {
	terminal string
	machine  *automaton.Machine
}

var (
	tokenSpecs []tokenSpec
	wsMachine  *automaton.Machine
)

func init() {
	patterns := []struct{ terminal, pattern string }{
		{"if", "if"},
		{"else", "else"},
		{"(", "\\("},
		{")", "\\)"},
		{"S1", "S1"},
		{"S2", "S2"},
		{"C", "C"},
	}

	for _, p := range patterns {
		m, err := regex.Compile(p.pattern)
		if err != nil {
			panic(fmt.Sprintf("demo: bad built-in token pattern %q: %v", p.pattern, err))
		}
		tokenSpecs = append(tokenSpecs, tokenSpec{terminal: p.terminal, machine: m})
	}

	var err error
	wsMachine, err = regex.Compile(" *")
	if err != nil {
		panic("demo: bad whitespace pattern: " + err.Error())
	}
}

// longestMatch returns the length, in runes, of the longest prefix of s
// accepted by m, or -1 if no prefix of s, not even the empty one, is
// accepted.
func longestMatch(m *automaton.Machine, s string) int {
	m.Reset()
	defer m.Reset()

	best := -1
	if m.Accepting() {
		best = 0
	}

	for i, r := range []rune(s) {
		if !m.Step(string(r)) {
			break
		}
		if m.Accepting() {
			best = i + 1
		}
	}

	return best
}

// Tokenize splits input into the terminal stream the if/else grammar
// expects, skipping runs of spaces between tokens and matching the longest
// known token at each position. Each token pattern is itself compiled with
// regex.Compile rather than a second, demo-only matcher.
func Tokenize(input string) ([]lrparse.Token, error) {
	var tokens []lrparse.Token
	runes := []rune(input)
	pos := 0

	for pos < len(runes) {
		remaining := string(runes[pos:])

		if n := longestMatch(wsMachine, remaining); n > 0 {
			pos += n
			continue
		}

		bestLen := -1
		bestTerm := ""
		for _, spec := range tokenSpecs {
			if n := longestMatch(spec.machine, remaining); n > bestLen {
				bestLen = n
				bestTerm = spec.terminal
			}
		}

		if bestLen <= 0 {
			return nil, fmt.Errorf("demo: no token matches input at position %d: %q", pos, remaining)
		}

		lexeme := string(runes[pos : pos+bestLen])
		tokens = append(tokens, lrparse.Token{Terminal: bestTerm, Lexeme: lexeme})
		pos += bestLen
	}

	return tokens, nil
}
