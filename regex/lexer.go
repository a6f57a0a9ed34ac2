// Package regex compiles the small regular-expression syntax described by
// grammar.go into a runnable NFA (automaton.Machine) via this module's own
// grammar/lr/lrparse core, and matches strings against the result.
package regex

// Lexeme is a single token of regex syntax: a terminal of the regex grammar
// (one of "(", ")", "|", "*", "a") and the literal character it stands for.
type Lexeme struct {
	Terminal string
	Value    string
}

// metaChars is the set of the only characters that may legally follow a
// backslash: the four operator characters plus '$', which unescaped is an
// ordinary letter.
var metaChars = map[rune]bool{
	'(': true,
	')': true,
	'|': true,
	'*': true,
	'$': true,
}

// Lex scans pattern into a stream of Lexemes. A backslash escapes one of
// the metacharacters, producing a literal "a" token for it instead of its
// special meaning; any other character following a backslash is an
// EscapeError.
func Lex(pattern string) ([]Lexeme, error) {
	var lexemes []Lexeme
	runes := []rune(pattern)

	for i := 0; i < len(runes); i++ {
		c := runes[i]

		switch c {
		case '(', ')', '|', '*':
			lexemes = append(lexemes, Lexeme{Terminal: string(c), Value: string(c)})
		case '\\':
			i++
			if i >= len(runes) {
				return nil, NewEscapeError(0)
			}
			esc := runes[i]
			if !metaChars[esc] {
				return nil, NewEscapeError(esc)
			}
			lexemes = append(lexemes, Lexeme{Terminal: "a", Value: string(esc)})
		default:
			lexemes = append(lexemes, Lexeme{Terminal: "a", Value: string(c)})
		}
	}

	return lexemes, nil
}
