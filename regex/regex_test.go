package regex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Lex_PlainLiteral(t *testing.T) {
	lexemes, err := Lex("ab")
	assert.NoError(t, err)
	assert.Equal(t, []Lexeme{{Terminal: "a", Value: "a"}, {Terminal: "a", Value: "b"}}, lexemes)
}

func Test_Lex_Metacharacters(t *testing.T) {
	lexemes, err := Lex("(a|b)*")
	assert.NoError(t, err)

	terms := make([]string, len(lexemes))
	for i, lx := range lexemes {
		terms[i] = lx.Terminal
	}
	assert.Equal(t, []string{"(", "a", "|", "a", ")", "*"}, terms)
}

func Test_Lex_EscapedMetacharacterIsLiteral(t *testing.T) {
	lexemes, err := Lex(`\(`)
	assert.NoError(t, err)
	assert.Equal(t, []Lexeme{{Terminal: "a", Value: "("}}, lexemes)
}

func Test_Lex_InvalidEscapeIsError(t *testing.T) {
	_, err := Lex(`\q`)
	assert.Error(t, err)

	var escErr *escapeError
	assert.ErrorAs(t, err, &escErr)
	assert.Equal(t, 'q', escErr.Char())
}

func Test_Lex_DanglingEscapeIsError(t *testing.T) {
	_, err := Lex(`\`)
	assert.Error(t, err)
}

func Test_Lex_EscapedDollarIsLiteral(t *testing.T) {
	lexemes, err := Lex(`\$`)
	assert.NoError(t, err)
	assert.Equal(t, []Lexeme{{Terminal: "a", Value: "$"}}, lexemes)
}

func Test_Lex_EscapedBackslashIsError(t *testing.T) {
	_, err := Lex(`\\`)
	assert.Error(t, err)

	var escErr *escapeError
	assert.ErrorAs(t, err, &escErr)
	assert.Equal(t, '\\', escErr.Char())
}

func Test_Compile_And_Match_Literal(t *testing.T) {
	m, err := Compile("abc")
	assert.NoError(t, err)

	assert.True(t, Match(m, "abc"))
	assert.False(t, Match(m, "abd"))
	assert.False(t, Match(m, "ab"))
}

func Test_Compile_And_Match_Alternation(t *testing.T) {
	m, err := Compile("a|b")
	assert.NoError(t, err)

	assert.True(t, Match(m, "a"))
	assert.True(t, Match(m, "b"))
	assert.False(t, Match(m, "c"))
}

func Test_Compile_And_Match_Star(t *testing.T) {
	m, err := Compile("a*")
	assert.NoError(t, err)

	assert.True(t, Match(m, ""))
	assert.True(t, Match(m, "a"))
	assert.True(t, Match(m, "aaaaaa"))
	assert.False(t, Match(m, "ab"))
}

func Test_Compile_And_Match_Grouping(t *testing.T) {
	m, err := Compile("(ab)*c")
	assert.NoError(t, err)

	assert.True(t, Match(m, "c"))
	assert.True(t, Match(m, "abc"))
	assert.True(t, Match(m, "ababc"))
	assert.False(t, Match(m, "abab"))
	assert.False(t, Match(m, "abc ab"))
}

func Test_Compile_And_Match_EscapedLiteralParen(t *testing.T) {
	m, err := Compile(`a\(b`)
	assert.NoError(t, err)

	assert.True(t, Match(m, "a(b"))
	assert.False(t, Match(m, "ab"))
}

func Test_Compile_InvalidPatternPropagatesEscapeError(t *testing.T) {
	_, err := Compile(`a\x`)
	assert.Error(t, err)
}

func Test_Compile_And_Match_NestedRepetitionAndAlternation(t *testing.T) {
	m, err := Compile(`ab\**c*d(e|f)ka*z`)
	assert.NoError(t, err)

	assert.True(t, Match(m, "ab***cccdekz"))
	assert.True(t, Match(m, "abdekz"))
	assert.False(t, Match(m, "abdegz"))
}

func Test_Match_ResetsMachineBetweenCalls(t *testing.T) {
	m, err := Compile("a|b")
	assert.NoError(t, err)

	assert.True(t, Match(m, "a"))
	assert.True(t, Match(m, "b"))
	assert.True(t, Match(m, "a"))
}
