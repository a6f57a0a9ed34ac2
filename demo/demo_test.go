package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Tokenize_SplitsKeywordsAndSkipsSpaces(t *testing.T) {
	tokens, err := Tokenize("if ( C ) S1 else S2")
	assert.NoError(t, err)

	terms := make([]string, len(tokens))
	for i, tok := range tokens {
		terms[i] = tok.Terminal
	}
	assert.Equal(t, []string{"if", "(", "C", ")", "S1", "else", "S2"}, terms)
}

func Test_Parse_AcceptsCompleteStatement(t *testing.T) {
	tokens, err := Tokenize("if ( C ) S1 else S2")
	assert.NoError(t, err)

	result, err := Parse(tokens)
	assert.NoError(t, err)
	assert.Equal(t, "if ( C ) S1 else S2", result)
}

func Test_Parse_RejectsStatementMissingElseBranch(t *testing.T) {
	tokens, err := Tokenize("if ( C ) S1")
	assert.NoError(t, err)

	_, err = Parse(tokens)
	assert.Error(t, err)
}
