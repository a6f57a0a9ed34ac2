package regex

import "fmt"

// escapeError is returned by Lex when a backslash precedes a character that
// is not one of the regex metacharacters it is legal to escape.
type escapeError struct {
	char rune
}

func (e *escapeError) Error() string {
	if e.char == 0 {
		return "dangling escape character at end of pattern"
	}
	return fmt.Sprintf("invalid escape sequence: \\%c", e.char)
}

// Char returns the offending character, or the zero rune if the pattern
// ended right after the backslash.
func (e *escapeError) Char() rune { return e.char }

// NewEscapeError returns an error describing an invalid \c escape. Pass the
// zero rune for a backslash with nothing following it.
func NewEscapeError(char rune) error {
	return &escapeError{char: char}
}
