package literal

import (
	"errors"
	"fmt"
)

// ErrNoMatch reports that the recognizer's grammar was not satisfied at
// the cursor. It is ordinary control flow in an ordered alternation, not a
// syntax error; the cursor is always restored before it is returned.
var ErrNoMatch = errors.New("literal: no match")

// OverflowError reports a digit run whose magnitude exceeds the 64-bit
// representable range. The reference behavior of aborting on unchecked
// conversion is deliberately not reproduced; overflow is recoverable.
type OverflowError struct {
	Text string // the offending digit run
	Pos  int    // byte offset of the literal
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("literal %q at offset %d overflows 64 bits", e.Text, e.Pos)
}

// CharacterError reports a malformed character literal: zero or multiple
// characters between the quotes, a missing closing quote, or a character
// outside the Latin-1 range.
type CharacterError struct {
	Text string
	Pos  int
}

func (e *CharacterError) Error() string {
	return fmt.Sprintf("malformed character literal %q at offset %d", e.Text, e.Pos)
}

// UnterminatedError reports a string literal whose opening quote has no
// matching closing quote before end of input.
type UnterminatedError struct {
	Pos int // byte offset of the opening quote
}

func (e *UnterminatedError) Error() string {
	return fmt.Sprintf("unterminated string literal starting at offset %d", e.Pos)
}
