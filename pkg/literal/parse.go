package literal

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ridl-lang/ridl/pkg/scan"
)

// ParseBool recognizes exactly TRUE or FALSE, whole-word. A trailing
// identifier byte invalidates the match, so TRUEX is not a boolean.
func ParseBool(c *scan.Cursor) (Literal, error) {
	mark := c.Mark()
	ch, ok := c.Peek()
	if !ok || !isIdentStart(ch) {
		return Literal{}, ErrNoMatch
	}
	switch c.TakeWhile(isIdentPart) {
	case "TRUE":
		return NewBool(true), nil
	case "FALSE":
		return NewBool(false), nil
	}
	c.ResetTo(mark)
	return Literal{}, ErrNoMatch
}

// ParseHexInt recognizes 0x or 0X followed by one or more hex digits.
// A bare prefix with no digits is a non-match, not a zero.
func ParseHexInt(c *scan.Cursor) (Literal, error) {
	mark := c.Mark()
	if ch, ok := c.Next(); !ok || ch != '0' {
		c.ResetTo(mark)
		return Literal{}, ErrNoMatch
	}
	if ch, ok := c.Next(); !ok || (ch != 'x' && ch != 'X') {
		c.ResetTo(mark)
		return Literal{}, ErrNoMatch
	}
	digits := c.TakeWhile(isHexDigit)
	if digits == "" {
		c.ResetTo(mark)
		return Literal{}, ErrNoMatch
	}
	return parseUint(c, mark, digits, 16)
}

// ParseOctalInt recognizes a leading 0 followed by one or more digits in
// 0-7. Runs containing 8 or 9 are left for the decimal recognizer.
func ParseOctalInt(c *scan.Cursor) (Literal, error) {
	mark := c.Mark()
	if ch, ok := c.Next(); !ok || ch != '0' {
		c.ResetTo(mark)
		return Literal{}, ErrNoMatch
	}
	digits := c.TakeWhile(isOctalDigit)
	if digits == "" {
		c.ResetTo(mark)
		return Literal{}, ErrNoMatch
	}
	return parseUint(c, mark, digits, 8)
}

// ParseDecimalInt recognizes one or more decimal digits.
func ParseDecimalInt(c *scan.Cursor) (Literal, error) {
	mark := c.Mark()
	digits := c.TakeWhile(isDigit)
	if digits == "" {
		return Literal{}, ErrNoMatch
	}
	return parseUint(c, mark, digits, 10)
}

// ParseInteger recognizes an integer literal in any base. The order is a
// hard contract: hex must run before octal so 0x10 is never read as octal
// zero, and octal before decimal so 0123 is never read as decimal 0
// followed by 123.
func ParseInteger(c *scan.Cursor) (Literal, error) {
	for _, parse := range []func(*scan.Cursor) (Literal, error){
		ParseHexInt,
		ParseOctalInt,
		ParseDecimalInt,
	} {
		lit, err := parse(c)
		if err == nil {
			return lit, nil
		}
		if !errors.Is(err, ErrNoMatch) {
			return Literal{}, err
		}
	}
	return Literal{}, ErrNoMatch
}

// ParseFloat recognizes an optional integer digit run, a decimal point,
// and an optional fraction digit run. At least one of the two runs must
// be present, so "." alone is rejected. Exponent notation is not part of
// the grammar.
func ParseFloat(c *scan.Cursor) (Literal, error) {
	mark := c.Mark()
	intDigits := c.TakeWhile(isDigit)
	if ch, ok := c.Peek(); !ok || ch != '.' {
		c.ResetTo(mark)
		return Literal{}, ErrNoMatch
	}
	c.Next()
	fracDigits := c.TakeWhile(isDigit)
	if intDigits == "" && fracDigits == "" {
		c.ResetTo(mark)
		return Literal{}, ErrNoMatch
	}

	v, err := strconv.ParseFloat(intDigits+"."+fracDigits, 64)
	if err != nil {
		text := c.Slice(mark, c.Pos())
		c.ResetTo(mark)
		return Literal{}, &OverflowError{Text: text, Pos: mark}
	}
	return NewFloatingPoint(v), nil
}

// ParseFixed recognizes the floating-point shapes with a mandatory d or D
// suffix: 3.6d, 3d, 3.d, .3d. The payload keeps the raw digit magnitudes
// of the two parts; .3d and .30d are distinct values.
func ParseFixed(c *scan.Cursor) (Literal, error) {
	mark := c.Mark()
	intDigits := c.TakeWhile(isDigit)
	fracDigits := ""
	if ch, ok := c.Peek(); ok && ch == '.' {
		c.Next()
		fracDigits = c.TakeWhile(isDigit)
	}
	ch, ok := c.Peek()
	if !ok || (ch != 'd' && ch != 'D') || (intDigits == "" && fracDigits == "") {
		c.ResetTo(mark)
		return Literal{}, ErrNoMatch
	}
	c.Next()

	intPart, err := parseUintPart(intDigits)
	if err != nil {
		return overflow(c, mark)
	}
	fracPart, err := parseUintPart(fracDigits)
	if err != nil {
		return overflow(c, mark)
	}
	return NewFixedPoint(intPart, fracPart), nil
}

// ParseCharacter recognizes a single Latin-1 character between single
// quotes. No escape sequences. Once the opening quote is seen the literal
// is committed: empty or multi-character content is a CharacterError, not
// a non-match.
func ParseCharacter(c *scan.Cursor) (Literal, error) {
	mark := c.Mark()
	if ch, ok := c.Peek(); !ok || ch != '\'' {
		return Literal{}, ErrNoMatch
	}
	c.Next()

	r, size := utf8.DecodeRuneInString(c.Rest())
	if size == 0 || r == '\'' {
		return charError(c, mark)
	}
	if r > 0xFF || (r == utf8.RuneError && size == 1) {
		return charError(c, mark)
	}
	c.Advance(size)

	if ch, ok := c.Next(); !ok || ch != '\'' {
		return charError(c, mark)
	}
	return NewCharacter(byte(r)), nil
}

// ParseStr recognizes one or more double-quoted segments separated only by
// whitespace and concatenates them with no separator: "Hello" "World" is
// the single string HelloWorld. An empty segment is valid and contributes
// nothing. Escape sequences are unsupported, so a literal quote cannot be
// embedded.
func ParseStr(c *scan.Cursor) (Literal, error) {
	if ch, ok := c.Peek(); !ok || ch != '"' {
		return Literal{}, ErrNoMatch
	}

	var sb strings.Builder
	for {
		segStart := c.Mark()
		c.Next() // opening quote
		for {
			ch, ok := c.Next()
			if !ok {
				c.ResetTo(segStart)
				return Literal{}, &UnterminatedError{Pos: segStart}
			}
			if ch == '"' {
				break
			}
			sb.WriteByte(ch)
		}

		// Adjacent segments separated only by whitespace continue the
		// literal. Trailing whitespace after the last segment is left
		// for the caller.
		after := c.Mark()
		c.SkipSpace()
		if ch, ok := c.Peek(); ok && ch == '"' {
			continue
		}
		c.ResetTo(after)
		return NewStr(sb.String()), nil
	}
}

// Parse recognizes any literal. The alternatives run in a fixed order:
// boolean, fixed-point, floating-point, integer, character, string.
// Fixed-point must run before float so the digits ahead of a d suffix are
// not consumed as a complete float, and float before integer so 2.1 is
// not read as integer 2 with a stray .1. First success wins; there is no
// backtracking into later alternatives.
func Parse(c *scan.Cursor) (Literal, error) {
	for _, parse := range []func(*scan.Cursor) (Literal, error){
		ParseBool,
		ParseFixed,
		ParseFloat,
		ParseInteger,
		ParseCharacter,
		ParseStr,
	} {
		lit, err := parse(c)
		if err == nil {
			return lit, nil
		}
		if !errors.Is(err, ErrNoMatch) {
			return Literal{}, err
		}
	}
	return Literal{}, ErrNoMatch
}

// parseUint converts a matched digit run, mapping range errors to
// OverflowError and restoring the cursor.
func parseUint(c *scan.Cursor, mark int, digits string, base int) (Literal, error) {
	v, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return overflow(c, mark)
	}
	return NewInteger(v), nil
}

// parseUintPart converts one part of a fixed-point literal; an absent
// part has magnitude zero.
func parseUintPart(digits string) (uint64, error) {
	if digits == "" {
		return 0, nil
	}
	return strconv.ParseUint(digits, 10, 64)
}

func overflow(c *scan.Cursor, mark int) (Literal, error) {
	text := c.Slice(mark, c.Pos())
	c.ResetTo(mark)
	return Literal{}, &OverflowError{Text: text, Pos: mark}
}

func charError(c *scan.Cursor, mark int) (Literal, error) {
	// Include everything up to the closing quote, if one is in sight.
	end := c.Pos()
	if ch, ok := c.Peek(); ok && ch == '\'' {
		end++
	}
	text := c.Slice(mark, end)
	c.ResetTo(mark)
	return Literal{}, &CharacterError{Text: text, Pos: mark}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isOctalDigit(ch byte) bool {
	return ch >= '0' && ch <= '7'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}
