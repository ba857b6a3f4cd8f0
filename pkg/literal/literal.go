// Package literal recognizes the literal constants of the IDL grammar:
// booleans, integers (decimal, octal, hexadecimal), floating-point,
// fixed-point, characters and strings. The recognizers are pure functions
// of the cursor; a failed attempt always restores the cursor to where it
// started so the caller can try the next alternative.
package literal

import (
	"fmt"
	"strconv"
	"strings"
)

// Type represents the kind of a literal.
type Type int

const (
	TypeBool          Type = iota
	TypeInteger            // uint64 magnitude
	TypeFloatingPoint      // float64
	TypeFixedPoint         // two uint64 digit magnitudes
	TypeCharacter          // single Latin-1 byte
	TypeStr                // string
)

// String returns the literal kind name.
func (t Type) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeInteger:
		return "integer"
	case TypeFloatingPoint:
		return "floating-point"
	case TypeFixedPoint:
		return "fixed-point"
	case TypeCharacter:
		return "character"
	case TypeStr:
		return "string"
	default:
		return "unknown"
	}
}

// Literal is a constant value token. It uses a tagged union; construct it
// with the New* functions and inspect it via Type and the typed accessors.
// Literals are immutable value objects.
type Literal struct {
	typ      Type
	boolVal  bool
	intVal   uint64
	floatVal float64
	fixedInt uint64
	fixedFrc uint64
	charVal  byte
	strVal   string
}

// NewBool creates a boolean literal.
func NewBool(b bool) Literal {
	return Literal{typ: TypeBool, boolVal: b}
}

// NewInteger creates an integer literal from its magnitude. The source
// base (decimal, octal, hex) is not retained: 0x10, 020 and 16 are equal.
func NewInteger(v uint64) Literal {
	return Literal{typ: TypeInteger, intVal: v}
}

// NewFloatingPoint creates a floating-point literal.
func NewFloatingPoint(v float64) Literal {
	return Literal{typ: TypeFloatingPoint, floatVal: v}
}

// NewFixedPoint creates a fixed-point literal from the raw digit
// magnitudes of its integer and fraction parts. The fraction is not
// normalized by digit count, so .3d and .30d carry distinct payloads
// (3 and 30).
func NewFixedPoint(intPart, fracPart uint64) Literal {
	return Literal{typ: TypeFixedPoint, fixedInt: intPart, fixedFrc: fracPart}
}

// NewCharacter creates a character literal from a Latin-1 byte.
func NewCharacter(ch byte) Literal {
	return Literal{typ: TypeCharacter, charVal: ch}
}

// NewStr creates a string literal.
func NewStr(s string) Literal {
	return Literal{typ: TypeStr, strVal: s}
}

// Type returns the literal's kind.
func (l Literal) Type() Type {
	return l.typ
}

// Bool returns the boolean payload. Valid only for TypeBool.
func (l Literal) Bool() bool {
	return l.boolVal
}

// Uint returns the integer magnitude. Valid only for TypeInteger.
func (l Literal) Uint() uint64 {
	return l.intVal
}

// Float returns the floating-point payload. Valid only for
// TypeFloatingPoint.
func (l Literal) Float() float64 {
	return l.floatVal
}

// Fixed returns the integer-part and fraction-part magnitudes. Valid only
// for TypeFixedPoint.
func (l Literal) Fixed() (intPart, fracPart uint64) {
	return l.fixedInt, l.fixedFrc
}

// Char returns the character payload. Valid only for TypeCharacter.
func (l Literal) Char() byte {
	return l.charVal
}

// Str returns the string payload. Valid only for TypeStr.
func (l Literal) Str() string {
	return l.strVal
}

// Equal reports whether two literals have the same kind and payload.
func (l Literal) Equal(o Literal) bool {
	return l == o
}

// String renders the literal as source text. Re-lexing the result yields
// the same kind and payload.
func (l Literal) String() string {
	switch l.typ {
	case TypeBool:
		if l.boolVal {
			return "TRUE"
		}
		return "FALSE"
	case TypeInteger:
		return strconv.FormatUint(l.intVal, 10)
	case TypeFloatingPoint:
		s := strconv.FormatFloat(l.floatVal, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	case TypeFixedPoint:
		return fmt.Sprintf("%d.%dd", l.fixedInt, l.fixedFrc)
	case TypeCharacter:
		return "'" + string(l.charVal) + "'"
	case TypeStr:
		return `"` + l.strVal + `"`
	default:
		return "unknown"
	}
}
