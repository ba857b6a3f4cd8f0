// Package lexer combines the keyword and literal recognizers into a
// whole-input token stream for tooling and tests. Structural parsing of
// the IDL grammar is not done here; everything that is not a literal,
// keyword or identifier comes out as single-byte punctuation.
package lexer

import (
	"github.com/ridl-lang/ridl/pkg/keyword"
	"github.com/ridl-lang/ridl/pkg/literal"
)

// TokenType represents the type of a lexical token.
type TokenType int

const (
	TokenLiteral TokenType = iota // literal constant
	TokenKeyword                  // reserved word
	TokenIdent                    // identifier
	TokenPunct                    // single punctuation byte
	TokenEOF                      // end of input
)

// String returns a debug-friendly representation of the token type.
func (t TokenType) String() string {
	switch t {
	case TokenLiteral:
		return "LITERAL"
	case TokenKeyword:
		return "KEYWORD"
	case TokenIdent:
		return "IDENT"
	case TokenPunct:
		return "PUNCT"
	case TokenEOF:
		return "EOF"
	default:
		return "UNKNOWN"
	}
}

// Token represents a single lexical token.
type Token struct {
	Type    TokenType
	Text    string          // raw source text
	Pos     int             // byte offset in the input
	Keyword keyword.Keyword // valid for TokenKeyword
	Literal literal.Literal // valid for TokenLiteral
}
