package lexer

import (
	"errors"
	"fmt"

	"github.com/ridl-lang/ridl/pkg/keyword"
	"github.com/ridl-lang/ridl/pkg/literal"
	"github.com/ridl-lang/ridl/pkg/scan"
)

// Lexer tokenizes an IDL source string.
type Lexer struct {
	cur    *scan.Cursor
	tokens []Token
}

// New creates a new lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{cur: scan.New(input)}
}

// Tokenize scans the entire input and returns all tokens, ending with a
// TokenEOF.
func Tokenize(input string) ([]Token, error) {
	return New(input).Tokenize()
}

// Tokenize scans the entire input and returns all tokens.
func (l *Lexer) Tokenize() ([]Token, error) {
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		l.tokens = append(l.tokens, tok)
		if tok.Type == TokenEOF {
			break
		}
	}
	return l.tokens, nil
}

// next returns the next token from the input. Literals run before
// keywords so TRUE and FALSE come out as boolean literals even though
// their spellings are reserved.
func (l *Lexer) next() (Token, error) {
	if err := l.skipSpaceAndComments(); err != nil {
		return Token{}, err
	}

	start := l.cur.Mark()
	if l.cur.EOF() {
		return Token{Type: TokenEOF, Pos: start}, nil
	}

	lit, err := literal.Parse(l.cur)
	if err == nil {
		return Token{
			Type:    TokenLiteral,
			Text:    l.cur.Slice(start, l.cur.Pos()),
			Pos:     start,
			Literal: lit,
		}, nil
	}
	if !errors.Is(err, literal.ErrNoMatch) {
		return Token{}, err
	}

	k, err := keyword.Match(l.cur)
	if err == nil {
		return Token{
			Type:    TokenKeyword,
			Text:    l.cur.Slice(start, l.cur.Pos()),
			Pos:     start,
			Keyword: k,
		}, nil
	}

	ch, _ := l.cur.Peek()
	if keyword.IsIdentStart(ch) {
		word := l.cur.TakeWhile(keyword.IsIdentPart)
		return Token{Type: TokenIdent, Text: word, Pos: start}, nil
	}

	l.cur.Next()
	return Token{Type: TokenPunct, Text: string(ch), Pos: start}, nil
}

// skipSpaceAndComments advances past whitespace, // line comments and
// /* block comments.
func (l *Lexer) skipSpaceAndComments() error {
	for {
		l.cur.SkipSpace()
		rest := l.cur.Rest()
		switch {
		case len(rest) >= 2 && rest[0] == '/' && rest[1] == '/':
			l.cur.Advance(2)
			l.cur.TakeWhile(func(b byte) bool { return b != '\n' })
		case len(rest) >= 2 && rest[0] == '/' && rest[1] == '*':
			start := l.cur.Pos()
			l.cur.Advance(2)
			for {
				if l.cur.EOF() {
					return fmt.Errorf("unterminated comment starting at offset %d", start)
				}
				ch, _ := l.cur.Next()
				if next, ok := l.cur.Peek(); ch == '*' && ok && next == '/' {
					l.cur.Next()
					break
				}
			}
		default:
			return nil
		}
	}
}
