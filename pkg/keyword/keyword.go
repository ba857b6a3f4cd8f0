// Package keyword enumerates the reserved words of the IDL grammar and
// provides case-sensitive, whole-word matching against source text.
//
// TRUE and FALSE appear in the table because the grammar reserves their
// spellings, but in practice they lex as boolean literals; the token-stream
// driver tries literals first.
package keyword

import (
	"errors"

	"github.com/ridl-lang/ridl/pkg/scan"
)

// ErrNoMatch reports that the text at the cursor is not a keyword. It is
// ordinary control flow, not a syntax error: the caller tries its next
// alternative (identifier, literal).
var ErrNoMatch = errors.New("keyword: no match")

// Keyword identifies one reserved word of the grammar. The order follows
// the grammar's keyword listing and is append-only.
type Keyword int

const (
	Abstract Keyword = iota
	Any
	Alias
	Attribute
	Bitfield
	Bitmask
	Bitset
	Boolean
	Case
	Char
	Component
	Connector
	Const
	Consumes
	Context
	Custom
	Default
	Double
	Exception
	Emits
	Enum
	EventType
	Factory
	False
	Finder
	Fixed
	Float
	GetRaises
	Home
	Import
	In
	InOut
	Interface
	Local
	Long
	Manages
	Map
	MirrorPort
	Module
	Multiple
	Native
	Object
	Octet
	OneWay
	Out
	PrimaryKey
	Private
	Port
	PortType
	Provides
	Public
	Publishes
	Raises
	ReadOnly
	SetRaises
	Sequence
	Short
	String
	Struct
	Supports
	Switch
	True
	Truncatable
	Typedef
	TypeId
	TypeName
	TypePrefix
	Unsigned
	Union
	Uses
	ValueBase
	ValueType
	Void
	WChar
	WString
	Int8
	Int16
	Int32
	Int64
	UInt8
	UInt16
	UInt32
	UInt64

	numKeywords
)

// spellings holds the canonical source text of each keyword. The grammar
// fixes these as all-lowercase except TRUE, FALSE, Object and ValueBase.
var spellings = [numKeywords]string{
	Abstract:    "abstract",
	Any:         "any",
	Alias:       "alias",
	Attribute:   "attribute",
	Bitfield:    "bitfield",
	Bitmask:     "bitmask",
	Bitset:      "bitset",
	Boolean:     "boolean",
	Case:        "case",
	Char:        "char",
	Component:   "component",
	Connector:   "connector",
	Const:       "const",
	Consumes:    "consumes",
	Context:     "context",
	Custom:      "custom",
	Default:     "default",
	Double:      "double",
	Exception:   "exception",
	Emits:       "emits",
	Enum:        "enum",
	EventType:   "eventtype",
	Factory:     "factory",
	False:       "FALSE",
	Finder:      "finder",
	Fixed:       "fixed",
	Float:       "float",
	GetRaises:   "getraises",
	Home:        "home",
	Import:      "import",
	In:          "in",
	InOut:       "inout",
	Interface:   "interface",
	Local:       "local",
	Long:        "long",
	Manages:     "manages",
	Map:         "map",
	MirrorPort:  "mirrorport",
	Module:      "module",
	Multiple:    "multiple",
	Native:      "native",
	Object:      "Object",
	Octet:       "octet",
	OneWay:      "oneway",
	Out:         "out",
	PrimaryKey:  "primarykey",
	Private:     "private",
	Port:        "port",
	PortType:    "porttype",
	Provides:    "provides",
	Public:      "public",
	Publishes:   "publishes",
	Raises:      "raises",
	ReadOnly:    "readonly",
	SetRaises:   "setraises",
	Sequence:    "sequence",
	Short:       "short",
	String:      "string",
	Struct:      "struct",
	Supports:    "supports",
	Switch:      "switch",
	True:        "TRUE",
	Truncatable: "truncatable",
	Typedef:     "typedef",
	TypeId:      "typeid",
	TypeName:    "typename",
	TypePrefix:  "typeprefix",
	Unsigned:    "unsigned",
	Union:       "union",
	Uses:        "uses",
	ValueBase:   "ValueBase",
	ValueType:   "valuetype",
	Void:        "void",
	WChar:       "wchar",
	WString:     "wstring",
	Int8:        "int8",
	Int16:       "int16",
	Int32:       "int32",
	Int64:       "int64",
	UInt8:       "uint8",
	UInt16:      "uint16",
	UInt32:      "uint32",
	UInt64:      "uint64",
}

// bySpelling maps canonical spellings back to keywords. Built once at init and
// read-only afterwards, so it is safe to share across goroutines.
var bySpelling = make(map[string]Keyword, numKeywords)

func init() {
	for k := Keyword(0); k < numKeywords; k++ {
		bySpelling[spellings[k]] = k
	}
}

// String returns the keyword's canonical spelling.
func (k Keyword) String() string {
	if k < 0 || k >= numKeywords {
		return "unknown"
	}
	return spellings[k]
}

// All returns every keyword in grammar order.
func All() []Keyword {
	ks := make([]Keyword, numKeywords)
	for i := range ks {
		ks[i] = Keyword(i)
	}
	return ks
}

// Lookup returns the keyword whose canonical spelling exactly equals word.
// Matching is case-sensitive: "Struct" is not the struct keyword.
func Lookup(word string) (Keyword, bool) {
	k, ok := bySpelling[word]
	return k, ok
}

// IsReserved reports whether word collides with a reserved spelling.
// Identifier rules use this to reject keyword-shaped names.
func IsReserved(word string) bool {
	_, ok := bySpelling[word]
	return ok
}

// Match recognizes a keyword at the cursor. It consumes the longest
// identifier run (maximal munch) and succeeds only if that whole run is a
// keyword spelling, so a keyword followed by an identifier-continuation
// byte is not a match: "structx" fails, "struct " consumes "struct".
// On failure the cursor is restored and ErrNoMatch returned.
func Match(c *scan.Cursor) (Keyword, error) {
	mark := c.Mark()
	word := identRun(c)
	if word == "" {
		return 0, ErrNoMatch
	}
	k, ok := bySpelling[word]
	if !ok {
		c.ResetTo(mark)
		return 0, ErrNoMatch
	}
	return k, nil
}

// MatchExact recognizes one specific keyword at the cursor, whole-word.
// Grammar rules that require a particular reserved word ("struct", "case")
// use this instead of Match.
func MatchExact(c *scan.Cursor, k Keyword) error {
	mark := c.Mark()
	got, err := Match(c)
	if err != nil {
		return err
	}
	if got != k {
		c.ResetTo(mark)
		return ErrNoMatch
	}
	return nil
}

// identRun consumes an identifier-shaped run: a letter or underscore
// followed by letters, digits or underscores. Empty if the cursor is not
// at an identifier start.
func identRun(c *scan.Cursor) string {
	ch, ok := c.Peek()
	if !ok || !IsIdentStart(ch) {
		return ""
	}
	return c.TakeWhile(IsIdentPart)
}

// IsIdentStart reports whether ch can begin an identifier.
func IsIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

// IsIdentPart reports whether ch can continue an identifier.
func IsIdentPart(ch byte) bool {
	return IsIdentStart(ch) || (ch >= '0' && ch <= '9')
}
