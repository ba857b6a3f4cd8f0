package keyword

import (
	"errors"
	"testing"

	"github.com/ridl-lang/ridl/pkg/scan"
)

func TestString(t *testing.T) {
	tests := []struct {
		k    Keyword
		want string
	}{
		{Struct, "struct"},
		{Interface, "interface"},
		{EventType, "eventtype"},
		{GetRaises, "getraises"},
		{True, "TRUE"},
		{False, "FALSE"},
		{Object, "Object"},
		{ValueBase, "ValueBase"},
		{WString, "wstring"},
		{UInt64, "uint64"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", int(tt.k), got, tt.want)
		}
	}
}

func TestLookupRoundTrip(t *testing.T) {
	for _, k := range All() {
		got, ok := Lookup(k.String())
		if !ok {
			t.Errorf("Lookup(%q) failed", k.String())
			continue
		}
		if got != k {
			t.Errorf("Lookup(%q) = %v, want %v", k.String(), got, k)
		}
	}
}

func TestLookupCaseSensitive(t *testing.T) {
	for _, word := range []string{"Struct", "STRUCT", "true", "false", "object", "valuebase", "fAlse"} {
		if _, ok := Lookup(word); ok {
			t.Errorf("Lookup(%q) matched, want no match", word)
		}
	}
}

func TestIsReserved(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"struct", true},
		{"TRUE", true},
		{"FALSE", true},
		{"Object", true},
		{"my_ident", false},
		{"structure", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsReserved(tt.word); got != tt.want {
			t.Errorf("IsReserved(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		input   string
		want    Keyword
		matched bool
		pos     int // cursor position after the call
	}{
		{"struct", Struct, true, 6},
		{"struct ", Struct, true, 6},
		{"struct{", Struct, true, 6},
		{"structx", 0, false, 0},
		{"struct_t", 0, false, 0},
		{"struct9", 0, false, 0},
		{"Struct", 0, false, 0},
		{"unsigned long", Unsigned, true, 8},
		{"TRUE", True, true, 4},
		{"42", 0, false, 0},
		{"", 0, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c := scan.New(tt.input)
			k, err := Match(c)
			if tt.matched {
				if err != nil {
					t.Fatalf("Match(%q) error: %v", tt.input, err)
				}
				if k != tt.want {
					t.Errorf("Match(%q) = %v, want %v", tt.input, k, tt.want)
				}
			} else if !errors.Is(err, ErrNoMatch) {
				t.Fatalf("Match(%q) = %v, %v; want ErrNoMatch", tt.input, k, err)
			}
			if c.Pos() != tt.pos {
				t.Errorf("cursor at %d after Match(%q), want %d", c.Pos(), tt.input, tt.pos)
			}
		})
	}
}

func TestMatchExact(t *testing.T) {
	c := scan.New("FALSE")
	if err := MatchExact(c, False); err != nil {
		t.Fatalf("MatchExact(FALSE) error: %v", err)
	}

	c = scan.New("fAlse")
	if err := MatchExact(c, False); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("MatchExact(fAlse) = %v, want ErrNoMatch", err)
	}
	if c.Pos() != 0 {
		t.Errorf("cursor at %d after failed MatchExact, want 0", c.Pos())
	}

	// A different keyword at the cursor is not a match for the requested one.
	c = scan.New("union")
	if err := MatchExact(c, Struct); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("MatchExact(union, Struct) = %v, want ErrNoMatch", err)
	}
	if c.Pos() != 0 {
		t.Errorf("cursor at %d after failed MatchExact, want 0", c.Pos())
	}
}

func TestAllCount(t *testing.T) {
	if len(All()) != int(numKeywords) {
		t.Errorf("All() returned %d keywords, want %d", len(All()), numKeywords)
	}
}
