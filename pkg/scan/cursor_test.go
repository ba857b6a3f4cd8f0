package scan

import "testing"

func TestPeekNext(t *testing.T) {
	c := New("ab")

	ch, ok := c.Peek()
	if !ok || ch != 'a' {
		t.Fatalf("Peek = %q, %v; want 'a', true", ch, ok)
	}
	if c.Pos() != 0 {
		t.Errorf("Peek advanced the cursor to %d", c.Pos())
	}

	ch, ok = c.Next()
	if !ok || ch != 'a' {
		t.Fatalf("Next = %q, %v; want 'a', true", ch, ok)
	}
	ch, ok = c.Next()
	if !ok || ch != 'b' {
		t.Fatalf("Next = %q, %v; want 'b', true", ch, ok)
	}
	if !c.EOF() {
		t.Error("EOF = false after consuming all input")
	}
	if _, ok := c.Next(); ok {
		t.Error("Next succeeded past end of input")
	}
}

func TestMarkResetTo(t *testing.T) {
	c := New("hello")
	c.Next()
	mark := c.Mark()
	c.Next()
	c.Next()
	c.ResetTo(mark)
	if c.Pos() != 1 {
		t.Errorf("Pos = %d after ResetTo, want 1", c.Pos())
	}
	ch, _ := c.Peek()
	if ch != 'e' {
		t.Errorf("Peek = %q after ResetTo, want 'e'", ch)
	}
}

func TestTakeWhile(t *testing.T) {
	c := New("123abc")
	digits := c.TakeWhile(func(b byte) bool { return b >= '0' && b <= '9' })
	if digits != "123" {
		t.Errorf("TakeWhile = %q, want %q", digits, "123")
	}
	if c.Pos() != 3 {
		t.Errorf("Pos = %d, want 3", c.Pos())
	}

	empty := c.TakeWhile(func(b byte) bool { return b >= '0' && b <= '9' })
	if empty != "" {
		t.Errorf("TakeWhile = %q, want empty run", empty)
	}
}

func TestSkipSpace(t *testing.T) {
	c := New("  \t\n x")
	c.SkipSpace()
	ch, _ := c.Peek()
	if ch != 'x' {
		t.Errorf("Peek = %q after SkipSpace, want 'x'", ch)
	}

	c = New("x")
	c.SkipSpace()
	if c.Pos() != 0 {
		t.Errorf("SkipSpace moved past a non-space byte")
	}
}

func TestRestAndAdvance(t *testing.T) {
	c := New("abcdef")
	c.Advance(2)
	if c.Rest() != "cdef" {
		t.Errorf("Rest = %q, want %q", c.Rest(), "cdef")
	}
	c.Advance(100)
	if !c.EOF() {
		t.Error("Advance past end did not clamp to EOF")
	}
}
