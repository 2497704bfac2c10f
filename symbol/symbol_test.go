package symbol

import (
	"bytes"
	"testing"
)

func TestCharMatchesAt(t *testing.T) {
	buf := []byte("hello world")

	tests := []struct {
		name  string
		sym   Symbol
		index int
		want  bool
	}{
		{"char1 match", NewChar1([]byte("h")), 0, true},
		{"char1 miss", NewChar1([]byte("x")), 0, false},
		{"char2 match", NewChar2([]byte("he")), 0, true},
		{"char2 miss", NewChar2([]byte("eh")), 0, false},
		{"char3 match", NewChar3([]byte("wor")), 6, true},
		{"char4 match", NewChar4([]byte("orld")), 7, true},
		{"char general match", NewChar([]byte("hello")), 0, true},
		{"char general out of range", NewChar([]byte("world!!")), 6, false},
		{"char1 at end of buffer", NewChar1([]byte("d")), len(buf) - 1, true},
		{"char1 past end", NewChar1([]byte("d")), len(buf), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sym.MatchesAt(buf, tt.index); got != tt.want {
				t.Errorf("MatchesAt(%d) = %v, want %v", tt.index, got, tt.want)
			}
		})
	}
}

func TestMatchesAtStart(t *testing.T) {
	buf := []byte("abc")
	if !MatchesAtStart(NewChar1([]byte("a")), buf) {
		t.Error("expected match at start")
	}
	if MatchesAtStart(NewChar1([]byte("b")), buf) {
		t.Error("expected no match at start")
	}
}

func TestCharRoundTrip(t *testing.T) {
	for n := 1; n <= 8; n++ {
		src := bytes.Repeat([]byte{'x'}, n)
		for i := range src {
			src[i] = byte('a' + i)
		}
		c := NewChar(src)
		if !bytes.Equal(Bytes(c), src) {
			t.Errorf("len %d: round trip mismatch: got %v want %v", n, Bytes(c), src)
		}
		if c.ByteLen() != n {
			t.Errorf("len %d: ByteLen() = %d", n, c.ByteLen())
		}
		if c.CharLen() != 1 {
			t.Errorf("len %d: CharLen() = %d, want 1", n, c.CharLen())
		}
	}
}

func TestNewCharInvalidLength(t *testing.T) {
	for _, n := range []int{0, 9, 20} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewChar with %d bytes should have panicked", n)
				}
			}()
			NewChar(make([]byte, n))
		}()
	}
}

func TestNewCharNFixedWidth(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewChar2 with wrong length should have panicked")
		}
	}()
	NewChar2([]byte("x"))
}

func TestWordCombine(t *testing.T) {
	c1 := NewChar1([]byte("a"))
	c2 := NewChar1([]byte("b"))
	c3 := NewChar1([]byte("c"))

	w := Combine(c1, c2, c3)

	if w.CharLen() != 3 {
		t.Errorf("CharLen() = %d, want 3", w.CharLen())
	}
	if !bytes.Equal(w.AsBytes(), []byte("abc")) {
		t.Errorf("AsBytes() = %q, want %q", w.AsBytes(), "abc")
	}
}

func TestWordCombineEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Combine with no symbols should have panicked")
		}
	}()
	Combine()
}

func TestWordConcat(t *testing.T) {
	w1 := Combine(NewChar1([]byte("a")), NewChar1([]byte("b")))
	w2 := Combine(NewChar1([]byte("c")))

	w := Concat(w1, w2)

	if !bytes.Equal(w.AsBytes(), []byte("abc")) {
		t.Errorf("AsBytes() = %q, want %q", w.AsBytes(), "abc")
	}
	if w.CharLen() != 3 {
		t.Errorf("CharLen() = %d, want 3", w.CharLen())
	}
}

func TestRuneForwarding(t *testing.T) {
	r := NewRune(NewChar4([]byte("test")))

	if r.ByteLen() != 4 {
		t.Errorf("ByteLen() = %d, want 4", r.ByteLen())
	}
	if !r.MatchesAt([]byte("a test"), 2) {
		t.Error("expected Rune to forward MatchesAt to its inner symbol")
	}
}

func TestComboBuildsFixedWidthFromSmallerSymbols(t *testing.T) {
	c2 := ComboChar2(NewChar1([]byte("a")), NewChar1([]byte("b")))
	if !bytes.Equal(c2.AsBytes(), []byte("ab")) {
		t.Errorf("ComboChar2 = %q, want %q", c2.AsBytes(), "ab")
	}

	c3 := ComboChar3(NewChar2([]byte("ab")), NewChar1([]byte("c")))
	if !bytes.Equal(c3.AsBytes(), []byte("abc")) {
		t.Errorf("ComboChar3 = %q, want %q", c3.AsBytes(), "abc")
	}

	c4 := ComboChar4(NewChar1([]byte("a")), NewChar1([]byte("b")), NewChar1([]byte("c")), NewChar1([]byte("d")))
	if !bytes.Equal(c4.AsBytes(), []byte("abcd")) {
		t.Errorf("ComboChar4 = %q, want %q", c4.AsBytes(), "abcd")
	}
}

func TestComboWrongLengthPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("ComboChar2 with mismatched total length should have panicked")
		}
	}()
	ComboChar2(NewChar1([]byte("a")))
}

func TestCopyToTimes(t *testing.T) {
	c := NewChar1([]byte("x"))
	dst := make([]byte, 5)

	n := CopyToTimes(c, dst, 5)

	if n != 5 {
		t.Errorf("CopyToTimes wrote %d bytes, want 5", n)
	}
	if !bytes.Equal(dst, []byte("xxxxx")) {
		t.Errorf("dst = %q, want %q", dst, "xxxxx")
	}
}
