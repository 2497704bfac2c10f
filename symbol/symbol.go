// Package symbol implements small, heap-traffic-free literal byte patterns
// that can be matched at a position in a buffer.
//
// A Symbol is either a fixed-size "character" (1-8 bytes, representing one
// logical unit of input) or a variable-length "word" built by concatenating
// characters or other words. All symbols are immutable once constructed.
//
// Construction of a malformed symbol (wrong byte count, empty word) is a
// programmer error: the constructors panic immediately rather than return an
// error, since the condition reflects misuse rather than variation in input
// data. See the package-level error messages for the exact wording callers
// can match against.
package symbol

import "fmt"

// Symbol is a finite byte sequence that can be located at a position in a
// buffer without allocating.
type Symbol interface {
	// ByteLen returns the number of bytes the symbol occupies.
	ByteLen() int

	// CharLen returns the number of logical characters the symbol
	// represents: 1 for any fixed-size character, the component count for
	// a word.
	CharLen() int

	// AsBytes returns the symbol's underlying bytes. The returned slice
	// has length ByteLen() and must not be mutated by the caller.
	AsBytes() []byte

	// MatchesAt reports whether buf[index:index+ByteLen()] equals the
	// symbol's bytes. It returns false rather than panicking when the
	// comparison would run past the end of buf.
	MatchesAt(buf []byte, index int) bool
}

// MatchesAtStart reports whether s matches buf starting at offset 0.
func MatchesAtStart(s Symbol, buf []byte) bool {
	return s.MatchesAt(buf, 0)
}

// Bytes returns a freshly allocated copy of the symbol's bytes.
func Bytes(s Symbol) []byte {
	src := s.AsBytes()
	out := make([]byte, len(src))
	copy(out, src)
	return out
}

// CopyTo writes the symbol's bytes once into dst, which must have at least
// ByteLen() capacity, and returns the number of bytes written.
func CopyTo(s Symbol, dst []byte) int {
	return copy(dst, s.AsBytes())
}

// CopyToTimes writes the symbol's bytes into dst n times back to back. The
// caller guarantees dst has capacity for n*ByteLen() bytes.
func CopyToTimes(s Symbol, dst []byte, n int) int {
	src := s.AsBytes()
	written := 0
	for i := 0; i < n; i++ {
		written += copy(dst[written:], src)
	}
	return written
}

func matchesAt(symbolBytes, buf []byte, index int) bool {
	if index < 0 {
		return false
	}
	end := index + len(symbolBytes)
	if end > len(buf) {
		return false
	}
	for i, b := range symbolBytes {
		if buf[index+i] != b {
			return false
		}
	}
	return true
}

func invalidCharLen(n int) string {
	return fmt.Sprintf("Invalid number of bytes for a character: 0 > %d < 9", n)
}

func invalidFixedCharLen(want, got int) string {
	return fmt.Sprintf("Invalid number of bytes for a Char%d: exactly %d required, got %d", want, want, got)
}

func invalidComboLen(want, got int) string {
	return fmt.Sprintf("Combo length should be = %d, %d given", want, got)
}

// totalByteLen sums ByteLen() across symbols.
func totalByteLen(symbols []Symbol) int {
	total := 0
	for _, s := range symbols {
		total += s.ByteLen()
	}
	return total
}

// flattenBytes concatenates the bytes of symbols into a single buffer.
func flattenBytes(symbols []Symbol) []byte {
	out := make([]byte, 0, totalByteLen(symbols))
	for _, s := range symbols {
		out = append(out, s.AsBytes()...)
	}
	return out
}
