package scanner

import (
	"github.com/coregx/bytescan/reader"
	"github.com/coregx/bytescan/symbol"
)

// SkipUntil advances r until one of symbols matches at the cursor, without
// consuming the match itself. It is ScanUntil followed by skipping the
// reported offset. Returns the number of bytes skipped and, if found, the
// index into symbols and the matched symbol's byte length.
func SkipUntil(r reader.Reader, symbols []symbol.Symbol) (skipped int, idx int, matchedLen int, found bool) {
	offset, idx, matchedLen, found := ScanUntil(r, symbols)
	r.Skip(offset)
	return offset, idx, matchedLen, found
}

// SkipWhile repeatedly matches symbols at the cursor, skipping each match's
// byte length, until none match. It is ScanWhile followed by skipping the
// reported offset. Returns the total bytes and characters skipped.
func SkipWhile(r reader.Reader, symbols []symbol.Symbol) (skipped int, chars int) {
	scanned, chars := ScanWhile(r, symbols)
	r.Skip(scanned)
	return scanned, chars
}

// ScanUntil is ScanUntilAt(0, r, symbols).
func ScanUntil(r reader.Reader, symbols []symbol.Symbol) (offset int, idx int, matchedLen int, found bool) {
	return ScanUntilAt(0, r, symbols)
}

// ScanUntilAt is the non-mutating analog of SkipUntil: it never advances
// r's cursor. Returns the offset (from at) of the first match and, if
// found, the index into symbols and the matched symbol's byte length.
//
// When symbols is large enough to make a byte-by-byte candidate search
// expensive, ScanUntilAt locates the next candidate position with an
// Aho-Corasick automaton before falling back to the ordered symbol list to
// resolve which symbol actually matched there and at what length; the
// automaton only ever narrows down where to look, never which rule wins.
// Smaller symbol lists that still fit one of the simd package's fast paths
// (up to three single-byte symbols, or one multi-byte symbol) use that
// instead of testing every symbol at every byte.
func ScanUntilAt(at int, r reader.Reader, symbols []symbol.Symbol) (offset int, idx int, matchedLen int, found bool) {
	if auto, ok := buildPrefilter(symbols); ok {
		return scanUntilWithPrefilter(at, r, symbols, auto)
	}

	if offset, idx, matchedLen, found, ok := scanUntilWithSIMD(at, r, symbols); ok {
		return offset, idx, matchedLen, found
	}

	scanned := at

	for {
		if !r.Has(scanned + 1) {
			return scanned - at, 0, 0, false
		}

		for i, s := range symbols {
			if reader.Contains(r, s, scanned) {
				return scanned - at, i, s.ByteLen(), true
			}
		}

		scanned++
	}
}

// ScanWhile is ScanWhileAt(0, r, symbols).
func ScanWhile(r reader.Reader, symbols []symbol.Symbol) (scanned int, chars int) {
	return ScanWhileAt(0, r, symbols)
}

// ScanWhileAt is the non-mutating analog of SkipWhile: it never advances
// r's cursor, instead accumulating an offset from at.
func ScanWhileAt(at int, r reader.Reader, symbols []symbol.Symbol) (scanned int, chars int) {
	pos := at

	for {
		matched := false

		for _, s := range symbols {
			if reader.Contains(r, s, pos) {
				pos += s.ByteLen()
				chars += s.CharLen()
				matched = true
				break
			}
		}

		if !matched {
			return pos - at, chars
		}
	}
}

// ScanOne is ScanOneAt(0, r, symbols).
func ScanOne(r reader.Reader, symbols []symbol.Symbol) (idx int, matchedLen int, found bool) {
	return ScanOneAt(0, r, symbols)
}

// ScanOneAt tests symbols exactly once at offset at, returning the first
// match's index and byte length, or found == false if none match.
func ScanOneAt(at int, r reader.Reader, symbols []symbol.Symbol) (idx int, matchedLen int, found bool) {
	for i, s := range symbols {
		if reader.Contains(r, s, at) {
			return i, s.ByteLen(), true
		}
	}

	return 0, 0, false
}
