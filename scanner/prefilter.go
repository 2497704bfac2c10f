package scanner

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/bytescan/reader"
	"github.com/coregx/bytescan/simd"
	"github.com/coregx/bytescan/symbol"
)

// prefilterThreshold is the symbol count at or above which ScanUntilAt builds an
// Aho-Corasick automaton instead of testing every symbol at every byte. A
// handful of literals is cheap to test directly; dozens of them turn a
// linear scan into a quadratic one without a multi-pattern automaton.
const prefilterThreshold = 8

// buildPrefilter compiles symbols into an automaton the scanner can use to
// jump to the next position any of them could start at. It reports ok ==
// false when there are too few symbols to be worth it or the automaton fails
// to build; callers fall back to the direct symbol-list scan in both cases.
func buildPrefilter(symbols []symbol.Symbol) (*ahocorasick.Automaton, bool) {
	if len(symbols) < prefilterThreshold {
		return nil, false
	}

	builder := ahocorasick.NewBuilder()
	for _, s := range symbols {
		builder.AddPattern(symbol.Bytes(s))
	}

	auto, err := builder.Build()
	if err != nil {
		return nil, false
	}

	return auto, true
}

// scanUntilWithPrefilter narrows the search with auto, then re-resolves the
// winning symbol (and its index/length) against the caller-ordered list at
// that position, preserving the list's first-match-wins tie-break exactly
// as the unaccelerated path would.
func scanUntilWithPrefilter(at int, r reader.Reader, symbols []symbol.Symbol, auto *ahocorasick.Automaton) (offset int, idx int, matchedLen int, found bool) {
	scanned := at

	for {
		remaining := remainingFrom(r, scanned)
		if remaining == 0 {
			return scanned - at, 0, 0, false
		}

		window, _ := r.SliceAt(scanned, remaining)

		m := auto.Find(window, 0)
		if m == nil {
			return scanned - at, 0, 0, false
		}

		candidate := scanned + m.Start

		if i, length, ok := ScanOneAt(candidate, r, symbols); ok {
			return candidate - at, i, length, true
		}

		// The ordered symbol list didn't confirm the automaton's match at
		// candidate. Resume the search just past the candidate.
		scanned = candidate + 1
	}
}

// scanUntilWithSIMD handles the small, common symbol lists that don't earn an
// Aho-Corasick automaton (see prefilterThreshold) but are still worth more
// than a byte-by-byte reader.Contains loop: up to three single-byte symbols
// (simd.Memchr/Memchr2/Memchr3) or a single multi-byte symbol (simd.Memmem).
// ok is false when symbols doesn't fit one of those shapes, or the window
// can't be read as a contiguous slice, in which case the caller falls back to
// the plain loop. As with the automaton path, SIMD only narrows the
// candidate byte position; ScanOneAt still resolves which symbol matched.
func scanUntilWithSIMD(at int, r reader.Reader, symbols []symbol.Symbol) (offset int, idx int, matchedLen int, found bool, ok bool) {
	find, findOK := simdFinder(symbols)
	if !findOK {
		return 0, 0, 0, false, false
	}

	scanned := at
	for {
		remaining := remainingFrom(r, scanned)
		if remaining == 0 {
			return scanned - at, 0, 0, false, true
		}

		window, wOK := r.SliceAt(scanned, remaining)
		if !wOK {
			return 0, 0, 0, false, false
		}

		pos := find(window)
		if pos < 0 {
			return scanned - at, 0, 0, false, true
		}

		candidate := scanned + pos
		if i, length, match := ScanOneAt(candidate, r, symbols); match {
			return candidate - at, i, length, true, true
		}

		scanned = candidate + 1
	}
}

// simdFinder returns a single-needle search function for symbols when it is
// shaped like one of simd's fast paths, and ok == false otherwise.
func simdFinder(symbols []symbol.Symbol) (find func([]byte) int, ok bool) {
	if len(symbols) == 1 && symbols[0].ByteLen() > 1 {
		needle := symbols[0].AsBytes()
		return func(window []byte) int { return simd.Memmem(window, needle) }, true
	}

	if len(symbols) < 1 || len(symbols) > 3 {
		return nil, false
	}
	for _, s := range symbols {
		if s.ByteLen() != 1 {
			return nil, false
		}
	}

	switch len(symbols) {
	case 1:
		b0 := symbols[0].AsBytes()[0]
		return func(window []byte) int { return simd.Memchr(window, b0) }, true
	case 2:
		b0, b1 := symbols[0].AsBytes()[0], symbols[1].AsBytes()[0]
		return func(window []byte) int { return simd.Memchr2(window, b0, b1) }, true
	case 3:
		b0, b1, b2 := symbols[0].AsBytes()[0], symbols[1].AsBytes()[0], symbols[2].AsBytes()[0]
		return func(window []byte) int { return simd.Memchr3(window, b0, b1, b2) }, true
	default:
		return nil, false
	}
}

// remainingFrom reports how many bytes are available at r's cursor + from,
// without the reader exposing an absolute length or position. It probes
// with Has via exponential growth followed by a binary search, so the cost
// is logarithmic in the remaining length rather than linear.
func remainingFrom(r reader.Reader, from int) int {
	if !r.Has(from + 1) {
		return 0
	}

	lo, hi := 1, 1
	for r.Has(from + hi + 1) {
		lo = hi
		hi *= 2
	}

	for lo+1 < hi {
		mid := (lo + hi) / 2
		if r.Has(from + mid) {
			lo = mid
		} else {
			hi = mid
		}
	}

	if r.Has(from + hi) {
		return hi
	}
	return lo
}
