package scanner

import (
	"fmt"

	"github.com/coregx/bytescan/reader"
	"github.com/coregx/bytescan/symbol"
)

// StopRule pairs a Stop's flags with the symbol that triggers it.
type StopRule struct {
	Rule   Stop
	Symbol symbol.Symbol
}

// QuoteRule pairs a Quote's flags with its opening/closing symbol (quotes
// open and close on the same symbol).
type QuoteRule struct {
	Rule   Quote
	Symbol symbol.Symbol
}

// BraceRule pairs a Brace's flags with its distinct opening and closing
// symbols.
type BraceRule struct {
	Rule  Brace
	Open  symbol.Symbol
	Close symbol.Symbol
}

// Scan runs the scanning state machine over r's lookahead without advancing
// r's cursor. Rule classes are tried in a fixed precedence order at every
// position: stops, then escapes, then quotes, then braces, then a
// fallthrough single-byte advance.
//
// depths must have exactly len(braces) entries; Scan resets them to zero on
// entry and uses them to track brace nesting across the call. Passing a
// mismatched length is a programming error and panics.
//
// Scan always returns a result: consumedLength is how many bytes the
// caller should consume from r to move past the scanned region (including
// any terminating stop); resultLength is the content portion, which is
// consumedLength minus the trailing stop's matched length when that stop's
// Skip flag is set.
func Scan(r reader.Reader, stops []StopRule, escapes []symbol.Symbol, quotes []QuoteRule, braces []BraceRule, depths []int) (resultLength, consumedLength int) {
	if len(depths) != len(braces) {
		panic(fmt.Sprintf("Not equal amount of counters(%d) to passed braces(%d)", len(depths), len(braces)))
	}

	for i := range depths {
		depths[i] = 0
	}

	var (
		inQuote      bool
		quoteIdx     int
		escapeActive bool
		escapeAge    int
		pos          int
		stopIdx      int
		stopLen      int
		greedy       bool
	)

	anyBraceEscapesStopOpen := func() bool {
		for i, d := range depths {
			if d > 0 && braces[i].Rule.EscapesStop {
				return true
			}
		}
		return false
	}

scanLoop:
	for r.Has(pos + 1) {
		if escapeActive && escapeAge == 0 {
			escapeAge++
		} else {
			escapeActive = false
			escapeAge = 0
		}

		if idx, matchLen, ok := lookForStop(r, stops, pos); ok {
			pos += matchLen

			if escapeActive && stops[idx].Rule.Escaped {
				escapeActive = false
				escapeAge = 0
				continue
			}

			if inQuote && stops[idx].Rule.Quoted && quotes[quoteIdx].Rule.EscapesStop {
				continue
			}

			if anyBraceEscapesStopOpen() {
				continue
			}

			stopIdx = idx
			stopLen += matchLen

			if stops[idx].Rule.Greedy {
				greedy = true
				continue
			}

			break
		}

		if greedy {
			break
		}
		stopLen = 0

		if _, matchLen, ok := lookForSymbol(r, escapes, pos); ok {
			pos += matchLen
			escapeActive = !escapeActive
			escapeAge = 0
			continue
		}

		if idx, matchLen, ok := lookForQuote(r, quotes, pos); ok {
			pos += matchLen

			switch {
			case escapeActive && quotes[idx].Rule.Escaped:
				escapeActive = false
				escapeAge = 0

			case !inQuote:
				inQuote = true
				quoteIdx = idx

			case quoteIdx == idx:
				inQuote = false

				if quotes[idx].Rule.IsStop {
					if anyBraceEscapesStopOpen() {
						continue
					}

					if quotes[idx].Rule.Greedy && reader.Contains(r, quotes[idx].Symbol, pos) {
						pos += quotes[idx].Symbol.ByteLen()
						inQuote = true
						quoteIdx = idx
						continue
					}

					break scanLoop
				}
			}

			continue
		}

		if idx, opened, matchLen, ok := lookForBrace(r, braces, pos); ok {
			pos += matchLen

			switch {
			case escapeActive && braces[idx].Rule.Escaped:
				escapeActive = false
				escapeAge = 0

			case inQuote && braces[idx].Rule.Quoted:
				// token is inert while quoted; nothing to do

			case opened:
				depths[idx]++

			default:
				if depths[idx] > 0 {
					depths[idx]--
				}

				if depths[idx] == 0 && braces[idx].Rule.IsStop && !anyBraceEscapesStopOpen() {
					break scanLoop
				}
			}

			continue
		}

		pos++
	}

	consumedLength = pos
	if stopLen > 0 && stops[stopIdx].Rule.Skip {
		resultLength = pos - stopLen
	} else {
		resultLength = pos
	}

	return resultLength, consumedLength
}

func lookForStop(r reader.Reader, stops []StopRule, offset int) (idx, matchedLen int, ok bool) {
	for i, s := range stops {
		if reader.Contains(r, s.Symbol, offset) {
			return i, s.Symbol.ByteLen(), true
		}
	}
	return 0, 0, false
}

func lookForQuote(r reader.Reader, quotes []QuoteRule, offset int) (idx, matchedLen int, ok bool) {
	for i, q := range quotes {
		if reader.Contains(r, q.Symbol, offset) {
			return i, q.Symbol.ByteLen(), true
		}
	}
	return 0, 0, false
}

func lookForBrace(r reader.Reader, braces []BraceRule, offset int) (idx int, opened bool, matchedLen int, ok bool) {
	for i, b := range braces {
		if reader.Contains(r, b.Open, offset) {
			return i, true, b.Open.ByteLen(), true
		}
		if reader.Contains(r, b.Close, offset) {
			return i, false, b.Close.ByteLen(), true
		}
	}
	return 0, false, 0, false
}

func lookForSymbol(r reader.Reader, symbols []symbol.Symbol, offset int) (idx, matchedLen int, ok bool) {
	for i, s := range symbols {
		if reader.Contains(r, s, offset) {
			return i, s.ByteLen(), true
		}
	}
	return 0, 0, false
}
