// Package bytescan provides a byte-oriented scanning toolkit: literal
// symbols, a uniform lookahead reader abstraction over several byte
// sources, and a scanner engine that classifies stop/escape/quote/brace
// rules over a reader's lookahead in a single pass.
//
// None of the three layers allocate on their hot paths beyond what the
// caller's own symbols and rule slices require: readers borrow or own a
// plain byte slice, symbols compare fixed-width integers where possible,
// and the scanner engine (scanner.Scan) only ever inspects a reader's
// lookahead, leaving cursor advancement to the caller.
//
// Basic usage:
//
//	r := bytescan.FromString("one test  two")
//	stops := []scanner.StopRule{{scanner.NewStop(), symbol.NewChar([]byte(" "))}}
//
//	result, consumed := scanner.Scan(r, stops, nil, nil, nil, nil)
//	marker := r.Consume(consumed)
//	_ = result
//	_ = marker
package bytescan

import (
	"io"

	"github.com/coregx/bytescan/reader"
)

// FromSlice adapts a borrowed byte slice into a Reader. The caller must
// keep data alive and unmodified for as long as the returned reader is in
// use.
func FromSlice(data []byte) reader.Reader {
	return reader.NewSliceReader(data)
}

// FromBytes adapts an owned byte slice into a Reader. Once passed here,
// the caller should treat data as consumed.
func FromBytes(data []byte) reader.Reader {
	return reader.NewBytesReader(data)
}

// FromString adapts a string into a Reader by taking a copy of its bytes.
func FromString(s string) reader.Reader {
	return reader.NewBytesReader([]byte(s))
}

// FromStream eagerly drains src into an owned buffer and adapts the result
// into a Reader. A read error leaves the reader holding an empty buffer
// rather than surfacing the error; see reader.StreamReader.
func FromStream(src io.Reader) reader.Reader {
	return reader.NewStreamReader(src)
}
