package reader

import (
	"bytes"
	"io"

	"github.com/coregx/bytescan/internal/conv"
)

// streamInitialCapacity mirrors the 32 KiB starting buffer used when
// draining a stream source, large enough to avoid repeated growth for
// typical inputs without over-allocating for small ones.
const streamInitialCapacity = 32 * 1024

// sizeHinter is implemented by sources that can report their total length
// up front (e.g. a file handle wrapped to expose its stat size). When src
// implements it, NewStreamReader preallocates instead of growing from
// streamInitialCapacity.
type sizeHinter interface {
	Size() int64
}

// StreamReader eagerly drains an io.Reader into an owned buffer at
// construction time, then behaves exactly like BytesReader over that
// buffer. There is no lazy or chunked mode: once NewStreamReader returns,
// the source has been fully read and can be discarded.
//
// A read error degrades to an empty buffer rather than surfacing the
// error, matching the absent-on-failure contract the rest of this package
// follows: a reader that can't be filled is simply a reader with nothing in
// it, not a reader that panics or returns an error from every subsequent
// lookahead.
type StreamReader struct {
	base
}

// NewStreamReader drains src to completion and returns a reader over the
// result. If src returns an error before io.EOF, the reader is left holding
// an empty buffer, so every subsequent Has reports false.
func NewStreamReader(src io.Reader) *StreamReader {
	var buf bytes.Buffer
	if sized, ok := src.(sizeHinter); ok {
		if hint := sized.Size(); hint > 0 {
			buf.Grow(conv.Int64ToInt(hint))
		} else {
			buf.Grow(streamInitialCapacity)
		}
	} else {
		buf.Grow(streamInitialCapacity)
	}

	var content []byte
	if _, err := buf.ReadFrom(src); err == nil {
		content = buf.Bytes()
	}

	return &StreamReader{base{pointer: 0, content: content}}
}

// GetDatum returns the whole drained buffer as segment 0.
func (r *StreamReader) GetDatum(index int) (Datum, bool) {
	if index != 0 {
		return nil, false
	}
	return sliceDatum{r.content}, true
}
