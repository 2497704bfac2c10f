package reader

// BytesReader reads from a byte slice it takes logical ownership of: once
// passed to NewBytesReader, the caller should treat the slice as consumed
// and not mutate it further. Unlike SliceReader, which only borrows data the
// caller keeps alive, BytesReader is meant for buffers built (or decoded)
// specifically to be handed off to a reader, such as the output of
// StreamReader's drain.
type BytesReader struct {
	base
}

// NewBytesReader takes ownership of data for reading from offset 0.
func NewBytesReader(data []byte) *BytesReader {
	return &BytesReader{base{pointer: 0, content: data}}
}

// GetDatum returns the whole underlying buffer as segment 0.
func (r *BytesReader) GetDatum(index int) (Datum, bool) {
	if index != 0 {
		return nil, false
	}
	return sliceDatum{r.content}, true
}
