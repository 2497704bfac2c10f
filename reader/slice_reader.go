package reader

// SliceReader reads from a byte slice the caller already owns and will keep
// alive and unmodified for the reader's lifetime. It performs no allocation
// and no copying: every lookahead returns a sub-slice of the original data.
type SliceReader struct {
	base
}

// NewSliceReader wraps slice for reading from offset 0. The caller must not
// mutate slice while the reader is in use.
func NewSliceReader(slice []byte) *SliceReader {
	return &SliceReader{base{pointer: 0, content: slice}}
}

// GetDatum returns the whole underlying slice as segment 0.
func (r *SliceReader) GetDatum(index int) (Datum, bool) {
	if index != 0 {
		return nil, false
	}
	return sliceDatum{r.content}, true
}
