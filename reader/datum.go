package reader

// Datum is one backing segment of a reader's data: an owned, shareable
// handle to a contiguous run of bytes. Readers expose their segments through
// GetDatum so a caller can resolve a Marker back into bytes without going
// through the reader's cursor.
type Datum interface {
	Len() int
	Bytes() []byte
}

// sliceDatum wraps a plain byte slice as a Datum. Go slices share their
// backing array on copy, so duplicating a handle never copies the buffer;
// the buffer is immutable after construction, so aliased handles need no
// synchronization.
type sliceDatum struct {
	data []byte
}

func (d sliceDatum) Len() int      { return len(d.data) }
func (d sliceDatum) Bytes() []byte { return d.data }

// Data is a segmented byte store: an ordered list of Datum segments plus the
// arithmetic needed to resolve a Marker that may span more than one of them.
type Data struct {
	segments []Datum
}

// NewData creates an empty segment store with room for capacity segments.
func NewData(capacity int) *Data {
	return &Data{segments: make([]Datum, 0, capacity)}
}

// Push appends a segment.
func (d *Data) Push(datum Datum) {
	d.segments = append(d.segments, datum)
}

// Clear removes all segments.
func (d *Data) Clear() {
	d.segments = d.segments[:0]
}

// Amount returns the number of segments.
func (d *Data) Amount() int {
	return len(d.segments)
}

// MarkerLen returns the total byte length a marker denotes across d's
// segments.
func (d *Data) MarkerLen(m Marker) int {
	if m.SingleSegment() {
		return m.Pos2.Offset - m.Pos1.Offset
	}

	total := d.segments[m.Pos1.Segment].Len() - m.Pos1.Offset
	total += m.Pos2.Offset

	for i := m.Pos1.Segment + 1; i < m.Pos2.Segment; i++ {
		total += d.segments[i].Len()
	}

	return total
}

// Chunk resolves a marker to its bytes: a direct slice when the marker is
// single-segment, or a freshly concatenated copy when it spans segments.
func (d *Data) Chunk(m Marker) []byte {
	if m.SingleSegment() {
		seg := d.segments[m.Pos1.Segment].Bytes()
		return seg[m.Pos1.Offset:m.Pos2.Offset]
	}

	out := make([]byte, 0, d.MarkerLen(m))

	first := d.segments[m.Pos1.Segment].Bytes()
	out = append(out, first[m.Pos1.Offset:]...)

	for i := m.Pos1.Segment + 1; i < m.Pos2.Segment; i++ {
		out = append(out, d.segments[i].Bytes()...)
	}

	last := d.segments[m.Pos2.Segment].Bytes()
	out = append(out, last[:m.Pos2.Offset]...)

	return out
}
