package reader

// base implements the full Reader contract over an in-memory byte slice. It
// backs both SliceReader and BytesReader, which differ only in the
// ownership contract of the slice they're constructed from and in how they
// answer GetDatum.
type base struct {
	pointer int
	content []byte
}

func (b *base) Has(n int) bool {
	return b.pointer+n <= len(b.content)
}

func (b *base) HasLong(n int) bool {
	return b.Has(n)
}

func (b *base) ByteAt(want byte, k int) bool {
	idx := b.pointer + k
	return idx >= 0 && idx < len(b.content) && b.content[idx] == want
}

func (b *base) ByteAtStart(want byte) bool {
	return b.ByteAt(want, 0)
}

func (b *base) Bytes2At(bs [2]byte, k int) bool {
	s, ok := b.SliceAt(k, 2)
	return ok && s[0] == bs[0] && s[1] == bs[1]
}

func (b *base) Bytes2AtStart(bs [2]byte) bool {
	return b.Bytes2At(bs, 0)
}

func (b *base) Bytes3At(bs [3]byte, k int) bool {
	s, ok := b.SliceAt(k, 3)
	return ok && s[0] == bs[0] && s[1] == bs[1] && s[2] == bs[2]
}

func (b *base) Bytes3AtStart(bs [3]byte) bool {
	return b.Bytes3At(bs, 0)
}

func (b *base) Bytes4At(bs [4]byte, k int) bool {
	s, ok := b.SliceAt(k, 4)
	return ok && s[0] == bs[0] && s[1] == bs[1] && s[2] == bs[2] && s[3] == bs[3]
}

func (b *base) Bytes4AtStart(bs [4]byte) bool {
	return b.Bytes4At(bs, 0)
}

func (b *base) BytesAt(bs []byte, k int) bool {
	s, ok := b.SliceAt(k, len(bs))
	if !ok {
		return false
	}
	for i, want := range bs {
		if s[i] != want {
			return false
		}
	}
	return true
}

func (b *base) BytesAtStart(bs []byte) bool {
	return b.BytesAt(bs, 0)
}

func (b *base) GetByteAt(k int) (byte, bool) {
	idx := b.pointer + k
	if idx < 0 || idx >= len(b.content) {
		return 0, false
	}
	return b.content[idx], true
}

func (b *base) GetByteAtStart() (byte, bool) {
	return b.GetByteAt(0)
}

func (b *base) GetBytes2At(k int) ([2]byte, bool) {
	s, ok := b.SliceAt(k, 2)
	if !ok {
		return [2]byte{}, false
	}
	return [2]byte{s[0], s[1]}, true
}

func (b *base) GetBytes2AtStart() ([2]byte, bool) {
	return b.GetBytes2At(0)
}

func (b *base) GetBytes3At(k int) ([3]byte, bool) {
	s, ok := b.SliceAt(k, 3)
	if !ok {
		return [3]byte{}, false
	}
	return [3]byte{s[0], s[1], s[2]}, true
}

func (b *base) GetBytes3AtStart() ([3]byte, bool) {
	return b.GetBytes3At(0)
}

func (b *base) GetBytes4At(k int) ([4]byte, bool) {
	s, ok := b.SliceAt(k, 4)
	if !ok {
		return [4]byte{}, false
	}
	return [4]byte{s[0], s[1], s[2], s[3]}, true
}

func (b *base) GetBytes4AtStart() ([4]byte, bool) {
	return b.GetBytes4At(0)
}

func (b *base) SliceAt(k, n int) ([]byte, bool) {
	from := b.pointer + k
	to := from + n
	if from < 0 || to > len(b.content) {
		return nil, false
	}
	return b.content[from:to], true
}

func (b *base) Slice(n int) ([]byte, bool) {
	return b.SliceAt(0, n)
}

func (b *base) Skip(n int) int {
	remaining := len(b.content) - b.pointer
	if remaining < 0 {
		remaining = 0
	}
	if n > remaining {
		n = remaining
	}
	b.pointer += n
	return n
}

func (b *base) SkipLong(n int) int {
	return b.Skip(n)
}

func (b *base) Consume(n int) Marker {
	start := b.pointer
	advanced := b.Skip(n)
	return NewMarker(Position{Segment: 0, Offset: start}, Position{Segment: 0, Offset: start + advanced})
}

func (b *base) ConsumeLong(n int) Marker {
	return b.Consume(n)
}
