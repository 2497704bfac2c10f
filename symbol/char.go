package symbol

import "encoding/binary"

// Char1 is a fixed one-byte character symbol. Equality against a buffer is a
// single byte comparison.
type Char1 struct {
	b byte
}

// NewChar1 constructs a Char1 from exactly one byte. It panics if src does
// not have length 1.
func NewChar1(src []byte) Char1 {
	if len(src) != 1 {
		panic(invalidFixedCharLen(1, len(src)))
	}
	return Char1{b: src[0]}
}

func (c Char1) ByteLen() int    { return 1 }
func (c Char1) CharLen() int    { return 1 }
func (c Char1) AsBytes() []byte { return []byte{c.b} }

func (c Char1) MatchesAt(buf []byte, index int) bool {
	if index < 0 || index >= len(buf) {
		return false
	}
	return buf[index] == c.b
}

// ToWord promotes the character to a single-element Word.
func (c Char1) ToWord() Word { return Combine(c) }

// Char2 is a fixed two-byte character symbol, compared branch-free as a
// single uint16 load.
type Char2 struct {
	v uint16
}

// NewChar2 constructs a Char2 from exactly two bytes.
func NewChar2(src []byte) Char2 {
	if len(src) != 2 {
		panic(invalidFixedCharLen(2, len(src)))
	}
	return Char2{v: binary.LittleEndian.Uint16(src)}
}

func (c Char2) ByteLen() int { return 2 }
func (c Char2) CharLen() int { return 1 }
func (c Char2) AsBytes() []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, c.v)
	return b
}

func (c Char2) MatchesAt(buf []byte, index int) bool {
	if index < 0 || index+2 > len(buf) {
		return false
	}
	return binary.LittleEndian.Uint16(buf[index:]) == c.v
}

func (c Char2) ToWord() Word { return Combine(c) }

// Char3 is a fixed three-byte character symbol. There is no native 3-byte
// integer type, so the comparison unrolls into three byte checks.
type Char3 struct {
	b0, b1, b2 byte
}

// NewChar3 constructs a Char3 from exactly three bytes.
func NewChar3(src []byte) Char3 {
	if len(src) != 3 {
		panic(invalidFixedCharLen(3, len(src)))
	}
	return Char3{b0: src[0], b1: src[1], b2: src[2]}
}

func (c Char3) ByteLen() int    { return 3 }
func (c Char3) CharLen() int    { return 1 }
func (c Char3) AsBytes() []byte { return []byte{c.b0, c.b1, c.b2} }

func (c Char3) MatchesAt(buf []byte, index int) bool {
	if index < 0 || index+3 > len(buf) {
		return false
	}
	return buf[index] == c.b0 && buf[index+1] == c.b1 && buf[index+2] == c.b2
}

func (c Char3) ToWord() Word { return Combine(c) }

// Char4 is a fixed four-byte character symbol, compared branch-free as a
// single uint32 load.
type Char4 struct {
	v uint32
}

// NewChar4 constructs a Char4 from exactly four bytes.
func NewChar4(src []byte) Char4 {
	if len(src) != 4 {
		panic(invalidFixedCharLen(4, len(src)))
	}
	return Char4{v: binary.LittleEndian.Uint32(src)}
}

func (c Char4) ByteLen() int { return 4 }
func (c Char4) CharLen() int { return 1 }
func (c Char4) AsBytes() []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, c.v)
	return b
}

func (c Char4) MatchesAt(buf []byte, index int) bool {
	if index < 0 || index+4 > len(buf) {
		return false
	}
	return binary.LittleEndian.Uint32(buf[index:]) == c.v
}

func (c Char4) ToWord() Word { return Combine(c) }

// Char is the general single-character symbol: any byte length from 1 to 8,
// stored inline (no heap allocation) with a length tag. It covers character
// widths the dedicated Char1..Char4 types don't (5-8 bytes), and is what a
// caller reaches for when the width isn't known until runtime.
type Char struct {
	dt [9]byte // dt[0:8] payload, dt[8] length
}

// NewChar constructs a Char from 1 to 8 bytes. It panics if src is empty or
// longer than 8 bytes.
func NewChar(src []byte) Char {
	n := len(src)
	if n == 0 || n > 8 {
		panic(invalidCharLen(n))
	}
	var c Char
	copy(c.dt[:n], src)
	c.dt[8] = byte(n)
	return c
}

func (c Char) ByteLen() int    { return int(c.dt[8]) }
func (c Char) CharLen() int    { return 1 }
func (c Char) AsBytes() []byte { return c.dt[:c.ByteLen()] }

func (c Char) MatchesAt(buf []byte, index int) bool {
	return matchesAt(c.AsBytes(), buf, index)
}

func (c Char) ToWord() Word { return Combine(c) }

// ComboChar2 builds a Char2 out of one or more smaller symbols whose
// combined byte length is exactly 2 (e.g. two Char1 values, or a Char2
// produced elsewhere and re-validated). It panics if the total doesn't
// equal 2.
func ComboChar2(symbols ...Symbol) Char2 {
	b := flattenBytes(symbols)
	if len(b) != 2 {
		panic(invalidComboLen(2, len(b)))
	}
	return NewChar2(b)
}

// ComboChar3 builds a Char3 out of one or more smaller symbols whose
// combined byte length is exactly 3. It panics otherwise.
func ComboChar3(symbols ...Symbol) Char3 {
	b := flattenBytes(symbols)
	if len(b) != 3 {
		panic(invalidComboLen(3, len(b)))
	}
	return NewChar3(b)
}

// ComboChar4 builds a Char4 out of one or more smaller symbols whose
// combined byte length is exactly 4. It panics otherwise.
func ComboChar4(symbols ...Symbol) Char4 {
	b := flattenBytes(symbols)
	if len(b) != 4 {
		panic(invalidComboLen(4, len(b)))
	}
	return NewChar4(b)
}
