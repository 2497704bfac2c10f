package symbol

// Rune is a tagged wrapper that holds any concrete symbol variant (Char1..4,
// Char, or Word) behind a single uniform type, so heterogeneous symbol lists
// can be built without per-call-site generics. It forwards every Symbol
// method to whichever variant it wraps.
type Rune struct {
	sym Symbol
}

// NewRune wraps a concrete symbol as a Rune.
func NewRune(s Symbol) Rune {
	return Rune{sym: s}
}

func (r Rune) ByteLen() int                   { return r.sym.ByteLen() }
func (r Rune) CharLen() int                   { return r.sym.CharLen() }
func (r Rune) AsBytes() []byte                { return r.sym.AsBytes() }
func (r Rune) MatchesAt(b []byte, i int) bool { return r.sym.MatchesAt(b, i) }

// Inner returns the concrete symbol the Rune wraps.
func (r Rune) Inner() Symbol { return r.sym }
