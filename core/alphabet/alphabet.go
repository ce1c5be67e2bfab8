// core/alphabet/alphabet.go
package alphabet

// MaxSymbols is the largest alphabet a single run can accumulate; indices are
// byte-sized by design.
const MaxSymbols = 256

// Table maps raw symbols to dense indices assigned in first-seen order.
// One Table is shared across the query and target loads so a symbol first seen
// in either file keeps the same index in both.
type Table struct {
	idx [MaxSymbols]uint8
	in  [MaxSymbols]bool
	sym []byte // index -> symbol
}

// New returns an empty table.
func New() *Table {
	return &Table{sym: make([]byte, 0, 32)}
}

// Encode returns the dense index for c, assigning a fresh one on first sight.
// Indices are stable: once assigned they are never reassigned.
func (t *Table) Encode(c byte) uint8 {
	if !t.in[c] {
		t.in[c] = true
		t.idx[c] = uint8(len(t.sym))
		t.sym = append(t.sym, c)
	}
	return t.idx[c]
}

// EncodeAll encodes raw into a fresh index slice.
func (t *Table) EncodeAll(raw []byte) []uint8 {
	out := make([]uint8, len(raw))
	for i, c := range raw {
		out[i] = t.Encode(c)
	}
	return out
}

// Contains reports whether c has been assigned an index.
func (t *Table) Contains(c byte) bool { return t.in[c] }

// Symbol returns the raw symbol for index i.
func (t *Table) Symbol(i uint8) byte { return t.sym[i] }

// Len is the number of distinct symbols seen so far.
func (t *Table) Len() int { return len(t.sym) }

// Symbols returns the raw symbols in index order.
func (t *Table) Symbols() []byte {
	out := make([]byte, len(t.sym))
	copy(out, t.sym)
	return out
}

// Decode renders an index-encoded sequence back to raw symbols.
func (t *Table) Decode(seq []uint8) []byte {
	out := make([]byte, len(seq))
	for i, v := range seq {
		out[i] = t.sym[v]
	}
	return out
}
