// table.go -- the built perfect hash artifact and its evaluator
//
// (c) Sudhi Herle 2018
//
// License GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package phf

// Table is a built minimal-ish perfect hash function over key type K. It
// is read-only after Build/Builder.Freeze returns, except for Compact,
// which rewrites the displacement table's storage width in place.
//
// A *Table[K] is safe for concurrent use by multiple goroutines calling
// Hash, provided none of them calls Compact concurrently.
type Table[K Key] struct {
	seed  uint32
	nodiv bool
	r     int // number of displacement buckets
	m     int // output table size, the range of Hash
	dmax  uint32
	disp  displacements
}

// R returns the number of displacement buckets.
func (t *Table[K]) R() int { return t.r }

// M returns the output table size -- the exclusive upper bound of Hash.
func (t *Table[K]) M() int { return t.m }

// DMax returns the largest displacement committed during construction.
func (t *Table[K]) DMax() uint32 { return t.dmax }

// NoDiv reports whether R and M are powers of two (bitmask reduction).
func (t *Table[K]) NoDiv() bool { return t.nodiv }

// Hash evaluates the perfect hash function for k, returning a value in
// [0, M()). The result is meaningful only for keys that were present in
// the key set Build was called with; for any other key it is some
// well-defined but meaningless index in range.
func (t *Table[K]) Hash(k K) uint32 {
	i := modReduce(hashG(k, t.seed), t.r, t.nodiv)
	d := t.disp.at(i)
	return uint32(modReduce(hashF(d, k, t.seed), t.m, t.nodiv))
}
