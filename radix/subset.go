package radix

import "github.com/sokobox/iwsolve/bitpack"

// SubsetSet is the k-subset mode radix set used by Algorithm 3's novelty
// test at a fixed subset size s. For every s-combination (i1<...<is) of
// piece indices, it stores the concatenation of atoms atom(i1)‖...‖atom(is)
// extracted from a packed state key.
type SubsetSet struct {
	size int
	t    trie
}

// NewSubsetSet returns an empty k-subset set for combinations of the given
// size.
func NewSubsetSet(size int) *SubsetSet {
	return &SubsetSet{size: size}
}

// InsertAllCombinations inserts, for every size-s combination of the
// numPieces atoms packed in key, the concatenated subkey. Used
// unconditionally after every novelty check: insertion never depends on
// what contains-any-missing found, so after processing a candidate every
// one of its s-combinations is marked present.
func (t *SubsetSet) InsertAllCombinations(key []byte, numPieces int, w bitpack.Widths) {
	atomBits := w.AtomBits()
	forEachCombination(numPieces, t.size, func(combo []int) {
		subkey := buildSubkey(key, combo, w)
		t.t.insert(subkey, atomBits*t.size)
	})
}

// ContainsAnyMissingCombination reports whether at least one size-s
// combination of atoms from key is absent from the set.
func (t *SubsetSet) ContainsAnyMissingCombination(key []byte, numPieces int, w bitpack.Widths) bool {
	atomBits := w.AtomBits()
	missing := false
	forEachCombination(numPieces, t.size, func(combo []int) {
		if missing {
			return
		}
		subkey := buildSubkey(key, combo, w)
		if !t.t.contains(subkey, atomBits*t.size) {
			missing = true
		}
	})
	return missing
}

// MemoryBytes reports the live bytes used by this set's internal trie
// nodes, for statistics reporting only.
func (t *SubsetSet) MemoryBytes() int {
	return t.t.memoryBytes()
}

// buildSubkey extracts the atom at each given piece index out of key via
// bitpack.Atom, then concatenates them, in order, into one contiguous bit
// string.
func buildSubkey(key []byte, indices []int, w bitpack.Widths) []byte {
	atomBits := w.AtomBits()
	nbits := atomBits * len(indices)
	buf := make([]byte, (nbits+7)/8)
	pos := 0
	for _, idx := range indices {
		atom := bitpack.Atom(key, idx, w)
		for b := 0; b < atomBits; b++ {
			if bitpack.BitGet(atom, b) {
				bitpack.BitSet(buf, pos)
			}
			pos++
		}
	}
	return buf
}

// forEachCombination calls f once for every increasing s-combination of
// {0, ..., n-1}, in lexicographic order. combo is reused across calls; f
// must not retain it.
func forEachCombination(n, s int, f func(combo []int)) {
	if s <= 0 || s > n {
		return
	}
	combo := make([]int, s)
	var rec func(start, depth int)
	rec = func(start, depth int) {
		if depth == s {
			f(combo)
			return
		}
		for i := start; i <= n-(s-depth); i++ {
			combo[depth] = i
			rec(i+1, depth+1)
		}
	}
	rec(0, 0)
}
