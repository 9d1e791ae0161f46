// Package fenwick provides an adaptive probability model backed by a
// Fenwick (binary-indexed) tree of symbol frequencies, plus a
// context-switching variant that keeps one such tree per previously-seen
// symbol.
//
// Grounded on the original crate's `fenwick-model` crate
// (fenwick-model/src/simple.rs, fenwick-model/src/context_switching.rs) and
// its `examples/fenwick/simple.rs`, whose embedded test module fixes the
// exact slot layout reproduced by Weights below.
package fenwick

import "math/bits"

// Weights holds a Fenwick tree of frequencies over one EOF slot plus n real
// symbols (indices 0..n-1), supporting O(log n) range queries, point
// updates, and order statistics (value -> symbol).
//
// Slot 0 is always EOF; symbol s occupies slot s+1. Internally the tree is
// 1-indexed, so EOF lives at tree index 1 and symbol s at tree index s+2.
type Weights struct {
	tree []uint64
	size int // number of slots: 1 (EOF) + n_symbols
}

// NewWeights returns a Weights tree over nSymbols real symbols, each
// (including EOF) starting with frequency 1 — the original crate's initial
// uniform distribution.
func NewWeights(nSymbols int) *Weights {
	w := &Weights{
		tree: make([]uint64, nSymbols+2),
		size: nSymbols + 1,
	}
	for i := 1; i <= w.size; i++ {
		w.add(i, 1)
	}
	return w
}

// Len returns the number of real (non-EOF) symbols this tree covers.
func (w *Weights) Len() int {
	return w.size - 1
}

// Total returns the sum of every slot's frequency, EOF included.
func (w *Weights) Total() uint64 {
	return w.prefixSum(w.size)
}

func (w *Weights) add(i int, delta uint64) {
	for ; i <= w.size; i += i & (-i) {
		w.tree[i] += delta
	}
}

// prefixSum returns the sum of slots [1, i].
func (w *Weights) prefixSum(i int) uint64 {
	var sum uint64
	for ; i > 0; i -= i & (-i) {
		sum += w.tree[i]
	}
	return sum
}

// slot maps symbol (nil meaning EOF) to its 1-indexed tree position.
func slot(symbol *int) int {
	if symbol == nil {
		return 1
	}
	return *symbol + 2
}

// Range returns the half-open cumulative-frequency interval [start, end)
// occupied by symbol (nil for EOF).
func (w *Weights) Range(symbol *int) (start, end uint64) {
	i := slot(symbol)
	return w.prefixSum(i - 1), w.prefixSum(i)
}

// Symbol returns the symbol (nil for EOF) whose cumulative-frequency
// interval contains value. value must be less than Total().
func (w *Weights) Symbol(value uint64) *int {
	pos := 0
	remaining := value
	for pw := 1 << uint(bits.Len(uint(w.size))); pw > 0; pw >>= 1 {
		next := pos + pw
		if next <= w.size && w.tree[next] <= remaining {
			pos = next
			remaining -= w.tree[next]
		}
	}
	i := pos + 1
	if i == 1 {
		return nil
	}
	s := i - 2
	return &s
}

// Update adds delta to symbol's (nil for EOF) frequency.
func (w *Weights) Update(symbol *int, delta uint64) {
	w.add(slot(symbol), delta)
}
