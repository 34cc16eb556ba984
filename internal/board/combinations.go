package board

import (
	"iter"
	"slices"
)

// Combinations yields every non-empty subset of positions. Subsets are built
// by prefix extension: each element is taken in order and extended with the
// elements after it, so every subset keeps the relative order of the input.
// The sequence is lazy; stopping the range loop stops the enumeration.
func Combinations(positions []Position) iter.Seq[[]Position] {
	return func(yield func([]Position) bool) {
		combine(nil, positions, yield)
	}
}

func combine(prefix, rest []Position, yield func([]Position) bool) bool {
	for i, p := range rest {
		subset := append(slices.Clone(prefix), p)
		if !yield(subset) {
			return false
		}
		if !combine(subset, rest[i+1:], yield) {
			return false
		}
	}
	return true
}
