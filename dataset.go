package sortbench

import (
	"sort"
)

// Orderings holds the three prepared arrangements of one record multiset.
// Each slice is an independent copy of the source records; sorting one never
// disturbs the others.
type Orderings[T Comparable[T]] struct {
	Sorted   []T
	Shuffled []T
	Reversed []T
}

// MakeOrderings builds the ascending, shuffled, and descending arrangements
// the benchmark runs against. The shuffle draws from the package rng; call
// InitRNG with a non-zero seed for reproducible runs.
func MakeOrderings[T Comparable[T]](records []T) *Orderings[T] {
	o := &Orderings[T]{
		Sorted:   cloneSequence(records),
		Shuffled: cloneSequence(records),
		Reversed: cloneSequence(records),
	}
	sort.SliceStable(o.Sorted, func(i, j int) bool {
		return o.Sorted[i].Compare(o.Sorted[j]) < 0
	})
	shuffle(o.Shuffled)
	sort.SliceStable(o.Reversed, func(i, j int) bool {
		return o.Reversed[j].Compare(o.Reversed[i]) < 0
	})
	return o
}

// Fisher-Yates over the package rng.
func shuffle[T any](a []T) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
