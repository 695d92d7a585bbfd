package sortbench

// Comparable is the total-order contract every sortable element satisfies.
// Compare returns a negative value when the receiver orders before other,
// zero when they rank equal, and a positive value otherwise. The sorters use
// only this operation plus positional exchange; they never inspect any other
// part of an element.
type Comparable[T any] interface {
	Compare(other T) int
}

// Record is an element the benchmark layer can work with: ordered via
// Comparable and renderable for the output sinks.
type Record[T any] interface {
	Comparable[T]
	String() string
}

func swap[T any](a []T, i, j int) {
	a[i], a[j] = a[j], a[i]
}
