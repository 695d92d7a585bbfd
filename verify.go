package sortbench

// Inversions counts ordered-pair violations in a through a mergesort sweep,
// sorting a as a side effect. Zero inversions means the sequence is
// non-decreasing. The Runner uses this to check a sorter's output after the
// timed run; these comparisons never touch the run's Counter. Halves of 2048
// elements or more are counted concurrently.
func Inversions[T Comparable[T]](a []T) uint64 {
	if len(a) <= 1 {
		return 0
	}
	mid := len(a) / 2
	var left, right uint64
	if mid >= 1<<11 {
		reply := make(chan uint64, 1)
		go func() {
			reply <- Inversions(a[mid:])
		}()
		left = Inversions(a[:mid])
		right = <-reply
	} else {
		left = Inversions(a[:mid])
		right = Inversions(a[mid:])
	}
	return left + right + countMergeInversions(a, mid)
}

func countMergeInversions[T Comparable[T]](a []T, mid int) uint64 {
	c := make([]T, len(a))
	copy(c, a)

	var inversions uint64
	i, j, k := 0, mid, 0
	for i < mid && j < len(c) {
		if c[i].Compare(c[j]) <= 0 {
			a[k] = c[i]
			i++
		} else {
			a[k] = c[j]
			j++
			// every element still waiting in the left half inverts with c[j]
			inversions += uint64(mid - i)
		}
		k++
	}
	for i < mid {
		a[k] = c[i]
		i++
		k++
	}
	for j < len(c) {
		a[k] = c[j]
		j++
		k++
	}
	return inversions
}
