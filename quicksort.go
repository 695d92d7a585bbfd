package sortbench

// QuickSort sorts the inclusive range a[left..right] with Lomuto
// partitioning. The pivot is always the last element of the range, so
// pre-sorted and reversed inputs degrade to quadratic comparison counts.
// That bias is part of what the benchmark measures across orderings; do not
// replace it with median-of-three or a randomized pivot.
func QuickSort[T Comparable[T]](a []T, left, right int, c *Counter) {
	if left < right {
		p := partition(a, left, right, c)
		QuickSort(a, left, p-1, c)
		QuickSort(a, p+1, right, c)
	}
}

// partition scans left to right, growing the "<= pivot" region in place, and
// returns the pivot's final index. One comparison per scanned element.
func partition[T Comparable[T]](a []T, left, right int, c *Counter) int {
	pivot := a[right]
	i := left - 1
	for j := left; j < right; j++ {
		c.Count++
		if a[j].Compare(pivot) <= 0 {
			i++
			swap(a, i, j)
		}
	}
	swap(a, i+1, right)
	return i + 1
}
