package sortbench

// HeapSort sorts the range of right-left+1 elements from the front of a by
// building a max-heap bottom-up and repeatedly swapping the root past the
// shrinking heap boundary.
func HeapSort[T Comparable[T]](a []T, left, right int, c *Counter) {
	n := right - left + 1
	for i := n/2 - 1; i >= 0; i-- {
		heapify(a, n, i, c)
	}
	for i := n - 1; i > 0; i-- {
		swap(a, 0, i)
		heapify(a, i, 0, c)
	}
}

// heapify sifts index i down an n-element heap. Every existing child is
// checked against the current largest and every check counts, whether or not
// it changes the winner — two increments per level when both children exist.
func heapify[T Comparable[T]](a []T, n, i int, c *Counter) {
	largest := i
	l, r := 2*i+1, 2*i+2
	if l < n {
		c.Count++
		if a[l].Compare(a[largest]) > 0 {
			largest = l
		}
	}
	if r < n {
		c.Count++
		if a[r].Compare(a[largest]) > 0 {
			largest = r
		}
	}
	if largest != i {
		swap(a, i, largest)
		heapify(a, n, largest, c)
	}
}
