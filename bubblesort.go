package sortbench

// BubbleSort sorts a[0:size] with repeated adjacent-pair passes, shrinking
// the scanned prefix by one each pass. A pass that performs no exchange ends
// the sort early, so a pre-sorted input costs exactly size-1 comparisons.
func BubbleSort[T Comparable[T]](a []T, size int, c *Counter) {
	for i := 0; i < size-1; i++ {
		swapped := false
		for j := 0; j < size-i-1; j++ {
			c.Count++
			if a[j].Compare(a[j+1]) > 0 {
				swap(a, j, j+1)
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
}
