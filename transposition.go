package sortbench

// TranspositionSort sorts a[0:size] with alternating odd and even
// adjacent-pair phases — the sequential form of the odd-even transposition
// network. Each pair comparison counts once regardless of outcome; the sort
// ends after a full odd+even cycle with no exchange.
func TranspositionSort[T Comparable[T]](a []T, size int, c *Counter) {
	sorted := false
	for !sorted {
		sorted = true
		// Odd phase: pairs (1,2), (3,4), ...
		for i := 1; i < size-1; i += 2 {
			c.Count++
			if a[i].Compare(a[i+1]) > 0 {
				swap(a, i, i+1)
				sorted = false
			}
		}
		// Even phase: pairs (0,1), (2,3), ...
		for i := 0; i < size-1; i += 2 {
			c.Count++
			if a[i].Compare(a[i+1]) > 0 {
				swap(a, i, i+1)
				sorted = false
			}
		}
	}
}
