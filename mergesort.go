package sortbench

// MergeSort sorts the inclusive range a[left..right] top-down, splitting at
// the floor midpoint and merging the sorted halves through a scratch buffer.
func MergeSort[T Comparable[T]](a []T, left, right int, c *Counter) {
	if left < right {
		mid := (left + right) / 2
		MergeSort(a, left, mid, c)
		MergeSort(a, mid+1, right, c)
		mergeRange(a, left, mid, right, c)
	}
}

// mergeRange combines the sorted halves a[left..mid] and a[mid+1..right].
// Each cursor comparison counts once; ties take the left half first, and
// draining the remainder of either half is not a comparison.
func mergeRange[T Comparable[T]](a []T, left, mid, right int, c *Counter) {
	temp := make([]T, 0, right-left+1)
	i, j := left, mid+1
	for i <= mid && j <= right {
		c.Count++
		if a[i].Compare(a[j]) <= 0 {
			temp = append(temp, a[i])
			i++
		} else {
			temp = append(temp, a[j])
			j++
		}
	}
	for i <= mid {
		temp = append(temp, a[i])
		i++
	}
	for j <= right {
		temp = append(temp, a[j])
		j++
	}
	copy(a[left:right+1], temp)
}
