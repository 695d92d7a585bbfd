package sortbench

import (
	rnd "math/rand"
	test "testing"
)

// Comparative sorter benchmarks over one shuffled input. Run with:
// go test -run=^$ -bench=BenchmarkSort -benchmem
func benchmarkSorter(b *test.B, name string, size int) {
	r := rnd.New(rnd.NewSource(42))
	input := randomRanks(r, size)
	sorter := sorters[name]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		work := cloneSequence(input)
		b.StartTimer()
		sorter(work, &Counter{})
	}
}

func BenchmarkSortBubble(b *test.B)        { benchmarkSorter(b, "bubble", 2000) }
func BenchmarkSortTransposition(b *test.B) { benchmarkSorter(b, "transposition", 2000) }
func BenchmarkSortMerge(b *test.B)         { benchmarkSorter(b, "merge", 2000) }
func BenchmarkSortQuick(b *test.B)         { benchmarkSorter(b, "quick", 2000) }
func BenchmarkSortHeap(b *test.B)          { benchmarkSorter(b, "heap", 2000) }
