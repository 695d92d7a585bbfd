package sortbench

import (
	"fmt"
	"log"
	"strings"
	"time"

	cp "github.com/jinzhu/copier"
	sm "github.com/xrash/smetrics"
)

// BenchmarkResult is the immutable record of one run: one algorithm against
// one arrangement of the input. Seconds is wall-clock duration; Comparisons
// is the final Counter value.
type BenchmarkResult struct {
	ID           uint
	Algorithm    string
	Ordering     string
	ElementCount int
	Seconds      float64
	Comparisons  uint64
}

// ResultSink receives each BenchmarkResult along with the sorted sequence,
// rendered one element per line. Sinks own every persistence detail — file
// paths, append semantics, schemas; the Runner only emits values.
type ResultSink interface {
	Consume(res *BenchmarkResult, sorted []string) error
}

// Runner executes benchmark runs and feeds every configured sink. Runs are
// strictly sequential; one case finishes before the next begins.
type Runner[T Record[T]] struct {
	Sinks []ResultSink
}

func NewRunner[T Record[T]](sinks ...ResultSink) *Runner[T] {
	return &Runner[T]{Sinks: sinks}
}

// ResolveAlgorithm maps a case-insensitive identifier to an Algorithm. An
// unrecognized identifier is an error, never a silent fallback; when a known
// name is close, the error suggests it.
func ResolveAlgorithm(name string) (Algorithm, error) {
	lowered := strings.ToLower(strings.TrimSpace(name))
	best, bestScore := Algorithm(0), 0.0
	for _, alg := range Algorithms {
		if alg.String() == lowered {
			return alg, nil
		}
		if score := sm.JaroWinkler(lowered, alg.String(), 0.7, 4); score > bestScore {
			best, bestScore = alg, score
		}
	}
	if bestScore >= 0.75 {
		return 0, fmt.Errorf("unknown algorithm %q (did you mean %q?)", name, best)
	}
	return 0, fmt.Errorf("unknown algorithm %q", name)
}

// RunAll benchmarks one algorithm against all three orderings in sequence
// and returns the results in sorted/shuffled/reversed order. The first
// failing case stops the sweep; completed results are still returned.
func (r *Runner[T]) RunAll(alg Algorithm, o *Orderings[T]) ([]*BenchmarkResult, error) {
	cases := []struct {
		ordering string
		data     []T
	}{
		{OrderSorted, o.Sorted},
		{OrderShuffled, o.Shuffled},
		{OrderReversed, o.Reversed},
	}

	results := make([]*BenchmarkResult, 0, len(cases))
	for _, cs := range cases {
		res, err := r.RunCase(alg, cs.data, cs.ordering)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// RunCase benchmarks one algorithm against one arrangement of the input.
// The caller's slice is never mutated; the sort works on a private clone
// with a freshly zeroed Counter. The timer covers only the sort itself.
func (r *Runner[T]) RunCase(alg Algorithm, data []T, ordering string) (*BenchmarkResult, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("no elements to sort for %s/%s", alg, ordering)
	}

	work := cloneSequence(data)
	counter := &Counter{}

	start := time.Now()
	switch alg {
	case Merge:
		MergeSort(work, 0, len(work)-1, counter)
	case Quick:
		QuickSort(work, 0, len(work)-1, counter)
	case Heap:
		HeapSort(work, 0, len(work)-1, counter)
	case Bubble:
		BubbleSort(work, len(work), counter)
	case Transposition:
		TranspositionSort(work, len(work), counter)
	default:
		return nil, fmt.Errorf("unknown algorithm identifier %d", uint(alg))
	}
	elapsed := time.Since(start)

	if n := Inversions(cloneSequence(work)); n != 0 {
		return nil, fmt.Errorf("%s left %d inversions on %s input", alg, n, ordering)
	}

	res := &BenchmarkResult{
		Algorithm:    alg.String(),
		Ordering:     ordering,
		ElementCount: len(work),
		Seconds:      elapsed.Seconds(),
		Comparisons:  counter.Count,
	}

	if DEBUG {
		log.Printf("%s %s N=%d time=%.6fs comparisons=%d",
			res.Algorithm, res.Ordering, res.ElementCount, res.Seconds, res.Comparisons)
	}

	lines := renderSequence(work)
	for _, sink := range r.Sinks {
		if err := sink.Consume(res, lines); err != nil {
			return nil, fmt.Errorf("result sink failed for %s/%s: %w", res.Algorithm, res.Ordering, err)
		}
	}

	return res, nil
}

// cloneSequence gives a run its own private copy of the input; one run's
// permutation must never leak into the next.
func cloneSequence[T any](a []T) []T {
	clone := make([]T, 0, len(a))
	if err := cp.Copy(&clone, &a); err != nil {
		panic(fmt.Errorf("Failed to clone sequence: %w", err))
	}
	return clone
}

func renderSequence[T Record[T]](a []T) []string {
	lines := make([]string, len(a))
	for i, el := range a {
		lines[i] = el.String()
	}
	return lines
}
