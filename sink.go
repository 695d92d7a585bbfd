package sortbench

import (
	"fmt"
	"os"
	"strings"
)

// AnalysisWriter appends one CSV record per run to an analysis file:
// algorithm,ordering,count,seconds,comparisons. Seconds carry six decimal
// places so sub-millisecond sorts stay distinguishable.
type AnalysisWriter struct {
	Path string
}

func NewAnalysisWriter(path string) *AnalysisWriter {
	return &AnalysisWriter{Path: path}
}

func (w *AnalysisWriter) Consume(res *BenchmarkResult, _ []string) error {
	f, err := os.OpenFile(w.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("Unable to open analysis file %s: %w", w.Path, err)
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "%s,%s,%d,%.6f,%d\n",
		res.Algorithm, res.Ordering, res.ElementCount, res.Seconds, res.Comparisons)
	return err
}

// SortedWriter appends each run's fully sorted sequence under a section
// header, one element per line, for eyeball verification.
type SortedWriter struct {
	Path string
}

func NewSortedWriter(path string) *SortedWriter {
	return &SortedWriter{Path: path}
}

func (w *SortedWriter) Consume(res *BenchmarkResult, sorted []string) error {
	f, err := os.OpenFile(w.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("Unable to open sorted file %s: %w", w.Path, err)
	}
	defer f.Close()

	var sb strings.Builder
	fmt.Fprintf(&sb, "=== %s (%s) ===\n", strings.ToUpper(res.Algorithm), res.Ordering)
	for _, line := range sorted {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	_, err = f.WriteString(sb.String())
	return err
}
