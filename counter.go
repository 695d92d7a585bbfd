package sortbench

// Counter tracks element-to-element order comparisons for one benchmark run.
// It is zeroed when the run starts, shared by every recursive call of the
// sort, and read once when the run ends. A Counter is owned by exactly one
// in-flight run; nothing else touches it.
type Counter struct {
	Count uint64
}
