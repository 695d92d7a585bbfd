package sortbench

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"
)

// pooledRand uses sync.Pool to give each goroutine its own *rand.Rand,
// eliminating mutex contention when callers shuffle from multiple
// goroutines.
type pooledRand struct {
	pool sync.Pool
}

func newPooledRand(seed int64) *pooledRand {
	var counter int64
	return &pooledRand{
		pool: sync.Pool{
			New: func() any {
				s := atomic.AddInt64(&counter, 1) - 1
				return rand.New(rand.NewSource(seed + s))
			},
		},
	}
}

func (pr *pooledRand) Intn(n int) int {
	r := pr.pool.Get().(*rand.Rand)
	v := r.Intn(n)
	pr.pool.Put(r)
	return v
}

// rng is the package-level random source behind the shuffled ordering.
var rng *pooledRand = newPooledRand(time.Now().UnixNano())

// InitRNG seeds the package-level rng. If seed is 0, the current time is
// used (non-deterministic). A non-zero seed gives reproducible shuffles.
func InitRNG(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng = newPooledRand(seed)
}

const DEBUG = false

// Algorithm identifies one of the five sorting strategies under benchmark.
type Algorithm uint

const (
	Bubble Algorithm = iota + 1
	Merge
	Quick
	Heap
	Transposition
)

// Algorithms lists every strategy ResolveAlgorithm accepts, in the order the
// tools report them.
var Algorithms = []Algorithm{Bubble, Merge, Quick, Heap, Transposition}

func (a Algorithm) String() string {
	switch a {
	case Bubble:
		return "bubble"
	case Merge:
		return "merge"
	case Quick:
		return "quick"
	case Heap:
		return "heap"
	case Transposition:
		return "transposition"
	}
	return "unknown"
}

// Labels for the three input arrangements every benchmark covers.
const (
	OrderSorted   = "sorted"
	OrderShuffled = "shuffled"
	OrderReversed = "reversed"
)
