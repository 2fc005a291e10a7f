package benchmark

import (
	"fmt"
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/yndnr/stripelist-go/pkg/stripelist"
)

// StripeFactors defines the stripe factors compared by each benchmark.
// 1 is one lock per slot.
var StripeFactors = []int{1, 4, 16, 64, 1024}

// ListSizes defines prefilled list lengths.
var ListSizes = []int{1 << 10, 1 << 14, 1 << 18}

// SmallListSizes for quick benchmarks.
var SmallListSizes = []int{1 << 10, 1 << 14}

// newPrefilled returns a list holding 0..size-1.
func newPrefilled(b *testing.B, size, factor int, opts ...stripelist.Option) *stripelist.List[int] {
	b.Helper()
	opts = append([]stripelist.Option{
		stripelist.WithCapacity(size),
		stripelist.WithStripeFactor(factor),
	}, opts...)

	l, err := stripelist.New[int](opts...)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < size; i++ {
		if _, err := l.Append(i); err != nil {
			b.Fatal(err)
		}
	}
	return l
}

// goroutineSeed hands each RunParallel goroutine a distinct start offset.
var goroutineSeed atomic.Uint64

// indexStream walks [0, n) with a large odd stride so that goroutines
// spread over stripes instead of marching in step.
type indexStream struct {
	pos, n uint64
}

func newIndexStream(n int) *indexStream {
	return &indexStream{pos: goroutineSeed.Add(0x9e3779b97f4a7c15), n: uint64(n)}
}

func (s *indexStream) next() int {
	s.pos += 0x2545f4914f6cdd1d
	return int(s.pos % s.n)
}

// reportMemory reports memory usage.
func reportMemory(b *testing.B, prefix string) {
	var m runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m)
	b.ReportMetric(float64(m.Alloc)/(1024*1024), prefix+"_MB")
	b.ReportMetric(float64(m.NumGC), prefix+"_GC")
}

// runWithStripeFactors runs a benchmark function for each stripe factor.
func runWithStripeFactors(b *testing.B, benchFn func(b *testing.B, factor int)) {
	for _, factor := range StripeFactors {
		b.Run(fmt.Sprintf("factor_%d", factor), func(b *testing.B) {
			benchFn(b, factor)
		})
	}
}
