package stripelist

import (
	"fmt"
	"sync"

	"golang.org/x/sys/cpu"
)

// stripe guards a contiguous range of slots. Stripes are padded so that
// neighbouring locks do not share a cache line.
type stripe struct {
	mu sync.RWMutex
	_  cpu.CacheLinePad
}

// table is one immutable layout of the list: slot storage plus the stripes
// guarding it. Slot contents change under stripe locks; the slices
// themselves are replaced only by growth.
type table[T comparable] struct {
	slots   []T
	stripes []*stripe
}

// stripeCount returns ceil(capacity / factor).
func stripeCount(capacity, factor int) int {
	return (capacity + factor - 1) / factor
}

// newTable builds a table of the given capacity. Stripes of prev are carried
// over by index; only stripes beyond len(prev.stripes) are allocated.
func newTable[T comparable](prev *table[T], capacity, factor int) (t *table[T], err error) {
	defer func() {
		if r := recover(); r != nil {
			t = nil
			err = fmt.Errorf("%w: capacity %d: %v", ErrAllocationFailure, capacity, r)
		}
	}()

	t = &table[T]{
		slots:   make([]T, capacity),
		stripes: make([]*stripe, stripeCount(capacity, factor)),
	}

	n := 0
	if prev != nil {
		copy(t.slots, prev.slots)
		n = copy(t.stripes, prev.stripes)
	}
	for i := n; i < len(t.stripes); i++ {
		t.stripes[i] = &stripe{}
	}
	return t, nil
}

// bounds returns the slot range [lo, hi) covered by stripe k.
func (t *table[T]) bounds(k, factor int) (lo, hi int) {
	lo = k * factor
	hi = min(lo+factor, len(t.slots))
	return lo, hi
}

func (t *table[T]) rlockAll() {
	for _, s := range t.stripes {
		s.mu.RLock()
	}
}

func (t *table[T]) runlockAll() {
	for i := len(t.stripes) - 1; i >= 0; i-- {
		t.stripes[i].mu.RUnlock()
	}
}

func (t *table[T]) lockAll() {
	for _, s := range t.stripes {
		s.mu.Lock()
	}
}

func (t *table[T]) unlockAll() {
	for i := len(t.stripes) - 1; i >= 0; i-- {
		t.stripes[i].mu.Unlock()
	}
}
