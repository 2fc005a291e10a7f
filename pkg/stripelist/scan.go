package stripelist

import (
	"fmt"
	"strings"
)

// Contains reports whether value is stored in any slot, using the list's
// configured ScanMode.
func (l *List[T]) Contains(value T) bool {
	if l.scanMode == ScanStriped {
		return l.ContainsStriped(value)
	}
	return l.ContainsSnapshot(value)
}

// ContainsSnapshot scans the whole list while holding every stripe's read
// lock, so the result reflects a single consistent state.
func (l *List[T]) ContainsSnapshot(value T) bool {
	t := l.rlockAll()
	defer t.runlockAll()

	for _, v := range t.slots {
		if v == value {
			return true
		}
	}
	return false
}

// ContainsStriped scans one stripe at a time. A value present for the whole
// call is always found; a value written behind the scan is not.
func (l *List[T]) ContainsStriped(value T) bool {
	for k := 0; ; k++ {
		t := l.tbl.Load()
		if k >= len(t.stripes) {
			return false
		}

		s := t.stripes[k]
		s.mu.RLock()
		// Holding any stripe excludes growth, so the reloaded table is
		// stable for the range of stripe k. Stripes keep their lock
		// across growth, so s still guards it.
		t = l.tbl.Load()
		lo, hi := t.bounds(k, l.stripeFactor)
		found := false
		for _, v := range t.slots[lo:hi] {
			if v == value {
				found = true
				break
			}
		}
		s.mu.RUnlock()

		if found {
			return true
		}
	}
}

// Snapshot returns a copy of every slot taken under all stripe read locks.
func (l *List[T]) Snapshot() []T {
	t := l.rlockAll()
	defer t.runlockAll()

	out := make([]T, len(t.slots))
	copy(out, t.slots)
	return out
}

// Range calls fn for each slot in index order, holding one stripe's read
// lock at a time. fn returns false to stop. fn must not call back into the
// list.
func (l *List[T]) Range(fn func(index int, value T) bool) {
	for k := 0; ; k++ {
		t := l.tbl.Load()
		if k >= len(t.stripes) {
			return
		}

		s := t.stripes[k]
		s.mu.RLock()
		t = l.tbl.Load()
		lo, hi := t.bounds(k, l.stripeFactor)
		for i := lo; i < hi; i++ {
			if !fn(i, t.slots[i]) {
				s.mu.RUnlock()
				return
			}
		}
		s.mu.RUnlock()
	}
}

// String renders the slots separated by spaces.
func (l *List[T]) String() string {
	values := l.Snapshot()
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, v)
	}
	return b.String()
}

// rlockAll read-locks every stripe of the current table in ascending order.
func (l *List[T]) rlockAll() *table[T] {
	for {
		t := l.tbl.Load()
		t.rlockAll()
		if l.tbl.Load() == t {
			return t
		}
		t.runlockAll()
	}
}
