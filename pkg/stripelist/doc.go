// Package stripelist provides a growable, array-backed list that is safe for
// concurrent use.
//
// The index space is partitioned into stripes of StripeFactor contiguous
// slots, each guarded by its own sync.RWMutex:
//
//   - Get: read lock on the covering stripe
//   - Set: write lock on the covering stripe
//   - Contains: read locks on every stripe (ScanSnapshot) or one stripe at a
//     time (ScanStriped)
//   - Append: serialized on a single admission lock, doubling capacity when
//     the list is full
//
// Usage:
//
//	l, err := stripelist.New[int](stripelist.WithStripeFactor(8))
//	if err != nil {
//		return err
//	}
//	idx, _ := l.Append(42)
//	v, _ := l.Get(idx)
//
// Lock Ordering:
//
// Any operation that holds more than one stripe acquires them in ascending
// stripe index. Growth holds every stripe exclusively while the slot storage
// and lock table are replaced, so no other operation observes a partially
// grown list.
package stripelist
