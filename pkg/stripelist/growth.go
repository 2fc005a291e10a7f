package stripelist

import (
	"fmt"
	"time"
)

// Growth states.
const (
	stateStable int32 = iota
	stateGrowing
)

// grow doubles the capacity of old and publishes the new table. The caller
// must hold l.admit, which keeps growth single-flight.
//
// Every existing stripe is write-locked in ascending order before storage is
// reallocated, so readers and writers either finish before the growth or
// start after the new table is visible. On failure nothing is published.
func (l *List[T]) grow(old *table[T]) (*table[T], error) {
	oldCap := len(old.slots)
	newCap := oldCap * 2
	if oldCap == 0 {
		newCap = 1
	}
	if newCap < oldCap || newCap > l.maxCapacity {
		l.logger.Error("list growth refused",
			"capacity", oldCap,
			"requested", newCap,
			"max_capacity", l.maxCapacity,
		)
		return nil, fmt.Errorf("%w: capacity %d exceeds max %d", ErrAllocationFailure, newCap, l.maxCapacity)
	}

	l.state.Store(stateGrowing)
	defer l.state.Store(stateStable)

	start := time.Now()
	old.lockAll()
	defer old.unlockAll()

	next, err := newTable(old, newCap, l.stripeFactor)
	if err != nil {
		l.logger.Error("list growth failed",
			"capacity", oldCap,
			"requested", newCap,
			"error", err,
		)
		return nil, err
	}

	l.tbl.Store(next)
	l.growths.Add(1)

	l.logger.Debug("list grown",
		"old_capacity", oldCap,
		"new_capacity", newCap,
		"old_stripes", len(old.stripes),
		"new_stripes", len(next.stripes),
		"duration", time.Since(start),
	)
	return next, nil
}
