package stripelist

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
)

// List is a concurrent-safe, lock-striped, growable list.
type List[T comparable] struct {
	tbl          atomic.Pointer[table[T]]
	stripeFactor int
	maxCapacity  int
	scanMode     ScanMode
	logger       *slog.Logger

	// admit serializes Append so the capacity check, growth and insert
	// happen as one step.
	admit   sync.Mutex
	length  atomic.Int64
	state   atomic.Int32
	growths atomic.Uint64
}

// New creates a list with DefaultCapacity unless WithCapacity overrides it.
func New[T comparable](opts ...Option) (*List[T], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.capacity < 0 {
		return nil, fmt.Errorf("%w: capacity %d is negative", ErrInvalidCapacity, o.capacity)
	}
	if o.stripeFactor <= 0 {
		return nil, fmt.Errorf("%w: stripe factor %d must be positive", ErrInvalidCapacity, o.stripeFactor)
	}
	if o.maxCapacity < o.capacity {
		return nil, fmt.Errorf("%w: max capacity %d is below capacity %d", ErrInvalidCapacity, o.maxCapacity, o.capacity)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	t, err := newTable[T](nil, o.capacity, o.stripeFactor)
	if err != nil {
		return nil, err
	}

	l := &List[T]{
		stripeFactor: o.stripeFactor,
		maxCapacity:  o.maxCapacity,
		scanMode:     o.scanMode,
		logger:       o.logger,
	}
	l.tbl.Store(t)
	return l, nil
}

// NewWithCapacity creates a list with the given initial capacity.
func NewWithCapacity[T comparable](capacity int, opts ...Option) (*List[T], error) {
	return New[T](append(opts, WithCapacity(capacity))...)
}

// Get returns the value stored at index.
func (l *List[T]) Get(index int) (T, error) {
	t, s, err := l.acquire(index, false)
	if err != nil {
		var zero T
		return zero, &ListError{Op: "get", Index: index, Err: err}
	}
	defer s.mu.RUnlock()
	return t.slots[index], nil
}

// Set stores value at index.
func (l *List[T]) Set(index int, value T) error {
	t, s, err := l.acquire(index, true)
	if err != nil {
		return &ListError{Op: "set", Index: index, Err: err}
	}
	defer s.mu.Unlock()
	t.slots[index] = value
	return nil
}

// Append stores value in the first unoccupied slot and returns its index,
// doubling the capacity first if the list is full.
func (l *List[T]) Append(value T) (int, error) {
	l.admit.Lock()
	defer l.admit.Unlock()

	// The table only changes under admit, so t stays current below.
	t := l.tbl.Load()
	n := int(l.length.Load())
	if n == len(t.slots) {
		var err error
		if t, err = l.grow(t); err != nil {
			return -1, &ListError{Op: "append", Index: n, Err: err}
		}
	}

	s := t.stripes[n/l.stripeFactor]
	s.mu.Lock()
	t.slots[n] = value
	s.mu.Unlock()

	l.length.Store(int64(n + 1))
	return n, nil
}

// Locate translates index into its stripe number and offset within that
// stripe.
func (l *List[T]) Locate(index int) (stripeIndex, offset int, err error) {
	if index < 0 || index >= l.Cap() {
		return 0, 0, &ListError{Op: "locate", Index: index, Err: ErrOutOfRange}
	}
	return index / l.stripeFactor, index % l.stripeFactor, nil
}

// acquire locks the stripe covering index and returns the table it belongs
// to. If a growth publishes a new table while the caller waits for the
// stripe, the lock is dropped and the lookup retried against the new table.
func (l *List[T]) acquire(index int, exclusive bool) (*table[T], *stripe, error) {
	if index < 0 {
		return nil, nil, ErrOutOfRange
	}
	for {
		t := l.tbl.Load()
		if index >= len(t.slots) {
			return nil, nil, ErrOutOfRange
		}

		s := t.stripes[index/l.stripeFactor]
		if exclusive {
			s.mu.Lock()
		} else {
			s.mu.RLock()
		}

		if l.tbl.Load() == t {
			return t, s, nil
		}

		if exclusive {
			s.mu.Unlock()
		} else {
			s.mu.RUnlock()
		}
	}
}

// Len returns the number of appended elements.
func (l *List[T]) Len() int {
	return int(l.length.Load())
}

// Cap returns the number of addressable slots.
func (l *List[T]) Cap() int {
	return len(l.tbl.Load().slots)
}

// StripeFactor returns the number of slots guarded by one lock.
func (l *List[T]) StripeFactor() int {
	return l.stripeFactor
}

// StripeCount returns the current number of stripes.
func (l *List[T]) StripeCount() int {
	return len(l.tbl.Load().stripes)
}

// ScanMode returns the strategy used by Contains.
func (l *List[T]) ScanMode() ScanMode {
	return l.scanMode
}

// Growths returns how many times the list has doubled.
func (l *List[T]) Growths() uint64 {
	return l.growths.Load()
}

// Stats is a point-in-time summary of the list layout.
type Stats struct {
	Capacity     int
	Len          int
	StripeFactor int
	Stripes      int
	Growths      uint64
	Growing      bool
}

// Stats returns the current layout. Fields are read independently and may
// straddle a concurrent growth.
func (l *List[T]) Stats() Stats {
	t := l.tbl.Load()
	return Stats{
		Capacity:     len(t.slots),
		Len:          l.Len(),
		StripeFactor: l.stripeFactor,
		Stripes:      len(t.stripes),
		Growths:      l.growths.Load(),
		Growing:      l.state.Load() == stateGrowing,
	}
}
