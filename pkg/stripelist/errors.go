package stripelist

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when an index falls outside [0, Cap()).
	ErrOutOfRange = errors.New("stripelist: index out of range")

	// ErrInvalidCapacity is returned when a list is configured with a
	// negative capacity or a non-positive stripe factor.
	ErrInvalidCapacity = errors.New("stripelist: invalid capacity")

	// ErrAllocationFailure is returned when growth cannot allocate storage
	// for the doubled capacity. The list is left unchanged.
	ErrAllocationFailure = errors.New("stripelist: allocation failure")
)

// ListError records the operation and index that failed.
type ListError struct {
	Op    string // "get", "set", "append", "locate"
	Index int
	Err   error
}

// Error implements the error interface.
func (e *ListError) Error() string {
	return fmt.Sprintf("%s [%d]: %v", e.Op, e.Index, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *ListError) Unwrap() error {
	return e.Err
}

// IsOutOfRange reports whether err is, or wraps, ErrOutOfRange.
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}
