package stripelist

import (
	"fmt"
	"log/slog"
	"strings"
)

const (
	// DefaultCapacity is the initial capacity used by New.
	DefaultCapacity = 16

	// DefaultStripeFactor is the number of slots guarded by one lock.
	DefaultStripeFactor = 4

	// DefaultMaxCapacity bounds growth. Doubling past it fails with
	// ErrAllocationFailure instead of asking the runtime for more memory.
	DefaultMaxCapacity = 1 << 30
)

// ScanMode selects the consistency level used by Contains.
type ScanMode int

const (
	// ScanSnapshot read-locks every stripe before scanning, so the scan sees
	// one consistent state of the whole list and blocks writers meanwhile.
	ScanSnapshot ScanMode = iota

	// ScanStriped read-locks one stripe at a time in ascending order. It never
	// blocks writers of other stripes but may miss a value written to a
	// stripe the scan has already passed, including slots added by a growth
	// that completes mid-scan.
	ScanStriped
)

// String returns the configuration name of the mode.
func (m ScanMode) String() string {
	switch m {
	case ScanSnapshot:
		return "snapshot"
	case ScanStriped:
		return "striped"
	default:
		return fmt.Sprintf("ScanMode(%d)", int(m))
	}
}

// ParseScanMode converts "snapshot" or "striped" into a ScanMode.
func ParseScanMode(s string) (ScanMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "snapshot":
		return ScanSnapshot, nil
	case "striped", "stripe":
		return ScanStriped, nil
	default:
		return ScanSnapshot, fmt.Errorf("unknown scan mode %q", s)
	}
}

type options struct {
	capacity     int
	stripeFactor int
	maxCapacity  int
	scanMode     ScanMode
	logger       *slog.Logger
}

func defaultOptions() options {
	return options{
		capacity:     DefaultCapacity,
		stripeFactor: DefaultStripeFactor,
		maxCapacity:  DefaultMaxCapacity,
		scanMode:     ScanSnapshot,
	}
}

// Option configures a List.
type Option func(*options)

// WithCapacity sets the initial capacity.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithStripeFactor sets how many contiguous slots share one lock.
// A factor of 1 gives one lock per slot.
func WithStripeFactor(n int) Option {
	return func(o *options) {
		o.stripeFactor = n
	}
}

// WithMaxCapacity caps the capacity growth may reach.
func WithMaxCapacity(n int) Option {
	return func(o *options) {
		o.maxCapacity = n
	}
}

// WithScanMode sets the strategy used by Contains.
func WithScanMode(m ScanMode) Option {
	return func(o *options) {
		o.scanMode = m
	}
}

// WithLogger sets the logger used to report growth.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
