// Package workload drives a stripelist.List from many goroutines.
//
// A Runner spawns one worker per configured goroutine. Each worker draws
// operations from a Mix (weighted get/set/contains/append), derives indices
// and values from a deterministic murmur3 key stream, optionally paces
// itself with a token-bucket limiter, and stops when the context ends, the
// duration elapses or its operation budget is spent.
//
// Presets mirror the classic lock-striping experiments:
//
//   - read-heavy: 90% contains, 5% set, 5% get
//   - write-heavy: 95% set, 5% contains
//   - append: 100% append (exercises growth)
//   - mixed: 25% of each operation
package workload
