package config

import (
	"log/slog"

	"github.com/yndnr/stripelist-go/internal/bench/workload"
	"github.com/yndnr/stripelist-go/pkg/stripelist"
)

// ListOptions returns the list constructor options for cfg.
// cfg must have passed Verify.
func (cfg *BenchConfig) ListOptions(log *slog.Logger) ([]stripelist.Option, error) {
	mode, err := stripelist.ParseScanMode(cfg.List.ScanMode)
	if err != nil {
		return nil, err
	}

	opts := []stripelist.Option{
		stripelist.WithCapacity(cfg.List.Capacity),
		stripelist.WithStripeFactor(cfg.List.StripeFactor),
		stripelist.WithMaxCapacity(cfg.List.MaxCapacity),
		stripelist.WithScanMode(mode),
	}
	if log != nil {
		opts = append(opts, stripelist.WithLogger(log))
	}
	return opts, nil
}

// WorkloadConfig returns the runner configuration for cfg.
func (cfg *BenchConfig) WorkloadConfig() (workload.Config, error) {
	mix, err := workload.ParseMix(cfg.Workload.Mix)
	if err != nil {
		return workload.Config{}, err
	}

	w := cfg.Workload
	return workload.Config{
		Mix:          mix,
		Workers:      w.Workers,
		Duration:     w.Duration,
		OpsPerWorker: w.Ops,
		Rate:         w.Rate,
		Burst:        w.Burst,
		KeySpace:     w.KeySpace,
		Seed:         w.Seed,
		Prefill:      w.Prefill,
	}, nil
}
