package config

import (
	"time"

	"github.com/yndnr/stripelist-go/pkg/stripelist"
)

// Default configuration values.
const (
	DefaultMix      = "mixed"
	DefaultWorkers  = 16
	DefaultDuration = 10 * time.Second
	DefaultBurst    = 1
	DefaultKeySpace = 1 << 16
	DefaultSeed     = 1

	DefaultMetricsPath = "/metrics"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Default returns the default benchmark configuration.
func Default() *BenchConfig {
	return &BenchConfig{
		List: ListSection{
			Capacity:     stripelist.DefaultCapacity,
			StripeFactor: stripelist.DefaultStripeFactor,
			MaxCapacity:  stripelist.DefaultMaxCapacity,
			ScanMode:     stripelist.ScanSnapshot.String(),
		},
		Workload: WorkloadSection{
			Mix:      DefaultMix,
			Workers:  DefaultWorkers,
			Duration: DefaultDuration,
			Burst:    DefaultBurst,
			KeySpace: DefaultKeySpace,
			Seed:     DefaultSeed,
		},
		Metrics: MetricsSection{
			Path: DefaultMetricsPath,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
