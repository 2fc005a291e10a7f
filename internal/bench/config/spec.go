package config

import "time"

// BenchConfig is the root configuration for stripebench.
type BenchConfig struct {
	List     ListSection     `koanf:"list" yaml:"list" json:"list"`
	Workload WorkloadSection `koanf:"workload" yaml:"workload" json:"workload"`
	Metrics  MetricsSection  `koanf:"metrics" yaml:"metrics" json:"metrics"`
	Log      LogSection      `koanf:"log" yaml:"log" json:"log"`
}

// ListSection configures the list under test.
type ListSection struct {
	// Capacity is the initial slot count.
	Capacity int `koanf:"capacity" yaml:"capacity" json:"capacity"`
	// StripeFactor is the number of contiguous indices sharing one lock.
	StripeFactor int `koanf:"stripe_factor" yaml:"stripe_factor" json:"stripe_factor"`
	// MaxCapacity bounds growth; appends past it fail.
	MaxCapacity int `koanf:"max_capacity" yaml:"max_capacity" json:"max_capacity"`
	// ScanMode selects the Contains strategy (snapshot, striped).
	ScanMode string `koanf:"scan_mode" yaml:"scan_mode" json:"scan_mode"`
}

// WorkloadSection configures the operations issued against the list.
type WorkloadSection struct {
	// Mix is a preset name or op=weight pairs.
	Mix      string        `koanf:"mix" yaml:"mix" json:"mix"`
	Workers  int           `koanf:"workers" yaml:"workers" json:"workers"`
	Duration time.Duration `koanf:"duration" yaml:"duration" json:"duration"`
	// Ops is the per-worker operation limit, 0 for none.
	Ops int `koanf:"ops" yaml:"ops" json:"ops"`
	// Rate is the per-worker operation rate in ops/s, 0 for unlimited.
	Rate     float64 `koanf:"rate" yaml:"rate" json:"rate"`
	Burst    int     `koanf:"burst" yaml:"burst" json:"burst"`
	KeySpace int     `koanf:"key_space" yaml:"key_space" json:"key_space"`
	Seed     uint32  `koanf:"seed" yaml:"seed" json:"seed"`
	Prefill  int     `koanf:"prefill" yaml:"prefill" json:"prefill"`
}

// MetricsSection configures the Prometheus endpoint.
type MetricsSection struct {
	// Addr is the listen address; empty disables the endpoint.
	Addr string `koanf:"addr" yaml:"addr" json:"addr"`
	Path string `koanf:"path" yaml:"path" json:"path"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level" yaml:"level" json:"level"`
	Format string `koanf:"format" yaml:"format" json:"format"`
}
