package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yndnr/stripelist-go/internal/bench/workload"
	"github.com/yndnr/stripelist-go/pkg/stripelist"
)

// Verify validates the configuration.
func Verify(cfg *BenchConfig) error {
	if err := verifyList(&cfg.List); err != nil {
		return err
	}
	if err := verifyWorkload(&cfg.Workload); err != nil {
		return err
	}
	if err := verifyMetrics(&cfg.Metrics); err != nil {
		return err
	}
	return verifyLog(&cfg.Log)
}

func verifyList(cfg *ListSection) error {
	if cfg.Capacity < 0 {
		return fmt.Errorf("list.capacity must not be negative, got %d", cfg.Capacity)
	}
	if cfg.StripeFactor < 1 {
		return fmt.Errorf("list.stripe_factor must be at least 1, got %d", cfg.StripeFactor)
	}
	if cfg.MaxCapacity < cfg.Capacity {
		return fmt.Errorf("list.max_capacity %d is below list.capacity %d", cfg.MaxCapacity, cfg.Capacity)
	}
	if _, err := stripelist.ParseScanMode(cfg.ScanMode); err != nil {
		return fmt.Errorf("list.scan_mode: %w", err)
	}
	return nil
}

func verifyWorkload(cfg *WorkloadSection) error {
	if _, err := workload.ParseMix(cfg.Mix); err != nil {
		return fmt.Errorf("workload.mix: %w", err)
	}
	if cfg.Workers < 1 {
		return fmt.Errorf("workload.workers must be at least 1, got %d", cfg.Workers)
	}
	if cfg.Duration < 0 {
		return fmt.Errorf("workload.duration must not be negative, got %v", cfg.Duration)
	}
	if cfg.Ops < 0 {
		return fmt.Errorf("workload.ops must not be negative, got %d", cfg.Ops)
	}
	if cfg.Duration == 0 && cfg.Ops == 0 {
		return errors.New("one of workload.duration or workload.ops is required")
	}
	if cfg.Rate < 0 {
		return fmt.Errorf("workload.rate must not be negative, got %v", cfg.Rate)
	}
	if cfg.Rate > 0 && cfg.Burst < 1 {
		return fmt.Errorf("workload.burst must be at least 1 when workload.rate is set, got %d", cfg.Burst)
	}
	if cfg.KeySpace < 1 {
		return fmt.Errorf("workload.key_space must be at least 1, got %d", cfg.KeySpace)
	}
	if cfg.Prefill < 0 {
		return fmt.Errorf("workload.prefill must not be negative, got %d", cfg.Prefill)
	}
	return nil
}

func verifyMetrics(cfg *MetricsSection) error {
	if cfg.Addr != "" && !strings.HasPrefix(cfg.Path, "/") {
		return fmt.Errorf("metrics.path must start with /, got %q", cfg.Path)
	}
	return nil
}

func verifyLog(cfg *LogSection) error {
	switch strings.ToLower(cfg.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", cfg.Level)
	}
	switch strings.ToLower(cfg.Format) {
	case "json", "text", "console":
	default:
		return fmt.Errorf("log.format must be json or text, got %q", cfg.Format)
	}
	return nil
}
