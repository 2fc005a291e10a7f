package command

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/stripelist-go/internal/bench/workload"
)

// flagKeys maps flag names to the config keys they override.
var flagKeys = []struct {
	flag string
	key  string
}{
	{"log-level", "log.level"},
	{"log-format", "log.format"},
	{"capacity", "list.capacity"},
	{"stripe-factor", "list.stripe_factor"},
	{"max-capacity", "list.max_capacity"},
	{"scan-mode", "list.scan_mode"},
	{"mix", "workload.mix"},
	{"workers", "workload.workers"},
	{"duration", "workload.duration"},
	{"ops", "workload.ops"},
	{"rate", "workload.rate"},
	{"burst", "workload.burst"},
	{"key-space", "workload.key_space"},
	{"seed", "workload.seed"},
	{"prefill", "workload.prefill"},
	{"metrics-addr", "metrics.addr"},
}

// overrides collects the flags set on the command line, keyed by config
// path. Flags left at their zero value are not included.
func overrides(c *cli.Context) map[string]any {
	m := make(map[string]any)
	for _, fk := range flagKeys {
		if c.IsSet(fk.flag) {
			m[fk.key] = c.Value(fk.flag)
		}
	}
	return m
}

// benchFlags returns the flags shared by run and config.
func benchFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:     "capacity",
			Usage:    "Initial list capacity",
			Category: "list",
		},
		&cli.IntFlag{
			Name:     "stripe-factor",
			Aliases:  []string{"f"},
			Usage:    "Contiguous indices per lock stripe",
			Category: "list",
		},
		&cli.IntFlag{
			Name:     "max-capacity",
			Usage:    "Capacity beyond which appends fail",
			Category: "list",
		},
		&cli.StringFlag{
			Name:     "scan-mode",
			Usage:    "Contains strategy: snapshot, striped",
			Category: "list",
		},
		&cli.StringFlag{
			Name:     "mix",
			Aliases:  []string{"m"},
			Usage:    fmt.Sprintf("Operation mix: %s, or op=weight pairs", strings.Join(workload.PresetNames(), ", ")),
			Category: "workload",
		},
		&cli.IntFlag{
			Name:     "workers",
			Aliases:  []string{"w"},
			Usage:    "Concurrent worker goroutines",
			Category: "workload",
		},
		&cli.DurationFlag{
			Name:     "duration",
			Aliases:  []string{"d"},
			Usage:    "Run length, 0 to rely on --ops",
			Category: "workload",
		},
		&cli.IntFlag{
			Name:     "ops",
			Aliases:  []string{"n"},
			Usage:    "Operations per worker, 0 for no limit",
			Category: "workload",
		},
		&cli.Float64Flag{
			Name:     "rate",
			Usage:    "Operations per second per worker, 0 for unlimited",
			Category: "workload",
		},
		&cli.IntFlag{
			Name:     "burst",
			Usage:    "Rate limiter burst size",
			Category: "workload",
		},
		&cli.IntFlag{
			Name:     "key-space",
			Usage:    "Number of distinct element values",
			Category: "workload",
		},
		&cli.UintFlag{
			Name:     "seed",
			Usage:    "Seed for the per-worker index and value streams",
			Category: "workload",
		},
		&cli.IntFlag{
			Name:     "prefill",
			Usage:    "Elements appended before the workers start",
			Category: "workload",
		},
		&cli.StringFlag{
			Name:     "metrics-addr",
			Usage:    "Serve Prometheus metrics on this address during the run",
			Category: "metrics",
		},
	}
}
