package benchmark

import (
	"context"
	"fmt"
	"runtime"
	"testing"

	"github.com/yndnr/stripelist-go/internal/bench/workload"
	"github.com/yndnr/stripelist-go/internal/telemetry/logger"
	"github.com/yndnr/stripelist-go/pkg/stripelist"
)

// BenchmarkWorkloadPresets drives each preset mix through the runner with
// one worker per CPU. b.N is split across workers.
func BenchmarkWorkloadPresets(b *testing.B) {
	workers := runtime.GOMAXPROCS(0)

	for _, preset := range workload.PresetNames() {
		mix, err := workload.ParseMix(preset)
		if err != nil {
			b.Fatal(err)
		}

		for _, factor := range []int{1, 16} {
			b.Run(fmt.Sprintf("%s/factor_%d", preset, factor), func(b *testing.B) {
				l, err := stripelist.New[int](
					stripelist.WithCapacity(1<<12),
					stripelist.WithStripeFactor(factor),
				)
				if err != nil {
					b.Fatal(err)
				}

				r, err := workload.NewRunner(l, workload.Config{
					Mix:          mix,
					Workers:      workers,
					OpsPerWorker: max(b.N/workers, 1),
					KeySpace:     1 << 12,
					Prefill:      1 << 11,
				}, workload.WithLogger(logger.NewDiscard()))
				if err != nil {
					b.Fatal(err)
				}
				b.ResetTimer()

				res, err := r.Run(context.Background())
				if err != nil {
					b.Fatal(err)
				}
				b.ReportMetric(res.OpsPerSec, "ops/s")
			})
		}
	}
}
