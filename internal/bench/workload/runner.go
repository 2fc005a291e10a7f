package workload

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/yndnr/stripelist-go/internal/telemetry/logger"
	"github.com/yndnr/stripelist-go/internal/telemetry/metric"
	"github.com/yndnr/stripelist-go/pkg/stripelist"
)

// Config describes one workload run.
type Config struct {
	Mix          Mix
	Workers      int
	Duration     time.Duration // 0 means no time limit
	OpsPerWorker int           // 0 means no operation limit
	Rate         float64       // operations per second per worker, 0 = unlimited
	Burst        int
	KeySpace     int // values are drawn from [0, KeySpace)
	Seed         uint32
	Prefill      int // elements appended before workers start
}

// Validate checks that the run terminates and every field is usable.
func (c Config) Validate() error {
	if c.Mix.total == 0 {
		return errors.New("workload: mix is empty")
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workload: workers must be positive, got %d", c.Workers)
	}
	if c.Duration <= 0 && c.OpsPerWorker <= 0 {
		return errors.New("workload: either duration or ops per worker must be set")
	}
	if c.Duration < 0 || c.OpsPerWorker < 0 || c.Prefill < 0 {
		return errors.New("workload: duration, ops per worker and prefill must not be negative")
	}
	if c.Rate < 0 {
		return fmt.Errorf("workload: rate must not be negative, got %v", c.Rate)
	}
	if c.KeySpace <= 0 {
		return fmt.Errorf("workload: key space must be positive, got %d", c.KeySpace)
	}
	return nil
}

// Runner issues a workload against one list.
type Runner struct {
	list    *stripelist.List[int]
	cfg     Config
	metrics *metric.Registry
	log     logger.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithMetrics records every operation in reg.
func WithMetrics(reg *metric.Registry) RunnerOption {
	return func(r *Runner) {
		r.metrics = reg
	}
}

// WithLogger sets the logger used for run progress.
func WithLogger(l logger.Logger) RunnerOption {
	return func(r *Runner) {
		r.log = l
	}
}

// NewRunner validates cfg and returns a runner for list.
func NewRunner(list *stripelist.List[int], cfg Config, opts ...RunnerOption) (*Runner, error) {
	if list == nil {
		return nil, errors.New("workload: list is nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Runner{
		list: list,
		cfg:  cfg,
		log:  logger.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Run executes the workload and returns its summary. Cancelling ctx stops
// the workers early; the partial result is still returned.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	runID := ulid.Make().String()
	ctx = logger.WithRunID(logger.WithLogger(ctx, r.log), runID)
	log := logger.L(ctx)

	if err := r.prefill(); err != nil {
		return nil, err
	}

	if r.cfg.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.Duration)
		defer cancel()
	}

	log.Info("workload started",
		"mix", r.cfg.Mix.String(),
		"workers", r.cfg.Workers,
		"duration", r.cfg.Duration,
		"ops_per_worker", r.cfg.OpsPerWorker,
		"stripe_factor", r.list.StripeFactor(),
		"scan_mode", r.list.ScanMode().String(),
	)

	counts := make([]counters, r.cfg.Workers)
	g, gctx := errgroup.WithContext(ctx)
	start := time.Now()
	for w := 0; w < r.cfg.Workers; w++ {
		g.Go(func() error {
			return r.work(logger.WithWorker(gctx, w), w, &counts[w])
		})
	}
	err := g.Wait()
	elapsed := time.Since(start)

	res := newResult(runID, r.cfg, elapsed, counts, r.list.Stats())
	if err != nil {
		log.Error("workload failed", "error", err, "elapsed", elapsed)
		return res, err
	}

	log.Info("workload finished",
		"total_ops", res.Total,
		"ops_per_sec", res.OpsPerSec,
		"elapsed", elapsed,
		"capacity", res.Layout.Capacity,
		"growths", res.Layout.Growths,
	)
	return res, nil
}

func (r *Runner) prefill() error {
	ks := newKeyStream(r.cfg.Seed, -1)
	for i := 0; i < r.cfg.Prefill; i++ {
		if _, err := r.list.Append(ks.intn(r.cfg.KeySpace)); err != nil {
			return fmt.Errorf("prefill element %d: %w", i, err)
		}
	}
	return nil
}

// counters is owned by one worker until the run ends.
type counters struct {
	ok     [numOps]uint64
	failed [numOps]uint64
}

func (r *Runner) work(ctx context.Context, worker int, c *counters) error {
	if r.metrics != nil {
		r.metrics.WorkersActive.Inc()
		defer r.metrics.WorkersActive.Dec()
	}

	var limiter *rate.Limiter
	if r.cfg.Rate > 0 {
		limiter = rate.NewLimiter(rate.Limit(r.cfg.Rate), max(r.cfg.Burst, 1))
	}

	ks := newKeyStream(r.cfg.Seed, worker)
	for n := 0; r.cfg.OpsPerWorker == 0 || n < r.cfg.OpsPerWorker; n++ {
		if ctx.Err() != nil {
			break
		}
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				break
			}
		}

		op := r.cfg.Mix.Pick(ks.next())
		var start time.Time
		if r.metrics != nil {
			start = time.Now()
		}

		err := r.do(op, ks)

		if r.metrics != nil {
			r.metrics.ObserveOp(op.String(), time.Since(start), err)
		}
		switch {
		case err == nil:
			c.ok[op]++
		case errors.Is(err, stripelist.ErrOutOfRange), errors.Is(err, stripelist.ErrAllocationFailure):
			c.failed[op]++
		default:
			return fmt.Errorf("worker %d: %s: %w", worker, op, err)
		}
	}

	logger.L(ctx).Debug("worker done")
	return nil
}

func (r *Runner) do(op Op, ks *keyStream) error {
	switch op {
	case OpGet:
		_, err := r.list.Get(ks.intn(max(r.list.Cap(), 1)))
		return err
	case OpSet:
		return r.list.Set(ks.intn(max(r.list.Cap(), 1)), ks.intn(r.cfg.KeySpace))
	case OpContains:
		r.list.Contains(ks.intn(r.cfg.KeySpace))
		return nil
	case OpAppend:
		_, err := r.list.Append(ks.intn(r.cfg.KeySpace))
		return err
	default:
		return fmt.Errorf("unknown operation %d", op)
	}
}
