package command

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/stripelist-go/internal/bench/config"
	"github.com/yndnr/stripelist-go/internal/bench/workload"
	"github.com/yndnr/stripelist-go/internal/infra/confloader"
	"github.com/yndnr/stripelist-go/internal/infra/shutdown"
	"github.com/yndnr/stripelist-go/internal/telemetry/logger"
	"github.com/yndnr/stripelist-go/internal/telemetry/metric"
	"github.com/yndnr/stripelist-go/pkg/stripelist"
)

const shutdownTimeout = 10 * time.Second

// RunCommand returns the run command.
func RunCommand() *cli.Command {
	return &cli.Command{
		Name:   "run",
		Usage:  "Run a workload against a new list and print a summary",
		Flags:  benchFlags(),
		Action: runAction,
	}
}

func runAction(c *cli.Context) error {
	cfg, loader, err := loadConfig(c)
	if err != nil {
		return err
	}
	format, _, err := formatter(c)
	if err != nil {
		return err
	}
	log, err := initLogger(cfg, c.App.ErrWriter)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	listOpts, err := cfg.ListOptions(log.With("component", "stripelist").Slog())
	if err != nil {
		return err
	}
	list, err := stripelist.New[int](listOpts...)
	if err != nil {
		return fmt.Errorf("create list: %w", err)
	}
	wcfg, err := cfg.WorkloadConfig()
	if err != nil {
		return err
	}

	handler := shutdown.NewHandler(shutdownTimeout)
	defer func() {
		if err := handler.Shutdown(); err != nil {
			log.Error("shutdown error", "error", err)
		}
	}()

	runnerOpts := []workload.RunnerOption{workload.WithLogger(log)}

	if cfg.Metrics.Addr != "" {
		reg := metric.NewRegistry()
		if err := reg.Register(metric.NewCollector("bench", list)); err != nil {
			return fmt.Errorf("register list collector: %w", err)
		}
		srv, addr, err := startMetricsServer(cfg.Metrics, reg, log)
		if err != nil {
			return err
		}
		log.Info("metrics endpoint listening", "addr", addr, "path", cfg.Metrics.Path)
		handler.OnShutdown(func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		})
		runnerOpts = append(runnerOpts, workload.WithMetrics(reg))
	}

	if path := loader.FilePath(); path != "" {
		w, err := watchLogLevel(path, loader, log)
		if err != nil {
			log.Warn("config file watching disabled", "path", path, "error", err)
		} else {
			handler.OnShutdown(func(context.Context) error {
				return w.Stop()
			})
		}
	}

	runner, err := workload.NewRunner(list, wcfg, runnerOpts...)
	if err != nil {
		return err
	}

	parent := c.Context
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := handler.WithSignals(parent)
	defer stop()

	res, err := runner.Run(ctx)
	if ctx.Err() != nil {
		log.Warn("run interrupted, printing partial result")
	}
	if res != nil {
		if ferr := format.Format(c.App.Writer, res); ferr != nil {
			return ferr
		}
	}
	return err
}

// startMetricsServer binds the metrics endpoint and serves it in the
// background. The bound address is returned so ":0" can be used.
func startMetricsServer(cfg config.MetricsSection, reg *metric.Registry, log logger.Logger) (*http.Server, string, error) {
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return nil, "", fmt.Errorf("listen metrics on %s: %w", cfg.Addr, err)
	}

	path := cfg.Path
	if path == "" {
		path = config.DefaultMetricsPath
	}
	mux := http.NewServeMux()
	mux.Handle(path, reg.Handler())

	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server error", "error", err)
		}
	}()

	return srv, ln.Addr().String(), nil
}

// watchLogLevel re-applies log.level whenever the config file changes.
func watchLogLevel(path string, loader *confloader.Loader, log logger.Logger) (*confloader.Watcher, error) {
	w, err := confloader.NewWatcher(confloader.WithWatcherLogger(log.Slog()))
	if err != nil {
		return nil, err
	}
	if err := w.Watch(path); err != nil {
		_ = w.Stop()
		return nil, err
	}

	w.OnChange(func(string) {
		reloadLogLevel(loader, log)
	})
	w.StartAsync()
	return w, nil
}

// reloadLogLevel reloads every source and applies the new log level. Other
// settings cannot change during a run and are ignored.
func reloadLogLevel(loader *confloader.Loader, log logger.Logger) {
	next := config.Default()
	if err := loader.Reload(next); err != nil {
		log.Warn("config reload failed", "error", err)
		return
	}
	if err := config.Verify(next); err != nil {
		log.Warn("reloaded config invalid, keeping log level", "error", err)
		return
	}

	if prev := logger.GetLevel(); prev != next.Log.Level {
		logger.SetLevel(next.Log.Level)
		log.Info("log level changed", "from", prev, "to", next.Log.Level)
	}
}
