// Package shutdown stops long-running stripelist commands cleanly.
//
// It handles process termination signals:
//
//   - Signal handling (SIGINT, SIGTERM)
//   - Timeout-bounded cleanup hooks, run in reverse registration order
//
// Usage:
//
//	h := shutdown.NewHandler(5 * time.Second)
//	ctx, stop := h.WithSignals(context.Background())
//	defer stop()
//	h.OnShutdown(func(ctx context.Context) error { return srv.Shutdown(ctx) })
//	runWorkload(ctx) // returns early on Ctrl+C
//	err := h.Shutdown()
package shutdown
