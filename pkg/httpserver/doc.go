// Package httpserver wraps net/http with graceful shutdown, configurable
// timeouts, health-check handlers and slog logging.
//
// Run listens synchronously, so a bad address is reported immediately as
// ErrStart, then serves until the context is cancelled or Shutdown is
// called. Shutdown waits at most the configured shutdown timeout for
// in-flight requests. Signal handling belongs to the caller:
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// LivenessHandler and ReadinessHandler back the /healthz and /readyz probes.
// Readiness checks run with the request context, bounded by a timeout.
package httpserver
