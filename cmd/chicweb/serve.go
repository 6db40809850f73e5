package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/chiclang/chicweb/pkg/httpserver"
	"github.com/chiclang/chicweb/pkg/logger"
)

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server until SIGINT or SIGTERM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx, cmd)
		},
	}
}

func (a *app) serve(ctx context.Context, cmd *cobra.Command) (err error) {
	s, log, err := a.load(ctx, cmd)
	if err != nil {
		return err
	}
	logger.SetAsDefault(log)
	defer func() {
		err = errors.Join(err, s.Close())
	}()

	if err := s.Start(ctx); err != nil {
		return err
	}

	cfg := s.Config()
	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log.With(logger.Component("httpserver"))),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("serving site",
				slog.String("site_url", cfg.SiteURL),
				slog.String("content_backend", cfg.ContentBackend),
				slog.String("content_cache", cfg.ContentCache),
			)
		}),
	)
	return srv.Run(ctx, s.Handler())
}
