package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/chiclang/chicweb/internal/site"
	"github.com/chiclang/chicweb/pkg/config"
	"github.com/chiclang/chicweb/pkg/locale"
	"github.com/chiclang/chicweb/pkg/logger"
	"github.com/chiclang/chicweb/pkg/requestid"
)

type app struct {
	envFiles []string
	envOpts  []config.Option
}

func newRootCmd(envOpts ...config.Option) *cobra.Command {
	a := &app{envOpts: envOpts}

	root := &cobra.Command{
		Use:          "chicweb",
		Short:        "Locale-aware content server for the Chic website",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if len(a.envFiles) == 0 {
				return nil
			}
			return config.LoadEnv(a.envFiles...)
		},
	}
	root.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil, "load variables from these .env files first")

	root.AddCommand(
		a.serveCmd(),
		a.feedCmd(),
		a.translationsCmd(),
	)
	return root
}

// load reads the configuration and builds the site. The caller closes it.
func (a *app) load(ctx context.Context, cmd *cobra.Command) (*site.Site, *slog.Logger, error) {
	var cfg site.Config
	if err := config.Load(&cfg, a.envOpts...); err != nil {
		return nil, nil, err
	}

	opts := []logger.Option{
		logger.WithEnvironment(cfg.AppEnv, cfg.AppName),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextExtractors(requestid.LoggerExtractor(), locale.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	log := logger.New(opts...)

	s, err := site.New(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return s, log, nil
}
