package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/nao1215/deptreport/internal/aggregate"
	"github.com/nao1215/deptreport/internal/config"
	"github.com/nao1215/deptreport/internal/i18n"
	"github.com/nao1215/deptreport/internal/log"
	"github.com/nao1215/deptreport/internal/model"
	"github.com/nao1215/deptreport/internal/pipeline"
	"github.com/nao1215/deptreport/internal/report"
)

// session holds what a command needs once flags, files and environment
// have been resolved.
type session struct {
	cfg    *config.Config
	logger *slog.Logger
	lang   language.Tag
}

// newSession builds and validates the configuration and sets up logging.
func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	lang, err := i18n.Parse(cfg.Language)
	if err != nil {
		return nil, err
	}

	logger.Debug("configuration resolved",
		"inputs", cfg.Inputs,
		"output", cfg.OutputPath,
		"language", lang.String(),
		"format", cfg.Format,
		"configFile", cfg.ConfigFilePath,
	)

	return &session{cfg: cfg, logger: logger, lang: lang}, nil
}

// buildConfig creates a Config from defaults, the config file, the
// environment and finally the flags the user actually set.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	if f := cmd.Flags().Lookup("config"); f != nil {
		cfg.ConfigFilePath = f.Value.String()
	}

	// An explicitly given config file must exist; a missing default one is fine.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if err := cf.Apply(cfg); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
		}
		cfg.ConfigFilePath = configPath
	} else if explicitConfigPath {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	if err := config.ApplyEnv(cfg, config.DefaultEnvFile); err != nil {
		return nil, err
	}

	if err := applyFlags(cmd, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlags copies flags that were set on the command line onto cfg.
// Flags a command does not define are skipped.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	changed := func(name string) bool {
		f := flags.Lookup(name)
		return f != nil && f.Changed
	}

	var err error
	if changed("verbose") {
		if cfg.Verbose, err = flags.GetBool("verbose"); err != nil {
			return err
		}
	}
	if changed("input") {
		if cfg.Inputs, err = flags.GetStringArray("input"); err != nil {
			return err
		}
	}
	if changed("lang") {
		if cfg.Language, err = flags.GetString("lang"); err != nil {
			return err
		}
	}
	if changed("format") {
		if cfg.Format, err = flags.GetString("format"); err != nil {
			return err
		}
	}
	if changed("output") {
		if cfg.OutputPath, err = flags.GetString("output"); err != nil {
			return err
		}
	}
	if changed("history") {
		if cfg.SaveHistory, err = flags.GetBool("history"); err != nil {
			return err
		}
	}
	return nil
}

// setupLogger creates a structured logger based on verbosity setting.
func setupLogger(w io.Writer, verbose bool) *slog.Logger {
	return log.NewLogger(w, verbose)
}

// signalContext returns a context that is canceled on SIGINT or SIGTERM.
func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// loadStats aggregates every configured input into one Stats.
func (s *session) loadStats(ctx context.Context) (*model.Stats, error) {
	b := pipeline.NewBatchAggregator(
		pipeline.WithConcurrency(s.cfg.Concurrency),
		pipeline.WithBatchLogger(s.logger),
		pipeline.WithAggregateOptions(
			aggregate.WithLayout(s.cfg.Layout),
			aggregate.WithDelimiter(s.cfg.Delimiter),
			aggregate.WithLogger(s.logger),
		),
	)
	return b.Aggregate(ctx, s.cfg.Inputs)
}

// reportOptions returns the writer options for the session language.
func (s *session) reportOptions() []report.Option {
	return []report.Option{report.WithLanguage(s.lang)}
}
