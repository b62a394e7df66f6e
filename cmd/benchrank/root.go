package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/spboyer/benchrank/internal/kovaaks"
	"github.com/spboyer/benchrank/internal/metadata"
	"github.com/spboyer/benchrank/internal/projectconfig"
	"github.com/spboyer/benchrank/internal/resolver"
	"github.com/spboyer/benchrank/internal/utils"
	"github.com/spboyer/benchrank/internal/webapi"
	"github.com/spf13/cobra"
)

var version = "dev"

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	debug     bool
	configDir string
	metadata  string
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "benchrank",
		Short: "Benchrank - KovaaK's benchmark progress lookup",
		Long: `Benchrank looks up a player's progress on a KovaaK's benchmark.

It merges the static benchmark table (labels, difficulty tabs and colors)
with live ranking data from the KovaaK's webapp backend. Lookups never fail:
unknown benchmarks, unknown difficulties and upstream errors all produce an
empty, fully-shaped view.`,
		Version:      version,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.configDir, "config", ".", "Directory to start the "+projectconfig.FileName+" lookup from")
	cmd.PersistentFlags().StringVar(&opts.metadata, "metadata", "", "Benchmark table source (file path or Azure blob URL), overrides metadata.source")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if opts.debug {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newProgressCommand(opts))
	cmd.AddCommand(newBenchmarksCommand(opts))
	cmd.AddCommand(newValidateCommand())

	return cmd
}

// app is the wired set of collaborators a command runs against.
type app struct {
	cfg      *projectconfig.ProjectConfig
	logger   *slog.Logger
	store    *metadata.Store
	resolver *resolver.Resolver
}

// loadConfig reads the project config and builds the logger. Logs go to
// logOut so command output on stdout stays machine-readable.
func (o *globalOptions) loadConfig(logOut io.Writer) (*projectconfig.ProjectConfig, *slog.Logger, error) {
	cfg, err := projectconfig.Load(o.configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if o.metadata != "" {
		cfg.Metadata.Source = o.metadata
	}

	level := cfg.Logging.Level
	if o.debug {
		level = "debug"
	}
	logger, err := utils.NewLogger(logOut, level, cfg.Logging.Format)
	if err != nil {
		return nil, nil, fmt.Errorf("configuring logging: %w", err)
	}
	return cfg, logger, nil
}

// loadApp builds the metadata store, ranking client and resolver.
func (o *globalOptions) loadApp(ctx context.Context, logOut io.Writer) (*app, error) {
	cfg, logger, err := o.loadConfig(logOut)
	if err != nil {
		return nil, err
	}

	store, err := metadata.Load(ctx, cfg.Metadata.Source)
	if err != nil {
		return nil, fmt.Errorf("loading benchmark metadata: %w", err)
	}
	logger.Debug("benchmark metadata loaded", "embedded", cfg.Metadata.Source == "", "benchmarks", store.Len())

	client := kovaaks.NewClient(kovaaks.Options{
		BaseURL:       cfg.Upstream.BaseURL,
		HTTPClient:    &http.Client{Timeout: cfg.UpstreamTimeout()},
		StrictPayload: cfg.Strict(),
		Logger:        logger,
	})

	return &app{
		cfg:      cfg,
		logger:   logger,
		store:    store,
		resolver: resolver.New(store, client, resolver.Options{Logger: logger}),
	}, nil
}

func execute() error {
	webapi.Version = version
	rootCmd := newRootCommand()
	rootCmd.SetErr(os.Stderr)
	return rootCmd.Execute()
}
