package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kula-app/bikeshare-stats/internal/config"
	"github.com/kula-app/bikeshare-stats/internal/console"
	"github.com/kula-app/bikeshare-stats/internal/logging"
	"github.com/kula-app/bikeshare-stats/internal/report"
	"github.com/kula-app/bikeshare-stats/internal/session"
	"github.com/kula-app/bikeshare-stats/internal/trips"
)

// The run function is like the main function, except that it takes in operating system fundamentals as arguments, and returns an error.
//
// If the run function finishes without an error, the user ended the session.
// If the run function returns an error, the session could not be completed.
//
// The logic of the run function must stay isolated so it can be tested in parallel.
func run(ctx context.Context, args []string, getenv func(key string) string, stdin io.Reader, stdout, stderr io.Writer) error {
	// Defaults, then the .env file, then the environment, then flags
	cfg := config.DefaultConfig()
	if err := cfg.ApplyDotEnv(config.DefaultDotEnvFile); err != nil {
		return err
	}
	if err := cfg.ApplyEnv(getenv); err != nil {
		return err
	}

	cmd := &cobra.Command{
		Use:           "bikeshare",
		Short:         "Explore US bikeshare trip data",
		Long:          "Interactively explore bikeshare trips of Chicago, New York City and Washington\nfiltered by month and day of week.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return explore(cmd.Context(), cfg, stdin, stdout, stderr)
		},
	}
	cmd.SetArgs(args[1:])
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "Directory containing the city CSV files")
	flags.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "HCL file mapping cities to CSV files")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	flags.IntVar(&cfg.SampleSize, "sample-size", cfg.SampleSize, "Number of raw rows shown per request")
	flags.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for raw data sampling (0 picks a random seed)")

	// Derive a context that is canceled on OS interrupt/termination so the
	// session stops before starting another round.
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return cmd.ExecuteContext(ctx)
}

// explore wires the components together and runs the interactive session
func explore(ctx context.Context, cfg *config.Config, stdin io.Reader, stdout, stderr io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := slog.New(logging.NewTerminalHandler(stderr, level))

	logger.Debug("configuration loaded",
		"data_dir", cfg.DataDir,
		"catalog", cfg.CatalogPath,
		"log_level", cfg.LogLevel,
		"sample_size", cfg.SampleSize,
		"seed", cfg.Seed)

	catalog := config.DefaultCatalog(cfg.DataDir)
	if cfg.CatalogPath != "" {
		catalog, err = config.LoadCatalog(cfg.CatalogPath, cfg.DataDir)
		if err != nil {
			return err
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	prompter := console.NewPrompter(stdin, stdout)
	s := session.New(
		prompter,
		trips.NewLoader(catalog, logger),
		report.NewReporter(stdout, logger),
		session.NewBrowser(prompter, stdout, rng, cfg.SampleSize, logger),
		logger,
	)

	err = s.Run(ctx)
	switch {
	case errors.Is(err, console.ErrInputClosed):
		logger.Debug("input closed, ending session")
		return nil
	case errors.Is(err, context.Canceled):
		logger.Info("session interrupted")
		return nil
	case err != nil:
		return fmt.Errorf("session failed: %w", err)
	}

	return nil
}
