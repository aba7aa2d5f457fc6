// Package session drives the interactive exploration: ask for filters,
// load the data, print the reports, offer raw rows and ask to restart.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kula-app/bikeshare-stats/internal/console"
	"github.com/kula-app/bikeshare-stats/internal/trips"
)

const restartQuestion = "Would you like to restart? Please, choose between(Yes, No)."

// Loader provides the filtered dataset for a selection
type Loader interface {
	Load(ctx context.Context, filter trips.Filter) (*trips.Dataset, error)
}

// Reporter prints all statistics sections for a dataset
type Reporter interface {
	All(ds *trips.Dataset)
}

// Session is the outer question, report and restart loop
type Session struct {
	prompter *console.Prompter
	loader   Loader
	reporter Reporter
	browser  *Browser
	logger   *slog.Logger
}

// New creates a new session
func New(prompter *console.Prompter, loader Loader, reporter Reporter, browser *Browser, logger *slog.Logger) *Session {
	return &Session{
		prompter: prompter,
		loader:   loader,
		reporter: reporter,
		browser:  browser,
		logger:   logger,
	}
}

// Run repeats rounds until the user declines to restart or ctx is done
func (s *Session) Run(ctx context.Context) error {
	s.logger.Debug("session started")

	for round := 1; ; round++ {
		if err := ctx.Err(); err != nil {
			s.logger.Info("session stopped", "rounds", round-1)
			return err
		}

		restart, err := s.RunOnce(ctx)
		if err != nil {
			return err
		}
		if !restart {
			s.logger.Debug("session finished", "rounds", round)
			return nil
		}
	}
}

// RunOnce performs a single round and reports whether the user asked to
// start over. Only an exact "Yes" restarts.
func (s *Session) RunOnce(ctx context.Context) (bool, error) {
	// 1. Ask for the selection
	filter, err := s.prompter.Filters()
	if err != nil {
		return false, err
	}

	// 2. Load and filter the city's trips
	startTime := time.Now()
	ds, err := s.loader.Load(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to load trips: %w", err)
	}

	if ds.Empty() {
		s.logger.Warn("no trips match the selection",
			"city", filter.City.String(),
			"month", filter.Month.String(),
			"day", filter.Day.String())
	}

	// 3. Print the statistics
	s.reporter.All(ds)

	s.logger.Debug("reports completed",
		"rows", ds.Len(),
		"duration", time.Since(startTime))

	// 4. Offer raw rows
	if err := s.browser.Browse(ds); err != nil {
		return false, err
	}

	// 5. Anything but "Yes" ends the session, including invalid answers
	answer, err := s.prompter.Ask(restartQuestion)
	if err != nil {
		return false, err
	}
	return answer == console.Yes, nil
}
