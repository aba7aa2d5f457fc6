package session

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"text/tabwriter"

	"github.com/kula-app/bikeshare-stats/internal/console"
	"github.com/kula-app/bikeshare-stats/internal/trips"
)

// DefaultSampleSize is the number of rows shown per raw data request
const DefaultSampleSize = 5

const rawDataQuestion = "Would you like to display the raw data? Please, choose between(Yes, No)."

// Browser shows random rows of a dataset for as long as the user asks
type Browser struct {
	prompter *console.Prompter
	out      io.Writer
	rng      *rand.Rand
	size     int
	logger   *slog.Logger
}

// NewBrowser creates a new raw data browser drawing size rows per request
func NewBrowser(prompter *console.Prompter, out io.Writer, rng *rand.Rand, size int, logger *slog.Logger) *Browser {
	if size <= 0 {
		size = DefaultSampleSize
	}
	return &Browser{
		prompter: prompter,
		out:      out,
		rng:      rng,
		size:     size,
		logger:   logger,
	}
}

// Browse prints a fresh random sample on every "Yes" and returns on "No"
func (b *Browser) Browse(ds *trips.Dataset) error {
	for {
		show, err := b.prompter.Confirm(rawDataQuestion)
		if err != nil {
			return err
		}
		if !show {
			return nil
		}

		sample := ds.Sample(b.rng, b.size)
		b.logger.Debug("raw data sample drawn",
			"requested", b.size,
			"drawn", len(sample),
			"available", ds.Len())

		b.printRecords(ds.Schema.Columns, sample)
	}
}

func (b *Browser) printRecords(columns []string, records []trips.Record) {
	if len(records) == 0 {
		fmt.Fprintln(b.out, "There are no trips to display for the selected filters.")
		return
	}

	tw := tabwriter.NewWriter(b.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(columns, "\t"))
	for _, rec := range records {
		fmt.Fprintln(tw, strings.Join(rec.Raw, "\t"))
	}
	tw.Flush()
}
