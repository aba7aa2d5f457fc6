// Package report renders the statistics sections printed after a dataset
// has been loaded. Every section tolerates an empty dataset.
package report

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/kula-app/bikeshare-stats/internal/stats"
	"github.com/kula-app/bikeshare-stats/internal/trips"
)

// NoData replaces a statistic that cannot be computed on an empty selection
const NoData = "no data for the selected filters"

// Separator closes every section
var Separator = strings.Repeat("-", 40)

// Reporter prints the statistics sections to a console
type Reporter struct {
	out    io.Writer
	logger *slog.Logger
	now    func() time.Time
}

// NewReporter creates a new reporter writing to out
func NewReporter(out io.Writer, logger *slog.Logger) *Reporter {
	return &Reporter{
		out:    out,
		logger: logger,
		now:    time.Now,
	}
}

// All prints every section in display order
func (r *Reporter) All(ds *trips.Dataset) {
	r.TimeStats(ds)
	r.StationStats(ds)
	r.DurationStats(ds)
	r.UserStats(ds)
}

// section prints the title, the body and how long the body took
func (r *Reporter) section(title string, body func(w io.Writer)) {
	fmt.Fprintf(r.out, "\n%s...\n\n", title)

	startTime := r.now()
	body(r.out)
	elapsed := r.now().Sub(startTime)

	fmt.Fprintf(r.out, "\nThis took %v seconds.\n", elapsed.Seconds())
	fmt.Fprintln(r.out, Separator)

	r.logger.Debug("report section printed",
		"section", title,
		"duration", elapsed)
}

// printCounts renders value counts as an aligned two column table
func printCounts(w io.Writer, counts []stats.Count[string]) {
	tw := tabwriter.NewWriter(w, 0, 0, 4, ' ', 0)
	for _, c := range counts {
		fmt.Fprintf(tw, "%s\t%d\n", c.Value, c.N)
	}
	tw.Flush()
}

// nonEmpty drops blank values, which stand for missing cells
func nonEmpty(values []string) []string {
	kept := values[:0:0]
	for _, v := range values {
		if v != "" {
			kept = append(kept, v)
		}
	}
	return kept
}
