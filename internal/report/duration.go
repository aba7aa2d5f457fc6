package report

import (
	"fmt"
	"io"

	"github.com/kula-app/bikeshare-stats/internal/stats"
	"github.com/kula-app/bikeshare-stats/internal/trips"
)

// DurationStats prints the total and mean trip duration in seconds
func (r *Reporter) DurationStats(ds *trips.Dataset) {
	r.section("Calculating Trip Duration", func(w io.Writer) {
		durations := make([]float64, 0, ds.Len())
		for _, rec := range ds.Records {
			durations = append(durations, rec.Duration)
		}

		fmt.Fprintln(w, "Total travel time is:", stats.Round(stats.Sum(durations)))

		if mean, ok := stats.Mean(durations); ok {
			fmt.Fprintln(w, "Mean travel time is:", stats.Round(mean))
		} else {
			fmt.Fprintln(w, "Mean travel time is:", NoData)
		}
	})
}
