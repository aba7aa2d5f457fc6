package report

import (
	"fmt"
	"io"

	"github.com/kula-app/bikeshare-stats/internal/stats"
	"github.com/kula-app/bikeshare-stats/internal/trips"
)

// TripSeparator joins start and end station into a single trip label
const TripSeparator = " - "

// StationStats prints the most popular start station, end station and trip
func (r *Reporter) StationStats(ds *trips.Dataset) {
	r.section("Calculating The Most Popular Stations and Trip", func(w io.Writer) {
		starts := make([]string, 0, ds.Len())
		ends := make([]string, 0, ds.Len())
		routes := make([]string, 0, ds.Len())
		for _, rec := range ds.Records {
			starts = append(starts, rec.StartStation)
			ends = append(ends, rec.EndStation)
			routes = append(routes, rec.StartStation+TripSeparator+rec.EndStation)
		}

		printMode(w, "The most common start station is:", starts)
		printMode(w, "The most common end station is:", ends)
		printMode(w, "The most frequent start station and end station trip is:", routes)
	})
}

func printMode(w io.Writer, label string, values []string) {
	mode, ok := stats.Mode(values)
	if !ok {
		mode = NoData
	}
	fmt.Fprintln(w, label, mode)
}
