package report

import (
	"fmt"
	"io"

	"github.com/kula-app/bikeshare-stats/internal/stats"
	"github.com/kula-app/bikeshare-stats/internal/trips"
)

// TimeStats prints the most frequent month, weekday and start hour
func (r *Reporter) TimeStats(ds *trips.Dataset) {
	r.section("Calculating The Most Frequent Times of Travel", func(w io.Writer) {
		months := make([]int, 0, ds.Len())
		days := make([]string, 0, ds.Len())
		hours := make([]int, 0, ds.Len())
		for _, rec := range ds.Records {
			months = append(months, int(rec.Month))
			days = append(days, rec.Weekday.String())
			hours = append(hours, rec.Hour)
		}

		if month, ok := stats.Mode(months); ok {
			fmt.Fprintln(w, "The most common month is:", month)
		} else {
			fmt.Fprintln(w, "The most common month is:", NoData)
		}

		if day, ok := stats.Mode(days); ok {
			fmt.Fprintln(w, "The most common week day is:", day)
		} else {
			fmt.Fprintln(w, "The most common week day is:", NoData)
		}

		if hour, ok := stats.Mode(hours); ok {
			fmt.Fprintln(w, "The most common start hour is:", hour)
		} else {
			fmt.Fprintln(w, "The most common start hour is:", NoData)
		}
	})
}
