package report

import (
	"fmt"
	"io"

	"github.com/kula-app/bikeshare-stats/internal/stats"
	"github.com/kula-app/bikeshare-stats/internal/trips"
)

// UserStats prints user type counts and, where the city records them,
// gender counts and birth year statistics
func (r *Reporter) UserStats(ds *trips.Dataset) {
	r.section("Calculating User Stats", func(w io.Writer) {
		userTypes := make([]string, 0, ds.Len())
		for _, rec := range ds.Records {
			userTypes = append(userTypes, rec.UserType)
		}

		fmt.Fprintln(w, "User types are:")
		if counts := stats.ValueCounts(nonEmpty(userTypes)); len(counts) > 0 {
			printCounts(w, counts)
		} else {
			fmt.Fprintln(w, NoData)
		}

		printGender(w, ds)
		printBirthYears(w, ds)
	})
}

func printGender(w io.Writer, ds *trips.Dataset) {
	if !ds.Schema.Gender {
		fmt.Fprintf(w, "\nThere's no gender types data available for %s.\n\n", ds.City)
		return
	}

	genders := make([]string, 0, ds.Len())
	for _, rec := range ds.Records {
		genders = append(genders, rec.Gender)
	}

	fmt.Fprintln(w, "\nGender types are:")
	if counts := stats.ValueCounts(nonEmpty(genders)); len(counts) > 0 {
		printCounts(w, counts)
	} else {
		fmt.Fprintln(w, NoData)
	}
	fmt.Fprintln(w)
}

func printBirthYears(w io.Writer, ds *trips.Dataset) {
	if !ds.Schema.BirthYear {
		notice := fmt.Sprintf("There's no birth year data available for %s.", ds.City)
		fmt.Fprintln(w, notice)
		fmt.Fprintln(w, notice)
		fmt.Fprintln(w, notice)
		return
	}

	years := make([]float64, 0, ds.Len())
	wholeYears := make([]int, 0, ds.Len())
	for _, rec := range ds.Records {
		if rec.HasBirthYear {
			years = append(years, rec.BirthYear)
			wholeYears = append(wholeYears, int(rec.BirthYear))
		}
	}

	earliest, latest, ok := stats.Bounds(years)
	if !ok {
		fmt.Fprintln(w, "The earliest birth year is:", NoData)
		fmt.Fprintln(w, "The latest birth year is:", NoData)
		fmt.Fprintln(w, "The most common birth year is:", NoData)
		return
	}

	common, _ := stats.Mode(wholeYears)
	fmt.Fprintln(w, "The earliest birth year is:", int(earliest))
	fmt.Fprintln(w, "The latest birth year is:", int(latest))
	fmt.Fprintln(w, "The most common birth year is:", common)
}
