package trips

import (
	"math/rand/v2"
	"time"
)

// Column names of the bikeshare CSV exports
const (
	ColumnStartTime    = "Start Time"
	ColumnEndTime      = "End Time"
	ColumnTripDuration = "Trip Duration"
	ColumnStartStation = "Start Station"
	ColumnEndStation   = "End Station"
	ColumnUserType     = "User Type"
	ColumnGender       = "Gender"
	ColumnBirthYear    = "Birth Year"
)

// StartTimeLayout is the timestamp format used by the exports
const StartTimeLayout = "2006-01-02 15:04:05"

// Record is a single bikeshare trip with its derived calendar fields
type Record struct {
	StartTime    time.Time
	StartStation string
	EndStation   string
	// Duration is the trip length in seconds
	Duration float64
	UserType string

	// Gender is empty when unknown or when the city does not record it
	Gender string
	// BirthYear is only meaningful when HasBirthYear is set
	BirthYear    float64
	HasBirthYear bool

	Month   time.Month
	Weekday time.Weekday
	Hour    int

	// Raw holds the row exactly as read, aligned with Schema.Columns
	Raw []string
}

// Schema describes which columns a city's export provides
type Schema struct {
	Columns   []string
	Gender    bool
	BirthYear bool
}

// Dataset is the set of trips of one city that passed the user's filter
type Dataset struct {
	City    City
	Schema  Schema
	Records []Record
}

// Len returns the number of trips in the dataset
func (d *Dataset) Len() int {
	return len(d.Records)
}

// Empty reports whether no trip passed the filter
func (d *Dataset) Empty() bool {
	return len(d.Records) == 0
}

// Filter returns a new dataset holding only the records that pass both
// the month and the day filter. The receiver is left untouched.
func (d *Dataset) Filter(month MonthFilter, day DayFilter) *Dataset {
	kept := make([]Record, 0, len(d.Records))
	for _, rec := range d.Records {
		if month.Matches(rec.Month) && day.Matches(rec.Weekday) {
			kept = append(kept, rec)
		}
	}

	return &Dataset{
		City:    d.City,
		Schema:  d.Schema,
		Records: kept,
	}
}

// Sample draws min(n, Len()) distinct records uniformly at random.
// Every call is an independent draw.
func (d *Dataset) Sample(rng *rand.Rand, n int) []Record {
	n = max(0, min(n, len(d.Records)))

	picked := make([]Record, 0, n)
	for _, idx := range rng.Perm(len(d.Records))[:n] {
		picked = append(picked, d.Records[idx])
	}
	return picked
}
