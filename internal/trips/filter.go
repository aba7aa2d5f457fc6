package trips

import (
	"time"
)

// AllLabel is the selector value that disables a month or day filter
const AllLabel = "All"

// MonthFilter restricts a dataset to a single month of the first half year.
// The zero value keeps every month.
type MonthFilter int

const (
	AllMonths MonthFilter = iota
	January
	February
	March
	April
	May
	June
)

// DayFilter restricts a dataset to a single day of the week.
// The zero value keeps every day.
type DayFilter int

const (
	AllDays DayFilter = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// Filter is the complete selection made by the user for one session
type Filter struct {
	City  City
	Month MonthFilter
	Day   DayFilter
}

// MonthFilterNames returns the accepted month selectors, "All" last
func MonthFilterNames() []string {
	names := make([]string, 0, int(June)+1)
	for m := January; m <= June; m++ {
		names = append(names, m.String())
	}
	return append(names, AllLabel)
}

// ParseMonthFilter matches an already normalized month selector
func ParseMonthFilter(name string) (MonthFilter, bool) {
	if name == AllLabel {
		return AllMonths, true
	}
	for m := January; m <= June; m++ {
		if m.String() == name {
			return m, true
		}
	}
	return AllMonths, false
}

func (m MonthFilter) String() string {
	if m < January || m > June {
		return AllLabel
	}
	return time.Month(m).String()
}

// Matches reports whether a trip started in month passes the filter
func (m MonthFilter) Matches(month time.Month) bool {
	return m == AllMonths || time.Month(m) == month
}

// DayFilterNames returns the accepted day selectors, "All" last
func DayFilterNames() []string {
	names := make([]string, 0, int(Sunday)+1)
	for d := Monday; d <= Sunday; d++ {
		names = append(names, d.String())
	}
	return append(names, AllLabel)
}

// ParseDayFilter matches an already normalized day selector
func ParseDayFilter(name string) (DayFilter, bool) {
	if name == AllLabel {
		return AllDays, true
	}
	for d := Monday; d <= Sunday; d++ {
		if d.String() == name {
			return d, true
		}
	}
	return AllDays, false
}

// Weekday converts the filter to the time package's representation.
// It must not be called on AllDays.
func (d DayFilter) Weekday() time.Weekday {
	// Sunday is 7 here and 0 in the time package
	return time.Weekday(int(d) % 7)
}

func (d DayFilter) String() string {
	if d < Monday || d > Sunday {
		return AllLabel
	}
	return d.Weekday().String()
}

// Matches reports whether a trip started on weekday passes the filter
func (d DayFilter) Matches(weekday time.Weekday) bool {
	return d == AllDays || d.Weekday() == weekday
}
