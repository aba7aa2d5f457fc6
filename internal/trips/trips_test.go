package trips

import (
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const chicagoCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1,2017-04-03 08:15:00,2017-04-03 08:30:00,900,Canal St,Clark St,Subscriber,Male,1985.0
2,2017-04-03 17:05:00,2017-04-03 17:20:00,600,Canal St,State St,Subscriber,Female,1990.0
3,2017-04-04 17:45:00,2017-04-04 18:00:00,300,Clark St,Canal St,Customer,,
4,2017-03-06 09:00:00,2017-03-06 09:10:00,1200,State St,Canal St,Subscriber,Male,1985.0
5,2017-03-01 17:30:00,2017-03-01 17:40:00,450.5,Canal St,Clark St,Customer,,
6,2017-06-23 12:00:00,2017-06-23 12:30:00,1800,Clark St,Clark St,Subscriber,Female,1972.0
`

const washingtonCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type
1,2017-04-03 08:15:00,2017-04-03 08:30:00,900.123,Union Station,14th & V St NW,Subscriber
2,2017-05-10 10:00:00,2017-05-10 10:05:00,300,Union Station,Jefferson Dr,Customer
`

type staticPaths map[City]string

func (p staticPaths) Path(city City) (string, error) {
	path, ok := p[city]
	if !ok {
		return "", errors.New("no path")
	}
	return path, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseCity(t *testing.T) {
	tests := []struct {
		input  string
		want   City
		wantOK bool
	}{
		{input: "Chicago", want: Chicago, wantOK: true},
		{input: "New York City", want: NewYorkCity, wantOK: true},
		{input: "Washington", want: Washington, wantOK: true},
		{input: "chicago", wantOK: false},
		{input: "New York", wantOK: false},
		{input: "Boston", wantOK: false},
		{input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseCity(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseCity(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseCity(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCityFiles(t *testing.T) {
	want := map[City]string{
		Chicago:     "chicago.csv",
		NewYorkCity: "new_york_city.csv",
		Washington:  "washington.csv",
	}
	for city, file := range want {
		if got := city.DefaultFile(); got != file {
			t.Errorf("%s.DefaultFile() = %q, want %q", city, got, file)
		}
	}
	if City(42).Valid() {
		t.Error("City(42).Valid() = true, want false")
	}
}

func TestFilterNames(t *testing.T) {
	require.Equal(t,
		[]string{"January", "February", "March", "April", "May", "June", "All"},
		MonthFilterNames())
	require.Equal(t,
		[]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday", "All"},
		DayFilterNames())
}

func TestParseMonthFilter(t *testing.T) {
	tests := []struct {
		input  string
		want   MonthFilter
		wantOK bool
	}{
		{input: "January", want: January, wantOK: true},
		{input: "April", want: April, wantOK: true},
		{input: "June", want: June, wantOK: true},
		{input: "All", want: AllMonths, wantOK: true},
		{input: "July", wantOK: false},
		{input: "4", wantOK: false},
		{input: "Apr", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseMonthFilter(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseMonthFilter(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ParseMonthFilter(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	if int(April) != 4 {
		t.Errorf("April = %d, want 4", April)
	}
}

func TestParseDayFilter(t *testing.T) {
	tests := []struct {
		input       string
		want        DayFilter
		wantWeekday time.Weekday
		wantOK      bool
	}{
		{input: "Monday", want: Monday, wantWeekday: time.Monday, wantOK: true},
		{input: "Saturday", want: Saturday, wantWeekday: time.Saturday, wantOK: true},
		{input: "Sunday", want: Sunday, wantWeekday: time.Sunday, wantOK: true},
		{input: "All", want: AllDays, wantOK: true},
		{input: "Mon", wantOK: false},
		{input: "monday", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseDayFilter(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseDayFilter(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ParseDayFilter(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if ok && got != AllDays && got.Weekday() != tt.wantWeekday {
				t.Errorf("%v.Weekday() = %v, want %v", got, got.Weekday(), tt.wantWeekday)
			}
		})
	}
}

func TestRead(t *testing.T) {
	ds, err := Read(strings.NewReader(chicagoCSV), Chicago)
	require.NoError(t, err)

	require.Equal(t, 6, ds.Len())
	require.True(t, ds.Schema.Gender)
	require.True(t, ds.Schema.BirthYear)
	require.Equal(t, Chicago, ds.City)

	first := ds.Records[0]
	require.Equal(t, time.April, first.Month)
	require.Equal(t, time.Monday, first.Weekday)
	require.Equal(t, 8, first.Hour)
	require.Equal(t, "Canal St", first.StartStation)
	require.Equal(t, "Clark St", first.EndStation)
	require.Equal(t, 900.0, first.Duration)
	require.Equal(t, "Male", first.Gender)
	require.True(t, first.HasBirthYear)
	require.Equal(t, 1985.0, first.BirthYear)
	require.Len(t, first.Raw, len(ds.Schema.Columns))

	third := ds.Records[2]
	require.Empty(t, third.Gender)
	require.False(t, third.HasBirthYear)
}

func TestRead_WithoutOptionalColumns(t *testing.T) {
	ds, err := Read(strings.NewReader(washingtonCSV), Washington)
	require.NoError(t, err)

	require.Equal(t, 2, ds.Len())
	require.False(t, ds.Schema.Gender)
	require.False(t, ds.Schema.BirthYear)
	require.InDelta(t, 900.123, ds.Records[0].Duration, 1e-9)
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "empty file",
			input:   "",
			wantErr: ErrMissingColumn,
		},
		{
			name:    "missing start station",
			input:   ",Start Time,End Time,Trip Duration,End Station,User Type\n",
			wantErr: ErrMissingColumn,
		},
		{
			name: "bad start time",
			input: ",Start Time,End Time,Trip Duration,Start Station,End Station,User Type\n" +
				"1,yesterday,2017-01-01 00:00:00,10,A,B,Subscriber\n",
		},
		{
			name: "bad duration",
			input: ",Start Time,End Time,Trip Duration,Start Station,End Station,User Type\n" +
				"1,2017-01-01 00:00:00,2017-01-01 00:00:00,long,A,B,Subscriber\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input), Chicago)
			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoader_Load(t *testing.T) {
	path := writeFixture(t, "chicago.csv", chicagoCSV)
	loader := NewLoader(staticPaths{Chicago: path}, discardLogger())

	tests := []struct {
		name      string
		month     MonthFilter
		day       DayFilter
		wantCount int
	}{
		{name: "no filter", month: AllMonths, day: AllDays, wantCount: 6},
		{name: "april only", month: April, day: AllDays, wantCount: 3},
		{name: "monday only", month: AllMonths, day: Monday, wantCount: 3},
		{name: "april mondays", month: April, day: Monday, wantCount: 2},
		{name: "march", month: March, day: AllDays, wantCount: 2},
		{name: "no match", month: June, day: Monday, wantCount: 0},
		{name: "january", month: January, day: AllDays, wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := loader.Load(t.Context(), Filter{City: Chicago, Month: tt.month, Day: tt.day})
			require.NoError(t, err)
			require.Equal(t, tt.wantCount, ds.Len())

			for _, rec := range ds.Records {
				if tt.month != AllMonths && int(rec.Month) != int(tt.month) {
					t.Errorf("record month = %v, want %v", rec.Month, tt.month)
				}
				if tt.day != AllDays && rec.Weekday != tt.day.Weekday() {
					t.Errorf("record weekday = %v, want %v", rec.Weekday, tt.day)
				}
			}
		})
	}
}

func TestLoader_Load_Errors(t *testing.T) {
	loader := NewLoader(staticPaths{Chicago: filepath.Join(t.TempDir(), "missing.csv")}, discardLogger())

	_, err := loader.Load(t.Context(), Filter{City: Chicago})
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = loader.Load(t.Context(), Filter{City: Washington})
	require.Error(t, err)

	_, err = loader.Load(t.Context(), Filter{City: City(0)})
	require.ErrorIs(t, err, ErrUnsupportedCity)
}

func TestDataset_Sample(t *testing.T) {
	ds, err := Read(strings.NewReader(chicagoCSV), Chicago)
	require.NoError(t, err)
	rng := rand.New(rand.NewPCG(1, 2))

	for range 20 {
		sample := ds.Sample(rng, 5)
		require.Len(t, sample, 5)

		seen := make(map[string]bool)
		for _, rec := range sample {
			id := rec.Raw[0]
			require.False(t, seen[id], "record %s drawn twice", id)
			seen[id] = true
		}
	}

	small := ds.Filter(April, Monday)
	require.Len(t, small.Sample(rng, 5), 2)

	empty := ds.Filter(June, Monday)
	require.True(t, empty.Empty())
	require.Empty(t, empty.Sample(rng, 5))
}

func TestDataset_FilterKeepsSchema(t *testing.T) {
	ds, err := Read(strings.NewReader(chicagoCSV), Chicago)
	require.NoError(t, err)

	filtered := ds.Filter(March, AllDays)
	require.Equal(t, ds.Schema, filtered.Schema)
	require.Equal(t, 6, ds.Len(), "filtering must not modify the source dataset")
}
