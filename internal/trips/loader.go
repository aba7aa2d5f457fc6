package trips

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrMissingColumn is returned when an export lacks a required column
	ErrMissingColumn = errors.New("missing required column")

	// ErrUnsupportedCity is returned when loading a city outside the supported set
	ErrUnsupportedCity = errors.New("unsupported city")
)

var requiredColumns = []string{
	ColumnStartTime,
	ColumnTripDuration,
	ColumnStartStation,
	ColumnEndStation,
	ColumnUserType,
}

// PathResolver maps a city to the file its trips are stored in
type PathResolver interface {
	Path(city City) (string, error)
}

// Loader reads a city's export from disk and applies the user's filter
type Loader struct {
	paths  PathResolver
	logger *slog.Logger
}

// NewLoader creates a new loader
func NewLoader(paths PathResolver, logger *slog.Logger) *Loader {
	return &Loader{
		paths:  paths,
		logger: logger,
	}
}

// Load reads every trip of the filter's city and keeps the ones matching
// its month and day. An empty result is not an error.
func (l *Loader) Load(ctx context.Context, filter Filter) (*Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !filter.City.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedCity, filter.City)
	}

	path, err := l.paths.Path(filter.City)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data file for %s: %w", filter.City, err)
	}

	startTime := time.Now()
	l.logger.Debug("loading trip data",
		"city", filter.City.String(),
		"path", path)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trip data for %s: %w", filter.City, err)
	}
	defer file.Close()

	all, err := Read(file, filter.City)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	filtered := all.Filter(filter.Month, filter.Day)

	l.logger.Info("trip data loaded",
		"city", filter.City.String(),
		"month", filter.Month.String(),
		"day", filter.Day.String(),
		"rows_total", all.Len(),
		"rows_matching", filtered.Len(),
		"has_gender", all.Schema.Gender,
		"has_birth_year", all.Schema.BirthYear,
		"duration", time.Since(startTime))

	return filtered, nil
}

// Read parses a bikeshare CSV export. The optional gender and birth year
// columns are recorded in the returned dataset's schema.
func Read(r io.Reader, city City) (*Dataset, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: file has no header", ErrMissingColumn)
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make([]string, len(header))
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		columns[i] = name
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	genderIdx, hasGender := index[ColumnGender]
	birthIdx, hasBirthYear := index[ColumnBirthYear]

	ds := &Dataset{
		City: city,
		Schema: Schema{
			Columns:   columns,
			Gender:    hasGender,
			BirthYear: hasBirthYear,
		},
	}

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		line, _ := reader.FieldPos(0)

		rec, err := parseRecord(row, index)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		if hasGender {
			rec.Gender = strings.TrimSpace(row[genderIdx])
		}
		if hasBirthYear {
			if raw := strings.TrimSpace(row[birthIdx]); raw != "" {
				year, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: invalid %s %q: %w", line, ColumnBirthYear, raw, err)
				}
				rec.BirthYear = year
				rec.HasBirthYear = true
			}
		}

		ds.Records = append(ds.Records, rec)
	}

	return ds, nil
}

// parseRecord extracts the required fields of a row and derives the
// calendar fields from its start time
func parseRecord(row []string, index map[string]int) (Record, error) {
	field := func(name string) string {
		return strings.TrimSpace(row[index[name]])
	}

	rawStart := field(ColumnStartTime)
	start, err := time.ParseInLocation(StartTimeLayout, rawStart, time.UTC)
	if err != nil {
		return Record{}, fmt.Errorf("invalid %s %q: %w", ColumnStartTime, rawStart, err)
	}

	rawDuration := field(ColumnTripDuration)
	duration, err := strconv.ParseFloat(rawDuration, 64)
	if err != nil {
		return Record{}, fmt.Errorf("invalid %s %q: %w", ColumnTripDuration, rawDuration, err)
	}

	return Record{
		StartTime:    start,
		StartStation: field(ColumnStartStation),
		EndStation:   field(ColumnEndStation),
		Duration:     duration,
		UserType:     field(ColumnUserType),
		Month:        start.Month(),
		Weekday:      start.Weekday(),
		Hour:         start.Hour(),
		Raw:          row,
	}, nil
}
