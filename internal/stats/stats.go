// Package stats provides the reductions used by the trip reports.
//
// Modes and value counts break ties by the smallest value, so a report is
// reproducible for a given dataset regardless of row order.
package stats

import (
	"cmp"
	"math"
	"slices"

	mstats "github.com/aclements/go-moremath/stats"
)

// Count is the number of occurrences of a single value
type Count[T cmp.Ordered] struct {
	Value T
	N     int
}

// Mode returns the most frequent value. Among equally frequent values the
// smallest one wins. ok is false when values is empty.
func Mode[T cmp.Ordered](values []T) (mode T, ok bool) {
	counts := ValueCounts(values)
	if len(counts) == 0 {
		return mode, false
	}
	return counts[0].Value, true
}

// ValueCounts counts the occurrences of each distinct value, ordered by
// count descending and then by value ascending
func ValueCounts[T cmp.Ordered](values []T) []Count[T] {
	tally := make(map[T]int)
	for _, v := range values {
		tally[v]++
	}

	counts := make([]Count[T], 0, len(tally))
	for v, n := range tally {
		counts = append(counts, Count[T]{Value: v, N: n})
	}

	slices.SortFunc(counts, func(a, b Count[T]) int {
		if a.N != b.N {
			return cmp.Compare(b.N, a.N)
		}
		return cmp.Compare(a.Value, b.Value)
	})

	return counts
}

// Sum returns the sum of xs, 0 for an empty slice
func Sum(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return mstats.Sample{Xs: xs}.Sum()
}

// Mean returns the arithmetic mean of xs. ok is false for an empty slice.
func Mean(xs []float64) (mean float64, ok bool) {
	if len(xs) == 0 {
		return 0, false
	}
	return mstats.Sample{Xs: xs}.Mean(), true
}

// Bounds returns the minimum and maximum of xs. ok is false for an empty slice.
func Bounds(xs []float64) (lo, hi float64, ok bool) {
	if len(xs) == 0 {
		return 0, 0, false
	}
	lo, hi = mstats.Sample{Xs: xs}.Bounds()
	return lo, hi, true
}

// Round rounds to the nearest integer, halves to even
func Round(x float64) int64 {
	return int64(math.RoundToEven(x))
}
