// Package aggregate computes daily summary statistics and the rolling
// consensus pooled across a trailing window of daily snapshots.
package aggregate

import (
	"math"
	"sort"

	"github.com/shanelightowler/crypto-daily-mentions/models"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Summarize returns count/mean/median/min/max over the amounts, rounded to
// two decimals. An empty input yields a zero count with null statistics.
func Summarize(amounts []float64) models.Summary {
	if len(amounts) == 0 {
		return models.Summary{}
	}

	sorted := make([]float64, len(amounts))
	copy(sorted, amounts)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}

	n := len(sorted)
	var median float64
	if n%2 == 1 {
		median = sorted[n/2]
	} else {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	mean := round2(sum / float64(n))
	med := round2(median)
	min := round2(sorted[0])
	max := round2(sorted[n-1])
	return models.Summary{
		Count:  n,
		Mean:   &mean,
		Median: &med,
		Min:    &min,
		Max:    &max,
	}
}
