package stats

import (
	"math"
	"sort"
)

// Levels is the number of discrete intensity buckets.
const Levels = 5

// Thresholds holds the three quantile cut points computed once over the
// positive counts of a series.
type Thresholds struct {
	Q1, Q2, Q3 int
}

// Quantiles computes the classification thresholds from the full count
// sequence. Only positive counts participate; the cut points sit at the
// 35th, 65th and 88th percentiles by nearest-rank selection. An all-zero
// series yields zero thresholds (and every count classifies to level 0).
func Quantiles(counts []int) Thresholds {
	positive := make([]int, 0, len(counts))
	for _, c := range counts {
		if c > 0 {
			positive = append(positive, c)
		}
	}
	if len(positive) == 0 {
		return Thresholds{}
	}
	sort.Ints(positive)

	return Thresholds{
		Q1: nearestRank(positive, 35),
		Q2: nearestRank(positive, 65),
		Q3: nearestRank(positive, 88),
	}
}

// nearestRank selects the p-th percentile (0-100) of a sorted slice using
// the nearest-rank method: the value at rank ceil(p/100 * n), 1-based.
func nearestRank(sorted []int, p float64) int {
	rank := int(math.Ceil(p / 100.0 * float64(len(sorted))))
	if rank < 1 {
		rank = 1
	}
	if rank > len(sorted) {
		rank = len(sorted)
	}
	return sorted[rank-1]
}

// Classify buckets a single count into an intensity level 0-4. Zero counts
// are always level 0; positive counts land in the highest bucket whose
// threshold they reach, so a series with a single distinct positive value
// classifies every active day into the top level.
func Classify(count int, t Thresholds) int {
	switch {
	case count <= 0:
		return 0
	case count < t.Q1:
		return 1
	case count < t.Q2:
		return 2
	case count < t.Q3:
		return 3
	default:
		return 4
	}
}
