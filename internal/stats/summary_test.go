package stats

import (
	"math"
	"testing"
	"time"

	"github.com/isowyrm/isowyrm/internal/contrib"
)

func seriesWithCounts(days int, counts map[int]int) contrib.Series {
	end := time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)
	start := end.AddDate(0, 0, -(days - 1))
	m := make(map[string]int, len(counts))
	for idx, c := range counts {
		m[start.AddDate(0, 0, idx).Format("2006-01-02")] = c
	}
	return contrib.BuildSeries(start, end, m)
}

func TestSummarizeTwoActiveDays(t *testing.T) {
	// 366-day window, all zero except days 100 and 101.
	s := seriesWithCounts(366, map[int]int{99: 5, 100: 5})

	sum := Summarize(s)
	if sum.Total != 10 {
		t.Fatalf("expected total 10, got %d", sum.Total)
	}
	if sum.Max != 5 {
		t.Fatalf("expected max 5, got %d", sum.Max)
	}
	if math.Abs(sum.Mean-10.0/366.0) > 1e-9 {
		t.Fatalf("expected mean %.5f, got %.5f", 10.0/366.0, sum.Mean)
	}
	if sum.CurrentStreak != 2 {
		t.Fatalf("expected current streak 2, got %d", sum.CurrentStreak)
	}
	if sum.BestStreak != 2 {
		t.Fatalf("expected best streak 2, got %d", sum.BestStreak)
	}
}

func TestSummarizeStreaks(t *testing.T) {
	tests := []struct {
		name          string
		counts        map[int]int
		current, best int
	}{
		{name: "empty", counts: nil, current: 0, best: 0},
		{name: "active through end", counts: map[int]int{27: 1, 28: 2, 29: 3}, current: 3, best: 3},
		{name: "earlier run is longer", counts: map[int]int{2: 1, 3: 1, 4: 1, 5: 1, 29: 2}, current: 1, best: 4},
		{name: "runs split by gap", counts: map[int]int{10: 1, 11: 1, 13: 1}, current: 1, best: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum := Summarize(seriesWithCounts(30, tt.counts))
			if sum.CurrentStreak != tt.current {
				t.Fatalf("expected current streak %d, got %d", tt.current, sum.CurrentStreak)
			}
			if sum.BestStreak != tt.best {
				t.Fatalf("expected best streak %d, got %d", tt.best, sum.BestStreak)
			}
		})
	}
}
