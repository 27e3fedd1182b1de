package stats

import "github.com/isowyrm/isowyrm/internal/contrib"

// Summary aggregates a day series for the chart's stats panel.
type Summary struct {
	Total         int
	Max           int
	Mean          float64
	CurrentStreak int
	BestStreak    int
}

// Summarize computes the panel figures in one pass over the series.
// CurrentStreak is the run of consecutive active days ending at the most
// recent active day; BestStreak is the longest such run anywhere in the
// window.
func Summarize(s contrib.Series) Summary {
	var sum Summary
	run := 0
	for _, d := range s.Days {
		sum.Total += d.Count
		if d.Count > sum.Max {
			sum.Max = d.Count
		}
		if d.Count > 0 {
			run++
			if run > sum.BestStreak {
				sum.BestStreak = run
			}
			sum.CurrentStreak = run
		} else {
			run = 0
		}
	}
	if len(s.Days) > 0 {
		sum.Mean = float64(sum.Total) / float64(len(s.Days))
	}
	return sum
}
