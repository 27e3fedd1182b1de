package contrib

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestWindowAlignsToSunday(t *testing.T) {
	tests := []struct {
		name     string
		end      string
		lookback int
	}{
		{name: "full year", end: "2025-06-18", lookback: LookbackFullYear},
		{name: "half year", end: "2025-06-18", lookback: LookbackHalfYear},
		{name: "end on sunday", end: "2025-06-15", lookback: LookbackFullYear},
		{name: "leap year span", end: "2024-12-31", lookback: LookbackFullYear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := Window(date(tt.end), tt.lookback)
			if start.Weekday() != time.Sunday {
				t.Fatalf("expected start on Sunday, got %v", start.Weekday())
			}
			if start.After(end.AddDate(0, 0, -tt.lookback)) {
				t.Fatalf("start %v is after end-lookback", start)
			}
			span := int(end.Sub(start).Hours()/24) + 1
			if span < tt.lookback+1 || span > tt.lookback+7 {
				t.Fatalf("expected span within [%d, %d], got %d", tt.lookback+1, tt.lookback+7, span)
			}
		})
	}
}

func TestBuildSeriesCoversWindow(t *testing.T) {
	start, end := Window(date("2025-06-18"), LookbackFullYear)
	s := BuildSeries(start, end, map[string]int{
		start.Format("2006-01-02"): 3,
		"2025-01-01":               7,
	})

	want := int(end.Sub(start).Hours()/24) + 1
	if len(s.Days) != want {
		t.Fatalf("expected %d days, got %d", want, len(s.Days))
	}
	if s.Days[0].Count != 3 {
		t.Fatalf("expected first day count 3, got %d", s.Days[0].Count)
	}
	for i := 1; i < len(s.Days); i++ {
		if int(s.Days[i].Date.Sub(s.Days[i-1].Date).Hours()/24) != 1 {
			t.Fatalf("gap between day %d and %d", i-1, i)
		}
		if s.Days[i].Count < 0 {
			t.Fatalf("negative count at day %d", i)
		}
	}
}

func TestCellOfStaysInBounds(t *testing.T) {
	start, end := Window(date("2025-06-18"), LookbackHalfYear)
	s := BuildSeries(start, end, nil)

	weeks := s.Weeks()
	seenZero := false
	for _, d := range s.Days {
		c := s.CellOf(d.Date)
		if c.Week < 0 || c.Week >= weeks {
			t.Fatalf("week %d out of [0, %d) for %v", c.Week, weeks, d.Date)
		}
		if c.Dow < 0 || c.Dow > 6 {
			t.Fatalf("dow %d out of range for %v", c.Dow, d.Date)
		}
		if c.Week == 0 {
			seenZero = true
		}
	}
	if !seenZero {
		t.Fatal("expected the most recent week to be week 0")
	}
	if got := s.CellOf(s.End); got.Week != 0 {
		t.Fatalf("expected end date in week 0, got week %d", got.Week)
	}
	if got := s.CellOf(s.Start); got != (Cell{Week: weeks - 1, Dow: 0}) {
		t.Fatalf("expected start at oldest week dow 0, got %+v", got)
	}
}

func TestCountMapRoundTrip(t *testing.T) {
	start, end := Window(date("2025-06-18"), LookbackHalfYear)
	counts := map[string]int{"2025-03-01": 4, "2025-03-02": 9}
	s := BuildSeries(start, end, counts)

	rebuilt := BuildSeries(start, end, s.CountMap())
	if len(rebuilt.Days) != len(s.Days) {
		t.Fatalf("expected %d days, got %d", len(s.Days), len(rebuilt.Days))
	}
	for i := range s.Days {
		if rebuilt.Days[i] != s.Days[i] {
			t.Fatalf("day %d mismatch: %+v vs %+v", i, rebuilt.Days[i], s.Days[i])
		}
	}
}
