package service

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/isowyrm/isowyrm/internal/contrib"
)

func TestLookback(t *testing.T) {
	tests := []struct {
		name    string
		period  string
		want    int
		wantErr bool
	}{
		{name: "half year", period: "half-year", want: contrib.LookbackHalfYear},
		{name: "full year", period: "full-year", want: contrib.LookbackFullYear},
		{name: "unknown", period: "fortnight", wantErr: true},
		{name: "empty", period: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lookback(tt.period)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownPeriod) {
					t.Fatalf("expected ErrUnknownPeriod, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("lookback: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func fullYearSeries(counts map[int]int) contrib.Series {
	start, end := contrib.Window(time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC), contrib.LookbackFullYear)
	m := make(map[string]int, len(counts))
	for idx, c := range counts {
		m[start.AddDate(0, 0, idx).Format("2006-01-02")] = c
	}
	return contrib.BuildSeries(start, end, m)
}

func TestBuildChartDeterministic(t *testing.T) {
	series := fullYearSeries(map[int]int{99: 5, 100: 5, 200: 12})

	first := BuildChart(series, "octocat", "full-year", 42)
	second := BuildChart(series, "octocat", "full-year", 42)
	if !bytes.Equal(first, second) {
		t.Fatal("expected byte-identical output for the same seed")
	}
}

func TestBuildChartTwoActiveDays(t *testing.T) {
	series := fullYearSeries(map[int]int{99: 5, 100: 5})
	out := string(BuildChart(series, "octocat", "full-year", 1))

	for _, want := range []string{
		"contributions  10",
		"busiest day    5",
		"daily average  0.027",
		"streak         2",
		"best streak    2",
		`id="creature"`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q", want)
		}
	}
}

func TestBuildChartAllZero(t *testing.T) {
	series := fullYearSeries(nil)
	out := string(BuildChart(series, "octocat", "full-year", 1))

	if strings.Contains(out, `class="bar"`) {
		t.Fatal("expected no bar geometry for an all-zero series")
	}
	if !strings.Contains(out, "contributions  0") {
		t.Fatal("expected zero total in the stats panel")
	}
}
