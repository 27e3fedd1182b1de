package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/isowyrm/isowyrm/internal/contrib"
	"github.com/isowyrm/isowyrm/internal/iso"
	"github.com/isowyrm/isowyrm/internal/repository"
	"github.com/isowyrm/isowyrm/internal/scene"
	"github.com/isowyrm/isowyrm/internal/stats"
	"github.com/isowyrm/isowyrm/internal/walk"
)

// ErrUnknownPeriod is returned for a period selector other than
// "half-year" or "full-year".
var ErrUnknownPeriod = errors.New("unknown period")

// Lookback maps a period selector to its lookback in days.
func Lookback(period string) (int, error) {
	switch period {
	case "half-year":
		return contrib.LookbackHalfYear, nil
	case "full-year":
		return contrib.LookbackFullYear, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPeriod, period)
	}
}

// ChartService renders charts on demand, backed by the fetch cache.
type ChartService struct {
	repo   *repository.ActivityRepository
	client *http.Client
	ttl    time.Duration
}

// NewChartService creates a new chart service.
func NewChartService(repo *repository.ActivityRepository, client *http.Client, ttl time.Duration) *ChartService {
	return &ChartService{repo: repo, client: client, ttl: ttl}
}

// Render produces the SVG for a user and period, fetching from GitHub
// only when the cache has no fresh entry.
func (s *ChartService) Render(ctx context.Context, user, period string, seed int64) ([]byte, error) {
	lookback, err := Lookback(period)
	if err != nil {
		return nil, err
	}
	start, end := contrib.Window(time.Now().UTC(), lookback)

	counts, fresh, err := s.repo.Get(user, lookback, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to read activity cache: %w", err)
	}
	if !fresh {
		series, err := contrib.Fetch(ctx, s.client, user, start, end)
		if err != nil {
			return nil, err
		}
		counts = series.CountMap()
		if err := s.repo.Put(user, lookback, counts); err != nil {
			return nil, fmt.Errorf("failed to write activity cache: %w", err)
		}
	}

	return BuildChart(contrib.BuildSeries(start, end, counts), user, period, seed), nil
}

// BuildChart runs the pure rendering pipeline over an already-ingested
// series: classify, project, synthesize the route, and compose. The seed
// fixes every random draw, so identical inputs give identical bytes.
func BuildChart(series contrib.Series, user, period string, seed int64) []byte {
	th := stats.Quantiles(series.Counts())
	sum := stats.Summarize(series)
	grid := iso.NewGrid(series.Weeks())

	counts := make(map[contrib.Cell]int, len(series.Days))
	for _, d := range series.Days {
		counts[series.CellOf(d.Date)] = d.Count
	}
	max := series.MaxCount()

	walker := &walk.Walker{
		Grid:    grid,
		Level:   func(c contrib.Cell) int { return stats.Classify(counts[c], th) },
		Height:  func(c contrib.Cell) float64 { return iso.BarHeight(counts[c], max) },
		Weights: walk.DefaultWeights(),
		Rand:    rand.New(rand.NewSource(seed)),
	}
	start := contrib.Cell{Week: 0, Dow: contrib.DaysPerWeek - 1}
	route := walker.Synthesize(start, walk.DefaultSteps)

	return scene.Compose(series, th, grid, sum, route, scene.Options{User: user, Period: period})
}
