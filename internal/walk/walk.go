// Package walk synthesizes the creature's route: a constrained stochastic
// glide across the contribution grid that favors populated cells, keeps
// its momentum, and never doubles back over its own body.
package walk

import (
	"math/rand"
	"sort"

	"github.com/golang/geo/r2"

	"github.com/isowyrm/isowyrm/internal/contrib"
	"github.com/isowyrm/isowyrm/internal/iso"
)

// HistoryCap is the size of the recently-visited ring. It must exceed the
// number of rendered creature segments so the tail never reaches a cell
// the walker is still allowed to revisit.
const HistoryCap = 20

// DefaultSteps is the step budget for a full route.
const DefaultSteps = 60

// Waypoint is one committed step of the route: the grid cell, its
// projected screen point lifted to the top of the cell's bar, and that
// bar's height.
type Waypoint struct {
	Cell   contrib.Cell
	Point  r2.Point
	Height float64
}

// Weights is the scoring table for candidate moves. Keeping the heuristic
// as data lets it be tuned and property-tested apart from the walk loop.
type Weights struct {
	JitterMax       float64 // random additive noise, drawn from [0, JitterMax)
	ZoneWeeks       int     // week indexes below this earn ZoneBonus
	ZoneBonus       float64 // pull toward the most recent weeks
	IntensityBonus  float64 // pull toward cells with bars
	HistoryPenalty  float64 // applied when the cell is still in the ring
	MomentumBonus   float64 // exact repeat of the previous move
	OpenGlideBonus  float64 // momentum across two flat cells in a row
	PartialBonus    float64 // one axis of the move matches the previous move
	BackwardPenalty float64 // applied when the move loses forward progress
	Cutoff          float64 // candidates scoring below this are discarded
	TopK            int     // winner drawn uniformly from the best TopK
}

// DefaultWeights returns the tuning used for rendered charts.
func DefaultWeights() Weights {
	return Weights{
		JitterMax:       5,
		ZoneWeeks:       10,
		ZoneBonus:       15,
		IntensityBonus:  40,
		HistoryPenalty:  -10000,
		MomentumBonus:   25,
		OpenGlideBonus:  15,
		PartialBonus:    8,
		BackwardPenalty: -10000,
		Cutoff:          -1000,
		TopK:            3,
	}
}

// move is a single-step displacement on the grid.
type move struct {
	dw, dd int
}

// neighbors enumerates the 8 grid-adjacent moves, orthogonal and diagonal.
var neighbors = []move{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Walker generates one route. Level reports a cell's intensity (0-4) and
// Height its bar height; both must be total over the grid. The random
// source is injected so a fixed seed reproduces the route exactly.
type Walker struct {
	Grid    iso.Grid
	Level   func(contrib.Cell) int
	Height  func(contrib.Cell) float64
	Weights Weights
	Rand    *rand.Rand

	history []contrib.Cell
	prev    move
	hasPrev bool
}

type candidate struct {
	mv    move
	cell  contrib.Cell
	score float64
}

// Synthesize walks from start for at most steps moves and returns the
// waypoints visited, including the start cell. The walk ends early when no
// candidate clears the score cutoff; a short route is a valid route.
func (w *Walker) Synthesize(start contrib.Cell, steps int) []Waypoint {
	w.history = w.history[:0]
	w.prev = move{}
	w.hasPrev = false

	route := make([]Waypoint, 0, steps+1)
	cur := start
	w.commit(&route, cur)

	for i := 0; i < steps; i++ {
		cands := w.candidates(cur)
		if len(cands) == 0 {
			break // trapped; the shorter route still renders
		}
		sort.SliceStable(cands, func(a, b int) bool {
			return cands[a].score > cands[b].score
		})
		top := w.Weights.TopK
		if top > len(cands) {
			top = len(cands)
		}
		chosen := cands[w.Rand.Intn(top)]

		w.prev = chosen.mv
		w.hasPrev = true
		cur = chosen.cell
		w.commit(&route, cur)
	}
	return route
}

// candidates scores the in-bounds neighbor moves and drops those below
// the cutoff. The history and backward penalties are large enough that
// the cutoff is what actually removes them.
func (w *Walker) candidates(cur contrib.Cell) []candidate {
	curFlat := w.Level(cur) == 0
	cands := make([]candidate, 0, len(neighbors))
	for _, mv := range neighbors {
		cell := contrib.Cell{Week: cur.Week + mv.dw, Dow: cur.Dow + mv.dd}
		if !w.Grid.Contains(cell) {
			continue
		}
		score := w.Rand.Float64() * w.Weights.JitterMax
		if cell.Week < w.Weights.ZoneWeeks {
			score += w.Weights.ZoneBonus
		}
		if w.Level(cell) > 0 {
			score += w.Weights.IntensityBonus
		}
		if w.inHistory(cell) {
			score += w.Weights.HistoryPenalty
		}
		if w.hasPrev {
			if mv == w.prev {
				score += w.Weights.MomentumBonus
				if curFlat && w.Level(cell) == 0 {
					score += w.Weights.OpenGlideBonus
				}
			} else if (mv.dw == w.prev.dw) != (mv.dd == w.prev.dd) {
				score += w.Weights.PartialBonus
			}
		}
		// Forward progress is Δweek − Δdow, which is the projected x axis
		// under the grid transform in package iso. If that transform ever
		// changes, this constraint must be re-derived with it.
		if mv.dw-mv.dd < 0 {
			score += w.Weights.BackwardPenalty
		}
		if score < w.Weights.Cutoff {
			continue
		}
		cands = append(cands, candidate{mv: mv, cell: cell, score: score})
	}
	return cands
}

func (w *Walker) commit(route *[]Waypoint, cell contrib.Cell) {
	if len(w.history) == HistoryCap {
		w.history = w.history[1:]
	}
	w.history = append(w.history, cell)

	h := w.Height(cell)
	*route = append(*route, Waypoint{
		Cell:   cell,
		Point:  iso.Elevate(w.Grid.Project(cell), h),
		Height: h,
	})
}

func (w *Walker) inHistory(cell contrib.Cell) bool {
	for _, c := range w.history {
		if c == cell {
			return true
		}
	}
	return false
}
