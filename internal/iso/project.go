// Package iso projects contribution-grid coordinates into screen space as
// a 2:1 isometric view and extrudes cells into bars.
package iso

import (
	"github.com/golang/geo/r2"

	"github.com/isowyrm/isowyrm/internal/contrib"
)

// Cell spacing and extrusion constants. StepX/StepY are the half-width and
// half-height of one floor tile; MaxBarHeight caps the extrusion of the
// busiest day.
const (
	StepX        = 9.0
	StepY        = 5.0
	MaxBarHeight = 60.0
)

// Grid is the fixed affine transform from (week, dayOfWeek) to screen
// space. Week grows toward +x, day-of-week toward −x; both grow toward +y,
// so screen depth increases with week+dow and painting cells in
// (week asc, dow asc) order is a valid back-to-front order.
type Grid struct {
	Weeks   int
	OriginX float64
	OriginY float64
}

// NewGrid positions a grid of the given width so every projected tile has
// positive coordinates under the default margins.
func NewGrid(weeks int) Grid {
	return Grid{
		Weeks: weeks,
		// Leftmost x is reached at week 0, dow 6.
		OriginX: StepX*float64(contrib.DaysPerWeek) + 24,
		OriginY: MaxBarHeight + 40,
	}
}

// Project maps a grid cell to the screen-space center of its floor tile.
// Monotone in each axis independently: x strictly increases with week and
// strictly decreases with dow; y strictly increases with both.
func (g Grid) Project(c contrib.Cell) r2.Point {
	return r2.Point{
		X: g.OriginX + float64(c.Week)*StepX - float64(c.Dow)*StepX,
		Y: g.OriginY + float64(c.Week)*StepY + float64(c.Dow)*StepY,
	}
}

// Contains reports whether the cell lies inside the grid.
func (g Grid) Contains(c contrib.Cell) bool {
	return c.Week >= 0 && c.Week < g.Weeks && c.Dow >= 0 && c.Dow < contrib.DaysPerWeek
}

// Width returns the pixel width spanned by the projected grid plus margins.
func (g Grid) Width() float64 {
	return g.OriginX + float64(g.Weeks)*StepX + 24
}

// BarHeight returns the extrusion height for a day's count, proportional
// to count/globalMax. A non-positive count or empty series is flat.
func BarHeight(count, globalMax int) float64 {
	if count <= 0 || globalMax <= 0 {
		return 0
	}
	return MaxBarHeight * float64(count) / float64(globalMax)
}

// Elevate shifts a projected point upward by the given bar height.
func Elevate(p r2.Point, height float64) r2.Point {
	return r2.Point{X: p.X, Y: p.Y - height}
}
