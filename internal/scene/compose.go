// Package scene assembles the final SVG document: floor tiles, extruded
// bars in painter's order, the animated creature, ornaments, the stats
// panel and the legend. Composition is a pure function; identical inputs
// produce identical bytes.
package scene

import (
	"fmt"
	"strings"

	"github.com/golang/geo/r2"

	"github.com/isowyrm/isowyrm/internal/contrib"
	"github.com/isowyrm/isowyrm/internal/iso"
	"github.com/isowyrm/isowyrm/internal/spline"
	"github.com/isowyrm/isowyrm/internal/stats"
	"github.com/isowyrm/isowyrm/internal/walk"
)

// Canvas is fixed; the grid and panel are laid out inside it.
const (
	CanvasWidth  = 1000
	CanvasHeight = 420
)

// Creature rendering. Segments must stay below walk.HistoryCap so the
// tail never crosses a cell the walker may revisit.
const (
	creatureSegments = 12
	creatureDur      = 14.0 // seconds per full path traversal
	segmentDelay     = 0.18 // path-time spacing between segments
)

// Options carries the labels shown on the stats panel.
type Options struct {
	User   string
	Period string
}

// Compose renders the whole document. The route may be short or empty; a
// route under spline.MinPoints waypoints drops the creature layer and
// nothing else.
func Compose(series contrib.Series, th stats.Thresholds, grid iso.Grid, sum stats.Summary, route []walk.Waypoint, opts Options) []byte {
	var sb strings.Builder

	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		CanvasWidth, CanvasHeight, CanvasWidth, CanvasHeight)
	fmt.Fprintf(&sb, `<rect width="%d" height="%d" fill="%s"/>`, CanvasWidth, CanvasHeight, Backdrop.Hex())

	segs := spline.Build(routePoints(route))
	if segs != nil {
		fmt.Fprintf(&sb, `<defs><path id="trail" d="%s" fill="none"/></defs>`, spline.PathData(segs))
	}

	for i := 0; i < 3; i++ {
		cloud(&sb, i, 120+260*float64(i), 36)
	}

	writeGrid(&sb, series, th, grid)

	if segs != nil {
		writeCreature(&sb)
	}

	lantern(&sb, 0, float64(CanvasWidth)-250, 60)
	lantern(&sb, 1, float64(CanvasWidth)-30, 60)

	writePanel(&sb, sum, opts)
	writeLegend(&sb)

	sb.WriteString(`</svg>`)
	return []byte(sb.String())
}

// writeGrid emits every floor tile, then the bars for active cells. Cells
// are visited in (week asc, dow asc) order, which the projector guarantees
// is back-to-front; each bar paints its shadow face, lit face and top face
// in turn so nearer geometry always lands on top.
func writeGrid(sb *strings.Builder, series contrib.Series, th stats.Thresholds, grid iso.Grid) {
	levels := make(map[contrib.Cell]int, len(series.Days))
	heights := make(map[contrib.Cell]float64, len(series.Days))
	max := series.MaxCount()
	for _, d := range series.Days {
		c := series.CellOf(d.Date)
		levels[c] = stats.Classify(d.Count, th)
		heights[c] = iso.BarHeight(d.Count, max)
	}

	for week := 0; week < grid.Weeks; week++ {
		for dow := 0; dow < contrib.DaysPerWeek; dow++ {
			cell := contrib.Cell{Week: week, Dow: dow}
			p := grid.Project(cell)
			tile(sb, p.X, p.Y, 0, Palette[0], `class="tile"`)
			if levels[cell] > 0 {
				bar(sb, p.X, p.Y, heights[cell], Palette[levels[cell]])
			}
		}
	}
}

// tile draws one floor diamond centered at (x, y-h).
func tile(sb *strings.Builder, x, y, h float64, c RGB, extra string) {
	fmt.Fprintf(sb, `<polygon %s points="%.1f,%.1f %.1f,%.1f %.1f,%.1f %.1f,%.1f" fill="%s"/>`,
		extra,
		x, y-h-iso.StepY,
		x+iso.StepX, y-h,
		x, y-h+iso.StepY,
		x-iso.StepX, y-h,
		c.Hex())
}

// bar extrudes a cell: left (shadow) face, right (lit) face, then the top.
func bar(sb *strings.Builder, x, y, h float64, c RGB) {
	fmt.Fprintf(sb, `<polygon class="bar" points="%.1f,%.1f %.1f,%.1f %.1f,%.1f %.1f,%.1f" fill="%s"/>`,
		x-iso.StepX, y, x, y+iso.StepY, x, y+iso.StepY-h, x-iso.StepX, y-h, Shadow(c).Hex())
	fmt.Fprintf(sb, `<polygon class="bar" points="%.1f,%.1f %.1f,%.1f %.1f,%.1f %.1f,%.1f" fill="%s"/>`,
		x+iso.StepX, y, x, y+iso.StepY, x, y+iso.StepY-h, x+iso.StepX, y-h, Lit(c).Hex())
	tile(sb, x, y, h, Top(c), `class="bar"`)
}

// writeCreature chains tapered segments onto the shared motion path, each
// offset by a negative begin so every segment is already in flight at
// load. Tail segments are emitted first so the head paints above them.
func writeCreature(sb *strings.Builder) {
	sb.WriteString(`<g id="creature">`)
	for i := creatureSegments - 1; i >= 0; i-- {
		frac := float64(i) / float64(creatureSegments-1)
		r := 9.0 - 6.0*frac
		opacity := 1.0 - 0.65*frac
		begin := float64(i)*segmentDelay - creatureDur
		fmt.Fprintf(sb, `<circle r="%.1f" fill="%s" opacity="%.2f">`, r, Creature.Hex(), opacity)
		fmt.Fprintf(sb, `<animateMotion dur="%.1fs" repeatCount="indefinite" begin="%.2fs"><mpath href="#trail"/></animateMotion>`,
			creatureDur, begin)
		sb.WriteString(`</circle>`)
	}
	sb.WriteString(`</g>`)
}

func writePanel(sb *strings.Builder, sum stats.Summary, opts Options) {
	x := float64(CanvasWidth) - 230
	fmt.Fprintf(sb, `<g font-family="monospace" fill="%s">`, Ink.Hex())
	fmt.Fprintf(sb, `<text x="%.0f" y="110" font-size="16" font-weight="bold">@%s</text>`, x, opts.User)
	fmt.Fprintf(sb, `<text x="%.0f" y="128" font-size="11" fill="%s">%s</text>`, x, InkSoft.Hex(), opts.Period)

	lines := []string{
		fmt.Sprintf("contributions  %d", sum.Total),
		fmt.Sprintf("busiest day    %d", sum.Max),
		fmt.Sprintf("daily average  %.3f", sum.Mean),
		fmt.Sprintf("streak         %d", sum.CurrentStreak),
		fmt.Sprintf("best streak    %d", sum.BestStreak),
	}
	for i, line := range lines {
		fmt.Fprintf(sb, `<text x="%.0f" y="%d" font-size="12" xml:space="preserve">%s</text>`, x, 158+20*i, line)
	}
	sb.WriteString(`</g>`)
}

func writeLegend(sb *strings.Builder) {
	x := float64(CanvasWidth) - 230
	y := float64(CanvasHeight) - 40
	fmt.Fprintf(sb, `<g font-family="monospace" font-size="10" fill="%s">`, InkSoft.Hex())
	fmt.Fprintf(sb, `<text x="%.0f" y="%.0f">less</text>`, x, y+4)
	for i, c := range Palette {
		tile(sb, x+42+18*float64(i), y, 0, c, `class="legend"`)
	}
	fmt.Fprintf(sb, `<text x="%.0f" y="%.0f">more</text>`, x+42+18*5+8, y+4)
	sb.WriteString(`</g>`)
}

func routePoints(route []walk.Waypoint) []r2.Point {
	points := make([]r2.Point, len(route))
	for i, wp := range route {
		points[i] = wp.Point
	}
	return points
}
