// Package spline turns an ordered waypoint polyline into the smooth cubic
// motion guide the creature is driven along.
package spline

import (
	"fmt"
	"strings"

	"github.com/golang/geo/r2"
)

// MinPoints is the fewest waypoints that can support a smooth curve.
// Shorter routes are rendered without a creature rather than with a
// degenerate one.
const MinPoints = 4

// Control point placement along each axis between consecutive waypoints.
const (
	controlA = 0.4
	controlB = 0.6
)

// Segment is one cubic Bézier piece of the motion guide.
type Segment struct {
	From, Ctrl1, Ctrl2, To r2.Point
}

// Build constructs one cubic segment per consecutive waypoint pair, with
// control points at fixed fractional offsets along each axis. It is a pure
// function: identical input always yields an identical curve. Inputs with
// fewer than MinPoints points return nil.
func Build(points []r2.Point) []Segment {
	if len(points) < MinPoints {
		return nil
	}
	segs := make([]Segment, 0, len(points)-1)
	for i := 0; i < len(points)-1; i++ {
		a, b := points[i], points[i+1]
		segs = append(segs, Segment{
			From:  a,
			Ctrl1: lerp(a, b, controlA),
			Ctrl2: lerp(a, b, controlB),
			To:    b,
		})
	}
	return segs
}

// PathData serializes the curve as SVG path data ("M x,y C ..."), with one
// decimal of precision so output bytes are stable across runs.
func PathData(segs []Segment) string {
	if len(segs) == 0 {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "M %.1f,%.1f", segs[0].From.X, segs[0].From.Y)
	for _, s := range segs {
		fmt.Fprintf(&sb, " C %.1f,%.1f %.1f,%.1f %.1f,%.1f",
			s.Ctrl1.X, s.Ctrl1.Y, s.Ctrl2.X, s.Ctrl2.Y, s.To.X, s.To.Y)
	}
	return sb.String()
}

func lerp(a, b r2.Point, t float64) r2.Point {
	return r2.Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}
