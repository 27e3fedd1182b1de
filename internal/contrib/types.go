package contrib

import "time"

// DaysPerWeek is the number of rows in the contribution calendar.
const DaysPerWeek = 7

// Lookback windows selectable at invocation time, in days.
const (
	LookbackHalfYear = 180
	LookbackFullYear = 365
)

// Day is one calendar date paired with a non-negative contribution count.
type Day struct {
	Date  time.Time
	Count int
}

// Cell is a position in the contribution grid. Week 0 is the most recent
// week, increasing toward the past; Dow is 0 (Sunday) through 6 (Saturday).
type Cell struct {
	Week, Dow int
}

// Series is a contiguous, ascending run of days covering an inclusive
// window whose start is aligned to a Sunday. It is built once at ingestion
// and never mutated.
type Series struct {
	Start time.Time
	End   time.Time
	Days  []Day
}

// Window returns the inclusive date window for the given end date and
// lookback. The start is moved back to the Sunday on or before
// end − lookback so the grid always begins on a full week.
func Window(end time.Time, lookbackDays int) (time.Time, time.Time) {
	end = midnight(end)
	start := end.AddDate(0, 0, -lookbackDays)
	start = start.AddDate(0, 0, -int(start.Weekday()))
	return start, end
}

// BuildSeries materializes the window as a day series. Dates absent from
// counts default to zero. Keys use the YYYY-MM-DD form.
func BuildSeries(start, end time.Time, counts map[string]int) Series {
	s := Series{Start: midnight(start), End: midnight(end)}
	for d := s.Start; !d.After(s.End); d = d.AddDate(0, 0, 1) {
		s.Days = append(s.Days, Day{Date: d, Count: counts[d.Format("2006-01-02")]})
	}
	return s
}

// Weeks returns the number of week columns spanned by the series.
func (s Series) Weeks() int {
	return daysBetween(s.Start, s.End)/DaysPerWeek + 1
}

// CellOf maps a date inside the window to its grid cell.
func (s Series) CellOf(date time.Time) Cell {
	offset := daysBetween(s.Start, midnight(date))
	return Cell{
		Week: s.Weeks() - 1 - offset/DaysPerWeek,
		Dow:  offset % DaysPerWeek,
	}
}

// Counts returns the raw count sequence in date order.
func (s Series) Counts() []int {
	counts := make([]int, len(s.Days))
	for i, d := range s.Days {
		counts[i] = d.Count
	}
	return counts
}

// MaxCount returns the largest single-day count in the series.
func (s Series) MaxCount() int {
	max := 0
	for _, d := range s.Days {
		if d.Count > max {
			max = d.Count
		}
	}
	return max
}

// CountMap returns the series as a date→count map, the shape stored in
// the fetch cache. Round-trips with BuildSeries.
func (s Series) CountMap() map[string]int {
	counts := make(map[string]int, len(s.Days))
	for _, d := range s.Days {
		counts[d.Date.Format("2006-01-02")] = d.Count
	}
	return counts
}

func midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
