package histogram

import (
	"fmt"
	"math"

	"github.com/arloliu/timetag/errs"
)

// LinspaceMode selects where an integer grid stops.
type LinspaceMode uint8

const (
	// RightExclusive stops before stop.
	RightExclusive LinspaceMode = iota
	// RightInclusive includes stop when it lies on the grid.
	RightInclusive
	// CoverStop extends the grid until it reaches or passes stop, so the last
	// bin of the grid contains stop.
	CoverStop
)

func (m LinspaceMode) String() string {
	switch m {
	case RightExclusive:
		return "RightExclusive"
	case RightInclusive:
		return "RightInclusive"
	case CoverStop:
		return "CoverStop"
	default:
		return "Unknown"
	}
}

// LinspaceLen returns the number of points Linspace produces.
//
// A zero step yields an empty grid. Returns ErrInvalidRange if start > stop,
// step < 0, or start == stop with a step other than one.
func LinspaceLen(start, stop, step int64, mode LinspaceMode) (int, error) {
	switch {
	case start > stop:
		return 0, fmt.Errorf("%w: start %d after stop %d", errs.ErrInvalidRange, start, stop)
	case start == stop && step != 1:
		return 0, fmt.Errorf("%w: empty range needs step 1, got %d", errs.ErrInvalidRange, step)
	case step < 0:
		return 0, fmt.Errorf("%w: negative step %d", errs.ErrInvalidRange, step)
	case step == 0:
		return 0, nil
	}

	span := stop - start

	switch mode {
	case RightInclusive:
		return int(span/step) + 1, nil
	case CoverStop:
		n := int(span/step) + 1
		if span%step != 0 {
			n++
		}

		return n, nil
	default:
		return int((span-1)/step) + 1, nil
	}
}

// Linspace returns the integer grid start, start+step, ... described by LinspaceLen.
//
// Example:
//
//	edges, _ := histogram.Linspace(-1000, 1000, 10, histogram.RightInclusive)
//	hist := make([]int64, histogram.HistogramLen(len(edges)))
func Linspace(start, stop, step int64, mode LinspaceMode) ([]int64, error) {
	n, err := LinspaceLen(start, stop, step, mode)
	if err != nil {
		return nil, err
	}

	grid := make([]int64, n)
	for i := range grid {
		grid[i] = start + int64(i)*step
	}

	return grid, nil
}

// Logspace returns num points starting at base^start, each base^((stop-start)/num)
// times the previous one. The last point is one ratio short of base^stop,
// which makes the points usable as the left edges of logarithmic bins.
func Logspace(start, stop float64, num int, base float64) []float64 {
	if num <= 0 {
		return []float64{}
	}

	ratio := math.Pow(base, (stop-start)/float64(num))
	points := make([]float64, num)

	cur := math.Pow(base, start)
	for i := range points {
		points[i] = cur
		cur *= ratio
	}

	return points
}
