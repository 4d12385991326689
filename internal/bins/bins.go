// Package bins validates bin edges and the histograms they describe.
package bins

import (
	"fmt"

	"github.com/arloliu/timetag/errs"
	"github.com/arloliu/timetag/internal/sorted"
)

// Len returns the number of bins described by n edges.
func Len(n int) int {
	return max(n-1, 0)
}

// Check validates edges against hist, in the order callers rely on:
// missing inputs, too few edges, histogram length, ascending edges.
func Check[T sorted.Number](edges []T, hist []int64) error {
	if edges == nil {
		return fmt.Errorf("%w: bin edges are nil", errs.ErrInvalidInput)
	}

	if hist == nil {
		return fmt.Errorf("%w: histogram is nil", errs.ErrInvalidInput)
	}

	if len(edges) < 2 {
		return fmt.Errorf("%w: got %d", errs.ErrTooFewBinEdges, len(edges))
	}

	if len(hist) != len(edges)-1 {
		return fmt.Errorf("%w: got %d, want %d", errs.ErrHistogramLength, len(hist), len(edges)-1)
	}

	if !sorted.IsStrictlyAscending(edges) {
		return errs.ErrEdgesNotAscending
	}

	return nil
}
