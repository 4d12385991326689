// Package histogram bins timestamps into histograms and reshapes histograms.
//
// Like package correlate, binning ADDS counts to a caller supplied histogram
// whose length must be HistogramLen of the edges. Every function that writes
// into a caller supplied buffer has a matching length helper and validates
// the buffer against it before writing.
package histogram

import (
	"github.com/arloliu/timetag/internal/bins"
	"github.com/arloliu/timetag/internal/sorted"
	"github.com/arloliu/timetag/search"
)

// HistogramLen returns the histogram length required for nEdges bin edges.
func HistogramLen(nEdges int) int {
	return bins.Len(nEdges)
}

// BinData adds one count per datum to the bin [edges[i], edges[i+1]) containing it.
//
// Data outside [edges[0], edges[last]) is ignored. Data does not need to be
// sorted, but the bin lookup is fastest for nearly uniform edges.
//
// Parameters:
//   - edges: Strictly ascending bin edges, at least two
//   - data: Values to bin
//   - hist: Histogram of length HistogramLen(len(edges)), added to
//
// Returns:
//   - error: Validation error, hist is untouched when non-nil
func BinData[T search.Number](edges, data []T, hist []int64) error {
	if err := bins.Check(edges, hist); err != nil {
		return err
	}

	lo, hi := edges[0], edges[len(edges)-1]
	for _, d := range data {
		if d < lo || d > hi {
			continue
		}

		i := sorted.Interpolate(edges, d, int(search.Left))
		if i >= len(hist) {
			continue
		}
		hist[i]++
	}

	return nil
}
