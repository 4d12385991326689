// Package correlate computes cross-correlation histograms of two photon
// timestamp streams.
//
// For every photon in the left stream, each photon in the right stream that
// arrives within [left+edges[k], left+edges[k+1]) adds one count to bin k.
// Both streams must be sorted ascending. Results are ADDED to the caller's
// histogram, so repeated calls over consecutive chunks of a measurement
// accumulate into one histogram.
//
// Two algorithms are provided:
//
//   - ManyPerBin works for arbitrary ascending edges and integer or floating
//     point timestamps. Its cost grows with the number of edges per left photon
//     and is independent of how many right photons fall into a bin.
//   - UnitBins requires integer timestamps and bins of width one. Its cost grows
//     with the number of right photons inside the lag window.
//
// On unit bins both return identical histograms.
package correlate

import (
	"fmt"

	"github.com/arloliu/timetag/errs"
	"github.com/arloliu/timetag/internal/bins"
	"github.com/arloliu/timetag/internal/pool"
	"github.com/arloliu/timetag/internal/sorted"
	"github.com/arloliu/timetag/search"
)

// HistogramLen returns the histogram length required for nEdges bin edges.
func HistogramLen(nEdges int) int {
	return bins.Len(nEdges)
}

// ManyPerBin adds the correlation of left and right into hist.
//
// For every edge the position of left[i]+edge in right is cached and used as
// the starting guess for left[i+1]; the count of bin k is the distance
// between the cached positions of edges k and k+1.
//
// Parameters:
//   - edges: Strictly ascending lag bin edges, at least two
//   - left: Ascending reference timestamps
//   - right: Ascending timestamps correlated against left
//   - hist: Histogram of length HistogramLen(len(edges)), added to
//
// Returns:
//   - error: Validation error, hist is untouched when non-nil
func ManyPerBin[T search.Number](edges, left, right []T, hist []int64) error {
	if err := bins.Check(edges, hist); err != nil {
		return err
	}

	if len(left) == 0 || len(right) == 0 {
		return nil
	}

	cache, cleanup := pool.GetIntSlice(len(edges))
	defer cleanup()

	for k, e := range edges {
		cache[k] = sorted.InterpolateLowerBound(right, left[0]+e)
	}

	for _, l := range left {
		prev := sorted.SeekLowerBound(right, l+edges[0], cache[0])
		cache[0] = prev

		for k := 1; k < len(edges); k++ {
			found := sorted.SeekLowerBound(right, l+edges[k], cache[k])
			cache[k] = found
			hist[k-1] += int64(found - prev)
			prev = found
		}
	}

	return nil
}

// UnitBins adds the correlation of left and right into hist for unit-width bins.
//
// A cursor into right only moves forward: right photons earlier than the
// window of the current left photon are earlier than every later window too.
//
// Returns ErrBinsNotUnitSized if any two consecutive edges differ by other
// than one, in addition to the validation errors of ManyPerBin.
func UnitBins[T search.Integer](edges, left, right []T, hist []int64) error {
	if err := bins.Check(edges, hist); err != nil {
		return err
	}

	for i := 1; i < len(edges); i++ {
		if edges[i]-edges[i-1] != 1 {
			return fmt.Errorf("%w: edges %d and %d", errs.ErrBinsNotUnitSized, i-1, i)
		}
	}

	if len(left) == 0 || len(right) == 0 {
		return nil
	}

	first := int64(edges[0])
	nBins := int64(len(hist))
	next := 0

	for _, l := range left {
		origin := int64(l) + first

		for j := next; j < len(right); j++ {
			lag := int64(right[j]) - origin
			if lag < 0 {
				next = j + 1
				continue
			}

			if lag >= nBins {
				break
			}

			hist[lag]++
		}
	}

	return nil
}
