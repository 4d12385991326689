package correlate

import (
	"fmt"

	"github.com/arloliu/timetag/errs"
	"github.com/arloliu/timetag/search"
)

// Normalize converts a correlation histogram into the normalized g2 estimate.
//
// Each bin is divided by the count expected from two uncorrelated streams of
// nLeft and nRight photons observed over [tMin, tMax]. That expectation is the
// overlap volume of bin i,
//
//	A_i = (e[i+1]-e[i]) * (tMax - tMin + 0.5 - 0.5*(e[i]+e[i+1]))
//
// times nLeft*nRight/(tMax-tMin)^2. Bins whose expectation is zero are set
// to zero.
//
// Returns ErrInvalidWindow if tMax == tMin. A reversed window is accepted and
// evaluated with the same formula; the squared window keeps mult positive.
func Normalize[T search.Number](hist []int64, edges []T, tMin, tMax T, nLeft, nRight uint64) ([]float64, error) {
	if hist == nil {
		return nil, fmt.Errorf("%w: histogram is nil", errs.ErrInvalidInput)
	}

	dst := make([]float64, len(hist))
	if err := NormalizeInto(dst, hist, edges, tMin, tMax, nLeft, nRight); err != nil {
		return nil, err
	}

	return dst, nil
}

// NormalizeInto is Normalize writing into dst, which must have len(hist) elements.
func NormalizeInto[T search.Number](dst []float64, hist []int64, edges []T, tMin, tMax T, nLeft, nRight uint64) error {
	if hist == nil {
		return fmt.Errorf("%w: histogram is nil", errs.ErrInvalidInput)
	}

	if edges == nil {
		return fmt.Errorf("%w: bin edges are nil", errs.ErrInvalidInput)
	}

	if len(edges) < 2 {
		return fmt.Errorf("%w: got %d", errs.ErrTooFewBinEdges, len(edges))
	}

	if len(hist) != len(edges)-1 {
		return fmt.Errorf("%w: got %d, want %d", errs.ErrHistogramLength, len(hist), len(edges)-1)
	}

	if len(dst) != len(hist) {
		return fmt.Errorf("%w: got %d, want %d", errs.ErrOutputLength, len(dst), len(hist))
	}

	if tMax == tMin {
		return fmt.Errorf("%w: [%v, %v]", errs.ErrInvalidWindow, tMin, tMax)
	}

	// computed in float64 so extreme integer bounds cannot overflow
	window := float64(tMax) - float64(tMin)
	mult := float64(nLeft) * float64(nRight) / (window * window)

	for i, count := range hist {
		lo, hi := float64(edges[i]), float64(edges[i+1])
		area := (hi - lo) * (window + 0.5 - 0.5*(lo+hi))

		divider := area * mult
		if divider == 0 {
			dst[i] = 0
			continue
		}

		dst[i] = float64(count) / divider
	}

	return nil
}
