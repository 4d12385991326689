package histogram

import (
	"fmt"

	"github.com/arloliu/timetag/errs"
	"github.com/arloliu/timetag/search"
)

// RebinLen returns the number of bins left after merging groups of size bins.
// A trailing partial group is dropped. It returns 0 for size < 1.
func RebinLen(n, size int) int {
	if size < 1 || n < 0 {
		return 0
	}

	return (n - n%size) / size
}

// Rebin adds the sum of every complete group of size bins of data into out.
//
// With size 1 out becomes a copy of data. A trailing partial group is dropped,
// so for non-negative counts the total in out never exceeds the total in
// data and equals it when len(data) is a multiple of size.
//
// Returns ErrInvalidBinSize if size < 1 and ErrOutputLength if
// len(out) != RebinLen(len(data), size).
func Rebin(data []int64, size int, out []int64) error {
	if size < 1 {
		return fmt.Errorf("%w: got %d", errs.ErrInvalidBinSize, size)
	}

	if want := RebinLen(len(data), size); len(out) != want {
		return fmt.Errorf("%w: got %d, want %d", errs.ErrOutputLength, len(out), want)
	}

	if size == 1 {
		copy(out, data)
		return nil
	}

	for i := range out {
		var sum int64
		for _, v := range data[i*size : (i+1)*size] {
			sum += v
		}
		out[i] += sum
	}

	return nil
}

// Rebinned returns data merged in groups of size bins.
func Rebinned(data []int64, size int) ([]int64, error) {
	out := make([]int64, RebinLen(len(data), size))
	if err := Rebin(data, size, out); err != nil {
		return nil, err
	}

	return out, nil
}

// RebinEdgesLen returns the number of edges that describe the bins of
// Rebin(data, size) when data was binned with n edges. It returns 0 for
// n < 1 or size < 1.
func RebinEdgesLen(n, size int) int {
	if n < 1 || size < 1 {
		return 0
	}

	return (n-1-(n-1)%size)/size + 1
}

// RebinEdges keeps every size-th edge, starting with the first, in out.
func RebinEdges[T search.Number](edges []T, size int, out []T) error {
	if edges == nil || out == nil {
		return fmt.Errorf("%w: bin edges are nil", errs.ErrInvalidInput)
	}

	if size < 1 {
		return fmt.Errorf("%w: got %d", errs.ErrInvalidBinSize, size)
	}

	if len(edges) < 2 {
		return fmt.Errorf("%w: got %d", errs.ErrTooFewBinEdges, len(edges))
	}

	if want := RebinEdgesLen(len(edges), size); len(out) != want {
		return fmt.Errorf("%w: got %d, want %d", errs.ErrOutputLength, len(out), want)
	}

	for i := range out {
		out[i] = edges[i*size]
	}

	return nil
}

// RebinnedEdges returns every size-th edge of edges.
func RebinnedEdges[T search.Number](edges []T, size int) ([]T, error) {
	out := make([]T, RebinEdgesLen(len(edges), size))
	if err := RebinEdges(edges, size, out); err != nil {
		return nil, err
	}

	return out, nil
}
