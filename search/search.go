// Package search provides guided searches over ascending numeric sequences.
//
// The searches answer the same question as a binary search but start from a
// caller supplied or interpolated guess and walk outward from it. For the
// nearly uniform timestamp and bin edge sequences produced by time-tagging
// hardware the guess is usually exact or a few steps away, which makes a
// warm-started scan cheaper than a fresh binary search.
//
// # Sides
//
// Sequential and Interpolated take a Side:
//
//   - Left returns the index of the last element not greater than value. When
//     the sequence holds bin edges this is the index of the bin containing value.
//   - Right returns the Left result plus one.
//
// Both return 0 when value is smaller than every element and len(a) when no
// element is greater than value.
//
// SequentialLowerBound and InterpolatedLowerBound return the first index whose
// element is greater than or equal to value.
//
// The guess never changes a result, only the time needed to find it.
package search

import (
	"fmt"

	"github.com/arloliu/timetag/errs"
	"github.com/arloliu/timetag/internal/sorted"
)

// Number is the set of element types the searches and the algorithms built on
// them accept.
type Number = sorted.Number

// Integer is the subset of Number used by algorithms that require integral lags.
type Integer = sorted.Integer

// Side selects which neighbouring position a search reports.
type Side uint8

const (
	Left  Side = 0 // Left reports the last element not greater than the value.
	Right Side = 1 // Right reports one past Left.
)

func (s Side) String() string {
	switch s {
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// Sequential finds the side-adjusted position of value by scanning outward from guess.
//
// The guess is clamped into [0, len(a)-1]. Cost is proportional to the distance
// between the guess and the answer, so it suits small corrections to an
// already good guess.
//
// Parameters:
//   - a: Ascending sequence, must not be empty
//   - value: Value to locate
//   - guess: Starting index of the scan
//   - side: Left or Right
//
// Returns:
//   - int: Position in [0, len(a)]
//   - error: ErrEmptySequence if a is empty
func Sequential[T Number](a []T, value T, guess int, side Side) (int, error) {
	if len(a) == 0 {
		return 0, fmt.Errorf("%w: sequential search", errs.ErrEmptySequence)
	}

	return sorted.Seek(a, value, guess, int(side)), nil
}

// Interpolated finds the side-adjusted position of value using a linearly
// interpolated starting guess.
//
// Parameters:
//   - a: Ascending sequence, must not be empty
//   - value: Value to locate
//   - side: Left or Right
//
// Returns:
//   - int: Position in [0, len(a)], equal to Sequential for any guess
//   - error: ErrEmptySequence if a is empty
func Interpolated[T Number](a []T, value T, side Side) (int, error) {
	if len(a) == 0 {
		return 0, fmt.Errorf("%w: interpolated search", errs.ErrEmptySequence)
	}

	return sorted.Interpolate(a, value, int(side)), nil
}

// SequentialLowerBound returns the first index i with a[i] >= value, scanning
// outward from guess. It returns len(a) when every element is smaller.
func SequentialLowerBound[T Number](a []T, value T, guess int) (int, error) {
	if len(a) == 0 {
		return 0, fmt.Errorf("%w: sequential lower bound", errs.ErrEmptySequence)
	}

	return sorted.SeekLowerBound(a, value, guess), nil
}

// InterpolatedLowerBound is SequentialLowerBound with an interpolated guess.
func InterpolatedLowerBound[T Number](a []T, value T) (int, error) {
	if len(a) == 0 {
		return 0, fmt.Errorf("%w: interpolated lower bound", errs.ErrEmptySequence)
	}

	return sorted.InterpolateLowerBound(a, value), nil
}
