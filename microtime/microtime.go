// Package microtime computes photon arrival times relative to a reference
// pulse train, such as the sync output of a pulsed laser.
//
// The microtime of a photon is its delay after the latest preceding pulse,
// folded onto one sync period. With a sync divider d the recorded pulses
// are every d-th laser pulse, so the fold uses the recorded period divided
// by d.
package microtime

import (
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/timetag/errs"
	"github.com/arloliu/timetag/internal/sorted"
)

// Generate returns the microtime of every photon in data.
//
// Photons recorded before the first or after the last pulse are measured
// against a pulse extrapolated with the rounded average pulse period. The
// extrapolated pulse is computed per photon, so the gap between photons and
// pulses does not affect memory use.
//
// Parameters:
//   - pulses: Reference pulse macrotimes, at least two, ascending
//   - data: Photon macrotimes, ascending
//   - totalSyncDivider: Number of laser pulses per recorded pulse, at least one
//
// Returns:
//   - []int64: Microtimes, one per photon, in [0, period/totalSyncDivider)
//   - error: Validation error
func Generate(pulses, data []int64, totalSyncDivider uint64) ([]int64, error) {
	dst := make([]int64, len(data))
	if err := GenerateInto(dst, pulses, data, totalSyncDivider); err != nil {
		return nil, err
	}

	return dst, nil
}

// GenerateInto is Generate writing into dst, which must have len(data) elements.
func GenerateInto(dst, pulses, data []int64, totalSyncDivider uint64) error {
	if len(pulses) == 0 || len(data) == 0 {
		return fmt.Errorf("%w: pulses and data must not be empty", errs.ErrInvalidInput)
	}

	if len(dst) != len(data) {
		return fmt.Errorf("%w: got %d, want %d", errs.ErrOutputLength, len(dst), len(data))
	}

	avg, err := averagePeriod(pulses, totalSyncDivider)
	if err != nil {
		return err
	}

	period := int64(math.Round(avg))
	if period <= 0 {
		return fmt.Errorf("%w: got %d", errs.ErrInvalidPulsePeriod, period)
	}

	if !slices.IsSorted(pulses) {
		return fmt.Errorf("%w: reference pulses", errs.ErrUnsortedInput)
	}

	if !slices.IsSorted(data) {
		return fmt.Errorf("%w: photon macrotimes", errs.ErrUnsortedInput)
	}

	first, last := pulses[0], pulses[len(pulses)-1]
	step := uint64(period)
	fold := avg / float64(totalSyncDivider)
	cursor := 0

	for i, t := range data {
		var delta uint64

		switch {
		case t < first:
			// Differences are taken in uint64 so that photons far from the
			// pulse train cannot overflow. The extrapolated pulse is
			// first - ceil(d/step)*step, which may lie below math.MinInt64.
			d := uint64(first) - uint64(t)
			k := d / step
			if d%step != 0 {
				k++
			}
			delta = k*step - d
		case t >= last:
			delta = (uint64(t) - uint64(last)) % step
		default:
			found := sorted.UpperBound(pulses, t, cursor)
			if found == 0 {
				return fmt.Errorf("%w: photon %d at %d", errs.ErrNoPrecedingPulse, i, t)
			}
			cursor = found - 1
			delta = uint64(t) - uint64(pulses[cursor])
		}

		dst[i] = int64(math.Mod(float64(delta), fold))
	}

	return nil
}

// PulsePeriod returns the average pulse period divided by the sync divider,
// rounded to the nearest integer.
func PulsePeriod(pulses []int64, totalSyncDivider uint64) (int64, error) {
	if len(pulses) == 0 {
		return 0, fmt.Errorf("%w: pulses must not be empty", errs.ErrInvalidInput)
	}

	avg, err := averagePeriod(pulses, totalSyncDivider)
	if err != nil {
		return 0, err
	}

	return int64(math.Round(avg / float64(totalSyncDivider))), nil
}

func averagePeriod(pulses []int64, totalSyncDivider uint64) (float64, error) {
	if len(pulses) < 2 {
		return 0, fmt.Errorf("%w: got %d", errs.ErrTooFewPulses, len(pulses))
	}

	if totalSyncDivider == 0 {
		return 0, errs.ErrInvalidSyncDivider
	}

	span := float64(pulses[len(pulses)-1]) - float64(pulses[0])

	return span / float64(len(pulses)-1), nil
}
