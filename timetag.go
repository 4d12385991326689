// Package timetag processes photon arrival timestamps recorded by
// time-correlated single photon counting hardware.
//
// # Core Features
//
//   - Decoding of SSTT v2 event record streams with 46-bit overflow correction
//   - Cross-correlation histograms of two timestamp streams
//   - Histogram binning, rebinning and g2 normalization
//   - Microtimes relative to a reference pulse train
//   - Resumable decoding of growing files through checkpoints
//   - Optional compression of stored record payloads (Zstd, S2, LZ4)
//
// # Basic Usage
//
// Decoding two channels and correlating them:
//
//	import "github.com/arloliu/timetag"
//
//	left, _, err := timetag.DecodeMacrotimes(channel0)
//	right, _, err := timetag.DecodeMacrotimes(channel1)
//
//	edges, _ := histogram.Linspace(-1000, 1000, 1, histogram.RightInclusive)
//	hist, err := timetag.Correlate(timetag.UnitBins, edges, left, right)
//
// Normalizing against the expectation for uncorrelated light:
//
//	g2, err := timetag.CorrelateNormalized(timetag.ManyPerBin, edges, left, right, tMin, tMax)
//
// # Package Structure
//
// This package wraps the most common calls of the sstt, correlate and
// histogram packages. Use those packages directly for generic element types,
// accumulation into existing histograms and fine-grained decoder control.
package timetag

import (
	"fmt"

	"github.com/arloliu/timetag/correlate"
	"github.com/arloliu/timetag/sstt"
)

// Algorithm selects a correlation algorithm.
type Algorithm uint8

const (
	// ManyPerBin handles arbitrary ascending bin edges.
	ManyPerBin Algorithm = iota
	// UnitBins requires bins of width one and is faster for sparse windows.
	UnitBins
)

func (a Algorithm) String() string {
	switch a {
	case ManyPerBin:
		return "ManyPerBin"
	case UnitBins:
		return "UnitBins"
	default:
		return "Unknown"
	}
}

// DecodeMacrotimes decodes a complete SSTT v2 channel payload.
//
// A leading file header is detected and skipped. Options are passed to
// sstt.NewDecoder.
//
// Example:
//
//	times, state, err := timetag.DecodeMacrotimes(raw, sstt.WithCompression(format.CompressionZstd))
func DecodeMacrotimes(data []byte, opts ...sstt.DecoderOption) ([]int64, sstt.State, error) {
	if sstt.HasHeader(data) {
		data = data[sstt.HeaderSize:]
	}

	dec, err := sstt.NewDecoder(opts...)
	if err != nil {
		return nil, sstt.State{}, err
	}

	return dec.Decode(data)
}

// Correlate returns the correlation histogram of left and right over edges.
func Correlate(alg Algorithm, edges, left, right []int64) ([]int64, error) {
	hist := make([]int64, correlate.HistogramLen(len(edges)))

	var err error
	switch alg {
	case ManyPerBin:
		err = correlate.ManyPerBin(edges, left, right, hist)
	case UnitBins:
		err = correlate.UnitBins(edges, left, right, hist)
	default:
		err = fmt.Errorf("unsupported correlation algorithm: %s", alg)
	}

	if err != nil {
		return nil, err
	}

	return hist, nil
}

// CorrelateNormalized correlates left and right and normalizes the histogram
// for streams observed over [tMin, tMax].
func CorrelateNormalized(alg Algorithm, edges, left, right []int64, tMin, tMax int64) ([]float64, error) {
	hist, err := Correlate(alg, edges, left, right)
	if err != nil {
		return nil, err
	}

	return correlate.Normalize(hist, edges, tMin, tMax, uint64(len(left)), uint64(len(right)))
}
