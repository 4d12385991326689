package correlate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/timetag/errs"
)

func TestNormalize(t *testing.T) {
	edges := []int64{0, 1, 3}
	hist := []int64{10, 40}

	got, err := Normalize(hist, edges, 0, 100, 50, 20)
	require.NoError(t, err)

	mult := 50.0 * 20.0 / (100.0 * 100.0)
	a0 := 1.0 * (100 + 0.5 - 0.5*1)
	a1 := 2.0 * (100 + 0.5 - 0.5*4)
	require.InDelta(t, 10/(a0*mult), got[0], 1e-12)
	require.InDelta(t, 40/(a1*mult), got[1], 1e-12)
}

func TestNormalize_FloatEdges(t *testing.T) {
	ints, err := Normalize([]int64{3, 4}, []int64{-2, 0, 5}, 10, 1010, 7, 9)
	require.NoError(t, err)

	floats, err := Normalize([]int64{3, 4}, []float64{-2, 0, 5}, 10, 1010, 7, 9)
	require.NoError(t, err)

	require.InDeltaSlice(t, ints, floats, 1e-12)
}

func TestNormalize_ZeroVolume(t *testing.T) {
	// lo+hi == 2*window+1 makes the overlap volume vanish
	got, err := Normalize([]int64{5, 5}, []int64{0, 10, 11}, 0, 10, 3, 3)
	require.NoError(t, err)
	require.NotZero(t, got[0])
	require.Zero(t, got[1])

	got, err = Normalize([]int64{5, 5}, []int64{0, 1, 2}, 0, 10, 0, 3)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0}, got)
}

func TestNormalizeInto(t *testing.T) {
	dst := []float64{9, 9}
	require.NoError(t, NormalizeInto(dst, []int64{0, 2}, []int64{0, 1, 2}, 0, 4, 2, 2))
	require.Zero(t, dst[0])
	require.Greater(t, dst[1], 0.0)

	err := NormalizeInto(make([]float64, 3), []int64{0, 2}, []int64{0, 1, 2}, 0, 4, 2, 2)
	require.ErrorIs(t, err, errs.ErrOutputLength)
	require.ErrorIs(t, err, errs.ErrConfigurationMismatch)
}

func TestNormalize_Validation(t *testing.T) {
	_, err := Normalize(nil, []int64{0, 1}, 0, 1, 1, 1)
	require.ErrorIs(t, err, errs.ErrInvalidInput)

	_, err = Normalize[int64]([]int64{1}, nil, 0, 1, 1, 1)
	require.ErrorIs(t, err, errs.ErrInvalidInput)

	_, err = Normalize([]int64{}, []int64{0}, 0, 1, 1, 1)
	require.ErrorIs(t, err, errs.ErrTooFewBinEdges)

	_, err = Normalize([]int64{1, 2}, []int64{0, 1}, 0, 1, 1, 1)
	require.ErrorIs(t, err, errs.ErrHistogramLength)

	_, err = Normalize([]int64{1}, []int64{0, 1}, 5, 5, 1, 1)
	require.ErrorIs(t, err, errs.ErrInvalidWindow)
	require.ErrorIs(t, err, errs.ErrConstraintViolation)

	_, err = Normalize([]int64{1}, []float64{0.5, 1}, 0.5, 0.5, 1, 1)
	require.ErrorIs(t, err, errs.ErrInvalidWindow)
}

func TestNormalize_ReversedWindow(t *testing.T) {
	// window -10: mult = 2*2/100, area = 1*(-10+0.5-0.5) = -10
	got, err := Normalize([]int64{4}, []int64{0, 1}, 10, 0, 2, 2)
	require.NoError(t, err)
	require.InDelta(t, -10.0, got[0], 1e-9)
}

func TestNormalize_FullInt64Window(t *testing.T) {
	window := float64(math.MaxInt64) - float64(math.MinInt64)

	got, err := Normalize([]int64{1}, []int64{0, 1}, math.MinInt64, math.MaxInt64, 1, 1)
	require.NoError(t, err)
	require.InEpsilon(t, window, got[0], 1e-9)
}
