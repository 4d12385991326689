package histogram

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/timetag/errs"
)

func sum(a []int64) int64 {
	var s int64
	for _, v := range a {
		s += v
	}

	return s
}

func TestRebin(t *testing.T) {
	data := []int64{1, 2, 3, 4, 5, 6, 7}

	got, err := Rebinned(data, 2)
	require.NoError(t, err)
	require.Equal(t, []int64{3, 7, 11}, got)

	got, err = Rebinned(data, 3)
	require.NoError(t, err)
	require.Equal(t, []int64{6, 15}, got)

	got, err = Rebinned(data, 8)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestRebin_Adds(t *testing.T) {
	out := []int64{100, 100}
	require.NoError(t, Rebin([]int64{1, 2, 3, 4}, 2, out))
	require.Equal(t, []int64{103, 107}, out)

	// size one copies
	out = []int64{100, 100}
	require.NoError(t, Rebin([]int64{1, 2}, 1, out))
	require.Equal(t, []int64{1, 2}, out)
}

func TestRebin_Properties(t *testing.T) {
	rng := rand.New(rand.NewPCG(4, 4))

	for range 100 {
		data := make([]int64, rng.IntN(50))
		for i := range data {
			data[i] = rng.Int64N(1000)
		}

		same, err := Rebinned(data, 1)
		require.NoError(t, err)
		require.Equal(t, len(data), len(same))
		if len(data) > 0 {
			require.Equal(t, data, same)
		}

		size := 1 + rng.IntN(8)
		got, err := Rebinned(data, size)
		require.NoError(t, err)
		require.Len(t, got, RebinLen(len(data), size))
		require.LessOrEqual(t, sum(got), sum(data))

		if len(data)%size == 0 {
			require.Equal(t, sum(data), sum(got))
		}
	}
}

func TestRebin_Validation(t *testing.T) {
	err := Rebin([]int64{1, 2}, 0, []int64{})
	require.ErrorIs(t, err, errs.ErrInvalidBinSize)
	require.ErrorIs(t, err, errs.ErrConstraintViolation)

	err = Rebin([]int64{1, 2, 3}, 2, []int64{0, 0})
	require.ErrorIs(t, err, errs.ErrOutputLength)
	require.ErrorIs(t, err, errs.ErrConfigurationMismatch)

	_, err = Rebinned([]int64{1}, -1)
	require.ErrorIs(t, err, errs.ErrInvalidBinSize)
}

func TestRebinLen(t *testing.T) {
	require.Equal(t, 3, RebinLen(7, 2))
	require.Equal(t, 7, RebinLen(7, 1))
	require.Equal(t, 0, RebinLen(7, 8))
	require.Equal(t, 0, RebinLen(7, 0))
}

func TestRebinEdges(t *testing.T) {
	edges := []int64{0, 1, 2, 3, 4, 5, 6, 7}

	got, err := RebinnedEdges(edges, 2)
	require.NoError(t, err)
	require.Equal(t, []int64{0, 2, 4, 6}, got)

	// the rebinned edges describe the rebinned histogram
	hist, err := Rebinned(make([]int64, len(edges)-1), 2)
	require.NoError(t, err)
	require.Len(t, got, len(hist)+1)

	floats, err := RebinnedEdges([]float64{0, 0.5, 1, 1.5, 2}, 4)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 2}, floats)
}

func TestRebinEdges_Validation(t *testing.T) {
	require.ErrorIs(t, RebinEdges[int64](nil, 2, []int64{0}), errs.ErrInvalidInput)
	require.ErrorIs(t, RebinEdges([]int64{0, 1}, 0, []int64{0}), errs.ErrInvalidBinSize)
	require.ErrorIs(t, RebinEdges([]int64{0}, 1, []int64{0}), errs.ErrTooFewBinEdges)
	require.ErrorIs(t, RebinEdges([]int64{0, 1, 2}, 1, []int64{0, 0}), errs.ErrOutputLength)
}

func TestRebinEdgesLen(t *testing.T) {
	require.Equal(t, 4, RebinEdgesLen(8, 2))
	require.Equal(t, 3, RebinEdgesLen(7, 3))
	require.Equal(t, 3, RebinEdgesLen(8, 3))
	require.Equal(t, 0, RebinEdgesLen(0, 3))
	require.Equal(t, 0, RebinEdgesLen(8, 0))
}
