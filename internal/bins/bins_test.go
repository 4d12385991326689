package bins

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/timetag/errs"
)

func TestLen(t *testing.T) {
	require.Equal(t, 0, Len(0))
	require.Equal(t, 0, Len(1))
	require.Equal(t, 4, Len(5))
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name  string
		edges []int64
		hist  []int64
		want  error
	}{
		{"valid", []int64{0, 1, 3}, make([]int64, 2), nil},
		{"nil edges", nil, make([]int64, 2), errs.ErrInvalidInput},
		{"nil histogram", []int64{0, 1}, nil, errs.ErrInvalidInput},
		{"single edge", []int64{0}, []int64{}, errs.ErrTooFewBinEdges},
		{"empty edges", []int64{}, []int64{}, errs.ErrTooFewBinEdges},
		{"short histogram", []int64{0, 1, 2}, make([]int64, 1), errs.ErrHistogramLength},
		{"long histogram", []int64{0, 1, 2}, make([]int64, 3), errs.ErrHistogramLength},
		{"repeated edge", []int64{0, 1, 1}, make([]int64, 2), errs.ErrEdgesNotAscending},
		{"descending", []int64{3, 2, 1}, make([]int64, 2), errs.ErrEdgesNotAscending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.edges, tt.hist)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCheck_LengthBeforeOrder(t *testing.T) {
	err := Check([]float64{2, 1, 0}, make([]int64, 5))
	require.ErrorIs(t, err, errs.ErrConfigurationMismatch)
}
