package sstt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/timetag/errs"
)

func TestSplitHeader(t *testing.T) {
	records := PhotonRecord(7).AppendTo(littleEndian, nil)
	data := append(AppendHeader(nil), records...)

	require.True(t, HasHeader(data))
	require.Len(t, data, HeaderSize+RecordSize)

	rest, err := SplitHeader(data)
	require.NoError(t, err)
	require.Equal(t, records, rest)
}

func TestSplitHeader_InvalidMagic(t *testing.T) {
	_, err := SplitHeader([]byte("SSTT1\x00 and some more bytes"))
	require.ErrorIs(t, err, errs.ErrInvalidMagic)
	require.ErrorIs(t, err, errs.ErrInvalidInput)

	_, err = SplitHeader(nil)
	require.ErrorIs(t, err, errs.ErrInvalidMagic)

	// magic present but header incomplete
	require.False(t, HasHeader([]byte(Magic)))
}
