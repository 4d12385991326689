package sstt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/timetag/endian"
)

func TestRecord_Fields(t *testing.T) {
	le := endian.GetLittleEndianEngine()

	// 5<<2 | 00
	r := ParseRecord(le, []byte{0x14, 0, 0, 0, 0, 0})
	require.Equal(t, SignalPhoton, r.Signal())
	require.Equal(t, uint64(5), r.Payload())

	// 1<<2 | 01
	r = ParseRecord(le, []byte{0x05, 0, 0, 0, 0, 0})
	require.Equal(t, SignalOverflow, r.Signal())
	require.Equal(t, uint64(1), r.Payload())

	r = ParseRecord(le, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff})
	require.Equal(t, Signal(0b11), r.Signal())
	require.Equal(t, PayloadMask, r.Payload())
}

func TestRecord_AppendTo(t *testing.T) {
	for _, engine := range []endian.EndianEngine{endian.GetLittleEndianEngine(), endian.GetBigEndianEngine()} {
		r := NewRecord(SignalOverflow, 0x2a_1234_5678)
		b := r.AppendTo(engine, nil)
		require.Len(t, b, RecordSize)
		require.Equal(t, r, ParseRecord(engine, b))
	}

	require.Equal(t, []byte{0x14, 0, 0, 0, 0, 0}, PhotonRecord(5).AppendTo(endian.GetLittleEndianEngine(), nil))
}

func TestNewRecord_TruncatesPayload(t *testing.T) {
	r := PhotonRecord(OverflowValue + 3)
	require.Equal(t, uint64(3), r.Payload())
	require.Equal(t, SignalPhoton, r.Signal())
}

func TestDecodeRecord(t *testing.T) {
	ev, n := DecodeRecord(PhotonRecord(10), 2)
	require.Equal(t, KindPhoton, ev.Kind)
	require.Equal(t, 10+2*OverflowValue, ev.Macrotime)
	require.Equal(t, uint64(2), n)

	ev, n = DecodeRecord(OverflowRecord(3), 2)
	require.Equal(t, KindOverflow, ev.Kind)
	require.Equal(t, uint64(3), ev.Overflows)
	require.Equal(t, uint64(5), n)

	ev, n = DecodeRecord(NewRecord(Signal(0b10), 99), 2)
	require.Equal(t, KindUnknown, ev.Kind)
	require.Equal(t, Signal(0b10), ev.Signal)
	require.Equal(t, uint64(2), n)
}

func TestSignal_String(t *testing.T) {
	require.Equal(t, "Photon", SignalPhoton.String())
	require.Equal(t, "Overflow", SignalOverflow.String())
	require.Equal(t, "Unknown", Signal(3).String())
	require.Equal(t, "Unknown", KindUnknown.String())
	require.Equal(t, "Overflow", KindOverflow.String())
}
