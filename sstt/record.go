package sstt

import (
	"math"

	"github.com/arloliu/timetag/endian"
)

// Record layout constants.
const (
	RecordSize    = 6                         // bytes per record
	SignalBits    = 2                         // low bits holding the signal
	PayloadBits   = RecordSize*8 - SignalBits // 46
	SignalMask    = uint64(1)<<SignalBits - 1
	PayloadMask   = uint64(1)<<PayloadBits - 1
	OverflowValue = uint64(1) << PayloadBits // macrotime units per overflow

	// MaxOverflows is the overflow count from which photon macrotimes no
	// longer fit in an int64.
	MaxOverflows = uint64(1) << (63 - PayloadBits)
)

// Signal is the 2-bit record type field.
type Signal uint8

const (
	SignalPhoton   Signal = 0b00
	SignalOverflow Signal = 0b01
)

func (s Signal) String() string {
	switch s {
	case SignalPhoton:
		return "Photon"
	case SignalOverflow:
		return "Overflow"
	default:
		return "Unknown"
	}
}

// Record is one raw 48-bit event word.
type Record uint64

// NewRecord packs a signal and a payload. Bits beyond their fields are dropped.
func NewRecord(signal Signal, payload uint64) Record {
	return Record((payload&PayloadMask)<<SignalBits | uint64(signal)&SignalMask)
}

// PhotonRecord returns a photon record carrying the low 46 bits of macrotime.
func PhotonRecord(macrotime uint64) Record {
	return NewRecord(SignalPhoton, macrotime)
}

// OverflowRecord returns an overflow record announcing count overflows.
func OverflowRecord(count uint64) Record {
	return NewRecord(SignalOverflow, count)
}

// ParseRecord reads a record from the first RecordSize bytes of b.
func ParseRecord(engine endian.EndianEngine, b []byte) Record {
	return Record(endian.Uint48(engine, b))
}

// Signal returns the record type field.
func (r Record) Signal() Signal {
	return Signal(uint64(r) & SignalMask)
}

// Payload returns the 46-bit payload.
func (r Record) Payload() uint64 {
	return (uint64(r) >> SignalBits) & PayloadMask
}

// AppendTo appends the 6-byte encoding of r.
func (r Record) AppendTo(engine endian.EndianEngine, b []byte) []byte {
	return endian.AppendUint48(engine, b, uint64(r))
}

// EventKind tags a decoded Event.
type EventKind uint8

const (
	KindPhoton EventKind = iota
	KindOverflow
	KindUnknown
)

func (k EventKind) String() string {
	switch k {
	case KindPhoton:
		return "Photon"
	case KindOverflow:
		return "Overflow"
	default:
		return "Unknown"
	}
}

// Event is one decoded record.
type Event struct {
	// Macrotime is the overflow corrected arrival time. Set for KindPhoton.
	Macrotime uint64

	// Overflows is the overflow count carried by the record. Set for KindOverflow.
	Overflows uint64

	// Index is the position of the record in the stream, counting skipped records.
	Index uint64

	Kind EventKind

	// Signal is the raw signal field, useful to diagnose KindUnknown records.
	Signal Signal
}

// DecodeRecord decodes r given the overflows seen before it and returns the
// event together with the overflow count after it.
//
// Records with a signal other than photon or overflow yield KindUnknown and
// leave the count unchanged.
func DecodeRecord(r Record, overflows uint64) (Event, uint64) {
	signal := r.Signal()

	switch signal {
	case SignalPhoton:
		return Event{Kind: KindPhoton, Signal: signal, Macrotime: r.Payload() + overflows*OverflowValue}, overflows
	case SignalOverflow:
		n := r.Payload()
		return Event{Kind: KindOverflow, Signal: signal, Overflows: n}, addOverflows(overflows, n)
	default:
		return Event{Kind: KindUnknown, Signal: signal}, overflows
	}
}

// addOverflows adds n to a running overflow count, saturating instead of
// wrapping so that corrupt counts stay detectable.
func addOverflows(overflows, n uint64) uint64 {
	if sum := overflows + n; sum >= overflows {
		return sum
	}

	return math.MaxUint64
}
