package sstt

import (
	"fmt"
	"iter"

	"github.com/arloliu/timetag/endian"
	"github.com/arloliu/timetag/errs"
	"github.com/arloliu/timetag/internal/hash"
	"github.com/arloliu/timetag/internal/options"
)

// State describes how far a stream has been decoded.
//
// It is the value to carry between calls when a channel file keeps growing:
// pass it to WithCheckpoint to continue where the previous decode stopped.
type State struct {
	// Records is the number of complete records consumed, including skipped ones.
	Records uint64

	// Photons is the number of photon events decoded in this pass.
	Photons uint64

	// Overflows is the running overflow count after the last consumed record.
	Overflows uint64

	// Unknown is the number of records with an unrecognized signal in this pass.
	Unknown uint64

	// TailHash is the hash of the last consumed record, 0 if none was consumed.
	TailHash uint64
}

// Decoder turns SSTT v2 record streams into macrotimes.
//
// A Decoder is immutable and safe for concurrent use.
type Decoder struct {
	cfg DecoderConfig
}

// NewDecoder creates a Decoder.
//
// Example:
//
//	dec, err := sstt.NewDecoder(sstt.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    return err
//	}
//	times, state, err := dec.Decode(payload)
func NewDecoder(opts ...DecoderOption) (*Decoder, error) {
	cfg := newDecoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Decoder{cfg: *cfg}, nil
}

// Stream is a positioned view over one record stream.
type Stream struct {
	engine  endian.EndianEngine
	records []byte
	tail    []byte
	pos     int
	state   State
	err     error
}

// Open prepares data for decoding.
//
// It decompresses data if the decoder was configured with a compression,
// applies the skip count and verifies the checkpoint. Records are decoded
// lazily by Stream.All.
//
// Returns:
//   - *Stream: Stream positioned after the skipped records
//   - error: ErrSkipOutOfRange, ErrCheckpointMismatch, ErrTruncatedRecord or a decompression error
func (d *Decoder) Open(data []byte) (*Stream, error) {
	payload, err := d.cfg.codec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress records: %w", err)
	}

	if d.cfg.strict && len(payload)%RecordSize != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", errs.ErrTruncatedRecord, len(payload)%RecordSize)
	}

	available := uint64(len(payload) / RecordSize)
	if d.cfg.skip > available {
		return nil, fmt.Errorf("%w: skip %d, available %d", errs.ErrSkipOutOfRange, d.cfg.skip, available)
	}

	s := &Stream{
		engine:  d.cfg.engine,
		records: payload[:available*RecordSize],
		pos:     int(d.cfg.skip) * RecordSize, //nolint: gosec
		state: State{
			Records:   d.cfg.skip,
			Overflows: d.cfg.overflows,
		},
	}

	if s.pos > 0 {
		s.tail = s.records[s.pos-RecordSize : s.pos]
		if d.cfg.verify && hash.Record(s.tail) != d.cfg.tailHash {
			return nil, fmt.Errorf("%w: record %d", errs.ErrCheckpointMismatch, d.cfg.skip-1)
		}
	}

	return s, nil
}

// Decode returns the macrotimes of every photon in data together with the
// state after the last complete record.
//
// Overflow and unknown records produce no output. Unknown records are
// counted in State.Unknown. A photon announced after MaxOverflows or more
// overflows, which only a corrupt overflow record produces in practice,
// fails with ErrMacrotimeOverflow and leaves dst unchanged.
func (d *Decoder) Decode(data []byte) ([]int64, State, error) {
	return d.AppendMacrotimes(nil, data)
}

// AppendMacrotimes is Decode appending to dst.
func (d *Decoder) AppendMacrotimes(dst []int64, data []byte) ([]int64, State, error) {
	s, err := d.Open(data)
	if err != nil {
		return dst, State{}, err
	}

	n := len(dst)
	dst, err = s.appendMacrotimes(dst)
	if err != nil {
		return dst[:n], State{}, err
	}

	return dst, s.State(), nil
}

// CountPhotons returns the number of photon records in data after the skip.
func (d *Decoder) CountPhotons(data []byte) (uint64, error) {
	s, err := d.Open(data)
	if err != nil {
		return 0, err
	}

	for ; s.pos < len(s.records); s.pos += RecordSize {
		if ParseRecord(s.engine, s.records[s.pos:]).Signal() == SignalPhoton {
			s.state.Photons++
		}
	}

	return s.state.Photons, nil
}

// All yields the remaining events in record order.
//
// The stream advances as events are yielded. Stopping the iteration early
// leaves the stream after the last yielded event, so a later call to All
// continues from there. A photon whose macrotime would exceed the int64 range
// ends the iteration before that record; Err reports it.
func (s *Stream) All() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for s.err == nil && s.pos < len(s.records) {
			raw := s.records[s.pos : s.pos+RecordSize]
			rec := ParseRecord(s.engine, raw)
			if err := s.checkPhoton(rec); err != nil {
				s.err = err
				return
			}

			ev, overflows := DecodeRecord(rec, s.state.Overflows)
			ev.Index = s.state.Records
			s.advance(raw, ev.Kind, overflows)

			if !yield(ev) {
				return
			}
		}
	}
}

// Photons yields the macrotime of every remaining photon.
func (s *Stream) Photons() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for ev := range s.All() {
			if ev.Kind == KindPhoton && !yield(ev.Macrotime) {
				return
			}
		}
	}
}

// Err returns the error that stopped All, or nil.
func (s *Stream) Err() error {
	return s.err
}

func (s *Stream) checkPhoton(rec Record) error {
	if rec.Signal() == SignalPhoton && s.state.Overflows >= MaxOverflows {
		return fmt.Errorf("%w: record %d follows %d overflows", errs.ErrMacrotimeOverflow, s.state.Records, s.state.Overflows)
	}

	return nil
}

// Remaining returns the number of complete records not yet consumed.
func (s *Stream) Remaining() int {
	return (len(s.records) - s.pos) / RecordSize
}

// State returns the state after the last consumed record.
func (s *Stream) State() State {
	st := s.state
	if s.tail != nil {
		st.TailHash = hash.Record(s.tail)
	}

	return st
}

func (s *Stream) advance(raw []byte, kind EventKind, overflows uint64) {
	s.pos += RecordSize
	s.tail = raw
	s.state.Records++
	s.state.Overflows = overflows

	switch kind { //nolint: exhaustive
	case KindPhoton:
		s.state.Photons++
	case KindUnknown:
		s.state.Unknown++
	}
}

// appendMacrotimes is the loop behind Decode, kept free of iterator overhead.
func (s *Stream) appendMacrotimes(dst []int64) ([]int64, error) {
	dst = growInt64(dst, s.Remaining())

	overflows := s.state.Overflows
	for ; s.pos < len(s.records); s.pos += RecordSize {
		rec := ParseRecord(s.engine, s.records[s.pos:])

		switch rec.Signal() {
		case SignalPhoton:
			if overflows >= MaxOverflows {
				s.state.Overflows = overflows

				return dst, s.checkPhoton(rec)
			}
			dst = append(dst, int64(rec.Payload()+overflows*OverflowValue)) //nolint: gosec
			s.state.Photons++
		case SignalOverflow:
			overflows = addOverflows(overflows, rec.Payload())
		default:
			s.state.Unknown++
		}
		s.state.Records++
	}

	s.state.Overflows = overflows
	if s.pos > 0 {
		s.tail = s.records[s.pos-RecordSize : s.pos]
	}

	return dst, nil
}

func growInt64(dst []int64, n int) []int64 {
	if cap(dst)-len(dst) >= n {
		return dst
	}

	grown := make([]int64, len(dst), len(dst)+n)
	copy(grown, dst)

	return grown
}
