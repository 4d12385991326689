package sstt

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/timetag/endian"
	"github.com/arloliu/timetag/errs"
	"github.com/arloliu/timetag/internal/options"
	"github.com/arloliu/timetag/internal/pool"
)

var errEncoderFinished = errors.New("encoder already finished")

var _ io.WriterTo = (*Encoder)(nil)

// Encoder writes SSTT v2 record streams.
//
// Encoder implements io.WriterTo.
//
// It is the inverse of Decoder: photons are written with absolute
// macrotimes and the Encoder inserts the overflow records needed to carry
// the bits above the 46-bit payload. Records are staged in a pooled buffer
// which Finish returns to the pool; an Encoder cannot be reused after Finish.
type Encoder struct {
	cfg       EncoderConfig
	buf       *pool.ByteBuffer
	overflows uint64
	records   int
}

// NewEncoder creates an Encoder.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	cfg := newEncoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Encoder{
		cfg:       *cfg,
		buf:       pool.GetRecordBuffer(),
		overflows: cfg.overflows,
	}, nil
}

// WritePhoton appends a photon with the given absolute macrotime.
//
// Macrotimes must not move back into an overflow epoch that was already
// closed; such a photon is rejected with ErrUnsortedInput. Within one epoch
// the order is not checked, matching what the hardware itself can emit.
func (e *Encoder) WritePhoton(macrotime uint64) error {
	if e.buf == nil {
		return errEncoderFinished
	}

	epoch := macrotime / OverflowValue
	if epoch < e.overflows {
		return fmt.Errorf("%w: macrotime %d precedes overflow epoch %d", errs.ErrUnsortedInput, macrotime, e.overflows)
	}

	if epoch > e.overflows {
		if err := e.WriteOverflows(epoch - e.overflows); err != nil {
			return err
		}
	}

	return e.WriteRecord(PhotonRecord(macrotime))
}

// WritePhotons appends every macrotime in order.
func (e *Encoder) WritePhotons(macrotimes []int64) error {
	for i, t := range macrotimes {
		if t < 0 {
			return fmt.Errorf("%w: negative macrotime %d at index %d", errs.ErrConstraintViolation, t, i)
		}

		if err := e.WritePhoton(uint64(t)); err != nil {
			return err
		}
	}

	return nil
}

// WriteOverflows appends overflow records announcing count overflows.
// Counts wider than the payload are split over several records.
func (e *Encoder) WriteOverflows(count uint64) error {
	for count > 0 {
		n := min(count, PayloadMask)
		if err := e.WriteRecord(OverflowRecord(n)); err != nil {
			return err
		}
		e.overflows += n
		count -= n
	}

	return nil
}

// WriteRecord appends a raw record without interpreting it.
func (e *Encoder) WriteRecord(r Record) error {
	if e.buf == nil {
		return errEncoderFinished
	}

	endian.PutUint48(e.cfg.engine, e.buf.ExtendOrGrow(RecordSize), uint64(r))
	e.records++

	return nil
}

// Len returns the number of records written so far.
func (e *Encoder) Len() int {
	return e.records
}

// Overflows returns the overflow count announced so far.
func (e *Encoder) Overflows() uint64 {
	return e.overflows
}

// Finish returns the encoded stream and releases the staging buffer.
func (e *Encoder) Finish() ([]byte, error) {
	out := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(out)

	if err := e.finish(out); err != nil {
		return nil, err
	}

	stream := make([]byte, out.Len())
	copy(stream, out.Bytes())

	return stream, nil
}

// WriteTo finishes the encoder and writes the encoded stream to w.
//
// It is the streaming form of Finish, for appending a channel to a file
// without holding a second copy of the stream.
func (e *Encoder) WriteTo(w io.Writer) (int64, error) {
	out := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(out)

	if err := e.finish(out); err != nil {
		return 0, err
	}

	n, err := out.WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("failed to write records: %w", err)
	}

	return n, nil
}

func (e *Encoder) finish(out *pool.ByteBuffer) error {
	if e.buf == nil {
		return errEncoderFinished
	}

	defer func() {
		pool.PutRecordBuffer(e.buf)
		e.buf = nil
	}()

	payload, err := e.cfg.codec.Compress(e.buf.Bytes())
	if err != nil {
		return fmt.Errorf("failed to compress records: %w", err)
	}

	if e.cfg.header {
		out.Grow(HeaderSize + len(payload))
		out.B = AppendHeader(out.B)
	}

	_, _ = out.Write(payload)

	return nil
}
