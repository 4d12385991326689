package sstt

import (
	"fmt"

	"github.com/arloliu/timetag/compress"
	"github.com/arloliu/timetag/endian"
	"github.com/arloliu/timetag/format"
	"github.com/arloliu/timetag/internal/options"
)

// DecoderConfig holds the settings a Decoder starts from.
type DecoderConfig struct {
	engine    endian.EndianEngine
	codec     compress.Codec
	overflows uint64
	skip      uint64
	tailHash  uint64
	verify    bool
	strict    bool
}

// DecoderOption configures a Decoder.
type DecoderOption = options.Option[*DecoderConfig]

func newDecoderConfig() *DecoderConfig {
	codec, _ := compress.GetCodec(format.CompressionNone)

	return &DecoderConfig{
		engine: endian.GetLittleEndianEngine(),
		codec:  codec,
	}
}

// WithOverflows sets the overflow count accumulated before the first decoded record.
func WithOverflows(n uint64) DecoderOption {
	return options.NoError(func(c *DecoderConfig) {
		c.overflows = n
	})
}

// WithSkipRecords skips the first n records of the stream.
//
// Skipped records are not decoded, so their overflows must be supplied with
// WithOverflows. Decoding fails with ErrSkipOutOfRange if the stream holds
// fewer than n complete records.
func WithSkipRecords(n uint64) DecoderOption {
	return options.NoError(func(c *DecoderConfig) {
		c.skip = n
	})
}

// WithCheckpoint resumes decoding after the records described by st.
//
// It sets the skip count and starting overflows from st and additionally
// verifies that the last skipped record hashes to st.TailHash, which detects
// a stream that was rewritten or truncated since st was taken.
func WithCheckpoint(st State) DecoderOption {
	return options.NoError(func(c *DecoderConfig) {
		c.skip = st.Records
		c.overflows = st.Overflows
		c.tailHash = st.TailHash
		c.verify = st.Records > 0
	})
}

// WithBigEndian reads records as big-endian words. Files written by SSTT v2
// hardware are little-endian, which is the default.
func WithBigEndian() DecoderOption {
	return options.NoError(func(c *DecoderConfig) {
		c.engine = endian.GetBigEndianEngine()
	})
}

// WithCompression decompresses the input with the given algorithm before decoding.
func WithCompression(comp format.CompressionType) DecoderOption {
	return options.New(func(c *DecoderConfig) error {
		codec, err := compress.GetCodec(comp)
		if err != nil {
			return fmt.Errorf("invalid decoder compression: %w", err)
		}
		c.codec = codec

		return nil
	})
}

// WithStrictLength rejects streams whose length is not a multiple of RecordSize.
// By default a trailing partial record, as seen while a file is still being
// written, is left unconsumed.
func WithStrictLength() DecoderOption {
	return options.NoError(func(c *DecoderConfig) {
		c.strict = true
	})
}
