package sstt

import (
	"fmt"

	"github.com/arloliu/timetag/compress"
	"github.com/arloliu/timetag/endian"
	"github.com/arloliu/timetag/format"
	"github.com/arloliu/timetag/internal/options"
)

// EncoderConfig holds Encoder settings.
type EncoderConfig struct {
	engine    endian.EndianEngine
	codec     compress.Codec
	overflows uint64
	header    bool
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*EncoderConfig]

func newEncoderConfig() *EncoderConfig {
	codec, _ := compress.GetCodec(format.CompressionNone)

	return &EncoderConfig{
		engine: endian.GetLittleEndianEngine(),
		codec:  codec,
	}
}

// WithHeader prefixes the output with the SSTT v2 file header.
// The header is never compressed.
func WithHeader() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.header = true
	})
}

// WithEncoderBigEndian writes big-endian records.
func WithEncoderBigEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.engine = endian.GetBigEndianEngine()
	})
}

// WithEncoderCompression compresses the record payload on Finish.
func WithEncoderCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		codec, err := compress.GetCodec(comp)
		if err != nil {
			return fmt.Errorf("invalid encoder compression: %w", err)
		}
		c.codec = codec

		return nil
	})
}

// WithStartOverflows continues an existing stream whose records already
// announced n overflows. Macrotimes passed to WritePhoton are absolute.
func WithStartOverflows(n uint64) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.overflows = n
	})
}
