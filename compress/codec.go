// Package compress provides codecs for compressed record payloads.
//
// Acquisition software may store a channel's raw 6-byte event records
// compressed to save disk space on long measurements. The upper payload bytes
// of consecutive photon records rarely change, which Zstd and LZ4 exploit;
// how much a payload shrinks depends on the photon rate, and sparse channels
// with random low bytes may barely shrink under S2. The codecs here turn such
// a payload back into the plain record stream consumed by the sstt decoder,
// and compress streams produced by the sstt encoder.
//
// Supported algorithms:
//   - None: records stored as-is
//   - Zstd: best ratio, suited for archived measurements
//   - S2: fast, better mode; ratio depends on photon density
//   - LZ4: fastest decompression, suited for live re-reads
package compress

import (
	"fmt"

	"github.com/arloliu/timetag/format"
)

// Compressor compresses a complete record payload.
//
// The returned slice is owned by the caller; the input is not modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload compressed by the matching Compressor.
//
// It returns an error if the data is corrupted or was produced by a
// different algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
//
// The built-in codecs are stateless values and safe for concurrent use.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
