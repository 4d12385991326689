//go:build gozstd && cgo

package compress

import (
	"github.com/valyala/gozstd"
)

// archiveLevel is the zstd level closest to the pure Go encoder's
// SpeedBetterCompression setting.
const archiveLevel = 7

// Compress compresses the input data with the cgo zstd binding.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, archiveLevel), nil
}

// Decompress decompresses Zstandard data with the cgo zstd binding.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
