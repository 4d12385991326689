package compress

// ZstdCompressor provides Zstandard compression.
//
// Best suited for archived measurements where the ratio matters more than
// speed. The pure Go implementation is used unless the cgo variant is enabled
// with the gozstd build tag.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
