package compress

// ZstdCompressor provides Zstandard compression for snapshot payloads.
//
// Zstd gives the best compression ratio of the available codecs and is the
// recommended choice for archived snapshots. Two implementations exist:
// a pure-Go one (default) and a cgo-backed one selected by the `gozstd`
// build tag; both produce interchangeable streams.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
