package compress

// ZstdCompressor provides Zstandard compression, the default codec for
// container group payloads. It favors compression ratio over speed, which
// suits write-once container files that are read back far more often than
// they are written.
//
// Two implementations exist behind build tags: a pure-Go one based on
// klauspost/compress/zstd (default) and a cgo one based on valyala/gozstd
// (build tag cgo_zstd).
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
