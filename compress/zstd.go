package compress

// ZstdCompressor compresses payloads with Zstandard. It is the ratio-
// oriented choice for archival blobs where decode frequency is low.
//
// Two implementations exist behind build tags: the default pure-Go
// klauspost/compress encoder, and valyala/gozstd (libzstd via cgo) when
// built with the cgo_zstd tag. Both produce interchangeable frames.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
