// Package pixo provides a compact binary codec for 15-bit sample streams
// such as image planes, depth maps and sensor captures.
//
// Pixo trades the lowest sample bits for size: every sample is
// right-shifted into a 15-bit working domain, then encoded with one of
// four schemes chosen per sample (run-length, bias-delta, recent-value
// cache, raw escape). The output is a stream of 16-bit words that never
// exceeds one word per sample plus stream padding.
//
// # Core Features
//
//   - Four competing encodings selected greedily per sample
//   - Configurable precision drop (1-8 bits) and 5-bit tag profiles
//   - Self-describing multi-plane blobs with xxHash64 plane lookup
//   - Optional compression (None, Zstd, S2, LZ4) at the blob layer
//   - Reusable encoder/decoder instances with per-stream scheme statistics
//
// # Basic Usage
//
// One-shot encoding of a single stream:
//
//	words, err := pixo.Encode(samples)
//	restored, err := pixo.Decode(words, len(samples))
//
// Multi-plane blobs:
//
//	encoder, _ := pixo.NewBlobEncoder(
//	    blob.WithCompression(format.CompressionZstd),
//	)
//	_ = encoder.AddPlane("luma", luma)
//	_ = encoder.AddPlane("chroma", chroma)
//	data, _ := encoder.Finish()
//
//	decoder, _ := pixo.NewBlobDecoder(data)
//	luma, _ = decoder.Plane("luma")
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the codec and
// blob packages, simplifying the most common use cases. For fine-grained
// control (tag profiles, precision shifts, cache tuning), use the codec and
// blob packages directly.
package pixo

import (
	"github.com/arloliu/pixo/blob"
	"github.com/arloliu/pixo/codec"
	"github.com/arloliu/pixo/internal/hash"
)

// NewEncoder creates a stream encoder with custom options.
//
// Use this when you need a non-default precision shift, tag profile or
// cache hash shift, or when encoding many streams with one reusable
// instance.
//
// Parameters:
//   - opts: Optional configuration functions (see codec.Option)
//
// Returns:
//   - *codec.Encoder: The created encoder.
//   - error: An error if the configuration is invalid.
//
// Available options:
//   - codec.WithShift(1..8)
//   - codec.WithProfile(format.ProfileDeltaWide|ProfileCacheWide)
//   - codec.WithCacheHashShift(0..)
//
// Example:
//
//	encoder, err := pixo.NewEncoder(
//	    codec.WithShift(2),
//	    codec.WithProfile(format.ProfileCacheWide),
//	)
func NewEncoder(opts ...codec.Option) (*codec.Encoder, error) {
	return codec.NewEncoder(opts...)
}

// NewDecoder creates a stream decoder with custom options.
//
// The packed-word stream is headerless, so the decoder must be built with
// the same shift, profile and cache hash shift as the encoder that
// produced the stream. For self-describing payloads use the blob layer
// instead.
//
// Parameters:
//   - opts: Optional configuration functions (see codec.Option)
//
// Returns:
//   - *codec.Decoder: The created decoder.
//   - error: An error if the configuration is invalid.
func NewDecoder(opts ...codec.Option) (*codec.Decoder, error) {
	return codec.NewDecoder(opts...)
}

// Encode compresses samples into packed 16-bit words using the default
// configuration (shift 1, ProfileDeltaWide, cache hash shift 1).
//
// The word stream is headerless: pair it with Decode and the original
// sample count, or use the blob layer for self-describing output.
//
// Parameters:
//   - samples: The samples to encode; the low shift bits are discarded
//
// Returns:
//   - []uint16: The packed word stream.
//
// Example:
//
//	words, _ := pixo.Encode(samples)
//	restored, _ := pixo.Decode(words, len(samples))
func Encode(samples []uint16) ([]uint16, error) {
	encoder, err := codec.NewEncoder()
	if err != nil {
		return nil, err
	}

	return encoder.Encode(samples), nil
}

// Decode expands a packed word stream produced by Encode back into
// sampleCount samples. The low shift bits of every sample are zero.
//
// Parameters:
//   - words: The packed word stream
//   - sampleCount: The number of samples originally encoded
//
// Returns:
//   - []uint16: The restored samples.
//   - error: errs.ErrTruncatedStream if the stream ends early, or
//     errs.ErrSampleOverflow if the stream is corrupt.
func Decode(words []uint16, sampleCount int) ([]uint16, error) {
	decoder, err := codec.NewDecoder()
	if err != nil {
		return nil, err
	}

	return decoder.Decode(words, sampleCount)
}

// NewBlobEncoder creates a multi-plane blob encoder.
//
// Each added plane is encoded with a shared codec configuration,
// optionally compressed, and indexed by the xxHash64 of its name. The
// resulting blob is self-describing; see NewBlobDecoder.
//
// Parameters:
//   - opts: Optional configuration functions (see blob.Option)
//
// Returns:
//   - *blob.Encoder: The created blob encoder.
//   - error: An error if the configuration is invalid.
//
// Available options:
//   - blob.WithShift(1..8)
//   - blob.WithProfile(format.ProfileDeltaWide|ProfileCacheWide)
//   - blob.WithCacheHashShift(0..)
//   - blob.WithCompression(format.CompressionNone|Zstd|S2|LZ4)
//
// Example:
//
//	encoder, err := pixo.NewBlobEncoder(
//	    blob.WithCompression(format.CompressionS2),
//	)
//	_ = encoder.AddPlane("depth", depth)
//	data, _ := encoder.Finish()
func NewBlobEncoder(opts ...blob.Option) (*blob.Encoder, error) {
	return blob.NewEncoder(opts...)
}

// NewBlobDecoder creates a decoder for a blob produced by a blob Encoder.
//
// The decoder reads every codec parameter from the blob header, so no
// configuration is needed.
//
// Parameters:
//   - data: The raw blob bytes (from encoder.Finish() or storage)
//
// Returns:
//   - *blob.Decoder: The created blob decoder.
//   - error: An error if the blob is malformed.
//
// Example:
//
//	decoder, err := pixo.NewBlobDecoder(data)
//	for id, samples := range decoder.All() {
//	    fmt.Printf("plane %d: %d samples\n", id, len(samples))
//	}
func NewBlobDecoder(data []byte) (*blob.Decoder, error) {
	return blob.NewDecoder(data)
}

// PlaneID converts a plane name to its 64-bit xxHash64 identifier.
//
// Blobs index planes by this hash. Use it to pre-compute IDs for
// frequently accessed planes, or with blob.Decoder.PlaneByID when the
// name is not at hand at decode time.
//
// Example:
//
//	lumaID := pixo.PlaneID("luma")
//	samples, err := decoder.PlaneByID(lumaID)
func PlaneID(name string) uint64 {
	return hash.PlaneID(name)
}
