package blob

// Blob layout, all little-endian:
//
//	header (16 bytes)
//	  [0:4)   magic "PIXO"
//	  [4]     format version
//	  [5]     tag profile
//	  [6]     compression type
//	  [7]     precision shift
//	  [8:10)  plane count
//	  [10]    cache hash shift
//	  [11:16) reserved, zero
//	index entries (20 bytes each)
//	  [0:8)   plane ID (xxHash64 of the plane name)
//	  [8:12)  sample count
//	  [12:16) payload byte length
//	  [16:20) payload offset, relative to the payload section
//	payload section
//	  per plane: packed words serialized little-endian, then compressed
//
// Unlike the bare packed-word stream, a blob is self-describing: the
// header carries every construction-time codec parameter, so a decoder
// needs no out-of-band configuration.
const (
	// MagicNumber identifies a pixo blob ("PIXO" in little-endian order).
	MagicNumber uint32 = 0x4F584950

	// FormatVersion is the current blob format version.
	FormatVersion uint8 = 1

	// HeaderSize is the fixed size of the blob header in bytes.
	HeaderSize = 16

	// IndexEntrySize is the size of one plane index entry in bytes.
	IndexEntrySize = 20

	// MaxPlaneCount is the maximum number of planes in a single blob,
	// bounded by the 16-bit plane count field.
	MaxPlaneCount = 65535
)

// indexEntry locates one encoded plane inside the payload section.
type indexEntry struct {
	id          uint64
	sampleCount uint32
	byteLength  uint32
	offset      uint32
}
