// Package format defines the wire-level constants of the pixo packed-word
// format: the 16-bit word layout, the 5-bit scheme tag tables, and the
// compression type identifiers used by the blob container.
package format

// Packed word layout. A word either carries a full working sample behind
// the raw flag bit, or three 5-bit tagged codes in its low 15 bits.
const (
	// RawWordFlag marks a word as a raw escape carrying a 15-bit sample.
	RawWordFlag uint16 = 0x8000

	// WordPayloadMask selects the 15-bit payload of a raw word.
	WordPayloadMask uint16 = 0x7FFF

	// CodeBits is the width of one tagged code inside a chunk word.
	CodeBits = 5

	// CodeMask selects one 5-bit code.
	CodeMask uint16 = 0x1F

	// CodesPerWord is the number of tagged codes packed into a chunk word.
	CodesPerWord = 3

	// SampleBits is the effective precision of a working sample.
	SampleBits = 15

	// CacheSentinel is the initial content of every cache slot and the
	// initial "previous" value of both coder state machines. It cannot
	// equal any 15-bit working sample.
	CacheSentinel uint16 = 0xFFFF
)

type (
	Profile         uint8
	CompressionType uint8
	Scheme          uint8
)

const (
	// ProfileDeltaWide is the reference tag layout: a 4-bit delta payload
	// and an 8-slot value cache.
	ProfileDeltaWide Profile = 0x1

	// ProfileCacheWide swaps the widths: a 3-bit delta payload and a
	// 16-slot value cache.
	ProfileCacheWide Profile = 0x2

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.

	SchemeRunLength Scheme = 0x1 // SchemeRunLength repeats the previous sample.
	SchemeDelta     Scheme = 0x2 // SchemeDelta encodes a small signed difference.
	SchemeCache     Scheme = 0x3 // SchemeCache references a recent-value cache slot.
	SchemeRaw       Scheme = 0x4 // SchemeRaw carries a full 15-bit sample.
)

// SchemeParams describes the tag pattern of one 5-bit scheme: the header
// bits, the mask selecting the payload, and the payload width in bits.
//
// The header occupies the bits outside the mask; a code c belongs to the
// scheme when c &^ mask == header.
type SchemeParams struct {
	Header byte
	Mask   byte
	Width  uint
}

// Matches reports whether code carries this scheme's tag.
func (p SchemeParams) Matches(code byte) bool {
	return code&^p.Mask == p.Header
}

// IsValid reports whether the profile is a known tag layout.
func (p Profile) IsValid() bool {
	return p == ProfileDeltaWide || p == ProfileCacheWide
}

// RunLength returns the run-length scheme tag parameters.
// Both profiles share the all-zero run-length header.
func (p Profile) RunLength() SchemeParams {
	return SchemeParams{Header: 0x00, Mask: 0x07, Width: 3}
}

// Delta returns the bias-delta scheme tag parameters for the profile.
func (p Profile) Delta() SchemeParams {
	if p == ProfileCacheWide {
		return SchemeParams{Header: 0x08, Mask: 0x07, Width: 3}
	}

	return SchemeParams{Header: 0x10, Mask: 0x0F, Width: 4}
}

// Cache returns the recent-value cache scheme tag parameters for the
// profile. The cache table holds 1<<Width slots.
func (p Profile) Cache() SchemeParams {
	if p == ProfileCacheWide {
		return SchemeParams{Header: 0x10, Mask: 0x0F, Width: 4}
	}

	return SchemeParams{Header: 0x08, Mask: 0x07, Width: 3}
}

func (p Profile) String() string {
	switch p {
	case ProfileDeltaWide:
		return "DeltaWide"
	case ProfileCacheWide:
		return "CacheWide"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

func (s Scheme) String() string {
	switch s {
	case SchemeRunLength:
		return "RunLength"
	case SchemeDelta:
		return "Delta"
	case SchemeCache:
		return "Cache"
	case SchemeRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}
