package blob

import (
	"fmt"
	"iter"

	"github.com/arloliu/pixo/codec"
	"github.com/arloliu/pixo/compress"
	"github.com/arloliu/pixo/endian"
	"github.com/arloliu/pixo/errs"
	"github.com/arloliu/pixo/format"
	"github.com/arloliu/pixo/internal/hash"
)

// Decoder reads a blob produced by Encoder. The header supplies the codec
// configuration, so no out-of-band parameters are needed.
//
// The Decoder borrows the blob bytes for its lifetime; the caller must not
// modify them. Plane decodes allocate fresh sample slices owned by the
// caller.
type Decoder struct {
	dec     *codec.Decoder
	comp    compress.Codec
	engine  endian.EndianEngine
	payload []byte

	entries []indexEntry
	byID    map[uint64]int

	profile     format.Profile
	compression format.CompressionType
	shift       int
}

// NewDecoder parses and validates the blob header and index.
func NewDecoder(data []byte) (*Decoder, error) {
	if len(data) < HeaderSize {
		return nil, errs.ErrInvalidBlobSize
	}

	engine := endian.GetLittleEndianEngine()

	if engine.Uint32(data[0:4]) != MagicNumber {
		return nil, errs.ErrInvalidMagic
	}
	if data[4] != FormatVersion {
		return nil, fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, data[4])
	}

	profile := format.Profile(data[5])
	if !profile.IsValid() {
		return nil, errs.ErrInvalidProfile
	}

	compression := format.CompressionType(data[6])
	comp, err := compress.CreateCodec(compression, "plane payload")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compression)
	}

	shift := int(data[7])
	hashShift := int(data[10])

	planeCount := int(engine.Uint16(data[8:10]))
	indexEnd := HeaderSize + planeCount*IndexEntrySize
	if len(data) < indexEnd {
		return nil, errs.ErrInvalidBlobSize
	}

	dec, err := codec.NewDecoder(
		codec.WithShift(shift),
		codec.WithProfile(profile),
		codec.WithCacheHashShift(hashShift),
	)
	if err != nil {
		return nil, err
	}

	payload := data[indexEnd:]
	entries := make([]indexEntry, planeCount)
	byID := make(map[uint64]int, planeCount)

	for i := range entries {
		base := HeaderSize + i*IndexEntrySize
		entry := indexEntry{
			id:          engine.Uint64(data[base : base+8]),
			sampleCount: engine.Uint32(data[base+8 : base+12]),
			byteLength:  engine.Uint32(data[base+12 : base+16]),
			offset:      engine.Uint32(data[base+16 : base+20]),
		}
		if int(entry.offset)+int(entry.byteLength) > len(payload) {
			return nil, fmt.Errorf("%w: plane %d", errs.ErrInvalidPlaneOffset, entry.id)
		}

		entries[i] = entry
		byID[entry.id] = i
	}

	return &Decoder{
		dec:         dec,
		comp:        comp,
		engine:      engine,
		payload:     payload,
		entries:     entries,
		byID:        byID,
		profile:     profile,
		compression: compression,
		shift:       shift,
	}, nil
}

// Count returns the number of planes in the blob.
func (d *Decoder) Count() int {
	return len(d.entries)
}

// PlaneIDs returns the plane IDs in blob order.
func (d *Decoder) PlaneIDs() []uint64 {
	ids := make([]uint64, len(d.entries))
	for i, entry := range d.entries {
		ids[i] = entry.id
	}

	return ids
}

// Profile returns the tag profile recorded in the blob header.
func (d *Decoder) Profile() format.Profile {
	return d.profile
}

// Compression returns the compression type recorded in the blob header.
func (d *Decoder) Compression() format.CompressionType {
	return d.compression
}

// Shift returns the precision shift recorded in the blob header.
func (d *Decoder) Shift() int {
	return d.shift
}

// Plane decodes the plane stored under the given name.
func (d *Decoder) Plane(name string) ([]uint16, error) {
	return d.PlaneByID(hash.PlaneID(name))
}

// PlaneByID decodes the plane stored under the given xxHash64 ID.
func (d *Decoder) PlaneByID(id uint64) ([]uint16, error) {
	idx, ok := d.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: ID %d", errs.ErrPlaneNotFound, id)
	}

	return d.decodePlane(d.entries[idx])
}

// All returns an iterator over all planes in blob order, yielding each
// plane ID and its decoded samples. Iteration stops early if a plane
// fails to decode; use Plane or PlaneByID to observe the error.
func (d *Decoder) All() iter.Seq2[uint64, []uint16] {
	return func(yield func(uint64, []uint16) bool) {
		for _, entry := range d.entries {
			samples, err := d.decodePlane(entry)
			if err != nil {
				return
			}
			if !yield(entry.id, samples) {
				return
			}
		}
	}
}

func (d *Decoder) decodePlane(entry indexEntry) ([]uint16, error) {
	raw := d.payload[entry.offset : entry.offset+entry.byteLength]

	decompressed, err := d.comp.Decompress(raw)
	if err != nil {
		return nil, fmt.Errorf("decompress plane %d: %w", entry.id, err)
	}
	if len(decompressed)%2 != 0 {
		return nil, fmt.Errorf("%w: odd plane payload length", errs.ErrInvalidBlobSize)
	}

	words := make([]uint16, len(decompressed)/2)
	for i := range words {
		words[i] = d.engine.Uint16(decompressed[2*i:])
	}

	return d.dec.Decode(words, int(entry.sampleCount))
}
