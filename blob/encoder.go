package blob

import (
	"fmt"
	"math"

	"github.com/arloliu/pixo/codec"
	"github.com/arloliu/pixo/compress"
	"github.com/arloliu/pixo/endian"
	"github.com/arloliu/pixo/errs"
	"github.com/arloliu/pixo/format"
	"github.com/arloliu/pixo/internal/hash"
	"github.com/arloliu/pixo/internal/options"
	"github.com/arloliu/pixo/internal/pool"
)

// config holds the blob-level construction parameters. The codec
// parameters are forwarded to the packed-word codec and recorded in the
// blob header, so decoders reconstruct the same configuration.
type config struct {
	shift       int
	hashShift   int
	profile     format.Profile
	compression format.CompressionType
}

// Option configures a blob Encoder at construction time.
type Option = options.Option[*config]

// WithShift sets the precision drop applied to every plane.
func WithShift(shift int) Option {
	return options.NoError(func(c *config) { c.shift = shift })
}

// WithProfile selects the 5-bit tag layout used by every plane.
func WithProfile(profile format.Profile) Option {
	return options.NoError(func(c *config) { c.profile = profile })
}

// WithCacheHashShift sets the recent-value cache hash shift.
func WithCacheHashShift(shift int) Option {
	return options.NoError(func(c *config) { c.hashShift = shift })
}

// WithCompression selects the byte-level compression applied to each
// serialized plane payload. The default is no compression.
func WithCompression(compression format.CompressionType) Option {
	return options.NoError(func(c *config) { c.compression = compression })
}

// Encoder assembles a multi-plane blob. Planes are encoded with a shared
// packed-word codec configuration, individually compressed and indexed by
// the xxHash64 of their name.
//
// The Encoder is not safe for concurrent use and becomes unusable after
// Finish.
type Encoder struct {
	enc     *codec.Encoder
	comp    compress.Codec
	engine  endian.EndianEngine
	payload *pool.ByteBuffer

	entries []indexEntry
	names   map[uint64]string
	cfg     config
}

// NewEncoder creates a blob Encoder. Defaults: shift 1, ProfileDeltaWide,
// cache hash shift 1, no compression.
func NewEncoder(opts ...Option) (*Encoder, error) {
	cfg := &config{
		shift:       codec.DefaultShift,
		hashShift:   codec.DefaultCacheHashShift,
		profile:     codec.DefaultProfile,
		compression: format.CompressionNone,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	enc, err := codec.NewEncoder(
		codec.WithShift(cfg.shift),
		codec.WithProfile(cfg.profile),
		codec.WithCacheHashShift(cfg.hashShift),
	)
	if err != nil {
		return nil, err
	}

	comp, err := compress.CreateCodec(cfg.compression, "plane payload")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, cfg.compression)
	}

	return &Encoder{
		enc:     enc,
		comp:    comp,
		engine:  endian.GetLittleEndianEngine(),
		payload: pool.GetBlobBuffer(),
		names:   make(map[uint64]string),
		cfg:     *cfg,
	}, nil
}

// AddPlane encodes one sample plane and appends it to the blob under the
// xxHash64 of name.
//
// Adding the same name twice returns errs.ErrPlaneAlreadyAdded. Two
// distinct names hashing to the same ID return errs.ErrPlaneIDCollision;
// the caller must rename one of the planes.
func (e *Encoder) AddPlane(name string, samples []uint16) error {
	if e.payload == nil {
		panic("blob encoder already finished - cannot add planes after Finish()")
	}

	if len(e.entries) >= MaxPlaneCount {
		return errs.ErrTooManyPlanes
	}
	if len(samples) > math.MaxUint32 {
		return fmt.Errorf("plane %q: sample count %d exceeds format limit", name, len(samples))
	}

	id := hash.PlaneID(name)
	if existing, ok := e.names[id]; ok {
		if existing == name {
			return fmt.Errorf("%w: %q", errs.ErrPlaneAlreadyAdded, name)
		}

		return fmt.Errorf("%w: %q and %q share ID %d", errs.ErrPlaneIDCollision, existing, name, id)
	}

	words := e.enc.Encode(samples)

	raw := make([]byte, 0, len(words)*2)
	for _, word := range words {
		raw = e.engine.AppendUint16(raw, word)
	}

	compressed, err := e.comp.Compress(raw)
	if err != nil {
		return fmt.Errorf("compress plane %q: %w", name, err)
	}

	e.entries = append(e.entries, indexEntry{
		id:          id,
		sampleCount: uint32(len(samples)),    //nolint:gosec
		byteLength:  uint32(len(compressed)), //nolint:gosec
		offset:      uint32(e.payload.Len()), //nolint:gosec
	})
	e.payload.MustWrite(compressed)
	e.names[id] = name

	return nil
}

// Count returns the number of planes added so far.
func (e *Encoder) Count() int {
	return len(e.entries)
}

// Stats returns the per-scheme counters of the most recently added plane.
func (e *Encoder) Stats() codec.Stats {
	return e.enc.Stats()
}

// Finish serializes the header, index and payload into the final blob and
// returns the payload buffer to the pool. The Encoder is unusable
// afterwards; create a new one to build another blob.
func (e *Encoder) Finish() ([]byte, error) {
	if e.payload == nil {
		panic("blob encoder already finished")
	}

	if len(e.entries) == 0 {
		return nil, errs.ErrNoPlanesAdded
	}

	total := HeaderSize + len(e.entries)*IndexEntrySize + e.payload.Len()
	out := make([]byte, 0, total)

	out = e.engine.AppendUint32(out, MagicNumber)
	out = append(out, FormatVersion, byte(e.cfg.profile), byte(e.cfg.compression), byte(e.cfg.shift))
	out = e.engine.AppendUint16(out, uint16(len(e.entries))) //nolint:gosec
	out = append(out, byte(e.cfg.hashShift), 0, 0, 0, 0, 0)

	for _, entry := range e.entries {
		out = e.engine.AppendUint64(out, entry.id)
		out = e.engine.AppendUint32(out, entry.sampleCount)
		out = e.engine.AppendUint32(out, entry.byteLength)
		out = e.engine.AppendUint32(out, entry.offset)
	}

	out = append(out, e.payload.Bytes()...)

	pool.PutBlobBuffer(e.payload)
	e.payload = nil

	return out, nil
}
