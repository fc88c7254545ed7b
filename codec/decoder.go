package codec

import (
	"github.com/arloliu/pixo/encoding"
	"github.com/arloliu/pixo/errs"
	"github.com/arloliu/pixo/format"
)

// Decoder reconstructs sample sequences from packed word streams produced
// by an Encoder built with the same options.
//
// The decoder is not safe for concurrent use. Each call to Decode processes
// one complete stream and resets all per-stream state first.
type Decoder struct {
	shifter encoding.BitShifter
	run     encoding.RunLengthCoder
	delta   encoding.DeltaCoder
	cache   *encoding.ValueCache

	runCodes []byte
	profile  format.Profile
}

// NewDecoder creates a Decoder with the given options. The options must
// match the encoder that produced the streams; the stream itself carries
// no configuration.
func NewDecoder(opts ...Option) (*Decoder, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	shifter, err := encoding.NewBitShifter(cfg.shift)
	if err != nil {
		return nil, err
	}

	return &Decoder{
		shifter: shifter,
		run:     encoding.NewRunLengthCoder(cfg.profile.RunLength()),
		delta:   encoding.NewDeltaCoder(cfg.profile.Delta()),
		cache:   encoding.NewValueCache(cfg.profile.Cache(), cfg.hashShift),
		profile: cfg.profile,
	}, nil
}

// Decode reconstructs exactly count samples from the packed word stream.
//
// The format has no end-of-stream marker, so the caller must supply the
// original sample count. Decode returns errs.ErrTruncatedStream when the
// words run out before count samples are reconstructed, and
// errs.ErrSampleOverflow when the stream decodes to more than count
// samples; both indicate corrupt input or a count mismatch.
//
// Trailing zero-padding codes emitted by the encoder's final flush share
// the run-length header. They fold into the run accumulator as zero-length
// groups and reconstruct nothing, matching the encoder bit-for-bit.
func (d *Decoder) Decode(words []uint16, count int) ([]uint16, error) {
	d.cache.Reset()
	d.runCodes = d.runCodes[:0]

	out := make([]uint16, 0, count)
	previous := format.CacheSentinel

	// resolveRun expands a completed run accumulator into copies of the
	// previous sample. It must run before any non-run code is interpreted.
	resolveRun := func() error {
		if len(d.runCodes) == 0 {
			return nil
		}

		length := d.run.Length(d.runCodes)
		d.runCodes = d.runCodes[:0]
		if length == 0 {
			return nil
		}
		if len(out)+length > count {
			return errs.ErrSampleOverflow
		}

		restored := d.shifter.Restore(previous)
		for i := 0; i < length; i++ {
			out = append(out, restored)
		}

		return nil
	}

	emit := func(current uint16) error {
		if len(out) >= count {
			return errs.ErrSampleOverflow
		}
		out = append(out, d.shifter.Restore(current))

		return nil
	}

	var pending [format.CodesPerWord]byte
	pendingHead, pendingLen := 0, 0
	pos := 0

	for pos < len(words) || pendingLen > 0 {
		if pendingLen > 0 {
			code := pending[pendingHead]
			pendingHead++
			pendingLen--

			switch {
			case d.run.Matches(code):
				d.runCodes = append(d.runCodes, code)
			case d.delta.Matches(code):
				if err := resolveRun(); err != nil {
					return nil, err
				}

				current := d.delta.Apply(previous, d.delta.Decode(code))
				if err := emit(current); err != nil {
					return nil, err
				}
				previous = current
			case d.cache.Matches(code):
				if err := resolveRun(); err != nil {
					return nil, err
				}

				current := d.cache.Lookup(d.cache.Slot(code))
				if err := emit(current); err != nil {
					return nil, err
				}
				previous = current
			}

			continue
		}

		word := words[pos]
		pos++

		if encoding.IsRawWord(word) {
			if err := resolveRun(); err != nil {
				return nil, err
			}

			current := encoding.RawValue(word)
			// Mirror the encoder's raw-escape insertion to keep the caches
			// identical on both sides.
			d.cache.Insert(d.cache.Hash(current), current)
			if err := emit(current); err != nil {
				return nil, err
			}
			previous = current

			continue
		}

		pending[0], pending[1], pending[2] = encoding.UnpackCodes(word)
		pendingHead, pendingLen = 0, format.CodesPerWord
	}

	if err := resolveRun(); err != nil {
		return nil, err
	}

	if len(out) < count {
		return nil, errs.ErrTruncatedStream
	}

	return out, nil
}

// Profile returns the tag layout the decoder was constructed with.
func (d *Decoder) Profile() format.Profile {
	return d.profile
}

// Shift returns the precision drop in bits.
func (d *Decoder) Shift() int {
	return d.shifter.Shift()
}
