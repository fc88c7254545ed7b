package codec

import (
	"github.com/arloliu/pixo/encoding"
	"github.com/arloliu/pixo/format"
)

// Stats counts how many samples each scheme encoded during the last call
// to Encode.
//
// RunLength counts samples absorbed by runs; Delta, Cache and Raw count
// individual codes. The four counters always sum to the input length.
type Stats struct {
	RunLength int
	Delta     int
	Cache     int
	Raw       int
}

// Encoder compresses sequences of 16-bit samples into packed 16-bit words.
//
// The encoder is not safe for concurrent use. Each call to Encode processes
// one complete, independent stream: the previous-sample register, the run
// counter and the recent-value cache are reset at the start of every call.
type Encoder struct {
	shifter encoding.BitShifter
	run     encoding.RunLengthCoder
	delta   encoding.DeltaCoder
	cache   *encoding.ValueCache

	runScratch []byte
	stats      Stats
	profile    format.Profile
}

// NewEncoder creates an Encoder with the given options. Defaults: shift 1,
// ProfileDeltaWide, cache hash shift 1. The decoder for the produced
// streams must be constructed with identical options.
func NewEncoder(opts ...Option) (*Encoder, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	shifter, err := encoding.NewBitShifter(cfg.shift)
	if err != nil {
		return nil, err
	}

	return &Encoder{
		shifter: shifter,
		run:     encoding.NewRunLengthCoder(cfg.profile.RunLength()),
		delta:   encoding.NewDeltaCoder(cfg.profile.Delta()),
		cache:   encoding.NewValueCache(cfg.profile.Cache(), cfg.hashShift),
		profile: cfg.profile,
	}, nil
}

// Encode compresses samples into a packed word stream.
//
// Every sample yields exactly one logical code: a run sample contributes to
// one run-length emission, every other sample to one delta, cache or raw
// code. The output never exceeds one word per input sample; structured
// inputs compress well below that.
//
// The returned slice is owned by the caller. To reconstruct the samples the
// decoder needs the word stream and the original sample count; neither is
// embedded in the stream.
func (e *Encoder) Encode(samples []uint16) []uint16 {
	e.cache.Reset()
	e.stats = Stats{}

	buf := encoding.NewWordBuffer(len(samples))
	previous := format.CacheSentinel
	runLength := 0

	for _, sample := range samples {
		current := e.shifter.Reduce(sample)

		if current == previous {
			runLength++
			continue
		}

		if runLength != 0 {
			e.flushRun(buf, runLength)
			runLength = 0
		}

		diff := e.delta.Diff(previous, current)
		if e.delta.IsValid(diff) {
			buf.WriteCode(e.delta.Encode(diff))
			previous = current
			e.stats.Delta++

			continue
		}

		hash := e.cache.Hash(current)
		if e.cache.Lookup(hash) == current {
			buf.WriteCode(e.cache.Code(hash))
			previous = current
			e.stats.Cache++

			continue
		}

		// Raw escape is the only path that admits new values to the cache.
		e.cache.Insert(hash, current)
		buf.WriteRaw(encoding.RawWord(current))
		previous = current
		e.stats.Raw++
	}

	if runLength != 0 {
		e.flushRun(buf, runLength)
	}

	buf.Flush()

	return buf.Words()
}

func (e *Encoder) flushRun(buf *encoding.WordBuffer, runLength int) {
	e.runScratch = e.run.AppendCodes(e.runScratch[:0], runLength)
	for _, code := range e.runScratch {
		buf.WriteCode(code)
	}
	e.stats.RunLength += runLength
}

// Stats returns the per-scheme counters of the last Encode call.
func (e *Encoder) Stats() Stats {
	return e.stats
}

// Profile returns the tag layout the encoder was constructed with.
func (e *Encoder) Profile() format.Profile {
	return e.profile
}

// Shift returns the precision drop in bits.
func (e *Encoder) Shift() int {
	return e.shifter.Shift()
}
