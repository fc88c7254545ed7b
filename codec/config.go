package codec

import (
	"github.com/arloliu/pixo/errs"
	"github.com/arloliu/pixo/format"
	"github.com/arloliu/pixo/internal/options"
)

const (
	// DefaultShift is the default precision drop in bits.
	DefaultShift = 1

	// DefaultCacheHashShift is the default right shift applied to a working
	// sample before masking it into a cache slot index.
	DefaultCacheHashShift = 1

	// DefaultProfile is the default tag layout.
	DefaultProfile = format.ProfileDeltaWide
)

// config holds the construction-time parameters shared by Encoder and
// Decoder. Both sides of a stream must be built from identical parameters;
// none of them are carried in the packed stream.
type config struct {
	shift     int
	hashShift uint
	profile   format.Profile
}

// Option configures an Encoder or Decoder at construction time.
type Option = options.Option[*config]

// WithShift sets the precision drop in bits. Samples are right-shifted by
// this amount into the 15-bit working domain, and the low bits are zero
// after decoding. The shift must be positive.
func WithShift(shift int) Option {
	return options.New(func(c *config) error {
		if shift <= 0 {
			return errs.ErrInvalidShift
		}
		c.shift = shift

		return nil
	})
}

// WithProfile selects the 5-bit tag layout. Encoder and decoder instances
// must use the same profile.
func WithProfile(profile format.Profile) Option {
	return options.New(func(c *config) error {
		if !profile.IsValid() {
			return errs.ErrInvalidProfile
		}
		c.profile = profile

		return nil
	})
}

// WithCacheHashShift sets the right shift used by the recent-value cache
// hash. It must not be negative and must match between encoder and decoder.
func WithCacheHashShift(shift int) Option {
	return options.New(func(c *config) error {
		if shift < 0 {
			return errs.ErrInvalidHashShift
		}
		c.hashShift = uint(shift)

		return nil
	})
}

func newConfig(opts ...Option) (*config, error) {
	cfg := &config{
		shift:     DefaultShift,
		hashShift: DefaultCacheHashShift,
		profile:   DefaultProfile,
	}

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if err := validateTagSpaces(cfg.profile); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validateTagSpaces checks that no 5-bit code belongs to more than one of
// the run-length, delta and cache schemes. Overlapping tag spaces would
// silently corrupt decoding, so construction fails instead.
func validateTagSpaces(profile format.Profile) error {
	schemes := []format.SchemeParams{
		profile.RunLength(),
		profile.Delta(),
		profile.Cache(),
	}

	for code := byte(0); code < 1<<format.CodeBits; code++ {
		owners := 0
		for _, s := range schemes {
			if s.Matches(code) {
				owners++
			}
		}
		if owners > 1 {
			return errs.ErrTagOverlap
		}
	}

	return nil
}
