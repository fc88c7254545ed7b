package codec

import (
	"testing"

	"github.com/arloliu/pixo/errs"
	"github.com/arloliu/pixo/format"
	"github.com/stretchr/testify/require"
)

func TestNewEncoder_Defaults(t *testing.T) {
	encoder, err := NewEncoder()
	require.NoError(t, err)
	require.Equal(t, DefaultShift, encoder.Shift())
	require.Equal(t, DefaultProfile, encoder.Profile())
}

func TestNewEncoder_InvalidOptions(t *testing.T) {
	_, err := NewEncoder(WithShift(0))
	require.ErrorIs(t, err, errs.ErrInvalidShift)

	_, err = NewEncoder(WithShift(-3))
	require.ErrorIs(t, err, errs.ErrInvalidShift)

	_, err = NewEncoder(WithProfile(format.Profile(0x7F)))
	require.ErrorIs(t, err, errs.ErrInvalidProfile)

	_, err = NewEncoder(WithCacheHashShift(-1))
	require.ErrorIs(t, err, errs.ErrInvalidHashShift)
}

func TestEncoder_EmptyInput(t *testing.T) {
	encoder, err := NewEncoder()
	require.NoError(t, err)

	words := encoder.Encode(nil)
	require.Empty(t, words)
	require.Equal(t, Stats{}, encoder.Stats())
}

func TestEncoder_ExactWordStream(t *testing.T) {
	encoder, err := NewEncoder()
	require.NoError(t, err)

	samples := []uint16{0x0000, 0x0010, 0x0020, 0x1000, 0x1000, 0x1000}
	words := encoder.Encode(samples)

	// raw 0x0000, two +8 delta codes flushed as one chunk word before the
	// raw escape of 0x0800, then the trailing run of length 2.
	require.Equal(t, []uint16{0x8000, 0x03FF, 0x8800, 0x0002}, words)

	stats := encoder.Stats()
	require.Equal(t, Stats{RunLength: 2, Delta: 2, Cache: 0, Raw: 2}, stats)
}

func TestEncoder_StatsSumToInputLength(t *testing.T) {
	encoder, err := NewEncoder()
	require.NoError(t, err)

	samples := []uint16{
		0x0000, 0x0010, 0x0020, 0x0030, 0x0040, 0x0050, 0x0060,
		0x0100, 0x0110, 0x0120, 0x0130, 0x0140, 0x0150, 0x0160,
		0x1000, 0x1000, 0x1000, 0x1000, 0x1000, 0x1000, 0x1000,
		0x0000, 0x0002, 0x0004, 0x0006, 0x0008, 0x000A, 0x000C,
	}
	encoder.Encode(samples)

	stats := encoder.Stats()
	total := stats.RunLength + stats.Delta + stats.Cache + stats.Raw
	require.Equal(t, len(samples), total)
}

func TestEncoder_CacheHitAfterRawEscape(t *testing.T) {
	encoder, err := NewEncoder()
	require.NoError(t, err)

	// Working values 0x010A and 0x0100 land in different cache slots, and
	// their mutual diffs exceed the delta range. The second occurrence of
	// 0x010A must be served from the cache.
	samples := []uint16{0x0214, 0x0200, 0x0214}
	words := encoder.Encode(samples)

	stats := encoder.Stats()
	require.Equal(t, 2, stats.Raw)
	require.Equal(t, 1, stats.Cache)
	require.Less(t, len(words), len(samples)+1)
}

func TestEncoder_CacheCollisionEvicts(t *testing.T) {
	encoder, err := NewEncoder()
	require.NoError(t, err)

	// Working values 0x010A and 0x020A share cache slot 5. The second
	// evicts the first, so the third sample cannot cache-hit and must
	// raw-escape again.
	samples := []uint16{0x0214, 0x0414, 0x0214}
	encoder.Encode(samples)

	stats := encoder.Stats()
	require.Equal(t, 3, stats.Raw)
	require.Equal(t, 0, stats.Cache)
}

func TestEncoder_RunOnlyStream(t *testing.T) {
	encoder, err := NewEncoder()
	require.NoError(t, err)

	samples := make([]uint16, 513)
	for i := range samples {
		samples[i] = 0xFFFE
	}

	words := encoder.Encode(samples)

	// One raw escape plus the run chunks for length 512 packed into a
	// handful of words.
	require.Less(t, len(words), 4)
	require.Equal(t, 512, encoder.Stats().RunLength)
	require.Equal(t, 1, encoder.Stats().Raw)
}

func TestEncoder_NeverExpandsStructuredInput(t *testing.T) {
	encoder, err := NewEncoder()
	require.NoError(t, err)

	// Smooth gradient: every step is a small delta in the working domain.
	gradient := make([]uint16, 300)
	for i := range gradient {
		gradient[i] = uint16(i * 2)
	}
	require.Less(t, len(encoder.Encode(gradient)), len(gradient))

	// Flat region.
	flat := make([]uint16, 1000)
	for i := range flat {
		flat[i] = 0x4242
	}
	require.Less(t, len(encoder.Encode(flat)), len(flat))
}

func TestEncoder_ReusableAcrossStreams(t *testing.T) {
	encoder, err := NewEncoder()
	require.NoError(t, err)
	decoder, err := NewDecoder()
	require.NoError(t, err)

	first := []uint16{0x0214, 0x0200, 0x0214}
	second := []uint16{0x0214, 0x0214, 0x0214}

	firstWords := encoder.Encode(first)
	secondWords := encoder.Encode(second)

	decodedFirst, err := decoder.Decode(firstWords, len(first))
	require.NoError(t, err)
	require.Equal(t, first, decodedFirst)

	decodedSecond, err := decoder.Decode(secondWords, len(second))
	require.NoError(t, err)
	require.Equal(t, second, decodedSecond)
}
