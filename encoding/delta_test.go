package encoding

import (
	"testing"

	"github.com/arloliu/pixo/format"
	"github.com/stretchr/testify/require"
)

func newTestDeltaCoder() DeltaCoder {
	// Reference profile: header 0x10, mask 0x0F, width 4, MaxValue 8.
	return NewDeltaCoder(format.ProfileDeltaWide.Delta())
}

func TestDeltaCoder_Matches(t *testing.T) {
	coder := newTestDeltaCoder()

	require.False(t, coder.Matches(0x00))
	require.False(t, coder.Matches(0x08))
	require.True(t, coder.Matches(0x10))
	require.True(t, coder.Matches(0x18))
	require.True(t, coder.Matches(0x1F))
}

func TestDeltaCoder_IsValid(t *testing.T) {
	coder := newTestDeltaCoder()
	require.Equal(t, int32(8), coder.MaxValue())

	// Zero is never a delta; a repeated sample is a run continuation.
	require.False(t, coder.IsValid(0))

	require.True(t, coder.IsValid(1))
	require.True(t, coder.IsValid(-1))
	require.True(t, coder.IsValid(8))
	require.True(t, coder.IsValid(-8))
	require.False(t, coder.IsValid(9))
	require.False(t, coder.IsValid(-9))
}

func TestDeltaCoder_EncodeNegativeThree(t *testing.T) {
	coder := newTestDeltaCoder()

	previous := uint16(0x0100)
	current := uint16(0x0100 - 3)

	diff := coder.Diff(previous, current)
	require.Equal(t, int32(-3), diff)
	require.True(t, coder.IsValid(diff))

	code := coder.Encode(diff)
	require.Equal(t, byte(0x15), code)

	require.Equal(t, int32(-3), coder.Decode(code))
	require.Equal(t, current, coder.Apply(previous, coder.Decode(code)))
}

func TestDeltaCoder_RoundTripAllValidDiffs(t *testing.T) {
	coder := newTestDeltaCoder()

	for diff := int32(-8); diff <= 8; diff++ {
		if diff == 0 {
			continue
		}

		code := coder.Encode(diff)
		require.True(t, coder.Matches(code), "diff %d", diff)
		require.Equal(t, diff, coder.Decode(code), "diff %d", diff)
	}
}

func TestDeltaCoder_AsymmetricBias(t *testing.T) {
	coder := newTestDeltaCoder()

	// The negative and non-negative bias constants differ by one. The
	// extreme payloads must map to the extreme diffs on both sides.
	require.Equal(t, int32(-8), coder.Decode(coder.Encode(-8)))
	require.Equal(t, int32(8), coder.Decode(coder.Encode(8)))
	require.Equal(t, byte(0x10), coder.Encode(-8))
	require.Equal(t, byte(0x1F), coder.Encode(8))
}

func TestDeltaCoder_NarrowProfile(t *testing.T) {
	coder := NewDeltaCoder(format.ProfileCacheWide.Delta())
	require.Equal(t, int32(4), coder.MaxValue())

	for diff := int32(-4); diff <= 4; diff++ {
		if diff == 0 {
			continue
		}
		require.Equal(t, diff, coder.Decode(coder.Encode(diff)), "diff %d", diff)
	}

	require.False(t, coder.IsValid(5))
	require.False(t, coder.IsValid(-5))
}
