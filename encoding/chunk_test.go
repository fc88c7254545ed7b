package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackCodes(t *testing.T) {
	require.Equal(t, uint16(0x7FFF), PackCodes(0x1F, 0x1F, 0x1F))
	require.Equal(t, uint16(0x0000), PackCodes(0, 0, 0))
	require.Equal(t, uint16(0x0001), PackCodes(1, 0, 0))
	require.Equal(t, uint16(0x0020), PackCodes(0, 1, 0))
	require.Equal(t, uint16(0x0400), PackCodes(0, 0, 1))
}

func TestUnpackCodes(t *testing.T) {
	first, second, third := UnpackCodes(0x7FFF)
	require.Equal(t, byte(0x1F), first)
	require.Equal(t, byte(0x1F), second)
	require.Equal(t, byte(0x1F), third)

	first, second, third = UnpackCodes(0x5555)
	require.Equal(t, byte(0x15), first)
	require.Equal(t, byte(0x0A), second)
	require.Equal(t, byte(0x15), third)
}

func TestPackUnpackRoundTrip(t *testing.T) {
	for _, codes := range [][3]byte{
		{0, 0, 0},
		{1, 2, 3},
		{0x1F, 0, 0x1F},
		{0x0A, 0x15, 0x1F},
	} {
		word := PackCodes(codes[0], codes[1], codes[2])
		require.False(t, IsRawWord(word))

		first, second, third := UnpackCodes(word)
		require.Equal(t, codes, [3]byte{first, second, third})
	}
}

func TestRawWord(t *testing.T) {
	require.True(t, IsRawWord(0xAAAA))
	require.False(t, IsRawWord(0x2AAA))

	require.Equal(t, uint16(0x2AAA), RawValue(0xAAAA))
	require.Equal(t, uint16(0xAAAA), RawWord(0x2AAA))
	require.True(t, IsRawWord(RawWord(0x0000)))
}

func TestWordBuffer_PacksThreeCodes(t *testing.T) {
	buf := NewWordBuffer(4)

	buf.WriteCode(0x15)
	buf.WriteCode(0x0A)
	require.Equal(t, 0, buf.Len()) // still pending

	buf.WriteCode(0x15)
	require.Equal(t, 1, buf.Len())
	require.Equal(t, []uint16{0x5555}, buf.Words())
}

func TestWordBuffer_RawFlushesPending(t *testing.T) {
	buf := NewWordBuffer(4)

	buf.WriteCode(0x1F)
	buf.WriteCode(0x1F)
	buf.WriteRaw(0x7FFF)
	buf.Flush()

	// Two pending codes pad to (0x1F, 0x1F, 0x00) before the raw word.
	require.Equal(t, 2, buf.Len())
	require.Equal(t, []uint16{0x03FF, 0x7FFF}, buf.Words())
}

func TestWordBuffer_FlushPadsRemainder(t *testing.T) {
	buf := NewWordBuffer(4)

	buf.WriteCode(0x01)
	buf.Flush()
	require.Equal(t, []uint16{0x0001}, buf.Words())

	// Flush with nothing pending is a no-op.
	buf.Flush()
	require.Equal(t, 1, buf.Len())
}

func TestWordBuffer_RawOnly(t *testing.T) {
	buf := NewWordBuffer(2)

	buf.WriteRaw(RawWord(0x1234))
	buf.WriteRaw(RawWord(0x0000))
	buf.Flush()

	require.Equal(t, []uint16{0x9234, 0x8000}, buf.Words())
}
