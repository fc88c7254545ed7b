package pixo

import (
	"math/rand"
	"testing"

	"github.com/arloliu/pixo/blob"
	"github.com/arloliu/pixo/codec"
	"github.com/arloliu/pixo/errs"
	"github.com/arloliu/pixo/format"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	samples := make([]uint16, 1024)
	value := uint16(0x0800)
	for i := range samples {
		samples[i] = value
		value += 2
	}

	words, err := Encode(samples)
	require.NoError(t, err)
	require.LessOrEqual(t, len(words), len(samples)+1)

	restored, err := Decode(words, len(samples))
	require.NoError(t, err)
	require.Equal(t, samples, restored)
}

func TestEncodeDecode_PrecisionDrop(t *testing.T) {
	samples := []uint16{0x0001, 0x0003, 0x7FFF, 0xFFFF}

	words, err := Encode(samples)
	require.NoError(t, err)

	restored, err := Decode(words, len(samples))
	require.NoError(t, err)
	for i, want := range samples {
		require.Equal(t, want&0xFFFE, restored[i], "sample %d", i)
	}
}

func TestEncodeDecode_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	samples := make([]uint16, 4096)
	for i := range samples {
		samples[i] = uint16(rng.Intn(1 << 16))
	}

	words, err := Encode(samples)
	require.NoError(t, err)

	restored, err := Decode(words, len(samples))
	require.NoError(t, err)
	for i, want := range samples {
		require.Equal(t, want&0xFFFE, restored[i], "sample %d", i)
	}
}

func TestDecode_Truncated(t *testing.T) {
	words, err := Encode([]uint16{1, 2, 3, 4})
	require.NoError(t, err)

	_, err = Decode(words[:1], 4)
	require.ErrorIs(t, err, errs.ErrTruncatedStream)
}

func TestNewEncoder_CustomOptions(t *testing.T) {
	encoder, err := NewEncoder(
		codec.WithShift(4),
		codec.WithProfile(format.ProfileCacheWide),
	)
	require.NoError(t, err)

	decoder, err := NewDecoder(
		codec.WithShift(4),
		codec.WithProfile(format.ProfileCacheWide),
	)
	require.NoError(t, err)

	samples := []uint16{0x1000, 0x1010, 0x1020, 0x1030, 0x1030, 0x1030}
	words := encoder.Encode(samples)

	restored, err := decoder.Decode(words, len(samples))
	require.NoError(t, err)
	for i, want := range samples {
		require.Equal(t, want&0xFFF0, restored[i], "sample %d", i)
	}
}

func TestBlob_RoundTrip(t *testing.T) {
	luma := make([]uint16, 256)
	chroma := make([]uint16, 256)
	for i := range luma {
		luma[i] = uint16(0x0100 + i*4)
		chroma[i] = uint16(0x4000 + i*2)
	}

	encoder, err := NewBlobEncoder(blob.WithCompression(format.CompressionS2))
	require.NoError(t, err)
	require.NoError(t, encoder.AddPlane("luma", luma))
	require.NoError(t, encoder.AddPlane("chroma", chroma))

	data, err := encoder.Finish()
	require.NoError(t, err)

	decoder, err := NewBlobDecoder(data)
	require.NoError(t, err)
	require.Equal(t, 2, decoder.Count())

	gotLuma, err := decoder.Plane("luma")
	require.NoError(t, err)
	require.Equal(t, luma, gotLuma)

	gotChroma, err := decoder.PlaneByID(PlaneID("chroma"))
	require.NoError(t, err)
	require.Equal(t, chroma, gotChroma)
}

func TestPlaneID_Deterministic(t *testing.T) {
	require.Equal(t, PlaneID("luma"), PlaneID("luma"))
	require.NotEqual(t, PlaneID("luma"), PlaneID("chroma"))
}
