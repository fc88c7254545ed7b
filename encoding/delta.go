package encoding

import "github.com/arloliu/pixo/format"

// DeltaCoder encodes small signed differences between consecutive working
// samples into a single tagged code using a biased payload.
//
// The bias is asymmetric on purpose: a negative diff is offset by MaxValue
// and a non-negative diff by MaxValue-1, which shifts the representable
// range by one toward positive deltas. Decoding applies the exact inverse,
// so both sides must agree on the two constants; a single symmetric bias
// would corrupt the maximum positive delta.
//
// A zero diff is never valid for this scheme. A repeated sample is a run
// continuation, so the zero payload slot is reused for the delta -MaxValue
// instead of being wasted on an unreachable value.
type DeltaCoder struct {
	header   byte
	mask     byte
	maxValue int32
}

// NewDeltaCoder creates a bias-delta coder for the given tag parameters.
// The representable diff range is [-MaxValue, MaxValue] excluding zero,
// with MaxValue = 1 << (Width-1).
func NewDeltaCoder(params format.SchemeParams) DeltaCoder {
	return DeltaCoder{
		header:   params.Header,
		mask:     params.Mask,
		maxValue: int32(1) << (params.Width - 1),
	}
}

// Matches reports whether code carries the delta tag.
func (c DeltaCoder) Matches(code byte) bool {
	return code&^c.mask == c.header
}

// Diff returns the signed difference current - previous.
func (c DeltaCoder) Diff(previous, current uint16) int32 {
	return int32(current) - int32(previous)
}

// IsValid reports whether diff can be carried by this scheme.
func (c DeltaCoder) IsValid(diff int32) bool {
	if diff == 0 {
		return false
	}
	if diff < 0 {
		diff = -diff
	}

	return diff <= c.maxValue
}

// Encode maps a valid diff to its tagged code.
func (c DeltaCoder) Encode(diff int32) byte {
	var payload int32
	if diff < 0 {
		payload = diff + c.maxValue
	} else {
		payload = diff + (c.maxValue - 1)
	}

	return c.header | byte(payload)
}

// Decode recovers the signed diff from a tagged code.
func (c DeltaCoder) Decode(code byte) int32 {
	payload := int32(code & c.mask)
	if payload < c.maxValue {
		return payload - c.maxValue
	}

	return payload - (c.maxValue - 1)
}

// Apply reconstructs the current working sample from the previous one and
// a decoded diff.
func (c DeltaCoder) Apply(previous uint16, diff int32) uint16 {
	return uint16(int32(previous) + diff) //nolint:gosec
}

// MaxValue returns the magnitude bound of representable diffs.
func (c DeltaCoder) MaxValue() int32 {
	return c.maxValue
}
