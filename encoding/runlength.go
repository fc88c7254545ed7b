package encoding

import "github.com/arloliu/pixo/format"

// RunLengthCoder encodes repeat counts of the previous working sample as a
// sequence of fixed-width tagged chunks.
//
// A run of length N is split into Width-bit groups emitted least
// significant first, each carried in one 5-bit code under the run-length
// header. The decoder reassembles the length by summing the payloads
// shifted back into place. At least one chunk is emitted for any length
// of one or more.
type RunLengthCoder struct {
	header byte
	mask   byte
	width  uint
}

// NewRunLengthCoder creates a run-length coder for the given tag parameters.
func NewRunLengthCoder(params format.SchemeParams) RunLengthCoder {
	return RunLengthCoder{
		header: params.Header,
		mask:   params.Mask,
		width:  params.Width,
	}
}

// Matches reports whether code carries the run-length tag.
func (c RunLengthCoder) Matches(code byte) bool {
	return code&^c.mask == c.header
}

// AppendCodes appends the chunk codes for a run of the given length to dst
// and returns the extended slice. A non-positive length appends nothing.
func (c RunLengthCoder) AppendCodes(dst []byte, length int) []byte {
	for length > 0 {
		dst = append(dst, c.header|byte(length)&c.mask)
		length >>= c.width
	}

	return dst
}

// Length reassembles a run length from chunk codes in emission order.
// Codes beyond the first contribute progressively higher groups; trailing
// zero-padding codes contribute nothing.
func (c RunLengthCoder) Length(codes []byte) int {
	length := 0
	shift := uint(0)
	for _, code := range codes {
		length |= int(code&c.mask) << shift
		shift += c.width
	}

	return length
}
