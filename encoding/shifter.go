package encoding

import "github.com/arloliu/pixo/errs"

// BitShifter moves 16-bit samples in and out of the 15-bit working domain
// by dropping a fixed number of low bits.
//
// The packed-word format carries at most 15 payload bits per word, so every
// sample loses its low shift bits. Restore returns the working sample to
// full width with those bits zeroed; this truncation is part of the format,
// not an artifact.
type BitShifter struct {
	shift uint
}

// NewBitShifter creates a BitShifter that drops the given number of low
// bits. The shift must be positive; a zero shift would leave 16 significant
// bits, which the 15-bit payload cannot represent.
func NewBitShifter(shift int) (BitShifter, error) {
	if shift <= 0 {
		return BitShifter{}, errs.ErrInvalidShift
	}

	return BitShifter{shift: uint(shift)}, nil
}

// Reduce converts a full-precision sample to the working domain.
func (s BitShifter) Reduce(value uint16) uint16 {
	return value >> s.shift
}

// Restore converts a working sample back to full width. The low shift bits
// of the result are always zero.
func (s BitShifter) Restore(value uint16) uint16 {
	return value << s.shift
}

// Shift returns the configured precision drop in bits.
func (s BitShifter) Shift() int {
	return int(s.shift)
}
