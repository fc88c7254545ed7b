package encoding

import "github.com/arloliu/pixo/format"

// PackCodes folds three 5-bit codes into one chunk word, first in the low
// bits. The top bit stays clear, which is what distinguishes a chunk word
// from a raw word on the wire.
func PackCodes(first, second, third byte) uint16 {
	return uint16(first)&format.CodeMask |
		(uint16(second)&format.CodeMask)<<format.CodeBits |
		(uint16(third)&format.CodeMask)<<(2*format.CodeBits)
}

// UnpackCodes splits a chunk word back into its three 5-bit codes.
func UnpackCodes(word uint16) (first, second, third byte) {
	first = byte(word & format.CodeMask)
	second = byte((word >> format.CodeBits) & format.CodeMask)
	third = byte((word >> (2 * format.CodeBits)) & format.CodeMask)

	return first, second, third
}

// RawWord tags a working sample as a raw escape word.
func RawWord(value uint16) uint16 {
	return format.RawWordFlag | value
}

// RawValue extracts the working sample from a raw escape word.
func RawValue(word uint16) uint16 {
	return word & format.WordPayloadMask
}

// IsRawWord reports whether word is a raw escape rather than a chunk word.
func IsRawWord(word uint16) bool {
	return word&format.RawWordFlag != 0
}

// WordBuffer accumulates the packed output stream of the encoder.
//
// Raw words pass through whole; 5-bit codes are held pending and packed
// three at a time into chunk words. Writing a raw word while codes are
// pending flushes them first, padding the missing slots with zero codes,
// so the decoder always sees complete chunk words in emission order.
type WordBuffer struct {
	words      []uint16
	pending    [format.CodesPerWord]byte
	pendingLen int
}

// NewWordBuffer creates a WordBuffer with capacity for the given number of
// words. The encoder emits at most one word per input sample, so the input
// length is a safe capacity.
func NewWordBuffer(capacity int) *WordBuffer {
	return &WordBuffer{
		words: make([]uint16, 0, capacity),
	}
}

// WriteRaw appends a raw word, flushing any pending codes first.
func (b *WordBuffer) WriteRaw(word uint16) {
	if b.pendingLen > 0 {
		b.Flush()
	}

	b.words = append(b.words, word)
}

// WriteCode appends a 5-bit code to the pending batch, packing a chunk
// word once three codes have accumulated.
func (b *WordBuffer) WriteCode(code byte) {
	b.pending[b.pendingLen] = code
	b.pendingLen++

	if b.pendingLen == format.CodesPerWord {
		b.words = append(b.words, PackCodes(b.pending[0], b.pending[1], b.pending[2]))
		b.pendingLen = 0
	}
}

// Flush packs any remaining pending codes into a final chunk word, padding
// the empty slots with zero codes. It is a no-op when nothing is pending.
func (b *WordBuffer) Flush() {
	if b.pendingLen == 0 {
		return
	}

	for i := b.pendingLen; i < format.CodesPerWord; i++ {
		b.pending[i] = 0
	}
	b.words = append(b.words, PackCodes(b.pending[0], b.pending[1], b.pending[2]))
	b.pendingLen = 0
}

// Words returns the packed words written so far. Pending codes are not
// included until Flush is called.
func (b *WordBuffer) Words() []uint16 {
	return b.words
}

// Len returns the number of complete packed words.
func (b *WordBuffer) Len() int {
	return len(b.words)
}
