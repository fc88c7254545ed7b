// Package codec implements the pixo encoder and decoder state machines.
//
// The encoder walks a flat sequence of 16-bit samples, reduces each to the
// 15-bit working domain, and picks one of four schemes per sample in strict
// priority order: run continuation, run flush followed by bias-delta,
// recent-value cache hit, raw escape. The chosen codes are folded into
// 16-bit packed words by an encoding.WordBuffer.
//
// The decoder consumes the packed words, drains pending 5-bit codes before
// reading the next word, and mirrors every cache insertion the encoder
// performed so both sides stay in lock-step.
//
// Encoder and Decoder must be constructed with matching options; the packed
// stream carries no header, length or configuration.
package codec
