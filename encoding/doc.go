// Package encoding implements the building blocks of the pixo packed-word
// format: the precision shifter, the four per-sample coding schemes
// (run-length, bias-delta, recent-value cache, raw escape) and the word
// buffer that folds 5-bit tagged codes into 16-bit chunk words.
//
// The coders in this package are deliberately low level and perform no
// validation beyond their constructors; the codec package wires them into
// the encoder and decoder state machines and enforces configuration
// invariants such as tag disjointness.
package encoding
