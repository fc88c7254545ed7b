// Package endian provides byte order utilities for binary encoding and
// decoding.
//
// It combines the ByteOrder and AppendByteOrder interfaces of the standard
// encoding/binary package into a single EndianEngine interface, so blob
// serialization can both read fixed-width fields and append them without
// intermediate buffers.
//
// Pixo blobs are little-endian on the wire; GetLittleEndianEngine is what
// the blob encoder and decoder use. The big-endian engine exists for
// callers that exchange packed words with big-endian producers.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface for convenient byte order operations.
//
// binary.LittleEndian and binary.BigEndian both satisfy this interface.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
