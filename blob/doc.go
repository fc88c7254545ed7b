// Package blob packs multiple encoded sample planes into a single
// self-describing byte blob.
//
// Each plane (an image channel or any flat 16-bit sample stream) is run
// through the packed-word codec with a shared configuration, optionally
// compressed, and indexed by the xxHash64 of its name. The blob header
// records every codec parameter, so decoding needs nothing but the bytes:
//
//	encoder, _ := blob.NewEncoder(blob.WithCompression(format.CompressionZstd))
//	_ = encoder.AddPlane("luma", samples)
//	data, _ := encoder.Finish()
//
//	decoder, _ := blob.NewDecoder(data)
//	luma, _ := decoder.Plane("luma")
//
// The bare packed-word stream (package codec) remains headerless; this
// package is the persistence layer on top of it.
package blob
