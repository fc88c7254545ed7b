// Package compress provides the optional byte-level compression applied to
// serialized plane payloads inside pixo blobs.
//
// The packed-word codec already removes most sample-level redundancy, but
// its output keeps word-level structure (repeated chunk words in flat image
// regions, clustered raw escapes) that general-purpose compressors shrink
// further. Each plane payload is compressed independently so planes can be
// decoded without touching their neighbors.
//
// Available codecs: None (pass-through), Zstd, S2 and LZ4. The pure-Go
// klauspost zstd implementation is the default; building with the
// cgo_zstd tag switches to valyala/gozstd.
package compress
