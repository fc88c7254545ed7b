// Package errs defines the sentinel errors returned by pixo.
//
// All errors are plain sentinel values created with errors.New, suitable
// for matching with errors.Is. Callers that need additional context wrap
// them with fmt.Errorf("%w: ...").
package errs

import "errors"

// Codec construction errors.
var (
	// ErrInvalidShift is returned when a codec is constructed with a
	// non-positive precision shift. The packed-word payload is 15 bits
	// wide, so at least one low bit must be dropped from 16-bit samples.
	ErrInvalidShift = errors.New("precision shift must be positive")

	// ErrInvalidProfile is returned when a codec or blob is constructed
	// with an unknown tag profile.
	ErrInvalidProfile = errors.New("invalid tag profile")

	// ErrInvalidHashShift is returned when the cache hash shift is negative.
	ErrInvalidHashShift = errors.New("cache hash shift must not be negative")

	// ErrTagOverlap is returned when the configured 5-bit tag spaces of the
	// run-length, delta and cache schemes are not mutually disjoint.
	// Overlapping tags silently corrupt decoding, so construction fails.
	ErrTagOverlap = errors.New("scheme tag patterns overlap")
)

// Decode errors.
var (
	// ErrTruncatedStream is returned when the packed stream ends before the
	// declared sample count has been reconstructed.
	ErrTruncatedStream = errors.New("truncated packed stream")

	// ErrSampleOverflow is returned when the packed stream decodes to more
	// samples than the declared count, which indicates a corrupt stream or
	// a mismatched count.
	ErrSampleOverflow = errors.New("packed stream exceeds declared sample count")
)

// Blob container errors.
var (
	// ErrInvalidBlobSize is returned when a blob is too small to contain a
	// complete header and index section.
	ErrInvalidBlobSize = errors.New("invalid blob size")

	// ErrInvalidMagic is returned when a blob does not start with the pixo
	// magic number.
	ErrInvalidMagic = errors.New("invalid blob magic")

	// ErrUnsupportedVersion is returned when a blob declares a format
	// version this library does not understand.
	ErrUnsupportedVersion = errors.New("unsupported blob version")

	// ErrInvalidCompression is returned when a blob declares an unknown
	// compression type.
	ErrInvalidCompression = errors.New("invalid compression type")

	// ErrInvalidPlaneOffset is returned when an index entry points outside
	// the blob payload section.
	ErrInvalidPlaneOffset = errors.New("invalid plane payload offset")

	// ErrNoPlanesAdded is returned by Finish when no planes were added.
	ErrNoPlanesAdded = errors.New("no planes added")

	// ErrPlaneAlreadyAdded is returned when a plane name is added twice.
	ErrPlaneAlreadyAdded = errors.New("plane already added")

	// ErrPlaneIDCollision is returned when two distinct plane names hash to
	// the same 64-bit plane ID.
	ErrPlaneIDCollision = errors.New("plane ID collision")

	// ErrPlaneNotFound is returned when the requested plane does not exist
	// in the blob.
	ErrPlaneNotFound = errors.New("plane not found")

	// ErrTooManyPlanes is returned when more than MaxPlaneCount planes are
	// added to a single blob.
	ErrTooManyPlanes = errors.New("too many planes")
)
