// Package fits provides a pure Go codec for FITS files: the astronomy
// standard container pairing an ASCII header of fixed-width 80-character
// cards with a binary N-dimensional numeric array, both padded to 2880-byte
// blocks.
//
// The package handles a single primary header and data unit. Raw bytes are
// the entire boundary: [Decode] parses an in-memory buffer into a [File],
// and [File.Encode] serializes one back to spec-exact, block-padded bytes.
// [Open] and [File.WriteFile] are thin filesystem conveniences over that
// boundary.
//
// All types are immutable value objects after construction. Header mutation
// is copy-on-write: [Header.Set], [Header.Delete] and [Header.WithShape]
// return new headers and never modify the receiver, so instances may be
// shared freely across goroutines.
//
// Table extensions, multi-HDU traversal, checksums, tile compression and
// 64-bit integer data values are out of scope; BITPIX 64 is accepted as a
// header value but any attempt to decode or encode its data words fails
// with [ErrUnsupportedBitDepth].
package fits
