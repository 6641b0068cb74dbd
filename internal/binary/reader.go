// Package binary provides low-level byte-range operations for FITS record,
// block, and data-word handling.
package binary

import "errors"

// Format constants shared by the header and data regions.
const (
	// RecordSize is the fixed length of one header card image in bytes.
	RecordSize = 80

	// BlockSize is the FITS alignment unit: both the header region and the
	// data region occupy a whole number of blocks.
	BlockSize = 2880
)

// ErrShortRead is returned when fewer bytes remain than were requested.
var ErrShortRead = errors.New("short read")

// Reader provides positioned reads over an in-memory FITS buffer.
type Reader struct {
	buf []byte
	pos int
}

// NewReader creates a reader over the given buffer, positioned at offset 0.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Pos returns the current read position.
func (r *Reader) Pos() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}

// ReadBytes reads exactly n bytes from the current position.
// The returned slice aliases the underlying buffer.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.buf) {
		return nil, ErrShortRead
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadRecord reads one RecordSize-byte card image.
func (r *Reader) ReadRecord() ([]byte, error) {
	return r.ReadBytes(RecordSize)
}

// Align advances the position to the next multiple of alignment.
// If already aligned, the position is unchanged.
func (r *Reader) Align(alignment int) {
	if alignment <= 1 {
		return
	}
	if remainder := r.pos % alignment; remainder != 0 {
		r.pos += alignment - remainder
	}
}
