package fits

import (
	"fmt"

	"github.com/robert-malhotra/go-fits/internal/binary"
)

// File is one primary header and data unit.
type File struct {
	header *Header
	data   *Data
}

// Header returns the file's header.
func (f *File) Header() *Header {
	return f.header
}

// Data returns the file's data array.
func (f *File) Data() *Data {
	return f.data
}

// Decode parses a complete FITS buffer. The header is read first; the data
// region starts at the next block boundary after it and must hold exactly
// the number of bytes the header's shape declares.
func Decode(buf []byte, opts ...DecodeOption) (*File, error) {
	o := newDecodeOptions(opts)

	h, consumed, err := ParseHeader(buf)
	if err != nil {
		return nil, err
	}
	if o.checkAxes && o.expectedAxes != h.Naxis() {
		return nil, fmt.Errorf("%w: expected %d, file declares %d", ErrMismatchedNaxis, o.expectedAxes, h.Naxis())
	}

	r := binary.NewReader(buf)
	if _, err := r.ReadBytes(consumed); err != nil {
		return nil, err
	}
	r.Align(BlockSize)

	size, _ := binary.WordSize(h.Bitpix())
	want := numPoints(h.Axes()) * size
	region, err := r.ReadBytes(want)
	if err != nil {
		return nil, fmt.Errorf("%w: shape requires %d data bytes, %d available", ErrTruncatedData, want, r.Remaining())
	}

	data, err := newData(append([]byte(nil), region...), h.Bitpix(), h.Axes())
	if err != nil {
		return nil, err
	}
	return compose(h, data)
}

// Encode serializes the file: the header region right-padded with ASCII
// spaces to a block boundary, then the data region right-padded with zero
// bytes to a block boundary.
func (f *File) Encode() []byte {
	w := binary.NewWriter()
	w.WriteBytes(f.header.Encode())
	w.Pad(BlockSize, ' ')
	w.WriteBytes(f.data.buf)
	w.Pad(BlockSize, 0)
	return w.Bytes()
}

// New builds a file from a flat value array and shape. The header holds
// only the mandatory cards, or, with WithBaseHeader, the template's cards
// behind a rebuilt structural prefix.
func New(values []float64, bitpix int, axes []int, opts ...FileOption) (*File, error) {
	o := newFileOptions(opts)

	var h *Header
	var err error
	if o.base != nil {
		h, err = o.base.WithShape(bitpix, axes)
	} else {
		h, err = BasicHeader(bitpix, axes)
	}
	if err != nil {
		return nil, err
	}

	data, err := NewData(values, bitpix, axes)
	if err != nil {
		return nil, err
	}
	return compose(h, data)
}

// compose pairs a header and data array, asserting that their declared
// shapes agree element-wise.
func compose(h *Header, data *Data) (*File, error) {
	if h.Naxis() != data.Naxis() {
		return nil, fmt.Errorf("%w: header declares NAXIS=%d, data has %d axes", ErrShapeMismatch, h.Naxis(), data.Naxis())
	}
	axes := h.Axes()
	for i, axis := range data.Axes() {
		if axes[i] != axis {
			return nil, fmt.Errorf("%w: header NAXIS%d=%d, data axis is %d", ErrShapeMismatch, i+1, axes[i], axis)
		}
	}
	if h.Bitpix() != data.Bitpix() {
		return nil, fmt.Errorf("%w: header BITPIX=%d, data word type is %d", ErrShapeMismatch, h.Bitpix(), data.Bitpix())
	}
	return &File{header: h, data: data}, nil
}
