package fits

import (
	"errors"
	"fmt"

	"github.com/robert-malhotra/go-fits/internal/binary"
)

// Data is the binary N-dimensional numeric array of a FITS file. Axes are
// indexed 1..NAXIS in declared order, with axis 1 varying fastest in
// storage. Data is immutable after construction.
type Data struct {
	bitpix int
	axes   []int
	buf    []byte
}

// newData wraps a raw data region, validating that its length matches the
// declared shape exactly.
func newData(raw []byte, bitpix int, axes []int) (*Data, error) {
	size, err := binary.WordSize(bitpix)
	if err != nil {
		return nil, fmt.Errorf("%w: BITPIX %d", ErrInvalidShape, bitpix)
	}
	want := numPoints(axes) * size
	if len(raw) != want {
		return nil, fmt.Errorf("%w: %d data bytes, shape requires %d", ErrShapeMismatch, len(raw), want)
	}
	return &Data{bitpix: bitpix, axes: append([]int(nil), axes...), buf: raw}, nil
}

// numPoints is the number of data points for the given axis lengths: the
// product of all lengths, or zero when there are no axes.
func numPoints(axes []int) int {
	if len(axes) == 0 {
		return 0
	}
	n := 1
	for _, axis := range axes {
		n *= axis
	}
	return n
}

// Bitpix returns the data word type.
func (d *Data) Bitpix() int {
	return d.bitpix
}

// Naxis returns the number of axes.
func (d *Data) Naxis() int {
	return len(d.axes)
}

// Axes returns a copy of the axis lengths in declared order.
func (d *Data) Axes() []int {
	return append([]int(nil), d.axes...)
}

// Len returns the total number of data points.
func (d *Data) Len() int {
	return numPoints(d.axes)
}

// Raw returns a copy of the raw data bytes, unpadded.
func (d *Data) Raw() []byte {
	return append([]byte(nil), d.buf...)
}

// At decodes the data word at the given 1-based coordinates, one per axis.
func (d *Data) At(coords ...int) (float64, error) {
	if len(coords) != len(d.axes) {
		return 0, fmt.Errorf("%w: got %d coordinates for %d axes", ErrArityMismatch, len(coords), len(d.axes))
	}
	if d.Len() == 0 {
		return 0, fmt.Errorf("%w: data array is empty", ErrOutOfBounds)
	}

	offset, stride := 0, 1
	for i, c := range coords {
		if c < 1 || c > d.axes[i] {
			return 0, fmt.Errorf("%w: coordinate %d on axis %d (length %d)", ErrOutOfBounds, c, i+1, d.axes[i])
		}
		offset += (c - 1) * stride
		stride *= d.axes[i]
	}
	return d.decodeAt(offset)
}

// decodeAt decodes the word at a linear point index.
func (d *Data) decodeAt(index int) (float64, error) {
	size, _ := binary.WordSize(d.bitpix)
	v, err := binary.DecodeWord(d.buf[index*size:], d.bitpix)
	if errors.Is(err, binary.ErrUnsupportedWord) {
		return 0, ErrUnsupportedBitDepth
	}
	return v, err
}

// Points returns a fresh iterator over every data point in storage order:
// axis 1 fastest, incrementing with carry into the higher axes. Each call
// restarts the traversal from the first point.
func (d *Data) Points() *PointIterator {
	return &PointIterator{d: d}
}

// PointIterator walks a data array point by point. Use Next to advance,
// then Coords and Value for the current point; check Err after exhaustion.
type PointIterator struct {
	d      *Data
	coords []int
	index  int
	value  float64
	err    error
}

// Next advances to the next point. It returns false when the traversal is
// exhausted or a decode error occurred.
func (it *PointIterator) Next() bool {
	if it.err != nil || it.index >= it.d.Len() {
		return false
	}

	if it.coords == nil {
		it.coords = make([]int, len(it.d.axes))
		for i := range it.coords {
			it.coords[i] = 1
		}
	} else {
		for i := range it.coords {
			it.coords[i]++
			if it.coords[i] <= it.d.axes[i] {
				break
			}
			it.coords[i] = 1
		}
	}

	v, err := it.d.decodeAt(it.index)
	if err != nil {
		it.err = err
		return false
	}
	it.value = v
	it.index++
	return true
}

// Coords returns a copy of the current point's 1-based coordinates.
func (it *PointIterator) Coords() []int {
	return append([]int(nil), it.coords...)
}

// Value returns the current point's value.
func (it *PointIterator) Value() float64 {
	return it.value
}

// Err returns the decode error that stopped the traversal, if any.
func (it *PointIterator) Err() error {
	return it.err
}
