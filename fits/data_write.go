package fits

import (
	"fmt"

	"github.com/robert-malhotra/go-fits/internal/binary"
)

// NewData encodes a flat value array into a data matrix with the given word
// type and axis lengths. Values are taken in storage order, axis 1 fastest.
// The array length must equal the product of the axis lengths. BITPIX 64 is
// not encodable.
func NewData(values []float64, bitpix int, axes []int) (*Data, error) {
	if !binary.ValidBitpix(bitpix) {
		return nil, fmt.Errorf("%w: BITPIX %d", ErrInvalidShape, bitpix)
	}
	if bitpix == 64 {
		return nil, ErrUnsupportedBitDepth
	}
	for i, axis := range axes {
		if axis <= 0 {
			return nil, fmt.Errorf("%w: NAXIS%d = %d", ErrInvalidShape, i+1, axis)
		}
	}

	n := numPoints(axes)
	if len(values) != n {
		return nil, fmt.Errorf("%w: %d values, shape requires %d", ErrShapeMismatch, len(values), n)
	}

	size, _ := binary.WordSize(bitpix)
	buf := make([]byte, n*size)
	for i, v := range values {
		if err := binary.EncodeWord(buf[i*size:], bitpix, v); err != nil {
			return nil, err
		}
	}
	return &Data{bitpix: bitpix, axes: append([]int(nil), axes...), buf: buf}, nil
}
