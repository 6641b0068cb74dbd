package binary

import (
	"encoding/binary"
	"errors"
	"math"
)

// Data words are big-endian per the FITS standard: two's-complement signed
// integers for positive BITPIX values, IEEE-754 floats for negative ones.

// Errors for the word codec.
var (
	ErrBadBitpix       = errors.New("invalid BITPIX")
	ErrUnsupportedWord = errors.New("unsupported 64-bit integer word")
)

// ValidBitpix reports whether bitpix is one of the values the header format
// allows: 8, 16, 32, 64, -32, -64.
func ValidBitpix(bitpix int) bool {
	switch bitpix {
	case 8, 16, 32, 64, -32, -64:
		return true
	}
	return false
}

// WordSize returns the width in bytes of one data word for the given BITPIX.
// BITPIX 64 has a defined width even though its words cannot be decoded.
func WordSize(bitpix int) (int, error) {
	if !ValidBitpix(bitpix) {
		return 0, ErrBadBitpix
	}
	if bitpix < 0 {
		return -bitpix / 8, nil
	}
	return bitpix / 8, nil
}

// DecodeWord decodes the data word at the start of buf.
// 64-bit integer words are not supported and always fail.
func DecodeWord(buf []byte, bitpix int) (float64, error) {
	switch bitpix {
	case 8:
		return float64(int8(buf[0])), nil
	case 16:
		return float64(int16(binary.BigEndian.Uint16(buf))), nil
	case 32:
		return float64(int32(binary.BigEndian.Uint32(buf))), nil
	case -32:
		return float64(math.Float32frombits(binary.BigEndian.Uint32(buf))), nil
	case -64:
		return math.Float64frombits(binary.BigEndian.Uint64(buf)), nil
	case 64:
		return 0, ErrUnsupportedWord
	default:
		return 0, ErrBadBitpix
	}
}

// EncodeWord encodes v into the data word at the start of dst.
// 64-bit integer words are not supported and always fail.
func EncodeWord(dst []byte, bitpix int, v float64) error {
	switch bitpix {
	case 8:
		dst[0] = byte(int8(v))
	case 16:
		binary.BigEndian.PutUint16(dst, uint16(int16(v)))
	case 32:
		binary.BigEndian.PutUint32(dst, uint32(int32(v)))
	case -32:
		binary.BigEndian.PutUint32(dst, math.Float32bits(float32(v)))
	case -64:
		binary.BigEndian.PutUint64(dst, math.Float64bits(v))
	case 64:
		return ErrUnsupportedWord
	default:
		return ErrBadBitpix
	}
	return nil
}
