package fits

import (
	"errors"
	"fmt"
)

// Errors reported while parsing buffers.
var (
	ErrMalformedCard           = errors.New("malformed card")
	ErrUnexpectedEndOfFile     = errors.New("unexpected end of file")
	ErrMissingMandatoryKeyword = errors.New("missing mandatory keyword")
	ErrInvalidKeywordValue     = errors.New("invalid keyword value")
	ErrRepeatedKeyword         = errors.New("repeated keyword")
	ErrMismatchedNaxis         = errors.New("mismatched NAXIS")
	ErrTruncatedData           = errors.New("truncated data")
)

// Errors reported on header lookup and mutation.
var (
	ErrTypeMismatch      = errors.New("value type mismatch")
	ErrNotRetrievable    = errors.New("keyword not retrievable")
	ErrKeywordNotMutable = errors.New("keyword not mutable")
)

// Errors reported on data access.
var (
	ErrOutOfBounds         = errors.New("coordinate out of bounds")
	ErrArityMismatch       = errors.New("coordinate arity mismatch")
	ErrShapeMismatch       = errors.New("shape mismatch")
	ErrUnsupportedBitDepth = errors.New("unsupported 64-bit integer data")
)

// Errors reported while constructing cards and headers.
var (
	ErrInvalidShape    = errors.New("invalid shape")
	ErrInvalidKeyword  = errors.New("invalid keyword")
	ErrHierarchTooLong = errors.New("HIERARCH keyword too long")
	ErrNonASCIIValue   = errors.New("non-ASCII printable content")
	ErrRecordTooLong   = errors.New("record too long")
)

// ParseError wraps a parse failure with the byte offset and, when known, the
// keyword of the offending record. It unwraps to one of the sentinel errors
// above, so callers can test with errors.Is.
type ParseError struct {
	Offset  int   // byte offset of the record in the input buffer
	Keyword string
	Detail  string
	Err     error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
	if e.Keyword != "" {
		msg += fmt.Sprintf(" (keyword %q)", e.Keyword)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// EncodeError wraps a construction failure with the keyword being encoded.
type EncodeError struct {
	Keyword string
	Detail  string
	Err     error
}

func (e *EncodeError) Error() string {
	msg := e.Err.Error()
	if e.Keyword != "" {
		msg += fmt.Sprintf(" (keyword %q)", e.Keyword)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *EncodeError) Unwrap() error { return e.Err }
