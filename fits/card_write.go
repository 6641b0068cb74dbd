package fits

import (
	"math"
	"strconv"
	"strings"

	"github.com/robert-malhotra/go-fits/internal/keyword"
)

const (
	// valueColumn is the column at which fixed-format values end.
	valueColumn = 30

	// fixedValueWidth is the width of the fixed-format value field
	// (columns 11 through 30).
	fixedValueWidth = valueColumn - KeywordLength - 2

	// realWidthLimit caps the serialized form of a real number.
	realWidthLimit = 20

	// minCommentChars is the smallest comment worth keeping when a record
	// overflows; shorter leftovers are dropped instead.
	minCommentChars = 6
)

// NewCard encodes a keyword, value and optional comment into a card. An
// empty comment means no comment. If the comment cannot fit the 80-byte
// record it is truncated or dropped; this is not an error but is reported
// through the handler installed with WithWarningHandler.
func NewCard(kw string, v Value, comment string, opts ...CardOption) (Card, error) {
	o := newCardOptions(opts)

	front, err := encodeFront(kw)
	if err != nil {
		return Card{}, err
	}
	if err := checkPrintable(kw, v, comment); err != nil {
		return Card{}, err
	}

	switch kw {
	case "END":
		if !v.IsUndefined() || comment != "" {
			return Card{}, &EncodeError{Keyword: kw, Err: ErrInvalidKeywordValue, Detail: "END carries no value or comment"}
		}
		return Card{image: padRecord("END"), keyword: "END"}, nil

	case "", "HISTORY", "COMMENT":
		if !v.IsUndefined() {
			return Card{}, &EncodeError{Keyword: kw, Err: ErrInvalidKeywordValue, Detail: "commentary keywords carry no structured value"}
		}
		body := front + comment
		if len(body) > CardLength {
			return Card{}, &EncodeError{Keyword: kw, Err: ErrRecordTooLong}
		}
		return Card{
			image:      padRecord(body),
			keyword:    kw,
			comment:    comment,
			hasComment: comment != "",
		}, nil

	case "CONTINUE":
		if v.Kind() != KindString {
			return Card{}, &EncodeError{Keyword: kw, Err: ErrInvalidKeywordValue, Detail: "CONTINUE carries a string value"}
		}
	}

	if !isFinite(v) {
		return Card{}, &EncodeError{Keyword: kw, Err: ErrInvalidKeywordValue, Detail: "non-finite number"}
	}
	natural := formatValue(v)
	if len(front)+len(natural) > CardLength {
		return Card{}, &EncodeError{Keyword: kw, Err: ErrRecordTooLong}
	}

	body, encodedComment, hasComment := composeBody(front, natural, fixedFormat(v, natural), comment, kw, o)
	return Card{
		image:      padRecord(body),
		keyword:    kw,
		value:      v,
		comment:    encodedComment,
		hasComment: hasComment,
	}, nil
}

// encodeFront builds the keyword field plus value indicator: "KEYWORD = "
// for standard keywords, two blank columns for special ones, and the long
// form for HIERARCH keywords.
func encodeFront(kw string) (string, error) {
	if keyword.IsHierarch(kw) {
		front := "HIERARCH  " + kw[len(keyword.HierarchPrefix):] + "= "
		if len(front) > CardLength {
			return "", &EncodeError{Keyword: kw, Err: ErrHierarchTooLong}
		}
		return front, nil
	}
	if !keyword.IsValid(kw) {
		return "", &EncodeError{Keyword: kw, Err: ErrInvalidKeyword}
	}
	padded := kw + strings.Repeat(" ", KeywordLength-len(kw))
	if keyword.IsCommentary(kw) || kw == "CONTINUE" {
		return padded + "  ", nil
	}
	return padded + "= ", nil
}

// fixedFormat returns the value text aligned to the fixed-format field, or
// the natural text when it does not fit. Strings are left-justified,
// everything else right-justified, ending at column 30.
func fixedFormat(v Value, natural string) string {
	if len(natural) > fixedValueWidth {
		return natural
	}
	pad := strings.Repeat(" ", fixedValueWidth-len(natural))
	if v.Kind() == KindString {
		return natural + pad
	}
	return pad + natural
}

// composeBody appends the comment to the value field, degrading in order:
// full fixed format, fixed padding dropped, comment truncated with an
// ellipsis, comment dropped.
func composeBody(front, natural, fixed, comment, kw string, o *cardOptions) (body, encoded string, has bool) {
	if comment == "" {
		if len(front)+len(fixed) > CardLength {
			return front + natural, "", false
		}
		return front + fixed, "", false
	}

	if body := front + fixed + " / " + comment; len(body) <= CardLength {
		return body, comment, true
	}
	if body := front + natural + " / " + comment; len(body) <= CardLength {
		return body, comment, true
	}

	avail := CardLength - len(front) - len(natural) - len(" / ") - len("...")
	if avail >= minCommentChars {
		truncated := comment[:avail] + "..."
		o.warn(Warning{Keyword: kw, Message: "comment truncated to fit record"})
		return front + natural + " / " + truncated, truncated, true
	}

	o.warn(Warning{Keyword: kw, Message: "comment dropped: record too long"})
	if len(front)+len(fixed) <= CardLength {
		return front + fixed, "", false
	}
	return front + natural, "", false
}

// isFinite reports whether numeric content is encodable; Inf and NaN have
// no FITS representation.
func isFinite(v Value) bool {
	switch v.Kind() {
	case KindReal:
		return !math.IsInf(v.re, 0) && !math.IsNaN(v.re)
	case KindComplex:
		return !math.IsInf(v.re, 0) && !math.IsNaN(v.re) &&
			!math.IsInf(v.im, 0) && !math.IsNaN(v.im)
	}
	return true
}

// checkPrintable rejects string and comment content outside printable ASCII.
func checkPrintable(kw string, v Value, comment string) error {
	if s, ok := v.AsString(); ok && !isPrintable(s) {
		return &EncodeError{Keyword: kw, Err: ErrNonASCIIValue, Detail: "string value"}
	}
	if !isPrintable(comment) {
		return &EncodeError{Keyword: kw, Err: ErrNonASCIIValue, Detail: "comment"}
	}
	return nil
}

func isPrintable(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}

// padRecord right-pads to the full card length with spaces.
func padRecord(s string) string {
	return s + strings.Repeat(" ", CardLength-len(s))
}

// formatValue renders a value in its natural serialized form.
func formatValue(v Value) string {
	switch v.kind {
	case KindString:
		return "'" + strings.ReplaceAll(v.str, "'", "''") + "'"
	case KindLogical:
		if v.boolean {
			return "T"
		}
		return "F"
	case KindReal:
		return formatReal(v.re)
	case KindComplex:
		return "(" + formatReal(v.re) + "," + formatReal(v.im) + ")"
	default:
		return ""
	}
}

// formatReal renders a real in canonical decimal or exponent form, capped at
// realWidthLimit characters. Oversized representations keep their exponent
// and lose mantissa digits instead.
func formatReal(f float64) string {
	s := strconv.FormatFloat(f, 'G', -1, 64)
	if len(s) <= realWidthLimit {
		return s
	}
	if i := strings.IndexByte(s, 'E'); i >= 0 {
		exp := s[i:]
		keep := realWidthLimit - len(exp)
		if keep < 1 {
			keep = 1
		}
		return s[:keep] + exp
	}
	return s[:realWidthLimit]
}
