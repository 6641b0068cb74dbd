package fits

import (
	"strings"

	"github.com/robert-malhotra/go-fits/internal/binary"
	"github.com/robert-malhotra/go-fits/internal/grammar"
	"github.com/robert-malhotra/go-fits/internal/keyword"
)

// Format constants.
const (
	// CardLength is the fixed width of one header card image in bytes.
	CardLength = binary.RecordSize

	// BlockSize is the padding unit for the header and data regions.
	BlockSize = binary.BlockSize

	// KeywordLength is the width of the keyword field in a card image.
	KeywordLength = keyword.MaxLength
)

// Card is one 80-character keyword record: the verbatim image plus its
// decoded keyword, value and optional comment. Cards are immutable.
type Card struct {
	image      string
	keyword    string
	value      Value
	comment    string
	hasComment bool
}

// Image returns the verbatim 80-byte record.
func (c Card) Image() []byte {
	return []byte(c.image)
}

// Keyword returns the card's keyword. Long keywords keep their
// "HIERARCH " prefix.
func (c Card) Keyword() string {
	return c.keyword
}

// Value returns the card's typed value. Commentary cards carry an undefined
// value; their text is reported by Comment.
func (c Card) Value() Value {
	return c.value
}

// Comment returns the card's comment and whether one is present.
func (c Card) Comment() (string, bool) {
	return c.comment, c.hasComment
}

// isBlank reports whether the card is entirely empty: the blank keyword
// with no value and no text.
func (c Card) isBlank() bool {
	return c.keyword == "" && c.value.IsUndefined() && c.comment == ""
}

// ParseCard decodes one 80-byte card image. The offset is the record's byte
// position in the enclosing buffer and is carried in errors.
func ParseCard(image []byte, offset int) (Card, error) {
	if len(image) != CardLength {
		return Card{}, &ParseError{Offset: offset, Err: ErrMalformedCard, Detail: "card image is not 80 bytes"}
	}
	for _, b := range image {
		if b < 0x20 || b > 0x7E {
			return Card{}, &ParseError{Offset: offset, Err: ErrMalformedCard, Detail: "non-printable byte in card image"}
		}
	}

	s := string(image)
	kw := strings.TrimRight(s[:KeywordLength], " ")

	switch {
	case keyword.IsCommentary(kw):
		return parseCommentary(s, kw), nil

	case kw == "HIERARCH":
		return parseHierarch(s, offset)

	case kw == "CONTINUE":
		card, err := parseValued(s, kw, s[KeywordLength:], offset)
		if err != nil {
			return Card{}, err
		}
		if card.value.Kind() != KindString {
			return Card{}, &ParseError{Offset: offset, Keyword: kw, Err: ErrMalformedCard, Detail: "CONTINUE value is not a string"}
		}
		return card, nil

	default:
		if !keyword.IsValid(kw) {
			return Card{}, &ParseError{Offset: offset, Keyword: kw, Err: ErrMalformedCard, Detail: "invalid keyword field"}
		}
		// Without the "= " indicator the remainder is plain commentary text.
		if s[KeywordLength:KeywordLength+2] != "= " {
			return parseCommentary(s, kw), nil
		}
		return parseValued(s, kw, s[KeywordLength+2:], offset)
	}
}

// parseCommentary decodes a commentary record: the remainder is raw trailing
// text. Legacy files sometimes carry a stray "= " after HISTORY or COMMENT;
// it is skipped.
func parseCommentary(s, kw string) Card {
	rest := s[KeywordLength:]
	rest = strings.TrimPrefix(rest, "= ")
	text := strings.Trim(rest, " ")
	return Card{
		image:      s,
		keyword:    kw,
		value:      Undefined(),
		comment:    text,
		hasComment: text != "",
	}
}

// parseHierarch recovers the long keyword of a HIERARCH record by re-scanning
// forward to the value indicator, then decodes the remainder normally.
func parseHierarch(s string, offset int) (Card, error) {
	idx := strings.Index(s, "= ")
	if idx < KeywordLength {
		return Card{}, &ParseError{Offset: offset, Keyword: "HIERARCH", Err: ErrMalformedCard, Detail: "HIERARCH record has no value indicator"}
	}
	long := strings.Trim(s[len("HIERARCH"):idx], " ")
	if long == "" {
		return Card{}, &ParseError{Offset: offset, Keyword: "HIERARCH", Err: ErrMalformedCard, Detail: "HIERARCH record has no extended keyword"}
	}
	kw := keyword.HierarchPrefix + long
	if !keyword.IsValid(kw) {
		return Card{}, &ParseError{Offset: offset, Keyword: kw, Err: ErrMalformedCard, Detail: "invalid extended keyword"}
	}
	return parseValued(s, kw, s[idx+2:], offset)
}

// parseValued decodes the value field of a card through the value grammar.
func parseValued(s, kw, rest string, offset int) (Card, error) {
	p, err := grammar.ParseRemainder(rest)
	if err != nil {
		return Card{}, &ParseError{Offset: offset, Keyword: kw, Err: ErrMalformedCard, Detail: err.Error()}
	}
	return Card{
		image:      s,
		keyword:    kw,
		value:      valueFromParsed(p),
		comment:    p.Comment,
		hasComment: p.HasComment,
	}, nil
}

// valueFromParsed converts a grammar result to a Value.
func valueFromParsed(p grammar.Parsed) Value {
	switch p.Kind {
	case grammar.String:
		return StringValue(p.Str)
	case grammar.Logical:
		return LogicalValue(p.Bool)
	case grammar.Real:
		return RealValue(p.Re)
	case grammar.Complex:
		return ComplexValue(p.Re, p.Im)
	default:
		return Undefined()
	}
}
