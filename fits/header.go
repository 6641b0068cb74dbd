package fits

import (
	"fmt"
	"strings"

	"github.com/robert-malhotra/go-fits/internal/binary"
	"github.com/robert-malhotra/go-fits/internal/keyword"
)

// Header is an ordered sequence of cards. Order is semantically meaningful:
// SIMPLE leads, and a CONTINUE card extends the string card immediately
// before it. Headers are immutable; mutations return new instances.
type Header struct {
	cards []Card
}

// ParseHeader reads consecutive card images until the END card, validates
// the mandatory structural keywords, and returns the header together with
// the number of bytes consumed (END card included, block padding not).
// Trailing all-blank cards before END are dropped.
func ParseHeader(buf []byte) (*Header, int, error) {
	r := binary.NewReader(buf)
	var cards []Card
	for {
		offset := r.Pos()
		rec, err := r.ReadRecord()
		if err != nil {
			return nil, 0, &ParseError{Offset: offset, Err: ErrUnexpectedEndOfFile, Detail: "header ends before END card"}
		}
		card, err := ParseCard(rec, offset)
		if err != nil {
			return nil, 0, err
		}
		if card.Keyword() == "END" {
			break
		}
		cards = append(cards, card)
	}

	for len(cards) > 0 && cards[len(cards)-1].isBlank() {
		cards = cards[:len(cards)-1]
	}

	h := &Header{cards: cards}
	if err := h.validate(); err != nil {
		return nil, 0, err
	}
	return h, r.Pos(), nil
}

// validate enforces the mandatory-keyword invariants: exactly one SIMPLE=T
// leading the header, one BITPIX from the allowed set, one NAXIS in [0,999],
// and exactly NAXIS1..NAXISn, each a positive integer, with no extras.
func (h *Header) validate() error {
	if len(h.cards) == 0 || h.cards[0].Keyword() != "SIMPLE" {
		return &ParseError{Keyword: "SIMPLE", Err: ErrMissingMandatoryKeyword, Detail: "SIMPLE must be the first card"}
	}

	if b, err := h.uniqueLogical("SIMPLE"); err != nil {
		return err
	} else if !b {
		return h.invalidValue("SIMPLE", "must be T")
	}

	bitpix, err := h.uniqueInt("BITPIX")
	if err != nil {
		return err
	}
	if !binary.ValidBitpix(bitpix) {
		return h.invalidValue("BITPIX", fmt.Sprintf("%d is not an allowed bit depth", bitpix))
	}

	naxis, err := h.uniqueInt("NAXIS")
	if err != nil {
		return err
	}
	if naxis < 0 || naxis > 999 {
		return h.invalidValue("NAXIS", fmt.Sprintf("%d is outside [0,999]", naxis))
	}

	for i := 1; i <= naxis; i++ {
		axis, err := h.uniqueInt(fmt.Sprintf("NAXIS%d", i))
		if err != nil {
			return err
		}
		if axis <= 0 {
			return h.invalidValue(fmt.Sprintf("NAXIS%d", i), "axis length must be positive")
		}
	}

	for i, c := range h.cards {
		if n := keyword.Index(c.Keyword(), "NAXIS"); n > naxis {
			return &ParseError{
				Offset:  i * CardLength,
				Keyword: c.Keyword(),
				Err:     ErrInvalidKeywordValue,
				Detail:  fmt.Sprintf("axis index exceeds NAXIS=%d", naxis),
			}
		}
	}
	return nil
}

// uniqueInt returns the integral value of a keyword that must appear exactly
// once.
func (h *Header) uniqueInt(name string) (int, error) {
	c, err := h.uniqueCard(name)
	if err != nil {
		return 0, err
	}
	n, ok := c.Value().AsInt()
	if !ok {
		return 0, h.invalidValue(name, "value is not an integer")
	}
	return n, nil
}

// uniqueLogical returns the boolean value of a keyword that must appear
// exactly once.
func (h *Header) uniqueLogical(name string) (bool, error) {
	c, err := h.uniqueCard(name)
	if err != nil {
		return false, err
	}
	b, ok := c.Value().AsLogical()
	if !ok {
		return false, h.invalidValue(name, "value is not a logical")
	}
	return b, nil
}

func (h *Header) uniqueCard(name string) (Card, error) {
	var found Card
	count := 0
	for _, c := range h.cards {
		if c.Keyword() == name {
			if count == 0 {
				found = c
			}
			count++
		}
	}
	switch count {
	case 0:
		return Card{}, &ParseError{Keyword: name, Err: ErrMissingMandatoryKeyword, Detail: name + " is required"}
	case 1:
		return found, nil
	default:
		return Card{}, &ParseError{Keyword: name, Err: ErrRepeatedKeyword, Detail: fmt.Sprintf("%s appears %d times", name, count)}
	}
}

func (h *Header) invalidValue(name, detail string) error {
	return &ParseError{Keyword: name, Err: ErrInvalidKeywordValue, Detail: detail}
}

// Values collects the typed values of every card with the given keyword, in
// document order. String values spanning CONTINUE cards are reassembled.
// Each value is checked against the keyword's declared category; blank and
// CONTINUE keywords are not addressable.
func (h *Header) Values(name string) ([]Value, error) {
	if name == "" || name == "CONTINUE" {
		return nil, fmt.Errorf("%w: %q", ErrNotRetrievable, name)
	}

	class := keyword.Classify(name)
	var out []Value
	for i, c := range h.cards {
		if c.Keyword() != name {
			continue
		}
		v := c.Value()
		if s, ok := v.AsString(); ok {
			v = StringValue(h.resolveContinuation(i, s))
		}
		if err := checkClass(name, class, v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Value returns the first value for the keyword, reporting whether one was
// found.
func (h *Header) Value(name string) (Value, bool, error) {
	vs, err := h.Values(name)
	if err != nil {
		return Value{}, false, err
	}
	if len(vs) == 0 {
		return Value{}, false, nil
	}
	return vs[0], true, nil
}

// resolveContinuation follows the CONTINUE convention: while the string ends
// with & and the next card is a contiguous CONTINUE, the & is stripped and
// the continuation appended.
func (h *Header) resolveContinuation(i int, s string) string {
	for strings.HasSuffix(s, "&") && i+1 < len(h.cards) && h.cards[i+1].Keyword() == "CONTINUE" {
		next, _ := h.cards[i+1].Value().AsString()
		s = strings.TrimSuffix(s, "&") + next
		i++
	}
	return s
}

// checkClass verifies a value against its keyword's declared category.
// Undefined values and unclassified keywords always pass.
func checkClass(name string, class keyword.Class, v Value) error {
	if v.IsUndefined() || class == keyword.ClassUnknown {
		return nil
	}
	var ok bool
	switch class {
	case keyword.ClassInteger:
		_, ok = v.AsInt()
	case keyword.ClassReal:
		_, ok = v.AsReal()
	case keyword.ClassString:
		_, ok = v.AsString()
	case keyword.ClassLogical:
		_, ok = v.AsLogical()
	}
	if !ok {
		return fmt.Errorf("%w: keyword %q is declared %s, value is %s", ErrTypeMismatch, name, class, v.Kind())
	}
	return nil
}

// Cards returns a copy of the card sequence.
func (h *Header) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Len returns the number of cards, END excluded.
func (h *Header) Len() int {
	return len(h.cards)
}

// Bitpix returns the declared data word type. Valid on any header produced
// by this package.
func (h *Header) Bitpix() int {
	n, _ := h.scanInt("BITPIX")
	return n
}

// Naxis returns the declared number of data axes.
func (h *Header) Naxis() int {
	n, _ := h.scanInt("NAXIS")
	return n
}

// Axes returns the declared axis lengths in order, nil for NAXIS=0.
func (h *Header) Axes() []int {
	naxis := h.Naxis()
	if naxis == 0 {
		return nil
	}
	axes := make([]int, naxis)
	for i := 1; i <= naxis; i++ {
		axes[i-1], _ = h.scanInt(fmt.Sprintf("NAXIS%d", i))
	}
	return axes
}

func (h *Header) scanInt(name string) (int, bool) {
	for _, c := range h.cards {
		if c.Keyword() == name {
			return c.Value().AsInt()
		}
	}
	return 0, false
}
