package fits

import (
	"fmt"

	"github.com/robert-malhotra/go-fits/internal/binary"
	"github.com/robert-malhotra/go-fits/internal/keyword"
)

// Encode serializes every card image followed by a synthesized END card.
// Block padding is the file's responsibility, not the header's.
func (h *Header) Encode() []byte {
	w := binary.NewWriter()
	for _, c := range h.cards {
		w.WriteBytes(c.Image())
	}
	w.WriteBytes([]byte(padRecord("END")))
	return w.Bytes()
}

// Set returns a new header with a freshly encoded card for the keyword. The
// occurrence option addresses repeated keywords: replacing an existing
// occurrence also removes any CONTINUE cards chained to it and splices the
// new card in at the same position; an occurrence past the last match
// appends. The returned index is the occurrence the card ended up at.
// Structural keywords cannot be set this way.
func (h *Header) Set(name string, v Value, comment string, opts ...SetOption) (*Header, int, error) {
	o := newSetOptions(opts)
	if keyword.IsStructural(name) {
		return nil, 0, fmt.Errorf("%w: %q", ErrKeywordNotMutable, name)
	}

	card, err := NewCard(name, v, comment, o.card...)
	if err != nil {
		return nil, 0, err
	}

	matches := h.occurrences(name)
	if o.occurrence >= len(matches) {
		cards := make([]Card, 0, len(h.cards)+1)
		cards = append(cards, h.cards...)
		cards = append(cards, card)
		return &Header{cards: cards}, len(matches), nil
	}

	pos := matches[o.occurrence]
	span := h.chainSpan(pos)
	cards := make([]Card, 0, len(h.cards)-span+1)
	cards = append(cards, h.cards[:pos]...)
	cards = append(cards, card)
	cards = append(cards, h.cards[pos+span:]...)
	return &Header{cards: cards}, o.occurrence, nil
}

// Delete returns a new header without the addressed occurrence of the
// keyword, including any CONTINUE cards chained to it. Deleting an
// occurrence that does not exist is a no-op. Structural keywords cannot be
// removed.
func (h *Header) Delete(name string, occurrence int) (*Header, error) {
	if keyword.IsStructural(name) {
		return nil, fmt.Errorf("%w: %q", ErrKeywordNotMutable, name)
	}

	matches := h.occurrences(name)
	if occurrence < 0 || occurrence >= len(matches) {
		return h, nil
	}

	pos := matches[occurrence]
	span := h.chainSpan(pos)
	cards := make([]Card, 0, len(h.cards)-span)
	cards = append(cards, h.cards[:pos]...)
	cards = append(cards, h.cards[pos+span:]...)
	return &Header{cards: cards}, nil
}

// occurrences returns the positions of every card with the given keyword.
func (h *Header) occurrences(name string) []int {
	var idx []int
	for i, c := range h.cards {
		if c.Keyword() == name {
			idx = append(idx, i)
		}
	}
	return idx
}

// chainSpan counts the card at pos plus the contiguous CONTINUE cards
// following it.
func (h *Header) chainSpan(pos int) int {
	span := 1
	for pos+span < len(h.cards) && h.cards[pos+span].Keyword() == "CONTINUE" {
		span++
	}
	return span
}

// WithShape returns a new header whose structural cards are rebuilt at the
// front, in mandated order, from the given bit depth and axis lengths. All
// other cards are carried over unchanged, preserving relative order.
func (h *Header) WithShape(bitpix int, axes []int) (*Header, error) {
	cards, err := structuralCards(bitpix, axes)
	if err != nil {
		return nil, err
	}
	for _, c := range h.cards {
		if isShapeCard(c.Keyword()) {
			continue
		}
		cards = append(cards, c)
	}
	return &Header{cards: cards}, nil
}

// BasicHeader returns a header holding only the mandatory structural cards
// for the given shape.
func BasicHeader(bitpix int, axes []int) (*Header, error) {
	cards, err := structuralCards(bitpix, axes)
	if err != nil {
		return nil, err
	}
	return &Header{cards: cards}, nil
}

// isShapeCard reports whether the keyword belongs to the structural prefix
// rebuilt by WithShape.
func isShapeCard(name string) bool {
	switch name {
	case "SIMPLE", "BITPIX", "NAXIS":
		return true
	}
	return keyword.Index(name, "NAXIS") > 0
}

// structuralCards builds SIMPLE, BITPIX, NAXIS and NAXISn cards, validating
// the requested shape.
func structuralCards(bitpix int, axes []int) ([]Card, error) {
	if !binary.ValidBitpix(bitpix) {
		return nil, fmt.Errorf("%w: BITPIX %d", ErrInvalidShape, bitpix)
	}
	if len(axes) > 999 {
		return nil, fmt.Errorf("%w: %d axes", ErrInvalidShape, len(axes))
	}
	for i, axis := range axes {
		if axis <= 0 {
			return nil, fmt.Errorf("%w: NAXIS%d = %d", ErrInvalidShape, i+1, axis)
		}
	}

	cards := make([]Card, 0, 3+len(axes))
	add := func(name string, v Value, comment string) error {
		c, err := NewCard(name, v, comment)
		if err != nil {
			return err
		}
		cards = append(cards, c)
		return nil
	}

	if err := add("SIMPLE", LogicalValue(true), "file conforms to FITS standard"); err != nil {
		return nil, err
	}
	if err := add("BITPIX", RealValue(float64(bitpix)), "number of bits per data pixel"); err != nil {
		return nil, err
	}
	if err := add("NAXIS", RealValue(float64(len(axes))), "number of data axes"); err != nil {
		return nil, err
	}
	for i, axis := range axes {
		name := fmt.Sprintf("NAXIS%d", i+1)
		if err := add(name, RealValue(float64(axis)), fmt.Sprintf("length of data axis %d", i+1)); err != nil {
			return nil, err
		}
	}
	return cards, nil
}
