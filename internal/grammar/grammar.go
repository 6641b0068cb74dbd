// Package grammar implements the text grammar of a card's value field: the
// portion of a card image after the keyword and value indicator. A value is
// one of a quoted string, a logical, a real number, a complex pair, or
// blank, optionally followed by a "/"-introduced comment.
package grammar

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Kind identifies the parsed value alternative.
type Kind int

const (
	Blank Kind = iota
	String
	Logical
	Real
	Complex
)

// Parsed is the decoded remainder of a card image.
type Parsed struct {
	Kind       Kind
	Str        string
	Bool       bool
	Re, Im     float64
	Comment    string
	HasComment bool
}

// cardLexer tokenizes the value field. Strings are single tokens so that
// embedded spaces, slashes and doubled quotes survive intact; the comment
// rule swallows everything from the first top-level slash to the end.
var cardLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `'(?:[^']|'')*'`},
	{Name: "Number", Pattern: `[+-]?[0-9]+(?:\.[0-9]*)?(?:[DE][+-]?[0-9]+)?`},
	{Name: "Logical", Pattern: `[TF]`},
	{Name: "Comment", Pattern: `/.*`},
	{Name: "Punct", Pattern: `[(),]`},
	{Name: "Whitespace", Pattern: ` +`},
})

type remainder struct {
	Value   *valueNode `parser:"@@?"`
	Comment *string    `parser:"@Comment?"`
}

type valueNode struct {
	Str     *string      `parser:"  @String"`
	Logical *string      `parser:"| @Logical"`
	Complex *complexNode `parser:"| @@"`
	Number  *string      `parser:"| @Number"`
}

type complexNode struct {
	Re string `parser:"'(' @Number"`
	Im string `parser:"',' @Number ')'"`
}

var cardParser = participle.MustBuild[remainder](
	participle.Lexer(cardLexer),
	participle.Elide("Whitespace"),
)

// ParseRemainder decodes the value field of a card image. The input is the
// card text after the keyword field and value indicator.
func ParseRemainder(rest string) (Parsed, error) {
	if strings.TrimRight(rest, " ") == "" {
		return Parsed{Kind: Blank}, nil
	}

	node, err := cardParser.ParseString("", rest)
	if err != nil {
		return Parsed{}, err
	}

	var p Parsed
	switch {
	case node.Value == nil:
		p.Kind = Blank
	case node.Value.Str != nil:
		p.Kind = String
		p.Str = decodeString(*node.Value.Str)
	case node.Value.Logical != nil:
		p.Kind = Logical
		p.Bool = *node.Value.Logical == "T"
	case node.Value.Complex != nil:
		p.Kind = Complex
		if p.Re, err = parseNumber(node.Value.Complex.Re); err != nil {
			return Parsed{}, err
		}
		if p.Im, err = parseNumber(node.Value.Complex.Im); err != nil {
			return Parsed{}, err
		}
	case node.Value.Number != nil:
		p.Kind = Real
		if p.Re, err = parseNumber(*node.Value.Number); err != nil {
			return Parsed{}, err
		}
	}

	if node.Comment != nil {
		p.HasComment = true
		p.Comment = decodeComment(*node.Comment)
	}
	return p, nil
}

// decodeString strips the outer quotes, undoubles embedded quotes and
// applies the padding rules: trailing spaces are never significant, leading
// spaces are dropped, and a string of only spaces collapses to one space.
func decodeString(tok string) string {
	content := strings.ReplaceAll(tok[1:len(tok)-1], "''", "'")
	trimmed := strings.Trim(content, " ")
	if trimmed == "" && content != "" {
		return " "
	}
	return trimmed
}

// parseNumber converts a FITS numeric literal, normalizing the Fortran-style
// D exponent marker to E before conversion.
func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, "D", "E"), 64)
}

// decodeComment drops the leading slash and the single space that
// conventionally follows it, then right-trims padding.
func decodeComment(tok string) string {
	c := strings.TrimPrefix(tok, "/")
	c = strings.TrimPrefix(c, " ")
	return strings.TrimRight(c, " ")
}
