// Package keyword validates and classifies FITS header keywords.
//
// Classification uses static lookup tables: exact reserved names plus small
// structured patterns for indexed keywords like NAXISn or CDELTn. The tables
// drive value type checking on lookup and decide which keywords the header
// mutation API refuses to touch.
package keyword

import "strings"

// Class is the declared value category of a reserved keyword.
type Class int

const (
	ClassUnknown Class = iota // no declared category; any value type allowed
	ClassInteger
	ClassReal
	ClassString
	ClassLogical
)

// String returns the category name.
func (c Class) String() string {
	switch c {
	case ClassInteger:
		return "integer"
	case ClassReal:
		return "real"
	case ClassString:
		return "string"
	case ClassLogical:
		return "logical"
	default:
		return "unknown"
	}
}

// HierarchPrefix introduces long-form keywords. A long keyword is stored as
// the literal prefix, one space, then the extended name.
const HierarchPrefix = "HIERARCH "

// MaxLength is the width of the standard keyword field in a card image.
const MaxLength = 8

// exact maps reserved keyword names to their value category.
var exact = map[string]Class{
	"BITPIX":   ClassInteger,
	"BLANK":    ClassInteger,
	"EXTLEVEL": ClassInteger,
	"EXTVER":   ClassInteger,
	"GCOUNT":   ClassInteger,
	"NAXIS":    ClassInteger,
	"PCOUNT":   ClassInteger,
	"TFIELDS":  ClassInteger,
	"THEAP":    ClassInteger,

	"BSCALE":  ClassReal,
	"BZERO":   ClassReal,
	"DATAMAX": ClassReal,
	"DATAMIN": ClassReal,
	"EPOCH":   ClassReal,
	"EQUINOX": ClassReal,

	"AUTHOR":   ClassString,
	"BUNIT":    ClassString,
	"EXTNAME":  ClassString,
	"INSTRUME": ClassString,
	"OBJECT":   ClassString,
	"OBSERVER": ClassString,
	"ORIGIN":   ClassString,
	"REFERENC": ClassString,
	"TELESCOP": ClassString,
	"XTENSION": ClassString,

	"BLOCKED": ClassLogical,
	"EXTEND":  ClassLogical,
	"GROUPS":  ClassLogical,
	"SIMPLE":  ClassLogical,
}

// indexed maps keyword bases that take a positive decimal index suffix.
var indexed = map[string]Class{
	"NAXIS": ClassInteger,
	"TBCOL": ClassInteger,

	"CDELT": ClassReal,
	"CROTA": ClassReal,
	"CRPIX": ClassReal,
	"CRVAL": ClassReal,
	"PSCAL": ClassReal,
	"PZERO": ClassReal,
	"TSCAL": ClassReal,
	"TZERO": ClassReal,

	"CTYPE": ClassString,
	"PTYPE": ClassString,
	"TDIM":  ClassString,
	"TDISP": ClassString,
	"TFORM": ClassString,
	"TTYPE": ClassString,
	"TUNIT": ClassString,
}

// Classify returns the declared value category of name, or ClassUnknown for
// keywords with no reserved meaning.
func Classify(name string) Class {
	if c, ok := exact[name]; ok {
		return c
	}
	for base, c := range indexed {
		if isIndexOf(name, base) {
			return c
		}
	}
	// DATE, DATE-OBS and other DATE- variants are all strings.
	if strings.HasPrefix(name, "DATE") {
		return ClassString
	}
	return ClassUnknown
}

// isIndexOf reports whether name is base followed by a positive decimal
// index with no leading zero.
func isIndexOf(name, base string) bool {
	if !strings.HasPrefix(name, base) || len(name) == len(base) {
		return false
	}
	rest := name[len(base):]
	if rest[0] == '0' {
		return false
	}
	for i := 0; i < len(rest); i++ {
		if rest[i] < '0' || rest[i] > '9' {
			return false
		}
	}
	return true
}

// Index returns the decimal index of an indexed keyword, or 0 if name is not
// base followed by an index.
func Index(name, base string) int {
	if !isIndexOf(name, base) {
		return 0
	}
	n := 0
	for _, c := range name[len(base):] {
		n = n*10 + int(c-'0')
	}
	return n
}

// isBaseChar reports whether c may appear in a standard keyword.
func isBaseChar(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' || c == '-'
}

// IsValid reports whether name is a well-formed keyword: at most eight
// characters from [A-Z0-9_-], or a HIERARCH long form. The empty name is the
// blank commentary keyword and is valid.
func IsValid(name string) bool {
	if IsHierarch(name) {
		return hierarchRestValid(name[len(HierarchPrefix):])
	}
	if len(name) > MaxLength {
		return false
	}
	for i := 0; i < len(name); i++ {
		if !isBaseChar(name[i]) {
			return false
		}
	}
	return true
}

// IsHierarch reports whether name is a HIERARCH long-form keyword.
func IsHierarch(name string) bool {
	return strings.HasPrefix(name, HierarchPrefix) && len(name) > len(HierarchPrefix)
}

// hierarchRestValid checks the extended part of a long keyword: non-empty
// words of keyword characters separated by single spaces.
func hierarchRestValid(rest string) bool {
	if rest == "" || rest[0] == ' ' || rest[len(rest)-1] == ' ' {
		return false
	}
	prevSpace := false
	for i := 0; i < len(rest); i++ {
		if rest[i] == ' ' {
			if prevSpace {
				return false
			}
			prevSpace = true
			continue
		}
		prevSpace = false
		if !isBaseChar(rest[i]) {
			return false
		}
	}
	return true
}

// IsCommentary reports whether name is a commentary keyword: these carry raw
// trailing text instead of a structured value.
func IsCommentary(name string) bool {
	switch name {
	case "", "HISTORY", "COMMENT", "END":
		return true
	}
	return false
}

// IsStructural reports whether name defines the file structure and is
// therefore excluded from general header mutation. END is included: it is
// synthesized on serialization and never stored.
func IsStructural(name string) bool {
	switch name {
	case "SIMPLE", "BITPIX", "NAXIS", "CONTINUE", "END":
		return true
	}
	return isIndexOf(name, "NAXIS")
}
