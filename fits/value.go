package fits

import "math"

// ValueKind identifies the type of a card value.
type ValueKind int

const (
	KindUndefined ValueKind = iota
	KindString
	KindLogical
	KindReal
	KindComplex
)

// String returns the kind name.
func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindLogical:
		return "logical"
	case KindReal:
		return "real"
	case KindComplex:
		return "complex"
	default:
		return "undefined"
	}
}

// Value is the typed value of a header card: a string, a logical, a real, a
// complex pair, or undefined. The zero Value is undefined. Values are
// immutable and comparable with ==.
type Value struct {
	kind    ValueKind
	str     string
	boolean bool
	re, im  float64
}

// Undefined returns the undefined value.
func Undefined() Value { return Value{} }

// StringValue returns a string value.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// LogicalValue returns a logical value.
func LogicalValue(b bool) Value { return Value{kind: KindLogical, boolean: b} }

// RealValue returns a real value.
func RealValue(f float64) Value { return Value{kind: KindReal, re: f} }

// ComplexValue returns a complex value with the given real and imaginary
// parts.
func ComplexValue(re, im float64) Value { return Value{kind: KindComplex, re: re, im: im} }

// Kind returns the value's kind.
func (v Value) Kind() ValueKind { return v.kind }

// IsUndefined reports whether the value is undefined.
func (v Value) IsUndefined() bool { return v.kind == KindUndefined }

// AsString returns the string content, if the value is a string.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

// AsLogical returns the boolean content, if the value is a logical.
func (v Value) AsLogical() (bool, bool) {
	return v.boolean, v.kind == KindLogical
}

// AsReal returns the numeric content, if the value is a real.
func (v Value) AsReal() (float64, bool) {
	return v.re, v.kind == KindReal
}

// AsComplex returns the real and imaginary parts, if the value is complex.
func (v Value) AsComplex() (re, im float64, ok bool) {
	return v.re, v.im, v.kind == KindComplex
}

// AsInt returns the value as an integer. It succeeds only for real values
// with an exact integral representation.
func (v Value) AsInt() (int, bool) {
	if v.kind != KindReal {
		return 0, false
	}
	if v.re != math.Trunc(v.re) || math.IsInf(v.re, 0) {
		return 0, false
	}
	return int(v.re), true
}

// String returns the value in its free-format serialized form, for display.
func (v Value) String() string {
	return formatValue(v)
}
