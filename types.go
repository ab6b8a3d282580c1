package las

import (
	"math"
	"strings"
	"time"
)

// Kind identifies which payload a Value carries.
type Kind uint8

const (
	KindMissing Kind = iota
	KindInteger
	KindFloat
	KindDateTime
	KindText
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindInteger:
		return "int"
	case KindFloat:
		return "float"
	case KindDateTime:
		return "datetime"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Value is a typed header or sample value.
type Value struct {
	kind Kind
	i    int64
	f    float64
	t    time.Time
	s    string
}

// Missing is the empty value.
var Missing = Value{}

// IntValue wraps an integer.
func IntValue(i int64) Value { return Value{kind: KindInteger, i: i} }

// FloatValue wraps a float.
func FloatValue(f float64) Value { return Value{kind: KindFloat, f: f} }

// TimeValue wraps a date-time.
func TimeValue(t time.Time) Value { return Value{kind: KindDateTime, t: t} }

// TextValue wraps a string.
func TextValue(s string) Value { return Value{kind: KindText, s: s} }

// Kind returns the payload kind.
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether the value is empty.
func (v Value) IsMissing() bool { return v.kind == KindMissing }

// Int returns the integer payload.
func (v Value) Int() (int64, bool) {
	return v.i, v.kind == KindInteger
}

// Float returns the value as a float. Integers are converted.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInteger:
		return float64(v.i), true
	}
	return math.NaN(), false
}

// Time returns the date-time payload.
func (v Value) Time() (time.Time, bool) {
	return v.t, v.kind == KindDateTime
}

// Text returns the string payload.
func (v Value) Text() (string, bool) {
	return v.s, v.kind == KindText
}

// String renders the value without a format hint.
func (v Value) String() string {
	return FormatValue(v, "")
}

// Equal reports whether two values have the same kind and payload.
// Float NaN values compare equal to each other.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindInteger:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f || (math.IsNaN(v.f) && math.IsNaN(o.f))
	case KindDateTime:
		return v.t.Equal(o.t)
	case KindText:
		return v.s == o.s
	}
	return true
}

// HeaderItem is one tokenized header line.
type HeaderItem struct {
	Mnemonic         string
	OriginalMnemonic string
	Unit             string
	Value            Value
	Format           string
	Description      string
	Associations     string
}

// String reassembles the item in the standard MNEM.UNIT VALUE : DESCR form.
func (h HeaderItem) String() string {
	var b strings.Builder
	b.WriteString(h.OriginalMnemonic)
	b.WriteByte('.')
	b.WriteString(h.Unit)
	b.WriteByte(' ')
	b.WriteString(FormatValue(h.Value, h.Format))
	b.WriteString(" : ")
	b.WriteString(h.Description)
	if h.Format != "" {
		b.WriteString(" {")
		b.WriteString(h.Format)
		b.WriteByte('}')
	}
	if h.Associations != "" {
		b.WriteString(" | ")
		b.WriteString(h.Associations)
	}
	return b.String()
}
