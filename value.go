package las

import (
	"math"
	"strconv"
	"strings"
)

// ParseValue converts a raw header or sample string to a typed Value.
//
// When format is a date template (tokens YYYY, YY, MMM, MM, DD, hh, mm, ss)
// the raw string must match it or a *DateParseError is returned. Otherwise the
// string is tried as a base-10 integer, then as a finite float, and finally
// returned unchanged as text. An empty string is Missing.
func ParseValue(raw string, format string) (Value, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Missing, nil
	}

	if fields, ok := compileDateFormat(format); ok {
		t, err := parseDate(s, format, fields)
		if err != nil {
			return Missing, err
		}
		return TimeValue(t), nil
	}

	return parseScalar(s), nil
}

// parseScalar applies the numeric-then-text fallback.
func parseScalar(s string) Value {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return IntValue(i)
	}
	if f, ok := parseFloat(s); ok {
		return FloatValue(f)
	}
	return TextValue(s)
}

// parseFloat accepts plain decimal and exponent notation only.
// Hex literals, digit separators and values overflowing to ±Inf are rejected.
func parseFloat(s string) (float64, bool) {
	if strings.ContainsAny(s, "xXpP_") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// FormatValue renders v so that ParseValue(FormatValue(v, format), format) is equivalent to v.
func FormatValue(v Value, format string) string {
	switch v.kind {
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		s := strconv.FormatFloat(v.f, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eEnN") {
			s += ".0"
		}
		return s
	case KindDateTime:
		if fields, ok := compileDateFormat(format); ok {
			return formatDate(v.t, fields)
		}
		return v.t.Format("2006-01-02T15:04:05")
	case KindText:
		return v.s
	}
	return ""
}
