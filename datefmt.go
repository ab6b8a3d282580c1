package las

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// dateField is one element of a date template: either a field token or a literal separator.
type dateField struct {
	token   string
	literal string
}

// dateTokens are matched longest first so MMM wins over MM and YYYY over YY.
var dateTokens = []string{"YYYY", "MMM", "YY", "MM", "DD", "hh", "mm", "ss"}

var monthAbbrev = map[string]time.Month{
	"JAN": time.January, "FEB": time.February, "MAR": time.March,
	"APR": time.April, "MAY": time.May, "JUN": time.June,
	"JUL": time.July, "AUG": time.August, "SEP": time.September,
	"OCT": time.October, "NOV": time.November, "DEC": time.December,
}

// compileDateFormat splits a template such as "MMM-DD-YYYY" into fields.
// It returns false when the hint is not a date template (e.g. "F13.4").
func compileDateFormat(format string) ([]dateField, bool) {
	format = strings.TrimSpace(format)
	if format == "" {
		return nil, false
	}

	var fields []dateField
	hasToken := false
	for i := 0; i < len(format); {
		matched := ""
		for _, tok := range dateTokens {
			if strings.HasPrefix(format[i:], tok) {
				matched = tok
				break
			}
		}
		if matched != "" {
			fields = append(fields, dateField{token: matched})
			hasToken = true
			i += len(matched)
			continue
		}

		c := format[i]
		if isAlnum(c) && c != 'T' {
			return nil, false
		}
		if n := len(fields); n > 0 && fields[n-1].token == "" {
			fields[n-1].literal += string(c)
		} else {
			fields = append(fields, dateField{literal: string(c)})
		}
		i++
	}
	return fields, hasToken
}

// IsDateFormat reports whether a {format} hint is a date/time template.
func IsDateFormat(format string) bool {
	_, ok := compileDateFormat(format)
	return ok
}

// parseDate parses raw using the field order of a compiled template.
func parseDate(raw, format string, fields []dateField) (time.Time, error) {
	fail := func(reason string, args ...any) (time.Time, error) {
		return time.Time{}, &DateParseError{Value: raw, Format: format, Reason: fmt.Sprintf(reason, args...)}
	}

	year, month, day := 1, 1, 1
	var hour, minute, second int
	s := strings.TrimSpace(raw)

	for _, f := range fields {
		if f.token == "" {
			if !strings.HasPrefix(s, f.literal) {
				return fail("expected %q at %q", f.literal, s)
			}
			s = s[len(f.literal):]
			continue
		}

		if f.token == "MMM" {
			if len(s) < 3 {
				return fail("missing month name")
			}
			m, ok := monthAbbrev[strings.ToUpper(s[:3])]
			if !ok {
				return fail("unknown month %q", s[:3])
			}
			month = int(m)
			s = s[3:]
			continue
		}

		maxDigits := 2
		if f.token == "YYYY" {
			maxDigits = 4
		}
		n := 0
		for n < len(s) && n < maxDigits && s[n] >= '0' && s[n] <= '9' {
			n++
		}
		if n == 0 {
			return fail("missing %s", f.token)
		}
		v, _ := strconv.Atoi(s[:n])
		s = s[n:]

		switch f.token {
		case "YYYY":
			year = v
		case "YY":
			// Two-digit years pivot at 1970 like POSIX strptime %y.
			if v < 70 {
				year = 2000 + v
			} else {
				year = 1900 + v
			}
		case "MM":
			month = v
		case "DD":
			day = v
		case "hh":
			hour = v
		case "mm":
			minute = v
		case "ss":
			second = v
		}
	}
	if s != "" {
		return fail("unexpected trailing %q", s)
	}

	if month < 1 || month > 12 {
		return fail("month %d out of range", month)
	}
	if day < 1 || day > daysIn(time.Month(month), year) {
		return fail("day %d out of range for month %d", day, month)
	}
	if hour > 23 || minute > 59 || second > 59 {
		return fail("time %02d:%02d:%02d out of range", hour, minute, second)
	}
	return time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC), nil
}

// formatDate renders t with a compiled template.
func formatDate(t time.Time, fields []dateField) string {
	var b strings.Builder
	for _, f := range fields {
		switch f.token {
		case "":
			b.WriteString(f.literal)
		case "YYYY":
			fmt.Fprintf(&b, "%04d", t.Year())
		case "YY":
			fmt.Fprintf(&b, "%02d", t.Year()%100)
		case "MMM":
			b.WriteString(strings.ToUpper(t.Month().String()[:3]))
		case "MM":
			fmt.Fprintf(&b, "%02d", int(t.Month()))
		case "DD":
			fmt.Fprintf(&b, "%02d", t.Day())
		case "hh":
			fmt.Fprintf(&b, "%02d", t.Hour())
		case "mm":
			fmt.Fprintf(&b, "%02d", t.Minute())
		case "ss":
			fmt.Fprintf(&b, "%02d", t.Second())
		}
	}
	return b.String()
}

// isoLayouts are tried for data columns without a date template.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseISOTime(s string) (time.Time, bool) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func daysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
