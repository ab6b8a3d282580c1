package las

import (
	"strings"
)

// rawLine holds the untyped fields of a header line.
type rawLine struct {
	name         string
	unit         string
	value        string
	description  string
	format       string
	associations string
}

// ReadLine tokenizes a single header line into a HeaderItem.
//
// The line is split on the first period (name/unit) and the first colon after
// the unit (value/description). A trailing "| associations" and "{format}" are
// stripped from the description. The value is coerced with ParseValue using
// the format as hint. The returned item's Mnemonic is the raw name; collision
// resolution happens per section.
func ReadLine(line string) (HeaderItem, error) {
	raw, err := splitHeaderLine(line)
	if err != nil {
		return HeaderItem{}, err
	}
	return raw.item()
}

func (r rawLine) item() (HeaderItem, error) {
	value, err := ParseValue(r.value, r.format)
	if err != nil {
		return HeaderItem{}, err
	}
	return HeaderItem{
		Mnemonic:         r.name,
		OriginalMnemonic: r.name,
		Unit:             r.unit,
		Value:            value,
		Format:           r.format,
		Description:      r.description,
		Associations:     r.associations,
	}, nil
}

// splitHeaderLine performs the separator scan without value coercion.
func splitHeaderLine(line string) (rawLine, error) {
	text := strings.TrimSpace(line)

	colon := findValueColon(text, 0)
	if colon < 0 {
		return rawLine{}, &MalformedLineError{Text: line, Reason: "no ':' separating value and description"}
	}

	// A leading period belongs to the mnemonic only if there is no other
	// period before the colon; otherwise it is skipped (".DEPT.M : ...").
	start := 0
	if strings.HasPrefix(text, ".") && strings.Contains(text[1:colon], ".") {
		start = 1
	}
	dot := strings.IndexByte(text[start:], '.')
	if dot < 0 || start+dot > colon {
		return rawLine{}, &MalformedLineError{Text: line, Reason: "no '.' separating mnemonic and unit"}
	}
	dot += start

	var r rawLine
	r.name = strings.TrimSpace(text[start:dot])

	rest := text[dot+1:]
	unitEnd := strings.IndexAny(rest, " \t:")
	if unitEnd < 0 {
		unitEnd = len(rest)
	}
	r.unit = rest[:unitEnd]
	rest = rest[unitEnd:]

	colon = findValueColon(rest, 0)
	if colon < 0 {
		return rawLine{}, &MalformedLineError{Text: line, Reason: "no ':' after unit"}
	}
	r.value = strings.TrimSpace(rest[:colon])
	r.description, r.format, r.associations = splitDescription(rest[colon+1:])
	return r, nil
}

// findValueColon returns the index of the value/description colon.
// Colons with digits on both sides (12:30) are skipped while a later colon exists.
func findValueColon(s string, from int) int {
	first := -1
	for i := from; i < len(s); i++ {
		if s[i] != ':' {
			continue
		}
		if first < 0 {
			first = i
		}
		if i > 0 && i+1 < len(s) && isDigit(s[i-1]) && isDigit(s[i+1]) {
			continue
		}
		return i
	}
	return first
}

// splitDescription separates the LAS 3.0 "| associations" and "{format}" suffixes.
func splitDescription(s string) (descr, format, assoc string) {
	if bar := strings.LastIndexByte(s, '|'); bar >= 0 {
		assoc = strings.TrimSpace(s[bar+1:])
		s = s[:bar]
	}
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "}") {
		if open := strings.LastIndexByte(s, '{'); open >= 0 {
			format = strings.TrimSpace(s[open+1 : len(s)-1])
			s = s[:open]
		}
	}
	return strings.TrimSpace(s), format, assoc
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
