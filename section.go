package las

import (
	"strings"
)

// SectionKind classifies a ~ section.
type SectionKind uint8

const (
	SectionUnknown SectionKind = iota
	SectionVersion
	SectionWell
	SectionCurves
	SectionParameters
	SectionOther
	SectionData
)

func (k SectionKind) String() string {
	switch k {
	case SectionVersion:
		return "version"
	case SectionWell:
		return "well"
	case SectionCurves:
		return "curves"
	case SectionParameters:
		return "parameters"
	case SectionOther:
		return "other"
	case SectionData:
		return "data"
	default:
		return "unknown"
	}
}

// Section is a named, ordered group of header items.
// Free-text sections (~Other) carry lines instead of items.
type Section struct {
	Name  string
	Title string
	Kind  SectionKind

	items []HeaderItem
	index map[string]int
	lines []string
}

func newSection(name, title string, kind SectionKind) *Section {
	return &Section{Name: name, Title: title, Kind: kind, index: make(map[string]int)}
}

// resolve assigns unique mnemonics and rebuilds the key index.
func (s *Section) resolve() {
	names := make([]string, len(s.items))
	for i, item := range s.items {
		names[i] = item.OriginalMnemonic
	}
	for i, name := range ResolveMnemonics(names) {
		s.items[i].Mnemonic = name
		s.index[foldKey(name)] = i
	}
}

// Get looks up an item by mnemonic. An exact match wins over a
// case-insensitive one.
func (s *Section) Get(key string) (HeaderItem, bool) {
	if s == nil {
		return HeaderItem{}, false
	}
	for _, item := range s.items {
		if item.Mnemonic == key {
			return item, true
		}
	}
	i, ok := s.index[foldKey(key)]
	if !ok {
		return HeaderItem{}, false
	}
	return s.items[i], true
}

// Value is shorthand for Get(key).Value; missing keys give Missing.
func (s *Section) Value(key string) Value {
	item, _ := s.Get(key)
	return item.Value
}

// Items returns a copy of the section's items in file order.
func (s *Section) Items() []HeaderItem {
	if s == nil {
		return nil
	}
	return append([]HeaderItem(nil), s.items...)
}

// Keys returns the resolved mnemonics in file order.
func (s *Section) Keys() []string {
	if s == nil {
		return nil
	}
	keys := make([]string, len(s.items))
	for i, item := range s.items {
		keys[i] = item.Mnemonic
	}
	return keys
}

// Len returns the number of header items.
func (s *Section) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Text returns the raw content of a free-text section.
func (s *Section) Text() string {
	if s == nil {
		return ""
	}
	return strings.Join(s.lines, "\n")
}

func foldKey(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}

// classifySection maps a header title (without the leading ~) to a section
// kind and, for LAS 3.0 data sets, the data-set name ("Log", "Core", ...).
func classifySection(title string) (name string, kind SectionKind, dataset string) {
	head := title
	assoc := ""
	if bar := strings.IndexByte(head, '|'); bar >= 0 {
		assoc = strings.TrimSpace(head[bar+1:])
		head = head[:bar]
	}
	head = strings.TrimSpace(head)
	name = head
	if fields := strings.Fields(head); len(fields) > 0 {
		name = fields[0]
	}
	upper := strings.ToUpper(name)

	if base, ok := cutSuffixFold(name, "_DEFINITION"); ok {
		return name, SectionCurves, base
	}
	if base, ok := cutSuffixFold(name, "_DATA"); ok {
		if assoc != "" {
			if def, ok := cutSuffixFold(assoc, "_DEFINITION"); ok {
				base = def
			}
		}
		return name, SectionData, base
	}
	if base, ok := cutSuffixFold(name, "_PARAMETER"); ok {
		return name, SectionParameters, base
	}

	switch {
	case upper == "":
		return name, SectionUnknown, ""
	case upper[0] == 'V':
		return "Version", SectionVersion, ""
	case upper[0] == 'W':
		return "Well", SectionWell, ""
	case upper[0] == 'C':
		return "Curves", SectionCurves, logDataSet
	case upper[0] == 'P':
		return "Parameter", SectionParameters, logDataSet
	case upper[0] == 'O':
		return "Other", SectionOther, ""
	case upper[0] == 'A':
		return "ASCII", SectionData, logDataSet
	}
	return name, SectionUnknown, ""
}

// logDataSet names the primary curve data set.
const logDataSet = "Log"

// cutSuffixFold strips an ASCII suffix from name, comparing
// case-insensitively. An index such as Core_Data[1] moves onto the base.
func cutSuffixFold(name, suffix string) (string, bool) {
	idx := ""
	if open := strings.LastIndexByte(name, '['); open > 0 && strings.HasSuffix(name, "]") {
		idx = name[open:]
		name = name[:open]
	}
	if len(name) <= len(suffix) || !strings.EqualFold(name[len(name)-len(suffix):], suffix) {
		return "", false
	}
	return name[:len(name)-len(suffix)] + idx, true
}
