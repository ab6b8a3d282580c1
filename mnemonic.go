package las

import (
	"strconv"
	"strings"
)

// UnknownMnemonic replaces empty mnemonics.
const UnknownMnemonic = "UNKNOWN"

// ResolveMnemonics returns unique names for one section, preserving order.
//
// A name that occurs once is kept as is. A name that occurs two or more
// times is numbered on every occurrence: NAME:1, NAME:2, ... Empty names are
// treated as UNKNOWN. Bracket-indexed names such as GR[0] are distinct from
// their plain prefix, so GR and GR[0] never collide.
func ResolveMnemonics(names []string) []string {
	normalized := make([]string, len(names))
	counts := make(map[string]int, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			name = UnknownMnemonic
		}
		normalized[i] = name
		counts[name]++
	}

	seen := make(map[string]int, len(counts))
	resolved := make([]string, len(names))
	for i, name := range normalized {
		if counts[name] < 2 {
			resolved[i] = name
			continue
		}
		seen[name]++
		resolved[i] = name + ":" + strconv.Itoa(seen[name])
	}
	return resolved
}

