package dataprocessing

import (
	"regexp"
	"strings"
)

// loadIDPattern matches the canonical load identifier inside a load number,
// e.g. "AIM_M103161" -> "M103161".
var loadIDPattern = regexp.MustCompile(`AIM_([A-Z]\d+)`)

// ExtractLoadID derives the canonical load identifier from a load-number
// string. It returns "" when the pattern does not match; callers must treat
// an empty identifier as unjoinable, matching no registry entry.
func ExtractLoadID(loadNumber string) string {
	match := loadIDPattern.FindStringSubmatch(loadNumber)
	if match == nil {
		return ""
	}
	return match[1]
}

// JoinIndex answers "is this load in the reference registry" in O(1).
type JoinIndex map[string]struct{}

// Has reports whether id is a member of the index. The empty identifier
// never matches.
func (idx JoinIndex) Has(id string) bool {
	if id == "" {
		return false
	}
	_, ok := idx[id]
	return ok
}

// BuildJoinIndex scans header-rowed registry rows and collects the trimmed
// values of keyColumn into a membership set. Rows with a blank or missing
// key column are skipped silently. Header lookup trims both sides, since
// registry exports carry stray whitespace in their column names.
func BuildJoinIndex(rows [][]string, keyColumn string) JoinIndex {
	idx := make(JoinIndex)
	if len(rows) == 0 {
		return idx
	}

	keyCol := -1
	want := strings.TrimSpace(keyColumn)
	for i, header := range rows[0] {
		if strings.TrimSpace(header) == want {
			keyCol = i
			break
		}
	}
	if keyCol < 0 {
		return idx
	}

	for _, row := range rows[1:] {
		if keyCol >= len(row) {
			continue
		}
		id := strings.TrimSpace(row[keyCol])
		if id == "" {
			continue
		}
		idx[id] = struct{}{}
	}
	return idx
}
