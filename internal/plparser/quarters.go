package plparser

import "regexp"

// quarterInfo maps a statement file number to its calendar quarter.
type quarterInfo struct {
	Year    int
	Quarter string
}

// fileQuarterMap is the fixed lookup from the file number encoded in a
// statement filename, e.g. "... Profit and Loss (10).csv", to its quarter.
// The numbering follows the accounting system's export order, not the
// calendar.
var fileQuarterMap = map[string]quarterInfo{
	"10": {2023, "Q1"},
	"9":  {2023, "Q2"},
	"8":  {2023, "Q3"},
	"7":  {2023, "Q4"},
	"6":  {2024, "Q1"},
	"5":  {2024, "Q2"},
	"3":  {2024, "Q3"},
	"4":  {2024, "Q4"},
	"14": {2025, "Q1"},
	"15": {2025, "Q2"},
	"16": {2025, "Q3"},
}

var fileNumberPattern = regexp.MustCompile(`\((\d+)\)\.(?:csv|xlsx)$`)

// FileNumber extracts the trailing "(N)" file number from a statement
// filename, or "" when absent.
func FileNumber(filename string) string {
	match := fileNumberPattern.FindStringSubmatch(filename)
	if match == nil {
		return ""
	}
	return match[1]
}

// QuarterForFile resolves a statement filename to its calendar year and
// quarter. Unknown filenames map to year 0 / Q1, mirroring how the
// reporting layer treats unmapped files.
func QuarterForFile(filename string) (year int, quarter string) {
	info, ok := fileQuarterMap[FileNumber(filename)]
	if !ok {
		return 0, "Q1"
	}
	return info.Year, info.Quarter
}
