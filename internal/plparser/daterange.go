package plparser

import (
	"regexp"
	"strconv"
	"time"

	"aimdash/pkg/contracts/domain"
)

// dateRangePattern matches labels of the form
// "January 1-March 31, 2023".
var dateRangePattern = regexp.MustCompile(`([A-Za-z]+)\s+(\d+)-([A-Za-z]+)\s+(\d+),\s+(\d+)`)

var monthsByName = map[string]time.Month{
	"January": time.January, "February": time.February, "March": time.March,
	"April": time.April, "May": time.May, "June": time.June,
	"July": time.July, "August": time.August, "September": time.September,
	"October": time.October, "November": time.November, "December": time.December,
}

// ResolveDateRange extracts a quarter's calendar boundaries from its
// free-text date-range label. The result spans whole months: the first day
// of the start month through the last day of the end month, regardless of
// the literal days in the label. ok is false when the label does not match,
// in which case callers skip filtering and include the quarter.
func ResolveDateRange(label string) (dateRange domain.DateRange, ok bool) {
	match := dateRangePattern.FindStringSubmatch(label)
	if match == nil {
		return domain.DateRange{}, false
	}

	startMonth, okStart := monthsByName[match[1]]
	endMonth, okEnd := monthsByName[match[3]]
	if !okStart || !okEnd {
		return domain.DateRange{}, false
	}
	year, err := strconv.Atoi(match[5])
	if err != nil {
		return domain.DateRange{}, false
	}

	return domain.DateRange{
		Start: time.Date(year, startMonth, 1, 0, 0, 0, 0, time.UTC),
		// Day 0 of the following month is the last day of endMonth.
		End: time.Date(year, endMonth+1, 0, 0, 0, 0, 0, time.UTC),
	}, true
}

// QuarterInRange reports whether the quarter identified by its date-range
// label should be included when filtering by dateRange. A label that does
// not resolve always includes the quarter, erring toward inclusion; a
// resolvable one is included when it overlaps the filter at all.
func QuarterInRange(label string, dateRange domain.DateRange) bool {
	quarterRange, ok := ResolveDateRange(label)
	if !ok {
		return true
	}
	return quarterRange.Overlaps(dateRange)
}
