package plparser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aimdash/pkg/contracts/domain"
)

func TestResolveDateRange(t *testing.T) {
	dateRange, ok := ResolveDateRange("January 1-March 31, 2023")
	require.True(t, ok)
	assert.Equal(t, time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), dateRange.Start)
	assert.Equal(t, time.Date(2023, time.March, 31, 0, 0, 0, 0, time.UTC), dateRange.End)
}

func TestResolveDateRange_QuarterBoundariesNotLiteralDays(t *testing.T) {
	// Even when the label carries mid-month days, the resolved range spans
	// whole months.
	dateRange, ok := ResolveDateRange("October 15-December 20, 2024")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC), dateRange.Start)
	assert.Equal(t, time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), dateRange.End)
}

func TestResolveDateRange_LeapFebruary(t *testing.T) {
	dateRange, ok := ResolveDateRange("January 1-February 28, 2024")
	require.True(t, ok)
	assert.Equal(t, 29, dateRange.End.Day(), "end is the last day of the month")
}

func TestResolveDateRange_NoMatch(t *testing.T) {
	for _, label := range []string{"", "Fiscal Year 2023", "Foo 1-Bar 2, 2023"} {
		_, ok := ResolveDateRange(label)
		assert.False(t, ok, "label %q", label)
	}
}

func TestQuarterInRange(t *testing.T) {
	filter := domain.DateRange{
		Start: time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2023, time.April, 30, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name  string
		label string
		want  bool
	}{
		{name: "partial overlap kept in full", label: "January 1-March 31, 2023", want: true},
		{name: "fully inside", label: "April 1-April 30, 2023", want: true},
		{name: "ends before range", label: "October 1-December 31, 2022", want: false},
		{name: "starts after range", label: "July 1-September 30, 2023", want: false},
		{name: "unresolvable label always included", label: "not a range", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, QuarterInRange(tt.label, filter))
		})
	}
}

func TestQuarterInRange_InclusiveBoundary(t *testing.T) {
	// Filter ending exactly on the quarter's first day still overlaps.
	filter := domain.DateRange{
		Start: time.Date(2022, time.December, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.True(t, QuarterInRange("January 1-March 31, 2023", filter))
}
