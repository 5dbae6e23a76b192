// Package recurrence validates recurring time window specs and locates the
// occurrence containing an arbitrary instant. Specs arrive already parsed
// from upstream configuration; this package decides whether they are sound
// and, once compiled, answers point-in-time queries with plain calendar
// arithmetic in a fixed UTC offset.
package recurrence

import (
	"strings"
	"time"
)

// PatternType names the repetition scheme of a recurrence pattern.
type PatternType string

const (
	Daily           PatternType = "Daily"
	Weekly          PatternType = "Weekly"
	AbsoluteMonthly PatternType = "AbsoluteMonthly"
	RelativeMonthly PatternType = "RelativeMonthly"
	AbsoluteYearly  PatternType = "AbsoluteYearly"
	RelativeYearly  PatternType = "RelativeYearly"
)

// RangeType names the bound limiting how long a recurrence stays valid.
type RangeType string

const (
	NoEnd    RangeType = "NoEnd"
	Numbered RangeType = "Numbered"
	EndDate  RangeType = "EndDate"
)

// WeekIndex selects which matching weekday occurrence within a month the
// relative monthly and yearly patterns refer to. Last always means the final
// matching weekday regardless of how many there are.
type WeekIndex string

const (
	First  WeekIndex = "First"
	Second WeekIndex = "Second"
	Third  WeekIndex = "Third"
	Fourth WeekIndex = "Fourth"
	Last   WeekIndex = "Last"
)

// Spec is a recurrence specification as supplied by upstream configuration.
// Both fields are required.
type Spec struct {
	Pattern *Pattern
	Range   *Range
}

// Pattern describes when occurrences of the base window repeat.
type Pattern struct {
	Type PatternType

	// Interval is the number of base periods (days, weeks, months, or years
	// depending on Type) between occurrences. Zero means unset and defaults
	// to 1.
	Interval int

	// DaysOfWeek holds weekday names ("Sunday".."Saturday"). Required for
	// Weekly, RelativeMonthly, and RelativeYearly; unused otherwise.
	DaysOfWeek []string

	// FirstDayOfWeek defines week boundaries for Weekly interval counting.
	// Empty means unset and defaults to Sunday.
	FirstDayOfWeek string

	// DayOfMonth (1-31) is required for AbsoluteMonthly and AbsoluteYearly.
	DayOfMonth int

	// Month (1-12) is required for AbsoluteYearly and RelativeYearly.
	Month int

	// Index is required for RelativeMonthly and RelativeYearly. Empty means
	// unset and defaults to First.
	Index WeekIndex
}

// Range describes how far the recurrence extends.
type Range struct {
	Type RangeType

	// NumberOfOccurrences is required for Numbered ranges.
	NumberOfOccurrences int

	// EndDate is required for EndDate ranges. An occurrence starting exactly
	// on the end date is still in range.
	EndDate *time.Time

	// RecurrenceTimeZone is the fixed offset ("UTC±HH:MM") all calendar
	// boundary computations run in. Empty means unset and defaults to
	// "UTC+00:00".
	RecurrenceTimeZone string
}

var patternTypes = []PatternType{
	Daily, Weekly, AbsoluteMonthly, RelativeMonthly, AbsoluteYearly, RelativeYearly,
}

func parsePatternType(s PatternType) (PatternType, bool) {
	for _, pt := range patternTypes {
		if strings.EqualFold(string(s), string(pt)) {
			return pt, true
		}
	}
	return "", false
}

var rangeTypes = []RangeType{NoEnd, Numbered, EndDate}

func parseRangeType(s RangeType) (RangeType, bool) {
	for _, rt := range rangeTypes {
		if strings.EqualFold(string(s), string(rt)) {
			return rt, true
		}
	}
	return "", false
}

var weekIndexes = []WeekIndex{First, Second, Third, Fourth, Last}

func parseWeekIndex(s WeekIndex) (WeekIndex, bool) {
	for _, wi := range weekIndexes {
		if strings.EqualFold(string(s), string(wi)) {
			return wi, true
		}
	}
	return "", false
}

// ordinal returns the 0-based position selected by the index, or -1 for Last.
func (wi WeekIndex) ordinal() int {
	switch wi {
	case Second:
		return 1
	case Third:
		return 2
	case Fourth:
		return 3
	case Last:
		return -1
	default:
		return 0
	}
}

func parseWeekday(s string) (time.Weekday, bool) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if strings.EqualFold(s, wd.String()) {
			return wd, true
		}
	}
	return 0, false
}
