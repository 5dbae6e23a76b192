package recurrence

import (
	"math/bits"
	"time"

	"github.com/teambition/rrule-go"
)

const day = 24 * time.Hour

// pattern is the compiled form of one recurrence pattern variant. Compile is
// the only constructor, so the six implementations in this package are the
// complete set.
type pattern interface {
	// alignsWithStart reports whether the window start is a valid first
	// occurrence of the pattern.
	alignsWithStart() bool

	// minGap returns the smallest possible spacing between two consecutive
	// occurrence starts. The window duration must not exceed it.
	minGap() time.Duration

	// lastOccurrence returns the 0-based ordinal and start of the latest
	// occurrence at or before t. ok is false when t precedes the first
	// occurrence.
	lastOccurrence(t time.Time) (n int, start time.Time, ok bool)

	// rruleOptions maps the pattern onto its RFC 5545 equivalent.
	rruleOptions() rrule.ROption
}

// weekdaySet is a bitmask over time.Weekday, Sunday = bit 0.
type weekdaySet uint8

func (s *weekdaySet) add(d time.Weekday) { *s |= 1 << uint(d) }

func (s weekdaySet) has(d time.Weekday) bool { return s&(1<<uint(d)) != 0 }

func (s weekdaySet) empty() bool { return s == 0 }

func (s weekdaySet) count() int { return bits.OnesCount8(uint8(s)) }

// weekdays lists the members in Sunday..Saturday order.
func (s weekdaySet) weekdays() []time.Weekday {
	days := make([]time.Weekday, 0, s.count())
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if s.has(wd) {
			days = append(days, wd)
		}
	}
	return days
}

// withClock returns the instant on d's calendar day at ref's time of day, in
// ref's location.
func withClock(d, ref time.Time) time.Time {
	y, m, dd := d.Date()
	return time.Date(y, m, dd, ref.Hour(), ref.Minute(), ref.Second(), ref.Nanosecond(), ref.Location())
}

func daysIn(y int, m time.Month) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func addMonths(y int, m time.Month, n int) (int, time.Month) {
	t := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}

// nthWeekdayInMonth resolves the index-th day of y/m whose weekday is in
// days. Candidate dates from all listed weekdays are merged in calendar
// order before indexing; Last picks the final candidate. ok is false when
// the month has fewer candidates than the index asks for.
func nthWeekdayInMonth(y int, m time.Month, days weekdaySet, index WeekIndex) (int, bool) {
	firstWeekday := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC).Weekday()

	var dates []int
	for d := 1; d <= daysIn(y, m); d++ {
		if days.has((firstWeekday + time.Weekday(d-1)) % 7) {
			dates = append(dates, d)
		}
	}
	if len(dates) == 0 {
		return 0, false
	}

	if index == Last {
		return dates[len(dates)-1], true
	}
	i := index.ordinal()
	if i >= len(dates) {
		return 0, false
	}
	return dates[i], true
}
