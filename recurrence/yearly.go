package recurrence

import "time"

// scanYears is the yearly analogue of scanMonths: it walks eligible years
// from the start year up to t's year, stepping by interval, resolving each
// year's occurrence day within the fixed month.
func scanYears(start time.Time, interval int, month time.Month, t time.Time, resolve func(y int) (int, bool)) (int, time.Time, bool) {
	if t.Before(start) {
		return 0, time.Time{}, false
	}

	n, last, found := -1, time.Time{}, false
	for y := start.Year(); y <= t.Year(); y += interval {
		d, ok := resolve(y)
		if !ok {
			continue
		}
		occ := withClock(time.Date(y, month, d, 0, 0, 0, 0, start.Location()), start)
		if occ.After(t) {
			break
		}
		n++
		last, found = occ, true
	}
	return n, last, found
}

// absoluteYearlyPattern repeats on a fixed month and day every interval
// years. A February 29 anchor only occurs in leap years; other years are
// skipped.
type absoluteYearlyPattern struct {
	start      time.Time
	interval   int
	month      time.Month
	dayOfMonth int
}

func (p *absoluteYearlyPattern) alignsWithStart() bool {
	return p.start.Month() == p.month && p.start.Day() == p.dayOfMonth
}

func (p *absoluteYearlyPattern) minGap() time.Duration {
	// Conservative bound, same spirit as the 28-day monthly one.
	return time.Duration(365*p.interval) * day
}

func (p *absoluteYearlyPattern) lastOccurrence(t time.Time) (int, time.Time, bool) {
	return scanYears(p.start, p.interval, p.month, t, func(y int) (int, bool) {
		if p.dayOfMonth > daysIn(y, p.month) {
			return 0, false
		}
		return p.dayOfMonth, true
	})
}

// relativeYearlyPattern repeats on the index-th selected weekday of a fixed
// month every interval years.
type relativeYearlyPattern struct {
	start    time.Time
	interval int
	month    time.Month
	days     weekdaySet
	index    WeekIndex
}

func (p *relativeYearlyPattern) alignsWithStart() bool {
	if p.start.Month() != p.month {
		return false
	}
	d, ok := nthWeekdayInMonth(p.start.Year(), p.month, p.days, p.index)
	return ok && d == p.start.Day()
}

func (p *relativeYearlyPattern) minGap() time.Duration {
	return time.Duration(365*p.interval) * day
}

func (p *relativeYearlyPattern) lastOccurrence(t time.Time) (int, time.Time, bool) {
	return scanYears(p.start, p.interval, p.month, t, func(y int) (int, bool) {
		return nthWeekdayInMonth(y, p.month, p.days, p.index)
	})
}
