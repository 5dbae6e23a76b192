package recurrence

import "time"

// scanMonths walks the eligible months from start's month up to t, stepping
// by interval. resolve names the occurrence day within a month; ok=false
// means the month has no occurrence that cycle (e.g. no 31st) and the cycle
// is skipped without consuming an ordinal. Returns the ordinal and start of
// the latest occurrence at or before t.
func scanMonths(start time.Time, interval int, t time.Time, resolve func(y int, m time.Month) (int, bool)) (int, time.Time, bool) {
	if t.Before(start) {
		return 0, time.Time{}, false
	}

	sy, sm, _ := start.Date()
	ty, tm, _ := t.Date()
	monthsSince := (ty-sy)*12 + int(tm) - int(sm)

	n, last, found := -1, time.Time{}, false
	for k := 0; k*interval <= monthsSince; k++ {
		y, m := addMonths(sy, sm, k*interval)
		d, ok := resolve(y, m)
		if !ok {
			continue
		}
		occ := withClock(time.Date(y, m, d, 0, 0, 0, 0, start.Location()), start)
		if occ.After(t) {
			break
		}
		n++
		last, found = occ, true
	}
	return n, last, found
}

// absoluteMonthlyPattern repeats on a fixed day of the month every interval
// months. Months too short for the day are skipped entirely.
type absoluteMonthlyPattern struct {
	start      time.Time
	interval   int
	dayOfMonth int
}

func (p *absoluteMonthlyPattern) alignsWithStart() bool {
	return p.start.Day() == p.dayOfMonth
}

func (p *absoluteMonthlyPattern) minGap() time.Duration {
	// Outlook-style conservative bound: months run 28 to 31 days, so assume
	// the shortest.
	return time.Duration(28*p.interval) * day
}

func (p *absoluteMonthlyPattern) lastOccurrence(t time.Time) (int, time.Time, bool) {
	return scanMonths(p.start, p.interval, t, func(y int, m time.Month) (int, bool) {
		if p.dayOfMonth > daysIn(y, m) {
			return 0, false
		}
		return p.dayOfMonth, true
	})
}

// relativeMonthlyPattern repeats on the index-th selected weekday of the
// month every interval months.
type relativeMonthlyPattern struct {
	start    time.Time
	interval int
	days     weekdaySet
	index    WeekIndex
}

func (p *relativeMonthlyPattern) alignsWithStart() bool {
	d, ok := nthWeekdayInMonth(p.start.Year(), p.start.Month(), p.days, p.index)
	return ok && d == p.start.Day()
}

func (p *relativeMonthlyPattern) minGap() time.Duration {
	return time.Duration(28*p.interval) * day
}

func (p *relativeMonthlyPattern) lastOccurrence(t time.Time) (int, time.Time, bool) {
	return scanMonths(p.start, p.interval, t, func(y int, m time.Month) (int, bool) {
		return nthWeekdayInMonth(y, m, p.days, p.index)
	})
}
