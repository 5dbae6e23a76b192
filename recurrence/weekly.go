package recurrence

import (
	"sort"
	"time"
)

// weeklyPattern buckets days into firstDay-aligned weeks; the week holding
// the start instant is week 0 and every interval-th week after it is
// eligible. Within an eligible week, each selected weekday carries an
// occurrence at the start instant's time of day.
type weeklyPattern struct {
	start    time.Time
	interval int
	days     weekdaySet
	firstDay time.Weekday
}

func (p *weeklyPattern) alignsWithStart() bool {
	return p.days.has(p.start.Weekday())
}

// minGap is the smallest day distance between consecutive selected weekdays,
// including the wrap from the last selected weekday of one eligible week to
// the first selected weekday of the next. The wraparound gap, not
// 7/len(days), is what bounds the window duration.
func (p *weeklyPattern) minGap() time.Duration {
	offs := p.selectedOffsets()
	gap := p.interval*7 - offs[len(offs)-1] + offs[0]
	for i := 1; i < len(offs); i++ {
		if d := offs[i] - offs[i-1]; d < gap {
			gap = d
		}
	}
	return time.Duration(gap) * day
}

func (p *weeklyPattern) lastOccurrence(t time.Time) (int, time.Time, bool) {
	if t.Before(p.start) {
		return 0, time.Time{}, false
	}

	week0 := p.weekStart(p.start)
	weekIdx := int(p.weekStart(t).Sub(week0) / (7 * day))
	offs := p.selectedOffsets()

	// Walk eligible weeks backwards from t's week; within each, selected
	// days from last to first. The first hit at or before t (and not before
	// the start) is the occurrence.
	for week := weekIdx - weekIdx%p.interval; week >= 0; week -= p.interval {
		weekStart := week0.AddDate(0, 0, week*7)
		for i := len(offs) - 1; i >= 0; i-- {
			occ := withClock(weekStart.AddDate(0, 0, offs[i]), p.start)
			if occ.After(t) || occ.Before(p.start) {
				continue
			}
			return p.ordinal(week, i, offs), occ, true
		}
	}
	return 0, time.Time{}, false
}

// ordinal computes the 0-based occurrence index for the pos-th selected day
// of the given eligible week. Week 0 only contains selected days on or after
// the start's weekday.
func (p *weeklyPattern) ordinal(week, pos int, offs []int) int {
	startOff := p.dayOffset(p.start.Weekday())
	if week == 0 {
		n := 0
		for _, o := range offs[:pos] {
			if o >= startOff {
				n++
			}
		}
		return n
	}

	inWeek0 := 0
	for _, o := range offs {
		if o >= startOff {
			inWeek0++
		}
	}
	return inWeek0 + (week/p.interval-1)*len(offs) + pos
}

// weekStart returns midnight of the firstDay-aligned week containing d.
func (p *weeklyPattern) weekStart(d time.Time) time.Time {
	back := p.dayOffset(d.Weekday())
	y, m, dd := d.AddDate(0, 0, -back).Date()
	return time.Date(y, m, dd, 0, 0, 0, 0, d.Location())
}

// dayOffset is the weekday's position within the week, firstDay = 0.
func (p *weeklyPattern) dayOffset(wd time.Weekday) int {
	return (int(wd) - int(p.firstDay) + 7) % 7
}

func (p *weeklyPattern) selectedOffsets() []int {
	offs := make([]int, 0, p.days.count())
	for _, wd := range p.days.weekdays() {
		offs = append(offs, p.dayOffset(wd))
	}
	sort.Ints(offs)
	return offs
}
