package recurrence

import (
	"errors"

	"github.com/teambition/rrule-go"
)

// rruleWeekdays maps time.Weekday (Sunday = 0) onto rrule weekday constants.
var rruleWeekdays = [7]rrule.Weekday{
	rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA,
}

// RRule returns the window's recurrence as an RFC 5545 rule anchored at the
// window start, so calendar tooling can consume it. Non-recurring windows
// have no rule.
//
// Relative patterns translate through BYSETPOS, which indexes the merged,
// date-ordered candidates from all listed weekdays exactly like the matcher
// does.
func (c *Compiled) RRule() (*rrule.RRule, error) {
	if c.pattern == nil {
		return nil, errors.New("recurrence: window does not recur")
	}

	opt := c.pattern.rruleOptions()
	opt.Dtstart = c.start
	switch c.rng.kind {
	case Numbered:
		opt.Count = c.rng.count
	case EndDate:
		opt.Until = c.rng.endDate
	}
	return rrule.NewRRule(opt)
}

func (p *dailyPattern) rruleOptions() rrule.ROption {
	return rrule.ROption{Freq: rrule.DAILY, Interval: p.interval}
}

func (p *weeklyPattern) rruleOptions() rrule.ROption {
	return rrule.ROption{
		Freq:      rrule.WEEKLY,
		Interval:  p.interval,
		Byweekday: p.days.rruleWeekdays(),
		Wkst:      rruleWeekdays[p.firstDay],
	}
}

func (p *absoluteMonthlyPattern) rruleOptions() rrule.ROption {
	return rrule.ROption{
		Freq:       rrule.MONTHLY,
		Interval:   p.interval,
		Bymonthday: []int{p.dayOfMonth},
	}
}

func (p *relativeMonthlyPattern) rruleOptions() rrule.ROption {
	return rrule.ROption{
		Freq:      rrule.MONTHLY,
		Interval:  p.interval,
		Byweekday: p.days.rruleWeekdays(),
		Bysetpos:  []int{p.index.setpos()},
	}
}

func (p *absoluteYearlyPattern) rruleOptions() rrule.ROption {
	return rrule.ROption{
		Freq:       rrule.YEARLY,
		Interval:   p.interval,
		Bymonth:    []int{int(p.month)},
		Bymonthday: []int{p.dayOfMonth},
	}
}

func (p *relativeYearlyPattern) rruleOptions() rrule.ROption {
	return rrule.ROption{
		Freq:      rrule.YEARLY,
		Interval:  p.interval,
		Bymonth:   []int{int(p.month)},
		Byweekday: p.days.rruleWeekdays(),
		Bysetpos:  []int{p.index.setpos()},
	}
}

func (s weekdaySet) rruleWeekdays() []rrule.Weekday {
	days := make([]rrule.Weekday, 0, s.count())
	for _, wd := range s.weekdays() {
		days = append(days, rruleWeekdays[wd])
	}
	return days
}

// setpos translates a WeekIndex into a BYSETPOS value.
func (wi WeekIndex) setpos() int {
	if wi == Last {
		return -1
	}
	return wi.ordinal() + 1
}
