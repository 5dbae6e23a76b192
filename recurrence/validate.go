package recurrence

import (
	"time"

	"timewindow/internal/tzoffset"
)

const defaultTimeZone = "UTC+00:00"

// Compiled is the validated, immutable form of a time window spec: start and
// end projected into the recurrence zone, the pattern variant, and the range
// bound. A nil pattern marks a non-recurring window. Compiled values are
// safe for concurrent use.
type Compiled struct {
	start    time.Time
	end      time.Time
	duration time.Duration
	loc      *time.Location
	pattern  pattern
	rng      compiledRange
}

// Compile validates a time window spec and produces its compiled form. The
// checks run in a fixed order and stop at the first violation, which is
// returned as a *SpecError naming the offending parameter. spec may be nil
// for a non-recurring window.
func Compile(start, end *time.Time, spec *Spec) (*Compiled, error) {
	if start == nil || start.IsZero() {
		return nil, invalid(RequiredParameter, ParamStart)
	}
	if end == nil || end.IsZero() {
		return nil, invalid(RequiredParameter, ParamEnd)
	}

	if spec == nil {
		if !end.After(*start) {
			return nil, invalid(OutOfRange, ParamEnd)
		}
		s := start.UTC()
		e := end.UTC()
		return &Compiled{start: s, end: e, duration: e.Sub(s), loc: time.UTC}, nil
	}

	// Structural completeness.
	if spec.Pattern == nil {
		return nil, invalid(RequiredParameter, ParamPattern)
	}
	if spec.Range == nil {
		return nil, invalid(RequiredParameter, ParamRange)
	}
	if spec.Pattern.Type == "" {
		return nil, invalid(RequiredParameter, ParamPatternType)
	}
	patternType, ok := parsePatternType(spec.Pattern.Type)
	if !ok {
		return nil, invalid(UnrecognizableValue, ParamPatternType)
	}
	if spec.Range.Type == "" {
		return nil, invalid(RequiredParameter, ParamRangeType)
	}
	rangeType, ok := parseRangeType(spec.Range.Type)
	if !ok {
		return nil, invalid(UnrecognizableValue, ParamRangeType)
	}

	// Value ranges, for any field that is set at all.
	interval := spec.Pattern.Interval
	if interval == 0 {
		interval = 1
	}
	if interval < 1 {
		return nil, invalid(OutOfRange, ParamInterval)
	}
	if d := spec.Pattern.DayOfMonth; d != 0 && (d < 1 || d > 31) {
		return nil, invalid(OutOfRange, ParamDayOfMonth)
	}
	if m := spec.Pattern.Month; m != 0 && (m < 1 || m > 12) {
		return nil, invalid(OutOfRange, ParamMonth)
	}
	if rangeType == Numbered && spec.Range.NumberOfOccurrences < 1 {
		return nil, invalid(OutOfRange, ParamNumberOfOccurrences)
	}

	// Enum recognizability and defaults.
	index := First
	if spec.Pattern.Index != "" {
		if index, ok = parseWeekIndex(spec.Pattern.Index); !ok {
			return nil, invalid(UnrecognizableValue, ParamIndex)
		}
	}
	firstDay := time.Sunday
	if spec.Pattern.FirstDayOfWeek != "" {
		if firstDay, ok = parseWeekday(spec.Pattern.FirstDayOfWeek); !ok {
			return nil, invalid(UnrecognizableValue, ParamFirstDayOfWeek)
		}
	}
	var days weekdaySet
	for _, name := range spec.Pattern.DaysOfWeek {
		wd, ok := parseWeekday(name)
		if !ok {
			return nil, invalid(UnrecognizableValue, ParamDaysOfWeek)
		}
		days.add(wd)
	}
	zone := spec.Range.RecurrenceTimeZone
	if zone == "" {
		zone = defaultTimeZone
	}
	loc, err := tzoffset.Parse(zone)
	if err != nil {
		return nil, invalid(UnrecognizableValue, ParamRecurrenceTimeZone)
	}

	// Pattern-specific required fields.
	switch patternType {
	case Weekly, RelativeMonthly, RelativeYearly:
		if days.empty() {
			return nil, invalid(RequiredParameter, ParamDaysOfWeek)
		}
	}
	switch patternType {
	case AbsoluteMonthly, AbsoluteYearly:
		if spec.Pattern.DayOfMonth == 0 {
			return nil, invalid(RequiredParameter, ParamDayOfMonth)
		}
	}
	switch patternType {
	case AbsoluteYearly, RelativeYearly:
		if spec.Pattern.Month == 0 {
			return nil, invalid(RequiredParameter, ParamMonth)
		}
	}
	if rangeType == EndDate && (spec.Range.EndDate == nil || spec.Range.EndDate.IsZero()) {
		return nil, invalid(RequiredParameter, ParamEndDate)
	}

	// All calendar math below runs in the recurrence zone.
	s := start.In(loc)
	e := end.In(loc)
	if !e.After(s) {
		return nil, invalid(OutOfRange, ParamEnd)
	}
	duration := e.Sub(s)

	var p pattern
	switch patternType {
	case Daily:
		p = &dailyPattern{start: s, interval: interval}
	case Weekly:
		p = &weeklyPattern{start: s, interval: interval, days: days, firstDay: firstDay}
	case AbsoluteMonthly:
		p = &absoluteMonthlyPattern{start: s, interval: interval, dayOfMonth: spec.Pattern.DayOfMonth}
	case RelativeMonthly:
		p = &relativeMonthlyPattern{start: s, interval: interval, days: days, index: index}
	case AbsoluteYearly:
		p = &absoluteYearlyPattern{start: s, interval: interval, month: time.Month(spec.Pattern.Month), dayOfMonth: spec.Pattern.DayOfMonth}
	case RelativeYearly:
		p = &relativeYearlyPattern{start: s, interval: interval, month: time.Month(spec.Pattern.Month), days: days, index: index}
	}

	// Start must be a valid first occurrence.
	if !p.alignsWithStart() {
		return nil, invalid(NotMatched, ParamStart)
	}

	// The window must fit inside the tightest gap between occurrence starts,
	// or consecutive windows would overlap.
	if duration > p.minGap() {
		return nil, invalid(OutOfRange, ParamEnd)
	}

	rng := compiledRange{kind: rangeType}
	switch rangeType {
	case Numbered:
		rng.count = spec.Range.NumberOfOccurrences
	case EndDate:
		if spec.Range.EndDate.Before(*start) {
			return nil, invalid(OutOfRange, ParamEndDate)
		}
		rng.endDate = spec.Range.EndDate.In(loc)
	}

	return &Compiled{start: s, end: e, duration: duration, loc: loc, pattern: p, rng: rng}, nil
}

// Match reports whether t falls inside an occurrence of the window. It never
// fails: a Compiled value is already validated and matching is total over
// all instants.
func (c *Compiled) Match(t time.Time) bool {
	if c.pattern == nil {
		return !t.Before(c.start) && t.Before(c.end)
	}

	local := t.In(c.loc)
	n, occ, ok := c.pattern.lastOccurrence(local)
	if !ok {
		return false
	}
	if !local.Before(occ.Add(c.duration)) {
		return false
	}
	return c.rng.includes(n, occ)
}

// Start returns the window start projected into the recurrence zone.
func (c *Compiled) Start() time.Time { return c.start }

// End returns the window end projected into the recurrence zone.
func (c *Compiled) End() time.Time { return c.end }

// Duration returns the window length.
func (c *Compiled) Duration() time.Duration { return c.duration }

// Location returns the fixed offset the recurrence is evaluated in.
func (c *Compiled) Location() *time.Location { return c.loc }

// Recurs reports whether the window repeats at all.
func (c *Compiled) Recurs() bool { return c.pattern != nil }
