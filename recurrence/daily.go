package recurrence

import "time"

// dailyPattern repeats the window every interval days from the start
// instant. Fixed offsets make every day exactly 24 hours, so the arithmetic
// is pure duration math.
type dailyPattern struct {
	start    time.Time
	interval int
}

func (p *dailyPattern) alignsWithStart() bool {
	// The start instant itself defines the cycle.
	return true
}

func (p *dailyPattern) minGap() time.Duration {
	return time.Duration(p.interval) * day
}

func (p *dailyPattern) lastOccurrence(t time.Time) (int, time.Time, bool) {
	if t.Before(p.start) {
		return 0, time.Time{}, false
	}
	period := time.Duration(p.interval) * day
	n := int(t.Sub(p.start) / period)
	return n, p.start.Add(time.Duration(n) * period), true
}
