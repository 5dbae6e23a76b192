// Package tzoffset parses fixed UTC offset specifiers of the form
// "UTC±HH:MM". Named (IANA) zones are deliberately unsupported: fixed
// offsets have no daylight-saving transitions, which keeps week and month
// boundary arithmetic exact.
package tzoffset

import (
	"fmt"
	"strings"
	"time"
)

// MaxOffset is the largest offset magnitude accepted, matching the extreme
// UTC+14:00 zone in use today.
const MaxOffset = 14 * time.Hour

// Parse converts a specifier such as "UTC+08:00" into a fixed-zone
// *time.Location. The "UTC" literal is case-insensitive; hours and minutes
// must be two digits each. Empty, malformed, or out-of-range input is an
// error.
func Parse(s string) (*time.Location, error) {
	if len(s) != len("UTC+HH:MM") || !strings.EqualFold(s[:3], "UTC") {
		return nil, fmt.Errorf("tzoffset: %q is not of the form UTC±HH:MM", s)
	}
	sign := s[3]
	if sign != '+' && sign != '-' {
		return nil, fmt.Errorf("tzoffset: %q is not of the form UTC±HH:MM", s)
	}
	if s[6] != ':' {
		return nil, fmt.Errorf("tzoffset: %q is not of the form UTC±HH:MM", s)
	}
	hours, ok1 := twoDigits(s[4], s[5])
	minutes, ok2 := twoDigits(s[7], s[8])
	if !ok1 || !ok2 || minutes > 59 {
		return nil, fmt.Errorf("tzoffset: %q is not of the form UTC±HH:MM", s)
	}

	offset := time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute
	if offset > MaxOffset {
		return nil, fmt.Errorf("tzoffset: %q exceeds the maximum offset of ±14:00", s)
	}
	seconds := int(offset / time.Second)
	if sign == '-' {
		seconds = -seconds
	}

	name := fmt.Sprintf("UTC%c%02d:%02d", sign, hours, minutes)
	return time.FixedZone(name, seconds), nil
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}
