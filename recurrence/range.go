package recurrence

import "time"

// compiledRange is the validated form of a recurrence range bound.
type compiledRange struct {
	kind    RangeType
	count   int       // Numbered only
	endDate time.Time // EndDate only, projected into the recurrence zone
}

// includes reports whether the occurrence with 0-based ordinal n starting at
// occ is still within the range bound.
func (r compiledRange) includes(n int, occ time.Time) bool {
	switch r.kind {
	case Numbered:
		return n < r.count
	case EndDate:
		// An occurrence starting exactly on the end date is in range.
		return !occ.After(r.endDate)
	default: // NoEnd
		return true
	}
}
