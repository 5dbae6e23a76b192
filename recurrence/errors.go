package recurrence

import "fmt"

// ErrorKind classifies why a spec failed validation.
type ErrorKind int

const (
	// RequiredParameter means a mandatory field is missing or empty.
	RequiredParameter ErrorKind = iota
	// OutOfRange means a present value violates a numeric or temporal bound.
	OutOfRange
	// UnrecognizableValue means a string does not map to a known enum member
	// or offset format.
	UnrecognizableValue
	// NotMatched means Start is not a valid first occurrence of the pattern.
	NotMatched
)

// Parameter paths reported by validation errors. Callers pattern-match on
// these for diagnostics, so they are part of the public surface.
const (
	ParamStart               = "Start"
	ParamEnd                 = "End"
	ParamPattern             = "Recurrence.Pattern"
	ParamPatternType         = "Recurrence.Pattern.Type"
	ParamInterval            = "Recurrence.Pattern.Interval"
	ParamDaysOfWeek          = "Recurrence.Pattern.DaysOfWeek"
	ParamFirstDayOfWeek      = "Recurrence.Pattern.FirstDayOfWeek"
	ParamMonth               = "Recurrence.Pattern.Month"
	ParamDayOfMonth          = "Recurrence.Pattern.DayOfMonth"
	ParamIndex               = "Recurrence.Pattern.Index"
	ParamRange               = "Recurrence.Range"
	ParamRangeType           = "Recurrence.Range.Type"
	ParamNumberOfOccurrences = "Recurrence.Range.NumberOfOccurrences"
	ParamRecurrenceTimeZone  = "Recurrence.Range.RecurrenceTimeZone"
	ParamEndDate             = "Recurrence.Range.EndDate"
)

// Message returns the fixed first sentence used for errors of this kind.
// Callers may match on it as an alternative to the kind itself.
func (k ErrorKind) Message() string {
	switch k {
	case RequiredParameter:
		return "Value cannot be null or empty."
	case OutOfRange:
		return "The value is out of the accepted range."
	case UnrecognizableValue:
		return "The value is unrecognizable."
	case NotMatched:
		return "Start date is not a valid first occurrence."
	default:
		return "Invalid value."
	}
}

func (k ErrorKind) String() string {
	switch k {
	case RequiredParameter:
		return "RequiredParameter"
	case OutOfRange:
		return "OutOfRange"
	case UnrecognizableValue:
		return "UnrecognizableValue"
	case NotMatched:
		return "NotMatched"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// SpecError reports the first validation violation found in a time window
// spec. Validation fails fast; a spec never yields more than one.
type SpecError struct {
	Kind      ErrorKind
	Parameter string
}

func (e *SpecError) Error() string {
	return fmt.Sprintf("%s Parameter: %s.", e.Kind.Message(), e.Parameter)
}

func invalid(kind ErrorKind, parameter string) error {
	return &SpecError{Kind: kind, Parameter: parameter}
}
