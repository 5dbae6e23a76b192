package recurrence

import (
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
)

// Event renders the compiled window as an iCalendar VEVENT: the base
// interval as DTSTART/DTEND plus the recurrence rule, if any, as RRULE.
// This is an export bridge only; occurrence evaluation stays in Match.
// An empty uid gets a generated one.
func (c *Compiled) Event(uid string) (*ical.Event, error) {
	if uid == "" {
		uid = uuid.New().String()
	}

	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, uid)
	event.Props.SetDateTime(ical.PropDateTimeStamp, time.Now())
	event.Props.SetDateTime(ical.PropDateTimeStart, c.start)
	event.Props.SetDateTime(ical.PropDateTimeEnd, c.end)

	if c.pattern != nil {
		rule, err := c.RRule()
		if err != nil {
			return nil, err
		}
		event.Props.SetText(ical.PropRecurrenceRule, rule.OrigOptions.RRuleString())
	}
	return event, nil
}
