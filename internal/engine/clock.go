package engine

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// It supplies the default reference date ("today") and the DTSTAMP of generated calendars.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Today returns the calendar date of c.Now() in the host's local time zone.
func Today(c Clock) CalendarDate {
	return DateOf(c.Now())
}
