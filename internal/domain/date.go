package domain

import "time"

const DateLayout = "2006-01-02"

// ParseDate parses an ISO calendar date into UTC midnight. Stay dates
// carry no time-of-day component anywhere in the system.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// DateOnly truncates t to UTC midnight of the same calendar day.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
