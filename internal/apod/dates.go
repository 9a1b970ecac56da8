package apod

import "time"

// DateLayout is the calendar-date form the API speaks.
const DateLayout = "2006-01-02"

// MinArchiveDate is the earliest date the APOD service has a picture for.
var MinArchiveDate = time.Date(1995, time.June, 16, 0, 0, 0, 0, time.UTC)

// FormatDate renders t in the API's yyyy-MM-dd form.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a yyyy-MM-dd string into a UTC date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// DateOnly truncates t to its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
