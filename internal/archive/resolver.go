// Package archive translates the calendar choices a user makes in the
// archive view into valid APOD request ranges.
package archive

import (
	"time"

	"github.com/astroshell/cosmonaut/internal/apod"
)

// Resolver computes request ranges bounded by the archive's first day
// and today. The clock is injectable so month-boundary behavior is
// testable.
type Resolver struct {
	now func() time.Time
}

// New builds a Resolver. A nil clock uses time.Now.
func New(now func() time.Time) *Resolver {
	if now == nil {
		now = time.Now
	}
	return &Resolver{now: now}
}

// ResolveMonth returns the [start, end] range covering base's calendar
// month. The archive opened mid-June 1995, so any month in that first
// year starts at the archive minimum; the current month ends today
// rather than at a future month-end.
func (r *Resolver) ResolveMonth(base time.Time) (start, end time.Time) {
	monthStart := time.Date(base.Year(), base.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	today := apod.DateOnly(r.now().UTC())

	start = monthStart
	if monthStart.Year() == apod.MinArchiveDate.Year() {
		start = apod.MinArchiveDate
	}

	end = monthEnd
	if end.After(today) {
		end = today
	}
	return start, end
}

// ResolveSingle passes the chosen date through unchanged. The archive
// view's date input already constrains input to
// [MinArchiveDate, today].
func (r *Resolver) ResolveSingle(date time.Time) time.Time {
	return apod.DateOnly(date)
}

// MonthLabel renders the heading for a month view.
func (r *Resolver) MonthLabel(base time.Time) string {
	return base.Format("Jan 2006")
}

// DateLabel renders the heading for a single-date view.
func (r *Resolver) DateLabel(date time.Time) string {
	return date.Format("Jan 02 2006")
}
