// Package clock provides the civil-time source used to date measurements.
// All dating happens in a fixed civil timezone (US Pacific) regardless of
// where the process runs.
package clock

import (
	"fmt"
	"time"
)

const zone = "America/Los_Angeles"

// Civil reports calendar values of the current instant in a fixed timezone.
type Civil struct {
	now func() time.Time
	loc *time.Location
}

// NewPacific returns a Civil clock pinned to US Pacific time.
func NewPacific() (*Civil, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("load location %s: %w", zone, err)
	}
	return &Civil{now: time.Now, loc: loc}, nil
}

// NewFixed returns a clock frozen at t, reporting civil values in t's
// location. Intended for tests.
func NewFixed(t time.Time) *Civil {
	return &Civil{now: func() time.Time { return t }, loc: t.Location()}
}

// Today returns the current civil date as YYYY-MM-DD.
func (c *Civil) Today() string {
	return c.now().In(c.loc).Format("2006-01-02")
}

// Month returns the current civil month as YYYY-MM.
func (c *Civil) Month() string {
	return c.now().In(c.loc).Format("2006-01")
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day zero of the following month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
