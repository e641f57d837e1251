package datemath

import (
	"time"

	"github.com/jinzhu/now"
)

// AddMonths returns t advanced by n calendar months, preserving the day of
// month, clock time, and location. When the target month is too short for
// t's day of month, the result clamps to the last day of that month:
// Jan 31 plus one month is Feb 28 (Feb 29 in a leap year), never Mar 3.
func AddMonths(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(n), 1,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())

	day := t.Day()
	if last := now.With(first).EndOfMonth().Day(); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
