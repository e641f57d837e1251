package timeparse

import (
	"errors"
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

// Parse errors
var (
	ErrUnknownZone    = errors.New("nextwake: unknown time zone")
	ErrUnparsableDate = errors.New("nextwake: unparsable date string")
)

// Order selects which field of an ambiguous numeric date comes first.
type Order int

const (
	// DayFirst reads 02/01/2006 as 2 January 2006.
	DayFirst Order = iota
	// MonthFirst reads 02/01/2006 as February 1st, 2006.
	MonthFirst
)

// Parse converts a human-entered date string into an instant in the named
// IANA time zone. Ambiguous numeric dates are resolved by order alone; a
// string that does not fit the chosen convention fails rather than being
// retried with the fields swapped.
func Parse(s string, order Order, zone string) (time.Time, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownZone, zone)
	}

	t, err := dateparse.ParseIn(s, loc,
		dateparse.PreferMonthFirst(order == MonthFirst),
		dateparse.RetryAmbiguousDateWithSwap(false),
	)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrUnparsableDate, s, err)
	}
	return t, nil
}
