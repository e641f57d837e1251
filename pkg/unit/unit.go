package unit

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/tgrange/nextwake/pkg/datemath"
)

// Validation errors
var (
	ErrInvalidUnit = errors.New("nextwake: unrecognized time unit")
	ErrInvalidStep = errors.New("nextwake: step must be positive (and a whole number for months)")
)

// Unit is a unit of schedule time.
type Unit int

const (
	Seconds Unit = iota
	Minutes
	Hours
	Days
	Weeks
	Months
)

// Seconds per fixed-length unit.
const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
	secondsPerWeek   = 604800
)

// Fixed reports whether the unit has a constant length in seconds.
// Months do not: their length depends on the calendar.
func (u Unit) Fixed() bool {
	return u >= Seconds && u < Months
}

func (u Unit) String() string {
	switch u {
	case Seconds:
		return "seconds"
	case Minutes:
		return "minutes"
	case Hours:
		return "hours"
	case Days:
		return "days"
	case Weeks:
		return "weeks"
	case Months:
		return "months"
	}
	return fmt.Sprintf("unit(%d)", int(u))
}

// Parse maps a unit name to its Unit. Singular and plural forms are both
// accepted, case-insensitively.
func Parse(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "second", "seconds":
		return Seconds, nil
	case "minute", "minutes":
		return Minutes, nil
	case "hour", "hours":
		return Hours, nil
	case "day", "days":
		return Days, nil
	case "week", "weeks":
		return Weeks, nil
	case "month", "months":
		return Months, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidUnit, s)
}

// ToSeconds converts count units into seconds. Months have no constant
// length, so the months branch measures the real duration between now and
// now advanced by count calendar months; the count must then be a whole
// number, since a fractional month names no calendar date.
func ToSeconds(count float64, u Unit, now time.Time) (float64, error) {
	switch u {
	case Seconds:
		return count, nil
	case Minutes:
		return count * secondsPerMinute, nil
	case Hours:
		return count * secondsPerHour, nil
	case Days:
		return count * secondsPerDay, nil
	case Weeks:
		return count * secondsPerWeek, nil
	case Months:
		n, ok := Whole(count)
		if !ok {
			return 0, ErrInvalidStep
		}
		return datemath.AddMonths(now, n).Sub(now).Seconds(), nil
	}
	return 0, ErrInvalidUnit
}

// Whole reports whether count is a whole number, returning it as an int.
func Whole(count float64) (int, bool) {
	n := math.Round(count)
	if math.Abs(count-n) > 1e-9 {
		return 0, false
	}
	return int(n), true
}
