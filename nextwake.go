// Package nextwake computes how many seconds remain until the next
// occurrence of a recurring schedule.
//
// This is the main package users should import. It re-exports the public
// types from the pkg/ packages for a clean API surface. Nothing here
// sleeps or dispatches: the library answers "how long from now until the
// next occurrence" and leaves timers to the caller.
//
// Basic usage:
//
//	// Anchor a monthly schedule at a parsed local date
//	anchor, err := nextwake.ParseDate("31/01/2017 10:00", nextwake.DayFirst, "Australia/Sydney")
//	if err != nil {
//	    return err
//	}
//	sched, err := nextwake.New(anchor, nextwake.Months, 1)
//	if err != nil {
//	    return err
//	}
//
//	// How long until the next occurrence?
//	secs := nextwake.SecondsUntilNext(sched, time.Now())
//
// The anchor day of month is preserved across months and clamped to the end
// of months that are too short, so a Jan 31 anchor occurs on Feb 28 (or
// Feb 29 in a leap year) and again on Mar 31.
package nextwake

import (
	"io"
	"time"

	"github.com/tgrange/nextwake/pkg/datemath"
	"github.com/tgrange/nextwake/pkg/notify"
	"github.com/tgrange/nextwake/pkg/schedule"
	"github.com/tgrange/nextwake/pkg/timeparse"
	"github.com/tgrange/nextwake/pkg/unit"
)

// Type aliases
type (
	// Unit is a unit of schedule time.
	Unit = unit.Unit

	// Schedule names the next occurrence of a recurring event.
	Schedule = schedule.Schedule

	// Periodic is an anchored unit-and-step schedule.
	Periodic = schedule.Periodic

	// Order selects day-first or month-first reading of ambiguous dates.
	Order = timeparse.Order

	// Notifier receives computed wakeup instants for presentation.
	Notifier = notify.Notifier

	// WriterNotifier renders wakeup notifications as lines of text.
	WriterNotifier = notify.WriterNotifier
)

// Unit constants
const (
	Seconds = unit.Seconds
	Minutes = unit.Minutes
	Hours   = unit.Hours
	Days    = unit.Days
	Weeks   = unit.Weeks
	Months  = unit.Months
)

// Date-order conventions
const (
	DayFirst   = timeparse.DayFirst
	MonthFirst = timeparse.MonthFirst
)

// Error variables
var (
	ErrInvalidUnit    = unit.ErrInvalidUnit
	ErrInvalidStep    = unit.ErrInvalidStep
	ErrUnknownZone    = timeparse.ErrUnknownZone
	ErrUnparsableDate = timeparse.ErrUnparsableDate
)

// New creates an anchored periodic schedule that occurs at anchor and then
// every step units after it.
func New(anchor time.Time, u Unit, step float64) (*Periodic, error) {
	return schedule.NewPeriodic(anchor, u, step)
}

// SecondsUntilNext returns how many seconds remain, at now, until the
// schedule's next occurrence. The result is never negative.
func SecondsUntilNext(s Schedule, now time.Time) float64 {
	return schedule.SecondsUntilNext(s, now)
}

// ToSeconds converts count units into seconds. Months are measured from the
// reference instant now, since their length is calendar dependent.
func ToSeconds(count float64, u Unit, now time.Time) (float64, error) {
	return unit.ToSeconds(count, u, now)
}

// ParseUnit maps a unit name such as "weeks" to its Unit.
func ParseUnit(s string) (Unit, error) {
	return unit.Parse(s)
}

// AddMonths advances t by n calendar months, clamping to the end of
// too-short target months.
func AddMonths(t time.Time, n int) time.Time {
	return datemath.AddMonths(t, n)
}

// ParseDate converts a human-entered date string into an instant in the
// named IANA time zone, resolving ambiguous numeric dates with order.
func ParseDate(s string, order Order, zone string) (time.Time, error) {
	return timeparse.Parse(s, order, zone)
}

// Schedule constructors

// Every creates a schedule that occurs at fixed intervals.
func Every(d time.Duration) Schedule {
	return schedule.Every(d)
}

// Daily creates a schedule that occurs at a specific time each day in loc.
func Daily(hour, minute int, loc *time.Location) Schedule {
	return schedule.Daily(hour, minute, loc)
}

// Weekly creates a schedule that occurs at a specific day and time each week
// in loc.
func Weekly(day time.Weekday, hour, minute int, loc *time.Location) Schedule {
	return schedule.Weekly(day, hour, minute, loc)
}

// Cron creates a schedule from a five-field cron expression.
func Cron(expr string) (Schedule, error) {
	return schedule.Cron(expr)
}

// NewWriterNotifier returns a Notifier that writes one line per notification.
func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return notify.NewWriter(w)
}
