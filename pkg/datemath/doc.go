// Package datemath provides the calendar arithmetic behind month-based
// schedules.
//
// The only operation is AddMonths, which advances an instant by whole
// calendar months while clamping to the end of too-short target months.
// It lives in its own package so that both unit conversion and schedule
// advancement can share it.
package datemath
