// Package timeparse turns human-entered date strings into instants.
//
// A string such as "02/01/2006" is ambiguous; the caller picks the locale
// convention with an Order (DayFirst or MonthFirst) and names an IANA time
// zone for the result. Unknown zones and malformed strings are reported via
// the ErrUnknownZone and ErrUnparsableDate sentinels.
package timeparse
