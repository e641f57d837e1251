// Package schedule computes when a recurring schedule next occurs.
//
// This package includes:
//   - Schedule interface for anything that can name its next occurrence
//   - NewPeriodic() for anchored unit-and-step schedules, including
//     calendar-month stepping with end-of-month clamping
//   - Every() for fixed-interval schedules
//   - Daily() and Weekly() for wall-clock schedules in a location
//   - Cron() for cron expression-based schedules
//   - SecondsUntilNext() to measure the wait from a reference instant
//
// Nothing here sleeps, spawns, or dispatches; every result is a pure
// function of the schedule and the instant passed in.
//
// Most users should import the root package github.com/tgrange/nextwake
// which re-exports these functions.
package schedule
