// Package unit defines the units a schedule can step in and converts unit
// counts into seconds.
//
// All units except Months have a constant length. Months are calendar
// dependent, so their conversion is taken relative to a reference instant.
//
// Most users should import the root package github.com/tgrange/nextwake
// which re-exports these types and functions.
package unit
