// Package notify renders computed wakeup instants for people.
//
// The Notifier interface is the seam between the calculation and whatever
// presents it; NewWriter provides a plain-text implementation that writes
// one line per notification.
package notify
