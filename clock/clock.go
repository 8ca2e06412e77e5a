// Package clock resolves the day-of-month-only timestamps that appear in
// TAF issue and validity groups into absolute UTC timestamps. It is the
// parser's external "clock collaborator": the grammar itself never reads
// the wall clock.
package clock

import "time"

// Resolver resolves a day-of-month, hour, and minute into an absolute UTC
// timestamp, disambiguating the month/year against the current date.
type Resolver func(dayOfMonth, hour, minute int) time.Time

// Resolve is the canonical Resolver: it takes "now" in UTC; if
// dayOfMonth matches today it uses today's month/year; else if it matches
// tomorrow or yesterday it uses that day's month/year; otherwise it falls
// back to today's month/year. If hour == 24 it produces midnight of the
// following day.
func Resolve(dayOfMonth, hour, minute int) time.Time {
	now := time.Now().UTC()
	year, month := now.Year(), now.Month()

	if dayOfMonth != now.Day() {
		tomorrow := now.AddDate(0, 0, 1)
		yesterday := now.AddDate(0, 0, -1)
		switch dayOfMonth {
		case tomorrow.Day():
			year, month = tomorrow.Year(), tomorrow.Month()
		case yesterday.Day():
			year, month = yesterday.Year(), yesterday.Month()
		}
	}

	if hour == 24 {
		return time.Date(year, month, dayOfMonth, 0, minute, 0, 0, time.UTC).AddDate(0, 0, 1)
	}
	return time.Date(year, month, dayOfMonth, hour, minute, 0, 0, time.UTC)
}
