// Package calendar deals with calendar days as seen by the server.
//
// All days are normalized to midnight in the server's local time zone.
// Clients in other time zones see the day boundary at the server's
// midnight, not their own.
package calendar

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// Day returns t's calendar day as midnight in the local time zone.
func Day(t time.Time) time.Time {
	t = t.In(time.Local)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// FromDate converts a DATE scanned from postgres (midnight UTC)
// into the same calendar day at local midnight.
func FromDate(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.Local)
}

// Parse parses a YYYY-MM-DD string into a local calendar day.
func Parse(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day [%s]: %w", s, err)
	}
	return d, nil
}

func Format(day time.Time) string {
	return Day(day).Format(DateLayout)
}

func SameDay(a, b time.Time) bool {
	ay, am, ad := a.In(time.Local).Date()
	by, bm, bd := b.In(time.Local).Date()
	return ay == by && am == bm && ad == bd
}

// IsDayBefore reports whether prev is exactly the calendar day before day.
// Uses date arithmetic, so DST transitions (23h / 25h days) are handled.
func IsDayBefore(prev, day time.Time) bool {
	return SameDay(Day(prev).AddDate(0, 0, 1), day)
}

// Yesterday returns the calendar day before day.
func Yesterday(day time.Time) time.Time {
	return Day(day).AddDate(0, 0, -1)
}
