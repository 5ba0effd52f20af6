package util

import (
	"math"
	"time"
)

// StartOfDay returns midnight of the given day in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsSameDay checks if two times fall on the same calendar day.
func IsSameDay(t1, t2 time.Time) bool {
	y1, m1, d1 := t1.Date()
	y2, m2, d2 := t2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// MidnightsBetween counts the calendar-day boundaries crossed between from
// and to in their local timezones. Rounding absorbs DST days that are 23 or
// 25 hours long. The result is clamped so a backwards clock never yields a
// negative count.
func MidnightsBetween(from, to time.Time) int {
	fromStart := StartOfDay(from)
	toStart := StartOfDay(to)

	days := int(math.Round(toStart.Sub(fromStart).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}
