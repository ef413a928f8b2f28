package utils

import (
	"strings"
	"time"
)

const (
	layoutDate     = "2006-01-02"
	layoutDateTime = "2006-01-02 15:04:05"
)

// Now is swapped in tests that need a fixed clock.
var Now = time.Now

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// Today returns local midnight of the current day.
func Today() time.Time {
	y, m, d := Now().In(time.Local).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// NotBeforeToday reports whether the YYYY-MM-DD date is today or later.
func NotBeforeToday(s string) (bool, error) {
	t, err := ParseDate(s)
	if err != nil {
		return false, err
	}
	return !t.Before(Today()), nil
}

// FormatDateTime formats time to "YYYY-MM-DD HH:MM:SS" in local timezone.
func FormatDateTime(t time.Time) string {
	return t.In(time.Local).Format(layoutDateTime)
}
