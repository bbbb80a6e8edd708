package dateutil

import (
	"fmt"
	"time"
)

// DateLayout is the canonical calendar-date layout
const DateLayout = "2006-01-02"

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// Date builds a naive calendar date (UTC midnight)
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ISOWeekday returns the ISO weekday number: 1 = Monday ... 7 = Sunday
func ISOWeekday(date time.Time) int {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday = 7
	}
	return weekday
}

// StartOfWeek returns the Monday of the week for the given date
func StartOfWeek(date time.Time) time.Time {
	return StartOfDay(date.AddDate(0, 0, 1-ISOWeekday(date)))
}

// EndOfWeek returns the Sunday of the week for the given date
func EndOfWeek(date time.Time) time.Time {
	return StartOfWeek(date).AddDate(0, 0, 6)
}

// GetWeekNumber returns the ISO week-year and week number for the given date
func GetWeekNumber(date time.Time) (year int, week int) {
	year, week = date.ISOWeek()
	return
}

// IsWeekday returns true if the date is Monday-Friday
func IsWeekday(date time.Time) bool {
	weekday := date.Weekday()
	return weekday >= time.Monday && weekday <= time.Friday
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// IsSameWeek returns true if two dates are in the same ISO week
func IsSameWeek(date1, date2 time.Time) bool {
	year1, week1 := GetWeekNumber(date1)
	year2, week2 := GetWeekNumber(date2)
	return year1 == year2 && week1 == week2
}

// CompareDates compares the calendar dates of a and b, ignoring time of day
// and location. Returns -1, 0 or +1.
func CompareDates(a, b time.Time) int {
	days := DaysBetween(b, a)
	switch {
	case days < 0:
		return -1
	case days > 0:
		return 1
	}
	return 0
}

// secondsPerDay is exact between two UTC midnights
const secondsPerDay = 24 * 60 * 60

// DaysBetween returns the number of calendar days from start to end
// (negative when end is before start). Works on Unix seconds since
// time.Duration saturates at about 292 years.
func DaysBetween(start, end time.Time) int {
	s := Date(start.Year(), start.Month(), start.Day())
	e := Date(end.Year(), end.Month(), end.Day())
	return int((e.Unix() - s.Unix()) / secondsPerDay)
}

// FormatDate formats a date as YYYY-MM-DD
func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}

// ParseDate parses date string in various formats
func ParseDate(dateStr string) (time.Time, error) {
	formats := []string{
		DateLayout,
		"2006/01/02",
		"20060102",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05Z",
		"2006-01-02T15:04:05-0700",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return StartOfDay(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date: %q", dateStr)
}

// Today returns today's date (start of day) according to now
func Today(now func() time.Time) time.Time {
	if now == nil {
		now = time.Now
	}
	return StartOfDay(now())
}
