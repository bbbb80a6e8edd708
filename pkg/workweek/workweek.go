// Package workweek encodes ISO weeks as four-digit workweek identifiers
// ("YYWW", e.g. "2501" for ISO week 1 of 2025), resolves identifiers to
// Monday-Sunday date ranges, and labels weeks relative to the current one
// ("T+0", "T+3", "T-1").
package workweek

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/username/chinese-calendar/pkg/dateutil"
)

// ErrInvalidFormat is returned when an identifier is not exactly four digits
// or names a week that does not exist in its ISO year.
var ErrInvalidFormat = errors.New("invalid workweek format")

// pivot splits two-digit year suffixes: 00-68 map to 2000-2068, 69-99 to 1969-1999
const pivot = 68

// ID is a workweek identifier: two-digit ISO year suffix followed by the
// two-digit ISO week number. Leading zeros are significant.
type ID string

// Parse validates s as a workweek identifier
func Parse(s string) (ID, error) {
	if len(s) != 4 {
		return "", fmt.Errorf("%w: %q must be four digits, e.g. 2501", ErrInvalidFormat, s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return "", fmt.Errorf("%w: %q must be four digits, e.g. 2501", ErrInvalidFormat, s)
		}
	}
	return ID(s), nil
}

// Encode returns the identifier of the ISO week containing date. The year
// part is the ISO week-year, so 2024-12-30 encodes as "2501".
func Encode(date time.Time) ID {
	year, week := date.ISOWeek()
	suffix := (year%100 + 100) % 100
	return ID(fmt.Sprintf("%02d%02d", suffix, week))
}

// Decode splits id into the full ISO year (resolved with the 68 pivot) and
// the week number. The week is not checked against the year; RangeOf does.
func (id ID) Decode() (isoYear, week int, err error) {
	if _, err := Parse(string(id)); err != nil {
		return 0, 0, err
	}
	suffix, _ := strconv.Atoi(string(id[:2]))
	week, _ = strconv.Atoi(string(id[2:]))
	return expandYear(suffix), week, nil
}

func (id ID) String() string {
	return string(id)
}

func expandYear(suffix int) int {
	if suffix > pivot {
		return 1900 + suffix
	}
	return 2000 + suffix
}

// WeekRange is the Monday and Sunday of one ISO week
type WeekRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether the calendar date of d falls within the range
func (r WeekRange) Contains(d time.Time) bool {
	return dateutil.IsSameWeek(dateutil.StartOfDay(d), r.Start)
}

// Dates returns the seven dates of the range, Monday first
func (r WeekRange) Dates() []time.Time {
	dates := make([]time.Time, 7)
	for i := range dates {
		dates[i] = r.Start.AddDate(0, 0, i)
	}
	return dates
}

// ID returns the identifier of the week
func (r WeekRange) ID() ID {
	return Encode(r.Start)
}

func (r WeekRange) String() string {
	return dateutil.FormatDate(r.Start) + " ~ " + dateutil.FormatDate(r.End)
}

// RangeOf returns the Monday-Sunday range of the ISO week named by id
func RangeOf(id ID) (WeekRange, error) {
	year, week, err := id.Decode()
	if err != nil {
		return WeekRange{}, err
	}

	monday, err := isoWeekStart(year, week)
	if err != nil {
		return WeekRange{}, fmt.Errorf("workweek %s: %w", id, err)
	}

	return WeekRange{Start: monday, End: monday.AddDate(0, 0, 6)}, nil
}

// isoWeekStart returns the Monday of ISO week `week` of isoYear. Week 1 is
// the week holding January 4th (equivalently, the year's first Thursday).
func isoWeekStart(isoYear, week int) (time.Time, error) {
	week1 := dateutil.StartOfWeek(dateutil.Date(isoYear, time.January, 4))
	monday := week1.AddDate(0, 0, (week-1)*7)

	if y, w := monday.ISOWeek(); y != isoYear || w != week {
		return time.Time{}, fmt.Errorf("%w: week %d does not exist in ISO year %d", ErrInvalidFormat, week, isoYear)
	}
	return monday, nil
}
