package calendar

import (
	"time"

	"github.com/username/chinese-calendar/pkg/dateutil"
)

// IsWorkday checks if the given date is a working day
func IsWorkday(cal Calendar, date time.Time) (bool, error) {
	day, err := cal.GetDayInfo(date)
	if err != nil {
		return false, err
	}
	return day.IsWorkday, nil
}

// IsHoliday checks if the given date is a day off (weekend or festival)
func IsHoliday(cal Calendar, date time.Time) (bool, error) {
	workday, err := IsWorkday(cal, date)
	return !workday, err
}

// IsInLieu checks if the given date is a day off in exchange for a shifted workday
func IsInLieu(cal Calendar, date time.Time) (bool, error) {
	day, err := cal.GetDayInfo(date)
	if err != nil {
		return false, err
	}
	return day.IsInLieu(), nil
}

// HolidayDetail reports whether date is a day off and the festival it
// belongs to. Shifted workdays report false with the festival name.
func HolidayDetail(cal Calendar, date time.Time) (bool, string, error) {
	day, err := cal.GetDayInfo(date)
	if err != nil {
		return false, "", err
	}
	return day.IsHoliday(), day.Name, nil
}

// Dates returns every date from start to end inclusive, or nil when end is
// before start
func Dates(start, end time.Time) []time.Time {
	if dateutil.CompareDates(end, start) < 0 {
		return nil
	}
	n := dateutil.DaysBetween(start, end)

	first := dateutil.StartOfDay(start)
	dates := make([]time.Time, 0, n+1)
	for i := 0; i <= n; i++ {
		dates = append(dates, first.AddDate(0, 0, i))
	}
	return dates
}

// Holidays returns the days off between start and end inclusive. Without
// includeWeekends only days off falling Monday-Friday are returned.
func Holidays(cal Calendar, start, end time.Time, includeWeekends bool) ([]time.Time, error) {
	return filterDates(cal, start, end, func(day *DayInfo) bool {
		return day.IsHoliday() && (includeWeekends || dateutil.IsWeekday(day.Date))
	})
}

// Workdays returns the working days between start and end inclusive.
// Without includeWeekends, workdays shifted onto a weekend are left out.
func Workdays(cal Calendar, start, end time.Time, includeWeekends bool) ([]time.Time, error) {
	return filterDates(cal, start, end, func(day *DayInfo) bool {
		return day.IsWorkday && (includeWeekends || dateutil.IsWeekday(day.Date))
	})
}

func filterDates(cal Calendar, start, end time.Time, keep func(*DayInfo) bool) ([]time.Time, error) {
	var result []time.Time
	for _, date := range Dates(start, end) {
		day, err := cal.GetDayInfo(date)
		if err != nil {
			return nil, err
		}
		if keep(day) {
			result = append(result, date)
		}
	}
	return result, nil
}

// FindWorkday walks workdays from date. delta 0 returns date itself when it
// is a workday, otherwise the next one; delta n > 0 returns the n-th workday
// after that; delta -n returns the n-th workday strictly before date.
func FindWorkday(cal Calendar, date time.Time, delta int) (time.Time, error) {
	date = dateutil.StartOfDay(date)

	steps, sign := delta+1, 1
	if delta < 0 {
		steps, sign = -delta, -1
	}

	for i := 0; i < steps; i++ {
		if delta < 0 || i > 0 {
			date = date.AddDate(0, 0, sign)
		}
		for {
			workday, err := IsWorkday(cal, date)
			if err != nil {
				return time.Time{}, err
			}
			if workday {
				break
			}
			date = date.AddDate(0, 0, sign)
		}
	}
	return date, nil
}
