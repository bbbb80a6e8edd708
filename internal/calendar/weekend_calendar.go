package calendar

import (
	"time"

	"github.com/username/chinese-calendar/pkg/dateutil"
)

// WeekendCalendar treats Monday-Friday as workdays and nothing else as special
type WeekendCalendar struct{}

// NewWeekendCalendar creates a new WeekendCalendar
func NewWeekendCalendar() *WeekendCalendar {
	return &WeekendCalendar{}
}

// GetDayInfo returns detailed info for a specific day
func (WeekendCalendar) GetDayInfo(date time.Time) (*DayInfo, error) {
	return weekendRule(date), nil
}

func weekendRule(date time.Time) *DayInfo {
	day := &DayInfo{
		Date:      dateutil.StartOfDay(date),
		Type:      DayTypeWorkday,
		IsWorkday: true,
	}
	if dateutil.IsWeekend(date) {
		day.Type = DayTypeWeekend
		day.IsWorkday = false
	}
	return day
}
