package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrYearNotSupported is returned for dates outside the years a table covers
var ErrYearNotSupported = errors.New("year not supported by calendar")

// DayType represents the type of day
type DayType int

const (
	DayTypeWorkday DayType = iota + 1
	DayTypeWeekend
	DayTypeHoliday
	DayTypeInLieu // day off granted in exchange for a shifted workday
)

var dayTypeNames = map[DayType]string{
	DayTypeWorkday: "workday",
	DayTypeWeekend: "weekend",
	DayTypeHoliday: "holiday",
	DayTypeInLieu:  "inlieu",
}

func (t DayType) String() string {
	if name, ok := dayTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("DayType(%d)", int(t))
}

// ParseDayType parses the table spelling of a day type
func ParseDayType(s string) (DayType, error) {
	for t, name := range dayTypeNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown day type: %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (t DayType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *DayType) UnmarshalText(text []byte) error {
	parsed, err := ParseDayType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// DayInfo represents information about a specific day
type DayInfo struct {
	Date      time.Time
	Type      DayType
	IsWorkday bool
	Name      string // festival name; also set on workdays shifted for a festival
}

// IsHoliday reports whether the day is a day off
func (d *DayInfo) IsHoliday() bool {
	return !d.IsWorkday
}

// IsInLieu reports whether the day is off in exchange for a shifted workday
func (d *DayInfo) IsInLieu() bool {
	return d.Type == DayTypeInLieu
}

// Calendar answers day-type questions for single dates
type Calendar interface {
	// GetDayInfo returns detailed info for a specific day
	GetDayInfo(date time.Time) (*DayInfo, error)
}
