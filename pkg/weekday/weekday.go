// Package weekday resolves weekday specifiers (ISO numbers, numeric strings
// and Chinese weekday names) to the next matching calendar date.
package weekday

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/username/chinese-calendar/pkg/dateutil"
	"golang.org/x/text/width"
)

var (
	// ErrInvalidWeekday is returned for a specifier outside 1-7 or an
	// unrecognized name.
	ErrInvalidWeekday = errors.New("invalid weekday")
	// ErrInvalidArgumentType is returned for a specifier of an unsupported type.
	ErrInvalidArgumentType = errors.New("weekday must be an integer or a string")
)

// Weekday is an ISO weekday: 1 = Monday ... 7 = Sunday
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var names = [...]string{"", "星期一", "星期二", "星期三", "星期四", "星期五", "星期六", "星期日"}

// synonyms maps every accepted weekday name to its ISO number
var synonyms = map[string]Weekday{
	"星期一": Monday, "周一": Monday, "一": Monday, "1": Monday,
	"星期二": Tuesday, "周二": Tuesday, "二": Tuesday, "2": Tuesday,
	"星期三": Wednesday, "周三": Wednesday, "三": Wednesday, "3": Wednesday,
	"星期四": Thursday, "周四": Thursday, "四": Thursday, "4": Thursday,
	"星期五": Friday, "周五": Friday, "五": Friday, "5": Friday,
	"星期六": Saturday, "周六": Saturday, "六": Saturday, "6": Saturday,
	"星期日": Sunday, "周日": Sunday, "星期天": Sunday, "周天": Sunday, "日": Sunday, "天": Sunday, "7": Sunday,
}

// String returns the full Chinese name, e.g. "星期一"
func (w Weekday) String() string {
	if !w.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return names[w]
}

// Valid reports whether w is within 1-7
func (w Weekday) Valid() bool {
	return w >= Monday && w <= Sunday
}

// Time converts w to the standard library weekday
func (w Weekday) Time() time.Weekday {
	return time.Weekday(int(w) % 7)
}

// Of returns the ISO weekday of date
func Of(date time.Time) Weekday {
	return Weekday(dateutil.ISOWeekday(date))
}

// Parse converts a weekday specifier to a Weekday. Accepted specifiers are
// Go integers in 1-7, time.Weekday values, and strings holding either a
// synonym ("星期一", "周一", "一", "天", ...) or a number in 1-7.
func Parse(arg any) (Weekday, error) {
	switch v := arg.(type) {
	case Weekday:
		return checkRange(int64(v))
	case time.Weekday:
		if v < time.Sunday || v > time.Saturday {
			return 0, fmt.Errorf("%w: %d", ErrInvalidWeekday, int(v))
		}
		if v == time.Sunday {
			return Sunday, nil
		}
		return Weekday(v), nil
	case int:
		return checkRange(int64(v))
	case int8:
		return checkRange(int64(v))
	case int16:
		return checkRange(int64(v))
	case int32:
		return checkRange(int64(v))
	case int64:
		return checkRange(v)
	case uint:
		return checkUnsigned(uint64(v))
	case uint8:
		return checkUnsigned(uint64(v))
	case uint16:
		return checkUnsigned(uint64(v))
	case uint32:
		return checkUnsigned(uint64(v))
	case uint64:
		return checkUnsigned(v)
	case string:
		return parseString(v)
	default:
		return 0, fmt.Errorf("%w: got %T", ErrInvalidArgumentType, arg)
	}
}

// parseString folds full-width input ("３", "　７") to ASCII before the lookup
func parseString(s string) (Weekday, error) {
	key := strings.TrimSpace(width.Narrow.String(s))
	if w, ok := synonyms[key]; ok {
		return w, nil
	}

	n, err := strconv.ParseInt(key, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: unrecognized weekday %q", ErrInvalidWeekday, s)
	}
	return checkRange(n)
}

func checkRange(n int64) (Weekday, error) {
	if n < int64(Monday) || n > int64(Sunday) {
		return 0, fmt.Errorf("%w: %d is not within 1-7", ErrInvalidWeekday, n)
	}
	return Weekday(n), nil
}

func checkUnsigned(n uint64) (Weekday, error) {
	if n > uint64(Sunday) {
		return 0, fmt.Errorf("%w: %d is not within 1-7", ErrInvalidWeekday, n)
	}
	return checkRange(int64(n))
}

// NextDay returns the first date strictly after ref that falls on the
// weekday described by arg. A Monday asked for "星期一" yields the Monday
// one week later.
func NextDay(ref time.Time, arg any) (time.Time, error) {
	target, err := Parse(arg)
	if err != nil {
		return time.Time{}, err
	}
	return Next(ref, target), nil
}

// Next is NextDay for an already parsed weekday.
func Next(ref time.Time, target Weekday) time.Time {
	daysAhead := int(target) - dateutil.ISOWeekday(ref)
	if daysAhead <= 0 {
		daysAhead += 7
	}
	return dateutil.StartOfDay(ref).AddDate(0, 0, daysAhead)
}
