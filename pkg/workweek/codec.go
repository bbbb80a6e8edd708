package workweek

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/username/chinese-calendar/pkg/dateutil"
)

// Codec answers "current week" questions against an injected clock
type Codec struct {
	now func() time.Time
}

// Option configures a Codec
type Option func(*Codec)

// WithClock sets the source of "now". A nil clock keeps time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) {
		if now != nil {
			c.now = now
		}
	}
}

// NewCodec creates a Codec reading the wall clock unless WithClock is given
func NewCodec(opts ...Option) *Codec {
	c := &Codec{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Now reads the codec's clock
func (c *Codec) Now() time.Time {
	return c.now()
}

// Today returns the current calendar date
func (c *Codec) Today() time.Time {
	return dateutil.Today(c.now)
}

// Current returns the identifier of the current ISO week. Like Encode it
// uses the ISO week-year, so on 2024-12-31 the current week is "2501".
func (c *Codec) Current() ID {
	return Encode(c.Today())
}

// Resolve parses id, substituting the current week for an empty string
func (c *Codec) Resolve(id string) (ID, error) {
	if id == "" {
		return c.Current(), nil
	}
	return Parse(id)
}

// Range returns the Monday-Sunday range of id, or of the current week when
// id is empty
func (c *Codec) Range(id string) (WeekRange, error) {
	ww, err := c.Resolve(id)
	if err != nil {
		return WeekRange{}, err
	}
	return RangeOf(ww)
}

// OffsetRange returns the range of the week `offset` weeks before `from`
// (the current week when from is empty). Negative offsets look ahead. The
// target Monday is re-encoded and resolved again so the result always sits
// on an ISO week boundary.
func (c *Codec) OffsetRange(offset int, from string) (WeekRange, error) {
	base, err := c.Range(from)
	if err != nil {
		return WeekRange{}, err
	}

	target := base.Start.AddDate(0, 0, -offset*7)
	return RangeOf(Encode(target))
}

// Offset returns how many whole weeks id lies before the current week
// (negative when id is in the future). It is computed from the Mondays of
// both weeks, so it stays exact across year boundaries.
func (c *Codec) Offset(id string) (int, error) {
	target, err := c.Range(id)
	if err != nil {
		return 0, err
	}
	current, err := RangeOf(c.Current())
	if err != nil {
		return 0, err
	}
	return dateutil.DaysBetween(target.Start, current.Start) / 7, nil
}

// Label renders the offset of id from the current week, e.g. "T+0" for this
// week, "T+2" for two weeks ago and "T-1" for next week
func (c *Codec) Label(id string) (string, error) {
	n, err := c.Offset(id)
	if err != nil {
		return "", err
	}
	return FormatLabel(n), nil
}

// LabelDate is Label for the week containing date
func (c *Codec) LabelDate(date time.Time) string {
	n := dateutil.DaysBetween(dateutil.StartOfWeek(date), dateutil.StartOfWeek(c.Today())) / 7
	return FormatLabel(n)
}

// FormatLabel renders n as "T+n" (n >= 0) or "Tn" (n < 0)
func FormatLabel(n int) string {
	if n < 0 {
		return "T" + strconv.Itoa(n)
	}
	return "T+" + strconv.Itoa(n)
}

// ParseLabel is the inverse of FormatLabel. A bare number is accepted too.
func ParseLabel(s string) (int, error) {
	s = strings.TrimSpace(s)
	body := strings.TrimPrefix(strings.TrimPrefix(s, "T"), "t")
	n, err := strconv.Atoi(body)
	if err != nil || body == "" {
		return 0, fmt.Errorf("invalid week label %q, want T+n or T-n", s)
	}
	return n, nil
}
