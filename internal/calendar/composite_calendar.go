package calendar

import (
	"fmt"
	"time"

	"github.com/username/chinese-calendar/pkg/dateutil"
	"go.uber.org/zap"
)

// CompositeCalendar implements Calendar with fallback strategy
// Primary: FileCalendar (holiday table)
// Fallback: WeekendCalendar (Monday-Friday rule) for years the table lacks
type CompositeCalendar struct {
	primary  Calendar
	fallback Calendar
	logger   *zap.Logger
}

// NewCompositeCalendar creates a new CompositeCalendar
func NewCompositeCalendar(primary, fallback Calendar, logger *zap.Logger) *CompositeCalendar {
	return &CompositeCalendar{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// GetDayInfo returns detailed info for a specific day
func (cc *CompositeCalendar) GetDayInfo(date time.Time) (*DayInfo, error) {
	// Try primary first
	dayInfo, err := cc.primary.GetDayInfo(date)
	if err == nil {
		return dayInfo, nil
	}

	cc.logger.Warn("Primary calendar failed, falling back",
		zap.String("date", dateutil.FormatDate(date)),
		zap.Error(err))

	return cc.fallback.GetDayInfo(date)
}

// Load loads every file-backed calendar of the composite
func (cc *CompositeCalendar) Load() error {
	for _, cal := range []Calendar{cc.primary, cc.fallback} {
		if fc, ok := cal.(*FileCalendar); ok {
			if err := fc.Load(); err != nil {
				return fmt.Errorf("failed to load calendar: %w", err)
			}
		}
	}
	return nil
}
