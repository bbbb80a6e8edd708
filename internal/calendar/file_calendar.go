package calendar

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/username/chinese-calendar/pkg/dateutil"
	"go.uber.org/zap"
)

// FileCalendar implements Calendar using a local text table of the days that
// differ from the Monday-Friday rule. Every year between the first and the
// last listed date is considered covered.
type FileCalendar struct {
	filePath string
	logger   *zap.Logger

	mu      sync.RWMutex
	days    map[string]*DayInfo // key: "YYYY-MM-DD"
	minYear int
	maxYear int
}

// NewFileCalendar creates a new FileCalendar instance
func NewFileCalendar(filePath string, logger *zap.Logger) *FileCalendar {
	return &FileCalendar{
		filePath: filePath,
		logger:   logger,
		days:     make(map[string]*DayInfo),
	}
}

// Load loads calendar data from file
func (fc *FileCalendar) Load() error {
	file, err := os.Open(fc.filePath)
	if err != nil {
		return fmt.Errorf("failed to open calendar file: %w", err)
	}
	defer file.Close()

	if err := fc.LoadFrom(file); err != nil {
		return err
	}

	fc.logger.Info("Calendar file loaded",
		zap.String("file", fc.filePath),
		zap.Int("entries", len(fc.days)),
		zap.Int("from_year", fc.minYear),
		zap.Int("to_year", fc.maxYear))

	return nil
}

// LoadFrom replaces the table with entries read from r.
//
// Format: YYYY-MM-DD type [name], type is holiday, workday or inlieu.
// Example: 2025-01-28 holiday 春节
func (fc *FileCalendar) LoadFrom(r io.Reader) error {
	days := make(map[string]*DayInfo)
	minYear, maxYear := 0, 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) < 2 {
			fc.logger.Warn("Invalid line format", zap.String("line", line))
			continue
		}

		date, err := time.Parse(dateutil.DateLayout, parts[0])
		if err != nil {
			fc.logger.Warn("Failed to parse date", zap.String("date", parts[0]), zap.Error(err))
			continue
		}

		var dayType DayType
		if err := dayType.UnmarshalText([]byte(parts[1])); err != nil || dayType == DayTypeWeekend {
			fc.logger.Warn("Unknown day type", zap.String("type", parts[1]))
			continue
		}

		days[dateutil.FormatDate(date)] = &DayInfo{
			Date:      date,
			Type:      dayType,
			IsWorkday: dayType == DayTypeWorkday,
			Name:      strings.Join(parts[2:], " "),
		}

		if minYear == 0 || date.Year() < minYear {
			minYear = date.Year()
		}
		if date.Year() > maxYear {
			maxYear = date.Year()
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading calendar file: %w", err)
	}
	if len(days) == 0 {
		return fmt.Errorf("calendar file has no entries")
	}

	fc.mu.Lock()
	fc.days = days
	fc.minYear, fc.maxYear = minYear, maxYear
	fc.mu.Unlock()

	return nil
}

// Years returns the first and last covered year
func (fc *FileCalendar) Years() (from, to int) {
	fc.mu.RLock()
	defer fc.mu.RUnlock()
	return fc.minYear, fc.maxYear
}

// GetDayInfo returns detailed info for a specific day
func (fc *FileCalendar) GetDayInfo(date time.Time) (*DayInfo, error) {
	fc.mu.RLock()
	defer fc.mu.RUnlock()

	if len(fc.days) == 0 || date.Year() < fc.minYear || date.Year() > fc.maxYear {
		return nil, fmt.Errorf("%w: %d (covered %d-%d)", ErrYearNotSupported, date.Year(), fc.minYear, fc.maxYear)
	}

	if day, ok := fc.days[dateutil.FormatDate(date)]; ok {
		info := *day
		return &info, nil
	}

	return weekendRule(date), nil
}
