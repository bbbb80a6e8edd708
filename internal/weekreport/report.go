package weekreport

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/username/chinese-calendar/internal/calendar"
	"github.com/username/chinese-calendar/pkg/dateutil"
	"github.com/username/chinese-calendar/pkg/weekday"
	"github.com/username/chinese-calendar/pkg/workweek"
	"go.uber.org/zap"
)

// Day is one row of a week report
type Day struct {
	Date    string           `json:"date"`
	Weekday string           `json:"weekday"`
	Type    calendar.DayType `json:"type"`
	Workday bool             `json:"workday"`
	Name    string           `json:"name,omitempty"`
	Today   bool             `json:"today,omitempty"`
}

// Report describes one ops week: its identifier, position relative to the
// current week and the holiday status of each day
type Report struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Current     bool   `json:"current"`
	Year        int    `json:"year"`
	Week        int    `json:"week"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Workdays    int    `json:"workdays"`
	Holidays    int    `json:"holidays"`
	InLieu      int    `json:"in_lieu"`
	Days        []Day  `json:"days"`
	GeneratedAt string `json:"generated_at"`
}

// Builder assembles week reports
type Builder struct {
	codec  *workweek.Codec
	cal    calendar.Calendar
	logger *zap.Logger
}

// NewBuilder creates a new report builder
func NewBuilder(codec *workweek.Codec, cal calendar.Calendar, logger *zap.Logger) *Builder {
	return &Builder{
		codec:  codec,
		cal:    cal,
		logger: logger,
	}
}

// Build returns the report for workweek id, or the current week when id is empty
func (b *Builder) Build(id string) (*Report, error) {
	r, err := b.codec.Range(id)
	if err != nil {
		return nil, err
	}
	return b.build(r)
}

// BuildOffset returns the report for the week `offset` weeks before from
func (b *Builder) BuildOffset(offset int, from string) (*Report, error) {
	r, err := b.codec.OffsetRange(offset, from)
	if err != nil {
		return nil, err
	}
	return b.build(r)
}

func (b *Builder) build(r workweek.WeekRange) (*Report, error) {
	id := r.ID()
	label, err := b.codec.Label(string(id))
	if err != nil {
		return nil, err
	}
	year, week := dateutil.GetWeekNumber(r.Start)
	today := b.codec.Today()

	report := &Report{
		ID:          string(id),
		Label:       label,
		Current:     r.Contains(today),
		Year:        year,
		Week:        week,
		StartDate:   dateutil.FormatDate(r.Start),
		EndDate:     dateutil.FormatDate(r.End),
		Days:        make([]Day, 0, 7),
		GeneratedAt: b.codec.Now().Format(time.RFC3339),
	}

	for _, date := range r.Dates() {
		info, err := b.cal.GetDayInfo(date)
		if err != nil {
			return nil, fmt.Errorf("failed to classify %s: %w", dateutil.FormatDate(date), err)
		}

		report.Days = append(report.Days, Day{
			Date:    dateutil.FormatDate(date),
			Weekday: weekday.Of(date).String(),
			Type:    info.Type,
			Workday: info.IsWorkday,
			Name:    info.Name,
			Today:   dateutil.IsSameDay(date, today),
		})

		if info.IsWorkday {
			report.Workdays++
		} else {
			report.Holidays++
		}
		if info.IsInLieu() {
			report.InLieu++
		}
	}

	b.logger.Debug("Week report built",
		zap.String("id", report.ID),
		zap.String("label", report.Label),
		zap.Int("workdays", report.Workdays))

	return report, nil
}

// FileName returns the default file name of the report
func (r *Report) FileName() string {
	return "ww" + r.ID + ".json"
}

// Save writes the report as indented JSON
func (r *Report) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create report dir: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}

	return nil
}
