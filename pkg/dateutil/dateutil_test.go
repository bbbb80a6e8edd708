package dateutil

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	input := time.Date(2025, 1, 15, 14, 30, 45, 123456789, time.UTC)
	expected := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	result := StartOfDay(input)

	if !result.Equal(expected) {
		t.Errorf("StartOfDay(%v) = %v, want %v", input, result, expected)
	}
}

func TestISOWeekday(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  int
	}{
		{"Monday", Date(2023, 10, 9), 1},
		{"Wednesday", Date(2023, 10, 11), 3},
		{"Saturday", Date(2023, 10, 14), 6},
		{"Sunday", Date(2023, 10, 15), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ISOWeekday(tt.input); got != tt.want {
				t.Errorf("ISOWeekday(%v) = %d, want %d", tt.input.Format("2006-01-02 Mon"), got, tt.want)
			}
		})
	}
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "Wednesday returns Monday",
			input:    time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC), // Wednesday
			expected: time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),  // Monday
		},
		{
			name:     "Monday returns same Monday",
			input:    time.Date(2025, 1, 13, 12, 0, 0, 0, time.UTC), // Monday
			expected: time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Sunday returns previous Monday",
			input:    time.Date(2025, 1, 19, 12, 0, 0, 0, time.UTC), // Sunday
			expected: time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),  // Previous Monday
		},
		{
			name:     "New Year's Day crosses into previous year",
			input:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StartOfWeek(tt.input)

			if !result.Equal(tt.expected) {
				t.Errorf("StartOfWeek(%v) = %v, want %v",
					tt.input.Format("2006-01-02 Mon"),
					result.Format("2006-01-02 Mon"),
					tt.expected.Format("2006-01-02 Mon"))
			}
		})
	}
}

func TestEndOfWeek(t *testing.T) {
	input := Date(2025, 1, 15)
	want := Date(2025, 1, 19)

	if got := EndOfWeek(input); !got.Equal(want) {
		t.Errorf("EndOfWeek(%v) = %v, want %v", input, got, want)
	}
}

func TestGetWeekNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		wantYear int
		wantWeek int
	}{
		{
			name:     "Mid January 2025",
			input:    time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			wantYear: 2025,
			wantWeek: 3,
		},
		{
			name:     "Start of year",
			input:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			wantYear: 2025,
			wantWeek: 1,
		},
		{
			name:     "December in next ISO year",
			input:    time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC),
			wantYear: 2025,
			wantWeek: 1,
		},
		{
			name:     "January in previous ISO year",
			input:    time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
			wantYear: 2020,
			wantWeek: 53,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, week := GetWeekNumber(tt.input)

			if year != tt.wantYear || week != tt.wantWeek {
				t.Errorf("GetWeekNumber(%v) = (%v, %v), want (%v, %v)",
					tt.input, year, week, tt.wantYear, tt.wantWeek)
			}
		})
	}
}

func TestIsWeekday(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  bool
	}{
		{"Monday is weekday", time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC), true},
		{"Friday is weekday", time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC), true},
		{"Saturday is not weekday", time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC), false},
		{"Sunday is not weekday", time.Date(2025, 1, 19, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsWeekday(tt.input)

			if result != tt.want {
				t.Errorf("IsWeekday(%v) = %v, want %v",
					tt.input.Format("2006-01-02 Mon"), result, tt.want)
			}
			if IsWeekend(tt.input) == tt.want {
				t.Errorf("IsWeekend(%v) = %v, want %v",
					tt.input.Format("2006-01-02 Mon"), !tt.want, tt.want)
			}
		})
	}
}

func TestIsSameDay(t *testing.T) {
	tests := []struct {
		name  string
		date1 time.Time
		date2 time.Time
		want  bool
	}{
		{
			"Same date different time",
			time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 15, 20, 0, 0, 0, time.UTC),
			true,
		},
		{
			"Different date",
			time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 16, 10, 0, 0, 0, time.UTC),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsSameDay(tt.date1, tt.date2)

			if result != tt.want {
				t.Errorf("IsSameDay(%v, %v) = %v, want %v",
					tt.date1, tt.date2, result, tt.want)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"same day", Date(2025, 1, 1), Date(2025, 1, 1), 0},
		{"across year end", Date(2024, 12, 30), Date(2025, 1, 6), 7},
		{"backwards", Date(2025, 3, 10), Date(2025, 3, 3), -7},
		{"leap day", Date(2024, 2, 28), Date(2024, 3, 1), 2},
		{"ignores time of day", time.Date(2025, 1, 1, 23, 0, 0, 0, time.UTC), time.Date(2025, 1, 2, 1, 0, 0, 0, time.UTC), 1},
		{"centuries apart", Date(1700, 1, 4), Date(2026, 10, 19), 119357},
		{"centuries backwards", Date(2026, 10, 19), Date(1600, 1, 3), -155883},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.start, tt.end); got != tt.want {
				t.Errorf("DaysBetween(%v, %v) = %d, want %d",
					FormatDate(tt.start), FormatDate(tt.end), got, tt.want)
			}
		})
	}
}

func TestCompareDates(t *testing.T) {
	a := Date(2025, 1, 1)
	b := Date(2025, 1, 2)

	if CompareDates(a, b) != -1 || CompareDates(b, a) != 1 || CompareDates(a, a) != 0 {
		t.Errorf("CompareDates ordering wrong for %v and %v", FormatDate(a), FormatDate(b))
	}

	old := Date(1600, 1, 3)
	if CompareDates(old, a) != -1 || CompareDates(a, old) != 1 {
		t.Errorf("CompareDates ordering wrong for %v and %v", FormatDate(old), FormatDate(a))
	}
}

func TestIsSameWeek(t *testing.T) {
	tests := []struct {
		name  string
		date1 time.Time
		date2 time.Time
		want  bool
	}{
		{"Monday and Sunday", Date(2024, 12, 30), Date(2025, 1, 5), true},
		{"Sunday and next Monday", Date(2025, 1, 5), Date(2025, 1, 6), false},
		{"same week number, different year", Date(2024, 1, 10), Date(2025, 1, 8), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSameWeek(tt.date1, tt.date2); got != tt.want {
				t.Errorf("IsSameWeek(%v, %v) = %v, want %v",
					FormatDate(tt.date1), FormatDate(tt.date2), got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			"ISO format YYYY-MM-DD",
			"2025-01-15",
			time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			false,
		},
		{
			"Compact YYYYMMDD",
			"20250115",
			time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			false,
		},
		{
			"ISO with time truncated to date",
			"2025-01-15T10:30:00",
			time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			false,
		},
		{
			"Garbage",
			"next tuesday",
			time.Time{},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input)

			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDate(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}

			if !tt.wantErr && !result.Equal(tt.want) {
				t.Errorf("ParseDate(%v) = %v, want %v", tt.input, result, tt.want)
			}
		})
	}
}

func TestToday(t *testing.T) {
	now := func() time.Time { return time.Date(2025, 6, 1, 18, 45, 0, 0, time.UTC) }

	if got := Today(now); !got.Equal(Date(2025, 6, 1)) {
		t.Errorf("Today() = %v, want 2025-06-01", got)
	}
}
