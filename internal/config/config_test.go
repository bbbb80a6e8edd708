package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_File(t *testing.T) {
	t.Setenv("HOLIDAY_DIR", "/srv/data")
	path := writeConfig(t, `
calendar:
  file: $HOLIDAY_DIR/holidays.txt
  fallback_weekends: false
log:
  file: logs/cal.log
  level: debug
report:
  dir: out
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/data/holidays.txt", cfg.Calendar.File)
	assert.False(t, cfg.Calendar.FallbackWeekends)
	assert.Equal(t, "logs/cal.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "out", cfg.Report.Dir)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, cfg.Calendar.File)
	assert.True(t, cfg.Calendar.FallbackWeekends)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "reports", cfg.Report.Dir)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CNCAL_CALENDAR_FILE", "/tmp/override.txt")
	path := writeConfig(t, "calendar:\n  file: holidays.txt\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/override.txt", cfg.Calendar.File)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", Config{Calendar: CalendarConfig{FallbackWeekends: true}, Log: LogConfig{Level: "info"}}, false},
		{"upper-case level", Config{Calendar: CalendarConfig{File: "h.txt"}, Log: LogConfig{Level: "WARN"}}, false},
		{"no table and no fallback", Config{Log: LogConfig{Level: "info"}}, true},
		{"bad level", Config{Calendar: CalendarConfig{FallbackWeekends: true}, Log: LogConfig{Level: "loud"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
