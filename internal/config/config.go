package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config represents application configuration
type Config struct {
	Calendar CalendarConfig `mapstructure:"calendar"`
	Log      LogConfig      `mapstructure:"log"`
	Report   ReportConfig   `mapstructure:"report"`
}

// CalendarConfig represents holiday table configuration
type CalendarConfig struct {
	File             string `mapstructure:"file"`              // Holiday table, "YYYY-MM-DD type [name]" per line
	FallbackWeekends bool   `mapstructure:"fallback_weekends"` // Use the Monday-Friday rule for years the table lacks
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"` // Empty logs to the console
	Level string `mapstructure:"level"`
}

// ReportConfig represents week report output configuration
type ReportConfig struct {
	Dir string `mapstructure:"dir"`
}

var validLevels = []string{"debug", "info", "warn", "error"}

// Load loads configuration from file. With an empty configPath the usual
// locations are searched and a missing file falls back to defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.chinese-calendar")
		v.AddConfigPath("/etc/chinese-calendar")
	}

	// Read environment variables, e.g. CNCAL_CALENDAR_FILE
	v.SetEnvPrefix("cncal")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.ExpandEnvVars()

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("calendar.file", "")
	v.SetDefault("calendar.fallback_weekends", true)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "warn")
	v.SetDefault("report.dir", "reports")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Calendar.File == "" && !c.Calendar.FallbackWeekends {
		return fmt.Errorf("calendar.file is required when calendar.fallback_weekends is false")
	}

	level := strings.ToLower(c.Log.Level)
	valid := false
	for _, l := range validLevels {
		if l == level {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("log.level must be one of %s, got '%s'", strings.Join(validLevels, ", "), c.Log.Level)
	}

	return nil
}

// ExpandEnvVars expands environment variables in config paths
func (c *Config) ExpandEnvVars() {
	c.Calendar.File = os.ExpandEnv(c.Calendar.File)
	c.Log.File = os.ExpandEnv(c.Log.File)
	c.Report.Dir = os.ExpandEnv(c.Report.Dir)
}
