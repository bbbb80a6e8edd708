package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/chinese-calendar/internal/calendar"
	"github.com/username/chinese-calendar/internal/config"
	"github.com/username/chinese-calendar/pkg/workweek"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
	now        = time.Now
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "chinese-calendar",
		Short:         "Chinese holiday calendar and workweek tool",
		Long:          "Look up Chinese public holidays and shifted workdays, resolve weekdays, and convert between dates, YYWW workweek ids and T±n week labels",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}

			if cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger(cfg.Log.Level) // Fallback to console
				}
			} else {
				initLogger(cfg.Log.Level)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: ./config.yaml if present)")

	rootCmd.AddCommand(
		nextDayCmd(),
		workweekCmd(),
		rangeCmd(),
		tRangeCmd(),
		labelCmd(),
		dayCmd(),
		holidaysCmd(),
		workdaysCmd(),
		findWorkdayCmd(),
		reportCmd(),
	)

	return rootCmd
}

func newCodec() *workweek.Codec {
	return workweek.NewCodec(workweek.WithClock(now))
}

// newCalendar builds the holiday store described by the config
func newCalendar() (calendar.Calendar, error) {
	if cfg.Calendar.File == "" {
		logger.Debug("No holiday table configured, using the Monday-Friday rule")
		return calendar.NewWeekendCalendar(), nil
	}

	fileCal := calendar.NewFileCalendar(cfg.Calendar.File, logger)
	if !cfg.Calendar.FallbackWeekends {
		if err := fileCal.Load(); err != nil {
			return nil, err
		}
		return fileCal, nil
	}

	compositeCal := calendar.NewCompositeCalendar(fileCal, calendar.NewWeekendCalendar(), logger)
	if err := compositeCal.Load(); err != nil {
		return nil, err
	}
	return compositeCal, nil
}

func initLogger(level string) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err == nil {
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	}

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	// Setup encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Parse log level
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	// Create core with lumberjack writer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}

func outPrintf(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintf(w, format, a...)
}

func outPrintln(w io.Writer, a ...interface{}) {
	fmt.Fprintln(w, a...)
}
