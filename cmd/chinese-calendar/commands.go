package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/chinese-calendar/internal/calendar"
	"github.com/username/chinese-calendar/internal/weekreport"
	"github.com/username/chinese-calendar/pkg/dateutil"
	"github.com/username/chinese-calendar/pkg/weekday"
	"github.com/username/chinese-calendar/pkg/workweek"
	"go.uber.org/zap"
)

// dateOrToday parses s, defaulting to today when s is empty
func dateOrToday(s string) (time.Time, error) {
	if s == "" {
		return dateutil.Today(now), nil
	}
	return dateutil.ParseDate(s)
}

func nextDayCmd() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:     "nextday <weekday>",
		Short:   "Next date after --from falling on the weekday (1-7, 星期一, 周一, 一 ...)",
		Example: "  chinese-calendar nextday 周五\n  chinese-calendar nextday 1 --from 2023-10-09",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := dateOrToday(from)
			if err != nil {
				return err
			}

			next, err := weekday.NextDay(ref, args[0])
			if err != nil {
				return err
			}

			outPrintf(cmd.OutOrStdout(), "%s %s\n", dateutil.FormatDate(next), weekday.Of(next))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Reference date (default today)")
	return cmd
}

func workweekCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "workweek [date]",
		Short: "Workweek id (YYWW) of a date, or of today",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec := newCodec()
			if len(args) == 0 {
				outPrintln(cmd.OutOrStdout(), codec.Current())
				return nil
			}

			date, err := dateutil.ParseDate(args[0])
			if err != nil {
				return err
			}
			outPrintln(cmd.OutOrStdout(), workweek.Encode(date))
			return nil
		},
	}
}

func rangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "range [id]",
		Short: "Monday and Sunday of a workweek (default current)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := ""
			if len(args) == 1 {
				id = args[0]
			}

			r, err := newCodec().Range(id)
			if err != nil {
				return err
			}
			outPrintf(cmd.OutOrStdout(), "%s %s\n", dateutil.FormatDate(r.Start), dateutil.FormatDate(r.End))
			return nil
		},
	}
}

func tRangeCmd() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:     "trange <offset>",
		Short:   "Range of the week `offset` weeks before --from (offset as N or T+N / T-N)",
		Example: "  chinese-calendar trange T+2\n  chinese-calendar trange T-1 --from 2552",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			offset, err := workweek.ParseLabel(args[0])
			if err != nil {
				return err
			}

			r, err := newCodec().OffsetRange(offset, from)
			if err != nil {
				return err
			}
			outPrintf(cmd.OutOrStdout(), "%s %s %s\n", r.ID(), dateutil.FormatDate(r.Start), dateutil.FormatDate(r.End))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Workweek id to count from (default current)")
	return cmd
}

func labelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "label <id|date>",
		Short: "T±n label of a workweek id or of the week containing a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec := newCodec()
			arg := args[0]

			if len(arg) == 4 {
				label, err := codec.Label(arg)
				if err != nil {
					return err
				}
				outPrintln(cmd.OutOrStdout(), label)
				return nil
			}

			date, err := dateutil.ParseDate(arg)
			if err != nil {
				return fmt.Errorf("%q is neither a workweek id nor a date", arg)
			}
			outPrintln(cmd.OutOrStdout(), codec.LabelDate(date))
			return nil
		},
	}
}

func dayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "day [date]",
		Short: "Holiday status of a date (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := ""
			if len(args) == 1 {
				arg = args[0]
			}
			date, err := dateOrToday(arg)
			if err != nil {
				return err
			}

			cal, err := newCalendar()
			if err != nil {
				return err
			}
			info, err := cal.GetDayInfo(date)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			outPrintf(out, "date:     %s %s\n", dateutil.FormatDate(date), weekday.Of(date))
			outPrintf(out, "type:     %s\n", info.Type)
			outPrintf(out, "workday:  %t\n", info.IsWorkday)
			outPrintf(out, "in lieu:  %t\n", info.IsInLieu())
			if info.Name != "" {
				outPrintf(out, "festival: %s\n", info.Name)
			}
			outPrintf(out, "workweek: %s (%s)\n", workweek.Encode(date), newCodec().LabelDate(date))
			return nil
		},
	}
}

type dateFilter func(cal calendar.Calendar, start, end time.Time, includeWeekends bool) ([]time.Time, error)

func dateListCmd(use, short string, filter dateFilter) *cobra.Command {
	var start, end string
	var includeWeekends bool

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := dateutil.ParseDate(start)
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			endDate, err := dateutil.ParseDate(end)
			if err != nil {
				return fmt.Errorf("--end: %w", err)
			}

			cal, err := newCalendar()
			if err != nil {
				return err
			}
			dates, err := filter(cal, startDate, endDate, includeWeekends)
			if err != nil {
				return err
			}

			for _, date := range dates {
				outPrintf(cmd.OutOrStdout(), "%s %s\n", dateutil.FormatDate(date), weekday.Of(date))
			}
			logger.Debug("Listed dates",
				zap.String("command", cmd.Name()),
				zap.Int("count", len(dates)))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "First date (inclusive)")
	cmd.Flags().StringVar(&end, "end", "", "Last date (inclusive)")
	cmd.Flags().BoolVar(&includeWeekends, "weekends", true, "Include days falling on Saturday or Sunday")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func holidaysCmd() *cobra.Command {
	return dateListCmd("holidays", "Days off between --start and --end", calendar.Holidays)
}

func workdaysCmd() *cobra.Command {
	return dateListCmd("workdays", "Working days between --start and --end", calendar.Workdays)
}

func findWorkdayCmd() *cobra.Command {
	var from string
	var delta int

	cmd := &cobra.Command{
		Use:   "find-workday",
		Short: "The --delta-th workday from --from (0: that day or the next workday, negative: look back)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := dateOrToday(from)
			if err != nil {
				return err
			}

			cal, err := newCalendar()
			if err != nil {
				return err
			}
			date, err := calendar.FindWorkday(cal, ref, delta)
			if err != nil {
				return err
			}

			outPrintf(cmd.OutOrStdout(), "%s %s\n", dateutil.FormatDate(date), weekday.Of(date))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Reference date (default today)")
	cmd.Flags().IntVarP(&delta, "delta", "n", 0, "Number of workdays to move")
	return cmd
}

func reportCmd() *cobra.Command {
	var offset string
	var outFile string
	var save bool

	cmd := &cobra.Command{
		Use:   "report [id]",
		Short: "Holiday status of every day in a workweek",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := ""
			if len(args) == 1 {
				id = args[0]
			}

			cal, err := newCalendar()
			if err != nil {
				return err
			}
			builder := weekreport.NewBuilder(newCodec(), cal, logger)

			var report *weekreport.Report
			if offset != "" {
				n, err := workweek.ParseLabel(offset)
				if err != nil {
					return err
				}
				report, err = builder.BuildOffset(n, id)
				if err != nil {
					return err
				}
			} else {
				report, err = builder.Build(id)
				if err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			outPrintf(out, "Workweek %s (%s)  %s ~ %s\n", report.ID, report.Label, report.StartDate, report.EndDate)
			outPrintln(out, "═══════════════════════════════════════")
			for _, day := range report.Days {
				marker := " "
				if day.Today {
					marker = "*"
				}
				outPrintf(out, "%s %s %s  %-8s %s\n", marker, day.Date, day.Weekday, day.Type, day.Name)
			}
			outPrintf(out, "Workdays: %d  Days off: %d  In lieu: %d\n", report.Workdays, report.Holidays, report.InLieu)

			if save || outFile != "" {
				path := outFile
				if path == "" {
					path = filepath.Join(cfg.Report.Dir, report.FileName())
				}
				if err := report.Save(path); err != nil {
					return err
				}
				logger.Info("Week report saved", zap.String("path", path))
				outPrintf(out, "Saved to %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&offset, "offset", "", "Report the week T+n before [id] instead (e.g. T+1, T-2)")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "Write the report as JSON to this file")
	cmd.Flags().BoolVar(&save, "save", false, "Write the report as JSON into report.dir")
	return cmd
}
