package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/arnavshah/rotation-scheduler/pkg/config"
	"github.com/arnavshah/rotation-scheduler/pkg/models"
	"github.com/arnavshah/rotation-scheduler/pkg/render"
	"github.com/arnavshah/rotation-scheduler/pkg/scheduler"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	startDate string
	numWeeks  int
	format    string
	verbose   bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "shiftgen",
	Short: "Weekly rotational shift scheduler",
	Long: `shiftgen assigns the team roster to the daily shift slots from a start
date, then prints the schedule and a per-agent working hours summary.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the shift schedule and working hours summary",
	Long: `Generates one row per day for --weeks blocks of 7 days starting at --start.
When --weeks is omitted the schedule runs to December 31 of the start year.

Example:
  shiftgen generate --start 2024-01-01 --weeks 4 --format csv`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Print the roster in rotation order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		roster, err := loadRoster()
		if err != nil {
			return err
		}
		for i, a := range roster.Agents() {
			fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, a)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	generateCmd.Flags().StringVarP(&startDate, "start", "s", time.Now().Format(scheduler.DateLayout), "Start date (YYYY-MM-DD)")
	generateCmd.Flags().IntVarP(&numWeeks, "weeks", "w", 0, "Number of 7-day blocks (default: until year end)")
	generateCmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text|csv|json")

	rootCmd.AddCommand(generateCmd, rosterCmd)
}

func loadRoster() (models.Roster, error) {
	config.LoadEnvFile()
	cfg, err := config.Load()
	if err != nil {
		return models.Roster{}, err
	}
	return cfg.Roster()
}

func runGenerate(cmd *cobra.Command, args []string) error {
	switch format {
	case "text", "csv", "json":
	default:
		return fmt.Errorf("format must be one of: text, csv, json (got: %s)", format)
	}

	roster, err := loadRoster()
	if err != nil {
		return err
	}

	start, err := scheduler.ParseStartDate(startDate)
	if err != nil {
		return err
	}
	weeks := numWeeks
	if !cmd.Flags().Changed("weeks") {
		weeks = scheduler.WeeksUntilYearEnd(start)
	}

	schedule, err := scheduler.Generate(roster, start, weeks)
	if err != nil {
		return err
	}
	summary := scheduler.Summarize(roster, schedule)
	logger.Debug("schedule generated",
		zap.String("start_date", startDate),
		zap.Int("num_weeks", weeks),
		zap.Int("days", len(schedule)))

	return write(cmd.OutOrStdout(), start, weeks, schedule, summary)
}

func write(w io.Writer, start time.Time, weeks int, schedule models.Schedule, summary models.Summary) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(models.ScheduleResponse{
			StartDate: start.Format(scheduler.DateLayout),
			NumWeeks:  weeks,
			Schedule:  render.ScheduleTable(schedule),
			Summary:   render.SummaryTable(summary),
		})
	case "csv":
		if err := render.WriteScheduleCSV(w, schedule); err != nil {
			return err
		}
		fmt.Fprintln(w)
		return render.WriteSummaryCSV(w, summary)
	default:
		_, err := fmt.Fprint(w, render.Text(schedule, summary))
		return err
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
