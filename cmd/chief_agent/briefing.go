package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/chief-of-staff/internal/auditing"
	"github.com/jonathan/chief-of-staff/internal/config"
	"github.com/jonathan/chief-of-staff/internal/observability"
)

var briefingCmd = &cobra.Command{
	Use:   "briefing",
	Short: "Print the daily briefing for one date",
	Long:  "Aggregate the classified meetings of a single day into totals for meeting count, hours, and share of strategic time.",
	RunE:  runBriefing,
}

var (
	briefingCalendar   string
	briefingICSFeed    string
	briefingProfile    string
	briefingConfigFile string
	briefingDate       string
	briefingJSON       bool
)

func init() {
	briefingCmd.Flags().StringVar(&briefingCalendar, "calendar", "", "Path to calendar CSV export")
	briefingCmd.Flags().StringVar(&briefingICSFeed, "ics", "", "URL or path of an ICS calendar feed")
	briefingCmd.Flags().StringVar(&briefingProfile, "profile", "", "Path to OKR profile JSON (built-in default if omitted)")
	briefingCmd.Flags().StringVar(&briefingConfigFile, "config", "", "Path to app config JSON")
	briefingCmd.Flags().StringVar(&briefingDate, "date", "", "Date to brief on, YYYY-MM-DD (default today)")
	briefingCmd.Flags().BoolVar(&briefingJSON, "json", false, "Emit JSON instead of formatted output")

	rootCmd.AddCommand(briefingCmd)
}

func runBriefing(_ *cobra.Command, _ []string) error {
	date := briefingDate
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid --date %q: must be YYYY-MM-DD", briefingDate)
	}

	cfg, err := applyConfigFile(briefingConfigFile, &config.Config{
		Calendar: briefingCalendar,
		ICSFeed:  briefingICSFeed,
		Profile:  briefingProfile,
	})
	if err != nil {
		return err
	}

	source, err := buildSource(cfg)
	if err != nil {
		return err
	}
	profile, err := loadProfile(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()
	entries, err := source.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to load calendar: %w", err)
	}

	results, err := auditing.ClassifyAll(ctx, entries, profile)
	if err != nil {
		return fmt.Errorf("failed to classify calendar: %w", err)
	}

	briefing := auditing.AggregateDay(date, auditing.FilterByDate(results, date))

	if briefingJSON {
		return json.NewEncoder(os.Stdout).Encode(briefing)
	}

	observability.NewPrinter(os.Stdout).PrintBriefing(&briefing)
	return nil
}
