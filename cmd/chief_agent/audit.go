package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/chief-of-staff/internal/auditing"
	"github.com/jonathan/chief-of-staff/internal/config"
	"github.com/jonathan/chief-of-staff/internal/observability"
	"github.com/jonathan/chief-of-staff/internal/types"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit the calendar against the OKR profile",
	Long:  "Classify every calendar entry for strategic alignment and print a calendar health summary with the meetings that need attention.",
	RunE:  runAudit,
}

var (
	auditCalendar   string
	auditICSFeed    string
	auditProfile    string
	auditConfigFile string
	auditJSON       bool
	auditVerbose    bool
)

func init() {
	auditCmd.Flags().StringVar(&auditCalendar, "calendar", "", "Path to calendar CSV export")
	auditCmd.Flags().StringVar(&auditICSFeed, "ics", "", "URL or path of an ICS calendar feed")
	auditCmd.Flags().StringVar(&auditProfile, "profile", "", "Path to OKR profile JSON (built-in default if omitted)")
	auditCmd.Flags().StringVar(&auditConfigFile, "config", "", "Path to app config JSON")
	auditCmd.Flags().BoolVar(&auditJSON, "json", false, "Emit JSON instead of formatted output")
	auditCmd.Flags().BoolVarP(&auditVerbose, "verbose", "v", false, "Show every meeting, not just flagged ones")

	rootCmd.AddCommand(auditCmd)
}

func runAudit(_ *cobra.Command, _ []string) error {
	cfg, err := applyConfigFile(auditConfigFile, &config.Config{
		Calendar: auditCalendar,
		ICSFeed:  auditICSFeed,
		Profile:  auditProfile,
		Verbose:  auditVerbose,
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

	auditing.SortByScore(results)
	summary := auditing.Summarize(results)

	if auditJSON {
		payload := struct {
			Summary  types.AuditSummary  `json:"summary"`
			Meetings []types.AuditResult `json:"meetings"`
		}{Summary: summary, Meetings: results}
		return json.NewEncoder(os.Stdout).Encode(payload)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintAuditSummary(&summary)
	if cfg.Verbose {
		printer.PrintAuditResults("ALL MEETINGS", results)
	} else {
		printer.PrintAuditResults("NEEDS ATTENTION", auditing.FilterFlagged(results))
	}

	return nil
}
