package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/chief-of-staff/internal/config"
	"github.com/jonathan/chief-of-staff/internal/observability"
	"github.com/jonathan/chief-of-staff/internal/stylecheck"
)

var checkStyleCmd = &cobra.Command{
	Use:   "check-style",
	Short: "Check a draft against the communication style guide",
	Long:  "Score a block of text against the style guide and list the issues found, grouped by category and severity.",
	RunE:  runCheckStyle,
}

var (
	checkStyleFile       string
	checkStyleText       string
	checkStyleGuide      string
	checkStyleConfigFile string
	checkStyleJSON       bool
)

func init() {
	checkStyleCmd.Flags().StringVarP(&checkStyleFile, "file", "f", "", "Path to the draft text file")
	checkStyleCmd.Flags().StringVar(&checkStyleText, "text", "", "Draft text passed inline (alternative to --file)")
	checkStyleCmd.Flags().StringVar(&checkStyleGuide, "style-guide", "", "Path to style guide JSON (built-in default if omitted)")
	checkStyleCmd.Flags().StringVar(&checkStyleConfigFile, "config", "", "Path to app config JSON")
	checkStyleCmd.Flags().BoolVar(&checkStyleJSON, "json", false, "Emit JSON instead of formatted output")

	rootCmd.AddCommand(checkStyleCmd)
}

func runCheckStyle(_ *cobra.Command, _ []string) error {
	if checkStyleFile != "" && checkStyleText != "" {
		return fmt.Errorf("cannot use --file and --text together")
	}
	if checkStyleFile == "" && checkStyleText == "" {
		return fmt.Errorf("must provide --file or --text")
	}

	text := checkStyleText
	if checkStyleFile != "" {
		content, err := os.ReadFile(checkStyleFile)
		if err != nil {
			return fmt.Errorf("failed to read draft: %w", err)
		}
		text = string(content)
	}

	cfg, err := applyConfigFile(checkStyleConfigFile, &config.Config{
		StyleGuide: checkStyleGuide,
	})
	if err != nil {
		return err
	}

	guide, err := loadStyleGuide(cfg)
	if err != nil {
		return err
	}

	report, err := stylecheck.Analyze(text, guide)
	if err != nil {
		return fmt.Errorf("style check failed: %w", err)
	}

	if checkStyleJSON {
		return json.NewEncoder(os.Stdout).Encode(report)
	}

	observability.NewPrinter(os.Stdout).PrintStyleReport(report)
	return nil
}
