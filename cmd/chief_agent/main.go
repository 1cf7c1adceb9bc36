// Package main provides the entry point for the chief-of-staff dashboard CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chief_agent",
	Short: "Chief-of-staff dashboard for executive calendar and communication hygiene",
	Long:  "chief_agent audits calendars against OKRs, produces daily briefings, and checks written communication against a style guide, via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
