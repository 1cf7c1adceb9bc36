package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/chief-of-staff/internal/config"
	"github.com/jonathan/chief-of-staff/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  "Start an HTTP server exposing the calendar audit, daily briefing, style check, and feedback endpoints.",
	RunE:  runServe,
}

var (
	servePort       int
	serveCalendar   string
	serveICSFeed    string
	serveProfile    string
	serveStyleGuide string
	serveConfigFile string
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveCalendar, "calendar", "", "Path to calendar CSV export")
	serveCmd.Flags().StringVar(&serveICSFeed, "ics", "", "URL or path of an ICS calendar feed")
	serveCmd.Flags().StringVar(&serveProfile, "profile", "", "Path to OKR profile JSON (built-in default if omitted)")
	serveCmd.Flags().StringVar(&serveStyleGuide, "style-guide", "", "Path to style guide JSON (built-in default if omitted)")
	serveCmd.Flags().StringVar(&serveConfigFile, "config", "", "Path to app config JSON")

	rootCmd.AddCommand(serveCmd)
}

// resolveServeConfig merges flag values with an optional config file.
// Only an explicitly set --port overrides a config-file port; when
// neither source provides one the server listens on 8080.
func resolveServeConfig(portFlagSet bool) (config.Config, error) {
	flags := &config.Config{
		Calendar:   serveCalendar,
		ICSFeed:    serveICSFeed,
		Profile:    serveProfile,
		StyleGuide: serveStyleGuide,
	}
	if portFlagSet {
		flags.Port = servePort
	}
	cfg, err := applyConfigFile(serveConfigFile, flags)
	if err != nil {
		return config.Config{}, err
	}
	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveServeConfig(cmd.Flags().Changed("port"))
	if err != nil {
		return err
	}

	// DATABASE_URL is optional: without it the feedback and auth
	// endpoints are disabled but auditing still works.
	databaseURL := cfg.DatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}

	srv, err := server.New(server.Config{
		Port:           cfg.Port,
		DatabaseURL:    databaseURL,
		CalendarPath:   cfg.Calendar,
		ICSFeed:        cfg.ICSFeed,
		ProfilePath:    cfg.Profile,
		StyleGuidePath: cfg.StyleGuide,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
