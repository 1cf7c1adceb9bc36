package main

import (
	"fmt"
	"os"

	"github.com/jonathan/chief-of-staff/internal/calendar"
	"github.com/jonathan/chief-of-staff/internal/config"
	"github.com/jonathan/chief-of-staff/internal/types"
)

// applyConfigFile loads the optional config file and fills unset flag
// values from it.
func applyConfigFile(configPath string, flags *config.Config) (config.Config, error) {
	if configPath == "" {
		return *flags, nil
	}

	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	merged := flags.MergeWithDefaults(*fileCfg)
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// buildSource assembles the calendar source from the merged config.
// A Google Calendar source joins the merge when GOOGLE_ACCESS_TOKEN is
// set in the environment.
func buildSource(cfg config.Config) (calendar.Source, error) {
	var sources []calendar.Source
	if cfg.Calendar != "" {
		sources = append(sources, calendar.CSVSource{Path: cfg.Calendar})
	}
	if cfg.ICSFeed != "" {
		sources = append(sources, &calendar.ICSSource{Name: "ics", Feed: cfg.ICSFeed})
	}
	if token := os.Getenv("GOOGLE_ACCESS_TOKEN"); token != "" {
		sources = append(sources, &calendar.GoogleSource{
			AccessToken: token,
			CalendarID:  os.Getenv("GOOGLE_CALENDAR_ID"),
		})
	}

	switch len(sources) {
	case 0:
		return nil, fmt.Errorf("no calendar input: provide --calendar or --ics, or set GOOGLE_ACCESS_TOKEN")
	case 1:
		return sources[0], nil
	default:
		return calendar.MultiSource(sources), nil
	}
}

// loadProfile loads the OKR profile from the config or falls back to
// the built-in default.
func loadProfile(cfg config.Config) (*types.Profile, error) {
	if cfg.Profile == "" {
		return config.DefaultProfile(), nil
	}
	profile, err := config.LoadProfile(cfg.Profile)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return profile, nil
}

// loadStyleGuide loads the style guide from the config or falls back
// to the built-in default.
func loadStyleGuide(cfg config.Config) (*types.StyleGuide, error) {
	if cfg.StyleGuide == "" {
		return config.DefaultStyleGuide(), nil
	}
	guide, err := config.LoadStyleGuide(cfg.StyleGuide)
	if err != nil {
		return nil, fmt.Errorf("failed to load style guide: %w", err)
	}
	return guide, nil
}
