package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.json", `{
		"calendar": "calendar.csv",
		"profile": "profile.json",
		"port": 9090,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "calendar.csv", cfg.Calendar)
	assert.Equal(t, "profile.json", cfg.Profile)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := writeFile(t, t.TempDir(), "bad.json", "{not json")
	_, err = LoadConfig(bad)
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	dir := t.TempDir()
	calendar := writeFile(t, dir, "calendar.csv", "id\n")

	valid := Config{Calendar: calendar, Port: 8080}
	assert.NoError(t, valid.Validate())

	badPort := Config{Port: 70000}
	assert.Error(t, badPort.Validate())

	missingCalendar := Config{Calendar: filepath.Join(dir, "nope.csv")}
	assert.Error(t, missingCalendar.Validate())

	missingProfile := Config{Profile: filepath.Join(dir, "nope.json")}
	assert.Error(t, missingProfile.Validate())

	missingGuide := Config{StyleGuide: filepath.Join(dir, "nope.json")}
	assert.Error(t, missingGuide.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	flags := Config{Calendar: "flag.csv"}
	defaults := Config{
		Calendar:    "default.csv",
		Profile:     "default-profile.json",
		StyleGuide:  "default-guide.json",
		ICSFeed:     "https://example.com/feed.ics",
		DatabaseURL: "postgres://localhost/dash",
		Port:        9000,
		Verbose:     true,
	}

	merged := flags.MergeWithDefaults(defaults)

	// Explicit flag values win; everything else fills from defaults.
	assert.Equal(t, "flag.csv", merged.Calendar)
	assert.Equal(t, "default-profile.json", merged.Profile)
	assert.Equal(t, "default-guide.json", merged.StyleGuide)
	assert.Equal(t, "https://example.com/feed.ics", merged.ICSFeed)
	assert.Equal(t, "postgres://localhost/dash", merged.DatabaseURL)
	assert.Equal(t, 9000, merged.Port)
	assert.True(t, merged.Verbose)
}
