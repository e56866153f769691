package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/flodolo/moz-cldr-data/pkg/constants"
)

// TestLoadConfig verifies defaults are applied.
func TestLoadConfig(t *testing.T) {
	chdir(t, t.TempDir())

	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.L10nPath != constants.DefaultL10nPath {
		t.Errorf("L10nPath = %q, want %q", config.L10nPath, constants.DefaultL10nPath)
	}
	if config.Concurrency != constants.DefaultConcurrency {
		t.Errorf("Concurrency = %d, want %d", config.Concurrency, constants.DefaultConcurrency)
	}
	if config.LogFormat == "" {
		t.Error("LogFormat not set to default")
	}
	if len(config.Overrides) != 0 {
		t.Errorf("Overrides = %v, want none", config.Overrides)
	}
}

// TestLoadConfig_EnvironmentVariables verifies MOZCLDR_ variables are read.
func TestLoadConfig_EnvironmentVariables(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("MOZCLDR_L10N_PATH", "/src/l10n-central")
	t.Setenv("MOZCLDR_BASELINE_LANGUAGE_URL", "http://localhost/languageNames.ftl")
	t.Setenv("MOZCLDR_CONCURRENCY", "4")

	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.L10nPath != "/src/l10n-central" {
		t.Errorf("L10nPath = %q", config.L10nPath)
	}
	if config.LanguageURL != "http://localhost/languageNames.ftl" {
		t.Errorf("LanguageURL = %q", config.LanguageURL)
	}
	if config.Concurrency != 4 {
		t.Errorf("Concurrency = %d, want 4", config.Concurrency)
	}
}

// TestLoadConfig_LogLevel verifies both spellings of the log level variable.
func TestLoadConfig_LogLevel(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("LOG_LEVEL", "debug")

	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", config.LogLevel)
	}

	t.Setenv("MOZCLDR_LOG_LEVEL", "error")
	config, err = LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if config.LogLevel != "error" {
		t.Errorf("LogLevel = %q, want error", config.LogLevel)
	}
}

// TestLoadConfig_File verifies tables and rules are read from a config file.
func TestLoadConfig_File(t *testing.T) {
	chdir(t, t.TempDir())
	path := filepath.Join(t.TempDir(), "mozcldr.yaml")
	content := `cldr_path: /data/cldr/main
csv_output: report.csv
overrides:
  - locale: ja-JP-mac
    cldr: ja
tolerated_rules:
  - name: dash
    from: " - "
    to: "-"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.ConfigFile != path {
		t.Errorf("ConfigFile = %q, want %q", config.ConfigFile, path)
	}
	if config.CLDRPath != "/data/cldr/main" {
		t.Errorf("CLDRPath = %q", config.CLDRPath)
	}
	if config.CSVOutput != "report.csv" {
		t.Errorf("CSVOutput = %q", config.CSVOutput)
	}
	// locale case survives, unlike viper map keys
	if got := config.Overrides["ja-JP-mac"]; got != "ja" {
		t.Errorf("Overrides[ja-JP-mac] = %q, want ja", got)
	}
	if len(config.ToleratedRules) != 1 || config.ToleratedRules[0].From != " - " {
		t.Errorf("ToleratedRules = %+v", config.ToleratedRules)
	}

	overlay := config.TableOverlay()
	if len(overlay.RegionRules) != 1 || overlay.Overrides["ja-JP-mac"] != "ja" {
		t.Errorf("TableOverlay() = %+v", overlay)
	}
}

// TestLoadConfig_MissingFile verifies an explicit missing file is an error.
func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

// TestUpdateFromFlags verifies flags replace loaded values.
func TestUpdateFromFlags(t *testing.T) {
	config := &Config{Format: "json", LogLevel: "info"}
	config.UpdateFromFlags(true, false, true, "", "debug")

	if !config.Verbose || !config.NoColor {
		t.Error("boolean flags not applied")
	}
	if config.Format != "json" {
		t.Errorf("empty format flag replaced Format: %q", config.Format)
	}
	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", config.LogLevel)
	}
}
