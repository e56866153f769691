// Package config names the configuration keys and loads the data tables
// (override table, seed list, plural categories, tolerated rules) either
// from the embedded defaults or from user-supplied files.
package config

import (
	"os"

	"github.com/spf13/viper"

	"github.com/flodolo/moz-cldr-data/pkg/constants"
)

// EnvPrefix prefixes environment variables (MOZCLDR_L10N_PATH).
const EnvPrefix = "MOZCLDR"

// Configuration keys.
const (
	KeyL10nPath        = "l10n_path"
	KeyCLDRPath        = "cldr_path"
	KeyCLDRPluralsPath = "cldr_plurals_path"
	KeyLanguageURL     = "baseline.language_url"
	KeyRegionURL       = "baseline.region_url"
	KeyBaselineLocale  = "baseline.locale"
	KeyReferenceLocale = "reference_locale"
	KeyLanguageFile    = "l10n.language_file"
	KeyRegionFile      = "l10n.region_file"
	KeyOverrides       = "overrides"
	KeySeedFile        = "seed_file"
	KeyPluralsFile     = "plurals_file"
	KeyToleratedRules  = "tolerated_rules"
	KeyConcurrency     = "concurrency"
	KeyCSVOutput       = "csv_output"

	// KeyLogLevel is read from MOZCLDR_LOG_LEVEL, the config file or a
	// bare LOG_LEVEL variable.
	KeyLogLevel = "LOG_LEVEL"
)

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyL10nPath, constants.DefaultL10nPath)
	v.SetDefault(KeyCLDRPath, constants.DefaultCLDRPath)
	v.SetDefault(KeyCLDRPluralsPath, constants.DefaultCLDRPluralsPath)
	v.SetDefault(KeyLanguageURL, constants.DefaultLanguageNamesURL)
	v.SetDefault(KeyRegionURL, constants.DefaultRegionNamesURL)
	v.SetDefault(KeyBaselineLocale, constants.BaselineLocale)
	v.SetDefault(KeyReferenceLocale, constants.DefaultReferenceLocale)
	v.SetDefault(KeyLanguageFile, constants.DefaultLanguageFile)
	v.SetDefault(KeyRegionFile, constants.DefaultRegionFile)
	v.SetDefault(KeyConcurrency, constants.DefaultConcurrency)
	v.SetDefault(KeyCSVOutput, constants.DefaultCSVOutput)
}

// GetString is a helper to get string values from Viper.
// It checks both OS environment variables and Viper configuration.
func GetString(v *viper.Viper, key string) string {
	osValue := os.Getenv(key)
	viperValue := v.GetString(key)

	// If Viper doesn't have it but OS does, return OS value
	if viperValue == "" && osValue != "" {
		return osValue
	}
	return viperValue
}
