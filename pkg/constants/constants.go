// Package constants provides shared constants used throughout the moz-cldr-data codebase.
// This includes timeouts, file permissions, default locations and the identifiers
// that both the product and CLDR data sources agree on.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for fetching remote baseline files
	DefaultHTTPTimeout = 30 * time.Second

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 10 * time.Minute
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Locale constants
const (
	// LocaleDelimiter separates subtags in both product and CLDR locale codes.
	LocaleDelimiter = "-"

	// BaselineLocale is the product locale that holds the source-of-truth strings.
	BaselineLocale = "en-US"

	// DefaultReferenceLocale is the CLDR locale the baseline is compared with.
	DefaultReferenceLocale = "en"
)

// Default locations of the external data
const (
	// DefaultLanguageNamesURL is the remote en-US language names file.
	DefaultLanguageNamesURL = "https://hg.mozilla.org/mozilla-central/raw-file/tip/toolkit/locales/en-US/toolkit/intl/languageNames.ftl"

	// DefaultRegionNamesURL is the remote en-US region names file.
	DefaultRegionNamesURL = "https://hg.mozilla.org/mozilla-central/raw-file/tip/toolkit/locales/en-US/toolkit/intl/regionNames.ftl"

	// DefaultCLDRPath is the directory holding one folder per CLDR locale.
	DefaultCLDRPath = "node_modules/cldr-localenames-full/main"

	// DefaultCLDRPluralsPath is the CLDR supplemental plurals document.
	DefaultCLDRPluralsPath = "node_modules/cldr-core/supplemental/plurals.json"

	// DefaultL10nPath is the directory holding one folder per product locale.
	DefaultL10nPath = "l10n"

	// DefaultLanguageFile is the language names file relative to a product locale folder.
	DefaultLanguageFile = "toolkit/chrome/global/languageNames.ftl"

	// DefaultRegionFile is the region names file relative to a product locale folder.
	DefaultRegionFile = "toolkit/chrome/global/regionNames.ftl"

	// DefaultCSVOutput is where the summary CSV is written.
	DefaultCSVOutput = "output.csv"
)

// Limit constants
const (
	// DefaultConcurrency reconciles locales one at a time.
	DefaultConcurrency = 1

	// MaxConcurrency caps the reconciliation worker pool.
	MaxConcurrency = 16
)
