package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/flodolo/moz-cldr-data/internal/config"
	"github.com/flodolo/moz-cldr-data/pkg/equivalence"
	"github.com/flodolo/moz-cldr-data/pkg/errors"
)

// Config holds the application configuration loaded from config files,
// environment variables and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Data locations
	L10nPath        string
	CLDRPath        string
	CLDRPluralsPath string
	LanguageFile    string
	RegionFile      string
	LanguageURL     string
	RegionURL       string

	BaselineLocale  string
	ReferenceLocale string
	Concurrency     int
	CSVOutput       string

	// Table overrides; empty values keep the embedded data.
	SeedFile       string
	PluralsFile    string
	Overrides      map[string]string
	ToleratedRules []equivalence.Substitution

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// localeOverride is one entry of the "overrides" list. A list is used
// rather than a map because viper lower-cases map keys.
type localeOverride struct {
	Locale string `mapstructure:"locale"`
	CLDR   string `mapstructure:"cldr"`
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (applied later by UpdateFromFlags)
// 2. Environment variables (MOZCLDR_ prefix)
// 3. .env files
// 4. Config file (configFile, or .mozcldr.yaml in $HOME or .)
// 5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	config.SetDefaults(v)
	v.SetEnvPrefix(config.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile == "" {
		configFile = v.GetString("config")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config file", configFile, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".mozcldr")
		// a missing default config file is fine
		_ = v.ReadInConfig()
	}

	cfg := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color"),
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		L10nPath:        v.GetString(config.KeyL10nPath),
		CLDRPath:        v.GetString(config.KeyCLDRPath),
		CLDRPluralsPath: v.GetString(config.KeyCLDRPluralsPath),
		LanguageFile:    v.GetString(config.KeyLanguageFile),
		RegionFile:      v.GetString(config.KeyRegionFile),
		LanguageURL:     v.GetString(config.KeyLanguageURL),
		RegionURL:       v.GetString(config.KeyRegionURL),
		BaselineLocale:  v.GetString(config.KeyBaselineLocale),
		ReferenceLocale: v.GetString(config.KeyReferenceLocale),
		Concurrency:     v.GetInt(config.KeyConcurrency),
		CSVOutput:       v.GetString(config.KeyCSVOutput),
		SeedFile:        v.GetString(config.KeySeedFile),
		PluralsFile:     v.GetString(config.KeyPluralsFile),

		LogLevel:  config.GetString(v, config.KeyLogLevel),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	var overrides []localeOverride
	if err := v.UnmarshalKey(config.KeyOverrides, &overrides); err != nil {
		return nil, errors.NewConfigError(config.KeyOverrides, "expected a list of {locale, cldr}", err)
	}
	if len(overrides) > 0 {
		cfg.Overrides = make(map[string]string, len(overrides))
		for _, o := range overrides {
			cfg.Overrides[o.Locale] = o.CLDR
		}
	}

	if err := v.UnmarshalKey(config.KeyToleratedRules, &cfg.ToleratedRules); err != nil {
		return nil, errors.NewConfigError(config.KeyToleratedRules, "expected a list of {name, from, to}", err)
	}

	return cfg, nil
}

// UpdateFromFlags updates config values from parsed command flags.
// Flag values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// TableFiles returns the user-supplied table files.
func (c *Config) TableFiles() config.TableFiles {
	return config.TableFiles{
		Seeds:   c.SeedFile,
		Plurals: c.PluralsFile,
	}
}

// TableOverlay returns the values layered on top of the loaded tables.
func (c *Config) TableOverlay() config.TableOverlay {
	return config.TableOverlay{
		Overrides:   c.Overrides,
		RegionRules: c.ToleratedRules,
	}
}

// loadEnvFiles loads environment variables from .env files.
// .env.local values do not replace those already set by .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
