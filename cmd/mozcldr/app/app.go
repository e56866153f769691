// Package app provides the application context and dependency management
// for the mozcldr CLI: configuration, logging and the comparison client.
package app

import (
	"net/http"
	"sync"

	"github.com/rs/zerolog"

	mozcldr "github.com/flodolo/moz-cldr-data"
	"github.com/flodolo/moz-cldr-data/cmd/application"
	"github.com/flodolo/moz-cldr-data/internal/config"
	"github.com/flodolo/moz-cldr-data/pkg/constants"
	"github.com/flodolo/moz-cldr-data/pkg/errors"
	"github.com/flodolo/moz-cldr-data/pkg/locales"
)

var _ application.Application = (*App)(nil)

// App represents the mozcldr application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// Client instance (lazy-initialized, singleton)
	mu     sync.RWMutex
	client mozcldr.Client
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	cfg, err := LoadConfig("")
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = cfg

	logger := NewLogger(cfg)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// CSVOutput returns the configured CSV path.
func (a *App) CSVOutput() string {
	return a.config.CSVOutput
}

// NoColor reports whether colored output is disabled.
func (a *App) NoColor() bool {
	return a.config.NoColor
}

// Client returns the comparison client. Without options the instance is
// created once and cached; with options a new client is built from the
// configured options followed by opts.
func (a *App) Client(opts ...mozcldr.Option) (mozcldr.Client, error) {
	if len(opts) > 0 {
		base, err := a.clientOptions()
		if err != nil {
			return nil, err
		}
		c, err := mozcldr.New(append(base, opts...)...)
		if err != nil {
			return nil, errors.WrapResource("create", "client", "with custom options", err)
		}
		return c, nil
	}

	a.mu.RLock()
	if a.client != nil {
		c := a.client
		a.mu.RUnlock()
		return c, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.client != nil {
		return a.client, nil
	}

	base, err := a.clientOptions()
	if err != nil {
		return nil, err
	}
	c, err := mozcldr.New(base...)
	if err != nil {
		return nil, errors.WrapResource("create", "client", "", err)
	}
	a.client = c
	return c, nil
}

// clientOptions constructs client options from the app configuration.
func (a *App) clientOptions() ([]mozcldr.Option, error) {
	tables, err := config.LoadTables(a.config.TableFiles(), a.config.TableOverlay())
	if err != nil {
		return nil, errors.WrapResource("load", "tables", "", err)
	}

	return []mozcldr.Option{
		mozcldr.WithTables(tables),
		mozcldr.WithL10nPath(a.config.L10nPath),
		mozcldr.WithCLDRPath(a.config.CLDRPath),
		mozcldr.WithCLDRPluralsPath(a.config.CLDRPluralsPath),
		mozcldr.WithL10nFiles(a.config.LanguageFile, a.config.RegionFile),
		mozcldr.WithBaselineURLs(a.config.LanguageURL, a.config.RegionURL),
		mozcldr.WithBaselineLocale(locales.ID(a.config.BaselineLocale)),
		mozcldr.WithReferenceLocale(locales.ReferenceID(a.config.ReferenceLocale)),
		mozcldr.WithConcurrency(a.config.Concurrency),
		mozcldr.WithHTTPClient(&http.Client{Timeout: constants.DefaultHTTPTimeout}),
	}, nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(cfg *Config) Option {
	return func(a *App) error {
		if cfg == nil {
			return &errors.ValidationError{Field: "config", Message: "cannot be nil"}
		}
		a.config = cfg
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithClient sets a custom client (useful for testing).
func WithClient(c mozcldr.Client) Option {
	return func(a *App) error {
		a.client = c
		return nil
	}
}
