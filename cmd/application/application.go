// Package application provides the application interface for mozcldr commands.
//
// Commands accept this interface rather than the concrete App type, so
// they can be tested against a Mock:
//
//	mock := &application.Mock{
//	    ClientFunc: func() (mozcldr.Client, error) {
//	        return testClient, nil
//	    },
//	}
//	cmd := compare.NewCommand(mock)
package application

import (
	"github.com/rs/zerolog"

	mozcldr "github.com/flodolo/moz-cldr-data"
)

// Application provides what commands need from the running application.
//
// Thread Safety: All methods must be safe for concurrent access.
type Application interface {
	// Client returns the comparison client.
	// When called without options, returns the default cached instance.
	// When called with options, creates a new instance layered on the
	// configured options (no caching).
	Client(opts ...mozcldr.Option) (mozcldr.Client, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml, markdown).
	OutputFormat() string

	// CSVOutput returns the configured path of the summary CSV.
	CSVOutput() string

	// NoColor reports whether colored output is disabled.
	NoColor() bool

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
