// Package application provides a mock implementation of the application
// interface for command tests.
package application

import (
	"github.com/rs/zerolog"

	mozcldr "github.com/flodolo/moz-cldr-data"
	"github.com/flodolo/moz-cldr-data/cmd/application"
)

var _ application.Application = (*Mock)(nil)

// Mock provides a mock implementation of Application for testing.
// If a function field is nil, the method returns a default value.
type Mock struct {
	ClientFunc       func(opts ...mozcldr.Option) (mozcldr.Client, error)
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	CSVOutputFunc    func() string
	NoColorValue     bool
	VersionFunc      func() string
}

// Client returns a client using the mock function or nil.
func (m *Mock) Client(opts ...mozcldr.Option) (mozcldr.Client, error) {
	if m.ClientFunc != nil {
		return m.ClientFunc(opts...)
	}
	return nil, nil
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns output format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// CSVOutput returns the CSV path using the mock function or "".
func (m *Mock) CSVOutput() string {
	if m.CSVOutputFunc != nil {
		return m.CSVOutputFunc()
	}
	return ""
}

// NoColor returns NoColorValue.
func (m *Mock) NoColor() bool {
	return m.NoColorValue
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns "unknown".
func (m *Mock) Commit() string { return "unknown" }

// Date returns "unknown".
func (m *Mock) Date() string { return "unknown" }

// BuiltBy returns "test".
func (m *Mock) BuiltBy() string { return "test" }
