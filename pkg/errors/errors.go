// Package errors provides custom error types for the moz-cldr-data system.
// The types mirror the reconciliation error taxonomy: unresolved locales and
// missing category files are recoverable, malformed entries are skipped, and
// baseline failures abort the run.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupported indicates a locale the reference source does not cover
	ErrUnsupported = errors.New("unsupported locale")

	// ErrBaseline indicates that a process-wide baseline document is unusable
	ErrBaseline = errors.New("baseline unavailable")
)

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// APIError represents an error from a remote HTTP source
type APIError struct {
	Source     string
	StatusCode int
	Message    string
	Endpoint   string
	Err        error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("API error from %s (status %d): %s", e.Source, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error from %s: %s", e.Source, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *APIError) Is(target error) bool {
	return e.StatusCode == 404 && target == ErrNotFound
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "ftl", "json", "yaml"
	File    string
	Line    int
	Column  int
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("parse error in %s at %s:%d:%d: %s", e.Format, e.File, e.Line, e.Column, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "open", "list"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// ResourceError represents an error during resource operations
type ResourceError struct {
	Operation string // "load", "fetch", "write"
	Resource  string // "config", "terms", "report"
	ID        string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ResourceError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("failed to %s %s %s: %s", e.Operation, e.Resource, e.ID, e.Message)
	}
	return fmt.Sprintf("failed to %s %s: %s", e.Operation, e.Resource, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ResourceError) Unwrap() error {
	return e.Err
}

// NewResourceError creates a new ResourceError
func NewResourceError(operation, resource, id string, err error) *ResourceError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ResourceError{
		Operation: operation,
		Resource:  resource,
		ID:        id,
		Message:   message,
		Err:       err,
	}
}

// UnresolvedLocaleError is returned when neither a locale nor its primary
// subtag exists in the reference source.
type UnresolvedLocaleError struct {
	Locale    string
	Reference string
}

// Error implements the error interface
func (e *UnresolvedLocaleError) Error() string {
	if e.Reference != "" && e.Reference != e.Locale {
		return fmt.Sprintf("locale %s (%s) is not supported by the reference source", e.Locale, e.Reference)
	}
	return fmt.Sprintf("locale %s is not supported by the reference source", e.Locale)
}

// Is implements errors.Is support
func (e *UnresolvedLocaleError) Is(target error) bool {
	return target == ErrUnsupported
}

// MissingCategoryError is returned when one category file of a locale could
// not be read from either side.
type MissingCategoryError struct {
	Locale   string
	Category string
	Side     string // "source" or "reference"
	Err      error
}

// Error implements the error interface
func (e *MissingCategoryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s file for %s unavailable: %v", e.Side, e.Category, e.Locale, e.Err)
	}
	return fmt.Sprintf("%s %s file for %s unavailable", e.Side, e.Category, e.Locale)
}

// Unwrap implements errors.Unwrap
func (e *MissingCategoryError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *MissingCategoryError) Is(target error) bool {
	return target == ErrNotFound
}

// BaselineError wraps a failure to obtain one of the process-wide baseline
// documents. It is always fatal.
type BaselineError struct {
	Document string
	Err      error
}

// Error implements the error interface
func (e *BaselineError) Error() string {
	return fmt.Sprintf("error reading baseline %s: %v", e.Document, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *BaselineError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *BaselineError) Is(target error) bool {
	return target == ErrBaseline
}

// NewBaselineError creates a new BaselineError
func NewBaselineError(document string, err error) *BaselineError {
	return &BaselineError{Document: document, Err: err}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsUnsupported checks if an error reports an unsupported locale
func IsUnsupported(err error) bool {
	return errors.Is(err, ErrUnsupported)
}

// IsBaseline checks if an error is a fatal baseline failure
func IsBaseline(err error) bool {
	return errors.Is(err, ErrBaseline)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapResource wraps an error as a ResourceError
func WrapResource(operation, resource, id string, err error) error {
	if err == nil {
		return nil
	}
	return NewResourceError(operation, resource, id, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// WrapBaseline wraps an error as a BaselineError
func WrapBaseline(document string, err error) error {
	if err == nil {
		return nil
	}
	return NewBaselineError(document, err)
}
