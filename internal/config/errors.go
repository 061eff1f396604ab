// Package config loads the riogen user configuration: default answers for
// the create command, the theme of generated apps, extra template
// directories and logging.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for configuration operations.
var (
	// ErrInvalidConfig indicates the configuration is invalid.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrInvalidYAML indicates invalid YAML syntax in the configuration file.
	ErrInvalidYAML = errors.New("config: invalid YAML syntax")

	// ErrInvalidAppType indicates a default app type other than app or website.
	ErrInvalidAppType = errors.New("config: invalid app_type, must be one of: app, website")

	// ErrInvalidColor indicates a theme colour that is not a hex colour.
	ErrInvalidColor = errors.New("config: invalid colour, expected #rrggbb")

	// ErrInvalidLogLevel indicates an unknown log level.
	ErrInvalidLogLevel = errors.New("config: invalid log level, must be one of: debug, info, warn, error")

	// ErrInvalidLogFormat indicates an unknown log format.
	ErrInvalidLogFormat = errors.New("config: invalid log format, must be one of: text, json")

	// ErrNoConfigDir indicates no user configuration directory could be determined.
	ErrNoConfigDir = errors.New("config: cannot determine user configuration directory")
)

// ValidationError reports one invalid configuration key.
type ValidationError struct {
	Key   string // dotted YAML key, e.g. "theme.primary_color"
	Value string
	Err   error // one of the sentinels above
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %q: %v", e.Key, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationErrors collects every problem found in one configuration.
// It matches ErrInvalidConfig and each contained sentinel with errors.Is.
type ValidationErrors struct {
	Path   string // configuration file, empty for in-memory values
	Errors []*ValidationError
}

func (e *ValidationErrors) Error() string {
	var b strings.Builder
	b.WriteString("invalid configuration")
	if e.Path != "" {
		b.WriteString(" in " + e.Path)
	}
	for _, ve := range e.Errors {
		b.WriteString("\n  " + ve.Error())
	}
	return b.String()
}

func (e *ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, len(e.Errors)+1)
	errs = append(errs, ErrInvalidConfig)
	for _, ve := range e.Errors {
		errs = append(errs, ve)
	}
	return errs
}
