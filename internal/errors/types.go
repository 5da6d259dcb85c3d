// Package errors provides the error types surfaced at the process boundary.
// Remote API failures are *api.HTTPError values from go-gh and pass through
// untouched; the types here cover everything detected before a request is made.
package errors

import (
	"errors"
	"fmt"
)

// ConfigError reports an invalid invocation: missing or ambiguous
// credentials, or a malformed extras payload. It is always raised before
// any network call.
type ConfigError struct {
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

// NewConfigError creates a ConfigError with a formatted reason.
func NewConfigError(format string, args ...interface{}) *ConfigError {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}

// IsConfigError reports whether err is (or wraps) a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// UnknownCommandError reports a command name with no registered operation.
// Usage carries the rendered operation registry so the caller can print it
// as guidance.
type UnknownCommandError struct {
	Name  string
	Usage string
}

// Error implements the error interface.
func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q\n\nAvailable commands:\n%s", e.Name, e.Usage)
}

// NewUnknownCommandError creates an UnknownCommandError for the given
// command name and rendered registry listing.
func NewUnknownCommandError(name, usage string) *UnknownCommandError {
	return &UnknownCommandError{Name: name, Usage: usage}
}

// IsUnknownCommand reports whether err is (or wraps) an UnknownCommandError.
func IsUnknownCommand(err error) bool {
	var ue *UnknownCommandError
	return errors.As(err, &ue)
}
