// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Unified error handling for all CLI commands in passrun.
//
// STANDARDIZED PATTERN:
//   - ALWAYS return errors (never just print and return nil)
//   - Let the caller decide how to display errors
//   - Use structured error types for better error handling
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/jeranaias/passrun-tui/internal/analyzer"
)

// =============================================================================
// EXIT CODES - Specific codes for different error categories
// =============================================================================

const (
	// ExitSecure indicates the analyzed password met the policy.
	ExitSecure = 0
	// ExitNotSecure indicates analysis ran but the password failed.
	ExitNotSecure = 1
	// ExitUsageError indicates invalid command usage or arguments.
	ExitUsageError = 2
	// ExitConfigError indicates configuration file or settings error.
	ExitConfigError = 3
	// ExitInvalidInput indicates the password itself was unanalyzable
	// (empty, too long, no recognized characters).
	ExitInvalidInput = 4
)

// =============================================================================
// ERROR TYPES FOR STRUCTURED ERROR HANDLING
// =============================================================================

// CommandError represents a CLI command error with context.
type CommandError struct {
	Command string // Command that failed (e.g., "analyze", "config")
	Action  string // Action being performed (e.g., "set", "read-stdin")
	Reason  string // Human-readable reason
	Err     error  // Underlying error (if any)
}

func (e *CommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s failed: %s: %v", e.Command, e.Action, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s %s failed: %s", e.Command, e.Action, e.Reason)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// UsageError represents invalid command usage (bad flags, missing
// arguments). It maps to ExitUsageError.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// NewUsageError creates a usage error.
func NewUsageError(format string, args ...interface{}) *UsageError {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// =============================================================================
// EXIT CODE MAPPING
// =============================================================================

// ExitCodeFor maps an error to the process exit code the shell sees.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSecure
	}
	var usage *UsageError
	if errors.As(err, &usage) {
		return ExitUsageError
	}
	switch {
	case errors.Is(err, analyzer.ErrEmptyPassword),
		errors.Is(err, analyzer.ErrPasswordTooLong),
		errors.Is(err, analyzer.ErrUnrecognizedAlphabet):
		return ExitInvalidInput
	case errors.Is(err, errNotSecure):
		return ExitNotSecure
	case errors.Is(err, errConfig):
		return ExitConfigError
	}
	return ExitUsageError
}

// errNotSecure is an internal marker: analysis succeeded but the
// password failed the policy. Carried as an error so main can derive
// the exit code without re-inspecting the report.
var errNotSecure = errors.New("password is not secure")

// errConfig marks configuration failures for exit-code mapping.
var errConfig = errors.New("configuration error")

// Fail prints an error to stderr in the shared error style and returns
// the matching exit code.
func Fail(err error) int {
	if err == nil {
		return ExitSecure
	}
	// The not-secure marker is a verdict, not a failure; the report has
	// already been printed.
	if !errors.Is(err, errNotSecure) {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+err.Error())
	}
	return ExitCodeFor(err)
}
