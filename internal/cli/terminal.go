// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// terminal.go - Terminal detection and secret input for passrun CLI.
//
// Provides TTY detection, color output control, and the no-echo
// password prompt. These utilities ensure proper behavior in different
// environments:
// - Interactive terminals (full colors, prompts)
// - Piped output (no colors, no prompts)
// - CI/CD environments (respects NO_COLOR)
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// =============================================================================
// TTY DETECTION
// =============================================================================

// IsTTY returns true if stdin is a terminal.
// Use this to determine if interactive prompts are possible.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// IsStdoutTTY returns true if stdout is a terminal.
// Use this to determine if colored output should be used.
func IsStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// =============================================================================
// COLOR CONTROL
// =============================================================================

var (
	colorProfileOnce sync.Once
	colorProfile     termenv.Profile
)

// GetColorProfile returns the termenv profile to render with.
// Honors NO_COLOR (https://no-color.org/), FORCE_COLOR, and falls back
// to Ascii for non-TTY output so piped reports stay clean.
func GetColorProfile() termenv.Profile {
	colorProfileOnce.Do(func() {
		if os.Getenv("NO_COLOR") != "" {
			colorProfile = termenv.Ascii
			return
		}
		if os.Getenv("FORCE_COLOR") != "" {
			colorProfile = termenv.TrueColor
			return
		}
		if !IsStdoutTTY() {
			colorProfile = termenv.Ascii
			return
		}
		colorProfile = termenv.ColorProfile()
	})
	return colorProfile
}

// =============================================================================
// TERMINAL WIDTH
// =============================================================================

const (
	// DefaultTerminalWidth is the fallback width when detection fails
	DefaultTerminalWidth = 80

	// MinTerminalWidth is the minimum width used for report layout
	MinTerminalWidth = 40
)

// GetTerminalWidth returns the current terminal width.
// Returns DefaultTerminalWidth (80) if width cannot be determined.
func GetTerminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return DefaultTerminalWidth
	}
	if w < MinTerminalWidth {
		return MinTerminalWidth
	}
	return w
}

// =============================================================================
// SECRET INPUT
// =============================================================================

// ReadPasswordPrompt reads a password from the controlling terminal
// with echo disabled. Fails when stdin is not a TTY; callers should
// fall back to --stdin in pipelines.
func ReadPasswordPrompt(prompt string) (string, error) {
	if !IsTTY() {
		return "", fmt.Errorf("cannot prompt: stdin is not a terminal (use --stdin)")
	}
	fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(raw), nil
}

// ReadPasswordStdin reads the first line from stdin, for piped input.
// The trailing newline is stripped; interior whitespace is preserved
// because it is part of the password.
func ReadPasswordStdin() (string, error) {
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read from stdin: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
