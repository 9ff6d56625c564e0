// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the passrun command line: argument parsing,
// command handlers, styled terminal output, and JSON output for
// scripting.
//
// The entry point is Parse, which maps os.Args onto a Command; main
// routes each Command to its Handle* function. Handlers always return
// errors instead of exiting so the caller controls process exit codes.
//
// Output discipline: human-readable reports are lipgloss-styled and
// adapt to the terminal (TTY detection, NO_COLOR); --json switches to
// the stable JSONResponse envelope on stdout with diagnostics on
// stderr.
package cli
