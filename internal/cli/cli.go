// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command routing for passrun.
package cli

import (
	"fmt"
	"os"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI     Command = iota // Interactive analyzer (default)
	CmdAnalyze                // One-shot analysis
	CmdConfig                 // Configuration management
	CmdPolicy                 // Show the active threshold policy
	CmdVersion
	CmdHelp
)

const usageText = `passrun - password entropy analyzer for the terminal

Passrun measures password strength from first principles: character
class analysis, Shannon entropy, password-space entropy against a
configurable policy, and brute-force cost estimation.

Usage:
  passrun                      Start interactive analyzer (default)
  passrun analyze [password]   Analyze one password and print a report
  passrun config [show|set|path|init]
                               Configuration management
  passrun policy               Show the active threshold policy
  passrun version              Show version information
  passrun help                 Show this help

Analyze input sources (in order of preference):
  --prompt                     Read from an interactive no-echo prompt
  --stdin                      Read the first line from stdin (pipes)
  [password]                   Positional argument. Note: shells keep
                               history; prefer --prompt or --stdin.

Common flags:
  --json                       Machine-readable JSON output
  --quiet, -q                  Verdict only, exit code carries the result
  --rate N                     Override attacker guesses/second
  --min-entropy N              Override the policy entropy floor (bits)

Examples:
  passrun
  passrun analyze --prompt
  echo 'Tr0ub4dor&3' | passrun analyze --stdin
  passrun analyze --json --stdin < pw.txt
  passrun config set policy.min_entropy 48
  passrun config set ui.mask_input false

Exit codes:
  0  secure (or command succeeded)
  1  not secure
  2  usage error
  3  configuration error
  4  invalid input (empty, too long, unrecognized characters)
`

// Parse inspects os.Args and returns the command plus its remaining
// arguments. Unknown commands fall through to help so typos never
// silently start the TUI.
func Parse() (Command, []string) {
	args := os.Args[1:]
	if len(args) == 0 {
		return CmdTUI, nil
	}

	switch args[0] {
	case "analyze", "check", "a":
		return CmdAnalyze, args[1:]
	case "config", "cfg":
		return CmdConfig, args[1:]
	case "policy":
		return CmdPolicy, args[1:]
	case "version", "--version", "-v":
		return CmdVersion, args[1:]
	case "help", "--help", "-h":
		return CmdHelp, args[1:]
	case "tui":
		return CmdTUI, args[1:]
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", args[0])
		return CmdHelp, nil
	}
}

// PrintUsage writes the top-level usage text to stdout.
func PrintUsage() {
	fmt.Print(usageText)
}

// HandleVersion prints version information.
func HandleVersion(args []string) {
	parser := NewArgParser(args)
	if parser.BoolFlag("json") {
		resp := NewJSONResponse("version", map[string]string{
			"version":    Version,
			"git_commit": GitCommit,
			"build_date": BuildDate,
		})
		resp.Print()
		return
	}
	fmt.Printf("passrun %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
}

// HandleHelp prints usage.
func HandleHelp(args []string) {
	PrintUsage()
}
