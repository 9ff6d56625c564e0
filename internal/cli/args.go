// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// args.go - Unified argument parsing for all CLI commands in passrun.
//
// Every command parses its arguments through one ArgParser so flags,
// subcommands, and values behave identically everywhere.
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// ArgParser provides unified argument parsing for CLI commands.
// It handles multiple flag formats consistently:
//   - Long flags: --flag value or --flag=value
//   - Short flags: -f value
//   - Boolean flags: --flag (no value needed)
//   - Positional arguments: arguments without flags
//   - Subcommands: first positional argument
type ArgParser struct {
	flags      map[string]string // String flags (--key=value)
	boolFlags  map[string]bool   // Boolean flags (--json)
	positional []string          // All positional arguments including subcommand
	raw        []string          // Original raw arguments
}

// boolOnlyFlags never consume a following positional as their value.
// Without this, "analyze --stdin hunter2" would eat "hunter2".
var boolOnlyFlags = map[string]bool{
	"json":    true,
	"quiet":   true,
	"q":       true,
	"stdin":   true,
	"prompt":  true,
	"compact": true,
	"confirm": true,
}

// NewArgParser creates a new argument parser from raw arguments.
//
// Supported flag formats:
//
//	--flag value     Long flag with space-separated value
//	--flag=value     Long flag with equals sign
//	-f value         Short flag with space-separated value
//	--flag           Boolean flag (no value)
//
// Example:
//
//	args := NewArgParser([]string{"set", "policy.min_entropy", "48", "--json"})
//	args.Subcommand()      // "set"
//	args.Positional(1)     // "policy.min_entropy"
//	args.BoolFlag("json")  // true
func NewArgParser(raw []string) *ArgParser {
	parser := &ArgParser{
		flags:      make(map[string]string),
		boolFlags:  make(map[string]bool),
		positional: make([]string, 0),
		raw:        raw,
	}

	i := 0
	for i < len(raw) {
		arg := raw[i]

		if strings.HasPrefix(arg, "-") && arg != "-" {
			// Handle --flag=value format
			if strings.Contains(arg, "=") {
				parts := strings.SplitN(arg, "=", 2)
				flagName := strings.TrimLeft(parts[0], "-")
				flagValue := parts[1]

				// Boolean flags can be explicit: --json=true
				if flagValue == "true" || flagValue == "false" {
					parser.boolFlags[flagName] = flagValue == "true"
				} else {
					parser.flags[flagName] = flagValue
				}
				i++
				continue
			}

			flagName := strings.TrimLeft(arg, "-")

			// Value-taking flag if the next arg exists, is not a flag,
			// and this flag is not boolean-only.
			if !boolOnlyFlags[flagName] && i+1 < len(raw) && !strings.HasPrefix(raw[i+1], "-") {
				parser.flags[flagName] = raw[i+1]
				i += 2
				continue
			}

			parser.boolFlags[flagName] = true
			i++
			continue
		}

		parser.positional = append(parser.positional, arg)
		i++
	}

	return parser
}

// Subcommand returns the first positional argument, or "".
func (p *ArgParser) Subcommand() string {
	if len(p.positional) == 0 {
		return ""
	}
	return p.positional[0]
}

// Positional returns the positional argument at index, or "".
func (p *ArgParser) Positional(index int) string {
	if index < 0 || index >= len(p.positional) {
		return ""
	}
	return p.positional[index]
}

// PositionalCount returns the number of positional arguments.
func (p *ArgParser) PositionalCount() int {
	return len(p.positional)
}

// Flag returns the string value of a flag, or "".
func (p *ArgParser) Flag(name string) string {
	return p.flags[name]
}

// HasFlag reports whether a string flag was provided.
func (p *ArgParser) HasFlag(name string) bool {
	_, ok := p.flags[name]
	return ok
}

// BoolFlag reports whether a boolean flag was set.
func (p *ArgParser) BoolFlag(names ...string) bool {
	for _, name := range names {
		if p.boolFlags[name] {
			return true
		}
	}
	return false
}

// Uint64Flag parses a flag as an unsigned integer. Returns the default
// when absent, an error when malformed or negative.
func (p *ArgParser) Uint64Flag(name string, def uint64) (uint64, error) {
	v, ok := p.flags[name]
	if !ok {
		return def, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("--%s must be a positive integer, got %q", name, v)
	}
	return n, nil
}

// Float64Flag parses a flag as a float. Returns the default when
// absent, an error when malformed.
func (p *ArgParser) Float64Flag(name string, def float64) (float64, error) {
	v, ok := p.flags[name]
	if !ok {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("--%s must be a number, got %q", name, v)
	}
	return f, nil
}
