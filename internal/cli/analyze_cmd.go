// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// analyze_cmd.go - One-shot analysis command for passrun.
//
// Command: analyze [password]
// Aliases: check, a
//
// Input sources (first match wins):
//   --prompt            Interactive no-echo prompt (TTY only)
//   --stdin             First line of standard input
//   [password]          Positional argument (lands in shell history)
//
// Flags:
//   --json              Output in JSON format
//   --quiet, -q         Print only the verdict line
//   --rate N            Override attacker guesses/second
//   --min-entropy N     Override the policy entropy floor in bits
//
// Examples:
//   passrun analyze --prompt
//   echo 'Tr0ub4dor&3' | passrun analyze --stdin
//   passrun analyze --json --rate 1000000000000 --stdin < pw.txt
package cli

import (
	"fmt"
	"strings"

	"github.com/jeranaias/passrun-tui/internal/analyzer"
	"github.com/jeranaias/passrun-tui/internal/config"
	"github.com/jeranaias/passrun-tui/internal/policy"
	"github.com/jeranaias/passrun-tui/internal/units"
	"github.com/jeranaias/passrun-tui/internal/util"
)

// HandleAnalyze runs one analysis and prints the report. The returned
// error carries the exit code: nil for secure, errNotSecure for a
// failed verdict, analyzer input errors for unanalyzable passwords.
func HandleAnalyze(args []string) error {
	parser := NewArgParser(args)
	jsonMode := parser.BoolFlag("json")

	password, err := readPassword(parser)
	if err != nil {
		return err
	}

	pol, err := analysisPolicy(parser)
	if err != nil {
		return err
	}

	report, err := analyzer.New(pol).Analyze(password)
	if err != nil {
		if jsonMode {
			NewJSONErrorResponse("analyze", err).Print()
		}
		return err
	}

	switch {
	case jsonMode:
		NewJSONResponse("analyze", report).Print()
	case parser.BoolFlag("quiet", "q"):
		printVerdictLine(report)
	default:
		printReport(report)
	}

	if !report.Verdict.Secure {
		return errNotSecure
	}
	return nil
}

// readPassword resolves the input source in order of preference.
func readPassword(parser *ArgParser) (string, error) {
	switch {
	case parser.BoolFlag("prompt"):
		return ReadPasswordPrompt("Password to analyze (not echoed): ")
	case parser.BoolFlag("stdin"):
		return ReadPasswordStdin()
	case parser.PositionalCount() > 0:
		return parser.Positional(0), nil
	case !IsTTY():
		// Piped with no flags: treat stdin as the source.
		return ReadPasswordStdin()
	default:
		return ReadPasswordPrompt("Password to analyze (not echoed): ")
	}
}

// analysisPolicy builds the policy from config plus per-run overrides.
func analysisPolicy(parser *ArgParser) (policy.Policy, error) {
	cfg, err := config.Load()
	if err != nil {
		return policy.Policy{}, fmt.Errorf("%w: %v", errConfig, err)
	}

	minEntropy, err := parser.Float64Flag("min-entropy", cfg.Policy.MinEntropy)
	if err != nil {
		return policy.Policy{}, NewUsageError("%v", err)
	}
	rate, err := parser.Uint64Flag("rate", cfg.Policy.AttemptsPerSecond)
	if err != nil {
		return policy.Policy{}, NewUsageError("%v", err)
	}

	pol, err := policy.FromValues(minEntropy, rate, cfg.Policy.ComplexityCutoff)
	if err != nil {
		return policy.Policy{}, fmt.Errorf("%w: %v", errConfig, err)
	}
	return pol, nil
}

// =============================================================================
// REPORT RENDERING
// =============================================================================

const labelWidth = 24

func row(label, value string) string {
	return "  " + LabelStyle.Render(PadLabel(label, labelWidth)) + ValueStyle.Render(value)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// printReport renders the full styled report.
func printReport(r *analyzer.Report) {
	width := GetTerminalWidth()
	if width > 72 {
		width = 72
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Password Entropy Analysis") + "\n")
	b.WriteString(Separator(width) + "\n")

	b.WriteString(SectionStyle.Render("Input") + "\n")
	b.WriteString(row("Length", fmt.Sprintf("%d characters (%d bytes)", r.Length, r.Bytes)) + "\n")
	b.WriteString(row("Unique characters", util.IntToString(r.UniqueChars)) + "\n")

	b.WriteString(SectionStyle.Render("Character Classes") + "\n")
	b.WriteString(row("Lowercase letters", yesNo(r.Flags.Lower)) + "\n")
	b.WriteString(row("Uppercase letters", yesNo(r.Flags.Upper)) + "\n")
	b.WriteString(row("Digits", yesNo(r.Flags.Digit)) + "\n")
	b.WriteString(row("Symbols", yesNo(r.Flags.Symbol)) + "\n")
	b.WriteString(row("Alphabet size", util.IntToString(r.AlphabetSize)) + "\n")
	b.WriteString(row("Complexity score", fmt.Sprintf("%d / %d", r.ComplexityScore, policy.MaxComplexityScore)) + "\n")

	b.WriteString(SectionStyle.Render("Entropy") + "\n")
	b.WriteString(row("Shannon entropy", util.FloatToString(r.ShannonEntropy)+" bits/char") + "\n")
	b.WriteString(row("Space entropy", FormatBits(r.SpaceEntropy)) + "\n")
	b.WriteString(row("Security threshold", FormatBits(r.Verdict.Threshold)) + "\n")

	b.WriteString(SectionStyle.Render("Brute Force") + "\n")
	combos := FormatCount(r.BruteForce.Combinations)
	if r.BruteForce.Saturated {
		combos = "more than " + combos
	}
	b.WriteString(row("Combinations", combos) + "\n")
	b.WriteString(row("Attack rate", FormatCount(r.BruteForce.AttemptsPerSecond)+" guesses/sec") + "\n")
	if r.BruteForce.Uncrackable {
		b.WriteString(row("Time to crack", "effectively uncrackable") + "\n")
	} else {
		b.WriteString(row("Time to crack", FormatYears(r.BruteForce.YearsToCrack)) + "\n")
	}
	if r.BruteForce.EnergyBeyondLimits {
		b.WriteString(row("Energy floor", "beyond physical limits") + "\n")
	} else {
		b.WriteString(row("Energy floor", fmt.Sprintf("%s kWh (Landauer bound at %.2f K)",
			util.FloatToScientific(r.BruteForce.EnergyKWh), units.RoomTemperatureKelvin)) + "\n")
	}

	fmt.Println(b.String())
	printVerdictLine(r)

	for _, w := range r.Warnings {
		fmt.Println(WarningStyle.Render("  ⚠ ") + w)
	}

	fmt.Println(DimStyle.Render(fmt.Sprintf(
		"  storage: password %d B · SHA-256 digest %d B · AES-256 key %d B",
		r.Bytes, r.HashBytes, r.KeyBytes)))
}

// printVerdictLine renders the one-line verdict used by --quiet and at
// the bottom of the full report.
func printVerdictLine(r *analyzer.Report) {
	if r.Verdict.Secure {
		fmt.Println(SuccessStyle.Render("✅ Password meets security requirements") +
			DimStyle.Render(fmt.Sprintf("  (%s ≥ %s)",
				FormatBits(r.SpaceEntropy), FormatBits(r.Verdict.Threshold))))
		return
	}
	fmt.Println(ErrorStyle.Render("❌ Password is NOT secure enough") +
		DimStyle.Render(fmt.Sprintf("  (%s < %s)",
			FormatBits(r.SpaceEntropy), FormatBits(r.Verdict.Threshold))))
	if r.RecommendedLength > 0 {
		fmt.Println(ValueStyle.Render(fmt.Sprintf(
			"💡 Recommended minimum length: %d characters", r.RecommendedLength)))
	}
}
