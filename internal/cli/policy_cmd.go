// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// policy_cmd.go - Threshold policy inspection command for passrun.
//
// Command: policy
//
// Prints the active policy knobs and the effective entropy threshold
// for every complexity score, so users can see exactly which bar a
// password of a given mix has to clear.
//
// Flags:
//   --json              Output in JSON format
package cli

import (
	"fmt"

	"github.com/jeranaias/passrun-tui/internal/policy"
)

// HandlePolicy prints the active threshold policy.
func HandlePolicy(args []string) error {
	parser := NewArgParser(args)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	pol, err := cfg.ToPolicy()
	if err != nil {
		return fmt.Errorf("%w: %v", errConfig, err)
	}

	if parser.BoolFlag("json") {
		thresholds := make(map[string]float64, policy.MaxComplexityScore+1)
		for score := 0; score <= policy.MaxComplexityScore; score++ {
			thresholds[fmt.Sprintf("score_%d", score)] = pol.Threshold(score)
		}
		return NewJSONResponse("policy", map[string]interface{}{
			"min_entropy_bits":    pol.MinEntropy,
			"attempts_per_second": pol.AttemptsPerSecond,
			"thresholds":          thresholds,
		}).Print()
	}

	fmt.Println(TitleStyle.Render("Active Policy"))
	fmt.Println(row("Min entropy", FormatBits(pol.MinEntropy)))
	fmt.Println(row("Attack rate", FormatCount(pol.AttemptsPerSecond)+" guesses/sec"))
	fmt.Println()
	fmt.Println(SectionStyle.Render("Thresholds by complexity score"))
	for score := 0; score <= policy.MaxComplexityScore; score++ {
		fmt.Println(row(fmt.Sprintf("Score %d", score), FormatBits(pol.Threshold(score))))
	}
	fmt.Println(DimStyle.Render("  score = distinct character classes, symbols count double"))
	return nil
}
