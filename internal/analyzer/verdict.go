// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// verdict.go - Threshold selection, verdict, and length recommendation.
package analyzer

import (
	"math"

	"github.com/jeranaias/passrun-tui/internal/policy"
)

// Verdict is the outcome of measuring space entropy against the policy
// threshold. Computed once per analysis, never revised.
type Verdict struct {
	// Threshold is the selected entropy bar in bits.
	Threshold float64 `json:"threshold_bits"`
	// Secure reports whether space entropy reached the threshold.
	// Equality counts as secure.
	Secure bool `json:"secure"`
}

// EvaluateVerdict selects the threshold from the policy table for the
// given complexity score and compares the space entropy against it.
func EvaluateVerdict(p policy.Policy, complexityScore int, spaceEntropy float64) Verdict {
	threshold := p.Threshold(complexityScore)
	return Verdict{
		Threshold: threshold,
		Secure:    spaceEntropy >= threshold,
	}
}

// RecommendLength returns the minimum length that reaches the threshold
// at the same alphabet size: ceil(threshold / log2(alphabet)).
//
// Undefined for alphabets of size <= 1, where log2(alphabet) <= 0 and
// no finite length ever reaches a positive threshold; that case returns
// ErrPolicyUndefined.
func RecommendLength(threshold float64, alphabetSize int) (int, error) {
	if alphabetSize <= 1 {
		return 0, ErrPolicyUndefined
	}
	bitsPerChar := math.Log2(float64(alphabetSize))
	return int(math.Ceil(threshold / bitsPerChar)), nil
}
