// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// entropy.go - Shannon and password-space entropy.
package analyzer

import "math"

// ShannonEntropy computes H = -sum(p_i * log2(p_i)) in bits per
// character over the observed rune distribution. Only observed runes
// are summed, so no p_i is ever zero and log2(0) cannot occur.
//
// Returns 0 for an empty distribution: the entropy of an empty message
// is conventionally zero, and returning it lets callers special-case
// emptiness once at the top instead of at every stage.
func ShannonEntropy(freq map[rune]int, length int) float64 {
	if length <= 0 || len(freq) == 0 {
		return 0
	}

	total := float64(length)
	entropy := 0.0
	for _, count := range freq {
		p := float64(count) / total
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// SpaceEntropy computes S = length * log2(alphabetSize), the total
// information capacity in bits of a uniformly random password of this
// length over this alphabet.
//
// An alphabet of size 0 (input with no recognized characters) yields 0
// rather than the -Inf that log2(0) would produce; the analyzer reports
// that case as ErrUnrecognizedAlphabet before the value is ever shown.
func SpaceEntropy(length, alphabetSize int) float64 {
	if length <= 0 || alphabetSize < 1 {
		return 0
	}
	return float64(length) * math.Log2(float64(alphabetSize))
}
