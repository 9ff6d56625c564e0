// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// classify.go - Character classification and frequency counting.
package analyzer

import (
	"github.com/jeranaias/passrun-tui/internal/policy"
)

// ClassFlags records which of the four recognized character classes
// appear in the input. Derived once by Classify; immutable afterwards.
type ClassFlags struct {
	Lower  bool `json:"lowercase"`
	Upper  bool `json:"uppercase"`
	Digit  bool `json:"digit"`
	Symbol bool `json:"symbol"`
}

// Classify walks the input once and produces the rune frequency map and
// the class flags. Empty input yields an empty map and all-false flags;
// the caller guards downstream math against that case.
//
// Symbols are the 32 ASCII punctuation characters. Runes outside all
// four classes (whitespace, non-ASCII) are counted in the frequency map
// because they carry Shannon entropy, but they contribute nothing to
// the effective alphabet.
func Classify(password string) (map[rune]int, ClassFlags) {
	freq := make(map[rune]int, len(password))
	var flags ClassFlags

	for _, r := range password {
		freq[r]++

		switch {
		case r >= 'a' && r <= 'z':
			flags.Lower = true
		case r >= 'A' && r <= 'Z':
			flags.Upper = true
		case r >= '0' && r <= '9':
			flags.Digit = true
		case isASCIIPunct(r):
			flags.Symbol = true
		}
	}

	return freq, flags
}

// isASCIIPunct reports whether r is one of the 32 printable ASCII
// punctuation characters: !"#$%&'()*+,-./:;<=>?@[\]^_`{|}~
func isASCIIPunct(r rune) bool {
	switch {
	case r >= '!' && r <= '/':
		return true
	case r >= ':' && r <= '@':
		return true
	case r >= '[' && r <= '`':
		return true
	case r >= '{' && r <= '~':
		return true
	}
	return false
}

// DeriveAlphabet computes the effective alphabet size and complexity
// score from the class flags. Pure function of the flags: per-class
// sizes and weights come from the policy class tables
// (26/26/10/32 symbols, 1/1/1/2 points).
func DeriveAlphabet(flags ClassFlags) (alphabetSize, complexityScore int) {
	present := []struct {
		on    bool
		class policy.Class
	}{
		{flags.Lower, policy.ClassLower},
		{flags.Upper, policy.ClassUpper},
		{flags.Digit, policy.ClassDigit},
		{flags.Symbol, policy.ClassSymbol},
	}
	for _, p := range present {
		if p.on {
			alphabetSize += p.class.AlphabetSize()
			complexityScore += p.class.Weight()
		}
	}
	return alphabetSize, complexityScore
}
