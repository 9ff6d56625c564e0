// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// policy.go - Security policy constants and the threshold table.
package policy

import (
	"fmt"
)

// =============================================================================
// POLICY CONSTANTS
// =============================================================================

const (
	// DefaultMinEntropy is the conservative entropy floor in bits.
	// A uniformly random password below this is considered guessable.
	DefaultMinEntropy = 32.0

	// DefaultAttemptsPerSecond models a well-funded offline attacker
	// (1 billion guesses/sec, commodity GPU rig against a fast hash).
	DefaultAttemptsPerSecond = 1_000_000_000

	// DefaultComplexityCutoff is the complexity score at or above which
	// the relaxed threshold row applies.
	DefaultComplexityCutoff = 3

	// MaxPasswordLength is the longest input the analyzer accepts, in
	// characters. Anything longer is rejected as invalid input.
	MaxPasswordLength = 512

	// MinEntropyFloor and MinEntropyCeiling bound configurable MinEntropy
	// values. Outside this range the policy is either uselessly lax or
	// unreachable for human-memorable passwords.
	MinEntropyFloor   = 16.0
	MinEntropyCeiling = 128.0
)

// Threshold multipliers for the two policy rows.
const (
	relaxedFactor = 0.8 // high-complexity passwords earn a lower bar
	strictFactor  = 1.2 // simple passwords must clear a higher bar
)

// =============================================================================
// CHARACTER CLASS TABLES
// =============================================================================

// Class identifies one of the four recognized character classes.
type Class int

const (
	ClassLower Class = iota
	ClassUpper
	ClassDigit
	ClassSymbol
)

// String returns the human-readable class name.
func (c Class) String() string {
	switch c {
	case ClassLower:
		return "lowercase"
	case ClassUpper:
		return "uppercase"
	case ClassDigit:
		return "digit"
	case ClassSymbol:
		return "symbol"
	default:
		return "unknown"
	}
}

// AlphabetSize returns the number of symbols this class contributes to
// the effective alphabet: 26 lowercase, 26 uppercase, 10 digits, 32
// printable ASCII punctuation characters.
func (c Class) AlphabetSize() int {
	switch c {
	case ClassLower, ClassUpper:
		return 26
	case ClassDigit:
		return 10
	case ClassSymbol:
		return 32
	default:
		return 0
	}
}

// Weight returns the complexity points this class contributes. Symbols
// are worth double because attackers order candidate spaces by symbol
// rarity.
func (c Class) Weight() int {
	if c == ClassSymbol {
		return 2
	}
	if c >= ClassLower && c <= ClassDigit {
		return 1
	}
	return 0
}

// MaxAlphabetSize is the full printable-ASCII alphabet (26+26+10+32).
const MaxAlphabetSize = 94

// MaxComplexityScore is the score when all four classes are present.
const MaxComplexityScore = 5

// =============================================================================
// POLICY
// =============================================================================

// Row is one entry of the threshold table: passwords whose complexity
// score is at least MinScore are measured against MinEntropy * Factor.
type Row struct {
	MinScore int
	Factor   float64
}

// Policy holds the tunable constants the analyzer scores against.
// Construct via Default or FromValues; treat as read-only afterwards.
type Policy struct {
	// MinEntropy is the baseline secure-entropy floor in bits.
	MinEntropy float64

	// AttemptsPerSecond is the modeled attacker guess rate.
	AttemptsPerSecond uint64

	// Table is the threshold table, consulted top-down; the first row
	// whose MinScore is satisfied wins. The last row must have
	// MinScore 0 so every score matches something.
	Table []Row
}

// Default returns the stock policy: 32-bit floor, 1e9 guesses/sec,
// relaxed row at complexity >= 3.
func Default() Policy {
	return Policy{
		MinEntropy:        DefaultMinEntropy,
		AttemptsPerSecond: DefaultAttemptsPerSecond,
		Table: []Row{
			{MinScore: DefaultComplexityCutoff, Factor: relaxedFactor},
			{MinScore: 0, Factor: strictFactor},
		},
	}
}

// FromValues builds a policy from configurable knobs, validating them.
// Zero values fall back to defaults so partially-filled configs work.
func FromValues(minEntropy float64, attemptsPerSecond uint64, cutoff int) (Policy, error) {
	p := Default()
	if minEntropy != 0 {
		if minEntropy < MinEntropyFloor || minEntropy > MinEntropyCeiling {
			return Policy{}, fmt.Errorf("min_entropy %.1f outside valid range [%.0f, %.0f]",
				minEntropy, MinEntropyFloor, MinEntropyCeiling)
		}
		p.MinEntropy = minEntropy
	}
	if attemptsPerSecond != 0 {
		p.AttemptsPerSecond = attemptsPerSecond
	}
	if cutoff != 0 {
		if cutoff < 1 || cutoff > MaxComplexityScore {
			return Policy{}, fmt.Errorf("complexity_cutoff %d outside valid range [1, %d]",
				cutoff, MaxComplexityScore)
		}
		p.Table = []Row{
			{MinScore: cutoff, Factor: relaxedFactor},
			{MinScore: 0, Factor: strictFactor},
		}
	}
	return p, nil
}

// Threshold returns the entropy bar for a given complexity score,
// selected from the policy table. Equality with the returned value
// counts as secure; that tie-break lives in the analyzer.
func (p Policy) Threshold(complexityScore int) float64 {
	for _, row := range p.Table {
		if complexityScore >= row.MinScore {
			return p.MinEntropy * row.Factor
		}
	}
	// Unreachable with a well-formed table; fall back to strict.
	return p.MinEntropy * strictFactor
}

// Validate checks policy invariants. A Policy from Default or FromValues
// always validates; this guards hand-built values from config plumbing.
func (p Policy) Validate() error {
	if p.MinEntropy < MinEntropyFloor || p.MinEntropy > MinEntropyCeiling {
		return fmt.Errorf("min_entropy %.1f outside valid range [%.0f, %.0f]",
			p.MinEntropy, MinEntropyFloor, MinEntropyCeiling)
	}
	if p.AttemptsPerSecond == 0 {
		return fmt.Errorf("attempts_per_second must be positive")
	}
	if len(p.Table) == 0 {
		return fmt.Errorf("threshold table is empty")
	}
	if p.Table[len(p.Table)-1].MinScore != 0 {
		return fmt.Errorf("threshold table must end with a catch-all row (min_score 0)")
	}
	for i, row := range p.Table {
		if row.Factor <= 0 {
			return fmt.Errorf("threshold table row %d has non-positive factor %.2f", i, row.Factor)
		}
	}
	return nil
}
