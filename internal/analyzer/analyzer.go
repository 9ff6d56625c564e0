// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// analyzer.go - The analysis pipeline and its Report.
package analyzer

import (
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/passrun-tui/internal/policy"
	"github.com/jeranaias/passrun-tui/internal/units"
)

// Report is the complete result of analyzing one password. All numeric
// fields are finite; saturation and uncrackability are explicit flags.
type Report struct {
	// ID uniquely identifies this report in machine output.
	ID string `json:"id"`
	// GeneratedAt is the analysis timestamp (UTC).
	GeneratedAt time.Time `json:"generated_at"`

	// Length is the password length in characters (runes, not bytes).
	Length int `json:"length"`
	// Bytes is the storage size of the password.
	Bytes int `json:"bytes"`
	// UniqueChars is the number of distinct runes observed.
	UniqueChars int `json:"unique_chars"`

	// Flags records which character classes are present.
	Flags ClassFlags `json:"classes"`
	// AlphabetSize is the effective per-position symbol count (0..94).
	AlphabetSize int `json:"alphabet_size"`
	// ComplexityScore summarizes class usage (0..5).
	ComplexityScore int `json:"complexity_score"`

	// ShannonEntropy is the observed distribution entropy in bits per
	// character.
	ShannonEntropy float64 `json:"shannon_entropy_bits"`
	// SpaceEntropy is length * log2(alphabet), in bits.
	SpaceEntropy float64 `json:"space_entropy_bits"`

	// Verdict holds the selected threshold and the secure/not-secure
	// outcome.
	Verdict Verdict `json:"verdict"`
	// RecommendedLength is the minimum length reaching the threshold at
	// this alphabet size. Zero when the password is already secure or
	// when no recommendation is possible.
	RecommendedLength int `json:"recommended_length,omitempty"`

	// BruteForce is the exhaustive-search cost estimate.
	BruteForce BruteForce `json:"brute_force"`

	// Warnings lists human-readable caveats (common patterns, policy
	// edge cases). Never affects the verdict.
	Warnings []string `json:"warnings,omitempty"`

	// HashBytes and KeyBytes are the at-rest sizes a derived credential
	// would occupy (SHA-256 digest, AES-256 key).
	HashBytes int `json:"hash_bytes"`
	KeyBytes  int `json:"key_bytes"`
}

// Analyzer runs the pipeline against a fixed policy. Construct once,
// reuse freely; Analyze is safe for concurrent use because nothing is
// shared between calls.
type Analyzer struct {
	pol policy.Policy
}

// New returns an Analyzer bound to the given policy.
func New(p policy.Policy) *Analyzer {
	return &Analyzer{pol: p}
}

// Policy returns the policy this analyzer scores against.
func (a *Analyzer) Policy() policy.Policy {
	return a.pol
}

// Analyze runs the full pipeline over one password.
//
// Returns ErrEmptyPassword for empty input, ErrPasswordTooLong past
// policy.MaxPasswordLength characters, and ErrUnrecognizedAlphabet when
// no character belongs to a recognized class. All three are recoverable
// input diagnostics, not internal failures.
func (a *Analyzer) Analyze(password string) (*Report, error) {
	runes := []rune(password)
	length := len(runes)

	if length == 0 {
		return nil, ErrEmptyPassword
	}
	if length > policy.MaxPasswordLength {
		return nil, ErrPasswordTooLong
	}

	freq, flags := Classify(password)
	alphabetSize, complexityScore := DeriveAlphabet(flags)
	if alphabetSize == 0 {
		return nil, ErrUnrecognizedAlphabet
	}

	shannon := ShannonEntropy(freq, length)
	space := SpaceEntropy(length, alphabetSize)
	verdict := EvaluateVerdict(a.pol, complexityScore, space)

	report := &Report{
		ID:              uuid.NewString(),
		GeneratedAt:     time.Now().UTC(),
		Length:          length,
		Bytes:           len(password),
		UniqueChars:     len(freq),
		Flags:           flags,
		AlphabetSize:    alphabetSize,
		ComplexityScore: complexityScore,
		ShannonEntropy:  shannon,
		SpaceEntropy:    space,
		Verdict:         verdict,
		BruteForce:      EstimateBruteForce(alphabetSize, length, space, a.pol.AttemptsPerSecond),
		Warnings:        PatternWarnings(password),
		HashBytes:       units.SHA256HashBytes,
		KeyBytes:        units.AES256KeyBytes,
	}

	if !verdict.Secure {
		rec, err := RecommendLength(verdict.Threshold, alphabetSize)
		if err != nil {
			report.Warnings = append(report.Warnings, err.Error())
		} else {
			report.RecommendedLength = rec
		}
	}

	return report, nil
}
