// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package analyzer

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/passrun-tui/internal/policy"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	return New(policy.Default())
}

func TestAnalyze_Password123Scenario(t *testing.T) {
	report, err := newTestAnalyzer(t).Analyze("password123")
	require.NoError(t, err)

	assert.Equal(t, 11, report.Length)
	assert.Equal(t, 36, report.AlphabetSize, "lowercase + digits")
	assert.Equal(t, 2, report.ComplexityScore)
	assert.Less(t, report.ShannonEntropy, 3.5)
	assert.InDelta(t, 11*math.Log2(36), report.SpaceEntropy, 0.01)

	// Strict threshold row applies (score 2 < 3): 32 * 1.2 = 38.4.
	assert.InDelta(t, 38.4, report.Verdict.Threshold, 1e-9)
	assert.True(t, report.Verdict.Secure, "56.9 bits clears 38.4")

	// Both embedded patterns are flagged.
	joined := strings.Join(report.Warnings, "; ")
	assert.Contains(t, joined, `"password"`)
	assert.Contains(t, joined, `"123"`)
}

func TestAnalyze_AllClassesScenario(t *testing.T) {
	report, err := newTestAnalyzer(t).Analyze("Ab3!ef")
	require.NoError(t, err)

	assert.Equal(t, 94, report.AlphabetSize)
	assert.Equal(t, 5, report.ComplexityScore)
	assert.True(t, report.Flags.Lower)
	assert.True(t, report.Flags.Upper)
	assert.True(t, report.Flags.Digit)
	assert.True(t, report.Flags.Symbol)

	// Relaxed threshold row applies (score 5 >= 3): 32 * 0.8 = 25.6.
	assert.InDelta(t, 25.6, report.Verdict.Threshold, 1e-9)
}

func TestAnalyze_EmptyInput(t *testing.T) {
	report, err := newTestAnalyzer(t).Analyze("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
	assert.Nil(t, report)
}

func TestAnalyze_TooLong(t *testing.T) {
	long := strings.Repeat("a", policy.MaxPasswordLength+1)
	_, err := newTestAnalyzer(t).Analyze(long)
	assert.ErrorIs(t, err, ErrPasswordTooLong)

	// Exactly at the limit is accepted.
	report, err := newTestAnalyzer(t).Analyze(strings.Repeat("a", policy.MaxPasswordLength))
	require.NoError(t, err)
	assert.Equal(t, policy.MaxPasswordLength, report.Length)
}

func TestAnalyze_UnrecognizedAlphabet(t *testing.T) {
	for _, pw := range []string{"   ", "日本語", "\t\n"} {
		_, err := newTestAnalyzer(t).Analyze(pw)
		assert.ErrorIs(t, err, ErrUnrecognizedAlphabet, "password %q", pw)
	}
}

func TestAnalyze_NoNaNOrInfAnywhere(t *testing.T) {
	inputs := []string{"a", "password123", "Ab3!ef", strings.Repeat("x7!Q", 128)}
	for _, pw := range inputs {
		report, err := newTestAnalyzer(t).Analyze(pw)
		require.NoError(t, err, "password %q", pw)

		for name, v := range map[string]float64{
			"shannon":   report.ShannonEntropy,
			"space":     report.SpaceEntropy,
			"threshold": report.Verdict.Threshold,
			"seconds":   report.BruteForce.SecondsToCrack,
			"years":     report.BruteForce.YearsToCrack,
			"energy":    report.BruteForce.EnergyKWh,
		} {
			assert.False(t, math.IsNaN(v), "%s is NaN for %q", name, pw)
			assert.False(t, math.IsInf(v, 0), "%s is Inf for %q", name, pw)
		}
	}
}

func TestAnalyze_RecommendationRoundTrip(t *testing.T) {
	a := newTestAnalyzer(t)

	report, err := a.Analyze("abc")
	require.NoError(t, err)
	require.False(t, report.Verdict.Secure)
	require.Greater(t, report.RecommendedLength, 0)

	// A password of the recommended length over the same alphabet must
	// reach the threshold.
	rebuilt := SpaceEntropy(report.RecommendedLength, report.AlphabetSize)
	assert.GreaterOrEqual(t, rebuilt, report.Verdict.Threshold)

	// And one character fewer must not, otherwise the recommendation
	// overshoots.
	shorter := SpaceEntropy(report.RecommendedLength-1, report.AlphabetSize)
	assert.Less(t, shorter, report.Verdict.Threshold)
}

func TestAnalyze_ThresholdTieCountsAsSecure(t *testing.T) {
	// Force a policy where a reachable space entropy equals the
	// threshold exactly: digits+symbol score 3, so the relaxed row
	// applies and threshold = MinEntropy * 0.8.
	want := SpaceEntropy(4, 42)
	p := policy.Default()
	p.MinEntropy = want / 0.8
	require.NoError(t, p.Validate())

	report, err := New(p).Analyze("13!9")
	require.NoError(t, err)
	assert.InDelta(t, want, report.Verdict.Threshold, 1e-9)
	assert.True(t, report.Verdict.Secure, "equality counts as secure")
}

func TestAnalyze_ReportMetadata(t *testing.T) {
	report, err := newTestAnalyzer(t).Analyze("Ab3!ef")
	require.NoError(t, err)

	assert.NotEmpty(t, report.ID)
	assert.False(t, report.GeneratedAt.IsZero())
	assert.Equal(t, 6, report.Bytes)
	assert.Equal(t, 6, report.UniqueChars)
	assert.Equal(t, 32, report.HashBytes)
	assert.Equal(t, 32, report.KeyBytes)

	// Two analyses get distinct IDs.
	second, err := newTestAnalyzer(t).Analyze("Ab3!ef")
	require.NoError(t, err)
	assert.NotEqual(t, report.ID, second.ID)
}

func TestRecommendLength_Guards(t *testing.T) {
	_, err := RecommendLength(38.4, 0)
	assert.ErrorIs(t, err, ErrPolicyUndefined)

	_, err = RecommendLength(38.4, 1)
	assert.ErrorIs(t, err, ErrPolicyUndefined)

	rec, err := RecommendLength(38.4, 26)
	require.NoError(t, err)
	assert.Equal(t, 9, rec, "ceil(38.4 / log2(26))")
}
