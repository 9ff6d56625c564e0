// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package analyzer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateBruteForce_Printable8(t *testing.T) {
	// 94^8 = 6095689385410816 ~ 6.09e15 combinations; at 1e9 guesses/sec
	// the average case is combinations / 2e9 seconds.
	space := SpaceEntropy(8, 94)
	est := EstimateBruteForce(94, 8, space, 1_000_000_000)

	assert.Equal(t, uint64(6095689385410816), est.Combinations)
	assert.False(t, est.Saturated)
	assert.InEpsilon(t, 6095689385410816.0/2e9, est.SecondsToCrack, 0.001)
	assert.InEpsilon(t, est.SecondsToCrack/(365.25*24*3600), est.YearsToCrack, 0.001)
	assert.False(t, est.Uncrackable)
}

func TestEstimateBruteForce_SaturatesNotWraps(t *testing.T) {
	// 94^10 > MaxUint64. A wrap would yield a small bogus count.
	space := SpaceEntropy(10, 94)
	est := EstimateBruteForce(94, 10, space, 1_000_000_000)

	assert.True(t, est.Saturated)
	assert.Equal(t, uint64(math.MaxUint64), est.Combinations)
	// Time estimate still meaningful via log2 space: 10*log2(94) ~ 65.5
	// bits -> ~2^64.5/1e9 seconds ~ 800 years.
	assert.Greater(t, est.YearsToCrack, 100.0)
	assert.Less(t, est.YearsToCrack, 10_000.0)
}

func TestEstimateBruteForce_LongInputsStayFinite(t *testing.T) {
	// 512 chars of printable ASCII: ~3356 bits. Everything must clamp,
	// nothing may be NaN or Inf.
	space := SpaceEntropy(512, 94)
	est := EstimateBruteForce(94, 512, space, 1_000_000_000)

	assert.True(t, est.Saturated)
	assert.True(t, est.Uncrackable)
	assert.True(t, est.EnergyBeyondLimits)
	for name, v := range map[string]float64{
		"seconds": est.SecondsToCrack,
		"years":   est.YearsToCrack,
		"energy":  est.EnergyKWh,
	} {
		assert.False(t, math.IsNaN(v), "%s is NaN", name)
		assert.False(t, math.IsInf(v, 0), "%s is Inf", name)
	}
}

func TestEstimateBruteForce_EnergyFloor(t *testing.T) {
	// Landauer at room temperature: 2^52.44 ops * kT ln2 ~ 1.8e-5 J.
	space := SpaceEntropy(8, 94)
	est := EstimateBruteForce(94, 8, space, 1_000_000_000)

	assert.Greater(t, est.EnergyKWh, 0.0)
	assert.Less(t, est.EnergyKWh, 1e-6, "length-8 space enumeration is physically cheap")
	assert.False(t, est.EnergyBeyondLimits)
}

func TestEstimateBruteForce_DegenerateInputs(t *testing.T) {
	est := EstimateBruteForce(0, 8, 0, 1_000_000_000)
	assert.Equal(t, uint64(0), est.Combinations)
	assert.Equal(t, 0.0, est.YearsToCrack)

	est = EstimateBruteForce(94, 0, 0, 1_000_000_000)
	assert.Equal(t, uint64(0), est.Combinations)

	est = EstimateBruteForce(94, 8, SpaceEntropy(8, 94), 0)
	assert.Equal(t, uint64(0), est.Combinations)
}

func TestEstimateBruteForce_FasterAttackerShrinksTime(t *testing.T) {
	space := SpaceEntropy(8, 94)
	slow := EstimateBruteForce(94, 8, space, 1_000_000_000)
	fast := EstimateBruteForce(94, 8, space, 100_000_000_000)
	assert.Less(t, fast.YearsToCrack, slow.YearsToCrack)
	assert.InEpsilon(t, 100.0, slow.YearsToCrack/fast.YearsToCrack, 0.001)
}
