// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Validates(t *testing.T) {
	p := Default()
	require.NoError(t, p.Validate())
	assert.Equal(t, 32.0, p.MinEntropy)
	assert.Equal(t, uint64(1_000_000_000), p.AttemptsPerSecond)
	assert.Len(t, p.Table, 2)
}

func TestThreshold_TwoRows(t *testing.T) {
	p := Default()

	// Complexity at or above the cutoff takes the relaxed row.
	assert.InDelta(t, 32.0*0.8, p.Threshold(3), 1e-9)
	assert.InDelta(t, 32.0*0.8, p.Threshold(5), 1e-9)

	// Below the cutoff takes the strict row.
	assert.InDelta(t, 32.0*1.2, p.Threshold(0), 1e-9)
	assert.InDelta(t, 32.0*1.2, p.Threshold(2), 1e-9)
}

func TestFromValues_Defaults(t *testing.T) {
	p, err := FromValues(0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestFromValues_CustomKnobs(t *testing.T) {
	p, err := FromValues(48, 2_000_000_000, 4)
	require.NoError(t, err)
	assert.Equal(t, 48.0, p.MinEntropy)
	assert.Equal(t, uint64(2_000_000_000), p.AttemptsPerSecond)
	assert.InDelta(t, 48*0.8, p.Threshold(4), 1e-9)
	assert.InDelta(t, 48*1.2, p.Threshold(3), 1e-9)
}

func TestFromValues_RejectsOutOfRange(t *testing.T) {
	_, err := FromValues(8, 0, 0)
	assert.Error(t, err)

	_, err = FromValues(500, 0, 0)
	assert.Error(t, err)

	_, err = FromValues(0, 0, 9)
	assert.Error(t, err)
}

func TestClass_Tables(t *testing.T) {
	assert.Equal(t, 26, ClassLower.AlphabetSize())
	assert.Equal(t, 26, ClassUpper.AlphabetSize())
	assert.Equal(t, 10, ClassDigit.AlphabetSize())
	assert.Equal(t, 32, ClassSymbol.AlphabetSize())

	assert.Equal(t, 1, ClassLower.Weight())
	assert.Equal(t, 1, ClassUpper.Weight())
	assert.Equal(t, 1, ClassDigit.Weight())
	assert.Equal(t, 2, ClassSymbol.Weight())

	total := 0
	score := 0
	for _, c := range []Class{ClassLower, ClassUpper, ClassDigit, ClassSymbol} {
		total += c.AlphabetSize()
		score += c.Weight()
	}
	assert.Equal(t, MaxAlphabetSize, total)
	assert.Equal(t, MaxComplexityScore, score)
}

func TestValidate_BadTables(t *testing.T) {
	p := Default()
	p.Table = nil
	assert.Error(t, p.Validate())

	p = Default()
	p.Table = []Row{{MinScore: 3, Factor: 0.8}}
	assert.Error(t, p.Validate(), "table without catch-all row must fail")

	p = Default()
	p.Table[0].Factor = -1
	assert.Error(t, p.Validate())

	p = Default()
	p.AttemptsPerSecond = 0
	assert.Error(t, p.Validate())
}
