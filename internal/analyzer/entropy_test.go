// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package analyzer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShannonEntropy_IdenticalCharsIsZero(t *testing.T) {
	for _, pw := range []string{"a", "aaaa", "zzzzzzzzzzzzzzzz"} {
		freq, _ := Classify(pw)
		assert.Equal(t, 0.0, ShannonEntropy(freq, len(pw)), "password %q", pw)
	}
}

func TestShannonEntropy_DistinctCharsIsLog2L(t *testing.T) {
	cases := []string{"ab", "abcd", "abcdefgh", "abcdefghijklmnop"}
	for _, pw := range cases {
		freq, _ := Classify(pw)
		want := math.Log2(float64(len(pw)))
		assert.InDelta(t, want, ShannonEntropy(freq, len(pw)), 1e-9, "password %q", pw)
	}
}

func TestShannonEntropy_EmptyIsZero(t *testing.T) {
	assert.Equal(t, 0.0, ShannonEntropy(map[rune]int{}, 0))
	assert.Equal(t, 0.0, ShannonEntropy(nil, 0))
}

func TestSpaceEntropy_KnownValues(t *testing.T) {
	// 8 chars over the full printable alphabet: 8*log2(94) ~ 52.44.
	assert.InDelta(t, 8*math.Log2(94), SpaceEntropy(8, 94), 1e-9)

	// 11 chars over lowercase+digits: 11*log2(36) ~ 56.87.
	assert.InDelta(t, 56.87, SpaceEntropy(11, 36), 0.01)
}

func TestSpaceEntropy_ZeroGuards(t *testing.T) {
	assert.Equal(t, 0.0, SpaceEntropy(0, 94))
	assert.Equal(t, 0.0, SpaceEntropy(8, 0))
	assert.False(t, math.IsInf(SpaceEntropy(8, 0), -1), "log2(0) must never leak")
}

func TestSpaceEntropy_MonotonicInLength(t *testing.T) {
	prev := 0.0
	for length := 1; length <= 64; length++ {
		s := SpaceEntropy(length, 36)
		assert.Greater(t, s, prev, "length %d", length)
		prev = s
	}
}

func TestSpaceEntropy_MonotonicInAlphabet(t *testing.T) {
	prev := 0.0
	for _, alphabet := range []int{10, 26, 36, 52, 62, 68, 94} {
		s := SpaceEntropy(12, alphabet)
		assert.Greater(t, s, prev, "alphabet %d", alphabet)
		prev = s
	}
}
