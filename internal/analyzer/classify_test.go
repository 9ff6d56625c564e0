// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_FrequencyAndFlags(t *testing.T) {
	freq, flags := Classify("aab1!")

	assert.Equal(t, 2, freq['a'])
	assert.Equal(t, 1, freq['b'])
	assert.Equal(t, 1, freq['1'])
	assert.Equal(t, 1, freq['!'])
	assert.Len(t, freq, 4)

	assert.True(t, flags.Lower)
	assert.False(t, flags.Upper)
	assert.True(t, flags.Digit)
	assert.True(t, flags.Symbol)
}

func TestClassify_Empty(t *testing.T) {
	freq, flags := Classify("")
	assert.Empty(t, freq)
	assert.Equal(t, ClassFlags{}, flags)

	alphabet, score := DeriveAlphabet(flags)
	assert.Equal(t, 0, alphabet)
	assert.Equal(t, 0, score)
}

func TestClassify_UnrecognizedRunesCountedButUnflagged(t *testing.T) {
	// Whitespace and non-ASCII carry frequency but no class.
	freq, flags := Classify("  日本")
	assert.Len(t, freq, 3)
	assert.Equal(t, ClassFlags{}, flags)
}

func TestIsASCIIPunct_CoversExactly32(t *testing.T) {
	count := 0
	for r := rune(0); r < 128; r++ {
		if isASCIIPunct(r) {
			count++
		}
	}
	assert.Equal(t, 32, count)

	// Spot checks at the range edges.
	assert.True(t, isASCIIPunct('!'))
	assert.True(t, isASCIIPunct('/'))
	assert.True(t, isASCIIPunct('@'))
	assert.True(t, isASCIIPunct('`'))
	assert.True(t, isASCIIPunct('~'))
	assert.False(t, isASCIIPunct(' '))
	assert.False(t, isASCIIPunct('0'))
	assert.False(t, isASCIIPunct('A'))
}

func TestDeriveAlphabet_LowercaseOnly(t *testing.T) {
	for _, pw := range []string{"a", "hello", "zzzzzzzz"} {
		_, flags := Classify(pw)
		alphabet, score := DeriveAlphabet(flags)
		assert.Equal(t, 26, alphabet, "password %q", pw)
		assert.Equal(t, 1, score, "password %q", pw)
	}
}

func TestDeriveAlphabet_AllFourClasses(t *testing.T) {
	_, flags := Classify("Ab3!")
	alphabet, score := DeriveAlphabet(flags)
	assert.Equal(t, 94, alphabet)
	assert.Equal(t, 5, score)
}

func TestDeriveAlphabet_PairwiseContributions(t *testing.T) {
	cases := []struct {
		pw       string
		alphabet int
		score    int
	}{
		{"abc", 26, 1},
		{"ABC", 26, 1},
		{"123", 10, 1},
		{"!?#", 32, 2},
		{"ab12", 36, 2},
		{"aB", 52, 2},
		{"a1!", 68, 4},
	}
	for _, tc := range cases {
		_, flags := Classify(tc.pw)
		alphabet, score := DeriveAlphabet(flags)
		assert.Equal(t, tc.alphabet, alphabet, "password %q", tc.pw)
		assert.Equal(t, tc.score, score, "password %q", tc.pw)
	}
}
