// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the passrun application.
package util

import "strings"

// UNICODE: Rune-aware helpers preserve multi-byte characters.
// Counting and slicing by rune prevents mid-character truncation that
// would corrupt UTF-8 strings.

// MaskRunes replaces every character of a secret with the mask rune,
// preserving length so the user can still count characters. An empty
// secret masks to the empty string.
func MaskRunes(secret string, mask rune) string {
	n := RuneLen(secret)
	if n == 0 {
		return ""
	}
	return strings.Repeat(string(mask), n)
}

// MaskAllButLast masks a secret except its final n characters. Useful
// for confirming which credential is being analyzed without echoing it.
func MaskAllButLast(secret string, mask rune, visible int) string {
	runes := []rune(secret)
	if visible <= 0 || visible >= len(runes) {
		return MaskRunes(secret, mask)
	}
	masked := strings.Repeat(string(mask), len(runes)-visible)
	return masked + string(runes[len(runes)-visible:])
}

// TruncateRunes truncates a string to a maximum number of runes
// (characters). This is safe for UTF-8 strings as it counts characters,
// not bytes. If the string is truncated, "..." is appended.
func TruncateRunes(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	if maxRunes <= 3 {
		return string(runes[:maxRunes])
	}
	return string(runes[:maxRunes-3]) + "..."
}

// RuneLen returns the number of runes (characters) in a string.
// This is safer than len() for UTF-8 strings.
func RuneLen(s string) int {
	return len([]rune(s))
}
