// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// patterns.go - Common-pattern warnings.
//
// Entropy math assumes uniform random choice; these checks flag inputs
// that obviously are not. Warnings never change the verdict, they only
// annotate the report.
package analyzer

import (
	"fmt"
	"strings"
)

// commonPatterns are substrings (matched case-insensitively) that mark
// a password as human-predictable regardless of its entropy numbers.
var commonPatterns = []string{
	"123",
	"abc",
	"password",
	"qwerty",
	"letmein",
}

// PatternWarnings returns one warning per common pattern found in the
// password. Nil when the input is clean.
func PatternWarnings(password string) []string {
	lower := strings.ToLower(password)
	var warnings []string
	for _, pat := range commonPatterns {
		if strings.Contains(lower, pat) {
			warnings = append(warnings, fmt.Sprintf("contains common pattern %q", pat))
		}
	}
	return warnings
}
