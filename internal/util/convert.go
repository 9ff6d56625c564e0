// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the passrun application.
package util

import "strconv"

// IntToString converts an int to string.
// Uses strconv.Itoa for optimal performance.
func IntToString(i int) string {
	return strconv.Itoa(i)
}

// FloatToString converts a float64 to string with 2 decimal places.
// Uses strconv.FormatFloat for optimal performance.
func FloatToString(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// FloatToStringPrec converts a float64 to string with specified decimal precision.
func FloatToStringPrec(f float64, prec int) string {
	return strconv.FormatFloat(f, 'f', prec, 64)
}

// FloatToScientific renders a float64 in scientific notation with two
// significant decimals, the format used for astronomical crack times.
func FloatToScientific(f float64) string {
	return strconv.FormatFloat(f, 'e', 2, 64)
}

// StringToUint64 parses an unsigned integer, rejecting negatives and
// garbage. Used for attacker-rate flags where a wrapped or negative
// value would invert the verdict.
func StringToUint64(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}
