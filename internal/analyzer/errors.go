// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Analyzer error taxonomy.
//
// All conditions here are local and recoverable: callers get a sentinel
// they can test with errors.Is and surface as diagnostic text. Nothing
// in the pipeline panics or produces NaN in place of an error.
package analyzer

import "errors"

var (
	// ErrEmptyPassword is returned for zero-length input. Entropy of an
	// empty message is conventionally zero, but a zero-length password
	// is a caller mistake worth naming rather than a 0-bit verdict.
	ErrEmptyPassword = errors.New("password is empty")

	// ErrPasswordTooLong is returned when input exceeds
	// policy.MaxPasswordLength characters.
	ErrPasswordTooLong = errors.New("password exceeds maximum length")

	// ErrUnrecognizedAlphabet is returned when no character belongs to
	// any recognized class (for example whitespace-only or non-ASCII
	// input). The effective alphabet is empty, so log2(alphabet) and
	// everything downstream of it is undefined.
	ErrUnrecognizedAlphabet = errors.New("cannot classify input: unrecognized character set")

	// ErrPolicyUndefined is returned when a recommended length is
	// requested for an alphabet of size <= 1, where log2(alphabet) <= 0.
	ErrPolicyUndefined = errors.New("cannot recommend length: alphabet too small")
)
