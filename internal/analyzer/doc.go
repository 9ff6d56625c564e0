// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package analyzer measures password strength from first principles.
//
// Analyze runs a fixed pipeline over one candidate password:
//
//  1. Classification: one pass builds a rune frequency map and the four
//     character-class flags (lowercase, uppercase, digit, symbol).
//  2. Alphabet and complexity derivation from the flags.
//  3. Shannon entropy of the observed rune distribution.
//  4. Password-space entropy, length * log2(alphabet).
//  5. Threshold selection from the policy table and the verdict.
//  6. Recommended minimum length when the verdict is not secure.
//  7. Brute-force estimation: combination count (saturating, never
//     wrapping), time to crack at the modeled guess rate, and the
//     Landauer energy floor for enumerating the space.
//
// The analyzer is a pure function of its input and the injected
// policy.Policy; it holds no state between calls and is safe to invoke
// concurrently for independent inputs. Every numeric field of a
// returned Report is finite: saturation and "effectively uncrackable"
// markers take the place of wrapped integers, NaN, and Inf.
package analyzer
