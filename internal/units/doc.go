// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package units provides physical constants, bounds-checked unit
// conversions, and explicit integer overflow policies.
//
// The brute-force estimator leans on this package twice: checked
// exponentiation (OverflowClamp saturates instead of wrapping, which
// would otherwise report an attacker-favorable tiny crack time) and the
// Landauer bound, which converts a search-space size into the minimum
// physical energy any computer needs to enumerate it.
//
// # Key Functions
//
// Overflow-aware arithmetic:
//   - CheckedMul, CheckedPow: uint64 arithmetic under a chosen OverflowPolicy
//
// Energy:
//   - LandauerEnergyJoules: thermodynamic floor for N bit erasures
//   - JoulesToKilowattHours: human-scale energy conversion
//
// Time:
//   - SecondsToYears: calendar conversion using the Julian year
package units
