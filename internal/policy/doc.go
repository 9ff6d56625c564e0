// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package policy defines the security policy the analyzer scores against.
//
// A Policy is an immutable bundle of threshold constants: the minimum
// secure entropy floor, the complexity cutoff that selects between the
// strict and relaxed threshold rows, and the attacker model (guesses per
// second). Policies are constructed once (from defaults or from config)
// and injected into the analyzer; nothing in this package mutates a
// Policy after construction.
//
// # Threshold Table
//
// The threshold is chosen from an explicit two-row table rather than an
// inline conditional so rows can be tuned and tested independently:
//
//	complexity >= cutoff  ->  MinEntropy * LowFactor  (0.8, relaxed)
//	complexity <  cutoff  ->  MinEntropy * HighFactor (1.2, strict)
//
// # Usage
//
//	p := policy.Default()
//	threshold := p.Threshold(score)
package policy
